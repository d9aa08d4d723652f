// Package domain contains the airdrop recipient model and the pure
// transforms every recipient source ends up in.
// No network or file access belongs here.
package domain

import (
	"math"

	"github.com/samber/lo"
)

// NoHashrateFilter keeps every miner, whatever its hashrate.
var NoHashrateFilter = math.Inf(-1)

// AirdropRecipient is one line of an airdrop: who receives, how much,
// and the optional metric the list was weighted or filtered by.
type AirdropRecipient struct {
	Address  string  `json:"address"`
	Amount   float64 `json:"amount"`
	Hashrate float64 `json:"hashrate"`
}

// Miner is an entry reported by the remote miners source.
type Miner struct {
	Address  string  `json:"address"`
	Hashrate float64 `json:"hashrate"`
}

// FromList gives every address the same amount, keeping input order.
func FromList(addresses []string, amount float64) []AirdropRecipient {
	return lo.Map(addresses, func(address string, _ int) AirdropRecipient {
		return AirdropRecipient{Address: address, Amount: amount}
	})
}

// FilterMiners keeps miners whose hashrate is at least minHashrate.
func FilterMiners(miners []Miner, minHashrate float64) []Miner {
	return lo.Filter(miners, func(m Miner, _ int) bool {
		return m.Hashrate >= minHashrate
	})
}

// FromMiners turns eligible miners into recipients with a zero amount.
func FromMiners(miners []Miner, minHashrate float64) []AirdropRecipient {
	return lo.Map(FilterMiners(miners, minHashrate), func(m Miner, _ int) AirdropRecipient {
		return AirdropRecipient{Address: m.Address, Hashrate: m.Hashrate}
	})
}

// TotalAmount sums the amount of every recipient.
func TotalAmount(recipients []AirdropRecipient) float64 {
	return lo.SumBy(recipients, func(r AirdropRecipient) float64 {
		return r.Amount
	})
}
