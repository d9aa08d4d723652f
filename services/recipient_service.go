//go:generate go run go.uber.org/mock/mockgen -source=recipient_service.go -destination=../mocks/mock_recipient_service.go -package=mocks
package services

import (
	"airdrop-recipients/domain"
	"airdrop-recipients/infrastructure/table"
	"context"
	"log/slog"
)

// MinerSource lists the miners eligible for an airdrop.
type MinerSource interface {
	FetchMiners(ctx context.Context) ([]domain.Miner, error)
}

type IRecipientService interface {
	FromMiners(ctx context.Context, minHashrate float64) ([]domain.AirdropRecipient, error)
	FromCSV(path string, opts ...table.Option) ([]domain.AirdropRecipient, error)
	FromList(addresses []string, amount float64) []domain.AirdropRecipient
}

// RecipientService builds recipient lists. It keeps no state between calls.
type RecipientService struct {
	miners MinerSource
	log    *slog.Logger
}

func NewRecipientService(miners MinerSource, log *slog.Logger) IRecipientService {
	return &RecipientService{miners: miners, log: log}
}

// FromMiners keeps miners at or above minHashrate, each with a zero amount.
// Pass domain.NoHashrateFilter to keep them all.
func (s *RecipientService) FromMiners(ctx context.Context, minHashrate float64) ([]domain.AirdropRecipient, error) {
	miners, err := s.miners.FetchMiners(ctx)
	if err != nil {
		return nil, err
	}

	recipients := domain.FromMiners(miners, minHashrate)
	s.log.Debug("Recipients built from miners",
		"fetched", len(miners),
		"kept", len(recipients),
		"min_hashrate", minHashrate)
	return recipients, nil
}

// FromCSV reads recipients from the table at path.
func (s *RecipientService) FromCSV(path string, opts ...table.Option) ([]domain.AirdropRecipient, error) {
	recipients, err := table.ReadFile(path, opts...)
	if err != nil {
		return nil, err
	}

	s.log.Debug("Recipients built from table", "path", path, "count", len(recipients))
	return recipients, nil
}

func (s *RecipientService) FromList(addresses []string, amount float64) []domain.AirdropRecipient {
	recipients := domain.FromList(addresses, amount)
	s.log.Debug("Recipients built from list", "count", len(recipients), "amount", amount)
	return recipients
}
