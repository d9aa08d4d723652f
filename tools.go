//go:build tools
// +build tools

// Package tools pins mockgen so `go generate ./...` resolves it from go.mod.
package airdrop_recipients

import (
	_ "go.uber.org/mock/mockgen"
)
