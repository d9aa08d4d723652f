package e2e

import (
	"airdrop-recipients/domain"
	"airdrop-recipients/infrastructure/sigscore"
	"airdrop-recipients/internal"
	"airdrop-recipients/services"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

type BaseSigscoreSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration and skips without a live endpoint
func (s *BaseSigscoreSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.SigscoreURL == "" {
		s.T().Skip("E2E_SIGSCORE_URL is not set")
	}
}

// WithRecipientService provides a service wired to the live endpoint within a contextual test step
func (s *BaseSigscoreSuite) WithRecipientService(name string, fn func(ctx context.Context, svc services.IRecipientService)) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	cfg := internal.DefaultConfig()
	cfg.SigscoreURL = s.Config.SigscoreURL
	cfg.HTTPTimeout = 30 * time.Second
	s.Require().NoError(cfg.Validate())

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	svc := services.NewRecipientService(sigscore.NewClient(cfg, log), log)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fn(ctx, svc)
}

// Dump logs recipients as JSON when E2E_DEBUG_JSON is enabled
func (s *BaseSigscoreSuite) Dump(recipients []domain.AirdropRecipient) {
	if !s.Config.DebugJSON {
		return
	}
	body, err := json.MarshalIndent(recipients, "", "  ")
	s.Require().NoError(err)
	s.T().Log("RECIPIENTS:\n" + string(body))
}
