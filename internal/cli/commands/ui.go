package commands

import (
	"context"

	"ItemGate/internal/cli/api"
	"ItemGate/internal/cli/session"
	"ItemGate/internal/cli/tui"
	"ItemGate/internal/config"
)

type uiCmd struct{}

func (uiCmd) Name() string { return "ui" }
func (uiCmd) Description() string {
	return "Запустить терминальный клиент (по умолчанию)"
}
func (uiCmd) Usage() string { return "ui" }

// runUI подменяется в тестах, чтобы не запускать терминальную программу.
var runUI = tui.Run

func (uiCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	logger.Infow("starting terminal client", "server", cfg.ServerURL)
	s := session.New(api.NewClient(cfg.ServerURL, nil), logger)
	return runUI(ctx, s)
}

func init() { RegisterCmd(uiCmd{}) }
