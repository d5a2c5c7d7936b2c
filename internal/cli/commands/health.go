package commands

import (
	"context"
	"fmt"

	"ItemGate/internal/cli/api"
	"ItemGate/internal/config"
)

type healthCmd struct{}

func (healthCmd) Name() string        { return "health" }
func (healthCmd) Description() string { return "Проверить, что сервер жив" }
func (healthCmd) Usage() string       { return "health" }

func (healthCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	h, err := api.NewClient(cfg.ServerURL, nil).Health(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Status: %s (%s)\n", h.Status, h.Timestamp)
	return nil
}

func init() { RegisterCmd(healthCmd{}) }
