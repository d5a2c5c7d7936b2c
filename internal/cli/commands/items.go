package commands

import (
	"context"
	"fmt"

	"ItemGate/internal/cli/api"
	"ItemGate/internal/cli/session"
	"ItemGate/internal/config"
)

type itemsCmd struct{}

func (itemsCmd) Name() string { return "items" }
func (itemsCmd) Description() string {
	return "Войти и показать все записи"
}
func (itemsCmd) Usage() string { return "items <username> <password>" }

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	s := session.New(api.NewClient(cfg.ServerURL, nil), logger)
	// Login сам загружает список и возвращает ошибку загрузки
	if err := s.Login(ctx, args[0], args[1]); err != nil {
		return err
	}
	list := s.Items()
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет записей")
		return nil
	}
	for _, it := range list {
		fmt.Fprintf(Out, "- %d  %s\n", it.ID, it.Name)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(itemsCmd{}) }
