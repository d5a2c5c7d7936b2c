package tui

import (
	"context"
	"errors"

	"ItemGate/internal/cli/session"

	tea "github.com/charmbracelet/bubbletea"
)

// Run запускает терминальный клиент и блокируется до выхода пользователя или отмены ctx.
func Run(ctx context.Context, sess *session.Session) error {
	p := tea.NewProgram(New(ctx, sess), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
