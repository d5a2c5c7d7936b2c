package tui

import (
	"fmt"
	"strings"
)

func (m Model) View() string {
	var b strings.Builder
	if m.mode == modeLogin {
		b.WriteString(titleStyle.Render("Login") + "\n\n")
		b.WriteString(m.username.View() + "\n")
		b.WriteString(m.password.View() + "\n\n")
		b.WriteString(helpStyle.Render("tab: switch field • enter: login • esc: quit"))
	} else {
		b.WriteString(titleStyle.Render("Todo List") + mutedStyle.Render(fmt.Sprintf("  %d items", len(m.items))) + "\n\n")
		if len(m.items) == 0 {
			b.WriteString(mutedStyle.Render("  (empty)") + "\n")
		}
		for i, it := range m.items {
			prefix := "  "
			if i == m.cursor {
				prefix = selectedStyle.Render("> ")
			}
			b.WriteString(prefix + it.Name + "\n")
		}
		if m.mode == modeAdd || m.mode == modeEdit {
			title := "Add item"
			if m.mode == modeEdit {
				title = "Edit item:"
			}
			b.WriteString("\n" + panelStyle.Render(title+"\n"+m.input.View()) + "\n")
		}
		b.WriteString("\n" + helpStyle.Render("a: add • e: edit • d: delete • r: refresh • q: quit"))
	}

	switch {
	case m.busy:
		b.WriteString("\n" + mutedStyle.Render("working..."))
	case m.status != "" && m.statusErr:
		b.WriteString("\n" + errorStyle.Render("✖ "+m.status))
	case m.status != "":
		b.WriteString("\n" + successStyle.Render("✔ "+m.status))
	}
	return panelStyle.Render(b.String())
}
