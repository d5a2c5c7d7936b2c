// Package tui — терминальный клиент: экран входа и экран списка записей.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ItemGate/internal/cli/session"
	"ItemGate/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type mode int

const (
	modeLogin mode = iota
	modeList
	modeAdd
	modeEdit
)

type opKind int

const (
	opLogin opKind = iota
	opRefresh
	opAdd
	opEdit
	opDelete
)

// opDoneMsg приходит, когда цепочка запросов сессии завершилась.
type opDoneMsg struct {
	op  opKind
	err error
}

// Model — bubbletea-модель клиента. Пока идёт запрос, ввод игнорируется.
type Model struct {
	ctx  context.Context
	sess *session.Session

	mode mode
	busy bool

	username textinput.Model
	password textinput.Model
	focus    int // 0 — логин, 1 — пароль

	input  textinput.Model // добавление и редактирование
	editID int64

	items  []model.Item
	cursor int

	status    string
	statusErr bool
}

// New создаёт модель в состоянии экрана входа.
func New(ctx context.Context, sess *session.Session) Model {
	u := textinput.New()
	u.Placeholder = "Username"
	u.Prompt = "Username: "
	u.CharLimit = 128
	u.Focus()

	p := textinput.New()
	p.Placeholder = "Password"
	p.Prompt = "Password: "
	p.EchoMode = textinput.EchoPassword
	p.EchoCharacter = '•'
	p.CharLimit = 128

	in := textinput.New()
	in.Prompt = "> "
	in.CharLimit = 200

	return Model{ctx: ctx, sess: sess, username: u, password: p, input: in}
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case opDoneMsg:
		return m.finish(msg), nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// одна цепочка запросов за раз
		if m.busy {
			return m, nil
		}
		switch m.mode {
		case modeLogin:
			return m.updateLogin(msg)
		case modeAdd, modeEdit:
			return m.updateInput(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		m.focus = 1 - m.focus
		if m.focus == 0 {
			m.password.Blur()
			cmd := m.username.Focus()
			return m, cmd
		}
		m.username.Blur()
		cmd := m.password.Focus()
		return m, cmd
	case "enter":
		user, pass := m.username.Value(), m.password.Value()
		return m.run(opLogin, func() error { return m.sess.Login(m.ctx, user, pass) })
	case "esc":
		return m, tea.Quit
	}
	var cmd tea.Cmd
	if m.focus == 0 {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "a":
		m.mode = modeAdd
		m.input.Placeholder = "New item"
		cmd := m.input.Focus()
		return m, cmd
	case "e":
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.mode = modeEdit
		m.editID = it.ID
		m.input.Placeholder = "Edit item"
		m.input.SetValue(it.Name)
		m.input.CursorEnd()
		cmd := m.input.Focus()
		return m, cmd
	case "d":
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		id := it.ID
		return m.run(opDelete, func() error { return m.sess.Delete(m.ctx, id) })
	case "r":
		return m.run(opRefresh, func() error { return m.sess.Refresh(m.ctx) })
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// отмена: запрос не отправляется
		if m.mode == modeEdit {
			m.input.SetValue("")
		}
		m.input.Blur()
		m.mode = modeList
		return m, nil
	case "enter":
		name := m.input.Value()
		if m.mode == modeAdd {
			if strings.TrimSpace(name) == "" {
				m.setStatus("Name cannot be empty", true)
				return m, nil
			}
			return m.run(opAdd, func() error { return m.sess.Add(m.ctx, name) })
		}
		if strings.TrimSpace(name) == "" {
			// пустое имя при редактировании равносильно отмене
			m.input.SetValue("")
			m.input.Blur()
			m.mode = modeList
			return m, nil
		}
		id := m.editID
		return m.run(opEdit, func() error { return m.sess.Edit(m.ctx, id, name) })
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// run помечает модель занятой и выполняет запрос вне цикла отрисовки.
func (m Model) run(op opKind, call func() error) (tea.Model, tea.Cmd) {
	m.busy = true
	m.status, m.statusErr = "", false
	return m, func() tea.Msg { return opDoneMsg{op: op, err: call()} }
}

func (m Model) finish(msg opDoneMsg) Model {
	m.busy = false
	// запрос принят сервером, не удалось только перечитать список
	applied := errors.Is(msg.err, session.ErrRefreshFailed)

	if msg.op == opLogin {
		if msg.err != nil && !applied {
			m.setStatus("Login failed", true)
			return m
		}
		m.password.SetValue("")
		m.username.Blur()
		m.password.Blur()
		m.mode = modeList
		m.items = m.sess.Items()
		m.clampCursor()
		if applied {
			m.setStatus(describe(msg.err), true)
		}
		return m
	}

	if msg.err != nil && !applied {
		// список остаётся прежним, показываем диагностику
		m.setStatus(describe(msg.err), true)
		return m
	}
	switch msg.op {
	case opAdd, opEdit:
		m.input.SetValue("")
		m.input.Blur()
		m.mode = modeList
	}
	if applied {
		m.setStatus(describe(msg.err), true)
		m.items = m.sess.Items()
		m.clampCursor()
		return m
	}
	switch msg.op {
	case opAdd:
		m.setStatus("Item added", false)
	case opEdit:
		m.setStatus("Item updated", false)
	case opDelete:
		m.setStatus("Item deleted", false)
	}
	m.items = m.sess.Items()
	m.clampCursor()
	return m
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status, m.statusErr = s, isErr
}

func (m Model) selected() (model.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return model.Item{}, false
	}
	return m.items[m.cursor], true
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func describe(err error) string {
	if errors.Is(err, session.ErrBusy) {
		return "Busy, try again"
	}
	if errors.Is(err, session.ErrRefreshFailed) {
		return fmt.Sprintf("Done, but list is stale: %v", err)
	}
	return fmt.Sprintf("Request failed: %v", err)
}
