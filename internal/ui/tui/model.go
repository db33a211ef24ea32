// Package tui renders the to-do item screens in a terminal with Bubble Tea.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/heartmarshall/todo-backend/internal/domain"
	"github.com/heartmarshall/todo-backend/internal/ui"
)

type mode int

const (
	modeList mode = iota
	modeForm
	modeConfirmDelete
)

type field int

const (
	fieldDescription field = iota
	fieldStatus
	fieldOwner
	fieldCount
)

type (
	listLoadedMsg struct{ err error }
	formOpenedMsg struct {
		err     error
		optsErr error
	}
	savedMsg   struct{ err error }
	deletedMsg struct{ err error }
)

// Model is the Bubble Tea model for the to-do item screens.
type Model struct {
	ctx    context.Context
	svc    ui.ItemService
	list   *ui.ListView
	form   *ui.UpdateForm
	dialog *ui.DeleteDialog

	mode   mode
	cursor int
	field  field
	desc   textinput.Model

	message string
	isError bool

	listKeys    listKeys
	formKeys    formKeys
	confirmKeys confirmKeys
	help        help.Model
}

// New creates the model. ctx bounds every request it issues.
func New(ctx context.Context, svc ui.ItemService, logger *slog.Logger, pageSize int) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Description..."
	ti.CharLimit = 1000

	return Model{
		ctx:         ctx,
		svc:         svc,
		list:        ui.NewListView(svc, logger, pageSize),
		form:        ui.NewUpdateForm(svc, logger),
		desc:        ti,
		listKeys:    newListKeys(),
		formKeys:    newFormKeys(),
		confirmKeys: newConfirmKeys(),
		help:        help.New(),
	}
}

// Run starts the program on the alternate screen and blocks until it quits.
func Run(ctx context.Context, svc ui.ItemService, logger *slog.Logger, pageSize int) error {
	p := tea.NewProgram(New(ctx, svc, logger, pageSize), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.loadList()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case listLoadedMsg:
		if msg.err != nil {
			m.setError(msg.err)
		}
		m.clampCursor()
		return m, nil

	case formOpenedMsg:
		if msg.err != nil {
			m.mode = modeList
			if errors.Is(msg.err, ui.ErrRouteNotFound) {
				m.setError(errors.New("item no longer exists"))
				return m, m.loadList()
			}
			m.setError(msg.err)
			return m, nil
		}
		m.mode = modeForm
		m.field = fieldDescription
		m.clearMessage()
		if msg.optsErr != nil {
			m.setError(msg.optsErr)
		}
		snap := m.form.Snapshot()
		m.desc.SetValue(deref(snap.Item.Description))
		m.desc.CursorEnd()
		cmd := m.desc.Focus()
		return m, cmd

	case savedMsg:
		// Success and failure both arrive as form events.
		cmd := m.drainEvents()
		return m, cmd

	case deletedMsg:
		m.mode = modeList
		m.dialog = nil
		if msg.err != nil {
			m.setError(msg.err)
		}
		cmd := m.drainEvents()
		m.clampCursor()
		return m, cmd

	case tea.KeyMsg:
		switch m.mode {
		case modeForm:
			return m.updateForm(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

// drainEvents handles every event the holders emitted since the last call.
// Events are only emitted from inside Save, Cancel and Confirm, so draining
// after those return sees all of them.
func (m *Model) drainEvents() tea.Cmd {
	var cmds []tea.Cmd
	for _, ch := range []<-chan ui.Event{m.form.Events(), m.list.Events()} {
		for _, ev := range pending(ch) {
			cmds = append(cmds, m.handleEvent(ev))
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleEvent(ev ui.Event) tea.Cmd {
	switch ev.Kind {
	case ui.NavigateBack:
		m.mode = modeList
		m.desc.Blur()
		if ev.Item != nil {
			m.setInfo(fmt.Sprintf("saved item #%d", ev.Item.ID))
		} else {
			m.clearMessage()
		}
		return m.loadList()
	case ui.SaveFailed:
		m.setError(ev.Err)
	case ui.Deleted:
		if ev.Item != nil {
			m.setInfo(fmt.Sprintf("deleted item #%d", ev.Item.ID))
		}
	}
	return nil
}

func pending(ch <-chan ui.Event) []ui.Event {
	var out []ui.Event
	for {
		select {
		case ev := <-ch:
			out = append(out, ev)
		default:
			return out
		}
	}
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.list.Snapshot()
	switch {
	case key.Matches(msg, m.listKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.listKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.listKeys.Down):
		if m.cursor < len(snap.Items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.listKeys.Prev):
		if snap.Page > 0 {
			m.cursor = 0
			return m, m.listCmd(func(ctx context.Context) error { return m.list.SetPage(ctx, snap.Page-1) })
		}
	case key.Matches(msg, m.listKeys.Next):
		if snap.Page+1 < snap.TotalPages() {
			m.cursor = 0
			return m, m.listCmd(func(ctx context.Context) error { return m.list.SetPage(ctx, snap.Page+1) })
		}
	case key.Matches(msg, m.listKeys.SortID):
		return m, m.listCmd(func(ctx context.Context) error { return m.list.SortBy(ctx, "id") })
	case key.Matches(msg, m.listKeys.SortStatus):
		return m, m.listCmd(func(ctx context.Context) error { return m.list.SortBy(ctx, "status") })
	case key.Matches(msg, m.listKeys.Reload):
		return m, m.loadList()
	case key.Matches(msg, m.listKeys.Add):
		return m, m.openForm(nil)
	case key.Matches(msg, m.listKeys.Edit):
		if item, ok := m.selected(snap); ok {
			id := item.ID
			return m, m.openForm(&id)
		}
	case key.Matches(msg, m.listKeys.Delete):
		if item, ok := m.selected(snap); ok {
			m.dialog = m.list.OpenDelete(item)
			m.mode = modeConfirmDelete
		}
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.confirmKeys.Yes):
		dialog := m.dialog
		return m, func() tea.Msg { return deletedMsg{err: dialog.Confirm(m.ctx)} }
	case key.Matches(msg, m.confirmKeys.No):
		m.dialog.Cancel()
		m.dialog = nil
		m.mode = modeList
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.Snapshot().IsSaving {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.formKeys.Cancel):
		m.form.Cancel()
		cmd := m.drainEvents()
		return m, cmd
	case key.Matches(msg, m.formKeys.Save):
		if err := m.form.SetDescription(optional(m.desc.Value())); err != nil {
			m.setError(err)
			return m, nil
		}
		form := m.form
		return m, func() tea.Msg { return savedMsg{err: form.Save(m.ctx)} }
	case key.Matches(msg, m.formKeys.NextField):
		m.focus((m.field + 1) % fieldCount)
		return m, nil
	case key.Matches(msg, m.formKeys.PrevField):
		m.focus((m.field + fieldCount - 1) % fieldCount)
		return m, nil
	}

	switch m.field {
	case fieldStatus:
		if step := direction(msg, m.formKeys); step != 0 {
			m.cycleStatus(step)
		}
		return m, nil
	case fieldOwner:
		if step := direction(msg, m.formKeys); step != 0 {
			m.cycleOwner(step)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.desc, cmd = m.desc.Update(msg)
	return m, cmd
}

func (m *Model) focus(f field) {
	m.field = f
	if f == fieldDescription {
		m.desc.Focus()
		return
	}
	m.desc.Blur()
}

func (m *Model) cycleStatus(step int) {
	snap := m.form.Snapshot()
	i := indexOf(snap.Statuses, snap.Item.Status)
	next := snap.Statuses[wrap(i+step, len(snap.Statuses))]
	if err := m.form.SetStatus(next); err != nil {
		m.setError(err)
	}
}

// cycleOwner steps through the owner options. Position -1 is "no owner".
func (m *Model) cycleOwner(step int) {
	snap := m.form.Snapshot()
	i := -1
	for j, u := range snap.Users {
		if snap.Item.UserID != nil && u.ID == *snap.Item.UserID {
			i = j
			break
		}
	}
	next := wrap(i+1+step, len(snap.Users)+1) - 1

	var err error
	if next < 0 {
		err = m.form.SetOwner(nil)
	} else {
		err = m.form.SetOwner(&snap.Users[next])
	}
	if err != nil {
		m.setError(err)
	}
}

func (m Model) loadList() tea.Cmd {
	return m.listCmd(m.list.Load)
}

func (m Model) listCmd(fn func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg { return listLoadedMsg{err: fn(ctx)} }
}

// openForm resolves the item and loads the owner options. New items start
// as ToDo.
func (m Model) openForm(id *int64) tea.Cmd {
	ctx, svc, form := m.ctx, m.svc, m.form
	return func() tea.Msg {
		item, err := ui.ResolveRoute(ctx, svc, id)
		if err != nil {
			return formOpenedMsg{err: err}
		}
		if item.IsNew() && item.Status == "" {
			item.Status = domain.ItemStatusToDo
		}
		return formOpenedMsg{optsErr: form.Load(ctx, item)}
	}
}

func (m Model) selected(snap ui.ListSnapshot) (domain.ToDoItem, bool) {
	if m.cursor < 0 || m.cursor >= len(snap.Items) {
		return domain.ToDoItem{}, false
	}
	return snap.Items[m.cursor], true
}

func (m *Model) clampCursor() {
	n := len(m.list.Snapshot().Items)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) setError(err error) {
	m.message, m.isError = err.Error(), true
}

func (m *Model) setInfo(msg string) {
	m.message, m.isError = msg, false
}

func (m *Model) clearMessage() {
	m.message, m.isError = "", false
}

func direction(msg tea.KeyMsg, k formKeys) int {
	switch {
	case key.Matches(msg, k.Left):
		return -1
	case key.Matches(msg, k.Right):
		return 1
	}
	return 0
}

// indexOf returns the position of v in s, or 0 when it is absent.
func indexOf[T comparable](s []T, v T) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return 0
}

func wrap(i, n int) int {
	if n == 0 {
		return 0
	}
	return ((i % n) + n) % n
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
