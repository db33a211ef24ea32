package tui

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/todo-backend/internal/domain"
	"github.com/heartmarshall/todo-backend/internal/ui"
)

func (m Model) View() string {
	var body string
	switch m.mode {
	case modeForm:
		body = m.formView()
	case modeConfirmDelete:
		body = m.confirmView()
	default:
		body = m.listView()
	}
	return panelStyle.Render(body)
}

func (m Model) listView() string {
	snap := m.list.Snapshot()

	var b strings.Builder
	done, open := stats(snap.Items)
	fmt.Fprintf(&b, "%s   %s %d  %s %d  %s %d\n",
		titleStyle.Render("To Do Items"),
		successStyle.Render(boxChecked), done,
		pendingStyle.Render("•"), open,
		accentStyle.Render("Total"), snap.Total,
	)
	fmt.Fprintf(&b, "%s\n\n", mutedStyle.Render(fmt.Sprintf("page %d/%d  sort %s",
		snap.Page+1, max(snap.TotalPages(), 1), snap.Sort)))

	switch {
	case snap.IsLoading && len(snap.Items) == 0:
		b.WriteString(mutedStyle.Render("Loading...") + "\n")
	case len(snap.Items) == 0:
		b.WriteString(mutedStyle.Render("No To Do Items found") + "\n")
	}

	for i, item := range snap.Items {
		prefix := "  "
		if i == m.cursor {
			prefix = selectedStyle.Render("> ")
		}
		b.WriteString(prefix + itemLine(item) + "\n")
	}

	b.WriteString(m.messageLine())
	b.WriteString("\n" + helpStyle.Render(m.help.View(m.listKeys)))
	return b.String()
}

func itemLine(item domain.ToDoItem) string {
	text := deref(item.Description)
	if text == "" {
		text = mutedStyle.Render("(no description)")
	} else if item.Status == domain.ItemStatusDone {
		text = doneStyle.Render(text)
	}

	line := fmt.Sprintf("%s %s %s", mutedStyle.Render(fmt.Sprintf("#%-4d", item.ID)), statusBox(item.Status), text)
	if item.User != nil && item.User.Login != "" {
		line += " " + accentStyle.Render("@"+item.User.Login)
	}
	return line
}

func (m Model) formView() string {
	snap := m.form.Snapshot()

	var b strings.Builder
	title := "Create a new To Do Item"
	if !snap.IsNew() {
		title = fmt.Sprintf("Edit To Do Item #%d", snap.Item.ID)
	}
	b.WriteString(titleStyle.Render(title) + "\n\n")

	b.WriteString(m.label(fieldDescription, "Description") + "\n")
	b.WriteString(m.desc.View() + "\n\n")

	b.WriteString(m.label(fieldStatus, "Status") + "\n")
	statuses := make([]string, len(snap.Statuses))
	for i, s := range snap.Statuses {
		statuses[i] = option(string(s), s == snap.Item.Status)
	}
	b.WriteString("  " + strings.Join(statuses, " ") + "\n\n")

	b.WriteString(m.label(fieldOwner, "User") + "\n")
	b.WriteString("  " + ownerOptions(snap) + "\n")

	if snap.IsSaving {
		b.WriteString("\n" + pendingStyle.Render("Saving...") + "\n")
	}
	b.WriteString(m.messageLine())
	b.WriteString("\n" + helpStyle.Render(m.help.View(m.formKeys)))
	return b.String()
}

func ownerOptions(snap ui.FormSnapshot) string {
	opts := []string{option("none", snap.Item.UserID == nil)}
	for _, u := range snap.Users {
		selected := snap.Item.UserID != nil && *snap.Item.UserID == u.ID
		opts = append(opts, option(u.Login, selected))
	}
	return strings.Join(opts, " ")
}

func (m Model) confirmView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Confirm delete operation") + "\n\n")
	if m.dialog != nil {
		fmt.Fprintf(&b, "Are you sure you want to delete To Do Item %d?\n", m.dialog.Item().ID)
	}
	b.WriteString(m.messageLine())
	b.WriteString("\n" + helpStyle.Render(m.help.View(m.confirmKeys)))
	return b.String()
}

func (m Model) label(f field, name string) string {
	if m.field == f {
		return accentStyle.Render("▸ " + name)
	}
	return "  " + name
}

func (m Model) messageLine() string {
	if m.message == "" {
		return ""
	}
	if m.isError {
		return "\n" + errorStyle.Render("✖ "+m.message) + "\n"
	}
	return "\n" + successStyle.Render("✔ "+m.message) + "\n"
}

func option(text string, selected bool) string {
	if selected {
		return selectedStyle.Render(" " + text + " ")
	}
	return mutedStyle.Render(" " + text + " ")
}

func stats(items []domain.ToDoItem) (done, open int) {
	for _, it := range items {
		if it.Status == domain.ItemStatusDone {
			done++
		} else {
			open++
		}
	}
	return
}
