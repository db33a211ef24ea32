package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		})
}

func statusLabel(s domain.ItemStatus) string {
	switch s {
	case domain.ItemStatusDone:
		return successStyle.Render("☑ " + string(s))
	case domain.ItemStatusInProgress:
		return pendingStyle.Render("◐ " + string(s))
	}
	return "☐ " + string(s)
}

func ownerLabel(item domain.ToDoItem) string {
	switch {
	case item.User != nil && item.User.Login != "":
		return "@" + item.User.Login
	case item.UserID != nil:
		return item.UserID.String()
	}
	return mutedStyle.Render("-")
}

func printItems(w io.Writer, page domain.Page[domain.ToDoItem]) {
	if len(page.Content) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No To Do Items found"))
		return
	}

	t := newTable("ID", "STATUS", "OWNER", "DESCRIPTION")
	for _, item := range page.Content {
		t.Row(strconv.FormatInt(item.ID, 10), statusLabel(item.Status), ownerLabel(item), deref(item.Description))
	}
	fmt.Fprintln(w, t.Render())

	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("page %d/%d, %d total",
		page.Page+1, max(page.TotalPages(), 1), page.Total)))
}

func printItemDetail(w io.Writer, item domain.ToDoItem) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("To Do Item #%d", item.ID)))
	fmt.Fprintf(w, "  Description: %s\n", deref(item.Description))
	fmt.Fprintf(w, "  Status:      %s\n", statusLabel(item.Status))
	fmt.Fprintf(w, "  User:        %s\n", ownerLabel(item))
	if !item.CreatedAt.IsZero() {
		fmt.Fprintf(w, "  Created:     %s\n", item.CreatedAt.Format(time.RFC3339))
	}
	if !item.UpdatedAt.IsZero() {
		fmt.Fprintf(w, "  Updated:     %s\n", item.UpdatedAt.Format(time.RFC3339))
	}
}

func printUsers(w io.Writer, page domain.Page[domain.User]) {
	if len(page.Content) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No users found"))
		return
	}
	t := newTable("ID", "LOGIN", "EMAIL")
	for _, u := range page.Content {
		t.Row(u.ID.String(), u.Login, u.Email)
	}
	fmt.Fprintln(w, t.Render())
}

func printUserDetail(w io.Writer, u domain.User) {
	fmt.Fprintln(w, headerStyle.Render(u.Login))
	fmt.Fprintf(w, "  ID:    %s\n", u.ID)
	if u.Email != "" {
		fmt.Fprintf(w, "  Email: %s\n", u.Email)
	}
}

type userJSON struct {
	ID    string `json:"id"`
	Login string `json:"login"`
	Email string `json:"email,omitempty"`
}

func newUserJSON(u domain.User) userJSON {
	return userJSON{ID: u.ID.String(), Login: u.Login, Email: u.Email}
}

type itemJSON struct {
	ID          int64     `json:"id"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	User        *userJSON `json:"user"`
}

func newItemJSON(item domain.ToDoItem) itemJSON {
	out := itemJSON{ID: item.ID, Description: item.Description, Status: string(item.Status)}
	switch {
	case item.User != nil:
		u := newUserJSON(*item.User)
		out.User = &u
	case item.UserID != nil:
		out.User = &userJSON{ID: item.UserID.String()}
	}
	return out
}

func itemsJSON(items []domain.ToDoItem) []itemJSON {
	out := make([]itemJSON, len(items))
	for i, item := range items {
		out[i] = newItemJSON(item)
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
