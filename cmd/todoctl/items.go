package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/todo-backend/internal/client"
	"github.com/heartmarshall/todo-backend/internal/domain"
)

func (c *cli) listCmd() *cobra.Command {
	var (
		page, size int
		sorts      []string
		status     string
		owner      string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List to-do items",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := client.QueryOptions{Page: page, Size: size}
			for _, raw := range sorts {
				o, err := domain.ParseOrder(raw)
				if err != nil {
					return err
				}
				opts.Sort = append(opts.Sort, o)
			}
			if status != "" {
				s, err := parseStatus(status)
				if err != nil {
					return err
				}
				opts.Status = &s
			}
			if owner != "" {
				id, err := uuid.Parse(owner)
				if err != nil {
					return fmt.Errorf("invalid --user %q: %w", owner, err)
				}
				opts.UserID = &id
			}

			api, err := c.client()
			if err != nil {
				return err
			}
			result, err := api.Query(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if c.asJSON {
				return writeJSON(c.out, itemsJSON(result.Content))
			}
			printItems(c.out, result)
			return nil
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 0, "zero-based page number")
	cmd.Flags().IntVarP(&size, "size", "n", 0, "page size (server default when 0)")
	cmd.Flags().StringSliceVarP(&sorts, "sort", "s", nil, "sort as field[,asc|desc], repeatable")
	cmd.Flags().StringVar(&status, "status", "", "only items with this status")
	cmd.Flags().StringVar(&owner, "user", "", "only items owned by this user id")
	return cmd
}

func (c *cli) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one to-do item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			api, err := c.client()
			if err != nil {
				return err
			}
			item, err := api.Find(cmd.Context(), id)
			if err != nil {
				return err
			}
			return c.printItem(item)
		},
	}
}

// itemFlags are the editable fields shared by create, update and patch.
type itemFlags struct {
	description string
	status      string
	owner       string
}

func (f *itemFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.description, "description", "d", "", "item description")
	cmd.Flags().StringVar(&f.status, "status", "", "ToDo, InProgress or Done")
	cmd.Flags().StringVar(&f.owner, "user", "", `owner user id, or "none"`)
}

// apply copies the flags that were set on cmd onto item.
func (f *itemFlags) apply(cmd *cobra.Command, item *domain.ToDoItem) error {
	if cmd.Flags().Changed("description") {
		item.Description = optional(f.description)
	}
	if cmd.Flags().Changed("status") {
		s, err := parseStatus(f.status)
		if err != nil {
			return err
		}
		item.Status = s
	}
	if cmd.Flags().Changed("user") {
		if strings.EqualFold(f.owner, "none") || f.owner == "" {
			item.UserID = nil
		} else {
			id, err := uuid.Parse(f.owner)
			if err != nil {
				return fmt.Errorf("invalid --user %q: %w", f.owner, err)
			}
			item.UserID = &id
		}
		item.User = nil
	}
	return nil
}

func (c *cli) createCmd() *cobra.Command {
	var flags itemFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a to-do item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			item := domain.ToDoItem{Status: domain.ItemStatusToDo}
			if err := flags.apply(cmd, &item); err != nil {
				return err
			}
			api, err := c.client()
			if err != nil {
				return err
			}
			created, err := api.Create(cmd.Context(), item)
			if err != nil {
				return err
			}
			return c.printItem(created)
		},
	}
	flags.register(cmd)
	return cmd
}

// updateCmd replaces the whole item. Fields not given keep the values read
// from the server first.
func (c *cli) updateCmd() *cobra.Command {
	var flags itemFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a to-do item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			api, err := c.client()
			if err != nil {
				return err
			}
			current, err := api.Find(cmd.Context(), id)
			if err != nil {
				return err
			}
			item := *current
			if err := flags.apply(cmd, &item); err != nil {
				return err
			}
			updated, err := api.Update(cmd.Context(), item)
			if err != nil {
				return err
			}
			return c.printItem(updated)
		},
	}
	flags.register(cmd)
	return cmd
}

func (c *cli) patchCmd() *cobra.Command {
	var flags itemFlags
	cmd := &cobra.Command{
		Use:   "patch <id>",
		Short: "Change some fields of a to-do item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("user") && (flags.owner == "" || strings.EqualFold(flags.owner, "none")) {
				return fmt.Errorf("patch cannot clear the owner, use update --user none")
			}
			item := domain.ToDoItem{ID: id}
			if err := flags.apply(cmd, &item); err != nil {
				return err
			}
			api, err := c.client()
			if err != nil {
				return err
			}
			patched, err := api.PartialUpdate(cmd.Context(), item)
			if err != nil {
				return err
			}
			return c.printItem(patched)
		},
	}
	flags.register(cmd)
	return cmd
}

func (c *cli) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a to-do item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			api, err := c.client()
			if err != nil {
				return err
			}
			if err := api.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintln(c.out, successStyle.Render("✔")+fmt.Sprintf(" deleted item #%d", id))
			return nil
		},
	}
}

func (c *cli) printItem(item *domain.ToDoItem) error {
	if c.asJSON {
		return writeJSON(c.out, newItemJSON(*item))
	}
	printItemDetail(c.out, *item)
	return nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

func parseStatus(raw string) (domain.ItemStatus, error) {
	for _, s := range domain.ItemStatuses {
		if strings.EqualFold(string(s), raw) {
			return s, nil
		}
	}
	return "", domain.NewValidationError("status", fmt.Sprintf("unknown status %q", raw))
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
