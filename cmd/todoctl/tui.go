package main

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/todo-backend/internal/ui/tui"
)

func (c *cli) tuiCmd() *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse and edit items interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := c.client()
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), api, c.logger(), size)
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", 20, "items per page")
	return cmd
}
