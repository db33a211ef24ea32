package main

import (
	"github.com/spf13/cobra"
)

func (c *cli) usersCmd() *cobra.Command {
	var page, size int
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List users that can own items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := c.client()
			if err != nil {
				return err
			}
			result, err := api.QueryUsers(cmd.Context(), page, size)
			if err != nil {
				return err
			}
			if c.asJSON {
				out := make([]userJSON, len(result.Content))
				for i, u := range result.Content {
					out[i] = newUserJSON(u)
				}
				return writeJSON(c.out, out)
			}
			printUsers(c.out, result)
			return nil
		},
	}
	cmd.Flags().IntVarP(&page, "page", "p", 0, "zero-based page number")
	cmd.Flags().IntVarP(&size, "size", "n", 0, "page size (server default when 0)")
	return cmd
}

func (c *cli) accountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Show the user the token belongs to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := c.client()
			if err != nil {
				return err
			}
			me, err := api.Account(cmd.Context())
			if err != nil {
				return err
			}
			if c.asJSON {
				return writeJSON(c.out, newUserJSON(*me))
			}
			printUserDetail(c.out, *me)
			return nil
		},
	}
}
