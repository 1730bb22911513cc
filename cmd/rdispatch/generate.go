package main

import (
	"fmt"

	"github.com/rohanthewiz/rdispatch"
	"github.com/spf13/cobra"
)

func generateCmd(load func() (*rdispatch.Dispatcher, error)) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "generate KEY=VALUE...",
		Short: "Build the path for a set of params",
		Long: `Generate prints the path of the first route that can represent
the given params exactly. With --name only that named route is used,
and its static params are filled in.

Examples:
  rdispatch generate controller=users action=show id=5
  rdispatch generate --name user_posts user_id=9`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load()
			if err != nil {
				return err
			}

			params, err := parsePairs(args)
			if err != nil {
				return err
			}

			var path string
			if name != "" {
				path, err = d.Routes().URLFor(name, params)
			} else {
				path, err = d.Routes().Generate(params)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Use the named route")
	return cmd
}
