package main

import (
	"fmt"

	"github.com/rohanthewiz/rdispatch"
	"github.com/spf13/cobra"
)

func recognizeCmd(load func() (*rdispatch.Dispatcher, error)) *cobra.Command {
	var showRoute bool

	cmd := &cobra.Command{
		Use:   "recognize PATH",
		Short: "Print the params a path dispatches with",
		Long: `Recognize PATH against the route table in registration order
and print the params of the first matching route as key=value lines.

Examples:
  rdispatch recognize users/5/edit
  rdispatch recognize -r admin/reports/index`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load()
			if err != nil {
				return err
			}

			route, cfg, err := d.Routes().RecognizeRoute(args[0])
			if err != nil {
				return err
			}

			if showRoute {
				fmt.Fprintf(cmd.OutOrStdout(), "route=%s\n", route.Pattern())
			}
			fmt.Fprint(cmd.OutOrStdout(), formatPairs(cfg))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showRoute, "route", "r", false, "Also print the matching pattern")
	return cmd
}
