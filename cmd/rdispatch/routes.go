package main

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/rohanthewiz/rdispatch"
	"github.com/spf13/cobra"
)

func routesCmd(load func() (*rdispatch.Dispatcher, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List routes in match order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := load()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tNAME\tPATTERN\tCONDITIONS\tPARAMS")
			for _, r := range d.Routes().Routes() {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", r.Index, r.Name, r.Pattern,
					inline(r.Conditions), inline(r.Params))
			}
			return tw.Flush()
		},
	}
}

func inline(m map[string]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+m[k])
	}
	return strings.Join(pairs, ",")
}
