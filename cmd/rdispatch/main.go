package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rohanthewiz/rdispatch"
	"github.com/spf13/cobra"
)

// Version information set at build time.
var version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var routesFile string

	root := &cobra.Command{
		Use:   "rdispatch",
		Short: "Inspect and serve a declarative route table",
		Long: `rdispatch loads a YAML route table and lets you list it,
recognize paths against it, generate paths from params,
or serve it over HTTP.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&routesFile, "file", "f", "routes.yaml", "Route table file")

	load := func() (*rdispatch.Dispatcher, error) {
		return loadDispatcher(routesFile, rdispatch.Options{})
	}

	root.AddCommand(
		routesCmd(load),
		recognizeCmd(load),
		generateCmd(load),
		serveCmd(&routesFile),
	)
	return root
}

// loadDispatcher builds a dispatcher from the route file.
func loadDispatcher(fileName string, opts rdispatch.Options) (*rdispatch.Dispatcher, error) {
	cfg, err := rdispatch.LoadRoutesFile(fileName)
	if err != nil {
		return nil, err
	}

	d := rdispatch.NewDispatcher(opts)
	if err = cfg.Apply(d); err != nil {
		return nil, err
	}
	return d, nil
}

// formatPairs renders a map as sorted key=value lines.
func formatPairs(m map[string]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(k + "=" + m[k] + "\n")
	}
	return sb.String()
}

// parsePairs reads key=value args.
func parsePairs(args []string) (map[string]string, error) {
	params := make(map[string]string, len(args))
	for _, arg := range args {
		key, val, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", arg)
		}
		params[key] = val
	}
	return params, nil
}
