package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"lattice-ca/internal/core"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "ca",
		Short:        "Synchronous cellular automaton engine",
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd(), newListCmd(), newDescribeCmd(), newSweepCmd())
	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered automata",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range core.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func newDescribeCmd() *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:   "describe <sim>",
		Short: "Show the effective parameters of an automaton",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			factory, err := core.Lookup(args[0])
			if err != nil {
				return err
			}
			params, err := parseSets(sets)
			if err != nil {
				return err
			}
			printSnapshot(cmd.OutOrStdout(), factory(params).Parameters())
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "override a parameter (key=value, repeatable)")
	return cmd
}

func printSnapshot(w io.Writer, snap core.ParameterSnapshot) {
	for _, g := range snap.Groups {
		fmt.Fprintf(w, "%s", g.Name)
		if g.Summary != "" {
			fmt.Fprintf(w, " - %s", g.Summary)
		}
		fmt.Fprintln(w)
		for _, p := range g.Params {
			fmt.Fprintf(w, "  %-16s %-8s %-10s %s\n", p.Key, p.Type, p.Value, p.Description)
		}
	}
}

// parseSets turns repeated key=value flags into a parameter map.
func parseSets(sets []string) (map[string]string, error) {
	out := make(map[string]string, len(sets))
	for _, kv := range sets {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("--set %q: want key=value", kv)
		}
		out[key] = value
	}
	return out, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func newLogger(level string, w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	return l, nil
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(data), nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
