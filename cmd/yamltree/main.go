// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// This binary builds document trees from YAML files and reports the errors
// the tree builder finds, on the command line or through a language server.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"go.yaml.in/yamltree"
)

// version is the current version of the yamltree tool.
const version = "0.1.0"

var log = commonlog.GetLogger("yamltree")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// globalFlags holds the persistent flags shared by every subcommand.
type globalFlags struct {
	verbosity  int
	maxDepth   int
	configFile string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:          "yamltree",
		Short:        "Build position-annotated trees from restricted YAML",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(g.verbosity, nil)
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.CountVarP(&g.verbosity, "verbose", "v", "increase log verbosity (repeatable)")
	flags.IntVar(&g.maxDepth, "max-depth", 0, "maximum container nesting depth (0 means unlimited)")
	flags.StringVar(&g.configFile, "config", "", "read settings from a YAML `file`")

	cmd.AddCommand(newTreeCmd(g))
	cmd.AddCommand(newEventsCmd())
	cmd.AddCommand(newJSONCmd(g))
	cmd.AddCommand(newCheckCmd(g))
	cmd.AddCommand(newLSPCmd(g))

	return cmd
}

// options returns the parse options selected by the config file and the
// flags. A flag given on the command line wins over the config file.
func (g *globalFlags) options(cmd *cobra.Command) ([]yamltree.Option, error) {
	cfg := defaultConfig()
	if g.configFile != "" {
		var err error
		if cfg, err = loadConfig(g.configFile); err != nil {
			return nil, err
		}
		log.Debugf("loaded config %s: max-depth=%d", g.configFile, cfg.MaxDepth)
	}
	if cmd.Flags().Changed("max-depth") {
		cfg.MaxDepth = g.maxDepth
	}
	return []yamltree.Option{yamltree.WithMaxDepth(cfg.MaxDepth)}, nil
}

// readInput returns the name and content of the file named by args, or of
// stdin when args is empty or "-".
func readInput(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		in, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return "<stdin>", string(in), nil
	}
	in, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("read file: %w", err)
	}
	return args[0], string(in), nil
}
