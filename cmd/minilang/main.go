/*
Command minilang is the entry point for the minilang interpreter,
restructured from go-mix's main/main.go os.Args[1] switch onto a
spf13/cobra command tree: a bare invocation starts the REPL, "run FILE"
(or a bare positional file argument, kept for go-mix CLI-shape
familiarity) evaluates a file, and "version" prints build metadata.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/akashmaji946/minilang/evaluator"
	"github.com/akashmaji946/minilang/internal/cli"
	"github.com/akashmaji946/minilang/internal/config"
	"github.com/akashmaji946/minilang/internal/repl"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

var banner = `
           _       _ _
 _ __ ___ (_)_ __ (_) | __ _ _ __   __ _
| '_ ' _ \| | '_ \| | |/ _' | '_ \ / _' |
| | | | | | | | | | | | (_| | | | | (_| |
|_| |_| |_|_|_| |_|_|_|\__,_|_| |_|\__, |
                                   |___/
`

var (
	noColor    bool
	configPath string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "minilang [file]",
		Short:   "minilang is a tree-walking interpreter for a small expression-oriented language",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runFile(args[0])
			}
			return runRepl()
		},
	}
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a minilang config file (default ~/.minilangrc.yaml)")

	root.AddCommand(newRunCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "Evaluate a minilang source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(args[0])
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("minilang %s\n", version)
			return nil
		},
	}
}

func loadConfig() config.Config {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[config error] %v (using defaults)\n", err)
		return config.Default()
	}
	return cfg
}

// runFile evaluates source and exits 1 on a parse failure or a terminal
// runtime *object.Error (Open Question #8 in SPEC_FULL.md §9), matching
// go-mix's executeFileWithRecovery exit-on-error behavior.
func runFile(path string) error {
	cfg := loadConfig()
	palette := cli.NewPalette(cfg.Color && !noColor)

	source, err := os.ReadFile(path)
	if err != nil {
		palette.Error.Fprintf(os.Stderr, "[file error] could not read %q: %v\n", path, err)
		os.Exit(1)
	}

	e := evaluator.New()
	env := e.NewRootEnvironment()
	_, failed := cli.Run(string(source), e, env, os.Stdout, palette)
	if failed {
		os.Exit(1)
	}
	return nil
}

func runRepl() error {
	cfg := loadConfig()
	palette := cli.NewPalette(cfg.Color && !noColor)
	r := repl.New(banner, version, cfg.Prompt, cfg.HistoryFile, palette)
	return r.Start(os.Stdout)
}
