/*
Package repl implements minilang's interactive Read-Eval-Print Loop,
adapted from go-mix's repl.Repl: same banner/prompt/.exit shape, same
readline-backed history, same colored-error behavior, but the persistent
state across iterations is an explicit *object.Environment rather than
anything the Evaluator itself remembers (minilang's Evaluator is
stateless between Eval calls; only the Environment carries bindings
forward).
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/akashmaji946/minilang/evaluator"
	"github.com/akashmaji946/minilang/internal/cli"
)

// Repl is a configured interactive session: banner text and version (from
// the caller), prompt string and history file path (from internal/config).
type Repl struct {
	Banner      string
	Version     string
	Prompt      string
	HistoryFile string
	Palette     cli.Palette
}

// New builds a Repl ready to Start.
func New(banner, version, prompt, historyFile string, palette cli.Palette) *Repl {
	return &Repl{Banner: banner, Version: version, Prompt: prompt, HistoryFile: historyFile, Palette: palette}
}

// printBanner writes the startup banner and usage hints, mirroring
// go-mix's Repl.PrintBannerInfo.
func (r *Repl) printBanner(w io.Writer) {
	r.Palette.Banner.Fprintln(w, r.Banner)
	r.Palette.Info.Fprintf(w, "minilang %s\n", r.Version)
	r.Palette.Info.Fprintln(w, "Type an expression and press enter. Type '.exit' or Ctrl+D to quit.")
}

// Start runs the REPL loop until '.exit', EOF, or a readline error. A
// single *object.Environment persists across every line, which is what
// lets `let x = 1;` on one line be visible to `x + 1;` on the next.
func (r *Repl) Start(w io.Writer) error {
	r.printBanner(w)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          r.Prompt,
		HistoryFile:     r.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	e := evaluator.New()
	e.SetWriter(w)
	env := e.NewRootEnvironment()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF (Ctrl+D) or readline.ErrInterrupt
			w.Write([]byte("Good bye!\n"))
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			w.Write([]byte("Good bye!\n"))
			return nil
		}

		cli.Run(line, e, env, w, r.Palette)
	}
}
