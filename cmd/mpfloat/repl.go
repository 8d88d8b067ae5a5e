package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

// newReplCmd builds the interactive console subcommand. Modeled on
// rcornwell-S370/command/reader.ConsoleReader: a liner.NewLiner loop
// with history and tab completion, reading one line at a time until
// the prompt is aborted (Ctrl-D/Ctrl-C) or the user types "quit".
func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive console for evaluating operations one at a time",
		RunE: func(cmd *cobra.Command, args []string) error {
			runRepl()
			return nil
		},
	}
}

func runRepl() {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(partial string) []string {
		var matches []string
		for name := range operations {
			if strings.HasPrefix(name, partial) {
				matches = append(matches, name)
			}
		}
		return matches
	})

	fmt.Printf("mpfloat repl: prec=%d mode=%s. Type an operation and its operands, or \"quit\".\n", precision, modeName)
	for {
		input, err := line.Prompt("mpfloat> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return
			}
			logger.Error("reading line", "error", err.Error())
			return
		}

		line.AppendHistory(input)
		fields := strings.Fields(input)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return
		}

		if err := evalReplLine(fields[0], fields[1:]); err != nil {
			fmt.Println("error:", err)
		}
	}
}

func evalReplLine(name string, operandArgs []string) error {
	mode, err := parseMode(modeName)
	if err != nil {
		return err
	}

	args := make([]float64, len(operandArgs))
	for i, s := range operandArgs {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("operand %q: %w", s, err)
		}
		args[i] = v
	}

	z, acc, err := run(name, precision, mode, args)
	if err != nil {
		return err
	}

	f, _ := z.Float64()
	fmt.Printf("= %g (accuracy=%s)\n", f, acc)
	return nil
}
