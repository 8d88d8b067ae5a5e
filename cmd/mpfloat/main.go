// Command mpfloat is a shell front end for the bigfloat package: it
// evaluates a single operation at a chosen precision and rounding mode,
// or drops into an interactive console for trying several in a row.
// Modeled on oisee-z80-optimizer/cmd/z80opt's cobra-based command
// layout (root command, flag-bearing subcommands, RunE returning
// wrapped errors) generalized from that tool's assembly-optimization
// verbs to this package's arithmetic ones.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	bigfloat "github.com/BrianGladman/mpfloat"
	"github.com/BrianGladman/mpfloat/internal/applog"
	"github.com/BrianGladman/mpfloat/internal/cliconfig"
	"github.com/spf13/cobra"
)

var (
	precision  uint
	modeName   string
	configPath string
	verbose    bool

	logger *slog.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mpfloat",
		Short: "Arbitrary-precision binary floating-point arithmetic from the shell",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadSettings()
		},
	}
	rootCmd.PersistentFlags().UintVar(&precision, "prec", 0, "working precision in bits (0 = use config/default)")
	rootCmd.PersistentFlags().StringVar(&modeName, "mode", "", "rounding mode: ToNearestEven, ToZero, ToPositiveInf, ToNegativeInf")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a key=value settings file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "echo log records to stderr")

	rootCmd.AddCommand(newComputeCmd(), newReplCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mpfloat:", err)
		os.Exit(1)
	}
}

// loadSettings applies cliconfig.Default, then an optional config
// file, then any flags the user set explicitly, and wires the global
// exponent range and default precision/mode from the result.
func loadSettings() error {
	cfg := cliconfig.Default()
	if configPath != "" {
		loaded, err := cliconfig.Load(configPath, cfg)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	if precision != 0 {
		cfg.Precision = precision
	}
	if modeName != "" {
		cfg.Mode = modeName
	}
	precision = cfg.Precision

	mode, err := parseMode(cfg.Mode)
	if err != nil {
		return err
	}
	modeName = mode.String()

	r := bigfloat.NewRange()
	r.SetEmin(cfg.Emin)
	r.SetEmax(cfg.Emax)
	r.SetDefaultPrec(cfg.Precision)
	r.SetDefaultMode(mode)
	bigfloat.SetActiveRange(r)

	handler := applog.New(os.Stdout, os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	handler.SetVerbose(verbose)
	logger = slog.New(handler)
	logger.Debug("settings loaded", "precision", cfg.Precision, "mode", modeName, "emin", cfg.Emin, "emax", cfg.Emax)
	return nil
}

func parseMode(name string) (bigfloat.RoundingMode, error) {
	switch name {
	case "", "ToNearestEven":
		return bigfloat.ToNearestEven, nil
	case "ToZero":
		return bigfloat.ToZero, nil
	case "ToPositiveInf":
		return bigfloat.ToPositiveInf, nil
	case "ToNegativeInf":
		return bigfloat.ToNegativeInf, nil
	default:
		return bigfloat.ToNearestEven, fmt.Errorf("unknown rounding mode %q", name)
	}
}

func newComputeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compute <op> [operands...]",
		Short: "Evaluate one operation and print the correctly rounded result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return computeAndPrint(args[0], args[1:])
		},
	}
}

func computeAndPrint(name string, operandArgs []string) error {
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
	fmt.Printf("%g (%s, accuracy=%s)\n", f, name, acc)
	logger.Info("computed", "op", name, "result", f, "accuracy", acc.String())
	return nil
}
