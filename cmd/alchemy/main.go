package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/napolitain/alchemy/internal/alchemy"
	"github.com/napolitain/alchemy/internal/config"
	"github.com/napolitain/alchemy/internal/growth"
	"github.com/napolitain/alchemy/internal/loader"
	"github.com/napolitain/alchemy/internal/logger"
)

const serviceName = "alchemy"

// app carries what every subcommand needs
type app struct {
	cfg         *config.Config
	log         *slog.Logger
	calc        *alchemy.Calculator
	profilePath string
	quiet       bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "alchemy",
		Short: "Alchemy vial and bubble calculator",
		Long: `Lists alchemy vials, computes the bubble cost discount and
compares bubble effects between the current and goal levels.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.profilePath, "profile", "p", "", "Path to YAML profile (default $PROFILE_PATH)")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "Minimal output")

	rootCmd.AddCommand(
		newVialsCmd(a),
		newCostsCmd(),
		newDiscountCmd(a),
		newEffectCmd(a),
		newPlanCmd(a),
		newTUICmd(a),
	)
	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg
	a.log = logger.New(cfg.LoggerConfig(serviceName), cmd.ErrOrStderr())

	// The discount breakdown is only logged while developing
	var diag *slog.Logger
	if cfg.Development() {
		diag = a.log
	}
	a.calc = alchemy.NewCalculator(growth.Default(), diag)

	if a.profilePath == "" {
		a.profilePath = cfg.ProfilePath
	}
	return nil
}

func (a *app) loadProfile() (*loader.Profile, error) {
	if a.profilePath == "" {
		return nil, fmt.Errorf("no profile given: use --profile or set PROFILE_PATH")
	}
	p, err := loader.LoadProfile(a.profilePath)
	if err != nil {
		return nil, err
	}
	a.log.Debug("profile loaded", "path", a.profilePath, "cauldrons", len(p.Bubbles))
	return p, nil
}

func printTitle(w io.Writer, title string) {
	titleColor := color.New(color.FgCyan, color.Bold)
	fmt.Fprintln(w, titleColor.Sprint("\n╭───────────────────────────╮"))
	fmt.Fprintln(w, titleColor.Sprintf("│  %-25s│", title))
	fmt.Fprintln(w, titleColor.Sprint("╰───────────────────────────╯"))
	fmt.Fprintln(w)
}
