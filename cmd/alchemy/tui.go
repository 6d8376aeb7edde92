package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/napolitain/alchemy/internal/loader"
	"github.com/napolitain/alchemy/internal/tui"
)

func newTUICmd(a *app) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Plan bubble goals interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.loadProfile()
			if err != nil {
				return err
			}

			final, err := tea.NewProgram(tui.New(p, a.calc), tea.WithAltScreen()).Run()
			if err != nil {
				return fmt.Errorf("planner failed: %w", err)
			}
			if !save {
				return nil
			}

			m, ok := final.(tui.Model)
			if !ok {
				return fmt.Errorf("unexpected planner model %T", final)
			}
			out, err := loader.MarshalProfile(m.Profile())
			if err != nil {
				return err
			}
			if err := os.WriteFile(a.profilePath, out, 0o644); err != nil {
				return fmt.Errorf("failed to save profile: %w", err)
			}
			color.Green("Saved goals to %s", a.profilePath)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&save, "save", "s", false, "Write edited goals back to the profile")
	return cmd
}
