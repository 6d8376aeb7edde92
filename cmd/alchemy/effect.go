package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/napolitain/alchemy/internal/alchemy"
	"github.com/napolitain/alchemy/internal/growth"
	"github.com/napolitain/alchemy/internal/models"
)

func newEffectCmd(a *app) *cobra.Command {
	var b models.Bubble
	var now, goal float64

	cmd := &cobra.Command{
		Use:   "effect",
		Short: "Evaluate a bubble's effect",
		Long: `Evaluates a bubble's growth curve at the current level, or compares it
with the goal level when --goal is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if b.Kind() == growth.KindUnknown {
				return fmt.Errorf("unknown growth curve %q (want one of %v)", b.Func, growth.AllKinds())
			}

			w := cmd.OutOrStdout()
			if !cmd.Flags().Changed("goal") {
				fmt.Fprintln(w, alchemy.FormatFixed(a.calc.Effect(b, now)))
				return nil
			}
			fmt.Fprintln(w, a.calc.EffectChange(b, now, goal))
			return nil
		},
	}

	cmd.Flags().StringVarP(&b.Func, "func", "f", "", "Growth curve (add, decay, decayMulti, bigBase, intervalAdd, reduce)")
	cmd.Flags().Float64Var(&b.X1, "x1", 0, "First curve parameter")
	cmd.Flags().Float64Var(&b.X2, "x2", 0, "Second curve parameter")
	cmd.Flags().Float64VarP(&now, "now", "n", 0, "Current level")
	cmd.Flags().Float64VarP(&goal, "goal", "g", 0, "Goal level")
	_ = cmd.MarkFlagRequired("func")
	return cmd
}
