package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/alchemy/internal/alchemy"
	"github.com/napolitain/alchemy/internal/loader"
	"github.com/napolitain/alchemy/internal/models"
)

func newPlanCmd(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show effect changes for the goals in a profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.loadProfile()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if !a.quiet {
				printTitle(w, "Bubble Goals")
			}
			printPlan(w, a.calc, p, all)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include bubbles without a goal above the current level")
	return cmd
}

// printPlan lists the bubbles whose goal is above the current level
func printPlan(w io.Writer, calc *alchemy.Calculator, p *loader.Profile, all bool) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Cauldron", "#", "Bubble", "Now", "Goal", "Effect"}),
	)

	rows := 0
	for _, c := range models.AllColors() {
		for i, b := range p.Bubbles[c] {
			ref := models.BubbleRef{Color: c, Index: i}
			now := p.Data.UpgradeLevel(ref)
			goal := p.Data.GoalLevel(ref)
			if goal <= now && !all {
				continue
			}
			_ = table.Append([]string{
				string(c),
				strconv.Itoa(i),
				b.Name,
				strconv.Itoa(now),
				strconv.Itoa(goal),
				calc.EffectChange(b, float64(now), float64(goal)),
			})
			rows++
		}
	}

	if rows == 0 {
		fmt.Fprintln(w, color.YellowString("No goals above current levels."))
		return
	}
	_ = table.Render()
}
