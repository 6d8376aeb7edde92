package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/alchemy/internal/alchemy"
	"github.com/napolitain/alchemy/internal/models"
)

func newVialsCmd(a *app) *cobra.Command {
	var roll int
	var level float64

	cmd := &cobra.Command{
		Use:   "vials",
		Short: "List alchemy vials",
		RunE: func(cmd *cobra.Command, args []string) error {
			if roll < 0 || roll > models.MaxRoll {
				return fmt.Errorf("roll must be between 0 and %d, got %d", models.MaxRoll, roll)
			}
			w := cmd.OutOrStdout()
			if !a.quiet {
				printTitle(w, "Alchemy Vials")
			}
			printVials(w, a.calc, models.VialsForRoll(roll), level)
			return nil
		},
	}

	cmd.Flags().IntVarP(&roll, "roll", "r", models.MaxRoll, "Show vials obtainable with this roll")
	cmd.Flags().Float64VarP(&level, "level", "l", 0, "Show each vial's bonus at this level")
	return cmd
}

func printVials(w io.Writer, calc *alchemy.Calculator, vials []models.Vial, level float64) {
	header := []string{"Vial", "Roll", "Material", "Base", "Effect"}
	if level > 0 {
		header = append(header, fmt.Sprintf("Bonus @%g", level))
	}
	table := tablewriter.NewTable(w, tablewriter.WithHeader(header))

	for _, v := range vials {
		row := []string{
			v.Name,
			strconv.Itoa(v.Roll),
			v.Material,
			strconv.FormatFloat(v.Base, 'f', -1, 64),
			v.Effect,
		}
		if level > 0 {
			row = append(row, alchemy.FormatFixed(calc.VialEffect(v, level)))
		}
		_ = table.Append(row)
	}
	_ = table.Render()
}

func newCostsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "costs",
		Short: "Show vial upgrade costs per tier",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewTable(cmd.OutOrStdout(),
				tablewriter.WithHeader([]string{"Tier", "Cost"}),
			)
			for tier := 0; tier <= models.MaxVialTier(); tier++ {
				cost, _ := models.VialCostForTier(tier)
				_ = table.Append([]string{strconv.Itoa(tier), strconv.FormatFloat(cost, 'f', 0, 64)})
			}
			return table.Render()
		},
	}
}
