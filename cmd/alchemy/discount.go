package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/alchemy/internal/alchemy"
)

func newDiscountCmd(a *app) *cobra.Command {
	var levels alchemy.DiscountLevels
	var verbose bool

	cmd := &cobra.Command{
		Use:   "discount",
		Short: "Compute the bubble cost discount",
		Long: `Computes the bubble cost discount from the cauldron cost reduction,
Bubble XII, undeveloped costs bubble, Barley Brew vial and bargain tag levels.
With --profile the levels come from the profile; flags given explicitly win.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.profilePath != "" {
				p, err := a.loadProfile()
				if err != nil {
					return err
				}
				levels = mergeLevels(p.DiscountLevels(), levels, cmd)
			}

			factors := a.calc.Factors(levels)
			d := a.calc.Discount(levels)

			w := cmd.OutOrStdout()
			if !a.quiet {
				printTitle(w, "Bubble Discount")
			}
			printDiscount(w, factors, d)
			if verbose {
				fmt.Fprintln(w)
				fmt.Fprint(w, d.Report())
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&levels.CauldronCostReduction, "cauldron", 0, "Cauldron cost reduction level")
	cmd.Flags().Float64Var(&levels.BubbleCostBubble, "undev", 0, "Undeveloped costs bubble level")
	cmd.Flags().Float64Var(&levels.BubbleCostVial, "vial", 0, "Barley Brew vial level")
	cmd.Flags().Float64Var(&levels.BubbleTwelve, "twelve", 0, "Bubble XII level")
	cmd.Flags().Float64Var(&levels.BargainTag, "tag", 0, "Bargain tag level")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Also print the plain text report")
	return cmd
}

// mergeLevels overrides profile levels with the flags set on cmd
func mergeLevels(profile, flags alchemy.DiscountLevels, cmd *cobra.Command) alchemy.DiscountLevels {
	out := profile
	set := func(name string, dst *float64, v float64) {
		if cmd.Flags().Changed(name) {
			*dst = v
		}
	}
	set("cauldron", &out.CauldronCostReduction, flags.CauldronCostReduction)
	set("undev", &out.BubbleCostBubble, flags.BubbleCostBubble)
	set("vial", &out.BubbleCostVial, flags.BubbleCostVial)
	set("twelve", &out.BubbleTwelve, flags.BubbleTwelve)
	set("tag", &out.BargainTag, flags.BargainTag)
	return out
}

func printDiscount(w io.Writer, f alchemy.Factors, d alchemy.Discount) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Source", "Cost factor", "Discount %"}),
	)

	rows := []struct {
		name   string
		factor float64
		off    float64
	}{
		{"Cauldron", f.Cauldron, d.Cauldron},
		{"Bargain", f.Bargain, d.Bargain},
		{"Bubble XII", f.BubbleTwelve, d.BubbleTwelve},
		{"Undev + vial", f.UndevVial, d.UndevVial},
	}
	for _, r := range rows {
		_ = table.Append([]string{r.name, fmt.Sprintf("%.4f", r.factor), alchemy.FormatFixed(r.off)})
	}
	_ = table.Append([]string{"Total", fmt.Sprintf("%.4f", f.Total), alchemy.FormatFixed(d.Total)})
	_ = table.Render()

	successColor := color.New(color.FgGreen, color.Bold)
	fmt.Fprintln(w, successColor.Sprintf("\nBubbles cost %s%% less", alchemy.FormatFixed(d.Total)))
}
