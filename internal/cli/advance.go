package cli

import (
	"github.com/arthur-debert/gildedrose/pkg/fixture"
	"github.com/arthur-debert/gildedrose/pkg/inventory"
	"github.com/arthur-debert/gildedrose/pkg/logging"
	"github.com/arthur-debert/gildedrose/pkg/report"
	"github.com/spf13/cobra"
)

func newAdvanceCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "advance",
		Short:   MsgAdvanceShort,
		Long:    MsgAdvanceLong,
		Example: MsgAdvanceExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.advance")

			ropts, err := opts.reportOptions(cmd)
			if err != nil {
				return err
			}

			items, err := fixture.Default()
			if err != nil {
				return err
			}

			shop := inventory.NewShop(items)
			before := report.Capture(0, shop.Items())
			shop.Advance()
			after := report.Capture(1, shop.Items())

			logger.Info().Int("items", len(items)).Msg("Stock advanced one day")

			return report.NewRenderer(cmd.OutOrStdout(), ropts).Render(before, after)
		},
	}
}

func newStockCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "stock",
		Short:   MsgStockShort,
		Example: MsgStockExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ropts, err := opts.reportOptions(cmd)
			if err != nil {
				return err
			}

			items, err := fixture.Default()
			if err != nil {
				return err
			}

			return report.NewRenderer(cmd.OutOrStdout(), ropts).Render(report.Capture(0, items))
		},
	}
}
