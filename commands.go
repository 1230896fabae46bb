package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pivolan/supply_plotter/config"
	logging "github.com/pivolan/supply_plotter/log"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "supply_plotter <payload-json> <years>",
		Short: "Plot token supply over time to a PNG chart",
		Long: `supply_plotter reads {"x": [blocks...], "y": [supply...]} from the first argument
and writes supply_over_time_<years>yrs.png, where <years> is the second argument.`,
		Example:       `  supply_plotter '{"x":[0,1,2,3],"y":[100,90,80,70]}' 5`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPlot,
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func Execute() error {
	return newRootCmd().Execute()
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	if err := logging.Init(cfg.Verbose); err != nil {
		return err
	}
	defer logging.Sync()

	payload, err := ParsePayload(args[0])
	if err != nil {
		return err
	}
	years := args[1]
	logging.LogDebug("Payload parsed",
		zap.Int("x_len", len(payload.X)),
		zap.Int("y_len", len(payload.Y)),
		zap.String("years", years))

	renderer := SupplyChartRenderer{
		OutputDir: cfg.OutputDir,
		Width:     cfg.Width,
		Height:    cfg.Height,
		HTML:      cfg.HTML,
	}
	if _, err := renderer.Render(payload, years); err != nil {
		return err
	}

	if cfg.Summary {
		fmt.Fprintln(cmd.OutOrStdout(), GenerateSupplySummary(payload, years))
	}
	return nil
}
