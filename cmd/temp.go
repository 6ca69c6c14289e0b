package cmd

import (
	"github.com/markusressel/pifan/internal"
	"github.com/markusressel/pifan/internal/configuration"
	"github.com/markusressel/pifan/internal/ui"
	"github.com/spf13/cobra"
)

var tempCmd = &cobra.Command{
	Use:   "temp",
	Short: "Print the current SoC temperature",
	RunE: func(cmd *cobra.Command, args []string) error {
		setupUi()
		configuration.LoadConfig()

		sensor := internal.BuildSensor()
		value, err := sensor.GetValue()
		if err != nil {
			return err
		}

		ui.Printfln("%.1f°C", value)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tempCmd)
}
