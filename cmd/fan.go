package cmd

import (
	"strconv"

	"github.com/markusressel/pifan/internal"
	"github.com/markusressel/pifan/internal/configuration"
	"github.com/markusressel/pifan/internal/fans"
	"github.com/markusressel/pifan/internal/ui"
	"github.com/spf13/cobra"
)

var fanCmd = &cobra.Command{
	Use:   "fan",
	Short: "Fan related commands",
}

var setSpeedCmd = &cobra.Command{
	Use:   "setSpeed",
	Short: "Set the duty cycle of the fan to the given percentage ([0..100])",
	Long: `Initializes the PWM output and applies a fixed duty cycle once.
Useful to diagnose hardware and wiring issues.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setupUi()

		pct, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}

		configuration.LoadConfig()

		fan := internal.BuildFan()
		if err = fan.Init(); err != nil {
			return err
		}
		return fan.SetDutyCycle(pct)
	},
}

var speedCmd = &cobra.Command{
	Use:   "speed",
	Short: "Print the currently configured duty cycle of the fan",
	RunE: func(cmd *cobra.Command, args []string) error {
		setupUi()
		configuration.LoadConfig()

		fan := internal.BuildFan()
		duty, err := fan.GetDutyCycle()
		if err != nil {
			return err
		}

		ui.Printfln("%d%% (of %d%%)", duty, fans.MaxDuty)
		return nil
	},
}

func init() {
	fanCmd.AddCommand(setSpeedCmd)
	fanCmd.AddCommand(speedCmd)
	rootCmd.AddCommand(fanCmd)
}
