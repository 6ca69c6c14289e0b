package cmd

import (
	"bytes"
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/markusressel/pifan/cmd/global"
	"github.com/markusressel/pifan/internal/curves"
	"github.com/markusressel/pifan/internal/ui"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/tomlazar/table"
)

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Print the fan curve to console",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		setupUi()
		curve := curves.Default()

		tableString, err := renderBreakpointTable(curve)
		if err != nil {
			return err
		}
		// cells contain literal '%', the rendered table is data, not a format
		ui.Printf("%s", tableString)

		// plot the interpolated curve
		caption := "Duty Cycle / Temperature"
		graph := asciigraph.Plot(curve.Points(1), asciigraph.Height(15), asciigraph.Width(100), asciigraph.Caption(caption))
		ui.Printfln("%s", graph)

		return nil
	},
}

func renderBreakpointTable(curve *curves.Curve) (string, error) {
	var rows [][]string
	for _, breakpoint := range curve.Breakpoints() {
		rows = append(rows, []string{
			fmt.Sprintf("%.0f°C", breakpoint.Temp),
			fmt.Sprintf("%d%%", breakpoint.Duty),
		})
	}
	tab := table.Table{
		Headers: []string{"Temperature", "Duty Cycle"},
		Rows:    rows,
	}
	var buf bytes.Buffer
	err := tab.WriteTable(&buf, &table.Config{
		ShowIndex:       false,
		Color:           !global.NoColor,
		AlternateColors: true,
		TitleColorCode:  ansi.ColorCode("white+buf"),
		AltColorCodes: []string{
			ansi.ColorCode("white"),
			ansi.ColorCode("white:236"),
		},
	})
	return buf.String(), err
}

func init() {
	rootCmd.AddCommand(curveCmd)
}
