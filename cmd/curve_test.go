package cmd

import (
	"testing"

	"github.com/markusressel/pifan/cmd/global"
	"github.com/markusressel/pifan/internal/curves"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestRenderBreakpointTableKeepsPercentLiterals(t *testing.T) {
	// GIVEN
	global.NoColor = true
	defer func() { global.NoColor = false }()
	curve := curves.Default()

	// WHEN
	tableString, err := renderBreakpointTable(curve)

	// THEN
	assert.NoError(t, err)
	assert.Contains(t, tableString, "0%")
	assert.Contains(t, tableString, "10%")
	assert.Contains(t, tableString, "100%")
	assert.Contains(t, tableString, "40°C")
	assert.Contains(t, tableString, "75°C")
}

func TestCurveCommandAppliesTerminalSettings(t *testing.T) {
	// GIVEN
	global.Verbose = true
	global.NoStyle = true
	defer func() {
		global.Verbose = false
		global.NoStyle = false
		pterm.PrintDebugMessages = false
	}()

	// WHEN
	err := curveCmd.RunE(curveCmd, []string{})

	// THEN
	assert.NoError(t, err)
	assert.True(t, pterm.PrintDebugMessages)
}
