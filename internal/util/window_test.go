package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillWindow(t *testing.T) {
	// GIVEN
	window := CreateRollingWindow(5)

	// WHEN
	FillWindow(window, 5, 42.0)

	// THEN
	assert.Equal(t, 42.0, GetWindowAvg(window))
}

func TestGetWindowAvg(t *testing.T) {
	// GIVEN
	window := CreateRollingWindow(3)
	for _, value := range []float64{40.0, 50.0, 60.0} {
		window.Append(value)
	}

	// WHEN
	avg := GetWindowAvg(window)

	// THEN
	assert.Equal(t, 50.0, avg)
}

func TestGetWindowMax(t *testing.T) {
	// GIVEN
	window := CreateRollingWindow(3)
	for _, value := range []float64{40.0, 72.5, 60.0} {
		window.Append(value)
	}

	// WHEN
	max := GetWindowMax(window)

	// THEN
	assert.Equal(t, 72.5, max)
}
