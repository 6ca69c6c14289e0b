package util

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCoerceWithinRange(t *testing.T) {
	// GIVEN
	value := 50.0

	// WHEN
	result := Coerce(value, 0.0, 100.0)

	// THEN
	assert.Equal(t, 50.0, result)
}

func TestCoerceBelowRange(t *testing.T) {
	// GIVEN
	value := -10

	// WHEN
	result := Coerce(value, 0, 100)

	// THEN
	assert.Equal(t, 0, result)
}

func TestCoerceAboveRange(t *testing.T) {
	// GIVEN
	value := 120

	// WHEN
	result := Coerce(value, 0, 100)

	// THEN
	assert.Equal(t, 100, result)
}

func TestRatio(t *testing.T) {
	// GIVEN
	target := 60.0

	// WHEN
	result := Ratio(target, 40.0, 80.0)

	// THEN
	assert.Equal(t, 0.5, result)
}
