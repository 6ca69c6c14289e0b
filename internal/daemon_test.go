package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatisticsPortInRange(t *testing.T) {
	// GIVEN
	ports := []int{1, 9100, 65535}

	// WHEN / THEN
	for _, port := range ports {
		assert.Equal(t, port, statisticsPort(port))
	}
}

func TestStatisticsPortOutOfRange(t *testing.T) {
	// GIVEN
	ports := []int{0, -1, 65536, 100000}

	// WHEN / THEN
	for _, port := range ports {
		assert.Equal(t, 9100, statisticsPort(port))
	}
}
