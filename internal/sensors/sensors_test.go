package sensors

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/markusressel/pifan/internal/configuration"
	"github.com/stretchr/testify/assert"
)

func createThermalZoneFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "temp")
	err := os.WriteFile(path, []byte(content), 0644)
	assert.NoError(t, err)
	return path
}

func TestThermalZoneSensorGetValue(t *testing.T) {
	// GIVEN
	path := createThermalZoneFile(t, "52123\n")
	sensor := ThermalZoneSensor{
		Label: "cpu",
		Path:  path,
	}

	// WHEN
	value, err := sensor.GetValue()

	// THEN
	assert.NoError(t, err)
	assert.InDelta(t, 52.123, value, 0.001)
}

func TestThermalZoneSensorPlainDegrees(t *testing.T) {
	// GIVEN
	path := createThermalZoneFile(t, "52")
	sensor := ThermalZoneSensor{
		Label: "cpu",
		Path:  path,
	}

	// WHEN
	value, err := sensor.GetValue()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 52.0, value)
}

func TestThermalZoneSensorMillidegreeBoundary(t *testing.T) {
	// GIVEN
	path := createThermalZoneFile(t, "1000")
	sensor := ThermalZoneSensor{
		Label: "cpu",
		Path:  path,
	}

	// WHEN
	value, err := sensor.GetValue()

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 1.0, value)
}

func TestThermalZoneSensorMissingFile(t *testing.T) {
	// GIVEN
	sensor := ThermalZoneSensor{
		Label: "cpu",
		Path:  filepath.Join(t.TempDir(), "does_not_exist"),
	}

	// WHEN
	_, err := sensor.GetValue()

	// THEN
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrSensorUnavailable))
}

func TestThermalZoneSensorMalformedContent(t *testing.T) {
	// GIVEN
	path := createThermalZoneFile(t, "not a number")
	sensor := ThermalZoneSensor{
		Label: "cpu",
		Path:  path,
	}

	// WHEN
	_, err := sensor.GetValue()

	// THEN
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrSensorUnavailable))
}

func TestThermalZoneSensorMovingAvg(t *testing.T) {
	// GIVEN
	sensor := ThermalZoneSensor{Label: "cpu"}

	// WHEN
	sensor.SetMovingAvg(47.5)

	// THEN
	assert.Equal(t, 47.5, sensor.GetMovingAvg())
}

func TestNewSensorThermalZone(t *testing.T) {
	// GIVEN
	config := configuration.SensorConfig{
		ID: "cpu",
		ThermalZone: &configuration.ThermalZoneSensorConfig{
			Path: "/sys/class/thermal/thermal_zone0/temp",
		},
	}

	// WHEN
	sensor, err := NewSensor(config)

	// THEN
	assert.NoError(t, err)
	assert.IsType(t, &ThermalZoneSensor{}, sensor)
	assert.Equal(t, "cpu", sensor.GetId())
}

func TestNewSensorHost(t *testing.T) {
	// GIVEN
	config := configuration.SensorConfig{
		ID: "cpu",
		Host: &configuration.HostSensorConfig{
			Keys: []string{"cpu", "soc"},
		},
	}

	// WHEN
	sensor, err := NewSensor(config)

	// THEN
	assert.NoError(t, err)
	assert.IsType(t, &HostSensor{}, sensor)
}

func TestNewSensorNoMatchingType(t *testing.T) {
	// GIVEN
	config := configuration.SensorConfig{ID: "cpu"}

	// WHEN
	_, err := NewSensor(config)

	// THEN
	assert.Error(t, err)
}
