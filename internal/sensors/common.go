package sensors

import (
	"errors"
	"fmt"

	"github.com/markusressel/pifan/internal/configuration"
)

// ErrSensorUnavailable indicates that the temperature interface could not
// be opened or read. A failed read must never be interpreted as "0°C".
var ErrSensorUnavailable = errors.New("sensor unavailable")

type Sensor interface {
	GetId() string

	// GetValue returns the current temperature of this sensor in °C
	GetValue() (float64, error)

	// GetMovingAvg returns the moving average of this sensor's temperature
	GetMovingAvg() float64
	SetMovingAvg(avg float64)
}

func NewSensor(config configuration.SensorConfig) (Sensor, error) {
	if config.ThermalZone != nil {
		return &ThermalZoneSensor{
			Label: config.ID,
			Path:  config.ThermalZone.Path,
		}, nil
	}

	if config.Host != nil {
		return &HostSensor{
			Label: config.ID,
			Keys:  config.Host.Keys,
		}, nil
	}

	return nil, fmt.Errorf("no matching sensor type for sensor: %s", config.ID)
}
