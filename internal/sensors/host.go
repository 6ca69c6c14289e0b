package sensors

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/host"
)

const hostSensorTimeout = 2 * time.Second

// HostSensor discovers the SoC temperature through the host sensor list
// instead of a fixed thermal zone path. Used as a fallback on boards where
// the well-known zone file is missing.
type HostSensor struct {
	Label     string   `json:"label"`
	Keys      []string `json:"keys"`
	MovingAvg float64  `json:"movingAvg"`
}

func (sensor HostSensor) GetId() string {
	return sensor.Label
}

func (sensor HostSensor) GetValue() (float64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), hostSensorTimeout)
	defer cancel()

	temperatures, err := host.SensorsTemperaturesWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: listing host sensors: %v", ErrSensorUnavailable, err)
	}

	for _, temperature := range temperatures {
		key := strings.ToLower(temperature.SensorKey)
		for _, wanted := range sensor.Keys {
			if strings.Contains(key, strings.ToLower(wanted)) {
				return temperature.Temperature, nil
			}
		}
	}

	// no key matched, fall back to the first reported sensor
	if len(temperatures) > 0 {
		return temperatures[0].Temperature, nil
	}

	return 0, fmt.Errorf("%w: host reports no temperature sensors", ErrSensorUnavailable)
}

func (sensor HostSensor) GetMovingAvg() (avg float64) {
	return sensor.MovingAvg
}

func (sensor *HostSensor) SetMovingAvg(avg float64) {
	sensor.MovingAvg = avg
}
