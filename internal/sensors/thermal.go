package sensors

import (
	"fmt"

	"github.com/markusressel/pifan/internal/util"
)

type ThermalZoneSensor struct {
	Label     string  `json:"label"`
	Path      string  `json:"path"`
	MovingAvg float64 `json:"movingAvg"`
}

func (sensor ThermalZoneSensor) GetId() string {
	return sensor.Label
}

func (sensor ThermalZoneSensor) GetValue() (float64, error) {
	integer, err := util.ReadIntFromFile(sensor.Path)
	if err != nil {
		return 0, fmt.Errorf("%w: reading %s: %v", ErrSensorUnavailable, sensor.Path, err)
	}

	result := float64(integer)
	// thermal zones report millidegrees, some hwmon inputs plain degrees.
	// values of 1000 and above are taken as millidegrees, plain degree
	// readings never get that high
	if result >= 1000 {
		result = result / 1000
	}
	return result, nil
}

func (sensor ThermalZoneSensor) GetMovingAvg() (avg float64) {
	return sensor.MovingAvg
}

func (sensor *ThermalZoneSensor) SetMovingAvg(avg float64) {
	sensor.MovingAvg = avg
}
