package configuration

type SensorConfig struct {
	ID          string                   `json:"id"`
	ThermalZone *ThermalZoneSensorConfig `json:"thermalZone,omitempty"`
	Host        *HostSensorConfig        `json:"host,omitempty"`
}

type ThermalZoneSensorConfig struct {
	// Path of the sysfs file exposing the zone temperature in millidegrees
	Path string `json:"path"`
}

type HostSensorConfig struct {
	// Keys are matched (case insensitive, substring) against the sensor
	// keys reported by the host, first match wins
	Keys []string `json:"keys"`
}
