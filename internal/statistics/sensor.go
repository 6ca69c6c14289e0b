package statistics

import (
	"github.com/markusressel/pifan/internal/sensors"
	"github.com/prometheus/client_golang/prometheus"
)

const subsystemSensor = "sensor"

type SensorCollector struct {
	sensor      sensors.Sensor
	temperature *prometheus.Desc
}

func NewSensorCollector(sensor sensors.Sensor) *SensorCollector {
	return &SensorCollector{
		sensor: sensor,
		temperature: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemSensor, "temperature_celsius"),
			"Moving average of the sensor temperature",
			[]string{"id"}, nil,
		),
	}
}

func (collector *SensorCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.temperature
}

// Collect implements the required collect function for all prometheus collectors
func (collector *SensorCollector) Collect(ch chan<- prometheus.Metric) {
	sensor := collector.sensor
	ch <- prometheus.MustNewConstMetric(collector.temperature, prometheus.GaugeValue, sensor.GetMovingAvg(), sensor.GetId())
}
