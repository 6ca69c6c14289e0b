package statistics

import (
	"github.com/markusressel/pifan/internal/fans"
	"github.com/prometheus/client_golang/prometheus"
)

const subsystemFan = "fan"

type FanCollector struct {
	fan  fans.Fan
	duty *prometheus.Desc
}

func NewFanCollector(fan fans.Fan) *FanCollector {
	return &FanCollector{
		fan: fan,
		duty: prometheus.NewDesc(prometheus.BuildFQName(namespace, subsystemFan, "duty_cycle_percent"),
			"Currently configured duty cycle of the fan",
			[]string{"id"}, nil,
		),
	}
}

func (collector *FanCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.duty
}

// Collect implements the required collect function for all prometheus collectors
func (collector *FanCollector) Collect(ch chan<- prometheus.Metric) {
	fan := collector.fan
	duty, err := fan.GetDutyCycle()
	if err != nil {
		return
	}
	ch <- prometheus.MustNewConstMetric(collector.duty, prometheus.GaugeValue, float64(duty), fan.GetId())
}
