package statistics

import "github.com/prometheus/client_golang/prometheus"

const subsystemController = "controller"

// ControllerMetrics counts the failure conditions of the control loop.
type ControllerMetrics struct {
	SensorReadErrors    prometheus.Counter
	PwmWriteErrors      prometheus.Counter
	FailsafeActivations prometheus.Counter
}

func NewControllerMetrics() *ControllerMetrics {
	return &ControllerMetrics{
		SensorReadErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemController,
			Name:      "sensor_read_errors_total",
			Help:      "Number of failed temperature reads",
		}),
		PwmWriteErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemController,
			Name:      "pwm_write_errors_total",
			Help:      "Number of rejected duty cycle writes",
		}),
		FailsafeActivations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystemController,
			Name:      "failsafe_activations_total",
			Help:      "Number of times the fail-safe duty cycle was forced",
		}),
	}
}

func (m *ControllerMetrics) Describe(ch chan<- *prometheus.Desc) {
	m.SensorReadErrors.Describe(ch)
	m.PwmWriteErrors.Describe(ch)
	m.FailsafeActivations.Describe(ch)
}

func (m *ControllerMetrics) Collect(ch chan<- prometheus.Metric) {
	m.SensorReadErrors.Collect(ch)
	m.PwmWriteErrors.Collect(ch)
	m.FailsafeActivations.Collect(ch)
}
