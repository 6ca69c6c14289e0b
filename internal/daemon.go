package internal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/markusressel/pifan/internal/configuration"
	"github.com/markusressel/pifan/internal/controller"
	"github.com/markusressel/pifan/internal/curves"
	"github.com/markusressel/pifan/internal/fans"
	"github.com/markusressel/pifan/internal/sensors"
	"github.com/markusressel/pifan/internal/statistics"
	"github.com/markusressel/pifan/internal/ui"
	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RunDaemon() {
	config := configuration.CurrentConfig

	if config.Fan.Pwm != nil && getProcessOwner() != "root" {
		ui.Fatal("Driving a hardware PWM channel requires root permissions, please run pifan as root")
	}

	sensor := BuildSensor()
	fan := BuildFan()
	curve := curves.Default()

	metrics := statistics.NewControllerMetrics()
	statistics.Register(statistics.NewSensorCollector(sensor))
	statistics.Register(statistics.NewFanCollector(fan))
	statistics.Register(metrics)

	ctx, cancel := context.WithCancel(context.Background())

	var g run.Group
	{
		// === fan controller
		fanController := controller.NewFanController(
			sensor,
			curve,
			fan,
			controller.PollInterval,
			config.SensorReadTimeout,
			metrics,
		)

		g.Add(func() error {
			err := fanController.Run(ctx)
			ui.Info("Fan controller for fan %s stopped.", fan.GetId())
			return err
		}, func(err error) {
			if err != nil {
				ui.Warning("Error controlling fan %s: %v", fan.GetId(), err)
			}
			cancel()
		})
	}
	{
		// === Prometheus exporter, disabled by default
		if config.Statistics.Enabled {
			addr := fmt.Sprintf(":%d", statisticsPort(config.Statistics.Port))
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			server := &http.Server{Addr: addr, Handler: mux}

			g.Add(func() error {
				ui.Info("Starting statistics server on %s", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					ui.Error("Cannot start statistics server (%s)", err.Error())
					return err
				}
				return nil
			}, func(err error) {
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer timeoutCancel()
				_ = server.Shutdown(timeoutCtx)
				ui.Info("Statistics server stopped.")
				cancel()
			})
		}
	}
	{
		// === signal handling
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			<-sig
			ui.Info("Received termination signal, exiting...")
			return nil
		}, func(err error) {
			defer close(sig)
			signal.Stop(sig)
			cancel()
		})
	}

	if err := g.Run(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	ui.Info("Done.")
	os.Exit(0)
}

// BuildSensor creates the temperature sampler from the current
// configuration, falling back to host sensor discovery when the
// configured thermal zone does not exist.
func BuildSensor() sensors.Sensor {
	config := configuration.CurrentConfig.Sensor
	if len(config.ID) <= 0 {
		config.ID = "cpu"
	}

	if config.ThermalZone != nil {
		if _, err := os.Stat(config.ThermalZone.Path); err != nil {
			ui.Warning("Thermal zone %s not found, falling back to host sensor discovery", config.ThermalZone.Path)
			config.ThermalZone = nil
			if config.Host == nil {
				config.Host = &configuration.HostSensorConfig{
					Keys: []string{"cpu", "soc", "core", "processor"},
				}
			}
		}
	}

	sensor, err := sensors.NewSensor(config)
	if err != nil {
		ui.Fatal("Unable to process sensor configuration: %v", err)
	}

	// prime the moving average with the current value
	currentValue, err := sensor.GetValue()
	if err != nil {
		ui.Warning("Error reading sensor %s: %v", sensor.GetId(), err)
	} else {
		sensor.SetMovingAvg(currentValue)
	}

	return sensor
}

// BuildFan creates the PWM output from the current configuration.
func BuildFan() fans.Fan {
	config := configuration.CurrentConfig.Fan
	if len(config.ID) <= 0 {
		config.ID = "fan"
	}

	fan, err := fans.NewFan(config)
	if err != nil {
		ui.Fatal("Unable to process fan configuration: %v", err)
	}
	return fan
}

// statisticsPort falls back to the default exporter port when the
// configured value is outside the valid TCP port range.
func statisticsPort(configured int) int {
	if configured <= 0 || configured > 65535 {
		return 9100
	}
	return configured
}

func getProcessOwner() string {
	stdout, err := exec.Command("ps", "-o", "user=", "-p", strconv.Itoa(os.Getpid())).Output()
	if err != nil {
		ui.Fatal("Error checking process owner: %v", err)
	}
	return strings.TrimSpace(string(stdout))
}
