package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/asecurityteam/rolling"
	"github.com/markusressel/pifan/internal/curves"
	"github.com/markusressel/pifan/internal/fans"
	"github.com/markusressel/pifan/internal/sensors"
	"github.com/markusressel/pifan/internal/statistics"
	"github.com/markusressel/pifan/internal/ui"
	"github.com/markusressel/pifan/internal/util"
)

const (
	// PollInterval is the fixed cadence of the control loop.
	PollInterval = 5 * time.Second

	// TempWindowSize is the number of samples of the temperature
	// moving average, smoothing short spikes for quieter fan behavior.
	TempWindowSize = 6

	// MaxSensorFailures is the number of consecutive failed reads during
	// which the last known-good temperature is reused before the
	// fail-safe duty cycle is forced.
	MaxSensorFailures = 3

	// MaxWriteFailures is the number of consecutive rejected duty cycle
	// writes after which the loop gives up, since the fan can no longer
	// be controlled at all.
	MaxWriteFailures = 5
)

type FanController interface {
	// Run starts the control loop and blocks until the context is
	// cancelled or an unrecoverable error occurs
	Run(ctx context.Context) error

	// UpdateFanSpeed executes a single control loop iteration:
	// sample temperature, evaluate the curve, apply the duty cycle
	UpdateFanSpeed() error
}

type fanController struct {
	sensor      sensors.Sensor
	curve       *curves.Curve
	fan         fans.Fan
	updateRate  time.Duration
	readTimeout time.Duration
	metrics     *statistics.ControllerMetrics

	tempWindow     *rolling.PointPolicy
	windowPrimed   bool
	lastTemp       float64
	haveLastTemp   bool
	sensorFailures int
	writeFailures  int
}

func NewFanController(
	sensor sensors.Sensor,
	curve *curves.Curve,
	fan fans.Fan,
	updateRate time.Duration,
	readTimeout time.Duration,
	metrics *statistics.ControllerMetrics,
) FanController {
	return &fanController{
		sensor:      sensor,
		curve:       curve,
		fan:         fan,
		updateRate:  updateRate,
		readTimeout: readTimeout,
		metrics:     metrics,
		tempWindow:  util.CreateRollingWindow(TempWindowSize),
	}
}

func (f *fanController) Run(ctx context.Context) error {
	if err := f.fan.Init(); err != nil {
		ui.Error("Unable to initialize PWM output %s: %v", f.fan.GetId(), err)
		return err
	}
	ui.Info("Initialized %s at %d%% duty cycle", f.fan.GetId(), fans.FailsafeDuty)

	ui.Info("Starting controller loop for fan '%s'", f.fan.GetId())
	tick := time.Tick(f.updateRate)
	for {
		select {
		case <-ctx.Done():
			ui.Info("Stopping controller for fan %s, applying fail-safe duty cycle...", f.fan.GetId())
			if err := f.fan.Release(fans.FailsafeDuty); err != nil {
				ui.Warning("Unable to apply fail-safe duty cycle on %s: %v", f.fan.GetId(), err)
			}
			return nil
		case <-tick:
			if err := f.UpdateFanSpeed(); err != nil {
				ui.Error("Error in FanController for fan %s: %v", f.fan.GetId(), err)
				if err1 := f.fan.Release(fans.FailsafeDuty); err1 != nil {
					ui.Warning("Unable to restore fan %s, make sure it is running!", f.fan.GetId())
				}
				return err
			}
		}
	}
}

func (f *fanController) UpdateFanSpeed() error {
	temp, err := f.readTemperature()
	if err != nil {
		f.sensorFailures++
		if f.metrics != nil {
			f.metrics.SensorReadErrors.Inc()
		}

		if f.haveLastTemp && f.sensorFailures <= MaxSensorFailures {
			ui.Warning("Sensor read failed (%d/%d), reusing last known temperature %.1f°C: %v",
				f.sensorFailures, MaxSensorFailures, f.lastTemp, err)
			temp = f.lastTemp
		} else {
			// never assume a cold system on a broken sensor
			ui.Error("Sensor unavailable, forcing fail-safe duty cycle: %v", err)
			if f.metrics != nil {
				f.metrics.FailsafeActivations.Inc()
			}
			return f.applyDutyCycle(fans.FailsafeDuty)
		}
	} else {
		f.sensorFailures = 0
		f.lastTemp = temp
		f.haveLastTemp = true
	}

	avg := f.updateMovingAvg(temp)
	target := f.curve.Evaluate(avg)
	ui.Debug("Temp %.1f°C (avg %.1f°C, peak %.1f°C), desired duty cycle: %d%%",
		temp, avg, util.GetWindowMax(f.tempWindow), target)

	return f.applyDutyCycle(target)
}

// readTemperature samples the sensor, bounded by the configured read
// timeout so a stuck sysfs interface cannot hang the loop.
func (f *fanController) readTemperature() (float64, error) {
	type sample struct {
		value float64
		err   error
	}

	resultChan := make(chan sample, 1)
	go func() {
		value, err := f.sensor.GetValue()
		resultChan <- sample{value, err}
	}()

	select {
	case result := <-resultChan:
		return result.value, result.err
	case <-time.After(f.readTimeout):
		return 0, fmt.Errorf("%w: read timed out after %s", sensors.ErrSensorUnavailable, f.readTimeout)
	}
}

func (f *fanController) updateMovingAvg(temp float64) float64 {
	if !f.windowPrimed {
		util.FillWindow(f.tempWindow, TempWindowSize, temp)
		f.windowPrimed = true
	} else {
		f.tempWindow.Append(temp)
	}

	avg := util.GetWindowAvg(f.tempWindow)
	f.sensor.SetMovingAvg(avg)
	return avg
}

func (f *fanController) applyDutyCycle(pct int) error {
	err := f.fan.SetDutyCycle(pct)
	if err != nil {
		f.writeFailures++
		if f.metrics != nil {
			f.metrics.PwmWriteErrors.Inc()
		}
		ui.Error("Error setting %s to %d%% (%d/%d): %v", f.fan.GetId(), pct, f.writeFailures, MaxWriteFailures, err)

		if f.writeFailures >= MaxWriteFailures {
			return fmt.Errorf("pwm output %s unresponsive after %d consecutive write failures: %w",
				f.fan.GetId(), f.writeFailures, err)
		}
		// transient, retry on the next iteration
		return nil
	}

	f.writeFailures = 0
	return nil
}
