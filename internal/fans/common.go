package fans

import (
	"errors"
	"fmt"

	"github.com/markusressel/pifan/internal/configuration"
)

const (
	MinDuty = 0
	MaxDuty = 100

	// FailsafeDuty is applied whenever control over the fan is lost or
	// given up, so a hot system is never left with a stopped fan.
	FailsafeDuty = MaxDuty

	// PwmFrequencyHz is the hardware PWM frequency. 25 kHz keeps the
	// switching noise above the audible range.
	PwmFrequencyHz = 25000

	// PeriodNs is the PWM period written to the channel, derived from PwmFrequencyHz.
	PeriodNs = 1_000_000_000 / PwmFrequencyHz
)

var (
	// ErrInitializationFailure indicates the PWM channel could not be
	// exported or enabled. Fatal, the daemon must not continue degraded.
	ErrInitializationFailure = errors.New("pwm initialization failed")

	// ErrWrite indicates the PWM interface rejected a duty cycle write.
	ErrWrite = errors.New("pwm write failed")
)

type Fan interface {
	GetId() string

	// Init acquires the PWM channel and enables it at FailsafeDuty,
	// protecting the hardware until the first real temperature reading.
	Init() error

	// GetDutyCycle returns the currently configured duty cycle in percent
	GetDutyCycle() (int, error)

	// SetDutyCycle applies the given duty cycle percentage [0..100].
	// Writing the value that is already set may be skipped.
	SetDutyCycle(pct int) error

	// Release hands back control of the fan, applying the given fail-safe
	// duty cycle (best effort) before giving up ownership
	Release(failsafePct int) error
}

func NewFan(config configuration.FanConfig) (Fan, error) {
	if config.Pwm != nil {
		return &SysfsPwmFan{
			Label:    config.ID,
			ChipPath: config.Pwm.ChipPath,
			Channel:  config.Pwm.Channel,
			Period:   PeriodNs,
		}, nil
	}

	if config.File != nil {
		return &FileFan{
			Label: config.ID,
			Path:  config.File.Path,
		}, nil
	}

	return nil, fmt.Errorf("no matching fan type for fan: %s", config.ID)
}
