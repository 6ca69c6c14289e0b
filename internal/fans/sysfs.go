package fans

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/markusressel/pifan/internal/ui"
	"github.com/markusressel/pifan/internal/util"
)

// SysfsPwmFan drives a fan attached to a hardware PWM channel through the
// /sys/class/pwm interface. The channel is exclusively owned by this fan
// for the lifetime of the daemon.
type SysfsPwmFan struct {
	Label    string `json:"label"`
	ChipPath string `json:"chipPath"`
	Channel  int    `json:"channel"`
	Period   int    `json:"period"`

	lastSetDuty *int
}

func (fan *SysfsPwmFan) GetId() string {
	return fan.Label
}

func (fan *SysfsPwmFan) channelPath() string {
	return filepath.Join(fan.ChipPath, fmt.Sprintf("pwm%d", fan.Channel))
}

func (fan *SysfsPwmFan) attributePath(name string) string {
	return filepath.Join(fan.channelPath(), name)
}

// Init exports the channel, configures period and polarity and enables
// the output at FailsafeDuty.
func (fan *SysfsPwmFan) Init() error {
	if _, err := os.Stat(fan.channelPath()); os.IsNotExist(err) {
		exportPath := filepath.Join(fan.ChipPath, "export")
		err = util.WriteIntToFile(fan.Channel, exportPath)
		if err != nil {
			if os.IsPermission(err) {
				ui.Warning("Make sure %s and its subdirectories are writable by the current user, e.g. owned by root:gpio with the proper udev rules in place", fan.ChipPath)
			}
			return fmt.Errorf("%w: exporting channel %d via %s: %v", ErrInitializationFailure, fan.Channel, exportPath, err)
		}
	}

	// polarity and period may only be changed while the channel is disabled
	if err := util.WriteIntToFile(0, fan.attributePath("enable")); err != nil {
		ui.Warning("Unable to disable %s before configuration: %v", fan.GetId(), err)
	}

	if err := util.WriteIntToFile(fan.Period, fan.attributePath("period")); err != nil {
		return fmt.Errorf("%w: writing period %dns to %s: %v", ErrInitializationFailure, fan.Period, fan.attributePath("period"), err)
	}

	if err := util.WriteStringToFile("normal", fan.attributePath("polarity")); err != nil {
		return fmt.Errorf("%w: writing polarity to %s: %v", ErrInitializationFailure, fan.attributePath("polarity"), err)
	}

	if err := fan.writeDutyCycle(FailsafeDuty); err != nil {
		return fmt.Errorf("%w: setting initial duty cycle: %v", ErrInitializationFailure, err)
	}

	if err := util.WriteIntToFile(1, fan.attributePath("enable")); err != nil {
		return fmt.Errorf("%w: enabling channel via %s: %v", ErrInitializationFailure, fan.attributePath("enable"), err)
	}

	return nil
}

func (fan *SysfsPwmFan) GetDutyCycle() (int, error) {
	nanoseconds, err := util.ReadIntFromFile(fan.attributePath("duty_cycle"))
	if err != nil {
		return MinDuty, err
	}
	pct := int(math.Round(float64(nanoseconds) * 100 / float64(fan.Period)))
	return util.Coerce(pct, MinDuty, MaxDuty), nil
}

func (fan *SysfsPwmFan) SetDutyCycle(pct int) error {
	pct = util.Coerce(pct, MinDuty, MaxDuty)

	if fan.lastSetDuty != nil && *fan.lastSetDuty == pct {
		return nil
	}

	return fan.writeDutyCycle(pct)
}

func (fan *SysfsPwmFan) writeDutyCycle(pct int) error {
	ui.Debug("Setting %s to %d%% ...", fan.GetId(), pct)

	nanoseconds := fan.Period * pct / 100
	err := util.WriteIntToFile(nanoseconds, fan.attributePath("duty_cycle"))
	if err != nil {
		return fmt.Errorf("%w: writing %dns to %s: %v", ErrWrite, nanoseconds, fan.attributePath("duty_cycle"), err)
	}

	fan.lastSetDuty = &pct
	return nil
}

// Release applies the fail-safe duty cycle and gives up ownership of the
// channel. The channel intentionally stays exported and enabled: unexporting
// would cut the PWM signal and potentially stop the fan on a hot system.
func (fan *SysfsPwmFan) Release(failsafePct int) error {
	err := fan.writeDutyCycle(util.Coerce(failsafePct, MinDuty, MaxDuty))
	if err != nil {
		return err
	}

	fan.lastSetDuty = nil
	return nil
}
