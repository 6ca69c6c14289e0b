package fans

import (
	"fmt"

	"github.com/markusressel/pifan/internal/util"
)

// FileFan writes the duty cycle percentage to a plain file. Mostly useful
// for testing and for pwm interfaces exposed by other tooling.
type FileFan struct {
	Label string `json:"label"`
	Path  string `json:"path"`

	lastSetDuty *int
}

func (fan *FileFan) GetId() string {
	return fan.Label
}

func (fan *FileFan) Init() error {
	err := util.WriteIntToFile(FailsafeDuty, fan.Path)
	if err != nil {
		return fmt.Errorf("%w: writing to %s: %v", ErrInitializationFailure, fan.Path, err)
	}
	failsafe := FailsafeDuty
	fan.lastSetDuty = &failsafe
	return nil
}

func (fan *FileFan) GetDutyCycle() (int, error) {
	value, err := util.ReadIntFromFile(fan.Path)
	if err != nil {
		return MinDuty, err
	}
	return util.Coerce(value, MinDuty, MaxDuty), nil
}

func (fan *FileFan) SetDutyCycle(pct int) error {
	pct = util.Coerce(pct, MinDuty, MaxDuty)

	if fan.lastSetDuty != nil && *fan.lastSetDuty == pct {
		return nil
	}

	err := util.WriteIntToFile(pct, fan.Path)
	if err != nil {
		return fmt.Errorf("%w: writing %d%% to %s: %v", ErrWrite, pct, fan.Path, err)
	}

	fan.lastSetDuty = &pct
	return nil
}

func (fan *FileFan) Release(failsafePct int) error {
	fan.lastSetDuty = nil
	return fan.SetDutyCycle(failsafePct)
}
