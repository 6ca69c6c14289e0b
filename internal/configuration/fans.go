package configuration

type FanConfig struct {
	ID   string         `json:"id"`
	Pwm  *PwmFanConfig  `json:"pwm,omitempty"`
	File *FileFanConfig `json:"file,omitempty"`
}

type PwmFanConfig struct {
	// ChipPath is the sysfs directory of the hardware PWM chip
	ChipPath string `json:"chipPath"`
	// Channel index on the chip
	Channel int `json:"channel"`
}

type FileFanConfig struct {
	// Path of a file accepting the duty cycle percentage as plain integer
	Path string `json:"path"`
}
