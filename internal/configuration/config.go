package configuration

import (
	"strings"
	"time"

	"github.com/markusressel/pifan/internal/ui"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Configuration struct {
	Sensor SensorConfig `json:"sensor"`
	Fan    FanConfig    `json:"fan"`

	// SensorReadTimeout bounds a single temperature read so a stuck
	// sysfs interface cannot hang the control loop.
	SensorReadTimeout time.Duration `json:"sensorReadTimeout"`

	Statistics StatisticsConfig `json:"statistics"`
}

type StatisticsConfig struct {
	Enabled bool `json:"enabled"`
	Port    int  `json:"port"`
}

var CurrentConfig Configuration

// InitConfig prepares the configuration backend. pifan deliberately reads no
// configuration file: the fan curve and control cadence are fixed constants,
// only installation-specific hardware paths and ambient knobs can be
// overridden through PIFAN_* environment variables.
func InitConfig() {
	viper.SetEnvPrefix("pifan")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaultValues()
}

func setDefaultValues() {
	viper.SetDefault("sensor.thermalzone.path", "/sys/class/thermal/thermal_zone0/temp")
	viper.SetDefault("sensor.host.keys", []string{"cpu", "soc", "core", "processor"})
	viper.SetDefault("fan.pwm.chippath", "/sys/class/pwm/pwmchip0")
	viper.SetDefault("fan.pwm.channel", 0)
	viper.SetDefault("fan.file.path", "")

	viper.SetDefault("sensorreadtimeout", 2*time.Second)

	viper.SetDefault("statistics.enabled", false)
	viper.SetDefault("statistics.port", 9100)
}

// LoadConfig populates CurrentConfig from defaults and environment overrides.
func LoadConfig() {
	err := viper.Unmarshal(
		&CurrentConfig,
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)),
	)
	if err != nil {
		ui.Fatal("unable to decode configuration into struct, %v", err)
	}

	// a file fan path takes precedence over the sysfs pwm chip
	if CurrentConfig.Fan.File != nil && len(CurrentConfig.Fan.File.Path) <= 0 {
		CurrentConfig.Fan.File = nil
	}
	if CurrentConfig.Fan.File != nil {
		CurrentConfig.Fan.Pwm = nil
	}
}
