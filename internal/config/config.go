// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	AppName       = "ecgdetector"
	ConfigType    = "yaml"
	DefaultConfig = `# ECG Detector Configuration

# Signal calibration
gain: 200               # Raw ADC units per mV (must be non-zero)
adc_zero: 0             # Raw ADC value at physiological baseline
sample_rate: 0          # Capture rate in Hz (0 = take from file header)

# Recording (for the 'record' command)
device_index: -1        # Capture device index (-1 for default)
record_rate: 8000       # Capture sample rate in Hz
record_seconds: 30      # Recording duration in seconds

# Output
debug: false            # Enable debug output on stderr
`
)

// Settings holds all application configuration
type Settings struct {
	// Signal calibration
	Gain       int `mapstructure:"gain"`
	ADCZero    int `mapstructure:"adc_zero"`
	SampleRate int `mapstructure:"sample_rate"`

	// Recording
	DeviceIndex   int `mapstructure:"device_index"`
	RecordRate    int `mapstructure:"record_rate"`
	RecordSeconds int `mapstructure:"record_seconds"`

	// Output
	Debug bool `mapstructure:"debug"`
}

// Init initializes Viper with defaults and config file.
// Config file search order: current directory, then ~/.config/ecgdetector/
func Init() error {
	viper.SetDefault("gain", 200)
	viper.SetDefault("adc_zero", 0)
	viper.SetDefault("sample_rate", 0)
	viper.SetDefault("device_index", -1)
	viper.SetDefault("record_rate", 8000)
	viper.SetDefault("record_seconds", 30)
	viper.SetDefault("debug", false)

	viper.SetConfigType(ConfigType)
	viper.AddConfigPath(".")

	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	viper.AddConfigPath(filepath.Join(configDir, AppName))

	viper.SetConfigName("config")
	if err = viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			// No config found - create default in ~/.config/ecgdetector/
			xdgConfigPath := filepath.Join(configDir, AppName)
			if err = ensureConfigExists(xdgConfigPath); err != nil {
				return err
			}
			if err = viper.ReadInConfig(); err != nil {
				return fmt.Errorf("read config: %w", err)
			}
		} else {
			return fmt.Errorf("read config: %w", err)
		}
	}

	return nil
}

func ensureConfigExists(configPath string) error {
	configFile := filepath.Join(configPath, "config.yaml")

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err = os.MkdirAll(configPath, 0755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
		if err = os.WriteFile(configFile, []byte(DefaultConfig), 0644); err != nil {
			return fmt.Errorf("write default config: %w", err)
		}
	}
	return nil
}

// Get returns the current settings
func Get() (*Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &s, nil
}

// Validate checks that all settings are within acceptable ranges
func (s *Settings) Validate() error {
	var errs []error

	if s.Gain == 0 {
		errs = append(errs, errors.New("gain must be non-zero"))
	}
	if s.SampleRate < 0 {
		errs = append(errs, fmt.Errorf("sample_rate must not be negative, got %d", s.SampleRate))
	}
	if s.DeviceIndex < -1 {
		errs = append(errs, fmt.Errorf("device_index must be -1 or a device number, got %d", s.DeviceIndex))
	}
	if s.RecordRate < 200 || s.RecordRate > 192000 {
		errs = append(errs, fmt.Errorf("record_rate must be between 200 and 192000 Hz, got %d", s.RecordRate))
	}
	if s.RecordSeconds < 1 || s.RecordSeconds > 3600 {
		errs = append(errs, fmt.Errorf("record_seconds must be between 1 and 3600, got %d", s.RecordSeconds))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
