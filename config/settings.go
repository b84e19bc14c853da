package config

// SettingsConfig contains user-adjustable setting ranges
type SettingsConfig struct {
	VolumeSteps []float64
	AppName     string // gdata application name for saved settings
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		VolumeSteps: []float64{0, 0.25, 0.5, 0.75, 1.0},
		AppName:     "red-vs-blue-pong",
	}
}
