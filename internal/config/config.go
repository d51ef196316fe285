// Package config handles configuration loading and management.
package config

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Audio    AudioConfig    `yaml:"audio"`
	Button   ButtonConfig   `yaml:"button"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	MasterVolume float64 `yaml:"master_volume"`
	Muted        bool    `yaml:"muted"`
}

// ButtonConfig holds the user-tunable knobs of the deformable button.
// Each field documents its sane range; values outside it are clamped on use.
type ButtonConfig struct {
	// Softness is the Gaussian falloff sigma of the grab weight field.
	// Larger values move the surface more uniformly. Range 0.2-2.0.
	Softness float32 `yaml:"softness"`
	// SpringK is the return-spring restoring constant. Range 0.05-0.3.
	SpringK float32 `yaml:"spring_k"`
	// SpringDamping is the return-spring viscosity. Must stay <= 0.85 so the
	// return is overdamped (sticky, not bouncy). Range 0.5-0.85.
	SpringDamping float32 `yaml:"spring_damping"`
	// SnapLimit is the drag distance in world units that rips the button off.
	// Range 1.0-4.0.
	SnapLimit float32 `yaml:"snap_limit"`
	// BeatPeriod is the heartbeat cycle length in seconds. Range 0.6-3.0.
	BeatPeriod float32 `yaml:"beat_period"`
	// ConfettiCapacity is the fixed confetti pool size. Range 100-2000.
	ConfettiCapacity int `yaml:"confetti_capacity"`
	// ConfettiBurst is how many particles one explosion requests. Range 50-600.
	ConfettiBurst int `yaml:"confetti_burst"`
	// DripCapacity caps live drips; the oldest is evicted past it. Range 10-100.
	DripCapacity int `yaml:"drip_capacity"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      960,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Audio: AudioConfig{
			MasterVolume: 0.8,
			Muted:        false,
		},
		Button: ButtonConfig{
			Softness:         0.55,
			SpringK:          0.12,
			SpringDamping:    0.82,
			SnapLimit:        2.2,
			BeatPeriod:       1.25,
			ConfettiCapacity: 800,
			ConfettiBurst:    180,
			DripCapacity:     40,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
