package config

// Presets are named starting systems. Satellites are orbit-seeded against
// the anchor exactly like interactive clicks, so every preset starts on
// approximately circular orbits.
var Presets = map[string]*Config{
	"solo": solo(),
	"binary": withSatellites(
		SatelliteConfig{Distance: 120, Angle: 0},
		SatelliteConfig{Distance: 120, Angle: 180},
	),
	"trio": withSatellites(
		SatelliteConfig{Distance: 90, Angle: 0},
		SatelliteConfig{Distance: 150, Angle: 120},
		SatelliteConfig{Distance: 210, Angle: 240},
	),
	"ring": withSatellites(
		SatelliteConfig{Distance: 170, Angle: 0},
		SatelliteConfig{Distance: 170, Angle: 45},
		SatelliteConfig{Distance: 170, Angle: 90},
		SatelliteConfig{Distance: 170, Angle: 135},
		SatelliteConfig{Distance: 170, Angle: 180},
		SatelliteConfig{Distance: 170, Angle: 225},
		SatelliteConfig{Distance: 170, Angle: 270},
		SatelliteConfig{Distance: 170, Angle: 315},
	),
	"slow": slow(),
}

func solo() *Config {
	return DefaultConfig()
}

func withSatellites(sats ...SatelliteConfig) *Config {
	cfg := DefaultConfig()
	cfg.Satellites = sats
	return cfg
}

func slow() *Config {
	cfg := withSatellites(
		SatelliteConfig{Distance: 140, Angle: 0},
		SatelliteConfig{Distance: 220, Angle: 90},
	)
	cfg.TimeScale = 0.25
	return cfg
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
