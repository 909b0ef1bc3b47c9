package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the flyer configuration.
// Search order: customPath -> ~/.flyer/configs/flyer.yaml -> ./configs/flyer.yaml -> embedded default
// Values missing from a file keep their defaults.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("flyer.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/flyer.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultFlyerYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultConfig and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the invariants the damage model and loader rely on.
func (c Config) Validate() error {
	var errs []error

	if c.Tuning.DamagedIntervalFactor <= 1 {
		errs = append(errs, fmt.Errorf("tuning.damaged_interval_factor must be > 1, got %g", c.Tuning.DamagedIntervalFactor))
	}
	if c.Tuning.DamagedVelocityFactor <= 0 || c.Tuning.DamagedVelocityFactor >= 1 {
		errs = append(errs, fmt.Errorf("tuning.damaged_velocity_factor must be in (0, 1), got %g", c.Tuning.DamagedVelocityFactor))
	}
	if c.Tuning.ReactionMultiplier < 0 {
		errs = append(errs, fmt.Errorf("tuning.reaction_multiplier must be >= 0, got %g", c.Tuning.ReactionMultiplier))
	}
	if c.Plane.Mass <= 0 || c.Plane.Width <= 0 || c.Plane.Height <= 0 {
		errs = append(errs, errors.New("plane: mass, width and height must be positive"))
	}

	seen := make(map[string]bool)
	for i, p := range c.Presets {
		if err := p.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("presets[%d]: %w", i, err))
			continue
		}
		if seen[p.Name] {
			errs = append(errs, fmt.Errorf("presets[%d]: duplicate name %q", i, p.Name))
		}
		seen[p.Name] = true
	}

	for i, g := range c.Plane.Guns {
		if g.Name == "" || g.Preset == "" {
			errs = append(errs, fmt.Errorf("plane.guns[%d]: name and preset are required", i))
		}
	}

	return errors.Join(errs...)
}

// Validate checks a single preset record.
func (p WeaponPreset) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if p.DamageCapacity <= 0 {
		return fmt.Errorf("%s: damage_capacity must be > 0", p.Name)
	}
	if !(p.BulletVelocity > 0) || !(p.FiringInterval > 0) {
		return fmt.Errorf("%s: bullet_velocity and firing_interval must be > 0", p.Name)
	}
	if p.BulletMass < 0 || p.BulletSize < 0 || p.BulletLifespan < 0 {
		return fmt.Errorf("%s: bullet parameters must not be negative", p.Name)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flyer", "configs", filename)
}
