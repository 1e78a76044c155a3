package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"vpet/internal/anim"
	"vpet/internal/pet"
)

// DefaultTickInterval is the host timebase (20 Hz)
const DefaultTickInterval = 50 * time.Millisecond

// TestConfigPath is used for testing to override the config path
var TestConfigPath string

// Duration is a time.Duration written as a string such as "50ms" in TOML
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the contents of vpet.toml
type Config struct {
	Assets       string   `toml:"assets"`
	Extensions   []string `toml:"extensions"`
	TickInterval Duration `toml:"tick_interval"`
	LogFile      string   `toml:"log_file"`

	Pet        PetConfig        `toml:"pet"`
	Rules      RulesConfig      `toml:"rules"`
	Animations AnimationsConfig `toml:"animations"`
	Window     WindowConfig     `toml:"window"`
}

// PetConfig sets the name and starting attributes
type PetConfig struct {
	Name      string  `toml:"name"`
	Health    float64 `toml:"health"`
	Happiness float64 `toml:"happiness"`
	Hunger    float64 `toml:"hunger"`
	Thirst    float64 `toml:"thirst"`
}

// RulesConfig mirrors pet.Rules
type RulesConfig struct {
	NeedDecayRate       float64 `toml:"need_decay_rate"`
	HappinessDecayRate  float64 `toml:"happiness_decay_rate"`
	HappinessGrowthRate float64 `toml:"happiness_growth_rate"`

	LowNeedThreshold  float64 `toml:"low_need_threshold"`
	HighNeedThreshold float64 `toml:"high_need_threshold"`
	UnhappyThreshold  float64 `toml:"unhappy_threshold"`
	HappyThreshold    float64 `toml:"happy_threshold"`

	FeedHunger     float64 `toml:"feed_hunger"`
	FeedHappiness  float64 `toml:"feed_happiness"`
	WaterThirst    float64 `toml:"water_thirst"`
	WaterHappiness float64 `toml:"water_happiness"`
	PetHappiness   float64 `toml:"pet_happiness"`
}

// AnimationsConfig controls how asset directories become sequences
type AnimationsConfig struct {
	// Once lists category names played a single time instead of looping
	Once []string `toml:"once"`
}

// WindowConfig is the pet's on-screen size
type WindowConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Path returns the config file location, ~/.config/vpet/vpet.toml
func Path() string {
	if TestConfigPath != "" {
		return TestConfigPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("Error getting home directory: %v. Using working directory.", err)
		return "vpet.toml"
	}
	return filepath.Join(home, ".config", "vpet", "vpet.toml")
}

// Default returns the built-in configuration
func Default() Config {
	rules := pet.DefaultRules()
	attrs := pet.NewAttributes()

	return Config{
		Assets:       "assets",
		Extensions:   []string{".png"},
		TickInterval: Duration{DefaultTickInterval},
		LogFile:      filepath.Join(filepath.Dir(Path()), "vpet.log"),
		Pet: PetConfig{
			Name:      attrs.Name,
			Health:    attrs.Health,
			Happiness: attrs.Happiness,
			Hunger:    attrs.Hunger,
			Thirst:    attrs.Thirst,
		},
		Rules: RulesConfig{
			NeedDecayRate:       rules.NeedDecayRate,
			HappinessDecayRate:  rules.HappinessDecayRate,
			HappinessGrowthRate: rules.HappinessGrowthRate,
			LowNeedThreshold:    rules.LowNeedThreshold,
			HighNeedThreshold:   rules.HighNeedThreshold,
			UnhappyThreshold:    rules.UnhappyThreshold,
			HappyThreshold:      rules.HappyThreshold,
			FeedHunger:          rules.FeedHungerIncrease,
			FeedHappiness:       rules.FeedHappinessIncrease,
			WaterThirst:         rules.WaterThirstIncrease,
			WaterHappiness:      rules.WaterHappinessBonus,
			PetHappiness:        rules.PetHappinessIncrease,
		},
		Window: WindowConfig{
			Width:  pet.DefaultWidth,
			Height: pet.DefaultHeight,
		},
	}
}

// Load reads the config at path on top of the defaults. A missing file is
// not an error. Keys that are not part of Config are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("No config file at %s, using defaults", path)
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return cfg, fmt.Errorf("failed to parse config file %s: %s: %w", path, strict.String(), err)
		}
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	log.Printf("Loaded config from %s", path)
	return cfg, nil
}

// Encode writes cfg as TOML
func (c Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return nil
}

type namedValue struct {
	name  string
	value float64
}

// Validate reports the first value that would break the simulation
func (c Config) Validate() error {
	if c.TickInterval.Duration <= 0 {
		return fmt.Errorf("tick_interval must be positive, got %s", c.TickInterval.Duration)
	}
	for _, ext := range c.Extensions {
		if ext == "" || ext == "." {
			return errors.New("extensions must not contain empty entries")
		}
	}
	for _, name := range c.Animations.Once {
		if _, err := anim.ParseCategory(name); err != nil {
			return fmt.Errorf("animations.once: %w", err)
		}
	}

	// Ordered so the same file always reports the same key
	stats := []namedValue{
		{"pet.health", c.Pet.Health},
		{"pet.happiness", c.Pet.Happiness},
		{"pet.hunger", c.Pet.Hunger},
		{"pet.thirst", c.Pet.Thirst},
	}
	for _, s := range stats {
		if s.value < pet.MinStat || s.value > pet.MaxStat {
			return fmt.Errorf("%s must be within [%.0f, %.0f], got %v", s.name, pet.MinStat, pet.MaxStat, s.value)
		}
	}

	r := c.Rules
	rates := []namedValue{
		{"rules.need_decay_rate", r.NeedDecayRate},
		{"rules.happiness_decay_rate", r.HappinessDecayRate},
		{"rules.happiness_growth_rate", r.HappinessGrowthRate},
		{"rules.feed_hunger", r.FeedHunger},
		{"rules.feed_happiness", r.FeedHappiness},
		{"rules.water_thirst", r.WaterThirst},
		{"rules.water_happiness", r.WaterHappiness},
		{"rules.pet_happiness", r.PetHappiness},
	}
	for _, rate := range rates {
		if rate.value < 0 {
			return fmt.Errorf("%s must not be negative, got %v", rate.name, rate.value)
		}
	}
	if r.LowNeedThreshold > r.HighNeedThreshold {
		return fmt.Errorf("rules.low_need_threshold (%v) is above rules.high_need_threshold (%v)", r.LowNeedThreshold, r.HighNeedThreshold)
	}
	if r.UnhappyThreshold > r.HappyThreshold {
		return fmt.Errorf("rules.unhappy_threshold (%v) is above rules.happy_threshold (%v)", r.UnhappyThreshold, r.HappyThreshold)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %vx%v", c.Window.Width, c.Window.Height)
	}
	return nil
}

// PetRules converts the [rules] section
func (c Config) PetRules() pet.Rules {
	r := c.Rules
	return pet.Rules{
		NeedDecayRate:         r.NeedDecayRate,
		HappinessDecayRate:    r.HappinessDecayRate,
		HappinessGrowthRate:   r.HappinessGrowthRate,
		LowNeedThreshold:      r.LowNeedThreshold,
		HighNeedThreshold:     r.HighNeedThreshold,
		UnhappyThreshold:      r.UnhappyThreshold,
		HappyThreshold:        r.HappyThreshold,
		FeedHungerIncrease:    r.FeedHunger,
		FeedHappinessIncrease: r.FeedHappiness,
		WaterThirstIncrease:   r.WaterThirst,
		WaterHappinessBonus:   r.WaterHappiness,
		PetHappinessIncrease:  r.PetHappiness,
	}
}

// Attributes converts the [pet] section into starting attributes
func (c Config) Attributes() pet.Attributes {
	a := pet.NewAttributes()
	if c.Pet.Name != "" {
		a.Name = c.Pet.Name
	}
	a.Health = c.Pet.Health
	a.Happiness = c.Pet.Happiness
	a.Hunger = c.Pet.Hunger
	a.Thirst = c.Pet.Thirst
	return a
}

// Size converts the [window] section
func (c Config) Size() pet.Size {
	return pet.Size{Width: c.Window.Width, Height: c.Window.Height}
}

// Loader builds an asset loader from the extensions and [animations] section.
// Unknown category names are skipped; Validate reports them.
func (c Config) Loader() *anim.Loader {
	l := anim.NewLoader()
	if len(c.Extensions) > 0 {
		l.Extensions = append([]string(nil), c.Extensions...)
	}
	for _, name := range c.Animations.Once {
		cat, err := anim.ParseCategory(name)
		if err != nil {
			continue
		}
		if l.Once == nil {
			l.Once = make(map[anim.Category]bool)
		}
		l.Once[cat] = true
	}
	return l
}

// EngineOptions builds engine options for this config
func (c Config) EngineOptions() pet.Options {
	rules := c.PetRules()
	attrs := c.Attributes()
	return pet.Options{
		Rules:      &rules,
		Attributes: &attrs,
		Size:       c.Size(),
	}
}
