package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"jobboard/internal/carousel"
	"jobboard/internal/domain"
	"jobboard/internal/eventbus"
)

// ConfigEnvVar overrides the config file location
const ConfigEnvVar = "JOBBOARD_CONFIG"

const (
	currentVersion       = 1
	minAutoplaySpeedMS   = 100
	minAssistantMS       = 100
	defaultConfigDirName = "jobboard"
	defaultConfigName    = "config.toml"
)

// Config represents the application configuration
type Config struct {
	Version   int             `toml:"version"`
	Carousel  CarouselConfig  `toml:"carousel"`
	Viewport  ViewportConfig  `toml:"viewport"`
	UI        UISettings      `toml:"ui"`
	Assistant AssistantConfig `toml:"assistant"`
}

// CarouselConfig sets defaults for every rail
type CarouselConfig struct {
	Mobile          int  `toml:"mobile"`
	Tablet          int  `toml:"tablet"`
	Desktop         int  `toml:"desktop"`
	Autoplay        bool `toml:"autoplay"`
	AutoplaySpeedMS int  `toml:"autoplay_speed_ms"`
}

// ViewportConfig maps terminal columns to viewport width units
type ViewportConfig struct {
	CellWidth int `toml:"cell_width"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowCategories bool   `toml:"show_categories"`
	StartPage      string `toml:"start_page"`
}

// AssistantConfig times the tips panel
type AssistantConfig struct {
	RotateMS int `toml:"rotate_ms"` // tip rotation while the panel is open
	HintMS   int `toml:"hint_ms"`   // how long the first tip shows after a page change
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service for path. An empty path uses
// $JOBBOARD_CONFIG, then the user config directory.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// DefaultPath resolves the config file location
func DefaultPath() string {
	if p := os.Getenv(ConfigEnvVar); p != "" {
		return p
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, defaultConfigDirName, defaultConfigName)
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration file, returning defaults if it does not exist
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Normalize()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	slides := carousel.DefaultSlidesToShow()
	return &Config{
		Version: currentVersion,
		Carousel: CarouselConfig{
			Mobile:          slides.Mobile,
			Tablet:          slides.Tablet,
			Desktop:         slides.Desktop,
			Autoplay:        true,
			AutoplaySpeedMS: int(carousel.DefaultAutoplaySpeed / time.Millisecond),
		},
		Viewport: ViewportConfig{CellWidth: 8},
		UI: UISettings{
			ShowCategories: true,
			StartPage:      string(domain.PageLanding),
		},
		Assistant: AssistantConfig{
			RotateMS: 5000,
			HintMS:   8000,
		},
	}
}

// Normalize clamps values into their valid ranges
func (c *Config) Normalize() {
	if c.Version == 0 {
		c.Version = currentVersion
	}
	c.Carousel.Mobile = max(c.Carousel.Mobile, 1)
	c.Carousel.Tablet = max(c.Carousel.Tablet, 1)
	c.Carousel.Desktop = max(c.Carousel.Desktop, 1)
	c.Carousel.AutoplaySpeedMS = max(c.Carousel.AutoplaySpeedMS, minAutoplaySpeedMS)
	c.Viewport.CellWidth = max(c.Viewport.CellWidth, 1)
	c.UI.StartPage = string(domain.ParsePage(c.UI.StartPage))
	c.Assistant.RotateMS = max(c.Assistant.RotateMS, minAssistantMS)
	c.Assistant.HintMS = max(c.Assistant.HintMS, minAssistantMS)
}

// SlidesToShow converts the carousel section for the carousel package
func (c *Config) SlidesToShow() carousel.SlidesToShow {
	return carousel.SlidesToShow{
		Mobile:  c.Carousel.Mobile,
		Tablet:  c.Carousel.Tablet,
		Desktop: c.Carousel.Desktop,
	}.Normalize()
}

// AutoplaySpeed returns the autoplay interval
func (c *Config) AutoplaySpeed() time.Duration {
	return time.Duration(c.Carousel.AutoplaySpeedMS) * time.Millisecond
}

// CarouselOptions builds rail options from the config
func (c *Config) CarouselOptions() carousel.Options {
	return carousel.Options{
		SlidesToShow:  c.SlidesToShow(),
		Autoplay:      c.Carousel.Autoplay,
		AutoplaySpeed: c.AutoplaySpeed(),
	}
}

// TipInterval returns how often the open tips panel moves to the next tip
func (c *Config) TipInterval() time.Duration {
	return time.Duration(c.Assistant.RotateMS) * time.Millisecond
}

// HintDuration returns how long the tip hint stays after a page change
func (c *Config) HintDuration() time.Duration {
	return time.Duration(c.Assistant.HintMS) * time.Millisecond
}
