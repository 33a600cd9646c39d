package dock

import (
	jlconfig "github.com/JeremyLoy/config"
	"github.com/TheBitDrifter/mask"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/TheBitDrifter/dock/statsd"
)

const (
	DefaultInitialCapacity = 1024
	DefaultMaxComponents   = 64
	DefaultLogLevel        = "info"
)

// Settings are the tunables a world is created with. LoadEnv fills them from
// DOCK_* environment variables. MaxComponents is capped at mask.MaxBits.
type Settings struct {
	InitialCapacity int    `config:"DOCK_INITIAL_CAPACITY"`
	MaxComponents   int    `config:"DOCK_MAX_COMPONENTS"`
	LogLevel        string `config:"DOCK_LOG_LEVEL"`
	StatsdAddress   string `config:"DOCK_STATSD_ADDRESS"`
}

func DefaultSettings() Settings {
	return Settings{
		InitialCapacity: DefaultInitialCapacity,
		MaxComponents:   DefaultMaxComponents,
		LogLevel:        DefaultLogLevel,
	}
}

func (s Settings) normalized() Settings {
	if s.InitialCapacity <= 0 {
		s.InitialCapacity = DefaultInitialCapacity
	}
	if s.MaxComponents <= 0 {
		s.MaxComponents = DefaultMaxComponents
	}
	s.MaxComponents = min(s.MaxComponents, mask.MaxBits)
	if s.LogLevel == "" {
		s.LogLevel = DefaultLogLevel
	}
	return s
}

func (s Settings) level() zerolog.Level {
	level, err := zerolog.ParseLevel(s.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// Config holds the package defaults every new world starts from
var Config config = config{settings: DefaultSettings()}

type config struct {
	settings Settings
	logger   *zerolog.Logger
}

// SetLogger replaces the logger new worlds write to
func (c *config) SetLogger(logger zerolog.Logger) {
	c.logger = &logger
}

// Logger returns the logger set with SetLogger, or the global zerolog logger
// filtered to the configured level.
func (c *config) Logger() zerolog.Logger {
	if c.logger != nil {
		return *c.logger
	}
	return log.Logger.Level(c.settings.level())
}

func (c *config) SetSettings(s Settings) {
	c.settings = s.normalized()
}

func (c *config) Settings() Settings {
	return c.settings
}

// LoadEnv overlays DOCK_* environment variables onto the current settings and
// starts the statsd client when an address is configured.
func (c *config) LoadEnv() error {
	s := c.settings
	if err := jlconfig.FromEnv().To(&s); err != nil {
		return eris.Wrap(err, "failed to load settings from environment")
	}
	if _, err := zerolog.ParseLevel(s.LogLevel); err != nil {
		return eris.Wrapf(err, "invalid log level %q", s.LogLevel)
	}
	c.settings = s.normalized()
	if c.settings.StatsdAddress != "" {
		if err := statsd.Init(c.settings.StatsdAddress, nil); err != nil {
			return eris.Wrap(err, "failed to init statsd")
		}
	}
	return nil
}
