// Package config loads pathlab settings from a .env file, the environment
// (PATHLAB_ prefix) and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/search"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid value")

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "PATHLAB"

// Setting keys; the environment form is PATHLAB_<KEY in upper case>.
const (
	KeyGridSize   = "grid_size"
	KeyDepthLimit = "depth_limit"
	KeyStepDelay  = "step_delay"
	KeyHTTPAddr   = "http_addr"
	KeyLogLevel   = "log_level"
	KeyGinMode    = "gin_mode"
	KeySound      = "sound"
)

// Defaults.
const (
	DefaultStepDelay = 10 * time.Millisecond
	DefaultHTTPAddr  = ":8080"
	DefaultLogLevel  = "info"
	DefaultGinMode   = "release"
)

// Config holds the application's configuration values.
type Config struct {
	GridSize   int           // board edge length
	DepthLimit int           // DLS budget
	StepDelay  time.Duration // pause after each snapshot in the terminal UI
	HTTPAddr   string        // listen address for the HTTP API
	LogLevel   string        // logrus level name
	GinMode    string        // gin mode: release, debug or test
	Sound      bool          // audible cue when a search finishes
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyGridSize, grid.DefaultSize)
	v.SetDefault(KeyDepthLimit, search.DefaultDepthLimit)
	v.SetDefault(KeyStepDelay, DefaultStepDelay)
	v.SetDefault(KeyHTTPAddr, DefaultHTTPAddr)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyGinMode, DefaultGinMode)
	v.SetDefault(KeySound, true)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadDotEnv loads .env files into the process environment without
// overriding variables that are already set. With no paths it reads ./.env.
// A missing file is reported to log at info level and is not an error.
func LoadDotEnv(log logrus.FieldLogger, paths ...string) {
	if err := godotenv.Load(paths...); err != nil {
		log.WithError(err).Info(".env file not found or could not be loaded")
	}
}

// Load reads every setting from v and validates the result.
func Load(v *viper.Viper) (Config, error) {
	c := Config{
		GridSize:   v.GetInt(KeyGridSize),
		DepthLimit: v.GetInt(KeyDepthLimit),
		StepDelay:  v.GetDuration(KeyStepDelay),
		HTTPAddr:   v.GetString(KeyHTTPAddr),
		LogLevel:   v.GetString(KeyLogLevel),
		GinMode:    v.GetString(KeyGinMode),
		Sound:      v.GetBool(KeySound),
	}
	return c, c.Validate()
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	switch {
	case c.GridSize < 1 || c.GridSize > grid.MaxSize:
		return fmt.Errorf("%w: %s=%d (want 1..%d)", ErrInvalid, KeyGridSize, c.GridSize, grid.MaxSize)
	case c.DepthLimit < 0:
		return fmt.Errorf("%w: %s=%d", ErrInvalid, KeyDepthLimit, c.DepthLimit)
	case c.StepDelay < 0:
		return fmt.Errorf("%w: %s=%s", ErrInvalid, KeyStepDelay, c.StepDelay)
	case c.HTTPAddr == "":
		return fmt.Errorf("%w: %s is empty", ErrInvalid, KeyHTTPAddr)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalid, KeyLogLevel, err)
	}
	switch c.GinMode {
	case "release", "debug", "test":
	default:
		return fmt.Errorf("%w: %s=%q", ErrInvalid, KeyGinMode, c.GinMode)
	}
	return nil
}

// Logger builds a text logger writing to out at the configured level.
func (c Config) Logger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if lvl, err := logrus.ParseLevel(c.LogLevel); err == nil {
		l.SetLevel(lvl)
	}
	return l
}
