package kinema

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/phanxgames/kinema/colorspace"
)

// EnvPrefix is the environment variable prefix read by LoadConfig.
const EnvPrefix = "KINEMA"

// Config holds process-wide defaults read from the environment:
//
//	KINEMA_RUN_TIME     default animation run time in seconds
//	KINEMA_RATE         default rate function name (see ParseRate)
//	KINEMA_LAG_RATIO    default lag ratio
//	KINEMA_COLOR_SPACE  blend space name (see colorspace.ParseSpace)
//	KINEMA_ARC_SAMPLES  arc-length samples per curve
//	KINEMA_DEBUG        enable debug mode on scenes built by the caller
//	KINEMA_LOG_LEVEL    debug, info, warn, error or off
type Config struct {
	RunTime    float64 `envconfig:"RUN_TIME" default:"1"`
	Rate       string  `envconfig:"RATE" default:"smooth"`
	LagRatio   float64 `envconfig:"LAG_RATIO" default:"0"`
	ColorSpace string  `envconfig:"COLOR_SPACE" default:"oklab"`
	ArcSamples int     `envconfig:"ARC_SAMPLES" default:"16"`
	Debug      bool    `envconfig:"DEBUG" default:"false"`
	LogLevel   string  `envconfig:"LOG_LEVEL" default:"off"`
}

// LoadConfig reads Config from the environment. Malformed values fail with
// ErrValidation.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return cfg, nil
}

// AnimConfig converts the defaults into an AnimConfig. Unknown rate or
// color space names fail with ErrValue.
func (c Config) AnimConfig() (AnimConfig, error) {
	rate, err := ParseRate(c.Rate)
	if err != nil {
		return AnimConfig{}, err
	}
	space, err := colorspace.ParseSpace(c.ColorSpace)
	if err != nil {
		return AnimConfig{}, err
	}
	ac := DefaultAnimConfig()
	ac.RunTime = c.RunTime
	ac.Rate = rate
	ac.LagRatio = c.LagRatio
	ac.ColorSpace = space
	ac.ArcSamples = c.ArcSamples
	return ac, nil
}

// Logger builds a text logger writing to w at the configured level, or nil
// when the level is "off". The result is meant for SetLogger.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "off", "":
		return nil, nil
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("%w: unknown log level %q", ErrValue, c.LogLevel)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// Apply installs the configured logger and debug mode on s. s may be nil,
// in which case only the logger is installed.
func (c Config) Apply(s *Scene, w io.Writer) error {
	l, err := c.Logger(w)
	if err != nil {
		return err
	}
	SetLogger(l)
	if s != nil {
		s.SetDebugMode(c.Debug)
	}
	return nil
}
