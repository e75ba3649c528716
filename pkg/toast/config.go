package toast

import "time"

// Position names the screen corner a renderer should anchor the stack to.
// The subsystem carries it for render surfaces but attaches no behavior.
type Position string

const (
	PositionTopLeft     Position = "top-left"
	PositionTopRight    Position = "top-right"
	PositionBottomLeft  Position = "bottom-left"
	PositionBottomRight Position = "bottom-right"
)

const (
	// DefaultMaxVisible caps the number of simultaneously visible toasts.
	DefaultMaxVisible = 5
	// DefaultDuration is the time budget applied when a spec omits one.
	DefaultDuration = 5 * time.Second
)

// Config holds service-wide settings, loadable from the environment via
// pkg/config:
//
//	var cfg toast.Config
//	config.MustLoad(&cfg)
//	svc := toast.New(cfg)
type Config struct {
	MaxVisible      int           `env:"TOAST_MAX_VISIBLE" envDefault:"5"`
	DefaultDuration time.Duration `env:"TOAST_DEFAULT_DURATION" envDefault:"5s"`
	Position        Position      `env:"TOAST_POSITION" envDefault:"bottom-right"`
}

// withDefaults fills zero or invalid fields so a zero Config is usable.
func (c Config) withDefaults() Config {
	if c.MaxVisible <= 0 {
		c.MaxVisible = DefaultMaxVisible
	}
	if c.DefaultDuration <= 0 {
		c.DefaultDuration = DefaultDuration
	}
	if c.Position == "" {
		c.Position = PositionBottomRight
	}
	return c
}
