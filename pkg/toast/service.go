package toast

import (
	"context"
	"log/slog"
	"time"

	"github.com/examlab/examkit/pkg/broadcast"
	"github.com/examlab/examkit/pkg/logger"
)

// showStagger is the wall-clock delay between successive ShowMultiple inserts.
const showStagger = 100 * time.Millisecond

// Service is the dispatcher: the typed entry points callers use to create and
// manage toasts. One Service is constructed at application start and lives
// for the process lifetime.
type Service struct {
	*Store

	position Position
	clock    Clock
	log      *slog.Logger
}

// Option configures a Service.
type Option func(*serviceOptions)

type serviceOptions struct {
	log         *slog.Logger
	clock       Clock
	broadcaster broadcast.Broadcaster[[]Snapshot]
}

// WithLogger sets the logger for the service and its store.
func WithLogger(log *slog.Logger) Option {
	return func(o *serviceOptions) {
		if log != nil {
			o.log = log
		}
	}
}

// WithClock replaces the timer source, letting tests drive countdowns on a
// virtual clock.
func WithClock(clock Clock) Option {
	return func(o *serviceOptions) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithBroadcaster mirrors every snapshot delivery onto the broadcaster, for
// render surfaces that consume channels instead of callbacks.
func WithBroadcaster(b broadcast.Broadcaster[[]Snapshot]) Option {
	return func(o *serviceOptions) {
		o.broadcaster = b
	}
}

// New creates the toast service. Zero-valued config fields fall back to the
// package defaults.
func New(cfg Config, opts ...Option) *Service {
	cfg = cfg.withDefaults()

	o := &serviceOptions{
		log:   slog.Default(),
		clock: NewClock(),
	}
	for _, opt := range opts {
		opt(o)
	}

	svc := &Service{
		Store:    newStore(cfg.MaxVisible, cfg.DefaultDuration, o.clock, o.log),
		position: cfg.Position,
		clock:    o.clock,
		log:      o.log,
	}

	if o.broadcaster != nil {
		b := o.broadcaster
		svc.Subscribe(func(snap []Snapshot) {
			_ = b.Broadcast(context.Background(), broadcast.Message[[]Snapshot]{Data: snap})
		})
	}

	return svc
}

// Position returns the configured anchor corner for renderers.
func (s *Service) Position() Position {
	return s.position
}

// ShowSuccess displays a success toast with the default time budget.
func (s *Service) ShowSuccess(message string) (string, error) {
	return s.Add(Spec{Type: TypeSuccess, Message: message})
}

// ShowError displays an error toast with the default time budget.
func (s *Service) ShowError(message string) (string, error) {
	return s.Add(Spec{Type: TypeError, Message: message})
}

// ShowWarning displays a warning toast with the default time budget.
func (s *Service) ShowWarning(message string) (string, error) {
	return s.Add(Spec{Type: TypeWarning, Message: message})
}

// ShowInfo displays an info toast with the default time budget.
func (s *Service) ShowInfo(message string) (string, error) {
	return s.Add(Spec{Type: TypeInfo, Message: message})
}

// ShowLoading displays a loading indicator. Loading toasts are always
// persistent; they are dismissed explicitly, never by timeout.
func (s *Service) ShowLoading(message string) (string, error) {
	return s.Add(Spec{Type: TypeLoading, Message: message, Persistent: true})
}

// ShowCustom displays a toast with caller-defined styling.
func (s *Service) ShowCustom(spec Spec) (string, error) {
	spec.Type = TypeCustom
	return s.Add(spec)
}

// ShowMultiple schedules one Add per spec, staggered by index steps of 100ms
// so a burst does not land as a single wall. Scheduling order follows slice
// order; each toast's own priority still decides its insertion position.
func (s *Service) ShowMultiple(specs []Spec) {
	for i, spec := range specs {
		spec := spec
		s.clock.AfterFunc(time.Duration(i)*showStagger, func() {
			if _, err := s.Add(spec); err != nil {
				s.log.Warn("skipped staggered toast", logger.Error(err))
			}
		})
	}
}
