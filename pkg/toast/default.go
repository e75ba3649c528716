package toast

import "sync"

var (
	defaultMu  sync.RWMutex
	defaultSvc *Service
)

// SetDefault installs the process-wide service returned by Default.
// Call it once at application start, right after New.
func SetDefault(s *Service) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultSvc = s
}

// Default returns the process-wide service. It panics with
// ErrNoDefaultService when no service has been installed: dispatching without
// an initialized service is a configuration error and must fail fast rather
// than silently drop toasts.
func Default() *Service {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	if defaultSvc == nil {
		panic(ErrNoDefaultService)
	}
	return defaultSvc
}
