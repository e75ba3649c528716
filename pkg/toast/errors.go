package toast

import "errors"

var (
	// ErrEmptyMessage is returned when a toast is created without display text.
	ErrEmptyMessage = errors.New("toast: message is required")

	// ErrToastNotFound is returned when an update targets an id that is not in the store.
	ErrToastNotFound = errors.New("toast: toast not found")

	// ErrNilComputation is returned when Promise is called without a computation to run.
	ErrNilComputation = errors.New("toast: nil computation passed to Promise")

	// ErrNoDefaultService is raised when the package-level dispatcher is used
	// before SetDefault has been called.
	ErrNoDefaultService = errors.New("toast: default service is not configured, call SetDefault first")
)
