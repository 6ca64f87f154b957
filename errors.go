package win

import "errors"

// Errors returned by window construction and operations.
var (
	// ErrUnknownAspect is returned when an unrecognized aspect ratio is
	// passed to NewWithAspect. No backend resources are created.
	ErrUnknownAspect = errors.New("win: unknown aspect ratio")

	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("win: invalid dimensions")

	// ErrColorOutOfRange is returned when a clear-color component is outside
	// its declared domain. The window's clear-color state is unchanged.
	ErrColorOutOfRange = errors.New("win: clear color component out of range")

	// ErrNoContext is returned when a screenshot is requested without an
	// active graphics context. Nothing is read or written.
	ErrNoContext = errors.New("win: no active graphics context")

	// ErrNoBackend is returned when no windowing backend is registered.
	ErrNoBackend = errors.New("win: no backend available")

	// ErrMarkerNotFound is returned when the fallback screenshot-root walk
	// reaches the filesystem root without finding the marker directory.
	ErrMarkerNotFound = errors.New("win: marker directory not found")
)
