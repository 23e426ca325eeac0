package domain

import "errors"

var (
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrMalformedSnapshot   = errors.New("malformed agent snapshot")
	ErrInvalidPattern      = errors.New("invalid hostname collapse pattern")
	ErrUnsupportedFormat   = errors.New("unsupported render format")
	ErrNoKubeConfig        = errors.New("kubernetes configuration not provided")
	ErrNoClient            = errors.New("kubernetes client is not initialized")
)
