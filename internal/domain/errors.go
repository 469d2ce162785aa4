package domain

import "errors"

var (
	// ErrMissingCredential is returned when no API key was supplied for the selected provider
	ErrMissingCredential = errors.New("provider API key is required")

	// ErrProvider is returned when the model provider call fails (network or provider-side)
	ErrProvider = errors.New("model provider request failed")

	// ErrSchemaValidation is returned when the model response cannot be parsed into the required result shape
	ErrSchemaValidation = errors.New("model response failed schema validation")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCatalogAuth is returned when the storefront rejects the access token
	ErrCatalogAuth = errors.New("catalog authentication failed")

	// ErrCatalogNotFound is returned when the requested catalog record does not exist
	ErrCatalogNotFound = errors.New("catalog record not found")

	// ErrCatalogConnection is returned when the storefront API cannot be reached or errors out
	ErrCatalogConnection = errors.New("catalog connection failed")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
