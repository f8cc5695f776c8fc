package domain

import "errors"

var (
	// ErrConnection indicates the connection could not be established or released.
	ErrConnection = errors.New("connection error")

	// ErrTransport indicates a network failure or timeout while a request was in flight.
	ErrTransport = errors.New("transport error")

	// ErrRequest indicates the request could not be built from the given inputs.
	ErrRequest = errors.New("request error")

	// ErrResponseParse indicates the endpoint answered without the expected suggestion structure.
	ErrResponseParse = errors.New("response parse error")
)
