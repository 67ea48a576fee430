package core

import "errors"

var (
	// ErrInvalidConnection is returned when a connection would join a node to
	// itself.
	ErrInvalidConnection = errors.New("invalid connection")

	// ErrUnknownEndpoint is returned when a connection refers to a node or port
	// that is not part of the diagram.
	ErrUnknownEndpoint = errors.New("unknown endpoint")

	ErrNoPorts     = errors.New("node has no ports")
	ErrInvalidPort = errors.New("invalid port")
	ErrInvalidNode = errors.New("invalid node")
	ErrNoNodes     = errors.New("diagram has no nodes")
	ErrDuplicateID = errors.New("duplicate id")
)
