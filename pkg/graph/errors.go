package graph

import (
	"errors"
	"fmt"
)

// ErrNodeNotFound is returned when an identifier is not a member of the graph.
var ErrNodeNotFound = errors.New("node not found")

// NodeError provides structured error information for lookups by identifier.
type NodeError struct {
	Op     string // Operation that failed (e.g., "ShortestPaths")
	NodeID uint64
	Cause  error
}

// Error implements the error interface.
func (e *NodeError) Error() string {
	return fmt.Sprintf("%s node %d: %v", e.Op, e.NodeID, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *NodeError) Unwrap() error {
	return e.Cause
}

// NotFound builds a NodeError wrapping ErrNodeNotFound.
func NotFound(op string, id uint64) error {
	return &NodeError{Op: op, NodeID: id, Cause: ErrNodeNotFound}
}
