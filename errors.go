package mbtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrEmptyTree signals a query which needs at least one key, issued on an empty tree.
	ErrEmptyTree = errors.New("btree: tree is empty")
	// ErrInvariantViolation signals that a tree failed its structural checks.
	// Check returns a *Violation wrapping it.
	ErrInvariantViolation = errors.New("btree: invariant violation")
)
