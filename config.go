package mbtree

import "fmt"

const (
	// DefaultOrder is the order used for a zero Config.
	DefaultOrder = 12
	// MinOrder is the smallest order for which borrow and merge are well defined.
	MinOrder = 3
)

// Config configures a B-tree.
type Config struct {
	// Order is the maximum number of children of an internal node.
	// Nodes hold at most Order-1 keys. Zero selects DefaultOrder.
	Order int
}

func (cfg Config) normalized() Config {
	if cfg.Order == 0 {
		cfg.Order = DefaultOrder
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.Order < MinOrder {
		return fmt.Errorf("%w: order must be >= %d, is %d", ErrInvalidConfig, MinOrder, cfg.Order)
	}
	return nil
}

// maxKeys is the upper key occupancy bound of every node.
func (cfg Config) maxKeys() int {
	return cfg.Order - 1
}

// minKeys is the lower key occupancy bound of every non-root node, ⌈M/2⌉-1.
func (cfg Config) minKeys() int {
	return (cfg.Order+1)/2 - 1
}

// minChildren is the lower child count bound of non-root internal nodes, ⌈M/2⌉.
func (cfg Config) minChildren() int {
	return (cfg.Order + 1) / 2
}
