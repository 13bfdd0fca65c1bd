// Package ids issues the numeric identifiers used by every entity kind.
package ids

import (
	"fmt"
	"sync/atomic"
)

// Kind selects one of the independent counters.
type Kind int

// Entity kinds with their own counter.
const (
	KindTask Kind = iota
	KindStaff
	KindComment
	KindActivity
	kindCount
)

// String returns the lowercase kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindTask:
		return "task"
	case KindStaff:
		return "staff"
	case KindComment:
		return "comment"
	case KindActivity:
		return "activity"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Generator hands out strictly increasing identifiers starting at 1, one
// sequence per Kind. It is safe for concurrent use; two callers never
// receive the same value for the same kind.
type Generator struct {
	counters [kindCount]atomic.Int64
}

// NewGenerator creates a Generator with every counter at zero.
func NewGenerator() *Generator {
	return &Generator{}
}

// Next returns the next identifier for kind.
func (g *Generator) Next(kind Kind) int64 {
	if kind < 0 || kind >= kindCount {
		// ALLOW-PANIC: programming error, kinds are a closed set
		panic(fmt.Sprintf("ids: unknown kind %d", int(kind)))
	}
	return g.counters[kind].Add(1)
}
