// SPDX-License-Identifier: MIT
// Package merge defines options, finder selection and sentinel errors.

package merge

import (
	"errors"
	"fmt"
)

// ErrUnknownMethod is returned by Find for a Method outside the declared set.
var ErrUnknownMethod = errors.New("merge: unknown method")

// Method selects one of the merge-point finders.
type Method int

const (
	// MethodBruteForce selects BruteForce.
	MethodBruteForce Method = iota
	// MethodHashed selects Hashed.
	MethodHashed
	// MethodLengthDiff selects LengthDiff.
	MethodLengthDiff
)

// String returns the finder name.
func (m Method) String() string {
	switch m {
	case MethodBruteForce:
		return "BruteForce"
	case MethodHashed:
		return "Hashed"
	case MethodLengthDiff:
		return "LengthDiff"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Methods lists every finder in declaration order.
func Methods() []Method {
	return []Method{MethodBruteForce, MethodHashed, MethodLengthDiff}
}

// Option configures a finder call.
type Option func(*Options)

// Options holds the finder configuration.
type Options struct {
	// Identity, if true, compares cells by pointer instead of by Value.
	Identity bool
}

// DefaultOptions returns value-equality comparison.
func DefaultOptions() Options {
	return Options{Identity: false}
}

// WithIdentity returns an Option that compares cells by identity.
func WithIdentity() Option {
	return func(o *Options) {
		o.Identity = true
	}
}

// resolve applies opts over DefaultOptions.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
