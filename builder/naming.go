// SPDX-License-Identifier: MIT
// Package: shortpath/builder
//
// naming.go - vertex-name schemes used by the generated topologies.
//
// Generated vertex i is named idFn(i). Names are the only identity a
// constructor has for a vertex, so a scheme must be injective on [0, n).

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based generator index to a vertex name.
type IDFn func(idx int) string

// DefaultIDFn names vertex i by its decimal index: "0", "1", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// PrefixedIDFn names vertex i as prefix followed by i, so PrefixedIDFn("v")
// yields "v0", "v1", ... The returned scheme panics on a negative index.
func PrefixedIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("builder: PrefixedIDFn(%q): negative index %d", prefix, idx))
		}

		return prefix + strconv.Itoa(idx)
	}
}

// WithNamePrefix is shorthand for WithIDScheme(PrefixedIDFn(prefix)).
func WithNamePrefix(prefix string) BuilderOption {
	return WithIDScheme(PrefixedIDFn(prefix))
}
