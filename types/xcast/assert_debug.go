//go:build debug

package xcast

import (
	"reflect"

	"github.com/gomlx/exceptions"
)

// AssertIs panics with the offending dynamic type if v cannot be narrowed to T.
// Only present in binaries built with the "debug" tag.
func AssertIs[T any](v any) {
	if !Is[T](v) {
		exceptions.Panicf("xcast: cannot narrow value of dynamic type %T to %s",
			v, reflect.TypeOf((*T)(nil)).Elem())
	}
}
