// Package xcast implements the narrowing conversions the dispatcher uses to reach a
// concrete backend implementation behind an abstract device, queue or operation handle.
//
// Two accessors are provided for the two kinds of call sites:
//
//   - As is the checked accessor: it returns ok=false on a mismatch and is what safe
//     call sites should use.
//   - Cast is the hot-path accessor, invoked once per kernel submission: it performs
//     AssertIs and then the narrowing conversion. AssertIs only exists in binaries built
//     with the "debug" tag; in regular builds a mismatched Cast is an unrecoverable
//     type-assertion panic with no diagnostic beyond the runtime's own. Callers that
//     cannot guarantee the dynamic type must use As instead.
//
// None of these functions mutate the inspected object or synchronize access to it;
// keeping the object alive for the duration of the call is the caller's concern.
package xcast

// Is reports whether v's dynamic type is T, or a type that implements T.
// It is false for a nil v and for every unrelated sibling implementation.
func Is[T any](v any) bool {
	_, ok := v.(T)
	return ok
}

// As returns v narrowed to T, with ok reporting whether the narrowing holds.
func As[T any](v any) (t T, ok bool) {
	t, ok = v.(T)
	return
}

// Cast narrows v to T without a checked fallback. See the package comment for the
// debug/release contract.
func Cast[T any](v any) T {
	AssertIs[T](v)
	return v.(T)
}
