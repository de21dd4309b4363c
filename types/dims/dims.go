// Package dims defines the fixed-dimensionality integer vectors used to describe kernel
// launch geometry (point indices and extents) in 1, 2 or 3 dimensions.
//
// The dimensionality of a vector is part of its type: Vec[D1], Vec[D2] and Vec[D3] are
// distinct types, and mixing dimensionalities in arithmetic or comparisons is a compile
// error, not a runtime check. The set of supported dimensionalities is sealed by the Dim
// constraint -- there is no Vec[D4].
//
// Vectors are cheap transient values: a launch request builds one, the canonicalization
// functions (EmbedIndex, EmbedExtent) pad it to the fixed 3-D form the execution path
// consumes, and ExtractIndex/ExtractExtent recover the original dimensionality on the way
// back out. All operations are pure and safe for unrestricted concurrent use.
package dims

import (
	"fmt"
	"strings"

	"github.com/gomlx/exceptions"
)

// D1, D2 and D3 are the dimension tags: phantom types selecting the dimensionality of a
// Vec at compile time.
type (
	D1 struct{}
	D2 struct{}
	D3 struct{}
)

func (D1) rank() int { return 1 }
func (D2) rank() int { return 2 }
func (D3) rank() int { return 3 }

// Dim is the sealed constraint of supported dimension tags. Launch geometry is only
// defined for 1, 2 and 3 dimensions; anything else fails to compile.
type Dim interface {
	D1 | D2 | D3
	rank() int
}

// Rank returns the number of components of vectors tagged with D.
func Rank[D Dim]() int {
	var d D
	return d.rank()
}

// Vec is a fixed-length vector of Rank[D] non-negative integer components.
//
// It represents either a point index or an extent (see the ID and Range aliases).
// The zero value has all components zero. Vec values are comparable with ==, and the
// comparison is componentwise over the Rank[D] components.
type Vec[D Dim] struct {
	// Backing storage always has room for 3 components, but only the leading Rank[D]
	// slots are in use; the rest are kept zero so == stays componentwise.
	data [3]uint64
}

// ID is a Vec in its point-index role.
type ID[D Dim] = Vec[D]

// Range is a Vec in its extent role: each component is a count of work items along one
// dimension.
type Range[D Dim] = Vec[D]

// ID3 and Range3 are the canonical 3-D forms every backend-facing execution path
// consumes, regardless of the dimensionality a launch was expressed in.
type (
	ID3    = Vec[D3]
	Range3 = Vec[D3]
)

// New1, New2 and New3 build a vector from exactly Rank[D] components. There is one
// factory per supported dimensionality, so passing the wrong number of components is a
// compile error.
func New1(d0 uint64) Vec[D1] {
	return Vec[D1]{data: [3]uint64{d0, 0, 0}}
}

// New2 builds a 2-D vector.
func New2(d0, d1 uint64) Vec[D2] {
	return Vec[D2]{data: [3]uint64{d0, d1, 0}}
}

// New3 builds a 3-D vector.
func New3(d0, d1, d2 uint64) Vec[D3] {
	return Vec[D3]{data: [3]uint64{d0, d1, d2}}
}

// Splat returns a vector with the value v replicated across all Rank[D] components.
func Splat[D Dim](v uint64) Vec[D] {
	var out Vec[D]
	for i := 0; i < Rank[D](); i++ {
		out.data[i] = v
	}
	return out
}

// Indexed is the structural interop seam with externally defined index/range types:
// anything exposing per-dimension access converts to a Vec without either type knowing
// about the other. Vec itself implements Indexed.
type Indexed interface {
	Get(dim int) uint64
}

// FromIndexed builds a Vec by elementwise copy from any Indexed source of matching
// dimensionality. The source having at least Rank[D] valid dimensions is part of the
// caller's contract.
func FromIndexed[D Dim](src Indexed) Vec[D] {
	var out Vec[D]
	for i := 0; i < Rank[D](); i++ {
		out.data[i] = src.Get(i)
	}
	return out
}

// FromSlice builds a Vec from a slice with exactly Rank[D] elements. It panics
// otherwise: a dimensionality mismatch is program misuse, not a recoverable error.
func FromSlice[D Dim](values []uint64) Vec[D] {
	if len(values) != Rank[D]() {
		exceptions.Panicf("dims.FromSlice[%d-D]: got %d values", Rank[D](), len(values))
	}
	var out Vec[D]
	copy(out.data[:], values)
	return out
}

// Get returns the component for the given dimension, which must be in [0, Rank[D]).
func (v Vec[D]) Get(dim int) uint64 {
	v.assertDim(dim)
	return v.data[dim]
}

// Set assigns the component for the given dimension, which must be in [0, Rank[D]).
func (v *Vec[D]) Set(dim int, value uint64) {
	v.assertDim(dim)
	v.data[dim] = value
}

func (v Vec[D]) assertDim(dim int) {
	if dim < 0 || dim >= Rank[D]() {
		exceptions.Panicf("dims: dimension %d out of range for %d-D vector", dim, Rank[D]())
	}
}

// Rank returns the number of components of the vector.
func (v Vec[D]) Rank() int { return Rank[D]() }

// Size returns the product of all components: the total number of elements when the
// vector denotes an extent. Overflow is not detected; staying within the uint64 domain
// is the caller's responsibility.
func (v Vec[D]) Size() uint64 {
	size := uint64(1)
	for i := 0; i < Rank[D](); i++ {
		size *= v.data[i]
	}
	return size
}

// Equal reports whether both vectors have identical components. Equivalent to ==.
func (v Vec[D]) Equal(other Vec[D]) bool {
	return v.data == other.data
}

// String formats the vector as "(d0, d1, ...)" over its Rank[D] components.
func (v Vec[D]) String() string {
	parts := make([]string, Rank[D]())
	for i := range parts {
		parts[i] = fmt.Sprintf("%d", v.data[i])
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// apply2 is the single elementwise operator helper all arithmetic methods go through.
func apply2[D Dim](a, b Vec[D], op func(x, y uint64) uint64) Vec[D] {
	var out Vec[D]
	for i := 0; i < Rank[D](); i++ {
		out.data[i] = op(a.data[i], b.data[i])
	}
	return out
}

// Add returns the componentwise sum v + other.
func (v Vec[D]) Add(other Vec[D]) Vec[D] {
	return apply2(v, other, func(x, y uint64) uint64 { return x + y })
}

// Sub returns the componentwise difference v - other.
func (v Vec[D]) Sub(other Vec[D]) Vec[D] {
	return apply2(v, other, func(x, y uint64) uint64 { return x - y })
}

// Mul returns the componentwise product v * other.
func (v Vec[D]) Mul(other Vec[D]) Vec[D] {
	return apply2(v, other, func(x, y uint64) uint64 { return x * y })
}

// Div returns the componentwise quotient v / other. A zero component in other panics,
// as integer division by zero does.
func (v Vec[D]) Div(other Vec[D]) Vec[D] {
	return apply2(v, other, func(x, y uint64) uint64 { return x / y })
}

// Mod returns the componentwise remainder v % other.
func (v Vec[D]) Mod(other Vec[D]) Vec[D] {
	return apply2(v, other, func(x, y uint64) uint64 { return x % y })
}

// AddInPlace adds other into v.
func (v *Vec[D]) AddInPlace(other Vec[D]) { *v = v.Add(other) }

// SubInPlace subtracts other from v.
func (v *Vec[D]) SubInPlace(other Vec[D]) { *v = v.Sub(other) }

// MulInPlace multiplies v by other.
func (v *Vec[D]) MulInPlace(other Vec[D]) { *v = v.Mul(other) }

// DivInPlace divides v by other.
func (v *Vec[D]) DivInPlace(other Vec[D]) { *v = v.Div(other) }

// ModInPlace reduces v modulo other.
func (v *Vec[D]) ModInPlace(other Vec[D]) { *v = v.Mod(other) }
