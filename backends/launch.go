package backends

import (
	"fmt"

	"github.com/accelrt/accelrt/types/dims"
	"github.com/accelrt/accelrt/types/xmath"
)

// NDRange is the canonical launch geometry of one kernel submission, always held in
// 3-D form. Dim-polymorphic submission code builds it with NewNDRange and friends; the
// fixed-arity execution path below this seam only ever sees NDRange.
type NDRange struct {
	// Global is the total extent of work items per dimension.
	Global dims.Range3

	// Local is the work-group extent per dimension. The zero value means the backend
	// picks a size.
	Local dims.Range3

	// Offset shifts the origin of the index space.
	Offset dims.ID3
}

// NewNDRange builds a canonical launch geometry from a Dim-polymorphic global extent.
func NewNDRange[D dims.Dim](global dims.Range[D]) NDRange {
	return NDRange{Global: dims.EmbedExtent(global)}
}

// NewNDRangeWithLocal builds a canonical launch geometry from Dim-polymorphic global
// and work-group extents. Both must have the same dimensionality; mixing them is a
// compile error.
func NewNDRangeWithLocal[D dims.Dim](global, local dims.Range[D]) NDRange {
	return NDRange{
		Global: dims.EmbedExtent(global),
		Local:  dims.EmbedExtent(local),
	}
}

// NewNDRangeWithOffset is NewNDRangeWithLocal plus an index-space origin.
func NewNDRangeWithOffset[D dims.Dim](global, local dims.Range[D], offset dims.ID[D]) NDRange {
	r := NewNDRangeWithLocal(global, local)
	r.Offset = dims.EmbedIndex(offset)
	return r
}

// HasLocal reports whether the submission specified a work-group extent.
func (r NDRange) HasLocal() bool {
	return r.Local != dims.Range3{}
}

// NumWorkItems returns the total number of work items.
func (r NDRange) NumWorkItems() uint64 {
	return r.Global.Size()
}

// NumGroups returns how many work groups the geometry needs per dimension: the ceiling
// of global over local. Panics via integer division if Local has a zero component; call
// HasLocal first.
func (r NDRange) NumGroups() dims.Range3 {
	return dims.New3(
		xmath.CeilDiv(r.Global.Get(0), r.Local.Get(0)),
		xmath.CeilDiv(r.Global.Get(1), r.Local.Get(1)),
		xmath.CeilDiv(r.Global.Get(2), r.Local.Get(2)),
	)
}

// PaddedGlobal returns the global extent rounded up per dimension to a multiple of the
// work-group extent -- the extent a backend actually enqueues when it requires exact
// divisibility. Same precondition as NumGroups.
func (r NDRange) PaddedGlobal() dims.Range3 {
	return dims.New3(
		xmath.NextMultipleOf(r.Global.Get(0), r.Local.Get(0)),
		xmath.NextMultipleOf(r.Global.Get(1), r.Local.Get(1)),
		xmath.NextMultipleOf(r.Global.Get(2), r.Local.Get(2)),
	)
}

// String implements fmt.Stringer.
func (r NDRange) String() string {
	if !r.HasLocal() {
		return fmt.Sprintf("NDRange{global=%s, offset=%s}", r.Global, r.Offset)
	}
	return fmt.Sprintf("NDRange{global=%s, local=%s, offset=%s}", r.Global, r.Local, r.Offset)
}
