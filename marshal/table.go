package marshal

// objectTable is the append-only registry of sharable values, indexed by
// allocation order.
//
// The decoder reserves a slot the moment it reads a sharable construct's
// header, before any children are decoded. That keeps the allocation counter
// in lockstep with the producer's, which is what makes shared back-offsets
// resolvable — including a back-offset into a block whose fields are still
// being filled, the case that makes cycles decodable. Slots hold mutable
// cells (pointers), so there is no separate finalize step: the cell reserved
// at header time is the cell the caller ultimately sees.
//
// Entries are never removed or overwritten. The table grows on demand; the
// header's advisory object count never pre-sizes it, so a corrupt count
// cannot force a huge allocation.
type objectTable struct {
	entries []Value
}

// reserve appends v as the next allocation and returns its slot index.
func (t *objectTable) reserve(v Value) int {
	t.entries = append(t.entries, v)
	return len(t.entries) - 1
}

// get returns the value at slot index. The index must come from resolve
// arithmetic already validated against len.
func (t *objectTable) get(index int) Value {
	return t.entries[index]
}

// len returns the allocation counter: the number of slots reserved so far.
func (t *objectTable) len() int {
	return len(t.entries)
}
