package spirv

// idGenerator is a monotonic counter producing fresh SPIR-V result ids.
// The final value issued plus one becomes the module's physical-header
// bound.
type idGenerator struct {
	next Word
}

// Next returns a fresh id and advances the counter.
func (g *idGenerator) Next() Word {
	id := g.next
	g.next++
	return id
}

// reset restores the generator to its initial state. Id 0 is reserved (no
// SPIR-V instruction may use it as a result id), and the writer's own
// dummy-record convention (globalVariableRecord.isDummy, functionIDs
// zero-value) relies on 0 never being a live id, so the counter starts at 1.
func (g *idGenerator) reset() {
	g.next = 1
}
