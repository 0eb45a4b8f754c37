package spirv

// capabilitySet tracks which capabilities a module is allowed to use
// (nil means unrestricted) and which it has actually used so far.
type capabilitySet struct {
	available map[Capability]bool // nil: unrestricted
	restrict  bool
	used      map[Capability]bool
}

func newCapabilitySet(available []Capability) capabilitySet {
	cs := capabilitySet{used: map[Capability]bool{CapabilityShader: true}}
	if available != nil {
		cs.restrict = true
		cs.available = make(map[Capability]bool, len(available))
		for _, c := range available {
			cs.available[c] = true
		}
	}
	return cs
}

func (cs *capabilitySet) reset(available []Capability) {
	*cs = newCapabilitySet(available)
}

// requireAny picks the first candidate satisfying the whitelist (or the
// first candidate outright, when unrestricted) and marks it used. An empty
// candidate list is a no-op success, per the gate's contract.
func (cs *capabilitySet) requireAny(what string, candidates []Capability) (Capability, error) {
	if len(candidates) == 0 {
		return 0, nil
	}
	if !cs.restrict {
		picked := candidates[0]
		cs.used[picked] = true
		return picked, nil
	}
	for _, c := range candidates {
		if cs.available[c] {
			cs.used[c] = true
			return c, nil
		}
	}
	return 0, &MissingCapabilitiesError{What: what, Alternatives: candidates}
}

// list returns the used-capability set as a slice, in no particular order
// beyond what Go's map iteration gives — callers that need determinism
// (e.g. tests) should sort.
func (cs *capabilitySet) list() []Capability {
	out := make([]Capability, 0, len(cs.used))
	for c := range cs.used {
		out = append(out, c)
	}
	return out
}
