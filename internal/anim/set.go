package anim

// Set maps each available category to its sequence
type Set map[Category]*Sequence

// Get returns the sequence for c if one is registered and playable
func (s Set) Get(c Category) (*Sequence, bool) {
	seq, ok := s[c]
	if !ok || !seq.Valid() {
		return nil, false
	}
	return seq, true
}

// Categories returns the registered categories in declaration order
func (s Set) Categories() []Category {
	var out []Category
	for _, c := range Categories {
		if _, ok := s.Get(c); ok {
			out = append(out, c)
		}
	}
	return out
}

// Valid returns a copy holding only playable sequences
func (s Set) Valid() Set {
	out := make(Set, len(s))
	for c, seq := range s {
		if seq.Valid() {
			out[c] = seq
		}
	}
	return out
}

// Merge returns a copy of s with every playable sequence of overlay on top
func (s Set) Merge(overlay Set) Set {
	out := s.Valid()
	for c, seq := range overlay {
		if seq.Valid() {
			out[c] = seq
		}
	}
	return out
}
