package core

// State is the mutable mapping passed from node to node by the host pipeline.
// Only one node touches it at a time.
type State map[string]any

// Has reports whether key is present, even if its value is nil.
func (s State) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Clone returns a shallow copy of the state.
func (s State) Clone() State {
	out := make(State, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
