package props

import "sort"

// Split is a two-layer property container. The explicit layer holds
// values the user wrote in the input spec; the implicit layer holds
// values derived from config defaults or inference. Reads always
// prefer the explicit layer, so an implicit write can never shadow an
// explicit value no matter the write order.
type Split struct {
	explicit map[string]any
	implicit map[string]any
}

// NewSplit returns an empty Split.
func NewSplit() *Split {
	return &Split{
		explicit: make(map[string]any),
		implicit: make(map[string]any),
	}
}

// Set writes value into the explicit or implicit layer.
func (s *Split) Set(key string, value any, explicit bool) {
	if explicit {
		s.explicit[key] = value
	} else {
		s.implicit[key] = value
	}
}

// Get returns the explicit value for key if present, else the implicit
// one. The second result reports whether either layer had the key.
func (s *Split) Get(key string) (any, bool) {
	if v, ok := s.explicit[key]; ok {
		return v, true
	}
	v, ok := s.implicit[key]
	return v, ok
}

// Explicit returns the explicit value for key, if any.
func (s *Split) Explicit(key string) (any, bool) {
	v, ok := s.explicit[key]
	return v, ok
}

// HasExplicit reports whether key is set in the explicit layer.
func (s *Split) HasExplicit(key string) bool {
	_, ok := s.explicit[key]
	return ok
}

// ExplicitEmpty reports whether the explicit layer has no entries.
func (s *Split) ExplicitEmpty() bool {
	return len(s.explicit) == 0
}

// Keys returns the union of both layers' keys in sorted order, so
// iteration is deterministic.
func (s *Split) Keys() []string {
	seen := make(map[string]bool, len(s.explicit)+len(s.implicit))
	keys := make([]string, 0, len(s.explicit)+len(s.implicit))
	for k := range s.explicit {
		seen[k] = true
		keys = append(keys, k)
	}
	for k := range s.implicit {
		if !seen[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// ExplicitKeys returns the explicit layer's keys in sorted order.
func (s *Split) ExplicitKeys() []string {
	keys := make([]string, 0, len(s.explicit))
	for k := range s.explicit {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Combined flattens both layers into one map, explicit winning.
func (s *Split) Combined() map[string]any {
	out := make(map[string]any, len(s.explicit)+len(s.implicit))
	for k, v := range s.implicit {
		out[k] = v
	}
	for k, v := range s.explicit {
		out[k] = v
	}
	return out
}

// CopyExplicitFrom copies every explicit entry of other into s.
func (s *Split) CopyExplicitFrom(other *Split) {
	for k, v := range other.explicit {
		s.explicit[k] = v
	}
}
