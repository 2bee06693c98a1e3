package match

import "transfer-pathways/internal/domain"

// EquivalencyMap maps a normalized AS code to the set of BS codes it can
// satisfy.
type EquivalencyMap map[string]map[string]struct{}

// Build folds equivalency entries into a map. Entries repeating an AS code
// union their BS codes into the existing set; a later row augments, never
// replaces, what earlier rows declared.
func Build(entries []domain.EquivalencyEntry) EquivalencyMap {
	m := make(EquivalencyMap, len(entries))
	for _, e := range entries {
		set := m[e.ASCode]
		if set == nil {
			set = make(map[string]struct{}, len(e.BSCodes))
			m[e.ASCode] = set
		}
		for _, code := range e.BSCodes {
			set[code] = struct{}{}
		}
	}
	return m
}

// Lookup returns the BS codes equivalent to asCode. Unknown codes yield an
// empty set, never an error.
func (m EquivalencyMap) Lookup(asCode string) map[string]struct{} {
	if set, ok := m[asCode]; ok {
		return set
	}
	return nil
}
