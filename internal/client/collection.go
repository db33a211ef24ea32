package client

// Identified is implemented by values that may carry a store identifier.
type Identified[K comparable] interface {
	Identifier() (K, bool)
}

// AddToCollectionIfMissing prepends the candidates whose identifier is not
// yet in collection, keeping their relative order. Nil candidates and
// candidates without an identifier are dropped, and a repeated identifier
// among the candidates is added once. When nothing qualifies the original
// slice is returned as is.
func AddToCollectionIfMissing[T Identified[K], K comparable](collection []T, candidates ...*T) []T {
	seen := make(map[K]struct{}, len(collection)+len(candidates))
	for _, item := range collection {
		if id, ok := item.Identifier(); ok {
			seen[id] = struct{}{}
		}
	}

	var missing []T
	for _, c := range candidates {
		if c == nil {
			continue
		}
		id, ok := (*c).Identifier()
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		missing = append(missing, *c)
	}

	if len(missing) == 0 {
		return collection
	}
	return append(missing, collection...)
}
