package uniprot

// FeatureFilter is the set of feature types a caller wants to keep.
// The empty filter accepts every type.
type FeatureFilter map[string]struct{}

// NewFeatureFilter builds a filter from a list of feature type names.
func NewFeatureFilter(types []string) FeatureFilter {
	f := make(FeatureFilter, len(types))
	for _, t := range types {
		f[t] = struct{}{}
	}
	return f
}

func (f FeatureFilter) Allows(featureType string) bool {
	if len(f) == 0 {
		return true
	}
	_, ok := f[featureType]
	return ok
}
