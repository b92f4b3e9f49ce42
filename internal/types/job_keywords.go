package types

// JobKeywords is the keyword set parsed once per run from the supplied job
// description. It is shared read-only across every scoring call of that run,
// threaded through as a parameter rather than held as global state so that
// concurrent batches stay isolated.
type JobKeywords struct {
	// Keywords are the vocabulary terms found in the job description, in
	// vocabulary order, deduplicated.
	Keywords []string `json:"keywords"`
}

// Empty reports whether the job description yielded zero keywords.
func (k *JobKeywords) Empty() bool {
	return len(k.Keywords) == 0
}

// Contains reports whether the keyword set includes the given term exactly
// (terms are stored in vocabulary casing, so callers compare canonical names).
func (k *JobKeywords) Contains(term string) bool {
	for _, kw := range k.Keywords {
		if kw == term {
			return true
		}
	}
	return false
}
