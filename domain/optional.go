package domain

// ExtractOptional reads a remote optional value, encoded as a zero-or-one
// element sequence. It returns seq[0], or def when seq is empty.
func ExtractOptional[T any](seq []T, def T) T {
	if len(seq) > 0 {
		return seq[0]
	}
	return def
}

// ExtractOptionalPtr is ExtractOptional for fields kept as pointers in the
// domain, absent maps to nil
func ExtractOptionalPtr[T any](seq []T) *T {
	if len(seq) == 0 {
		return nil
	}
	v := seq[0]
	return &v
}

// ToOptional is the inverse, used when encoding requests
func ToOptional[T any](p *T) []T {
	if p == nil {
		return []T{}
	}
	return []T{*p}
}
