package app

// Index is an optional position into an owning slice.
type Index struct {
	value int
	valid bool
}

var None = Index{}

func Some(i int) Index {
	return Index{value: i, valid: true}
}

func (i Index) Get() (int, bool) {
	return i.value, i.valid
}

func (i Index) IsSome() bool {
	return i.valid
}

// Is reports whether the index is set and equal to n.
func (i Index) Is(n int) bool {
	return i.valid && i.value == n
}

// within drops the index when it no longer fits a slice of length n.
func (i Index) within(n int) Index {
	if !i.valid || i.value < 0 || i.value >= n {
		return None
	}
	return i
}
