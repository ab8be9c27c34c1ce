package resolver

// NestedSet holds the unqualified names of every struct being reflected in
// one run.
type NestedSet map[string]struct{}

// NestedAware can consume the set of reflected struct names.
type NestedAware interface {
	SetNestedSet(NestedSet)
}
