package probability

type queryKind int

const (
	queryValues queryKind = iota
	queryValue
	queryPredicate
)

// Query selects outcomes from a sample space. Build one with Value, Where
// or Values and run it with SampleSpace.Select.
type Query[O comparable] struct {
	kind   queryKind
	values []O
	match  func(O) bool
	name   string
}

// Value selects the simple event of a single outcome.
func Value[O comparable](outcome O) Query[O] {
	return Query[O]{kind: queryValue, values: []O{outcome}}
}

// Values selects the event of any of the listed outcomes.
func Values[O comparable](outcomes ...O) Query[O] {
	return Query[O]{kind: queryValues, values: outcomes}
}

// Where selects the event of every outcome accepted by match.
func Where[O comparable](match func(O) bool) Query[O] {
	return Query[O]{kind: queryPredicate, match: match}
}

// Named names the event the query produces.
func (q Query[O]) Named(name string) Query[O] {
	q.name = name
	return q
}
