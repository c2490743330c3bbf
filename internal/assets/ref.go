package assets

import "strconv"

// Ref selects an asset by numeric ID or by name.
type Ref struct {
	id     int
	name   string
	byName bool
}

// ByID selects by numeric ID.
func ByID(id int) Ref {
	return Ref{id: id}
}

// ByName selects by name.
func ByName(name string) Ref {
	return Ref{name: name, byName: true}
}

// ParseRef treats a decimal string as an ID and anything else as a name.
func ParseRef(s string) Ref {
	if id, err := strconv.Atoi(s); err == nil {
		return ByID(id)
	}
	return ByName(s)
}

// ID returns the numeric ID and whether the ref selects by ID.
func (r Ref) ID() (int, bool) {
	return r.id, !r.byName
}

// Name returns the name and whether the ref selects by name.
func (r Ref) Name() (string, bool) {
	return r.name, r.byName
}

// String returns the inventory key for the ref.
func (r Ref) String() string {
	if r.byName {
		return r.name
	}
	return strconv.Itoa(r.id)
}
