package models

// Kind discriminates the two user populations of the portal.
type Kind string

const (
	KindStudent Kind = "student"
	KindStaff   Kind = "staff"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == KindStudent || k == KindStaff
}

// Actor is an acting identity: a roll number for students, an employee id
// for staff, always paired with its kind. Keeping the pair in one struct
// means an identity can never be stored without its kind.
type Actor struct {
	Kind Kind   `json:"kind" bson:"kind"`
	ID   string `json:"id" bson:"id"`
}

// IsStaff reports whether the actor belongs to the staff population and is
// therefore empowered to moderate forum content.
func (a Actor) IsStaff() bool {
	return a.Kind == KindStaff
}
