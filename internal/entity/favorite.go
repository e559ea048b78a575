package entity

// Favorite links a user to exactly one planet or one person. Both
// target keys are present on the wire; the unused one is null.
type Favorite struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	PlanetID *int64 `json:"planet_id"`
	PeopleID *int64 `json:"people_id"`
}
