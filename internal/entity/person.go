package entity

// Person is a catalog character. The API exposes the collection as
// "people", matching the people table.
type Person struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	BirthYear *string `json:"birth_year"`
	Gender    *string `json:"gender"`
}
