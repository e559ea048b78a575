package entity

// Planet is a catalog planet. Climate and terrain are nullable in the
// schema and serialize as null when unset.
type Planet struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Climate *string `json:"climate"`
	Terrain *string `json:"terrain"`
}
