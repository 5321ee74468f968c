package models

// Principal is the authenticated actor of a single request. It is never persisted.
type Principal struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
	Name string `json:"name"`
}
