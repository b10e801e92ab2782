package model

// SavedCareer is a bookmark of a career path by a user. A (user, career) pair
// is unique at the store level.
type SavedCareer struct {
	UserID     string `json:"-"`
	CareerName string `json:"career_name"`
}
