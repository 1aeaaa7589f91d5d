package models

// User is one registered credential record. The registry is persisted as a
// JSON map keyed by the lower-cased, trimmed username; Username keeps the
// original casing for display.
type User struct {
	ID        string `json:"user_id"`
	Username  string `json:"username"`
	HashedPIN string `json:"hashed_pin"`
}

// Session is the in-memory record of the currently authenticated user.
// A zero Session means nobody is logged in.
type Session struct {
	UserID   string
	Username string
}

// Active reports whether a user is currently logged in.
func (s Session) Active() bool {
	return s.UserID != ""
}
