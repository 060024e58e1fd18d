// Package session persists the client's session state — the issued token and
// the user summary — in a local SQLite database. Token and user are always
// written and cleared together so the pair invariant holds across restarts.
package session

// User is the persisted user summary.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Session is the client-side session state: a bearer token and the summary of
// the user it was issued for. Both are present or the client is logged out;
// there is no partial state.
type Session struct {
	Token string
	User  User
}
