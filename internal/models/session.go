package models

type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Session is the locally stored login record. The token is fabricated by the
// mock login flow and never verified by anything.
type Session struct {
	Token    string `json:"token"`
	LoggedIn bool   `json:"loggedIn"`
	User     User   `json:"user"`
}
