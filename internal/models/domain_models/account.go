package domain_models

// Account is the server-side record backing the bundled development API.
// The client never sees the password hash; it receives a User instead.
type Account struct {
	Username     string
	DisplayName  string
	Email        string
	PasswordHash string
	Image        string
}

func (a *Account) AsUser() *User {
	return &User{
		Username:    a.Username,
		DisplayName: a.DisplayName,
		Image:       a.Image,
	}
}
