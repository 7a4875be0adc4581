package common

// Keys under which records are persisted in a key-value backend.
const (
	UsersKey   = "users"
	SessionKey = "userSession"
)
