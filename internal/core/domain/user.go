package domain

type User struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	HashedPassword string `json:"hashed_password,omitempty"`
}

// VerifiedIdentity is the authenticated subject reconstructed from a valid
// bearer token. It is built fresh on every request and never cached.
type VerifiedIdentity struct {
	UserID int64 `json:"user_id"`
}
