package user

// Admin is the single gallery administrator account. Documents are keyed
// by email so alias resolution lands directly on the record.
type Admin struct {
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	Role         string `json:"role"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

const RoleAdmin = "admin"
