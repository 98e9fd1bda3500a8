package model

// Known user roles. Admin unlocks the management UI.
const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

// User is a login credential row. Username uniqueness is enforced by a
// pre-insert existence check in the auth service, not by a store
// constraint; the schema never declared one.
type User struct {
	ID           int    `json:"id" gorm:"primaryKey"`
	Username     string `json:"username" gorm:"size:100;not null"`
	PasswordHash string `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         string `json:"role" gorm:"size:50;default:'User'"`
}

func (u User) EntityID() int { return u.ID }
