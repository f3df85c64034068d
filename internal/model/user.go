package model

import "time"

// User is a managed user record. Roles holds the role rows currently
// attached to this user via their owning foreign key.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"size:255;not null"`
	Age       int       `json:"age" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Roles []Role `json:"roles" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// HasRole reports whether a role with the given id is attached.
func (u *User) HasRole(roleID uint) bool {
	for _, r := range u.Roles {
		if r.RoleID == roleID {
			return true
		}
	}
	return false
}
