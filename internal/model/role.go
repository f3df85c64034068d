package model

// Role is a single role row. A nil UserID marks a catalog entry that is not
// attached to any user; attaching a role sets UserID, detaching clears it.
type Role struct {
	RoleID uint   `json:"roleId" gorm:"primaryKey;column:role_id"`
	Name   string `json:"name" gorm:"size:50;not null"`
	UserID *uint  `json:"-" gorm:"index"`
}

// DefaultRoles is the role catalog inserted at initialization.
var DefaultRoles = []Role{
	{RoleID: 1, Name: "User"},
	{RoleID: 2, Name: "Admin"},
	{RoleID: 3, Name: "Support"},
	{RoleID: 4, Name: "SuperAdmin"},
}
