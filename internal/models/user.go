package models

import "gorm.io/gorm"

// Role tags attached to users. Flat set, no role implies another.
const (
	RoleAdmin     = "admin"
	RoleSuperUser = "super-user"
	RoleUser      = "user"
)

// User represents an account of the store.
type User struct {
	ID         string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email      string   `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string   `json:"-" gorm:"type:varchar(255)"` // bcrypt hash, never serialized
	FullName   string   `json:"fullName" gorm:"type:varchar(255)"`
	Roles      []string `json:"roles" gorm:"serializer:json"`
	IsActive   bool     `json:"isActive" gorm:"default:true"`
	gorm.Model `json:"-"` // CreatedAt, UpdatedAt, DeletedAt
}

// HasAnyRole reports whether the user holds at least one of the given roles.
// An empty required set means any authenticated user passes.
func (u *User) HasAnyRole(required ...string) bool {
	if len(required) == 0 {
		return true
	}
	for _, have := range u.Roles {
		for _, want := range required {
			if have == want {
				return true
			}
		}
	}
	return false
}

// Sanitized returns a copy of the user with the password hash stripped.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
