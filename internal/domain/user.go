package domain

import "gorm.io/gorm"

// User holds the stored account row. Password is a bcrypt hash and is never
// serialised to JSON; every outward representation goes through the service
// layer's UserResponse projection.
type User struct {
	gorm.Model
	Name     string
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `json:"-"`
	NoHp     string
}
