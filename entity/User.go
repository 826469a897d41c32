package entity

import (
	"gorm.io/gorm"
)

const (
	RoleClient  = "client"
	RoleChef    = "chef"
	RoleCashier = "cashier"
)

func ValidRole(role string) bool {
	switch role {
	case RoleClient, RoleChef, RoleCashier:
		return true
	}
	return false
}

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `gorm:"not null;default:client" json:"role"`
}
