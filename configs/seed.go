package configs

import (
	"github.com/tomasbagu/POSapp/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedCashier creates the cashier account on first run so the menu can be
// managed before any registration happens.
func SeedCashier(db *gorm.DB, email, password string) error {
	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Create(&entity.User{
		Email:    email,
		Password: string(hashed),
		Name:     "Cashier",
		Role:     entity.RoleCashier,
	}).Error
}
