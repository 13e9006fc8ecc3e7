package config

import (
	"log"
	"os"

	"github.com/omerkonca/kantin23/models"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the bootstrap admin account if no admin exists yet.
// Credentials come from ADMIN_EMAIL / ADMIN_PASSWORD, with dev defaults.
func SeedAdmin() {
	var cnt int64
	DB.Model(&models.Profile{}).Where("role = ?", models.RoleAdmin).Count(&cnt)
	if cnt > 0 {
		return
	}

	email := envOr("ADMIN_EMAIL", "admin@kantin.local")
	password := envOr("ADMIN_PASSWORD", "admin123")
	if os.Getenv("ADMIN_PASSWORD") == "" {
		log.Println("warning: seeding admin with default password, set ADMIN_PASSWORD")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("admin seed failed: %v", err)
		return
	}

	admin := models.Profile{
		Email:        email,
		Name:         "Admin",
		Role:         models.RoleAdmin,
		PasswordHash: string(hash),
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("admin seed failed: %v", err)
		return
	}
	log.Printf("admin account seeded: %s", email)
}
