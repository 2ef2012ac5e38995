package config

import (
	"errors"
	"os"

	"backend/models"
	"backend/utils"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const adminSeedMarker = "admin_seeded"

// SeedAdmin provisions the initial admin account exactly once. The guard is a
// persisted SystemMarker row, so restarts and multiple replicas stay
// idempotent without any in-memory state.
func SeedAdmin() {
	var marker models.SystemMarker
	err := DB.Where("name = ?", adminSeedMarker).First(&marker).Error
	if err == nil {
		return // already seeded
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatal().Err(err).Msg("admin seed check failed")
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Warn().Msg("ADMIN_EMAIL/ADMIN_PASSWORD not set; skipping admin seed")
		return
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Fatal().Err(err).Msg("admin password hash failed")
	}

	err = DB.Transaction(func(tx *gorm.DB) error {
		admin := models.User{
			Email:     email,
			Password:  hashed,
			FirstName: "Admin",
			Role:      models.RoleAdmin,
		}
		if err := tx.Where("email = ?", email).FirstOrCreate(&admin).Error; err != nil {
			return err
		}
		return tx.Create(&models.SystemMarker{Name: adminSeedMarker}).Error
	})
	if err != nil {
		log.Fatal().Err(err).Msg("admin seed failed")
	}
	log.Info().Str("email", email).Msg("admin account seeded")
}
