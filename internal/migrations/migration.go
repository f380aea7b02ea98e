package migrations

import (
	"errors"

	"gorm.io/gorm"

	"showroom_manager/internal/apperrors"
	"showroom_manager/internal/logger"
	"showroom_manager/internal/models"
	"showroom_manager/internal/repository"
	"showroom_manager/internal/services"
)

// RunMigrations brings the schema up to date and seeds the default admin.
// Dropping tables destroys the sales audit trail, so it only happens when
// resetDB is set explicitly (dev environments).
func RunMigrations(db *gorm.DB, resetDB bool) error {
	log := logger.Get()
	log.Info("Running database migrations...")

	tables := []interface{}{
		&models.User{},
		&models.DeliveryOrder{},
		&models.Bike{},
		&models.Customer{},
		&models.Sale{},
		&models.ServiceSale{},
	}

	if resetDB {
		log.Warn("RESET_DB set; dropping all tables")
		if err := db.Migrator().DropTable(tables...); err != nil {
			log.Warnf("Error dropping tables: %v", err)
		}
	}

	if err := db.AutoMigrate(tables...); err != nil {
		return err
	}

	if err := createDefaultAdmin(db); err != nil {
		log.Warnf("Failed to create default admin: %v", err)
	}

	log.Info("Database migrations completed")
	return nil
}

func createDefaultAdmin(db *gorm.DB) error {
	repos := repository.NewRepositories(db)
	userService := services.NewUserService(repos)

	admin := &models.User{
		Email: "admin@showroom.local",
		Name:  "Administrator",
		Role:  string(models.RoleAdmin),
	}

	err := userService.CreateUser(admin, "admin123")
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Kind == apperrors.KindConflict {
			// Already seeded.
			return nil
		}
		return err
	}

	logger.Get().Info("Default admin created (admin@showroom.local / admin123) - change the password")
	return nil
}
