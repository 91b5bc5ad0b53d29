package migration

import (
	"github.com/pharris560/ace-attendance/internal/infrastructure/persistence/models"
)

// AutoMigrateModels returns every persistence model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.SessionModel{},
		&models.APIKeyModel{},
		&models.ClassModel{},
		&models.StudentModel{},
		&models.EnrollmentModel{},
		&models.AttendanceModel{},
	}
}
