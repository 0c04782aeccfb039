// File: database/repository/student/interface.go
package studentRepo

import (
	"context"

	"tiffin/database"
	"tiffin/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// StudentRepository defines methods for student data access.
type StudentRepository interface {
	// Create inserts a new student record.
	Create(ctx context.Context, student *models.Student) error
	// GetByID retrieves a student by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Student, error)
	// GetByKitchen retrieves all students of a kitchen.
	GetByKitchen(ctx context.Context, kitchenID string) ([]models.Student, error)
	// UpdateFCMToken stores the push token of a student's current device.
	UpdateFCMToken(ctx context.Context, id, token string) error
}

type mongoStudentRepo struct {
	coll *mongo.Collection
}

// NewMongoStudentRepo constructs a new MongoDB StudentRepository.
func NewMongoStudentRepo() StudentRepository {
	return &mongoStudentRepo{
		coll: database.DB().Collection("students"),
	}
}
