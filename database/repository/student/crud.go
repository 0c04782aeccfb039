// File: database/repository/student/crud.go
package studentRepo

import (
	"context"
	"fmt"
	"time"

	"tiffin/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoStudentRepo) Create(ctx context.Context, student *models.Student) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if student.ID == "" {
		student.ID = uuid.New().String()
	}
	student.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, student); err != nil {
		return fmt.Errorf("failed to insert student: %w", err)
	}
	return nil
}

func (r *mongoStudentRepo) GetByID(ctx context.Context, id string) (*models.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var student models.Student
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&student); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch student %s: %w", id, err)
	}
	return &student, nil
}

func (r *mongoStudentRepo) GetByKitchen(ctx context.Context, kitchenID string) ([]models.Student, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"kitchenId": kitchenID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve students for kitchen %s: %w", kitchenID, err)
	}
	defer cursor.Close(ctx)

	var students []models.Student
	if err := cursor.All(ctx, &students); err != nil {
		return nil, fmt.Errorf("failed to decode students: %w", err)
	}
	return students, nil
}

func (r *mongoStudentRepo) UpdateFCMToken(ctx context.Context, id, token string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"fcmToken": token}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update fcm token for student %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
