package notification

import (
	"context"
	"fmt"

	studentRepo "tiffin/database/repository/student"
)

// NotificationService defines methods for sending FCM pushes to students.
type NotificationService interface {
	SendStudentPush(ctx context.Context, studentID, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	students studentRepo.StudentRepository
}

func NewDefaultNotificationService(students studentRepo.StudentRepository) (*DefaultNotificationService, error) {
	if students == nil {
		return nil, fmt.Errorf("notification service initialization error: student repository is nil")
	}
	return &DefaultNotificationService{students: students}, nil
}
