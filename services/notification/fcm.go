package notification

import (
	"context"
	"fmt"

	"tiffin/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// SendStudentPush looks up a student's FCM token and sends a push.
func (s *DefaultNotificationService) SendStudentPush(
	ctx context.Context,
	studentID, title, body string,
	data map[string]string,
) error {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return fmt.Errorf("SendStudentPush: could not find student %s: %w", studentID, err)
	}
	if student == nil || student.FCMToken == "" {
		return fmt.Errorf("SendStudentPush: student %s has no FCM token", studentID)
	}

	msg := &messaging.Message{
		Token: student.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	response, err := utils.FCMClient.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("SendStudentPush: failed to send FCM message: %w", err)
	}

	utils.GetLogger().Debug("SendStudentPush: message sent",
		zap.String("studentId", studentID),
		zap.String("response", response))
	return nil
}
