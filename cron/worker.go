package cron

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"tiffin/config"
	"tiffin/models"
	"tiffin/services/notification"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeSlotReminder = "reminder:slot-closing"

// InitReminderWorker runs the async worker in background. It drains the
// slot-closing reminder queue: pushes to students who have not ordered before
// their slot's window ends.
func InitReminderWorker(notifSvc notification.NotificationService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSlotReminder, handleSlotReminderTask(notifSvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

var (
	reminderClient     *asynq.Client
	reminderClientOnce sync.Once
)

func getReminderClient() *asynq.Client {
	reminderClientOnce.Do(func() {
		reminderClient = asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		})
	})
	return reminderClient
}

// EnqueueSlotReminder schedules a reminder push to fire at the given time.
// The underlying client is shared; enqueueing a whole batch reuses one
// connection.
func EnqueueSlotReminder(payload models.SlotReminderPayload, fireAt time.Time) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeSlotReminder, data)
	_, err = getReminderClient().Enqueue(task, asynq.ProcessAt(fireAt))
	return err
}

func handleSlotReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.SlotReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] Invalid payload: %v", err)
			return err
		}

		log.Printf("[ReminderHandler] Slot reminder for student %s (%s %s)", p.StudentID, p.DateID, p.Slot)

		data := map[string]string{
			"kitchenId": p.KitchenID,
			"slot":      p.Slot,
			"dateId":    p.DateID,
		}
		if err := notifSvc.SendStudentPush(ctx, p.StudentID, p.Title, p.Body, data); err != nil {
			log.Printf("[ReminderHandler] Failed to send reminder: %v", err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
