package storage

import (
	"context"
	"fmt"

	"github.com/andrewpaige1/wisdom-compass-api/models"
)

func (s *DatabaseStorage) GetReminders(ctx context.Context, userID string) ([]models.Reminder, error) {
	reminders := []models.Reminder{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&reminders).Error
	if err != nil {
		return nil, fmt.Errorf("list reminders for %s: %w", userID, err)
	}
	return reminders, nil
}

// CreateReminder stores a new, active reminder.
func (s *DatabaseStorage) CreateReminder(ctx context.Context, reminder *models.Reminder) error {
	reminder.ID = 0
	reminder.IsActive = true
	if err := s.db.WithContext(ctx).Create(reminder).Error; err != nil {
		return fmt.Errorf("create reminder for %s: %w", reminder.UserID, err)
	}
	return nil
}

// ToggleReminder flips IsActive on one of the user's reminders.
func (s *DatabaseStorage) ToggleReminder(ctx context.Context, userID string, reminderID uint) (*models.Reminder, error) {
	db := s.db.WithContext(ctx)

	var reminder models.Reminder
	if err := db.Where("id = ? AND user_id = ?", reminderID, userID).First(&reminder).Error; err != nil {
		return nil, fmt.Errorf("reminder %d: %w", reminderID, notFound(err))
	}

	reminder.IsActive = !reminder.IsActive
	if err := db.Model(&reminder).Update("is_active", reminder.IsActive).Error; err != nil {
		return nil, fmt.Errorf("toggle reminder %d: %w", reminderID, err)
	}
	return &reminder, nil
}
