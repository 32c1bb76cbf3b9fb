package storage

import (
	"context"
	"fmt"

	"github.com/andrewpaige1/wisdom-compass-api/models"
)

func (s *DatabaseStorage) GetJournalEntries(ctx context.Context, userID string) ([]models.JournalEntry, error) {
	entries := []models.JournalEntry{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list journal entries for %s: %w", userID, err)
	}
	return entries, nil
}

// CreateJournalEntry stores entry. A referenced quote must exist.
func (s *DatabaseStorage) CreateJournalEntry(ctx context.Context, entry *models.JournalEntry) error {
	db := s.db.WithContext(ctx)
	if entry.QuoteID != nil {
		var count int64
		if err := db.Model(&models.Quote{}).Where("id = ?", *entry.QuoteID).Count(&count).Error; err != nil {
			return fmt.Errorf("check quote %d: %w", *entry.QuoteID, err)
		}
		if count == 0 {
			return ErrUnknownQuote
		}
	}

	entry.ID = 0
	entry.IsPinned = false
	if err := db.Create(entry).Error; err != nil {
		return fmt.Errorf("create journal entry for %s: %w", entry.UserID, err)
	}
	return nil
}

func (s *DatabaseStorage) ToggleJournalPin(ctx context.Context, userID string, entryID uint) (*models.JournalEntry, error) {
	db := s.db.WithContext(ctx)

	var entry models.JournalEntry
	if err := db.Where("id = ? AND user_id = ?", entryID, userID).First(&entry).Error; err != nil {
		return nil, fmt.Errorf("journal entry %d: %w", entryID, notFound(err))
	}

	entry.IsPinned = !entry.IsPinned
	if err := db.Model(&entry).Update("is_pinned", entry.IsPinned).Error; err != nil {
		return nil, fmt.Errorf("toggle journal pin %d: %w", entryID, err)
	}
	return &entry, nil
}
