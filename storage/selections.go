package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrewpaige1/wisdom-compass-api/models"
)

func (s *DatabaseStorage) GetCharacters(ctx context.Context) ([]models.Character, error) {
	characters := []models.Character{}
	if err := s.db.WithContext(ctx).Order("id").Find(&characters).Error; err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	return characters, nil
}

func (s *DatabaseStorage) AddUserCharacter(ctx context.Context, userID string, characterID uint) error {
	link := models.UserCharacter{UserID: userID, CharacterID: characterID}
	if err := s.db.WithContext(ctx).Create(&link).Error; err != nil {
		return fmt.Errorf("add character %d for %s: %w", characterID, userID, err)
	}
	return nil
}

func (s *DatabaseStorage) ClearUserCharacters(ctx context.Context, userID string) error {
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.UserCharacter{}).Error; err != nil {
		return fmt.Errorf("clear characters for %s: %w", userID, err)
	}
	return nil
}

// ReplaceUserCharacters swaps the user's whole character selection atomically.
// Unknown ids abort the swap with ErrUnknownCharacter.
func (s *DatabaseStorage) ReplaceUserCharacters(ctx context.Context, userID string, characterIDs []uint) error {
	ids := uniqueIDs(characterIDs)
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(ids) > 0 {
			var count int64
			if err := tx.Model(&models.Character{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
				return fmt.Errorf("check characters: %w", err)
			}
			if count != int64(len(ids)) {
				return ErrUnknownCharacter
			}
		}

		txs := s.withTx(tx)
		if err := txs.ClearUserCharacters(ctx, userID); err != nil {
			return err
		}
		for _, id := range ids {
			if err := txs.AddUserCharacter(ctx, userID, id); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *DatabaseStorage) GetPhilosophies(ctx context.Context) ([]models.Philosophy, error) {
	philosophies := []models.Philosophy{}
	if err := s.db.WithContext(ctx).Order("id").Find(&philosophies).Error; err != nil {
		return nil, fmt.Errorf("list philosophies: %w", err)
	}
	return philosophies, nil
}

func (s *DatabaseStorage) AddUserPhilosophy(ctx context.Context, userID string, philosophyID uint) error {
	link := models.UserPhilosophy{UserID: userID, PhilosophyID: philosophyID}
	if err := s.db.WithContext(ctx).Create(&link).Error; err != nil {
		return fmt.Errorf("add philosophy %d for %s: %w", philosophyID, userID, err)
	}
	return nil
}

func (s *DatabaseStorage) ClearUserPhilosophies(ctx context.Context, userID string) error {
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.UserPhilosophy{}).Error; err != nil {
		return fmt.Errorf("clear philosophies for %s: %w", userID, err)
	}
	return nil
}

func (s *DatabaseStorage) ReplaceUserPhilosophies(ctx context.Context, userID string, philosophyIDs []uint) error {
	ids := uniqueIDs(philosophyIDs)
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(ids) > 0 {
			var count int64
			if err := tx.Model(&models.Philosophy{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
				return fmt.Errorf("check philosophies: %w", err)
			}
			if count != int64(len(ids)) {
				return ErrUnknownPhilosophy
			}
		}

		txs := s.withTx(tx)
		if err := txs.ClearUserPhilosophies(ctx, userID); err != nil {
			return err
		}
		for _, id := range ids {
			if err := txs.AddUserPhilosophy(ctx, userID, id); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *DatabaseStorage) GetUserPreferences(ctx context.Context, userID string) (*Preferences, error) {
	prefs := &Preferences{CharacterIDs: []uint{}, PhilosophyIDs: []uint{}}
	db := s.db.WithContext(ctx)

	if err := db.Model(&models.UserCharacter{}).
		Where("user_id = ?", userID).
		Order("id").
		Pluck("character_id", &prefs.CharacterIDs).Error; err != nil {
		return nil, fmt.Errorf("load character preferences for %s: %w", userID, err)
	}
	if err := db.Model(&models.UserPhilosophy{}).
		Where("user_id = ?", userID).
		Order("id").
		Pluck("philosophy_id", &prefs.PhilosophyIDs).Error; err != nil {
		return nil, fmt.Errorf("load philosophy preferences for %s: %w", userID, err)
	}
	return prefs, nil
}
