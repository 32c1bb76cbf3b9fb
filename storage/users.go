package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"

	"github.com/andrewpaige1/wisdom-compass-api/models"
)

func (s *DatabaseStorage) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, notFound(err))
	}
	return &user, nil
}

// UpsertUser inserts the user or refreshes its profile fields. The setup flag
// is left as stored.
func (s *DatabaseStorage) UpsertUser(ctx context.Context, user models.User) (*models.User, error) {
	user.UpdatedAt = s.now().UTC()
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "first_name", "last_name", "profile_image_url", "updated_at",
		}),
	}).Create(&user).Error
	if err != nil {
		return nil, fmt.Errorf("upsert user %s: %w", user.ID, err)
	}
	return s.GetUser(ctx, user.ID)
}

func (s *DatabaseStorage) CompleteUserSetup(ctx context.Context, userID string) error {
	result := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"setup_completed": true,
			"updated_at":      s.now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("complete setup for %s: %w", userID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("complete setup for %s: %w", userID, ErrNotFound)
	}
	return nil
}
