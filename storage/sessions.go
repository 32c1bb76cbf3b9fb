package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/andrewpaige1/wisdom-compass-api/models"
)

func (s *DatabaseStorage) CreateSession(ctx context.Context, session *models.Session) error {
	session.Expire = session.Expire.UTC()
	if err := s.db.WithContext(ctx).Create(session).Error; err != nil {
		return fmt.Errorf("create session for %s: %w", session.UserID, err)
	}
	return nil
}

// GetSession returns a live session. Expired rows read as ErrNotFound even
// before the sweeper removes them.
func (s *DatabaseStorage) GetSession(ctx context.Context, sid string) (*models.Session, error) {
	var session models.Session
	err := s.db.WithContext(ctx).
		Where("sid = ? AND expire > ?", sid, s.now().UTC()).
		First(&session).Error
	if err != nil {
		return nil, fmt.Errorf("session: %w", notFound(err))
	}
	return &session, nil
}

func (s *DatabaseStorage) DeleteSession(ctx context.Context, sid string) error {
	if err := s.db.WithContext(ctx).Where("sid = ?", sid).Delete(&models.Session{}).Error; err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *DatabaseStorage) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Where("expire <= ?", now.UTC()).Delete(&models.Session{})
	if result.Error != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// SetSessionDailyQuote remembers the quote shown to a session on day (YYYY-MM-DD).
func (s *DatabaseStorage) SetSessionDailyQuote(ctx context.Context, sid string, quoteID uint, day string) error {
	result := s.db.WithContext(ctx).Model(&models.Session{}).
		Where("sid = ?", sid).
		Updates(map[string]interface{}{
			"daily_quote_id":   quoteID,
			"daily_quote_date": day,
		})
	if result.Error != nil {
		return fmt.Errorf("set session daily quote: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("set session daily quote: %w", ErrNotFound)
	}
	return nil
}
