package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/andrewpaige1/wisdom-compass-api/models"
)

const (
	suggestionLimit  = 3
	minKeywordLength = 4
	pinReminderTitle = "Daily Inspiration"
	pinReminderTime  = "09:00"
	randomOrder      = "RANDOM()"
)

// GetDailyQuote picks a quote for the user. Selected characters win over
// selected philosophies; with no selection the first catalog quote is used,
// and a selection that matches nothing falls back to a random quote.
func (s *DatabaseStorage) GetDailyQuote(ctx context.Context, userID string) (*DailyQuote, error) {
	prefs, err := s.GetUserPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)
	var quote models.Quote

	if len(prefs.CharacterIDs) == 0 && len(prefs.PhilosophyIDs) == 0 {
		if err := db.Order("id").First(&quote).Error; err != nil {
			return nil, fmt.Errorf("daily quote for %s: %w", userID, notFound(err))
		}
		return &DailyQuote{Quote: quote, Source: SourceFallback}, nil
	}

	query := db.Model(&models.Quote{})
	if len(prefs.CharacterIDs) > 0 {
		query = query.Where("character_id IN ?", prefs.CharacterIDs)
	} else {
		query = query.Where("philosophy_id IN ?", prefs.PhilosophyIDs)
	}

	err = query.Order(randomOrder).Take(&quote).Error
	if err == nil {
		return &DailyQuote{Quote: quote, Source: SourcePreference}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("daily quote for %s: %w", userID, err)
	}

	if err := db.Order(randomOrder).Take(&quote).Error; err != nil {
		return nil, fmt.Errorf("daily quote for %s: %w", userID, notFound(err))
	}
	return &DailyQuote{Quote: quote, Source: SourceFallback}, nil
}

func (s *DatabaseStorage) GetQuote(ctx context.Context, id uint) (*models.Quote, error) {
	var quote models.Quote
	if err := s.db.WithContext(ctx).First(&quote, id).Error; err != nil {
		return nil, fmt.Errorf("get quote %d: %w", id, notFound(err))
	}
	return &quote, nil
}

func (s *DatabaseStorage) GetAllQuotes(ctx context.Context) ([]models.Quote, error) {
	quotes := []models.Quote{}
	if err := s.db.WithContext(ctx).Order("author").Order("quotes.text").Find(&quotes).Error; err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	return quotes, nil
}

// PinQuote pins the quote for the user and schedules a daily reminder for it
// in the same transaction.
func (s *DatabaseStorage) PinQuote(ctx context.Context, userID string, quoteID uint) (*models.Reminder, error) {
	var reminder models.Reminder
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var quote models.Quote
		if err := tx.First(&quote, quoteID).Error; err != nil {
			return notFound(err)
		}

		var existing int64
		if err := tx.Model(&models.PinnedQuote{}).
			Where("user_id = ? AND quote_id = ?", userID, quoteID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrAlreadyPinned
		}

		pin := models.PinnedQuote{UserID: userID, QuoteID: quoteID}
		if err := tx.Create(&pin).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyPinned
			}
			return err
		}

		ref := quote.ID
		reminder = models.Reminder{
			UserID:      userID,
			Title:       pinReminderTitle,
			Content:     fmt.Sprintf("\"%s\" — %s", quote.Text, quote.Author),
			Frequency:   models.FrequencyDaily,
			Time:        pinReminderTime,
			Type:        models.ReminderQuote,
			ReferenceID: &ref,
			IsActive:    true,
		}
		return tx.Create(&reminder).Error
	})
	if err != nil {
		return nil, fmt.Errorf("pin quote %d for %s: %w", quoteID, userID, err)
	}
	return &reminder, nil
}

// GetQuoteSuggestions matches the first keyword of text (a word longer than
// three characters) against quote text and category. Case is folded in Go so
// every dialect matches non-ASCII text the same way.
func (s *DatabaseStorage) GetQuoteSuggestions(ctx context.Context, userID, text string) ([]models.Quote, error) {
	db := s.db.WithContext(ctx).Order("id")

	keywords := Keywords(text)
	if len(keywords) == 0 {
		quotes := []models.Quote{}
		if err := db.Limit(suggestionLimit).Find(&quotes).Error; err != nil {
			return nil, fmt.Errorf("quote suggestions for %s: %w", userID, err)
		}
		return quotes, nil
	}

	var candidates []models.Quote
	if err := db.Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("quote suggestions for %s: %w", userID, err)
	}

	quotes := []models.Quote{}
	for _, q := range candidates {
		if matchesKeyword(q, keywords[0]) {
			quotes = append(quotes, q)
			if len(quotes) == suggestionLimit {
				break
			}
		}
	}
	return quotes, nil
}

func matchesKeyword(q models.Quote, keyword string) bool {
	if strings.Contains(strings.ToLower(q.Text), keyword) {
		return true
	}
	return q.Category != nil && strings.Contains(strings.ToLower(*q.Category), keyword)
}

// Keywords lower-cases text and keeps the whitespace-separated words longer
// than three characters, in order. Punctuation at either end of a word is
// dropped.
func Keywords(text string) []string {
	var keywords []string
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.TrimFunc(word, unicode.IsPunct)
		if utf8.RuneCountInString(word) >= minKeywordLength {
			keywords = append(keywords, word)
		}
	}
	return keywords
}
