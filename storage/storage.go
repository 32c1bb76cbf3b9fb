// Package storage is the only layer that talks to the database. Every
// user-owned read or write is scoped by the caller's user id.
package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/andrewpaige1/wisdom-compass-api/models"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyPinned     = errors.New("quote is already pinned")
	ErrUnknownCharacter  = errors.New("unknown character")
	ErrUnknownPhilosophy = errors.New("unknown philosophy")
	ErrUnknownQuote      = errors.New("unknown quote")
)

// QuoteSource says which rule picked a daily quote.
type QuoteSource string

const (
	SourcePreference QuoteSource = "preference"
	SourceFallback   QuoteSource = "fallback"
)

// DailyQuote is a selected quote plus the rule that selected it.
type DailyQuote struct {
	Quote  models.Quote
	Source QuoteSource
}

// Preferences are the catalog ids a user has selected.
type Preferences struct {
	CharacterIDs  []uint `json:"selectedCharacterIds"`
	PhilosophyIDs []uint `json:"selectedPhilosophyIds"`
}

type Storage interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpsertUser(ctx context.Context, user models.User) (*models.User, error)
	CompleteUserSetup(ctx context.Context, userID string) error

	GetCharacters(ctx context.Context) ([]models.Character, error)
	AddUserCharacter(ctx context.Context, userID string, characterID uint) error
	ClearUserCharacters(ctx context.Context, userID string) error
	ReplaceUserCharacters(ctx context.Context, userID string, characterIDs []uint) error

	GetPhilosophies(ctx context.Context) ([]models.Philosophy, error)
	AddUserPhilosophy(ctx context.Context, userID string, philosophyID uint) error
	ClearUserPhilosophies(ctx context.Context, userID string) error
	ReplaceUserPhilosophies(ctx context.Context, userID string, philosophyIDs []uint) error

	GetUserPreferences(ctx context.Context, userID string) (*Preferences, error)

	GetDailyQuote(ctx context.Context, userID string) (*DailyQuote, error)
	GetQuote(ctx context.Context, id uint) (*models.Quote, error)
	GetAllQuotes(ctx context.Context) ([]models.Quote, error)
	PinQuote(ctx context.Context, userID string, quoteID uint) (*models.Reminder, error)
	GetQuoteSuggestions(ctx context.Context, userID, text string) ([]models.Quote, error)

	GetJournalEntries(ctx context.Context, userID string) ([]models.JournalEntry, error)
	CreateJournalEntry(ctx context.Context, entry *models.JournalEntry) error
	ToggleJournalPin(ctx context.Context, userID string, entryID uint) (*models.JournalEntry, error)

	GetReminders(ctx context.Context, userID string) ([]models.Reminder, error)
	CreateReminder(ctx context.Context, reminder *models.Reminder) error
	ToggleReminder(ctx context.Context, userID string, reminderID uint) (*models.Reminder, error)

	CreateSession(ctx context.Context, session *models.Session) error
	GetSession(ctx context.Context, sid string) (*models.Session, error)
	DeleteSession(ctx context.Context, sid string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
	SetSessionDailyQuote(ctx context.Context, sid string, quoteID uint, day string) error
}

// DatabaseStorage implements Storage on gorm.
type DatabaseStorage struct {
	db  *gorm.DB
	now func() time.Time
}

var _ Storage = (*DatabaseStorage)(nil)

func New(db *gorm.DB) *DatabaseStorage {
	return &DatabaseStorage{db: db, now: time.Now}
}

// WithClock replaces the time source used for session expiry checks.
func (s *DatabaseStorage) WithClock(now func() time.Time) *DatabaseStorage {
	return &DatabaseStorage{db: s.db, now: now}
}

func (s *DatabaseStorage) withTx(tx *gorm.DB) *DatabaseStorage {
	return &DatabaseStorage{db: tx, now: s.now}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
