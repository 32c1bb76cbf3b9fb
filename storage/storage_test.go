package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/andrewpaige1/wisdom-compass-api/models"
	"github.com/andrewpaige1/wisdom-compass-api/testdb"
)

type fixture struct {
	db           *gorm.DB
	store        *DatabaseStorage
	characters   []models.Character
	philosophies []models.Philosophy
	quotes       []models.Quote
}

func ptr[T any](v T) *T { return &v }

// newFixture builds a small catalog:
//
//	characters: Seneca, Laozi, Nobody (no quotes)
//	philosophies: Stoicism, Taoism, Empty (no quotes)
//	quotes: 2 by Seneca/Stoicism, 1 by Laozi/Taoism, 1 anonymous in Taoism
func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testdb.Open(t)

	f := &fixture{db: db, store: New(db)}
	f.characters = []models.Character{
		{Name: "Seneca", Description: "Stoic", Category: "philosophy"},
		{Name: "Laozi", Description: "Sage", Category: "spirituality"},
		{Name: "Nobody", Description: "Silent", Category: "none"},
	}
	require.NoError(t, db.Create(&f.characters).Error)

	f.philosophies = []models.Philosophy{
		{Name: "Stoicism", Description: "Virtue"},
		{Name: "Taoism", Description: "The Way"},
		{Name: "Empty", Description: "Nothing"},
	}
	require.NoError(t, db.Create(&f.philosophies).Error)

	seneca, laozi := f.characters[0].ID, f.characters[1].ID
	stoic, tao := f.philosophies[0].ID, f.philosophies[1].ID
	f.quotes = []models.Quote{
		{Text: "Luck is what happens when preparation meets opportunity.", Author: "Seneca", CharacterID: &seneca, PhilosophyID: &stoic, Category: ptr("preparation")},
		{Text: "We suffer more often in imagination than in reality.", Author: "Seneca", CharacterID: &seneca, PhilosophyID: &stoic, Category: ptr("suffering")},
		{Text: "A journey of a thousand miles begins with a single step.", Author: "Laozi", CharacterID: &laozi, PhilosophyID: &tao, Category: ptr("journey")},
		{Text: "Nature does not hurry, yet everything is accomplished.", Author: "Unknown", PhilosophyID: &tao},
	}
	require.NoError(t, db.Create(&f.quotes).Error)
	return f
}

func (f *fixture) user(t *testing.T, id string) *models.User {
	t.Helper()
	u, err := f.store.UpsertUser(context.Background(), models.User{ID: id, Email: ptr(id + "@example.com")})
	require.NoError(t, err)
	return u
}

func TestUpsertUserKeepsSetupFlag(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := f.user(t, "auth0|alice")
	assert.False(t, u.SetupCompleted)

	require.NoError(t, f.store.CompleteUserSetup(ctx, u.ID))

	updated, err := f.store.UpsertUser(ctx, models.User{ID: u.ID, Email: ptr("new@example.com"), FirstName: "Alice"})
	require.NoError(t, err)
	assert.True(t, updated.SetupCompleted)
	assert.Equal(t, "Alice", updated.FirstName)
	require.NotNil(t, updated.Email)
	assert.Equal(t, "new@example.com", *updated.Email)

	_, err = f.store.GetUser(ctx, "auth0|nobody")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, f.store.CompleteUserSetup(ctx, "auth0|nobody"), ErrNotFound)
}

func TestReplaceUserCharacters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "auth0|bob")

	ids := []uint{f.characters[0].ID, f.characters[1].ID, f.characters[0].ID}
	require.NoError(t, f.store.ReplaceUserCharacters(ctx, u.ID, ids))

	prefs, err := f.store.GetUserPreferences(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{f.characters[0].ID, f.characters[1].ID}, prefs.CharacterIDs)
	assert.Empty(t, prefs.PhilosophyIDs)

	err = f.store.ReplaceUserCharacters(ctx, u.ID, []uint{f.characters[2].ID, 9999})
	assert.ErrorIs(t, err, ErrUnknownCharacter)

	prefs, err = f.store.GetUserPreferences(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, prefs.CharacterIDs, 2, "failed replace must leave the old selection")

	require.NoError(t, f.store.ReplaceUserCharacters(ctx, u.ID, nil))
	prefs, err = f.store.GetUserPreferences(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, prefs.CharacterIDs)
}

func TestReplaceUserPhilosophies(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "auth0|carol")
	other := f.user(t, "auth0|dave")

	require.NoError(t, f.store.ReplaceUserPhilosophies(ctx, u.ID, []uint{f.philosophies[1].ID}))
	require.NoError(t, f.store.ReplaceUserPhilosophies(ctx, other.ID, []uint{f.philosophies[0].ID}))
	assert.ErrorIs(t, f.store.ReplaceUserPhilosophies(ctx, u.ID, []uint{0}), ErrUnknownPhilosophy)

	prefs, err := f.store.GetUserPreferences(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{f.philosophies[1].ID}, prefs.PhilosophyIDs)

	prefs, err = f.store.GetUserPreferences(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{f.philosophies[0].ID}, prefs.PhilosophyIDs)
}

func TestGetDailyQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("no preferences returns first quote", func(t *testing.T) {
		f := newFixture(t)
		u := f.user(t, "auth0|none")

		dq, err := f.store.GetDailyQuote(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, f.quotes[0].ID, dq.Quote.ID)
		assert.Equal(t, SourceFallback, dq.Source)
	})

	t.Run("characters take priority over philosophies", func(t *testing.T) {
		f := newFixture(t)
		u := f.user(t, "auth0|laozi-fan")
		require.NoError(t, f.store.ReplaceUserCharacters(ctx, u.ID, []uint{f.characters[1].ID}))
		require.NoError(t, f.store.ReplaceUserPhilosophies(ctx, u.ID, []uint{f.philosophies[0].ID}))

		for i := 0; i < 10; i++ {
			dq, err := f.store.GetDailyQuote(ctx, u.ID)
			require.NoError(t, err)
			assert.Equal(t, f.quotes[2].ID, dq.Quote.ID)
			assert.Equal(t, SourcePreference, dq.Source)
		}
	})

	t.Run("philosophies used when no characters", func(t *testing.T) {
		f := newFixture(t)
		u := f.user(t, "auth0|taoist")
		require.NoError(t, f.store.ReplaceUserPhilosophies(ctx, u.ID, []uint{f.philosophies[1].ID}))

		for i := 0; i < 10; i++ {
			dq, err := f.store.GetDailyQuote(ctx, u.ID)
			require.NoError(t, err)
			require.NotNil(t, dq.Quote.PhilosophyID)
			assert.Equal(t, f.philosophies[1].ID, *dq.Quote.PhilosophyID)
			assert.Equal(t, SourcePreference, dq.Source)
		}
	})

	t.Run("unmatched selection falls back to any quote", func(t *testing.T) {
		f := newFixture(t)
		u := f.user(t, "auth0|quiet")
		require.NoError(t, f.store.ReplaceUserCharacters(ctx, u.ID, []uint{f.characters[2].ID}))

		dq, err := f.store.GetDailyQuote(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, SourceFallback, dq.Source)
		assert.NotZero(t, dq.Quote.ID)
	})

	t.Run("empty catalog", func(t *testing.T) {
		store := New(testdb.Open(t))
		_, err := store.GetDailyQuote(ctx, "auth0|anyone")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestGetAllQuotesOrdering(t *testing.T) {
	f := newFixture(t)
	quotes, err := f.store.GetAllQuotes(context.Background())
	require.NoError(t, err)
	require.Len(t, quotes, 4)

	assert.Equal(t, "Laozi", quotes[0].Author)
	assert.Equal(t, "Seneca", quotes[1].Author)
	assert.Equal(t, f.quotes[0].ID, quotes[1].ID, "same author sorts by text")
	assert.Equal(t, "Unknown", quotes[3].Author)
}

func TestPinQuote(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "auth0|pinner")
	q := f.quotes[2]

	reminder, err := f.store.PinQuote(ctx, u.ID, q.ID)
	require.NoError(t, err)
	assert.Equal(t, "Daily Inspiration", reminder.Title)
	assert.Equal(t, `"A journey of a thousand miles begins with a single step." — Laozi`, reminder.Content)
	assert.Equal(t, models.FrequencyDaily, reminder.Frequency)
	assert.Equal(t, "09:00", reminder.Time)
	assert.Equal(t, models.ReminderQuote, reminder.Type)
	assert.True(t, reminder.IsActive)
	require.NotNil(t, reminder.ReferenceID)
	assert.Equal(t, q.ID, *reminder.ReferenceID)

	_, err = f.store.PinQuote(ctx, u.ID, q.ID)
	assert.ErrorIs(t, err, ErrAlreadyPinned)

	_, err = f.store.PinQuote(ctx, u.ID, 424242)
	assert.ErrorIs(t, err, ErrNotFound)

	reminders, err := f.store.GetReminders(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, reminders, 1, "failed pins must not create reminders")

	other := f.user(t, "auth0|other")
	_, err = f.store.PinQuote(ctx, other.ID, q.ID)
	assert.NoError(t, err, "pins are per user")
}

func TestGetQuoteSuggestions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		text string
		want []uint
	}{
		{name: "matches text", text: "journey of mine", want: []uint{f.quotes[2].ID}},
		{name: "matches category", text: "SUFFERING again", want: []uint{f.quotes[1].ID}},
		{name: "short words only", text: "a to be or", want: []uint{f.quotes[0].ID, f.quotes[1].ID, f.quotes[2].ID}},
		{name: "only first keyword counts", text: "hurry despite journey", want: []uint{f.quotes[3].ID}},
		{name: "wildcards are literal", text: "100%_done", want: []uint{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			quotes, err := f.store.GetQuoteSuggestions(ctx, "auth0|x", tc.text)
			require.NoError(t, err)
			got := make([]uint, 0, len(quotes))
			for _, q := range quotes {
				got = append(got, q.ID)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGetQuoteSuggestionsFoldsNonASCII(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	accented := models.Quote{Text: "Éclat fades, character endures.", Author: "Unknown", Category: ptr("Élan")}
	require.NoError(t, f.db.Create(&accented).Error)

	for _, text := range []string{"éclat", "ÉCLAT", "élan"} {
		quotes, err := f.store.GetQuoteSuggestions(ctx, "auth0|x", text)
		require.NoError(t, err)
		require.Len(t, quotes, 1, text)
		assert.Equal(t, accented.ID, quotes[0].ID)
	}
}

func TestKeywords(t *testing.T) {
	assert.Equal(t, []string{"hello", "world"}, Keywords("Hello  big WORLD"))
	assert.Nil(t, Keywords("a bb ccc"))
	assert.Equal(t, []string{"éclat"}, Keywords("éclat"))
	assert.Equal(t, []string{"imagination", "runs"}, Keywords("my imagination, runs..."))
	assert.Equal(t, []string{"100%_done"}, Keywords("100%_done"))
}

func TestJournalEntries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "auth0|writer")
	other := f.user(t, "auth0|reader")

	first := &models.JournalEntry{UserID: u.ID, Text: "first"}
	require.NoError(t, f.store.CreateJournalEntry(ctx, first))
	second := &models.JournalEntry{UserID: u.ID, Text: "second", QuoteID: &f.quotes[0].ID}
	require.NoError(t, f.store.CreateJournalEntry(ctx, second))
	require.NoError(t, f.store.CreateJournalEntry(ctx, &models.JournalEntry{UserID: other.ID, Text: "not yours"}))

	err := f.store.CreateJournalEntry(ctx, &models.JournalEntry{UserID: u.ID, Text: "bad", QuoteID: ptr(uint(777))})
	assert.ErrorIs(t, err, ErrUnknownQuote)

	entries, err := f.store.GetJournalEntries(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0].Text)
	assert.Equal(t, "first", entries[1].Text)

	pinned, err := f.store.ToggleJournalPin(ctx, u.ID, first.ID)
	require.NoError(t, err)
	assert.True(t, pinned.IsPinned)

	_, err = f.store.ToggleJournalPin(ctx, other.ID, first.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReminders(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "auth0|planner")
	other := f.user(t, "auth0|intruder")

	goal := &models.Reminder{
		UserID:    u.ID,
		Title:     "Meditate",
		Content:   "Ten minutes",
		Frequency: models.FrequencyWeekly,
		Time:      "07:30",
		Type:      models.ReminderGoal,
	}
	require.NoError(t, f.store.CreateReminder(ctx, goal))
	assert.True(t, goal.IsActive)

	toggled, err := f.store.ToggleReminder(ctx, u.ID, goal.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	toggled, err = f.store.ToggleReminder(ctx, u.ID, goal.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsActive)

	_, err = f.store.ToggleReminder(ctx, other.ID, goal.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	reminders, err := f.store.GetReminders(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, reminders)
}

func TestSessions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "auth0|sessions")

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := f.store.WithClock(func() time.Time { return now })

	live := &models.Session{SID: "live", UserID: u.ID, Expire: now.Add(time.Hour)}
	dead := &models.Session{SID: "dead", UserID: u.ID, Expire: now.Add(-time.Hour)}
	require.NoError(t, store.CreateSession(ctx, live))
	require.NoError(t, store.CreateSession(ctx, dead))

	got, err := store.GetSession(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.UserID)

	_, err = store.GetSession(ctx, "dead")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.SetSessionDailyQuote(ctx, "live", f.quotes[1].ID, "2026-03-01"))
	got, err = store.GetSession(ctx, "live")
	require.NoError(t, err)
	require.NotNil(t, got.DailyQuoteID)
	assert.Equal(t, f.quotes[1].ID, *got.DailyQuoteID)
	assert.Equal(t, "2026-03-01", got.DailyQuoteDate)
	assert.ErrorIs(t, store.SetSessionDailyQuote(ctx, "missing", 1, "2026-03-01"), ErrNotFound)

	n, err := store.DeleteExpiredSessions(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	require.NoError(t, store.DeleteSession(ctx, "live"))
	_, err = store.GetSession(ctx, "live")
	assert.ErrorIs(t, err, ErrNotFound)
}
