// Package seed fills an empty catalog with the default characters,
// philosophies and quotes.
package seed

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/andrewpaige1/wisdom-compass-api/models"
)

// Result reports what Run inserted.
type Result struct {
	Skipped      bool
	Characters   int
	Philosophies int
	Quotes       int
}

// Run seeds the catalog unless any character already exists.
func Run(ctx context.Context, db *gorm.DB, logger *zap.Logger) (Result, error) {
	var existing int64
	if err := db.WithContext(ctx).Model(&models.Character{}).Count(&existing).Error; err != nil {
		return Result{}, fmt.Errorf("check catalog: %w", err)
	}
	if existing > 0 {
		logger.Info("Database already seeded")
		return Result{Skipped: true}, nil
	}

	logger.Info("Seeding database")
	var result Result
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		characters := make([]models.Character, 0, len(defaultCharacters))
		for _, c := range defaultCharacters {
			bio := c.Biography
			characters = append(characters, models.Character{
				Name:        c.Name,
				Description: c.Description,
				Category:    c.Category,
				Biography:   &bio,
			})
		}
		if err := tx.Create(&characters).Error; err != nil {
			return fmt.Errorf("insert characters: %w", err)
		}

		philosophies := make([]models.Philosophy, 0, len(defaultPhilosophies))
		for _, p := range defaultPhilosophies {
			philosophies = append(philosophies, models.Philosophy{Name: p.Name, Description: p.Description})
		}
		if err := tx.Create(&philosophies).Error; err != nil {
			return fmt.Errorf("insert philosophies: %w", err)
		}

		quotes := make([]models.Quote, 0, len(defaultQuotes))
		for _, q := range defaultQuotes {
			category := q.Category
			quotes = append(quotes, models.Quote{
				Text:         q.Text,
				Author:       q.Author,
				Category:     &category,
				CharacterID:  matchCharacter(characters, q.Author),
				PhilosophyID: matchPhilosophy(philosophies, q.Author),
			})
		}
		if err := tx.Create(&quotes).Error; err != nil {
			return fmt.Errorf("insert quotes: %w", err)
		}

		result = Result{
			Characters:   len(characters),
			Philosophies: len(philosophies),
			Quotes:       len(quotes),
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	logger.Info("Database seeded",
		zap.Int("characters", result.Characters),
		zap.Int("philosophies", result.Philosophies),
		zap.Int("quotes", result.Quotes))
	return result, nil
}

// matchCharacter finds the character named author, or whose name contains
// the author's first word.
func matchCharacter(characters []models.Character, author string) *uint {
	first := strings.Fields(author)
	for i := range characters {
		c := &characters[i]
		if c.Name == author || (len(first) > 0 && strings.Contains(c.Name, first[0])) {
			id := c.ID
			return &id
		}
	}
	return nil
}

func matchPhilosophy(philosophies []models.Philosophy, author string) *uint {
	for prefix, name := range authorPhilosophies {
		if !strings.Contains(author, prefix) {
			continue
		}
		for i := range philosophies {
			if philosophies[i].Name == name {
				id := philosophies[i].ID
				return &id
			}
		}
	}
	return nil
}
