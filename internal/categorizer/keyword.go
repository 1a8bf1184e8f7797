// Package categorizer assigns categories to transactions whose source
// file carries no explicit category column, using keyword matching
// against the built-in taxonomy.
package categorizer

import (
	"strings"

	"github.com/birosrichard/simple-expense-analyzer/internal/models"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// InferCategory maps a free-text transaction description to a built-in
// category. The description is lower-cased and tested against the
// taxonomy's keyword lists in fixed priority order; the first matching
// rule wins. No match falls back to CategoryOther.
func InferCategory(description string) string {
	text := strings.ToLower(description)
	if strings.TrimSpace(text) == "" {
		return models.CategoryOther
	}

	for _, def := range models.Categories {
		for _, keyword := range def.Keywords {
			if strings.Contains(text, keyword) {
				log.WithFields(logrus.Fields{
					"keyword":  keyword,
					"category": def.Name,
				}).Debug("Description matched keyword rule")
				return def.Name
			}
		}
	}

	return models.CategoryOther
}
