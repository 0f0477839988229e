package content

import (
	"embed"
	"fmt"

	"ashi-remedies/internal/domain"
)

//go:embed seed/*.json
var seedFS embed.FS

// seedFiles maps store keys to the bundled default document.
// The pending queues and guest links have no default and start empty.
var seedFiles = map[string]string{
	domain.KeyRemedies:        "seed/remedies.json",
	domain.KeyQuiz:            "seed/quiz.json",
	domain.KeyIngredients:     "seed/ingredients.json",
	domain.KeyBodyZones:       "seed/body_zones.json",
	domain.KeyApprovedStories: "seed/stories.json",
	domain.KeyExpertArticles:  "seed/articles.json",
	domain.KeySEO:             "seed/seo.json",
	domain.KeyFounder:         "seed/founder.json",
}

// SeedDocument returns the bundled JSON for key, or nil when key has no default.
func SeedDocument(key string) ([]byte, error) {
	name, ok := seedFiles[key]
	if !ok {
		return nil, nil
	}
	data, err := seedFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", name, err)
	}
	return data, nil
}

// SeedDocuments returns every bundled document keyed by store key.
func SeedDocuments() (map[string][]byte, error) {
	docs := make(map[string][]byte, len(seedFiles))
	for key := range seedFiles {
		data, err := SeedDocument(key)
		if err != nil {
			return nil, err
		}
		docs[key] = data
	}
	return docs, nil
}
