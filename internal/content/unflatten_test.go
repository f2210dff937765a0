package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guidedbycompassion/website/internal/content"
)

func TestUnflatten(t *testing.T) {
	t.Parallel()

	t.Run("nests dotted keys", func(t *testing.T) {
		t.Parallel()

		doc := content.Unflatten(map[string]any{
			"hero.title":          "Providing Reliable Care",
			"hero.titleHighlight": "for Your Peace of Mind",
			"mission.title":       "Our Mission",
			"flat":                "value",
		})

		hero := doc["hero"].(map[string]any)
		assert.Equal(t, "Providing Reliable Care", hero["title"])
		assert.Equal(t, "for Your Peace of Mind", hero["titleHighlight"])
		assert.Equal(t, "Our Mission", doc["mission"].(map[string]any)["title"])
		assert.Equal(t, "value", doc["flat"])
	})

	t.Run("parses json leaves", func(t *testing.T) {
		t.Parallel()

		doc := content.Unflatten(map[string]any{
			"hero.stats": `[{"number":"300+","label":"Families Served"}]`,
			"images":     `{"hero":{"main":"/assets/pic.jpg"}}`,
		})

		stats := doc["hero"].(map[string]any)["stats"].([]any)
		assert.Len(t, stats, 1)
		assert.Equal(t, "300+", stats[0].(map[string]any)["number"])

		images := doc["images"].(map[string]any)
		assert.Equal(t, "/assets/pic.jpg", images["hero"].(map[string]any)["main"])
	})

	t.Run("keeps malformed json as raw string", func(t *testing.T) {
		t.Parallel()

		doc := content.Unflatten(map[string]any{
			"broken": `[{"unterminated": `,
		})
		assert.Equal(t, `[{"unterminated": `, doc["broken"])
	})

	t.Run("drops store metadata", func(t *testing.T) {
		t.Parallel()

		doc := content.Unflatten(map[string]any{
			"id":          "about",
			"lastUpdated": "2025-01-01T00:00:00Z",
			"hero.title":  "About",
		})
		assert.NotContains(t, doc, "id")
		assert.NotContains(t, doc, "lastUpdated")
		assert.Contains(t, doc, "hero")
	})

	t.Run("non-string leaves pass through", func(t *testing.T) {
		t.Parallel()

		doc := content.Unflatten(map[string]any{
			"count":   float64(13),
			"enabled": true,
		})
		assert.Equal(t, float64(13), doc["count"])
		assert.Equal(t, true, doc["enabled"])
	})
}
