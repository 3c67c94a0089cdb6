package content

import (
	"os"
	"path/filepath"
	"testing"

	"iot-site-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	store, err := Load("")
	require.NoError(t, err)

	assert.NotEmpty(t, store.Documents())
	assert.NotEmpty(t, store.Products())
	assert.NotEmpty(t, store.Openings())
	require.NotNil(t, store.Script())
}

func TestLoad_OverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	override := `
documents:
  - title: "Custom Datasheet"
    description: "Replaced via override"
    type: "datasheet"
    category: "4G/5G Products"
openings:
  - id: "custom-01"
    title: "Site Reliability Engineer"
    location: "Remote"
`
	require.NoError(t, os.WriteFile(path, []byte(override), 0o644))

	store, err := Load(path)
	require.NoError(t, err)

	// Overridden sections replace the built-ins wholesale.
	docs := store.Documents()
	require.Len(t, docs, 1)
	assert.Equal(t, "Custom Datasheet", docs[0].Title)
	assert.Equal(t, "4G/5G Products", docs[0].Category)

	openings := store.Openings()
	require.Len(t, openings, 1)
	assert.Equal(t, "Site Reliability Engineer", openings[0].Title)

	// Absent sections keep the built-in content.
	assert.NotEmpty(t, store.Products())
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("documents: [unclosed"), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestAccessorsReturnCopies(t *testing.T) {
	store, err := Load("")
	require.NoError(t, err)

	docs := store.Documents()
	original := docs[0].Title
	docs[0].Title = "mutated"

	assert.Equal(t, original, store.Documents()[0].Title)
}

func TestDefaultCatalogConsistency(t *testing.T) {
	store, err := Load("")
	require.NoError(t, err)

	t.Run("documents reference real products", func(t *testing.T) {
		ids := make(map[string]bool)
		for _, p := range store.Products() {
			ids[p.ID] = true
		}
		for _, doc := range store.Documents() {
			for _, pid := range doc.RelatedProducts {
				assert.True(t, ids[pid], "document %q references unknown product %q", doc.Title, pid)
			}
		}
	})

	t.Run("some records are uncategorized", func(t *testing.T) {
		uncategorized := 0
		for _, doc := range store.Documents() {
			if doc.Category == "" {
				uncategorized++
			}
		}
		assert.Greater(t, uncategorized, 0, "catalog should exercise the uncategorized path")
	})

	t.Run("documents carry download metadata", func(t *testing.T) {
		for _, doc := range store.Documents() {
			assert.NotEmpty(t, doc.Title)
			assert.NotEmpty(t, doc.Type)
			assert.NotEmpty(t, doc.DownloadURL, "document %q has no download URL", doc.Title)
		}
	})
}

func TestDefaultScript(t *testing.T) {
	script := defaultChatScript()

	assert.NotEmpty(t, script.WelcomeText)
	assert.Len(t, script.WelcomeOptions, 3)
	assert.NotEmpty(t, script.QuickReplies)
	assert.NotEmpty(t, script.EscalationKeywords)
	assert.True(t, script.EscalationReply.Escalate)
	assert.NotEmpty(t, script.Fallback.Text)
	assert.NotEmpty(t, script.Fallback.Options)

	// The sales quick reply hands off to a human.
	sales, ok := script.QuickReplies[LabelSales]
	require.True(t, ok)
	assert.True(t, sales.Escalate)

	// Links carry a kind the frontend can render.
	for label, reply := range script.QuickReplies {
		for _, link := range reply.Links {
			assert.NotEmpty(t, link.URL, "label %q has a link without URL", label)
			assert.Contains(t, []models.LinkKind{
				models.LinkKindPage, models.LinkKindDocument, models.LinkKindExternal,
			}, link.Kind)
		}
	}
}
