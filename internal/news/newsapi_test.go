package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/config"
	"fintrack/internal/models"
)

func TestToArticle(t *testing.T) {
	item := Item{
		Title:       "Markets rally on rate cut hopes",
		Description: "Stocks climbed on Tuesday.",
		Content:     "Stocks climbed on Tuesday as investors bet on cuts.",
		Author:      "Jane Reporter",
		URL:         "https://example.com/markets-rally",
		URLToImage:  "https://example.com/img.jpg",
	}

	a := ToArticle(item)

	assert.Equal(t, models.ArticleTypeNews, a.Type)
	assert.Equal(t, item.Title, a.Title)
	assert.Equal(t, item.Description, a.Summary)
	assert.Equal(t, item.Content, a.Content)
	assert.Equal(t, "https://example.com/markets-rally", a.Source)
	assert.Equal(t, "News", a.Category)
	assert.Nil(t, a.UserID, "news items have no owner")
}

func TestToArticleDefaultsAndTruncation(t *testing.T) {
	item := Item{
		Title:       strings.Repeat("t", 400),
		Description: "desc",
		Content:     strings.Repeat("c", 12000),
	}

	a := ToArticle(item)

	assert.Len(t, a.Title, 300)
	assert.Equal(t, "News Source", a.Author, "missing author falls back")
	assert.Len(t, a.Content, 10003, "content truncated with ellipsis")
}

func TestToArticleTruncatesOnRuneBoundary(t *testing.T) {
	// 1 ASCII byte then 3-byte runes: no rune boundary falls on the limits.
	item := Item{
		Title:       "a" + strings.Repeat("€", 200),
		Description: strings.Repeat("€", 200),
		Content:     "ab" + strings.Repeat("€", 4000),
	}

	a := ToArticle(item)

	assert.True(t, utf8.ValidString(a.Title))
	assert.True(t, utf8.ValidString(a.Summary))
	assert.True(t, utf8.ValidString(a.Content))
	assert.LessOrEqual(t, len(a.Title), 300)
	assert.LessOrEqual(t, len(a.Summary), 500)
}

func TestToArticleUsesDescriptionWhenContentMissing(t *testing.T) {
	a := ToArticle(Item{Title: "x", Description: "only a description"})

	assert.Equal(t, "only a description", a.Content)
}

func TestFetchDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/everything", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","articles":[{"title":"A","description":"B","url":"https://x"}]}`))
	}))
	defer srv.Close()

	c := NewClient(&config.Config{NewsAPIKey: "test-key", NewsAPIBaseURL: srv.URL}, logrus.New())
	items, err := c.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "A", items[0].Title)
}

func TestFetchRequiresKey(t *testing.T) {
	c := NewClient(&config.Config{}, logrus.New())

	_, err := c.Fetch(context.Background())

	assert.Error(t, err)
}

func TestFetchRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","articles":[]}`))
	}))
	defer srv.Close()

	c := NewClient(&config.Config{NewsAPIKey: "k", NewsAPIBaseURL: srv.URL}, logrus.New())
	_, err := c.Fetch(context.Background())

	assert.Error(t, err)
}
