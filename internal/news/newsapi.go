// Package news ingests financial headlines from NewsAPI into the articles
// table. Items are deduplicated on (type, title, source) so repeated refreshes
// are idempotent.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/models"
)

const (
	query       = "finance OR financial OR economy OR stock market OR investing OR cryptocurrency"
	pageSize    = 10
	maxContent  = 10000
	maxTitle    = 300
	maxSummary  = 500
	maxAuthor   = 200
	maxSource   = 200
	maxImageURL = 500
)

type Client struct {
	cfg  *config.Config
	log  *logrus.Logger
	http *http.Client
}

func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{cfg: cfg, log: log, http: &http.Client{}}
}

// Item is one article from the NewsAPI /everything response.
type Item struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Author      string `json:"author"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
}

// Fetch pulls the latest financial headlines.
func (c *Client) Fetch(ctx context.Context) ([]Item, error) {
	if c.cfg.NewsAPIKey == "" {
		return nil, fmt.Errorf("NEWS_API_KEY missing")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", fmt.Sprintf("%d", pageSize))
	params.Set("apiKey", c.cfg.NewsAPIKey)

	req, _ := http.NewRequestWithContext(ctx, "GET", c.cfg.NewsAPIBaseURL+"/everything?"+params.Encode(), nil)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("newsapi error: %s", string(b))
	}

	var out struct {
		Status   string `json:"status"`
		Articles []Item `json:"articles"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if out.Status != "ok" {
		return nil, fmt.Errorf("newsapi status %q", out.Status)
	}
	return out.Articles, nil
}

// Refresh fetches headlines and stores new ones as news articles. Returns the
// number of articles created.
func (c *Client) Refresh(ctx context.Context) (int, error) {
	items, err := c.Fetch(ctx)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, item := range items {
		if item.Title == "" || item.Description == "" {
			continue
		}
		article := ToArticle(item)

		var count int64
		err := database.DB.Model(&models.Article{}).
			Where("type = ? AND title = ? AND source = ?", models.ArticleTypeNews, article.Title, article.Source).
			Count(&count).Error
		if err != nil {
			return created, err
		}
		if count > 0 {
			continue
		}
		if err := database.DB.Create(&article).Error; err != nil {
			return created, err
		}
		created++
	}
	if created > 0 {
		c.log.WithField("created", created).Info("ingested news articles")
	}
	return created, nil
}

// ToArticle maps a NewsAPI item onto an Article row, truncating oversized
// fields to the column limits.
func ToArticle(item Item) models.Article {
	content := item.Content
	if content == "" {
		content = item.Description
	}
	if len(content) > maxContent {
		content = truncate(content, maxContent) + "..."
	}
	author := truncate(item.Author, maxAuthor)
	if author == "" {
		author = "News Source"
	}
	return models.Article{
		Type:     models.ArticleTypeNews,
		Title:    truncate(item.Title, maxTitle),
		Summary:  truncate(item.Description, maxSummary),
		Content:  content,
		Author:   author,
		Source:   truncate(item.URL, maxSource),
		ImageURL: truncate(item.URLToImage, maxImageURL),
		Category: "News",
	}
}

// truncate cuts s to at most n bytes without splitting a multi-byte rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
