package models

import (
	"time"
)

// ArticleType distinguishes user-submitted articles from externally
// ingested news items.
type ArticleType string

const (
	ArticleTypeArticle ArticleType = "article"
	ArticleTypeNews    ArticleType = "news"
)

type Article struct {
	ID     uint        `gorm:"primaryKey" json:"id"`
	UserID *uint       `json:"user_id,omitempty"` // nil for news items
	User   *User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Type   ArticleType `gorm:"size:20;default:article;index" json:"type"`

	Title      string `gorm:"size:300" json:"title"`
	Content    string `json:"content"`
	Summary    string `gorm:"size:500" json:"summary"`
	Category   string `gorm:"size:100;index" json:"category"` // free text, e.g. "Savings", "Investing"
	Source     string `gorm:"size:200" json:"source"`
	Author     string `gorm:"size:200" json:"author"`
	ImageURL   string `gorm:"size:500" json:"image_url"`
	IsFeatured bool   `gorm:"default:false;index" json:"is_featured"`
	ViewCount  int    `gorm:"default:0" json:"view_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
