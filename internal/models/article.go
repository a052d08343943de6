package models

import "time"

// Article is a published piece (blog post, handout) kept for reference.
type Article struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"not null"`
	Body      string
	Author    string
	Published time.Time
	Link      string
}

// FAQ is a question answered by an article.
type FAQ struct {
	ID        uint `gorm:"primaryKey"`
	ArticleID uint `gorm:"not null;index"` // FK to Article
	Question  string
	Answers   string
}

// TableName keeps the historical table name; the default naming
// strategy would mangle the initialism.
func (FAQ) TableName() string { return "faq" }
