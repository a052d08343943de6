package store

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/matt-wil/primalArtTherapy/internal/models"
)

// ArticleInput carries the writable fields of an article.
type ArticleInput struct {
	Title     string    `json:"title" validate:"required"`
	Body      string    `json:"body"`
	Author    string    `json:"author"`
	Published time.Time `json:"published"`
	Link      string    `json:"link"`
}

// CreateArticle stores a new article and returns its generated id.
func (s *Store) CreateArticle(in ArticleInput) (uint, error) {
	if err := checkInput("article", in); err != nil {
		return 0, err
	}
	article := models.Article{
		Title:     in.Title,
		Body:      in.Body,
		Author:    in.Author,
		Published: in.Published,
		Link:      in.Link,
	}
	if err := s.db.Create(&article).Error; err != nil {
		return 0, writeError("article", err, nil)
	}
	return article.ID, nil
}

// GetArticle loads one article by id.
func (s *Store) GetArticle(id uint) (*models.Article, error) {
	var article models.Article
	if err := getRow(s.db, &article, "article", id); err != nil {
		return nil, err
	}
	return &article, nil
}

// ListArticles returns every article ordered by id.
func (s *Store) ListArticles() ([]models.Article, error) {
	var articles []models.Article
	if err := s.db.Order("id").Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("store: list articles: %w", err)
	}
	return articles, nil
}

// UpdateArticle replaces the writable fields of an existing article.
func (s *Store) UpdateArticle(id uint, in ArticleInput) error {
	if err := checkInput("article", in); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var article models.Article
		if err := getRow(tx, &article, "article", id); err != nil {
			return err
		}
		article.Title = in.Title
		article.Body = in.Body
		article.Author = in.Author
		article.Published = in.Published
		article.Link = in.Link
		if err := tx.Save(&article).Error; err != nil {
			return writeError("article", err, nil)
		}
		return nil
	})
}

// DeleteArticle removes one article unless FAQ entries still reference it.
func (s *Store) DeleteArticle(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		n, err := refCount(tx, &models.FAQ{}, "article_id", id)
		if err != nil {
			return fmt.Errorf("store: delete article: %w", err)
		}
		if n > 0 {
			return &ConstraintViolation{Entity: "article", Value: fmt.Sprint(id), Ref: "faq"}
		}
		return deleteRow(tx, &models.Article{}, "article", id)
	})
}

// FAQInput carries the writable fields of an FAQ entry.
type FAQInput struct {
	ArticleID uint   `json:"article_id" validate:"required"`
	Question  string `json:"question" validate:"required"`
	Answers   string `json:"answers"`
}

// CreateFAQ stores a new FAQ entry and returns its generated id. The article
// must already exist.
func (s *Store) CreateFAQ(in FAQInput) (uint, error) {
	if err := checkInput("faq", in); err != nil {
		return 0, err
	}
	faq := models.FAQ{ArticleID: in.ArticleID, Question: in.Question, Answers: in.Answers}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &models.Article{}, "article", in.ArticleID); err != nil {
			return err
		}
		if err := tx.Create(&faq).Error; err != nil {
			return writeError("faq", err, nil)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return faq.ID, nil
}

// GetFAQ loads one FAQ entry by id.
func (s *Store) GetFAQ(id uint) (*models.FAQ, error) {
	var faq models.FAQ
	if err := getRow(s.db, &faq, "faq", id); err != nil {
		return nil, err
	}
	return &faq, nil
}

// ListFAQs returns FAQ entries ordered by id, scoped to one article when
// articleID is nonzero.
func (s *Store) ListFAQs(articleID uint) ([]models.FAQ, error) {
	q := s.db.Order("id")
	if articleID != 0 {
		q = q.Where("article_id = ?", articleID)
	}
	var faqs []models.FAQ
	if err := q.Find(&faqs).Error; err != nil {
		return nil, fmt.Errorf("store: list faq: %w", err)
	}
	return faqs, nil
}

// UpdateFAQ replaces the writable fields of an existing FAQ entry.
func (s *Store) UpdateFAQ(id uint, in FAQInput) error {
	if err := checkInput("faq", in); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var faq models.FAQ
		if err := getRow(tx, &faq, "faq", id); err != nil {
			return err
		}
		if err := requireRow(tx, &models.Article{}, "article", in.ArticleID); err != nil {
			return err
		}
		faq.ArticleID = in.ArticleID
		faq.Question = in.Question
		faq.Answers = in.Answers
		if err := tx.Save(&faq).Error; err != nil {
			return writeError("faq", err, nil)
		}
		return nil
	})
}

// DeleteFAQ removes one FAQ entry.
func (s *Store) DeleteFAQ(id uint) error {
	return deleteRow(s.db, &models.FAQ{}, "faq", id)
}
