package store

import (
	"errors"
	"testing"
	"time"
)

func TestArticleLifecycle(t *testing.T) {
	s := newTestStore(t)

	id, err := s.CreateArticle(ArticleInput{
		Title:     "Why paint with your hands",
		Author:    "M. Wil",
		Published: time.Date(2023, 11, 5, 0, 0, 0, 0, time.UTC),
		Link:      "https://example.com/hands",
	})
	if err != nil {
		t.Fatalf("create article: %v", err)
	}

	a, err := s.GetArticle(id)
	if err != nil {
		t.Fatalf("get article: %v", err)
	}
	if a.Title != "Why paint with your hands" || a.Author != "M. Wil" {
		t.Fatalf("article mismatch: %+v", a)
	}

	in := ArticleInput{Title: "Why paint with your hands", Author: "M. Wil", Body: "long form"}
	if err := s.UpdateArticle(id, in); err != nil {
		t.Fatalf("update article: %v", err)
	}
	a, err = s.GetArticle(id)
	if err != nil {
		t.Fatalf("get article: %v", err)
	}
	if a.Body != "long form" {
		t.Fatalf("update not applied: %+v", a)
	}

	if err := s.DeleteArticle(id); err != nil {
		t.Fatalf("delete article: %v", err)
	}
	if _, err := s.GetArticle(id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestCreateArticleRequiresTitle(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateArticle(ArticleInput{Body: "no title"})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Violations["title"] != "required" {
		t.Fatalf("expected title violation, got %v", ve.Violations)
	}
}

func TestFAQLifecycle(t *testing.T) {
	s := newTestStore(t)

	articleID, err := s.CreateArticle(ArticleInput{Title: "Pricing explained"})
	if err != nil {
		t.Fatalf("create article: %v", err)
	}

	id, err := s.CreateFAQ(FAQInput{ArticleID: articleID, Question: "Do you take cards?", Answers: "Yes."})
	if err != nil {
		t.Fatalf("create faq: %v", err)
	}
	f, err := s.GetFAQ(id)
	if err != nil {
		t.Fatalf("get faq: %v", err)
	}
	if f.Question != "Do you take cards?" || f.ArticleID != articleID {
		t.Fatalf("faq mismatch: %+v", f)
	}

	// an article with FAQ entries cannot be deleted
	err = s.DeleteArticle(articleID)
	var cv *ConstraintViolation
	if !errors.As(err, &cv) {
		t.Fatalf("expected ConstraintViolation, got %v", err)
	}
	if cv.Ref != "faq" {
		t.Fatalf("expected faq reference, got %q", cv.Ref)
	}

	if err := s.DeleteFAQ(id); err != nil {
		t.Fatalf("delete faq: %v", err)
	}
	if err := s.DeleteArticle(articleID); err != nil {
		t.Fatalf("delete article: %v", err)
	}
}

func TestCreateFAQUnknownArticle(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateFAQ(FAQInput{ArticleID: 9999, Question: "?"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestProtocolLifecycle(t *testing.T) {
	s := newTestStore(t)

	clientID, err := s.CreateClient(janeDoe())
	if err != nil {
		t.Fatalf("create client: %v", err)
	}

	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	id, err := s.CreateProtocol(ProtocolInput{ClientID: clientID, ProtocolText: "initial assessment", Date: date})
	if err != nil {
		t.Fatalf("create protocol: %v", err)
	}
	p, err := s.GetProtocol(id)
	if err != nil {
		t.Fatalf("get protocol: %v", err)
	}
	if p.ProtocolText != "initial assessment" || !p.Date.Equal(date) {
		t.Fatalf("protocol mismatch: %+v", p)
	}

	if _, err := s.CreateProtocol(ProtocolInput{ClientID: 9999, ProtocolText: "x", Date: date}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected NotFound for unknown client, got %v", err)
	}

	scoped, err := s.ListProtocols(clientID)
	if err != nil {
		t.Fatalf("list protocols: %v", err)
	}
	if len(scoped) != 1 {
		t.Fatalf("expected 1 protocol, got %d", len(scoped))
	}

	if err := s.DeleteProtocol(id); err != nil {
		t.Fatalf("delete protocol: %v", err)
	}
	if err := s.DeleteClient(clientID); err != nil {
		t.Fatalf("delete client: %v", err)
	}
}
