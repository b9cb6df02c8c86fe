package rumor

import (
	"context"
	"strings"
)

// Criteria is the partial search state accumulated by the find wizard.
// City and Age are only meaningful once the funnel has narrowed that far.
type Criteria struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	City    string `json:"city"`
	Age     int    `json:"age"`
}

// Draft is a submission being built by the submit wizard.
type Draft struct {
	Name            string `json:"name"`
	Surname         string `json:"surname"`
	SubjectUsername string `json:"subject_username"`
	Age             int    `json:"age"`
	City            string `json:"city"`
	Text            string `json:"text"`
}

// Service is the query funnel: each step narrows the candidate set using the
// criteria fixed so far. Matching is case-insensitive; name, surname and city
// are lowercased both here and at write time.
type Service struct {
	repo *Repo
}

func NewService(repo *Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) ResolveCities(ctx context.Context, c Criteria) ([]string, error) {
	return s.repo.DistinctCities(ctx, fold(c.Name), fold(c.Surname))
}

func (s *Service) ResolveAges(ctx context.Context, c Criteria) ([]int, error) {
	return s.repo.DistinctAges(ctx, fold(c.Name), fold(c.Surname), fold(c.City))
}

func (s *Service) ResolveTexts(ctx context.Context, c Criteria) ([]string, error) {
	return s.repo.Texts(ctx, fold(c.Name), fold(c.Surname), fold(c.City), c.Age)
}

// Add persists one rumor. Duplicates are permitted: there is no uniqueness
// constraint on submissions about the same subject.
func (s *Service) Add(ctx context.Context, d Draft) error {
	rec := &Rumor{
		Name:    fold(d.Name),
		Surname: fold(d.Surname),
		City:    fold(d.City),
		Age:     d.Age,
		Text:    d.Text,
	}
	if d.SubjectUsername != "" {
		u := strings.TrimPrefix(d.SubjectUsername, "@")
		rec.SubjectUsername = &u
	}
	return s.repo.Insert(ctx, rec)
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
