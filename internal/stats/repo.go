package stats

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Create(ctx context.Context, e *Event) error {
	e.Username = strings.TrimPrefix(e.Username, "@")
	return r.db.WithContext(ctx).Create(e).Error
}

// LatestByUsername returns the most recent event for a username, or nil when
// the user has never been seen. Most-recent-wins keeps the lookup
// deterministic when a user has multiple events.
func (r *Repo) LatestByUsername(ctx context.Context, username string) (*Event, error) {
	username = strings.TrimPrefix(username, "@")
	var e Event
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("id DESC").
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}
