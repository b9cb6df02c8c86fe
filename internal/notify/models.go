package notify

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

type Status string

const (
	StatusQueued Status = "queued"
	StatusSent   Status = "sent"
	StatusFailed Status = "failed"
)

// Notification is an outbox row for a cross-user "someone wrote about you"
// message. It is created in the same request that persists a submission and
// delivered asynchronously by the worker, so submission success never depends
// on delivery.
type Notification struct {
	ID string `gorm:"primaryKey;size:26"` // ULID length

	ChatID int64  `gorm:"index;not null"`
	Text   string `gorm:"type:text;not null"`

	Status Status `gorm:"type:varchar(16);index;not null"`

	// Filled when failed
	Error *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Notification) TableName() string { return "notifications" }

// NewID returns a fresh ULID string.
func NewID() (string, error) {
	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
