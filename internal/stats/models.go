package stats

import "time"

type Action string

const (
	ActionFind   Action = "find_rumor"
	ActionSubmit Action = "add_rumor"
)

// Event is one completed find or submit action. Append-only; the username
// column doubles as the lookup table for notification targeting.
type Event struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement"`
	UserID   int64  `gorm:"index;not null"`
	Username string `gorm:"type:varchar(64);index"`
	Action   Action `gorm:"type:varchar(16);not null"`
	BotName  string `gorm:"type:varchar(64);not null"`

	CreatedAt time.Time
}

func (Event) TableName() string { return "stat_events" }
