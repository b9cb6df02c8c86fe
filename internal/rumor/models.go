package rumor

import "time"

type Rumor struct {
	ID              uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string  `gorm:"type:varchar(64);index:idx_rumor_subject,priority:1;not null" json:"name"`
	Surname         string  `gorm:"type:varchar(64);index:idx_rumor_subject,priority:2;not null" json:"surname"`
	City            string  `gorm:"type:varchar(64);index:idx_rumor_subject,priority:3;not null" json:"city"`
	Age             int     `gorm:"index:idx_rumor_subject,priority:4;not null" json:"age"`
	SubjectUsername *string `gorm:"type:varchar(64);index" json:"subject_username,omitempty"`
	Text            string  `gorm:"type:text;not null" json:"text"`

	CreatedAt time.Time `json:"created_at"`
}

func (Rumor) TableName() string { return "rumors" }
