package db

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/sspletnik/gossipbot/internal/notify"
	"github.com/sspletnik/gossipbot/internal/rumor"
	"github.com/sspletnik/gossipbot/internal/stats"
)

// Connect opens the MySQL database and migrates the schema.
func Connect(dsn string) *gorm.DB {
	gdb, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	if err := Migrate(gdb); err != nil {
		log.Fatalf("db migrate: %v", err)
	}
	return gdb
}

func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(&rumor.Rumor{}, &stats.Event{}, &notify.Notification{})
}
