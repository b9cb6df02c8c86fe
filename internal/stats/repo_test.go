package stats

import (
	"context"
	"path/filepath"
	"testing"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(gormsqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&Event{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestLatestByUsername_MostRecentWins(t *testing.T) {
	repo := NewRepo(openTestDB(t))
	ctx := context.Background()

	events := []*Event{
		{UserID: 100, Username: "olga", Action: ActionFind, BotName: "testbot"},
		{UserID: 555, Username: "olga", Action: ActionSubmit, BotName: "testbot"},
	}
	for i, e := range events {
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	got, err := repo.LatestByUsername(ctx, "olga")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got == nil {
		t.Fatal("expected a hit")
	}
	if got.UserID != 555 || got.Action != ActionSubmit {
		t.Fatalf("expected the most recent event, got %+v", got)
	}
}

func TestLatestByUsername_MissIsNil(t *testing.T) {
	repo := NewRepo(openTestDB(t))

	got, err := repo.LatestByUsername(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for unknown username, got %+v", got)
	}
}

func TestLatestByUsername_TrimsAtSign(t *testing.T) {
	repo := NewRepo(openTestDB(t))
	ctx := context.Background()

	if err := repo.Create(ctx, &Event{UserID: 7, Username: "@nick", Action: ActionFind, BotName: "testbot"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.LatestByUsername(ctx, "@nick")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got == nil || got.UserID != 7 {
		t.Fatalf("expected user 7, got %+v", got)
	}
}

func TestCreate_AppendOnlyKeepsDuplicates(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepo(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := repo.Create(ctx, &Event{UserID: 1, Username: "u", Action: ActionFind, BotName: "testbot"}); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	var count int64
	if err := db.Model(&Event{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 events, got %d", count)
	}
}
