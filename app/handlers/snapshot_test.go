package handlers

import (
	"context"
	"path/filepath"
	"testing"

	"yttrends/app/youtube"

	"zombiezen.com/go/sqlite/sqlitex"
)

func testRouter(t *testing.T) *Router {
	t.Helper()

	db, err := sqlitex.NewPool(filepath.Join(t.TempDir(), "test.db"), sqlitex.PoolOptions{PoolSize: 2})
	if err != nil {
		t.Fatalf("cannot open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	conn := db.Get(context.Background())
	if err := sqlitex.ExecuteScript(conn, CreateTablesIfNotExists, nil); err != nil {
		t.Fatalf("cannot create tables: %v", err)
	}
	db.Put(conn)

	// no templates and no requester needed for storage tests
	return &Router{db: db}
}

func TestSnapshotRoundTrip(t *testing.T) {
	router := testRouter(t)
	ctx := context.Background()

	videos := []*youtube.Video{
		{
			ID:               "vid1",
			Title:            "first",
			Channel:          "Channel A",
			ChannelID:        "chanA",
			Thumbnail:        "http://img/vid1.jpg",
			ChannelThumbnail: "http://img/chanA.jpg",
			Views:            3000,
			Likes:            300,
			Comments:         30,
			Subscribers:      50000,
			PublishedAt:      "2026-03-01T10:00:00Z",
			Duration:         "PT5M30S",
		},
		{ID: "vid2", Title: "second", ChannelID: "chanB", Views: 2000, Duration: "PT0S"},
	}

	if err := router.StoreSnapshot(ctx, "KR", videos); err != nil {
		t.Fatalf("StoreSnapshot: %v", err)
	}

	loaded, fetched, err := router.LoadSnapshot(ctx, "KR")
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if fetched == 0 {
		t.Error("fetched timestamp should be set")
	}
	if len(loaded) != 2 {
		t.Fatalf("got %d videos, want 2", len(loaded))
	}

	if *loaded[0] != *videos[0] {
		t.Errorf("first record = %+v, want %+v", loaded[0], videos[0])
	}
	if loaded[1].ID != "vid2" || loaded[1].Views != 2000 {
		t.Errorf("second record = %+v", loaded[1])
	}
}

func TestSnapshotReplacesPreviousAndKeepsRegionsApart(t *testing.T) {
	router := testRouter(t)
	ctx := context.Background()

	if err := router.StoreSnapshot(ctx, "KR", []*youtube.Video{{ID: "old", Views: 1}}); err != nil {
		t.Fatalf("StoreSnapshot: %v", err)
	}
	if err := router.StoreSnapshot(ctx, "US", []*youtube.Video{{ID: "us1", Views: 5}}); err != nil {
		t.Fatalf("StoreSnapshot: %v", err)
	}
	if err := router.StoreSnapshot(ctx, "KR", []*youtube.Video{{ID: "new1", Views: 9}, {ID: "new2", Views: 8}}); err != nil {
		t.Fatalf("StoreSnapshot: %v", err)
	}

	kr, _, err := router.LoadSnapshot(ctx, "KR")
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if len(kr) != 2 || kr[0].ID != "new1" || kr[1].ID != "new2" {
		t.Errorf("KR snapshot = %v, want the two new records in order", kr)
	}

	us, _, err := router.LoadSnapshot(ctx, "US")
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if len(us) != 1 || us[0].ID != "us1" {
		t.Errorf("US snapshot = %v, want the single us record", us)
	}
}

func TestLoadSnapshotEmpty(t *testing.T) {
	router := testRouter(t)

	videos, fetched, err := router.LoadSnapshot(context.Background(), "KR")
	if err != nil {
		t.Fatalf("LoadSnapshot: %v", err)
	}
	if len(videos) != 0 || fetched != 0 {
		t.Errorf("got %d videos (fetched %d), want none", len(videos), fetched)
	}
}
