package handlers

import (
	"context"
	"fmt"

	"yttrends/app/youtube"

	"zombiezen.com/go/sqlite/sqlitex"
)

// StoreSnapshot replaces the stored chart for a region with a fresh
// one. Shown again when a later fetch hard-fails.
func (s *Router) StoreSnapshot(ctx context.Context, regionCode string, videos []*youtube.Video) error {

	conn := s.db.Get(ctx)
	if conn == nil {
		return fmt.Errorf("no db connection")
	}
	defer s.db.Put(conn)

	endFn, err := sqlitex.ImmediateTransaction(conn)
	if err != nil {
		return fmt.Errorf("error creating a transaction: %w", err)
	}
	defer endFn(&err)

	stmt := conn.Prep("DELETE FROM snapshots WHERE region = ?;")
	stmt.BindText(1, regionCode)
	if _, err := stmt.Step(); err != nil {
		return fmt.Errorf("stmt.Step: %w", err)
	}
	if err := stmt.Reset(); err != nil {
		return fmt.Errorf("stmt.Reset: %w", err)
	}

	stmt = conn.Prep(`
		INSERT INTO snapshots
		(region, position, video_id, title, channel, channel_id, thumbnail, channel_thumbnail,
		 views, likes, comments, subscribers, published, duration, fetched)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, unixepoch());`)
	for position, video := range videos {

		stmt.BindText(1, regionCode)
		stmt.BindInt64(2, int64(position))
		stmt.BindText(3, video.ID)
		stmt.BindText(4, video.Title)
		stmt.BindText(5, video.Channel)
		stmt.BindText(6, video.ChannelID)
		stmt.BindText(7, video.Thumbnail)
		stmt.BindText(8, video.ChannelThumbnail)
		stmt.BindInt64(9, video.Views)
		stmt.BindInt64(10, video.Likes)
		stmt.BindInt64(11, video.Comments)
		stmt.BindInt64(12, video.Subscribers)
		stmt.BindText(13, video.PublishedAt)
		stmt.BindText(14, video.Duration)

		if _, err := stmt.Step(); err != nil {
			return fmt.Errorf("stmt.Step: %w", err)
		}
		if err := stmt.Reset(); err != nil {
			return fmt.Errorf("stmt.Reset: %w", err)
		}
		if err := stmt.ClearBindings(); err != nil {
			return fmt.Errorf("stmt.ClearBindings: %w", err)
		}
	}
	return nil
}

// LoadSnapshot returns the last stored chart for a region in stored
// order, with the unix time it was fetched. No snapshot means an empty
// slice and no error.
func (s *Router) LoadSnapshot(ctx context.Context, regionCode string) ([]*youtube.Video, int64, error) {

	conn := s.db.Get(ctx)
	if conn == nil {
		return nil, 0, fmt.Errorf("no db connection")
	}
	defer s.db.Put(conn)

	stmt, _, err := conn.PrepareTransient(`
		SELECT video_id, title, channel, channel_id, thumbnail, channel_thumbnail,
		       views, likes, comments, subscribers, published, duration, fetched
		FROM snapshots
		WHERE region = ?
		ORDER BY position;
	`)
	if err != nil {
		return nil, 0, fmt.Errorf("error preparing query: %w", err)
	}
	defer stmt.Finalize()

	stmt.BindText(1, regionCode)

	var videos []*youtube.Video
	var fetched int64

	for {
		rows, err := stmt.Step()
		if err != nil {
			return nil, 0, err
		}
		if !rows {
			break
		}

		videos = append(videos, &youtube.Video{
			ID:               stmt.GetText("video_id"),
			Title:            stmt.GetText("title"),
			Channel:          stmt.GetText("channel"),
			ChannelID:        stmt.GetText("channel_id"),
			Thumbnail:        stmt.GetText("thumbnail"),
			ChannelThumbnail: stmt.GetText("channel_thumbnail"),
			Views:            stmt.GetInt64("views"),
			Likes:            stmt.GetInt64("likes"),
			Comments:         stmt.GetInt64("comments"),
			Subscribers:      stmt.GetInt64("subscribers"),
			PublishedAt:      stmt.GetText("published"),
			Duration:         stmt.GetText("duration"),
		})
		fetched = stmt.GetInt64("fetched")
	}

	return videos, fetched, nil
}
