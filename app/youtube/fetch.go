package youtube

import (
	"log"
	"strconv"
)

// Video is one normalized row of the popular chart, rebuilt on every fetch.
type Video struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Channel          string `json:"channel"`
	ChannelID        string `json:"channelId"`
	Thumbnail        string `json:"thumbnail"`
	ChannelThumbnail string `json:"channelThumbnail"`
	Views            int64  `json:"views"`
	Likes            int64  `json:"likes"`
	Comments         int64  `json:"comments"`
	Subscribers      int64  `json:"subscribers"`
	PublishedAt      string `json:"published"`
	Duration         string `json:"duration"`
}

type ChannelInfo struct {
	Subscribers int64
	Thumbnail   string
}

// ListFetchError: the popular videos list call failed, the whole fetch
// is aborted and nothing is returned.
type ListFetchError struct {
	cause error
}

func (e *ListFetchError) Error() string {
	return "popular videos fetch failed: " + e.cause.Error()
}

func (e *ListFetchError) Unwrap() error {
	return e.cause
}

// ChannelFetchError: one channel lookup failed. Never escapes
// FetchPopularVideos, the channel just shows up with zero values.
type ChannelFetchError struct {
	ChannelID string
	cause     error
}

func (e *ChannelFetchError) Error() string {
	return "channel " + e.ChannelID + " fetch failed: " + e.cause.Error()
}

func (e *ChannelFetchError) Unwrap() error {
	return e.cause
}

// FetchPopularVideos is the whole pipeline: one list call, at most one
// channel call per distinct channel, normalized records in chart order.
func (y *YouTubeRequester) FetchPopularVideos(regionCode string, maxResults int) ([]*Video, error) {

	list, err := y.PopularVideos(regionCode, maxResults)
	if err != nil {
		return nil, &ListFetchError{cause: err}
	}

	// channel cache lives for this call only
	channels := make(map[string]ChannelInfo)
	videos := make([]*Video, 0, len(list.Items))

	for _, item := range list.Items {
		channelId := item.Snippet.ChannelId

		info, cached := channels[channelId]
		if !cached {
			info, err = y.channelInfo(channelId)
			if err != nil {
				// soft failure: the video still gets shown, the
				// zero value is cached so we don't ask again
				log.Println(err.Error())
				info = ChannelInfo{}
			}
			channels[channelId] = info
		}

		duration := item.ContentDetails.Duration
		if duration == "" {
			duration = "PT0S"
		}

		videos = append(videos, &Video{
			ID:               item.Id,
			Title:            item.Snippet.Title,
			Channel:          item.Snippet.ChannelTitle,
			ChannelID:        channelId,
			Thumbnail:        item.Snippet.Thumbnails.Medium.Url,
			ChannelThumbnail: info.Thumbnail,
			Views:            parseCount(item.Statistics.ViewCount),
			Likes:            parseCount(item.Statistics.LikeCount),
			Comments:         parseCount(item.Statistics.CommentCount),
			Subscribers:      info.Subscribers,
			PublishedAt:      item.Snippet.PublishedAt,
			Duration:         duration,
		})
	}

	return videos, nil
}

func (y *YouTubeRequester) channelInfo(channelId string) (ChannelInfo, error) {

	r, err := y.Channel(channelId)
	if err != nil {
		return ChannelInfo{}, &ChannelFetchError{ChannelID: channelId, cause: err}
	}
	if len(r.Items) == 0 {
		return ChannelInfo{}, nil
	}

	item := r.Items[0]
	return ChannelInfo{
		Subscribers: parseCount(item.Statistics.SubscriberCount),
		Thumbnail:   item.Snippet.Thumbnails.Default.Url,
	}, nil
}

// the api sends counts as strings, absent or garbage means 0
func parseCount(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}
