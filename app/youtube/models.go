package youtube

// models for videos endpoint (chart=mostPopular)
type VideosResponse struct {
	Items []VideosItem `json:"items"`
}

type VideosItem struct {
	Id             string           `json:"id"`
	Snippet        VideosSnippet    `json:"snippet"`
	Statistics     VideosStatistics `json:"statistics"`
	ContentDetails ContentDetails   `json:"contentDetails"`
}

type VideosSnippet struct {
	PublishedAt  string     `json:"publishedAt"`
	Title        string     `json:"title"`
	ChannelId    string     `json:"channelId"`
	ChannelTitle string     `json:"channelTitle"`
	Thumbnails   Thumbnails `json:"thumbnails"`
}

type VideosStatistics struct {
	ViewCount    string `json:"viewCount"`
	LikeCount    string `json:"likeCount"`
	CommentCount string `json:"commentCount"`
}

type ContentDetails struct {
	Duration string `json:"duration"`
}

type Thumbnails struct {
	Default Thumbnail `json:"default"`
	Medium  Thumbnail `json:"medium"`
}

type Thumbnail struct {
	Url string `json:"url"`
}

// models for channels endpoint
type ChannelsResponse struct {
	Items []ChannelsItem `json:"items"`
}

type ChannelsItem struct {
	Statistics ChannelsStatistics `json:"statistics"`
	Snippet    ChannelsSnippet    `json:"snippet"`
}

type ChannelsStatistics struct {
	SubscriberCount string `json:"subscriberCount"`
}

type ChannelsSnippet struct {
	Thumbnails Thumbnails `json:"thumbnails"`
}
