package youtube

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"yttrends/app/conf"
)

type YouTubeRequester struct {
	client         *http.Client
	conf           *conf.Config
	currentApiKeyN int
	baseUrl        string
}

func NewYouTubeRequester(conf *conf.Config) *YouTubeRequester {
	return &YouTubeRequester{
		baseUrl: "https://www.googleapis.com/youtube/v3",
		conf:    conf,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// PopularVideos asks for the mostPopular chart of one region.
// One page, no pagination: maxResults caps the whole result.
func (y *YouTubeRequester) PopularVideos(regionCode string, maxResults int) (*VideosResponse, error) {

	req, _ := http.NewRequest("GET", y.baseUrl+"/videos", nil)
	q := url.Values{}
	q.Add("part", "snippet,statistics,contentDetails")
	q.Add("chart", "mostPopular")
	q.Add("regionCode", regionCode)
	q.Add("maxResults", strconv.Itoa(maxResults))
	req.URL.RawQuery = q.Encode()

	res, err := y.Request(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	r := new(VideosResponse)
	if err := json.NewDecoder(res.Body).Decode(r); err != nil {
		return nil, fmt.Errorf("decode videos response: %w", err)
	}

	return r, nil
}

func (y *YouTubeRequester) Channel(channelId string) (*ChannelsResponse, error) {

	req, _ := http.NewRequest("GET", y.baseUrl+"/channels", nil)
	q := url.Values{}
	q.Add("part", "statistics,snippet")
	q.Add("id", channelId)
	req.URL.RawQuery = q.Encode()

	res, err := y.Request(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	r := new(ChannelsResponse)
	if err := json.NewDecoder(res.Body).Decode(r); err != nil {
		return nil, fmt.Errorf("decode channels response: %w", err)
	}

	return r, nil
}
