package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"yttrends/app/youtube"
)

type Message struct {
	Detail string `json:"detail"`
}

type TrendsPage struct {
	Region  Region
	Regions []Region
	Max     int
	Videos  []*youtube.Video
	Fetched int64
	Stale   bool
	Error   string
}

type TrendsResponse struct {
	Region  string           `json:"region"`
	Videos  []*youtube.Video `json:"videos"`
	Fetched int64            `json:"fetched"`
	Stale   bool             `json:"stale,omitempty"`
}

// ParseTrendsParams pulls region and max out of the query string,
// falling back to KR and 30. max is clamped to the 10-50 the page offers.
func ParseTrendsParams(params url.Values) (Region, int) {

	region, ok := RegionByCode(params.Get("region"))
	if !ok {
		region = Regions[0]
	}

	max, err := strconv.Atoi(params.Get("max"))
	if err != nil {
		max = 30
	}
	if max < 10 {
		max = 10
	}
	if max > 50 {
		max = 50
	}

	return region, max
}

// SortByViews orders records most viewed first. The api already ranks
// them but the page promises a view count ranking.
func SortByViews(videos []*youtube.Video) {
	sort.SliceStable(videos, func(i, j int) bool {
		return videos[i].Views > videos[j].Views
	})
}

func (s *Router) GetTrends(w http.ResponseWriter, r *http.Request) {

	region, max := ParseTrendsParams(r.URL.Query())

	page := &TrendsPage{
		Region:  region,
		Regions: Regions,
		Max:     max,
	}

	videos, err := s.ytr.FetchPopularVideos(region.Code, max)
	if err != nil {
		log.Println("fetch failed:", err.Error())
		s.fillFromSnapshot(r.Context(), page)
	} else {
		SortByViews(videos)
		page.Videos = videos
		s.saveSnapshot(r.Context(), region.Code, videos)
	}

	if err := s.templates.ExecuteTemplate(w, "trends.html", page); err != nil {
		log.Println("cannot render trends:", err.Error())
	}
}

func (s *Router) GetTrendsJson(w http.ResponseWriter, r *http.Request) {

	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)

	region, max := ParseTrendsParams(r.URL.Query())

	videos, err := s.ytr.FetchPopularVideos(region.Code, max)
	if err != nil {
		log.Println("fetch failed:", err.Error())

		videos, fetched, snapErr := s.LoadSnapshot(r.Context(), region.Code)
		if snapErr != nil || len(videos) == 0 {
			w.WriteHeader(http.StatusBadGateway)
			encoder.Encode(Message{"couldn't fetch popular videos"})
			return
		}
		encoder.Encode(TrendsResponse{Region: region.Code, Videos: videos, Fetched: fetched, Stale: true})
		return
	}

	SortByViews(videos)
	s.saveSnapshot(r.Context(), region.Code, videos)

	encoder.Encode(TrendsResponse{Region: region.Code, Videos: videos, Fetched: time.Now().Unix()})
}

func (s *Router) fillFromSnapshot(ctx context.Context, page *TrendsPage) {
	videos, fetched, err := s.LoadSnapshot(ctx, page.Region.Code)
	if err != nil {
		log.Println("cannot load snapshot:", err.Error())
	}
	if len(videos) == 0 {
		page.Error = "동영상을 불러오는 데 실패했습니다. API 키를 확인해주세요."
		return
	}
	page.Videos = videos
	page.Fetched = fetched
	page.Stale = true
}

func (s *Router) saveSnapshot(ctx context.Context, regionCode string, videos []*youtube.Video) {
	if err := s.StoreSnapshot(ctx, regionCode, videos); err != nil {
		log.Println("couldn't store snapshot:", err.Error())
	}
}
