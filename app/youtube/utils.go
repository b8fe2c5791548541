package youtube

import (
	"errors"
	"fmt"
	"log"
	"net/http"
)

var ErrorApiQuota = errors.New("YouTube API quota exceeded")

func (y *YouTubeRequester) Request(req *http.Request) (*http.Response, error) {
	// Just wrap client.Do to add http code errors
	// retries with fresh api keys if provided

	for {
		q := req.URL.Query()
		q.Set("key", y.conf.ApiKeys[y.currentApiKeyN])
		req.URL.RawQuery = q.Encode()
		res, err := y.client.Do(req)
		if err != nil {
			return nil, err
		}
		if res.StatusCode == 403 {
			log.Println("YouTube API quota exceeded, I'll try to use another API key..")
			if len(y.conf.ApiKeys) > y.currentApiKeyN+1 {
				y.currentApiKeyN++
				continue
			} else {
				y.currentApiKeyN = 0
				return nil, ErrorApiQuota
			}
		}
		if res.StatusCode != 200 {
			return nil, fmt.Errorf("%d %s", res.StatusCode, req.URL.String())
		}
		return res, err
	}
}
