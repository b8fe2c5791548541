package youtube

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

var (
	hoursPattern   = regexp.MustCompile(`(\d+)H`)
	minutesPattern = regexp.MustCompile(`(\d+)M`)
	secondsPattern = regexp.MustCompile(`(\d+)S`)
)

// FormatCount renders a count with korean magnitude words:
// 억 for hundred millions, 만 for ten thousands, plain commas below that.
func FormatCount(n int64) string {
	if n >= 100000000 {
		return fmt.Sprintf("%.1f억", float64(n)/100000000)
	}
	if n >= 10000 {
		return fmt.Sprintf("%.1f만", float64(n)/10000)
	}
	return humanize.Comma(n)
}

// FormatDuration turns an ISO 8601 duration like PT1H2M3S into 1:02:03.
// Every component is optional, PT0S and anything unparsable come out as 0:00.
func FormatDuration(duration string) string {
	hours := matchInt(hoursPattern, duration)
	minutes := matchInt(minutesPattern, duration)
	seconds := matchInt(secondsPattern, duration)

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

func matchInt(pattern *regexp.Regexp, s string) int {
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

// FormatPublishedDate buckets the age of a timestamp into a relative
// korean label, one unit only. Whole days decide the year/month/day
// buckets, the leftover seconds of the same delta decide the rest.
func FormatPublishedDate(publishedAt string, now time.Time) string {
	published, err := time.Parse(time.RFC3339, publishedAt)
	if err != nil {
		return ""
	}

	delta := now.Sub(published)
	days := int(delta.Hours()) / 24
	seconds := int(delta.Seconds()) - days*86400

	switch {
	case days > 365:
		return fmt.Sprintf("%d년 전", days/365)
	case days > 30:
		return fmt.Sprintf("%d개월 전", days/30)
	case days > 0:
		return fmt.Sprintf("%d일 전", days)
	case seconds > 3600:
		return fmt.Sprintf("%d시간 전", seconds/3600)
	case seconds > 60:
		return fmt.Sprintf("%d분 전", seconds/60)
	default:
		return "방금 전"
	}
}
