package handlers

// Region is one selectable country. The list is fixed; the upstream
// chart accepts two-letter ISO codes and these ten are what the app offers.
type Region struct {
	Code string
	Name string
	Flag string
}

var Regions = []Region{
	{"KR", "대한민국", "🇰🇷"},
	{"US", "미국", "🇺🇸"},
	{"JP", "일본", "🇯🇵"},
	{"GB", "영국", "🇬🇧"},
	{"CA", "캐나다", "🇨🇦"},
	{"AU", "호주", "🇦🇺"},
	{"DE", "독일", "🇩🇪"},
	{"FR", "프랑스", "🇫🇷"},
	{"IN", "인도", "🇮🇳"},
	{"BR", "브라질", "🇧🇷"},
}

func RegionByCode(code string) (Region, bool) {
	for _, region := range Regions {
		if region.Code == code {
			return region, true
		}
	}
	return Region{}, false
}
