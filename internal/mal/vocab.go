package mal

// Enumeration values accepted by the MyAnimeList API v2. The API rejects
// unknown values with a 400, so callers validate before building a request.

// AnimeRankingTypes lists the anime ranking boards.
var AnimeRankingTypes = []string{
	"all", "airing", "upcoming", "tv", "ova", "movie", "special",
	"bypopularity", "favorite",
}

// MangaRankingTypes lists the manga ranking boards.
var MangaRankingTypes = []string{
	"all", "manga", "novels", "oneshots", "doujin", "manhwa", "manhua",
	"bypopularity", "favorite",
}

// SeasonNames lists the broadcast seasons in calendar order.
var SeasonNames = []string{"winter", "spring", "summer", "fall"}

// SeasonalSorts lists the sort orders for the seasonal endpoint.
var SeasonalSorts = []string{"anime_score", "anime_num_list_users"}

// AnimeMediaTypes lists the anime media_type values.
var AnimeMediaTypes = []string{
	"tv", "ova", "movie", "special", "ona", "music", "cm", "pv",
	"tv_special", "unknown",
}

// MangaMediaTypes lists the manga media_type values.
var MangaMediaTypes = []string{
	"manga", "novel", "one_shot", "doujinshi", "manhwa", "manhua", "oel",
	"light_novel", "unknown",
}

// AnimeStatuses lists the anime airing statuses.
var AnimeStatuses = []string{
	"finished_airing", "currently_airing", "not_yet_aired",
}

// MangaStatuses lists the manga publication statuses.
var MangaStatuses = []string{
	"finished", "currently_publishing", "not_yet_published", "on_hiatus",
	"discontinued",
}

// Sources lists the anime source material values.
var Sources = []string{
	"original", "manga", "4_koma_manga", "web_manga", "digest", "novel",
	"light_novel", "visual_novel", "game", "card_game", "book",
	"picture_book", "radio", "music", "mixed_media", "web_novel", "other",
}

// ValidEnum reports whether value is one of the allowed values.
func ValidEnum(value string, allowed []string) bool {
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}
