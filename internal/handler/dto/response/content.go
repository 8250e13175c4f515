package response

import (
	"encoding/json"
	"time"

	"hotelfront/internal/usecase/cache"
	"hotelfront/internal/usecase/content"
)

type ContentResponse struct {
	Data     json.RawMessage `json:"data"`
	Source   string          `json:"source"`
	Stale    bool            `json:"stale"`
	CachedAt *time.Time      `json:"cachedAt,omitempty"`
}

func FromContentResult(r content.Result) *ContentResponse {
	resp := &ContentResponse{
		Data:   r.Data,
		Source: string(r.Source),
		Stale:  r.Stale,
	}
	if !r.CachedAt.IsZero() {
		cachedAt := r.CachedAt
		resp.CachedAt = &cachedAt
	}
	return resp
}

// CacheHeader is the X-Cache value for a result source.
func CacheHeader(source cache.Source) string {
	switch source {
	case cache.SourceCache:
		return "HIT"
	case cache.SourceStale:
		return "STALE"
	default:
		return "MISS"
	}
}

type RoomResponse struct {
	Data json.RawMessage `json:"data"`
}

type RoomTypesResponse struct {
	Data []content.RoomType `json:"data"`
}
