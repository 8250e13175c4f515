package content

import (
	"context"
	"encoding/json"

	"hotelfront/internal/usecase/cache"
)

// Gallery returns the gallery, restricted to one category tab when category
// is set. A category view that cannot be served degrades to an empty list
// marked stale.
func (s *serviceImpl) Gallery(ctx context.Context, category string, force bool) (Result, error) {
	res, err := s.load(ctx, KindGallery, force)
	if category == "" {
		return res, err
	}
	if err != nil {
		s.logger.Warn("gallery unavailable, returning no images", "category", category, "error", err)
		return Result{Data: json.RawMessage("[]"), Source: cache.SourceStale, Stale: true}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(res.Data, &items); err != nil {
		s.logger.Warn("gallery is not a list, returning no images", "category", category, "error", err)
		res.Data = json.RawMessage("[]")
		return res, nil
	}

	filtered := make([]json.RawMessage, 0, len(items))
	for _, raw := range items {
		var item struct {
			Category string `json:"category"`
		}
		if json.Unmarshal(raw, &item) == nil && item.Category == category {
			filtered = append(filtered, raw)
		}
	}

	data, err := json.Marshal(filtered)
	if err != nil {
		return Result{}, err
	}
	res.Data = data
	return res, nil
}
