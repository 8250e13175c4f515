package response

type CacheSizeResponse struct {
	Size int64 `json:"size"`
}
