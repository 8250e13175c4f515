package api

import (
	"net/http"

	resdto "hotelfront/internal/handler/dto/response"
	"hotelfront/internal/handler/httperr"
	"hotelfront/internal/pkg/errs"
	"hotelfront/internal/usecase/cache"
	"hotelfront/internal/usecase/content"

	"github.com/gin-gonic/gin"
)

type CacheHandler struct {
	cache   cache.Service
	content content.Service
}

func NewCacheHandler(cacheService cache.Service, contentService content.Service) *CacheHandler {
	return &CacheHandler{
		cache:   cacheService,
		content: contentService,
	}
}

// @Summary Cache size
// @Tags cache
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CacheSizeResponse
// @Failure 503 {object} httperr.Response
// @Router /api/cache/size [get]
func (h *CacheHandler) Size(c *gin.Context) {
	n, err := h.cache.Size(c.Request.Context())
	if err != nil {
		abortCacheError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CacheSizeResponse{Size: n})
}

// @Summary Clear cache
// @Tags cache
// @Security BearerAuth
// @Success 204
// @Failure 503 {object} httperr.Response
// @Router /api/cache [delete]
func (h *CacheHandler) Clear(c *gin.Context) {
	if err := h.cache.Clear(c.Request.Context()); err != nil {
		abortCacheError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Invalidate one cache key
// @Tags cache
// @Security BearerAuth
// @Param key path string true "Cache key, e.g. rooms or gallery"
// @Success 204
// @Failure 503 {object} httperr.Response
// @Router /api/cache/{key} [delete]
func (h *CacheHandler) Invalidate(c *gin.Context) {
	if err := h.content.Invalidate(c.Request.Context(), c.Param("key")); err != nil {
		abortCacheError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Warm cache
// @Description Fetches every content type once. Failures are logged and skipped.
// @Tags cache
// @Security BearerAuth
// @Success 204
// @Router /api/cache/warm [post]
func (h *CacheHandler) Warm(c *gin.Context) {
	if err := h.content.Warm(c.Request.Context()); err != nil {
		abortCacheError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func abortCacheError(c *gin.Context, err error) {
	if errs.Is(err, errs.ErrCacheUnavailable) {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Cache unavailable", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
