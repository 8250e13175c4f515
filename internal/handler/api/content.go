package api

import (
	"context"
	"net/http"
	"strconv"

	resdto "hotelfront/internal/handler/dto/response"
	"hotelfront/internal/handler/httperr"
	"hotelfront/internal/infra/backend"
	"hotelfront/internal/pkg/errs"
	"hotelfront/internal/usecase/content"

	"github.com/gin-gonic/gin"
)

const msgContentUnavailable = "Failed to fetch content"

type ContentHandler struct {
	content content.Service
}

func NewContentHandler(contentService content.Service) *ContentHandler {
	return &ContentHandler{
		content: contentService,
	}
}

type contentLoader func(ctx context.Context, force bool) (content.Result, error)

// @Summary Hero banners
// @Description Homepage hero banners, served from cache when fresh
// @Tags content
// @Produce json
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {object} resdto.ContentResponse
// @Failure 502 {object} httperr.Response
// @Router /api/content/hero-banner [get]
func (h *ContentHandler) HeroBanner(c *gin.Context) {
	h.serve(c, h.content.HeroBanner)
}

// @Summary Distinctive features
// @Tags content
// @Produce json
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {object} resdto.ContentResponse
// @Failure 502 {object} httperr.Response
// @Router /api/content/distinctives [get]
func (h *ContentHandler) Distinctives(c *gin.Context) {
	h.serve(c, h.content.Distinctives)
}

// @Summary Curated offers
// @Tags content
// @Produce json
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {object} resdto.ContentResponse
// @Failure 502 {object} httperr.Response
// @Router /api/content/offers [get]
func (h *ContentHandler) CuratedOffers(c *gin.Context) {
	h.serve(c, h.content.CuratedOffers)
}

// @Summary About page
// @Tags content
// @Produce json
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {object} resdto.ContentResponse
// @Failure 502 {object} httperr.Response
// @Router /api/content/about [get]
func (h *ContentHandler) AboutPage(c *gin.Context) {
	h.serve(c, h.content.AboutPage)
}

// @Summary Facilities
// @Tags content
// @Produce json
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {object} resdto.ContentResponse
// @Failure 502 {object} httperr.Response
// @Router /api/content/facilities [get]
func (h *ContentHandler) Facilities(c *gin.Context) {
	h.serve(c, h.content.Facilities)
}

// @Summary Gallery
// @Description Gallery images, optionally filtered by category
// @Tags content
// @Produce json
// @Param category query string false "Category filter"
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {object} resdto.ContentResponse
// @Failure 502 {object} httperr.Response
// @Router /api/content/gallery [get]
func (h *ContentHandler) Gallery(c *gin.Context) {
	category := c.Query("category")
	h.serve(c, func(ctx context.Context, force bool) (content.Result, error) {
		return h.content.Gallery(ctx, category, force)
	})
}

// @Summary Rooms
// @Tags content
// @Produce json
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {object} resdto.ContentResponse
// @Failure 502 {object} httperr.Response
// @Router /api/content/rooms [get]
func (h *ContentHandler) Rooms(c *gin.Context) {
	h.serve(c, h.content.Rooms)
}

// @Summary Membership
// @Tags content
// @Produce json
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {object} resdto.ContentResponse
// @Failure 502 {object} httperr.Response
// @Router /api/content/membership [get]
func (h *ContentHandler) Membership(c *gin.Context) {
	h.serve(c, h.content.Membership)
}

// @Summary Room by id
// @Description Looks the room up in the cached list before asking the backend
// @Tags content
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/content/rooms/{id} [get]
func (h *ContentHandler) RoomByID(c *gin.Context) {
	room, err := h.content.RoomByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadGateway, err, backend.MessageOf(err, "Failed to fetch room details"), nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.RoomResponse{Data: room})
}

// @Summary Room types
// @Description Distinct room types with availability
// @Tags content
// @Produce json
// @Param refresh query bool false "Bypass the cache"
// @Success 200 {object} resdto.RoomTypesResponse
// @Failure 502 {object} httperr.Response
// @Router /api/content/room-types [get]
func (h *ContentHandler) RoomTypes(c *gin.Context) {
	types, err := h.content.RoomTypes(c.Request.Context(), forceRefresh(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadGateway, err, backend.MessageOf(err, "Failed to fetch room types"), nil)
		return
	}
	if types == nil {
		types = []content.RoomType{}
	}
	c.JSON(http.StatusOK, resdto.RoomTypesResponse{Data: types})
}

func (h *ContentHandler) serve(c *gin.Context, load contentLoader) {
	res, err := load(c.Request.Context(), forceRefresh(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadGateway, err, backend.MessageOf(err, msgContentUnavailable), nil)
		return
	}
	c.Header("X-Cache", resdto.CacheHeader(res.Source))
	c.JSON(http.StatusOK, resdto.FromContentResult(res))
}

func forceRefresh(c *gin.Context) bool {
	force, _ := strconv.ParseBool(c.Query("refresh"))
	return force
}
