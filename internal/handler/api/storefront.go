package api

import (
	"net/http"

	resdto "roomcart/internal/handler/dto/response"
	"roomcart/internal/handler/httperr"
	"roomcart/internal/infra"
	"roomcart/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StorefrontHandler struct {
	storefrontQueries queries.StorefrontQueries
}

func NewStorefrontHandler(storefrontQueries queries.StorefrontQueries) *StorefrontHandler {
	return &StorefrontHandler{storefrontQueries: storefrontQueries}
}

// @Summary Get storefront
// @Description Public storefront view by hotel slug: branding plus catalog
// @Tags storefront
// @Produce json
// @Param slug path string true "Hotel slug"
// @Success 200 {object} resdto.StorefrontResponse
// @Failure 404 {object} httperr.Response
// @Router /storefront/{slug} [get]
func (h *StorefrontHandler) GetStorefront(c *gin.Context) {
	slug := c.Param("slug")

	view, err := h.storefrontQueries.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Hotel not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load storefront", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStorefrontView(view))
}
