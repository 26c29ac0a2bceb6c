package api

import (
	"net/http"

	resdto "roomcart/internal/handler/dto/response"
	"roomcart/internal/handler/httperr"
	"roomcart/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PlanHandler struct {
	planQueries queries.PlanQueries
}

func NewPlanHandler(planQueries queries.PlanQueries) *PlanHandler {
	return &PlanHandler{planQueries: planQueries}
}

// @Summary List active plans
// @Description List the purchasable subscription tiers
// @Tags plans
// @Produce json
// @Success 200 {array} resdto.PlanResponse
// @Router /plans [get]
func (h *PlanHandler) ListPlans(c *gin.Context) {
	views, err := h.planQueries.ListActive(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list plans", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPlanViews(views))
}
