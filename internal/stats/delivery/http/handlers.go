package http

import (
	"github.com/gin-gonic/gin"

	"studypal/pkg/response"
	"studypal/pkg/scope"
)

// Overview godoc
// @Summary     Study analytics overview
// @Description Totals, completion rates, the trailing 7-day progress, streaks, upcoming tasks and XP for the authenticated user.
// @Tags        Stats
// @Produce     json
// @Security    BearerAuth
// @Param       as_of query string false "Reference day (today, yesterday, 3 days ago, YYYY-MM-DD, RFC3339)"
// @Param       limit query int    false "Max upcoming tasks (1-20, default 4)"
// @Success     200 {object} overviewResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     503 {object} response.Resp "Task store unavailable"
// @Router      /api/v1/stats/overview [GET]
func (h *handler) Overview(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := scope.GetScopeFromContext(ctx)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processOverviewReq(c)
	if err != nil {
		h.l.Warnf(ctx, "processOverviewReq: %v", err)
		response.Error(c, err)
		return
	}

	output, err := h.uc.Overview(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Overview: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, NewOverviewResp(output))
}
