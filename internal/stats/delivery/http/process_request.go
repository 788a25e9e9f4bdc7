package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "studypal/pkg/errors"
)

// processOverviewReq binds the query string and resolves as_of in the configured timezone.
func (h *handler) processOverviewReq(c *gin.Context) (overviewReq, error) {
	var req overviewReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewHTTPErrorf(400, "invalid query: %v", err)
	}

	if req.AsOf != "" {
		asOf, err := h.dates.Parse(req.AsOf, h.now())
		if err != nil {
			return req, pkgErrors.NewHTTPErrorf(400, "invalid as_of: %v", err)
		}
		req.asOf = asOf
	}

	return req, req.validate()
}
