package httpserver

import (
	"context"

	"studypal/internal/middleware"
	statsHTTP "studypal/internal/stats/delivery/http"
	statsRepo "studypal/internal/stats/repository/sqlite"
	statsUC "studypal/internal/stats/usecase"

	"github.com/gin-gonic/gin"
)

// setupStatsDomain initializes the stats domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.db, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo, ...)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc, ...)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, mw)
func (srv HTTPServer) setupStatsDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := statsRepo.New(srv.db, srv.l)

	// 2. UseCase
	uc := statsUC.New(srv.l, repo, statsUC.Options{
		Dates:         srv.dates,
		UpcomingLimit: srv.upcomingLimit,
	})

	// 3. HTTP Handler
	h := statsHTTP.New(srv.l, uc, srv.dates)

	// 4. Routes: registers /api/v1/stats/overview
	statsHTTP.RegisterRoutes(api.Group("/stats"), h, mw)

	srv.l.Infof(ctx, "Stats domain registered")
	return nil
}
