package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"dayplanner/internal/middleware"
	plannerHTTP "dayplanner/internal/planner/delivery/http"
)

// setupPlannerDomain registers the planner's routes.
//
// Pattern to follow when adding a new domain:
//  1. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  2. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) setupPlannerDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := plannerHTTP.New(srv.l, srv.plannerUC)

	// Registers /api/v1/planner/...
	plannerHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Planner domain registered")
	return nil
}
