package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup is a set of related endpoints registered on the /api group.
// Group-level middleware (request signing, idempotency) is applied by the
// router before registration.
type RouteGroup interface {
	RegisterPublicRoutes(rg *gin.RouterGroup)
}
