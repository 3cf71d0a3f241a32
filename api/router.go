package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Handler interface {
	Register(router *gin.RouterGroup)
}

// NewRouter builds the HTTP engine. Requests that match no route are served
// from staticDir when it is set.
func NewRouter(logger *zap.Logger, staticDir string, handlers ...Handler) *gin.Engine {
	router := gin.New()
	router.Use(
		ginzap.Ginzap(logger, time.RFC3339, true),
		ginzap.RecoveryWithZap(logger, true),
		cors.Default(),
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	for _, h := range handlers {
		h.Register(&router.RouterGroup)
	}

	var files http.Handler
	if staticDir != "" {
		files = http.FileServer(http.Dir(staticDir))
	}
	router.NoRoute(func(c *gin.Context) {
		method := c.Request.Method
		if files == nil || (method != http.MethodGet && method != http.MethodHead) {
			c.JSON(http.StatusNotFound, errorResponse{Error: "Not found"})
			return
		}
		files.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
