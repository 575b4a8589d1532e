package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	assistantHTTP "zitta/internal/assistant/delivery/http"
	fileHTTP "zitta/internal/fileexplorer/delivery/http"
	memoHTTP "zitta/internal/memo/delivery/http"
	pluginHTTP "zitta/internal/plugin/delivery/http"
	todoHTTP "zitta/internal/todo/delivery/http"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes(srv.gin.Group(APIPrefix))
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery(), srv.mw.RequestID())
	if srv.mode != gin.TestMode {
		srv.gin.Use(gin.Logger())
	}

	ctx := context.Background()
	if srv.environment == EnvironmentProduction {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers every domain under /api/v1.
func (srv HTTPServer) registerDomainRoutes(api *gin.RouterGroup) {
	ctx := context.Background()

	assistantHTTP.RegisterRoutes(api, assistantHTTP.New(srv.l, srv.assistant), srv.mw)
	todoHTTP.RegisterRoutes(api, todoHTTP.New(srv.l, srv.todos))
	memoHTTP.RegisterRoutes(api, memoHTTP.New(srv.l, srv.memos))
	fileHTTP.RegisterRoutes(api, fileHTTP.New(srv.l, srv.files))

	if srv.plugins != nil {
		pluginHTTP.RegisterRoutes(api, pluginHTTP.New(srv.l, srv.plugins))
	} else {
		srv.l.Infof(ctx, "Plugin registry not configured, skipping plugin routes")
	}

	srv.l.Infof(ctx, "Domain routes registered under %s", APIPrefix)
}
