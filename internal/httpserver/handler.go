package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestLog())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	agent := srv.gin.Group("/agent", srv.mw.RateLimit())
	agent.POST("", srv.agentHandler.Process)

	if srv.knowledgeHandler != nil {
		agent.POST("/question", srv.knowledgeHandler.Question)
	}
	if srv.imageHandler != nil {
		agent.POST("/image", srv.imageHandler.Process)
	}
	if srv.reportHandler != nil {
		agent.POST("/report", srv.reportHandler.Process)
	}
	if srv.summarizeHandler != nil {
		agent.POST("/summarize", srv.summarizeHandler.Summarize)
	}

	srv.l.Infof(ctx, "agent routes registered under /agent")
}
