package http

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"plume.ink/plume-blog-server/app/interfaces/http/middleware"
	"plume.ink/plume-blog-server/app/interfaces/http/responses"
	v1 "plume.ink/plume-blog-server/app/interfaces/http/routes/v1"
	"plume.ink/plume-blog-server/app/utils/logger"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "plume.ink/plume-blog-server/docs"
)

type HttpServer struct {
	engine  *gin.Engine
	v1Route *v1.V1Route
}

func (s *HttpServer) bindSwagger() {
	g := s.engine.Group("/")

	g.GET("/api/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func NewHttpServer(v1Route *v1.V1Route) *HttpServer {
	if os.Getenv("local_dev") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	server := HttpServer{
		gin.New(),
		v1Route,
	}
	server.engine.Use(middleware.CORS())
	server.engine.Use(middleware.LoggerMiddleware(logger.Logger))
	server.engine.Use(middleware.TransactionMiddleware())
	// Readers get an error page, never a stack trace.
	server.engine.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.GetLogger().Errorf("panic recovered: %v", recovered)
		responses.RenderServerError(c)
	}))
	server.engine.NoRoute(func(c *gin.Context) {
		responses.RenderNotFound(c)
	})
	server.engine.GET("/healthcheck", func(c *gin.Context) {
		c.JSON(200, "ok")
	})
	server.bindSwagger()
	return &server
}

func (httpServer *HttpServer) Run() error {
	port := 8080
	root := httpServer.engine.Group("/")
	httpServer.v1Route.RegisterRouter(root)
	if err := httpServer.engine.Run(fmt.Sprintf(":%d", port)); err != nil {
		return err
	}
	return nil
}
