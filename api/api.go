package api

import (
	"context"
	"database/sql"
	"fmt"
	"networthdash/internal/logger"
	"networthdash/internal/repository"
	l3_service "networthdash/internal/service/l3"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	Db                      *sql.DB
	PortfolioHistoryService l3_service.PortfolioHistoryService
	AccountStore            repository.AccountStore
	JwtSecret               string
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to networthdash"})
	})
	router.POST("/portfolioHistory", m.portfolioHistory)
	router.GET("/accounts", m.accounts)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	logger.Error(err)
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.Error(err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// requestContext hangs a request-scoped logger off the context so the
// service layers can pick it up with logger.FromContext.
func requestContext(c *gin.Context) context.Context {
	log := logger.New().With("route", c.Request.URL.Path)
	return context.WithValue(c.Request.Context(), logger.ContextKey, log)
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	start := time.Now().UTC()

	ctx.Next()

	logger.Info("%s %s -> %d (%dms)",
		ctx.Request.Method,
		ctx.Request.URL.Path,
		ctx.Writer.Status(),
		time.Since(start).Milliseconds(),
	)
}
