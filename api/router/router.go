package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	v1 "github.com/seallabs/lixi/api/v1"
	"github.com/seallabs/lixi/service/svc"
)

// NewRouter 初始化路由
func NewRouter(svcCtx *svc.ServerCtx) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	// the web frontend is served from a different origin during development
	r.Use(cors.Default())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := r.Group("/api/v1")
	{
		apiV1.POST("/claim", v1.PostClaim(svcCtx))
		apiV1.GET("/fortune", v1.GetFortune(svcCtx))
	}

	return r
}
