package router

import (
	"net/http"

	"github.com/countydirectory/internal/handler"
	"github.com/countydirectory/internal/render"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(handler.RequestID(), handler.RequestLogger(log), handler.Recovery(log))

	// 页面模板内嵌在 render 包中
	r.SetHTMLTemplate(render.Templates())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	r.GET("/pages/:slug", api.ShowPage)

	public := r.Group("/api")
	{
		public.GET("/pages", api.ListPublishedPages)
		public.GET("/pages/:slug", api.GetPublishedPage)

		public.GET("/towns", api.ListTowns)
		public.GET("/towns/:id", api.GetTown)
		public.GET("/schools", api.ListSchools)
		public.GET("/sports-teams", api.ListSportsTeams)
		public.GET("/food-trucks", api.ListFoodTrucks)
	}

	// 后台页面编辑接口
	admin := r.Group("/admin/api")
	{
		admin.GET("/pages", api.ListAllPages)
		admin.POST("/pages/validate", api.ValidatePage)
		admin.POST("/pages", api.CreatePage)
		admin.PUT("/pages/:slug", api.ReplacePage)
		admin.PATCH("/pages/:slug/publish", api.PublishPage)
		admin.DELETE("/pages/:slug", api.DeletePage)
	}

	return r
}
