package project

import "github.com/gin-gonic/gin"

func RegisterRoutes(public, protected *gin.RouterGroup, h *Handler) {
	public.GET("/projects", h.List)
	public.GET("/projects/:id", h.GetByID)

	protected.POST("/projects", h.Create)
	protected.PUT("/projects/:id", h.Update)
	protected.DELETE("/projects/:id", h.Delete)
}
