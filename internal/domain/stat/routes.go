package stat

import "github.com/gin-gonic/gin"

func RegisterRoutes(public, protected *gin.RouterGroup, h *Handler) {
	public.GET("/stats", h.List)
	public.GET("/stats/:id", h.GetByID)

	protected.POST("/stats", h.Create)
	protected.PUT("/stats/:id", h.Update)
	protected.DELETE("/stats/:id", h.Delete)
}
