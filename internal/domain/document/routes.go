package document

import "github.com/gin-gonic/gin"

func RegisterRoutes(public, protected *gin.RouterGroup, h *Handler) {
	public.GET("/documents", h.List)
	public.GET("/documents/:id", h.GetByID)

	protected.POST("/documents", h.Create)
	protected.PUT("/documents/:id", h.Update)
	protected.DELETE("/documents/:id", h.Delete)
}
