package news

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts reads on the public group and mutations on the
// JWT-protected group.
func RegisterRoutes(public, protected *gin.RouterGroup, h *Handler) {
	public.GET("/news", h.List)
	public.GET("/news/:id", h.GetByID)

	protected.POST("/news", h.Create)
	protected.PUT("/news/:id", h.Update)
	protected.DELETE("/news/:id", h.Delete)
}
