package contact

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the public submission endpoint and the protected
// admin triage endpoints.
func RegisterRoutes(public, protected *gin.RouterGroup, h *Handler) {
	public.POST("/contacts", h.Submit)

	protected.GET("/contacts", h.List)
	protected.GET("/contacts/:id", h.GetByID)
	protected.PUT("/contacts/:id", h.Update)
	protected.DELETE("/contacts/:id", h.Delete)
}
