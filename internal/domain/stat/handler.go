package stat

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"assovol/internal/domain/crud"
	"assovol/internal/pkg/response"
	"assovol/internal/storage"
)

type Service = crud.Service[Stat, *Stat]

func NewService(db *gorm.DB, store *storage.Storage) *Service {
	return crud.NewService[Stat, *Stat](
		crud.NewRepository[Stat](db),
		store,
		crud.Descriptor{
			Name:   "Stat",
			SortBy: "created_at DESC",
		},
	)
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		crud.RespondError(c, err, "Stat not found", "Error fetching stats")
		return
	}
	response.JSON(c, http.StatusOK, items)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := crud.ParseID(c)
	if !ok {
		return
	}

	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		crud.RespondError(c, err, "Stat not found", "Error fetching stat")
		return
	}
	response.JSON(c, http.StatusOK, item)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateStatRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	item := &Stat{
		Title:       req.Title,
		Value:       req.Value,
		Description: req.Description,
	}

	// image is optional for stats
	file, _ := c.FormFile("image")
	if err := h.service.Create(c.Request.Context(), item, file, c.PostForm("image"), nil); err != nil {
		crud.RespondError(c, err, "Stat not found", "Error creating stat")
		return
	}

	response.JSON(c, http.StatusCreated, item)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := crud.ParseID(c)
	if !ok {
		return
	}

	var req UpdateStatRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	file, _ := c.FormFile("image")
	imageRef, hasImageRef := c.GetPostForm("image")
	item, err := h.service.Update(c.Request.Context(), id, file, func(s *Stat) {
		if req.Title != nil {
			s.Title = *req.Title
		}
		if req.Value != nil {
			s.Value = *req.Value
		}
		if req.Description != nil {
			s.Description = *req.Description
		}
		if hasImageRef {
			s.Image = imageRef
		}
	}, nil)
	if err != nil {
		crud.RespondError(c, err, "Stat not found", "Error updating stat")
		return
	}

	response.JSON(c, http.StatusOK, item)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := crud.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		crud.RespondError(c, err, "Stat not found", "Error deleting stat")
		return
	}

	c.Status(http.StatusNoContent)
}
