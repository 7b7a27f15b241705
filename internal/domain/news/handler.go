package news

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"assovol/internal/domain/crud"
	"assovol/internal/pkg/response"
	"assovol/internal/storage"
)

type Service = crud.Service[News, *News]

func NewService(db *gorm.DB, store *storage.Storage) *Service {
	return crud.NewService[News, *News](
		crud.NewRepository[News](db),
		store,
		crud.Descriptor{
			Name:   "News",
			SortBy: "date DESC",
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
		crud.RespondError(c, err, "News not found", "Error fetching news")
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
		crud.RespondError(c, err, "News not found", "Error fetching news")
		return
	}
	response.JSON(c, http.StatusOK, item)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateNewsRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	item := &News{
		Title:    req.Title,
		Content:  req.Content,
		Author:   req.Author,
		Category: req.Category,
		// articles always enter the site as drafts
		Status: StatusDraft,
	}
	if req.Date != "" {
		date, err := crud.ParseDate(req.Date)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid date")
			return
		}
		item.Date = date
	}

	// the textual fallback reference shares the "image" key with the file
	// part; PostForm reads value parts only
	file, _ := c.FormFile("image")
	if err := h.service.Create(c.Request.Context(), item, file, c.PostForm("image"), nil); err != nil {
		crud.RespondError(c, err, "News not found", "Error creating news")
		return
	}

	response.JSON(c, http.StatusCreated, item)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := crud.ParseID(c)
	if !ok {
		return
	}

	var req UpdateNewsRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var date *time.Time
	if req.Date != nil {
		parsed, err := crud.ParseDate(*req.Date)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid date")
			return
		}
		date = &parsed
	}

	file, _ := c.FormFile("image")
	imageRef, hasImageRef := c.GetPostForm("image")
	item, err := h.service.Update(c.Request.Context(), id, file, func(n *News) {
		if req.Title != nil {
			n.Title = *req.Title
		}
		if req.Content != nil {
			n.Content = *req.Content
		}
		if date != nil {
			n.Date = *date
		}
		if req.Author != nil {
			n.Author = *req.Author
		}
		if req.Category != nil {
			n.Category = *req.Category
		}
		if req.Status != nil {
			n.Status = Status(*req.Status)
		}
		if hasImageRef {
			n.Image = imageRef
		}
	}, nil)
	if err != nil {
		crud.RespondError(c, err, "News not found", "Error updating news")
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
		crud.RespondError(c, err, "News not found", "Error deleting news")
		return
	}

	c.Status(http.StatusNoContent)
}
