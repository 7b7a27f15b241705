package project

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"assovol/internal/domain/crud"
	"assovol/internal/pkg/response"
	"assovol/internal/storage"
)

type Service = crud.Service[Project, *Project]

func NewService(db *gorm.DB, store *storage.Storage) *Service {
	return crud.NewService[Project, *Project](
		crud.NewRepository[Project](db),
		store,
		crud.Descriptor{
			Name:   "Project",
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
		crud.RespondError(c, err, "Project not found", "Error fetching projects")
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
		crud.RespondError(c, err, "Project not found", "Error fetching project")
		return
	}
	response.JSON(c, http.StatusOK, item)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	item := &Project{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	}

	var err error
	if item.StartDate, item.EndDate, err = parseDates(req.StartDate, req.EndDate); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid date")
		return
	}

	file, _ := c.FormFile("image")
	if err := h.service.Create(c.Request.Context(), item, file, c.PostForm("image"), nil); err != nil {
		crud.RespondError(c, err, "Project not found", "Error creating project")
		return
	}

	response.JSON(c, http.StatusCreated, item)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := crud.ParseID(c)
	if !ok {
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	start, err := parseOptionalDate(req.StartDate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid date")
		return
	}
	end, err := parseOptionalDate(req.EndDate)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid date")
		return
	}

	file, _ := c.FormFile("image")
	imageRef, hasImageRef := c.GetPostForm("image")
	item, err := h.service.Update(c.Request.Context(), id, file, func(p *Project) {
		if req.Title != nil {
			p.Title = *req.Title
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if start != nil {
			p.StartDate = *start
		}
		if end != nil {
			p.EndDate = *end
		}
		if req.Category != nil {
			p.Category = *req.Category
		}
		if hasImageRef {
			p.Image = imageRef
		}
	}, nil)
	if err != nil {
		crud.RespondError(c, err, "Project not found", "Error updating project")
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
		crud.RespondError(c, err, "Project not found", "Error deleting project")
		return
	}

	c.Status(http.StatusNoContent)
}

func parseDates(start, end string) (time.Time, time.Time, error) {
	var s, e time.Time
	var err error
	if start != "" {
		if s, err = crud.ParseDate(start); err != nil {
			return s, e, err
		}
	}
	if end != "" {
		if e, err = crud.ParseDate(end); err != nil {
			return s, e, err
		}
	}
	return s, e, nil
}

func parseOptionalDate(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := crud.ParseDate(*raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
