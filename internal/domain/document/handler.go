package document

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"assovol/internal/domain/crud"
	"assovol/internal/pkg/response"
	"assovol/internal/storage"
)

type Service = crud.Service[Document, *Document]

func NewService(db *gorm.DB, store *storage.Storage) *Service {
	return crud.NewService[Document, *Document](
		crud.NewRepository[Document](db),
		store,
		crud.Descriptor{
			Name:          "Document",
			RequireUpload: true,
			SortBy:        "created_at DESC",
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
		crud.RespondError(c, err, "Document not found", "Error fetching documents")
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
		crud.RespondError(c, err, "Document not found", "Error fetching document")
		return
	}
	response.JSON(c, http.StatusOK, item)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateDocumentRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	item := &Document{
		Title:    req.Title,
		Category: req.Category,
	}

	file, _ := c.FormFile("file")
	if err := h.service.Create(c.Request.Context(), item, file, "", setStoredSize); err != nil {
		crud.RespondError(c, err, "Document not found", "Error creating document")
		return
	}

	response.JSON(c, http.StatusCreated, item)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := crud.ParseID(c)
	if !ok {
		return
	}

	var req UpdateDocumentRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	file, _ := c.FormFile("file")
	item, err := h.service.Update(c.Request.Context(), id, file, func(d *Document) {
		if req.Title != nil {
			d.Title = *req.Title
		}
		if req.Category != nil {
			d.Category = *req.Category
		}
	}, setStoredSize)
	if err != nil {
		crud.RespondError(c, err, "Document not found", "Error updating document")
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
		crud.RespondError(c, err, "Document not found", "Error deleting document")
		return
	}

	c.Status(http.StatusNoContent)
}
