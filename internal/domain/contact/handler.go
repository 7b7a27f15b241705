package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"assovol/internal/domain/crud"
	"assovol/internal/pkg/response"
	"assovol/internal/storage"
)

type Service = crud.Service[Contact, *Contact]

func NewService(db *gorm.DB, store *storage.Storage) *Service {
	return crud.NewService[Contact, *Contact](
		crud.NewRepository[Contact](db),
		store,
		crud.Descriptor{
			Name:   "Contact request",
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

// Submit is the only public mutation in the API: anyone can send a contact
// request; it always enters the queue as pending.
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	item := &Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Status:  StatusPending,
	}

	if err := h.service.Create(c.Request.Context(), item, nil, "", nil); err != nil {
		crud.RespondError(c, err, "Contact request not found", "Error submitting contact request")
		return
	}

	response.JSON(c, http.StatusCreated, gin.H{
		"message": "Contact request submitted successfully",
		"contact": item,
	})
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		crud.RespondError(c, err, "Contact request not found", "Error fetching contact requests")
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
		crud.RespondError(c, err, "Contact request not found", "Error fetching contact request")
		return
	}
	response.JSON(c, http.StatusOK, item)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := crud.ParseID(c)
	if !ok {
		return
	}

	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.service.Update(c.Request.Context(), id, nil, func(ct *Contact) {
		if req.Status != nil {
			ct.Status = Status(*req.Status)
		}
	}, nil)
	if err != nil {
		crud.RespondError(c, err, "Contact request not found", "Error updating contact request")
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
		crud.RespondError(c, err, "Contact request not found", "Error deleting contact request")
		return
	}

	c.Status(http.StatusNoContent)
}
