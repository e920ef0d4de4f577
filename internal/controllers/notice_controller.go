package controllers

import (
	"net/http"

	"github.com/aryam-rgb/mall-rent-nexus/internal/dtos"
	"github.com/aryam-rgb/mall-rent-nexus/internal/models"
	"github.com/aryam-rgb/mall-rent-nexus/internal/services"
	"github.com/aryam-rgb/mall-rent-nexus/internal/utils"
)

type NoticeController struct {
	notices services.NoticeService
}

func NewNoticeController(notices services.NoticeService) *NoticeController {
	return &NoticeController{notices: notices}
}

// POST /api/v1/notices
func (c *NoticeController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	var req dtos.CreateNoticeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	view, err := c.notices.Create(r.Context(), actor, &models.Notice{
		Title:         req.Title,
		Content:       req.Content,
		RecipientType: models.RecipientTypeType(req.RecipientType),
		RecipientID:   parseOptionalUUID(req.RecipientID),
		PropertyID:    parseOptionalUUID(req.PropertyID),
		IsUrgent:      req.IsUrgent,
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, view)
}

// GET /api/v1/notices
func (c *NoticeController) ListHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	views, err := c.notices.List(r.Context(), actor)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, views)
}

// GET /api/v1/notices/{id}
func (c *NoticeController) GetHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	view, err := c.notices.Get(r.Context(), actor, id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, view)
}

// POST /api/v1/notices/{id}/read
func (c *NoticeController) MarkReadHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := c.notices.MarkRead(r.Context(), actor, id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "read"})
}

// DELETE /api/v1/notices/{id}
func (c *NoticeController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := c.notices.Delete(r.Context(), actor, id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}
