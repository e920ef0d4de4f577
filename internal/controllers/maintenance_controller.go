package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/aryam-rgb/mall-rent-nexus/internal/dtos"
	"github.com/aryam-rgb/mall-rent-nexus/internal/models"
	"github.com/aryam-rgb/mall-rent-nexus/internal/services"
	"github.com/aryam-rgb/mall-rent-nexus/internal/utils"
)

type MaintenanceController struct {
	maintenance services.MaintenanceService
}

func NewMaintenanceController(maintenance services.MaintenanceService) *MaintenanceController {
	return &MaintenanceController{maintenance: maintenance}
}

// POST /api/v1/maintenance-requests
func (c *MaintenanceController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	var req dtos.CreateMaintenanceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid property_id", nil, err)
		return
	}

	m := &models.MaintenanceRequest{
		PropertyID:  propertyID,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if req.Priority != nil {
		m.Priority = models.MaintenancePriorityType(*req.Priority)
	}
	if err := c.maintenance.Create(r.Context(), actor, m); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, m)
}

// GET /api/v1/maintenance-requests
func (c *MaintenanceController) ListHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	requests, err := c.maintenance.List(r.Context(), actor)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, requests)
}

// GET /api/v1/maintenance-requests/{id}
func (c *MaintenanceController) GetHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	m, err := c.maintenance.Get(r.Context(), actor, id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, m)
}

// POST /api/v1/maintenance-requests/{id}/transition
func (c *MaintenanceController) TransitionHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.TransitionMaintenanceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	m, err := c.maintenance.Transition(r.Context(), actor, id, models.MaintenanceStatusType(req.Status), req.AssignedTo)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, m)
}
