package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/aryam-rgb/mall-rent-nexus/internal/dtos"
	"github.com/aryam-rgb/mall-rent-nexus/internal/models"
	"github.com/aryam-rgb/mall-rent-nexus/internal/services"
	"github.com/aryam-rgb/mall-rent-nexus/internal/utils"
)

type LeaseController struct {
	leases services.LeaseService
}

func NewLeaseController(leases services.LeaseService) *LeaseController {
	return &LeaseController{leases: leases}
}

// POST /api/v1/leases
func (c *LeaseController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	var req dtos.CreateLeaseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid property_id", nil, err)
		return
	}
	tenantID, err := uuid.Parse(req.TenantID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid tenant_id", nil, err)
		return
	}

	view, err := c.leases.Create(r.Context(), actor, &models.Lease{
		PropertyID:  propertyID,
		TenantID:    tenantID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		MonthlyRent: req.MonthlyRent,
		Deposit:     req.Deposit,
		Currency:    models.CurrencyType(req.Currency),
		Terms:       req.Terms,
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, view)
}

// GET /api/v1/leases
func (c *LeaseController) ListHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	views, err := c.leases.List(r.Context(), actor)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, views)
}

// GET /api/v1/leases/{id}
func (c *LeaseController) GetHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	view, err := c.leases.Get(r.Context(), actor, id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, view)
}

// DELETE /api/v1/leases/{id}
func (c *LeaseController) TerminateHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.TerminateLeaseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := c.leases.Terminate(r.Context(), actor, id, req.Reason); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}

// GET /api/v1/properties/{id}/lease-history
func (c *LeaseController) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	history, err := c.leases.History(r.Context(), actor, id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, history)
}

// POST /api/v1/lease-renewals
func (c *LeaseController) RequestRenewalHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	var req dtos.RenewalRequestRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	leaseID, err := uuid.Parse(req.LeaseID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid lease_id", nil, err)
		return
	}

	renewal := &models.LeaseRenewalRequest{
		LeaseID:          leaseID,
		RequestedEndDate: req.RequestedEndDate,
		RequestedRent:    req.RequestedRent,
		RequestMessage:   req.RequestMessage,
	}
	if err := c.leases.RequestRenewal(r.Context(), actor, renewal); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, renewal)
}

// GET /api/v1/lease-renewals
func (c *LeaseController) ListRenewalsHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	renewals, err := c.leases.ListRenewals(r.Context(), actor)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, renewals)
}

// POST /api/v1/lease-renewals/{id}/respond
func (c *LeaseController) RespondToRenewalHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.RenewalResponseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := c.leases.RespondToRenewal(r.Context(), actor, id, req.Approve, req.ResponseMessage); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "responded"})
}
