package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/aryam-rgb/mall-rent-nexus/internal/dtos"
	"github.com/aryam-rgb/mall-rent-nexus/internal/models"
	"github.com/aryam-rgb/mall-rent-nexus/internal/services"
	"github.com/aryam-rgb/mall-rent-nexus/internal/utils"
)

type PaymentController struct {
	payments services.PaymentService
}

func NewPaymentController(payments services.PaymentService) *PaymentController {
	return &PaymentController{payments: payments}
}

// POST /api/v1/payments
func (c *PaymentController) RecordHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	var req dtos.RecordPaymentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	leaseID, err := uuid.Parse(req.LeaseID)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid lease_id", nil, err)
		return
	}

	view, err := c.payments.Record(r.Context(), actor, &models.Payment{
		LeaseID:         leaseID,
		Amount:          req.Amount,
		Currency:        models.CurrencyType(req.Currency),
		DueDate:         req.DueDate,
		PaymentMethodID: parseOptionalUUID(req.PaymentMethodID),
		Notes:           req.Notes,
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, view)
}

// GET /api/v1/payments
func (c *PaymentController) ListHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	views, err := c.payments.List(r.Context(), actor)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, views)
}

// GET /api/v1/payments/{id}
func (c *PaymentController) GetHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	view, err := c.payments.Get(r.Context(), actor, id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, view)
}

// POST /api/v1/payments/{id}/confirm
func (c *PaymentController) ConfirmHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.ConfirmPaymentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	view, err := c.payments.Confirm(r.Context(), actor, id, req.AmountReceived, parseOptionalUUID(req.PaymentMethodID), req.Reference)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, view)
}

// POST /api/v1/payment-uploads
func (c *PaymentController) SubmitProofHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	var req dtos.SubmitPaymentProofRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	upload := &models.PaymentUpload{
		PaymentID:    parseOptionalUUID(req.PaymentID),
		PaymentMonth: req.PaymentMonth,
		UploadType:   req.UploadType,
		UploadURL:    req.UploadURL,
		Reference:    req.Reference,
		Notes:        req.Notes,
	}
	if err := c.payments.SubmitProof(r.Context(), actor, upload); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, upload)
}

// GET /api/v1/payment-uploads
func (c *PaymentController) ListProofsHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	uploads, err := c.payments.ListProofs(r.Context(), actor)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, uploads)
}

// POST /api/v1/payment-uploads/{id}/verify
func (c *PaymentController) VerifyProofHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := c.payments.VerifyProof(r.Context(), actor, id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "verified"})
}

// GET /api/v1/payment-methods
func (c *PaymentController) ListMethodsHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	methods, err := c.payments.ListMethods(r.Context(), actor)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, methods)
}

// POST /api/v1/payment-methods
func (c *PaymentController) SaveMethodHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	var req dtos.SavePaymentMethodRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	m := &models.PaymentMethod{
		Name:     req.Name,
		Type:     req.Type,
		Details:  req.Details,
		IsActive: req.IsActive,
	}
	if id := parseOptionalUUID(req.ID); id != nil {
		m.ID = *id
	}
	if err := c.payments.SaveMethod(r.Context(), actor, m); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, m)
}
