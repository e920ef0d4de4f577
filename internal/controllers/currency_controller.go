package controllers

import (
	"net/http"

	"github.com/aryam-rgb/mall-rent-nexus/internal/dtos"
	"github.com/aryam-rgb/mall-rent-nexus/internal/models"
	"github.com/aryam-rgb/mall-rent-nexus/internal/services"
	"github.com/aryam-rgb/mall-rent-nexus/internal/utils"
)

type CurrencyController struct {
	currency services.CurrencyService
}

func NewCurrencyController(currency services.CurrencyService) *CurrencyController {
	return &CurrencyController{currency: currency}
}

// GET /api/v1/currency/settings
func (c *CurrencyController) GetSettingsHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromRequest(w, r); !ok {
		return
	}

	settings, err := c.currency.GetSettings(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, settings)
}

// POST /api/v1/currency/convert
func (c *CurrencyController) ConvertHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := actorFromRequest(w, r); !ok {
		return
	}
	var req dtos.ConvertCurrencyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := c.currency.Convert(r.Context(), req.Amount, models.CurrencyType(req.From), models.CurrencyType(req.To))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, res)
}

// PUT /api/v1/currency/rate
func (c *CurrencyController) UpdateRateHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateExchangeRateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	settings, err := c.currency.UpdateRate(r.Context(), actor, req.Rate)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, settings)
}
