package controllers

import (
	"net/http"

	"github.com/aryam-rgb/mall-rent-nexus/internal/dtos"
	"github.com/aryam-rgb/mall-rent-nexus/internal/models"
	"github.com/aryam-rgb/mall-rent-nexus/internal/services"
	"github.com/aryam-rgb/mall-rent-nexus/internal/utils"
)

type PropertyController struct {
	properties services.PropertyService
}

func NewPropertyController(properties services.PropertyService) *PropertyController {
	return &PropertyController{properties: properties}
}

// POST /api/v1/properties
func (c *PropertyController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	var req dtos.CreatePropertyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p := &models.Property{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		RentAmount:  req.RentAmount,
		Currency:    models.CurrencyType(req.Currency),
	}
	if req.UnitNumber != nil {
		p.UnitNumber = *req.UnitNumber
	}
	if req.SizeSqft != nil {
		p.SizeSqft = *req.SizeSqft
	}
	if err := c.properties.Create(r.Context(), actor, p); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, p)
}

// GET /api/v1/properties
func (c *PropertyController) ListHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	props, err := c.properties.List(r.Context(), actor)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, props)
}

// GET /api/v1/properties/{id}
func (c *PropertyController) GetHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	p, err := c.properties.Get(r.Context(), actor, id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, p)
}

// PATCH /api/v1/properties/{id}
func (c *PropertyController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.UpdatePropertyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := c.properties.Update(r.Context(), actor, id, func(p *models.Property) error {
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Location != nil {
			p.Location = *req.Location
		}
		if req.UnitNumber != nil {
			p.UnitNumber = *req.UnitNumber
		}
		if req.SizeSqft != nil {
			p.SizeSqft = *req.SizeSqft
		}
		if req.Description != nil {
			p.Description = req.Description
		}
		if req.ImageURL != nil {
			p.ImageURL = req.ImageURL
		}
		if req.RentAmount != nil {
			p.RentAmount = *req.RentAmount
		}
		if req.Currency != nil {
			p.Currency = models.CurrencyType(*req.Currency)
		}
		if req.Status != nil {
			p.Status = models.PropertyStatusType(*req.Status)
		}
		return nil
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// DELETE /api/v1/properties/{id}
func (c *PropertyController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := c.properties.Delete(r.Context(), actor, id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusNoContent, nil)
}
