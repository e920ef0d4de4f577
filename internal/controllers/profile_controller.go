package controllers

import (
	"net/http"

	"github.com/aryam-rgb/mall-rent-nexus/internal/dtos"
	"github.com/aryam-rgb/mall-rent-nexus/internal/models"
	"github.com/aryam-rgb/mall-rent-nexus/internal/services"
	"github.com/aryam-rgb/mall-rent-nexus/internal/utils"
)

type ProfileController struct {
	profiles services.ProfileService
}

func NewProfileController(profiles services.ProfileService) *ProfileController {
	return &ProfileController{profiles: profiles}
}

// GET /api/v1/profiles/me
func (c *ProfileController) MeHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, actor)
}

// PATCH /api/v1/profiles/me
func (c *ProfileController) UpdateMeHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	var req dtos.UpdateProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := c.profiles.UpdateOwn(r.Context(), actor, func(p *models.Profile) error {
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.Phone != nil {
			p.Phone = req.Phone
		}
		if req.AvatarURL != nil {
			p.AvatarURL = req.AvatarURL
		}
		return nil
	})
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}

// POST /api/v1/profiles
func (c *ProfileController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	var req dtos.CreateProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	p := &models.Profile{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Role:      models.RoleType(req.Role),
		AvatarURL: req.AvatarURL,
	}
	if err := c.profiles.Create(r.Context(), actor, p); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, p)
}

// GET /api/v1/profiles
func (c *ProfileController) ListHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}

	profiles, err := c.profiles.List(r.Context(), actor)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, profiles)
}

// GET /api/v1/profiles/{id}
func (c *ProfileController) GetHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	p, err := c.profiles.Get(r.Context(), actor, id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, p)
}

// PUT /api/v1/profiles/{id}/role
func (c *ProfileController) ChangeRoleHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req dtos.ChangeRoleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := c.profiles.ChangeRole(r.Context(), actor, id, models.RoleType(req.Role))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}
