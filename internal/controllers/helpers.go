package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/aryam-rgb/mall-rent-nexus/internal/dtos"
	"github.com/aryam-rgb/mall-rent-nexus/internal/middleware"
	"github.com/aryam-rgb/mall-rent-nexus/internal/models"
	"github.com/aryam-rgb/mall-rent-nexus/internal/utils"
)

var validate = validator.New()

// decodeAndValidate parses the JSON body into dst and runs struct
// validation, writing the error response itself on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Malformed JSON body", nil, err)
		return false
	}

	if err := validate.Struct(dst); err != nil {
		var details []dtos.ValidationErrorDetail
		if vErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range vErrs {
				details = append(details, dtos.ValidationErrorDetail{
					Field:   fe.Field(),
					Message: fe.Error(),
					Code:    fe.Tag(),
				})
			}
		}
		utils.RespondErrorWithCode(w, http.StatusUnprocessableEntity, utils.ErrCodeValidation, "Validation failed", details, err)
		return false
	}
	return true
}

// actorFromRequest returns the authenticated profile placed in the context
// by the auth middleware.
func actorFromRequest(w http.ResponseWriter, r *http.Request) (*models.Profile, bool) {
	p := middleware.ProfileFromContext(r.Context())
	if p == nil {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing profile in context", nil)
		return nil, false
	}
	return p, true
}

// pathID parses the {id} path variable.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid id in path", nil, err)
		return uuid.Nil, false
	}
	return id, true
}

func parseOptionalUUID(s *string) *uuid.UUID {
	if s == nil {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}
