package handler

import (
	"net/http"

	"github.com/osse101/DietDiary_Go/internal/logger"
	"github.com/osse101/DietDiary_Go/internal/user"
)

// RegisterUserRequest is the body of POST /user/register
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,max=150,excludesall=<>"`
	Email    string `json:"email" validate:"required,email"`
}

// HandleRegisterUser creates a diary owner
// @Summary Register user
// @Tags user
// @Accept json
// @Produce json
// @Param request body RegisterUserRequest true "User"
// @Success 201 {object} domain.User
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /user/register [post]
func HandleRegisterUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterUserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register user"); err != nil {
			return
		}

		u, err := svc.RegisterUser(r.Context(), user.RegisterInput{Username: req.Username, Email: req.Email})
		if err != nil {
			respondServiceError(w, r, "Register user", err)
			return
		}

		logger.FromContext(r.Context()).Info("User registered", "user_id", u.ID)
		respondJSON(w, http.StatusCreated, u)
	}
}

// HandleGetUserInfo looks a user up by username
// @Summary Get user
// @Tags user
// @Produce json
// @Param username query string true "Username"
// @Success 200 {object} domain.User
// @Failure 404 {object} ErrorResponse
// @Router /user/info [get]
func HandleGetUserInfo(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := GetQueryParam(r, w, paramUsername)
		if !ok {
			return
		}

		u, err := svc.GetUserByUsername(r.Context(), username)
		if err != nil {
			respondServiceError(w, r, "Get user", err)
			return
		}

		respondJSON(w, http.StatusOK, u)
	}
}
