// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/app"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// maxBodyBytes bounds every decoded request body.
const maxBodyBytes = 1 << 20

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := decodeJSON(w, r, &credentials); err != nil {
		log.Err(err).Str("func", "*Handler.signup").Msg("Invalid JSON was passed")
		writeError(w, r, service.NewValidationError(errInvalidJSON))
		return
	}

	user, err := h.services.AuthService.Signup(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", user.UserID).Msg("user registered")
	_, _ = utils.WriteJSON(w, models.SignupResponse{Message: app.MsgUserCreated, User: user.Profile()}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := decodeJSON(w, r, &credentials); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("Invalid JSON was passed")
		writeError(w, r, service.NewValidationError(errInvalidJSON))
		return
	}

	user, token, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully logged in")

	http.SetCookie(w, h.cookies.session(token.SignedString))
	_, _ = utils.WriteJSON(w, models.LoginResponse{
		Message: app.MsgLoginSuccessful,
		User:    user.Profile(),
		Token:   token.SignedString,
	}, http.StatusOK)
}

// logout clears the session cookie. Tokens are stateless, so a copied token
// stays valid until it expires.
func (h *Handler) logout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, h.cookies.expired())
	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: app.MsgLoggedOut}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AuthService.CurrentUser(r.Context(), utils.GetPrincipalFromContext(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, user.Profile(), http.StatusOK)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
}
