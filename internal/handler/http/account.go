// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-account-service/internal/logger"
	"github.com/MKhiriev/go-account-service/internal/service"
	"github.com/MKhiriev/go-account-service/internal/utils"
	"github.com/MKhiriev/go-account-service/models"
	"github.com/go-chi/chi/v5"
)

// maxProfilePictureBytes caps the size of an uploaded profile picture.
const maxProfilePictureBytes = 5 << 20

// pictureTypeExtensions maps the accepted image content types to the file
// extension stored pictures are saved under.
var pictureTypeExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.services.AccountService.GetProfile(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile retrieval failed")
		respondError(w, err)
		return
	}

	writeSuccess(w, "", models.UserData{User: user}, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.AccountService.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		respondError(w, err)
		return
	}

	writeSuccess(w, "", models.UsersData{Users: users}, http.StatusOK)
}

func (h *Handler) getUserByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid user ID in URL")
		writeError(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	user, err := h.services.AccountService.GetUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user retrieval failed")
		respondError(w, err)
		return
	}

	writeSuccess(w, "", models.UserData{User: user}, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	// the body carries at most one picture plus small form fields
	r.Body = http.MaxBytesReader(w, r.Body, maxProfilePictureBytes+(1<<20))
	if err := r.ParseMultipartForm(maxProfilePictureBytes); err != nil {
		log.Err(err).Msg("invalid multipart form")
		writeError(w, "invalid multipart form or picture too large", http.StatusBadRequest)
		return
	}

	update := service.ProfileUpdate{UserID: userID}

	if username := r.FormValue("username"); username != "" {
		update.Username = &username
	}

	file, header, err := r.FormFile("profilePicture")
	switch {
	case err == nil:
		defer file.Close()

		if header.Size > maxProfilePictureBytes {
			writeError(w, "profile picture is too large", http.StatusBadRequest)
			return
		}

		ext, ok := pictureExtension(header)
		if !ok {
			log.Error().Str("filename", header.Filename).Msg("unsupported profile picture type")
			writeError(w, "unsupported profile picture type", http.StatusBadRequest)
			return
		}

		update.Picture = file
		update.PictureFileName = h.uuidGenerator.Generate() + ext
	case errors.Is(err, http.ErrMissingFile):
		// username-only update
	default:
		log.Err(err).Msg("invalid profile picture upload")
		writeError(w, "invalid profile picture upload", http.StatusBadRequest)
		return
	}

	updated, err := h.services.AccountService.UpdateProfile(ctx, update)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile update failed")
		respondError(w, err)
		return
	}

	writeSuccess(w, "profile updated successfully", models.UserData{User: updated}, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var request models.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.AccountService.ChangePassword(ctx, userID, request.CurrentPassword, request.NewPassword); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("password change failed")
		respondError(w, err)
		return
	}

	writeSuccess(w, "password changed successfully", nil, http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.services.AccountService.DeleteAccount(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("account deletion failed")
		respondError(w, err)
		return
	}

	writeSuccess(w, "account deleted successfully", nil, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, "service is running", models.HealthData{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// pictureExtension resolves the stored file extension of an uploaded picture.
// The uploaded file name is checked first; the part's content type is the
// fallback for clients that upload without an extension.
func pictureExtension(header *multipart.FileHeader) (string, bool) {
	switch ext := strings.ToLower(filepath.Ext(header.Filename)); ext {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return ext, true
	}

	if ext, ok := pictureTypeExtensions[header.Header.Get("Content-Type")]; ok {
		return ext, true
	}

	return "", false
}
