// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/qr-facil/internal/logger"
	"github.com/MKhiriev/qr-facil/internal/service"
	"github.com/MKhiriev/qr-facil/internal/utils"
	"github.com/MKhiriev/qr-facil/models"
	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

type deleteAllResponse struct {
	Deleted int64 `json:"deleted"`
}

func (h *Handler) upsertHistory(w http.ResponseWriter, r *http.Request) {
	var record models.CloudHistoryRecord
	if err := decodeRecord(w, r, &record, &record.UserScope, &record.ClientSideID); err != nil {
		writeServiceError(w, r, "*Handler.upsertHistory", err)
		return
	}

	if err := h.services.MirrorService.UpsertHistory(r.Context(), record); err != nil {
		writeServiceError(w, r, "*Handler.upsertHistory", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteHistory(w http.ResponseWriter, r *http.Request) {
	scope, err := scopeFromRequest(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.deleteHistory", err)
		return
	}
	clientID, err := pathParam(r, "clientID")
	if err != nil {
		writeServiceError(w, r, "*Handler.deleteHistory", err)
		return
	}

	if err = h.services.MirrorService.DeleteHistory(r.Context(), scope, clientID); err != nil {
		writeServiceError(w, r, "*Handler.deleteHistory", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteAllHistory(w http.ResponseWriter, r *http.Request) {
	scope, err := scopeFromRequest(r)
	if err != nil {
		writeServiceError(w, r, "*Handler.deleteAllHistory", err)
		return
	}

	deleted, err := h.services.MirrorService.DeleteAllHistory(r.Context(), scope)
	if err != nil {
		writeServiceError(w, r, "*Handler.deleteAllHistory", err)
		return
	}

	_, _ = utils.WriteJSON(w, deleteAllResponse{Deleted: deleted}, http.StatusOK)
}

func (h *Handler) saveQRCode(w http.ResponseWriter, r *http.Request) {
	var code models.CloudQRCode
	if err := decodeRecord(w, r, &code, &code.UserScope, &code.ClientSideID); err != nil {
		writeServiceError(w, r, "*Handler.saveQRCode", err)
		return
	}

	if err := h.services.MirrorService.SaveQRCode(r.Context(), code); err != nil {
		writeServiceError(w, r, "*Handler.saveQRCode", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) updatePremium(w http.ResponseWriter, r *http.Request) {
	var profile models.CloudProfile
	if err := decodeRecord(w, r, &profile, &profile.UserScope, nil); err != nil {
		writeServiceError(w, r, "*Handler.updatePremium", err)
		return
	}

	if err := h.services.MirrorService.UpdatePremium(r.Context(), profile); err != nil {
		writeServiceError(w, r, "*Handler.updatePremium", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeRecord reads the JSON body into v and reconciles its scope and
// client id with the path. Empty body fields are filled from the path;
// conflicting ones are rejected.
func decodeRecord(w http.ResponseWriter, r *http.Request, v any, scope, clientID *string) error {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	pathScope, err := scopeFromRequest(r)
	if err != nil {
		return err
	}
	if err = bind(scope, pathScope, service.ErrScopeMismatch); err != nil {
		return err
	}

	if clientID == nil {
		return nil
	}
	pathID, err := pathParam(r, "clientID")
	if err != nil {
		return err
	}
	return bind(clientID, pathID, ErrClientIDMismatch)
}

func bind(field *string, fromPath string, mismatch error) error {
	switch *field {
	case "":
		*field = fromPath
	case fromPath:
	default:
		return mismatch
	}
	return nil
}

func pathParam(r *http.Request, name string) (string, error) {
	v, err := url.PathUnescape(chi.URLParam(r, name))
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrInvalidPathParam, name, err)
	}
	return v, nil
}

// writeServiceError maps err to a status code and writes the error body.
// Internal failures are logged and answered without details.
func writeServiceError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", status).Msg("request failed")
		utils.WriteError(w, r, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	utils.WriteError(w, r, err.Error(), status)
}
