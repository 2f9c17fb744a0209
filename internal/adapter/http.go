// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/qr-facil/internal/config"
	"github.com/MKhiriev/qr-facil/internal/logger"
	"github.com/MKhiriev/qr-facil/internal/utils"
	"github.com/MKhiriev/qr-facil/models"
)

const (
	healthPath      = "/api/health"
	historyPath     = "/api/users/{scope}/history"
	historyItemPath = "/api/users/{scope}/history/{clientID}"
	qrCodePath      = "/api/users/{scope}/qrcodes/{clientID}"
	premiumPath     = "/api/users/{scope}/profile/premium"
)

type httpRemoteStore struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewRemoteStore constructs the [RemoteStore] described by cfg. An empty
// cfg.HTTPAddress yields an offline store whose calls all fail with
// [ErrOffline]; mutations then stay pending in the outbox.
//
// Returns an error if cfg.HTTPAddress cannot be parsed as a valid URL.
func NewRemoteStore(cfg config.ClientAdapter, logger *logger.Logger) (RemoteStore, error) {
	if strings.TrimSpace(cfg.HTTPAddress) == "" {
		logger.Info().Str("func", "NewRemoteStore").Msg("no remote store configured, working offline")
		return offlineRemoteStore{}, nil
	}

	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpRemoteStore{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Ping implements [RemoteStore] with GET /api/health.
func (h *httpRemoteStore) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get(healthPath)
	if err != nil {
		return fmt.Errorf("%w: ping request: %w", ErrUnavailable, err)
	}

	return mapHTTPError(resp)
}

// UpsertHistory implements [RemoteStore] with
// PUT /api/users/{scope}/history/{clientID}.
func (h *httpRemoteStore) UpsertHistory(ctx context.Context, record models.CloudHistoryRecord) error {
	resp, err := h.request(ctx, record.UserScope).
		SetPathParam("clientID", record.ClientSideID).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		Put(historyItemPath)
	if err != nil {
		return fmt.Errorf("%w: upsert history request: %w", ErrUnavailable, err)
	}

	return mapHTTPError(resp)
}

// DeleteHistory implements [RemoteStore] with
// DELETE /api/users/{scope}/history/{clientID}.
func (h *httpRemoteStore) DeleteHistory(ctx context.Context, scope, clientSideID string) error {
	resp, err := h.request(ctx, scope).
		SetPathParam("clientID", clientSideID).
		Delete(historyItemPath)
	if err != nil {
		return fmt.Errorf("%w: delete history request: %w", ErrUnavailable, err)
	}

	return mapHTTPError(resp)
}

// DeleteAllHistory implements [RemoteStore] with
// DELETE /api/users/{scope}/history.
func (h *httpRemoteStore) DeleteAllHistory(ctx context.Context, scope string) error {
	resp, err := h.request(ctx, scope).Delete(historyPath)
	if err != nil {
		return fmt.Errorf("%w: delete all history request: %w", ErrUnavailable, err)
	}

	return mapHTTPError(resp)
}

// SaveQRCode implements [RemoteStore] with
// PUT /api/users/{scope}/qrcodes/{clientID}.
func (h *httpRemoteStore) SaveQRCode(ctx context.Context, code models.CloudQRCode) error {
	resp, err := h.request(ctx, code.UserScope).
		SetPathParam("clientID", code.ClientSideID).
		SetHeader("Content-Type", "application/json").
		SetBody(code).
		Put(qrCodePath)
	if err != nil {
		return fmt.Errorf("%w: save qr code request: %w", ErrUnavailable, err)
	}

	return mapHTTPError(resp)
}

// UpdatePremium implements [RemoteStore] with
// PUT /api/users/{scope}/profile/premium.
func (h *httpRemoteStore) UpdatePremium(ctx context.Context, profile models.CloudProfile) error {
	resp, err := h.request(ctx, profile.UserScope).
		SetHeader("Content-Type", "application/json").
		SetBody(profile).
		Put(premiumPath)
	if err != nil {
		return fmt.Errorf("%w: update premium request: %w", ErrUnavailable, err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteStore) request(ctx context.Context, scope string) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetPathParam("scope", scope)
}

type offlineRemoteStore struct{}

func (offlineRemoteStore) Ping(context.Context) error { return ErrOffline }

func (offlineRemoteStore) UpsertHistory(context.Context, models.CloudHistoryRecord) error {
	return ErrOffline
}

func (offlineRemoteStore) DeleteHistory(context.Context, string, string) error { return ErrOffline }

func (offlineRemoteStore) DeleteAllHistory(context.Context, string) error { return ErrOffline }

func (offlineRemoteStore) SaveQRCode(context.Context, models.CloudQRCode) error { return ErrOffline }

func (offlineRemoteStore) UpdatePremium(context.Context, models.CloudProfile) error {
	return ErrOffline
}
