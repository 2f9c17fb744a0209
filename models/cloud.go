// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// CloudHistoryRecord is the remote representation of a [HistoryRecord].
type CloudHistoryRecord struct {
	ClientSideID string          `json:"client_side_id"`
	UserScope    string          `json:"user_email"`
	Type         CodeType        `json:"type"`
	RawData      string          `json:"raw_data"`
	ParsedData   json.RawMessage `json:"parsed_data"`
	Description  string          `json:"description"`
	ActionText   string          `json:"action_text"`
	CreatedAt    time.Time       `json:"created_at"`
}

// CloudQRCode is the remote representation of a [QRCodeRecord].
type CloudQRCode struct {
	ClientSideID    string          `json:"client_side_id"`
	UserScope       string          `json:"user_email"`
	Type            CodeType        `json:"type"`
	Content         string          `json:"content"`
	ErrorCorrection ErrorCorrection `json:"error_correction"`
	CreatedAt       time.Time       `json:"created_at"`
}

// CloudProfile is the remote representation of a [UserProfile].
type CloudProfile struct {
	UserScope string    `json:"user_email"`
	Premium   bool      `json:"premium"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCloudHistoryRecord derives the remote record from a local one.
func NewCloudHistoryRecord(r HistoryRecord) (CloudHistoryRecord, error) {
	parsed, err := MarshalPayload(r.Payload)
	if err != nil {
		return CloudHistoryRecord{}, err
	}
	return CloudHistoryRecord{
		ClientSideID: r.ClientSideID,
		UserScope:    r.UserScope,
		Type:         r.Type,
		RawData:      r.RawData,
		ParsedData:   parsed,
		Description:  r.Description,
		ActionText:   r.ActionText,
		CreatedAt:    r.CreatedAt,
	}, nil
}

// NewCloudQRCode derives the remote record from a local one.
func NewCloudQRCode(q QRCodeRecord) CloudQRCode {
	return CloudQRCode{
		ClientSideID:    q.ClientSideID,
		UserScope:       q.UserScope,
		Type:            q.Type,
		Content:         q.Content,
		ErrorCorrection: q.ErrorCorrection,
		CreatedAt:       q.CreatedAt,
	}
}
