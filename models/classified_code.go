// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ClassifiedCode is the normalized in-memory result of processing one raw
// scanned or generated string.
//
// Type always equals Payload.Type(). Description and ActionText are derived
// from the payload and the type and are kept only for display speed.
type ClassifiedCode struct {
	Type        CodeType `json:"type"`
	RawData     string   `json:"raw_data"`
	Payload     Payload  `json:"-"`
	Description string   `json:"description"`
	ActionText  string   `json:"action_text"`
}
