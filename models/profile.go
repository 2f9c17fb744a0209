// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// UserProfile holds the per-account flags kept on the device.
type UserProfile struct {
	UserScope string    `json:"user_email"`
	Premium   bool      `json:"premium"`
	UpdatedAt time.Time `json:"updated_at"`
}
