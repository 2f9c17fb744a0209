// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHTTPHandler = errors.New("remote store has no http handler to serve")
	errNoHTTPAddress = errors.New("remote store has no listen address")
)
