// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package parser extracts structured data from the string grammars that QR
// codes commonly carry: vCard, WiFi credentials, sms:, tel:, mailto: and geo:
// URIs. It also contains the inverse formatters used when generating codes.
//
// Parsers never fail hard. Each returns the best-effort payload together with
// an optional *Issue describing what could not be recognised; callers that do
// not care about the issue simply keep the payload.
package parser
