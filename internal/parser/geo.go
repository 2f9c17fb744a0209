// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/MKhiriev/qr-facil/models"
)

var leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseGeo reads geo:<lat>,<lng> or a bare "<lat>,<lng>" pair.
//
// Each coordinate is read from the longest numeric prefix of its part, so
// trailing parameters such as ";u=35" are ignored. Parts without a numeric
// prefix become NaN. Ranges are not validated.
func ParseGeo(raw string) (models.GeoData, error) {
	rest := raw
	if len(rest) >= len("geo:") && strings.EqualFold(rest[:len("geo:")], "geo:") {
		rest = rest[len("geo:"):]
	}

	parts := strings.Split(rest, ",")
	data := models.GeoData{Latitude: math.NaN(), Longitude: math.NaN()}

	data.Latitude = parseFloatPrefix(parts[0])
	if len(parts) > 1 {
		data.Longitude = parseFloatPrefix(parts[1])
	}

	if math.IsNaN(data.Latitude) || math.IsNaN(data.Longitude) {
		return data, newIssue("geo", "coordinates are not numeric")
	}
	return data, nil
}

func parseFloatPrefix(s string) float64 {
	m := leadingFloat.FindString(strings.TrimSpace(s))
	if m == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}
