// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package i18n resolves user-facing strings for the dispatcher and the
// terminal UI. Translations are served from a golang.org/x/text message
// catalog; the language is picked by matching the configured locale against
// the supported set.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Translator returns the localized string for key.
type Translator interface {
	T(key string) string
}

var (
	matcher = language.NewMatcher(supported)
	builder = newBuilder()
)

func newBuilder() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, entries := range translations {
		for key, msg := range entries {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// Catalog is a [Translator] bound to one language.
type Catalog struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a catalog for the supported language closest to locale
// (a BCP 47 tag such as "pt-BR" or "es-MX"). Unknown or empty locales fall
// back to English.
func New(locale string) *Catalog {
	_, idx := language.MatchStrings(matcher, locale)
	tag := supported[idx]

	return &Catalog{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(builder)),
	}
}

// T returns the translation of key, or key itself when the catalog has no
// entry for it.
func (c *Catalog) T(key string) string {
	return c.printer.Sprintf(key)
}

// Language returns the language the catalog resolves to.
func (c *Catalog) Language() language.Tag {
	return c.tag
}

// Tr translates key with t. A nil t yields the built-in English string.
func Tr(t Translator, key string) string {
	if t != nil {
		return t.T(key)
	}
	if s, ok := english[key]; ok {
		return s
	}
	return key
}
