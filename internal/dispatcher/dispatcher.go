// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package dispatcher presents the action menu for a classified code and
// performs the chosen action through injected platform collaborators.
//
// ExecuteAction never returns an error and never lets a panic escape:
// failures are logged and turned into user-facing alerts, so a malformed
// payload cannot stop the scanning loop.
package dispatcher

import (
	"context"
	"fmt"
	"runtime"
	"slices"

	"github.com/MKhiriev/qr-facil/internal/i18n"
	"github.com/MKhiriev/qr-facil/internal/logger"
	"github.com/MKhiriev/qr-facil/internal/parser"
	"github.com/MKhiriev/qr-facil/models"
)

// Deps groups the collaborators a [Dispatcher] talks to. Translator may be
// nil, in which case English strings are used.
type Deps struct {
	Prompter   Prompter
	Alerter    Alerter
	Clipboard  Clipboard
	Launcher   Launcher
	Contacts   Contacts
	History    HistorySaver
	Translator i18n.Translator

	// GOOS selects the WiFi settings deep link. Defaults to runtime.GOOS.
	GOOS string
}

// Dispatcher executes user-selected actions on classified codes.
type Dispatcher struct {
	deps   Deps
	logger *logger.Logger
}

// New returns a dispatcher over deps.
func New(deps Deps, log *logger.Logger) *Dispatcher {
	if deps.GOOS == "" {
		deps.GOOS = runtime.GOOS
	}
	return &Dispatcher{deps: deps, logger: log}
}

// Menu returns the localized action menu for code.
func (d *Dispatcher) Menu(code models.ClassifiedCode, isReplay bool) []Option {
	return menu(d.deps.Translator, code, isReplay)
}

// ExecuteAction asks the user what to do with code and does it. userScope
// is the account history saves are filed under; isReplay is true when the
// code was opened from history, which removes the Save Data entry.
func (d *Dispatcher) ExecuteAction(ctx context.Context, code models.ClassifiedCode, userScope string, isReplay bool) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error().
				Str("func", "Dispatcher.ExecuteAction").
				Str("type", code.Type.String()).
				Err(fmt.Errorf("%w: %v", errActionPanicked, r)).
				Msg("recovered from action panic")
			d.alert(ctx, i18n.KeyErrorTitle, i18n.KeyActionFailed)
		}
	}()

	options := d.Menu(code, isReplay)
	choice, err := d.deps.Prompter.Choose(ctx, title(d.deps.Translator, code.Type), code.Description, options)
	if err != nil {
		d.logger.Debug().Str("func", "Dispatcher.ExecuteAction").Err(err).Msg("prompt dismissed")
		return
	}
	if choice == ActionCancel {
		return
	}

	if !slices.ContainsFunc(options, func(o Option) bool { return o.ID == choice }) {
		err = fmt.Errorf("%w: %s for %s", ErrUnexpectedAction, choice, code.Type)
	} else {
		err = d.perform(ctx, choice, code, userScope)
	}

	if err != nil {
		d.logger.Error().
			Str("func", "Dispatcher.ExecuteAction").
			Str("type", code.Type.String()).
			Str("action", string(choice)).
			Err(err).
			Msg("action failed")
		d.alert(ctx, i18n.KeyErrorTitle, i18n.KeyActionFailed)
	}
}

func (d *Dispatcher) perform(ctx context.Context, action ActionID, code models.ClassifiedCode, userScope string) error {
	if code.Payload == nil || code.Payload.Type() != code.Type {
		return fmt.Errorf("%w: %s code with %T", ErrPayloadMismatch, code.Type, code.Payload)
	}

	switch action {
	case ActionSave:
		d.save(ctx, code, userScope)
		return nil
	case ActionCopyRaw:
		return d.copy(ctx, code.RawData)
	case ActionCopyURL, ActionCopyPassword, ActionCopyNumber, ActionCopyAddress,
		ActionCopyCoordinates, ActionCopyText:
		text, err := copyText(code)
		if err != nil {
			return err
		}
		return d.copy(ctx, text)
	case ActionSaveContact:
		return d.saveContact(ctx, code)
	case ActionOpenWiFiSettings:
		d.openWiFiSettings(ctx)
		return nil
	case ActionOpenLink, ActionComposeSMS, ActionCall, ActionComposeEmail, ActionOpenMap:
		uri, err := deepLink(code)
		if err != nil {
			return err
		}
		d.open(ctx, uri)
		return nil
	}

	return fmt.Errorf("%w: %s", ErrUnexpectedAction, action)
}

func (d *Dispatcher) save(ctx context.Context, code models.ClassifiedCode, userScope string) {
	if _, ok := d.deps.History.Save(ctx, code, userScope); !ok {
		d.alert(ctx, i18n.KeyErrorTitle, i18n.KeySaveFailedMessage)
		return
	}
	d.alert(ctx, i18n.KeySavedTitle, i18n.KeySavedMessage)
}

func (d *Dispatcher) copy(ctx context.Context, text string) error {
	if err := d.deps.Clipboard.SetText(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	d.alert(ctx, i18n.KeyCopiedTitle, i18n.KeyCopiedMessage)
	return nil
}

func (d *Dispatcher) saveContact(ctx context.Context, code models.ClassifiedCode) error {
	contact, ok := code.Payload.(models.ContactData)
	if !ok {
		return fmt.Errorf("%w: %T", ErrPayloadMismatch, code.Payload)
	}

	granted, err := d.deps.Contacts.RequestPermission(ctx)
	if err != nil {
		return fmt.Errorf("request contacts permission: %w", err)
	}
	if !granted {
		d.alert(ctx, i18n.KeyPermissionTitle, i18n.KeyPermissionMessage)
		return nil
	}

	id, err := d.deps.Contacts.AddContact(ctx, contact)
	if err != nil {
		return fmt.Errorf("add contact: %w", err)
	}
	d.logger.Debug().Str("func", "Dispatcher.saveContact").Str("contact_id", id).Msg("contact saved")
	d.alert(ctx, i18n.KeyContactSavedTitle, i18n.KeyContactSavedMsg)
	return nil
}

// openWiFiSettings is best effort: an unsupported platform or a rejected
// link ends in an informational alert.
func (d *Dispatcher) openWiFiSettings(ctx context.Context) {
	uri, ok := WiFiSettingsURI(d.deps.GOOS)
	if !ok {
		d.alert(ctx, i18n.KeyWiFiTitle, i18n.KeyWiFiUnsupported)
		return
	}
	if err := d.deps.Launcher.Open(ctx, uri); err != nil {
		d.logger.Warn().Str("func", "Dispatcher.openWiFiSettings").Err(err).Msg("settings link rejected")
		d.alert(ctx, i18n.KeyWiFiTitle, i18n.KeyWiFiUnsupported)
	}
}

func (d *Dispatcher) open(ctx context.Context, uri string) {
	if err := d.deps.Launcher.Open(ctx, uri); err != nil {
		d.logger.Warn().Str("func", "Dispatcher.open").Str("uri", uri).Err(err).Msg("launch failed")
		d.alert(ctx, i18n.KeyErrorTitle, i18n.KeyOpenFailed)
	}
}

func (d *Dispatcher) alert(ctx context.Context, titleKey, messageKey string) {
	d.deps.Alerter.Alert(ctx, i18n.Tr(d.deps.Translator, titleKey), i18n.Tr(d.deps.Translator, messageKey))
}

// copyText returns what the type-specific copy action puts on the clipboard.
func copyText(code models.ClassifiedCode) (string, error) {
	switch p := code.Payload.(type) {
	case models.URLData:
		return p.URL, nil
	case models.WiFiData:
		return models.StringValue(p.Password), nil
	case models.SMSData:
		return p.Number, nil
	case models.PhoneData:
		return p.Number, nil
	case models.EmailData:
		return p.Address, nil
	case models.GeoData:
		return parser.FormatCoordinates(p), nil
	case models.TextData:
		return p.Text, nil
	}
	return "", fmt.Errorf("%w: %T", ErrPayloadMismatch, code.Payload)
}

// deepLink builds the URI the launch action of code opens.
func deepLink(code models.ClassifiedCode) (string, error) {
	switch p := code.Payload.(type) {
	case models.URLData:
		return p.URL, nil
	case models.SMSData:
		return parser.FormatSMS(p), nil
	case models.PhoneData:
		return parser.FormatPhone(p), nil
	case models.EmailData:
		return parser.FormatEmail(p), nil
	case models.GeoData:
		return MapURL(p)
	}
	return "", fmt.Errorf("%w: %T", ErrPayloadMismatch, code.Payload)
}
