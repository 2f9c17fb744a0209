// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dispatcher

import (
	"github.com/MKhiriev/qr-facil/internal/i18n"
	"github.com/MKhiriev/qr-facil/models"
)

// ActionID identifies one entry of an action menu.
type ActionID string

const (
	ActionCancel           ActionID = "cancel"
	ActionSave             ActionID = "save"
	ActionCopyURL          ActionID = "copy_url"
	ActionOpenLink         ActionID = "open_link"
	ActionCopyRaw          ActionID = "copy_raw"
	ActionSaveContact      ActionID = "save_contact"
	ActionCopyPassword     ActionID = "copy_password"
	ActionOpenWiFiSettings ActionID = "open_wifi_settings"
	ActionCopyNumber       ActionID = "copy_number"
	ActionComposeSMS       ActionID = "compose_sms"
	ActionCall             ActionID = "call"
	ActionCopyAddress      ActionID = "copy_address"
	ActionComposeEmail     ActionID = "compose_email"
	ActionCopyCoordinates  ActionID = "copy_coordinates"
	ActionOpenMap          ActionID = "open_map"
	ActionCopyText         ActionID = "copy_text"
)

// Option is one menu entry as shown to the user.
type Option struct {
	ID    ActionID
	Label string
}

var labelKeys = map[ActionID]string{
	ActionCancel:           i18n.KeyCancel,
	ActionSave:             i18n.KeySave,
	ActionCopyURL:          i18n.KeyCopyURL,
	ActionOpenLink:         i18n.KeyOpenLink,
	ActionCopyRaw:          i18n.KeyCopyRaw,
	ActionSaveContact:      i18n.KeySaveContact,
	ActionCopyPassword:     i18n.KeyCopyPassword,
	ActionOpenWiFiSettings: i18n.KeyOpenWiFiSettings,
	ActionCopyNumber:       i18n.KeyCopyNumber,
	ActionComposeSMS:       i18n.KeyComposeSMS,
	ActionCall:             i18n.KeyCall,
	ActionCopyAddress:      i18n.KeyCopyAddress,
	ActionComposeEmail:     i18n.KeyComposeEmail,
	ActionCopyCoordinates:  i18n.KeyCopyCoordinates,
	ActionOpenMap:          i18n.KeyOpenMap,
	ActionCopyText:         i18n.KeyCopyText,
}

// typeActions are the type-specific entries offered between Cancel and Save.
var typeActions = map[models.CodeType][]ActionID{
	models.URL:     {ActionCopyURL, ActionOpenLink},
	models.Contact: {ActionCopyRaw, ActionSaveContact},
	models.WiFi:    {ActionCopyPassword, ActionOpenWiFiSettings},
	models.SMS:     {ActionCopyNumber, ActionComposeSMS},
	models.Phone:   {ActionCopyNumber, ActionCall},
	models.Email:   {ActionCopyAddress, ActionComposeEmail},
	models.Geo:     {ActionCopyCoordinates, ActionOpenMap},
	models.Text:    {ActionCopyText},
}

var titleKeys = map[models.CodeType]string{
	models.URL:     i18n.KeyTitleURL,
	models.Contact: i18n.KeyTitleContact,
	models.WiFi:    i18n.KeyTitleWiFi,
	models.SMS:     i18n.KeyTitleSMS,
	models.Phone:   i18n.KeyTitlePhone,
	models.Email:   i18n.KeyTitleEmail,
	models.Geo:     i18n.KeyTitleGeo,
	models.Text:    i18n.KeyTitleText,
}

// Menu returns the English action menu for code. Cancel always comes first;
// Save Data is appended only when the code is not replayed from history.
func Menu(code models.ClassifiedCode, isReplay bool) []Option {
	return menu(nil, code, isReplay)
}

func menu(t i18n.Translator, code models.ClassifiedCode, isReplay bool) []Option {
	ids := []ActionID{ActionCancel}
	actions, ok := typeActions[code.Type]
	if !ok {
		actions = typeActions[models.Text]
	}
	ids = append(ids, actions...)
	if !isReplay {
		ids = append(ids, ActionSave)
	}

	options := make([]Option, 0, len(ids))
	for _, id := range ids {
		options = append(options, Option{ID: id, Label: i18n.Tr(t, labelKeys[id])})
	}
	return options
}

func title(t i18n.Translator, ct models.CodeType) string {
	key, ok := titleKeys[ct]
	if !ok {
		key = i18n.KeyTitleText
	}
	return i18n.Tr(t, key)
}
