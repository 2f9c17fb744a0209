// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package i18n

// Message keys used by the dispatcher and the terminal UI.
const (
	KeyCancel            = "action.cancel"
	KeySave              = "action.save"
	KeyCopyURL           = "action.copy_url"
	KeyOpenLink          = "action.open_link"
	KeyCopyRaw           = "action.copy_raw"
	KeySaveContact       = "action.save_contact"
	KeyCopyPassword      = "action.copy_password"
	KeyOpenWiFiSettings  = "action.open_wifi_settings"
	KeyCopyNumber        = "action.copy_number"
	KeyComposeSMS        = "action.compose_sms"
	KeyCall              = "action.call"
	KeyCopyAddress       = "action.copy_address"
	KeyComposeEmail      = "action.compose_email"
	KeyCopyCoordinates   = "action.copy_coordinates"
	KeyOpenMap           = "action.open_map"
	KeyCopyText          = "action.copy_text"
	KeyAllow             = "action.allow"
	KeyDeny              = "action.deny"
	KeyTitleURL          = "title.url"
	KeyTitleContact      = "title.contact"
	KeyTitleWiFi         = "title.wifi"
	KeyTitleSMS          = "title.sms"
	KeyTitlePhone        = "title.phone"
	KeyTitleEmail        = "title.email"
	KeyTitleGeo          = "title.geo"
	KeyTitleText         = "title.text"
	KeyCopiedTitle       = "alert.copied.title"
	KeyCopiedMessage     = "alert.copied.message"
	KeySavedTitle        = "alert.saved.title"
	KeySavedMessage      = "alert.saved.message"
	KeySaveFailedMessage = "alert.save_failed.message"
	KeyErrorTitle        = "alert.error.title"
	KeyActionFailed      = "alert.action_failed.message"
	KeyOpenFailed        = "alert.open_failed.message"
	KeyPermissionTitle   = "alert.permission_denied.title"
	KeyPermissionMessage = "alert.permission_denied.message"
	KeyContactSavedTitle = "alert.contact_saved.title"
	KeyContactSavedMsg   = "alert.contact_saved.message"
	KeyWiFiTitle         = "alert.wifi.title"
	KeyWiFiUnsupported   = "alert.wifi_unsupported.message"
	KeyContactsAskTitle  = "prompt.contacts.title"
	KeyContactsAskMsg    = "prompt.contacts.message"
	KeyScanPlaceholder   = "tui.scan.placeholder"
	KeyHistoryTitle      = "tui.history.title"
	KeyHistoryEmpty      = "tui.history.empty"
	KeySyncPending       = "tui.sync.pending"
	KeySyncOffline       = "tui.sync.offline"
	KeySyncDone          = "tui.sync.done"
	KeyWipeConfirm       = "tui.history.wipe_confirm"
	KeyBusy              = "tui.busy"
)
