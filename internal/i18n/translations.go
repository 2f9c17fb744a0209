// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package i18n

import "golang.org/x/text/language"

var english = map[string]string{
	KeyCancel:            "Cancel",
	KeySave:              "Save Data",
	KeyCopyURL:           "Copy URL",
	KeyOpenLink:          "Open Link",
	KeyCopyRaw:           "Copy Raw Data",
	KeySaveContact:       "Save to Contacts",
	KeyCopyPassword:      "Copy Password",
	KeyOpenWiFiSettings:  "Open WiFi Settings",
	KeyCopyNumber:        "Copy Number",
	KeyComposeSMS:        "Send SMS",
	KeyCall:              "Call",
	KeyCopyAddress:       "Copy Address",
	KeyComposeEmail:      "Send Email",
	KeyCopyCoordinates:   "Copy Coordinates",
	KeyOpenMap:           "Open Map",
	KeyCopyText:          "Copy Text",
	KeyAllow:             "Allow",
	KeyDeny:              "Don't Allow",
	KeyTitleURL:          "Link",
	KeyTitleContact:      "Contact",
	KeyTitleWiFi:         "WiFi Network",
	KeyTitleSMS:          "SMS",
	KeyTitlePhone:        "Phone Number",
	KeyTitleEmail:        "Email",
	KeyTitleGeo:          "Location",
	KeyTitleText:         "Text",
	KeyCopiedTitle:       "Copied",
	KeyCopiedMessage:     "Copied to clipboard.",
	KeySavedTitle:        "Saved",
	KeySavedMessage:      "Saved to history.",
	KeySaveFailedMessage: "Could not save to history.",
	KeyErrorTitle:        "Error",
	KeyActionFailed:      "Could not complete the action.",
	KeyOpenFailed:        "Could not open the link.",
	KeyPermissionTitle:   "Permission Denied",
	KeyPermissionMessage: "Permission to save contacts was denied.",
	KeyContactSavedTitle: "Contact Saved",
	KeyContactSavedMsg:   "The contact was added to your contacts.",
	KeyWiFiTitle:         "WiFi",
	KeyWiFiUnsupported:   "WiFi settings cannot be opened on this device. Connect manually.",
	KeyContactsAskTitle:  "Contacts",
	KeyContactsAskMsg:    "Allow QR Fácil to save contacts?",
	KeyScanPlaceholder:   "Scan or paste a code and press enter",
	KeyHistoryTitle:      "History",
	KeyHistoryEmpty:      "No scans yet.",
	KeySyncPending:       "pending sync",
	KeySyncOffline:       "offline",
	KeySyncDone:          "synced",
	KeyWipeConfirm:       "Delete the whole history?",
	KeyBusy:              "Finish the current action first.",
}

var portuguese = map[string]string{
	KeyCancel:            "Cancelar",
	KeySave:              "Salvar Dados",
	KeyCopyURL:           "Copiar URL",
	KeyOpenLink:          "Abrir Link",
	KeyCopyRaw:           "Copiar Dados",
	KeySaveContact:       "Salvar nos Contatos",
	KeyCopyPassword:      "Copiar Senha",
	KeyOpenWiFiSettings:  "Abrir Configurações de WiFi",
	KeyCopyNumber:        "Copiar Número",
	KeyComposeSMS:        "Enviar SMS",
	KeyCall:              "Ligar",
	KeyCopyAddress:       "Copiar Endereço",
	KeyComposeEmail:      "Enviar Email",
	KeyCopyCoordinates:   "Copiar Coordenadas",
	KeyOpenMap:           "Abrir Mapa",
	KeyCopyText:          "Copiar Texto",
	KeyAllow:             "Permitir",
	KeyDeny:              "Não Permitir",
	KeyTitleURL:          "Link",
	KeyTitleContact:      "Contato",
	KeyTitleWiFi:         "Rede WiFi",
	KeyTitleSMS:          "SMS",
	KeyTitlePhone:        "Telefone",
	KeyTitleEmail:        "Email",
	KeyTitleGeo:          "Localização",
	KeyTitleText:         "Texto",
	KeyCopiedTitle:       "Copiado",
	KeyCopiedMessage:     "Copiado para a área de transferência.",
	KeySavedTitle:        "Salvo",
	KeySavedMessage:      "Salvo no histórico.",
	KeySaveFailedMessage: "Não foi possível salvar no histórico.",
	KeyErrorTitle:        "Erro",
	KeyActionFailed:      "Não foi possível concluir a ação.",
	KeyOpenFailed:        "Não foi possível abrir o link.",
	KeyPermissionTitle:   "Permissão Negada",
	KeyPermissionMessage: "A permissão para salvar contatos foi negada.",
	KeyContactSavedTitle: "Contato Salvo",
	KeyContactSavedMsg:   "O contato foi adicionado aos seus contatos.",
	KeyWiFiTitle:         "WiFi",
	KeyWiFiUnsupported:   "Não é possível abrir as configurações de WiFi neste dispositivo. Conecte-se manualmente.",
	KeyContactsAskTitle:  "Contatos",
	KeyContactsAskMsg:    "Permitir que o QR Fácil salve contatos?",
	KeyScanPlaceholder:   "Escaneie ou cole um código e pressione enter",
	KeyHistoryTitle:      "Histórico",
	KeyHistoryEmpty:      "Nenhum código escaneado.",
	KeySyncPending:       "sincronização pendente",
	KeySyncOffline:       "offline",
	KeySyncDone:          "sincronizado",
	KeyWipeConfirm:       "Apagar todo o histórico?",
	KeyBusy:              "Conclua a ação atual primeiro.",
}

var spanish = map[string]string{
	KeyCancel:            "Cancelar",
	KeySave:              "Guardar Datos",
	KeyCopyURL:           "Copiar URL",
	KeyOpenLink:          "Abrir Enlace",
	KeyCopyRaw:           "Copiar Datos",
	KeySaveContact:       "Guardar en Contactos",
	KeyCopyPassword:      "Copiar Contraseña",
	KeyOpenWiFiSettings:  "Abrir Ajustes de WiFi",
	KeyCopyNumber:        "Copiar Número",
	KeyComposeSMS:        "Enviar SMS",
	KeyCall:              "Llamar",
	KeyCopyAddress:       "Copiar Dirección",
	KeyComposeEmail:      "Enviar Correo",
	KeyCopyCoordinates:   "Copiar Coordenadas",
	KeyOpenMap:           "Abrir Mapa",
	KeyCopyText:          "Copiar Texto",
	KeyAllow:             "Permitir",
	KeyDeny:              "No Permitir",
	KeyTitleURL:          "Enlace",
	KeyTitleContact:      "Contacto",
	KeyTitleWiFi:         "Red WiFi",
	KeyTitleSMS:          "SMS",
	KeyTitlePhone:        "Teléfono",
	KeyTitleEmail:        "Correo",
	KeyTitleGeo:          "Ubicación",
	KeyTitleText:         "Texto",
	KeyCopiedTitle:       "Copiado",
	KeyCopiedMessage:     "Copiado al portapapeles.",
	KeySavedTitle:        "Guardado",
	KeySavedMessage:      "Guardado en el historial.",
	KeySaveFailedMessage: "No se pudo guardar en el historial.",
	KeyErrorTitle:        "Error",
	KeyActionFailed:      "No se pudo completar la acción.",
	KeyOpenFailed:        "No se pudo abrir el enlace.",
	KeyPermissionTitle:   "Permiso Denegado",
	KeyPermissionMessage: "Se denegó el permiso para guardar contactos.",
	KeyContactSavedTitle: "Contacto Guardado",
	KeyContactSavedMsg:   "El contacto se añadió a tus contactos.",
	KeyWiFiTitle:         "WiFi",
	KeyWiFiUnsupported:   "No se pueden abrir los ajustes de WiFi en este dispositivo. Conéctate manualmente.",
	KeyContactsAskTitle:  "Contactos",
	KeyContactsAskMsg:    "¿Permitir que QR Fácil guarde contactos?",
	KeyScanPlaceholder:   "Escanea o pega un código y pulsa enter",
	KeyHistoryTitle:      "Historial",
	KeyHistoryEmpty:      "Aún no hay escaneos.",
	KeySyncPending:       "sincronización pendiente",
	KeySyncOffline:       "sin conexión",
	KeySyncDone:          "sincronizado",
	KeyWipeConfirm:       "¿Borrar todo el historial?",
	KeyBusy:              "Termina la acción actual primero.",
}

// supported lists the catalog languages; English is the fallback and
// must stay first for the matcher.
var supported = []language.Tag{
	language.English,
	language.BrazilianPortuguese,
	language.Spanish,
}

var translations = map[language.Tag]map[string]string{
	language.English:             english,
	language.BrazilianPortuguese: portuguese,
	language.Spanish:             spanish,
}
