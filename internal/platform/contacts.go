// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package platform

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/qr-facil/internal/dispatcher"
	"github.com/MKhiriev/qr-facil/internal/i18n"
	"github.com/MKhiriev/qr-facil/internal/logger"
	"github.com/MKhiriev/qr-facil/internal/parser"
	"github.com/MKhiriev/qr-facil/internal/utils"
	"github.com/MKhiriev/qr-facil/models"
)

const actionAllow dispatcher.ActionID = "allow"

// Contacts is an address book kept as one vCard file per contact in a
// directory. Write access is asked through the prompter and, once granted,
// remembered for the lifetime of the value.
type Contacts struct {
	dir        string
	prompter   dispatcher.Prompter
	translator i18n.Translator
	ids        *utils.UUIDGenerator

	mu      sync.Mutex
	granted bool

	logger *logger.Logger
}

func NewContacts(dir string, prompter dispatcher.Prompter, translator i18n.Translator, logger *logger.Logger) *Contacts {
	return &Contacts{
		dir:        dir,
		prompter:   prompter,
		translator: translator,
		ids:        utils.NewUUIDGenerator(),
		logger:     logger,
	}
}

// RequestPermission asks the user to allow saving contacts. Dismissing the
// prompt counts as a denial.
func (c *Contacts) RequestPermission(ctx context.Context) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.granted {
		return true, nil
	}

	choice, err := c.prompter.Choose(ctx,
		i18n.Tr(c.translator, i18n.KeyContactsAskTitle),
		i18n.Tr(c.translator, i18n.KeyContactsAskMsg),
		[]dispatcher.Option{
			{ID: dispatcher.ActionCancel, Label: i18n.Tr(c.translator, i18n.KeyDeny)},
			{ID: actionAllow, Label: i18n.Tr(c.translator, i18n.KeyAllow)},
		},
	)
	if err != nil {
		return false, fmt.Errorf("contacts permission prompt: %w", err)
	}

	c.granted = choice == actionAllow
	return c.granted, nil
}

// AddContact writes ct as a vCard file and returns its path.
func (c *Contacts) AddContact(ctx context.Context, ct models.ContactData) (string, error) {
	if parser.DisplayName(ct) == "" && len(ct.Phones) == 0 && len(ct.Emails) == 0 {
		return "", ErrEmptyContact
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return "", fmt.Errorf("create contacts directory: %w", err)
	}

	path := filepath.Join(c.dir, c.ids.Generate()+".vcf")
	if err := os.WriteFile(path, []byte(parser.FormatVCard(ct)+"\n"), 0o644); err != nil {
		return "", fmt.Errorf("write contact: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "Contacts.AddContact").Str("path", path).Msg("contact written")
	return path, nil
}
