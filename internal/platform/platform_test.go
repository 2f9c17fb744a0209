// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package platform

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/qr-facil/internal/dispatcher"
	"github.com/MKhiriev/qr-facil/internal/logger"
	"github.com/MKhiriev/qr-facil/internal/mock"
	"github.com/MKhiriev/qr-facil/models"
)

// ---------------------------------------------------------------------------
// Launcher
// ---------------------------------------------------------------------------

func TestOpenerCommand(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
		wantErr  error
	}{
		{goos: "linux", wantName: "xdg-open", wantArgs: []string{"tel:+1"}},
		{goos: "freebsd", wantName: "xdg-open", wantArgs: []string{"tel:+1"}},
		{goos: "darwin", wantName: "open", wantArgs: []string{"tel:+1"}},
		{goos: "windows", wantName: "rundll32", wantArgs: []string{"url.dll,FileProtocolHandler", "tel:+1"}},
		{goos: "plan9", wantErr: ErrUnsupportedPlatform},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args, err := openerCommand(tt.goos, "tel:+1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestLauncher_Open(t *testing.T) {
	var gotName string
	var gotArgs []string

	l := &Launcher{
		goos: "linux",
		run: func(_ context.Context, name string, args ...string) error {
			gotName, gotArgs = name, args
			return nil
		},
		logger: logger.Nop(),
	}

	require.NoError(t, l.Open(context.Background(), "https://maps.google.com/?q=1,2"))
	assert.Equal(t, "xdg-open", gotName)
	assert.Equal(t, []string{"https://maps.google.com/?q=1,2"}, gotArgs)

	assert.ErrorIs(t, l.Open(context.Background(), ""), ErrEmptyURI)
}

func TestLauncher_Open_RunnerError(t *testing.T) {
	exitErr := errors.New("exit status 4")
	l := &Launcher{
		goos:   "darwin",
		run:    func(context.Context, string, ...string) error { return exitErr },
		logger: logger.Nop(),
	}

	err := l.Open(context.Background(), "mailto:a@b.c")
	assert.ErrorIs(t, err, exitErr)
	assert.Contains(t, err.Error(), "open mailto:a@b.c")
}

// ---------------------------------------------------------------------------
// Clipboard
// ---------------------------------------------------------------------------

func TestClipboard_SetText(t *testing.T) {
	var got string
	c := &Clipboard{write: func(s string) error { got = s; return nil }}

	err := c.SetText("secret")
	if errors.Is(err, ErrClipboardUnavailable) {
		t.Skip("no clipboard utility on this machine")
	}
	require.NoError(t, err)
	assert.Equal(t, "secret", got)

	c.write = func(string) error { return errors.New("xclip: cannot open display") }
	assert.ErrorIs(t, c.SetText("x"), ErrClipboardUnavailable)
}

// ---------------------------------------------------------------------------
// Contacts
// ---------------------------------------------------------------------------

func TestContacts_RequestPermission(t *testing.T) {
	ctrl := gomock.NewController(t)
	prompter := mock.NewMockPrompter(ctrl)
	c := NewContacts(t.TempDir(), prompter, nil, logger.Nop())
	ctx := context.Background()

	gomock.InOrder(
		prompter.EXPECT().Choose(ctx, "Contacts", gomock.Any(), gomock.Any()).Return(dispatcher.ActionCancel, nil),
		prompter.EXPECT().Choose(ctx, gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ string, options []dispatcher.Option) (dispatcher.ActionID, error) {
				require.Len(t, options, 2)
				assert.Equal(t, dispatcher.ActionCancel, options[0].ID)
				return options[1].ID, nil
			}),
	)

	granted, err := c.RequestPermission(ctx)
	require.NoError(t, err)
	assert.False(t, granted, "denial")

	granted, err = c.RequestPermission(ctx)
	require.NoError(t, err)
	assert.True(t, granted, "allow")

	// remembered, no third prompt
	granted, err = c.RequestPermission(ctx)
	require.NoError(t, err)
	assert.True(t, granted)
}

func TestContacts_RequestPermission_PromptError(t *testing.T) {
	ctrl := gomock.NewController(t)
	prompter := mock.NewMockPrompter(ctrl)
	c := NewContacts(t.TempDir(), prompter, nil, logger.Nop())

	prompter.EXPECT().Choose(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(dispatcher.ActionID(""), context.Canceled)

	granted, err := c.RequestPermission(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, granted)
}

func TestContacts_AddContact(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "contacts")
	c := NewContacts(dir, nil, nil, logger.Nop())

	path, err := c.AddContact(context.Background(), models.ContactData{
		Name:   "Ana Souza",
		Phones: []string{"+5511988887777"},
		Emails: []string{"ana@example.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, ".vcf"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	card := string(data)
	assert.True(t, strings.HasPrefix(card, "BEGIN:VCARD\n"))
	assert.Contains(t, card, "FN:Ana Souza\n")
	assert.Contains(t, card, "TEL:+5511988887777\n")
	assert.Contains(t, card, "EMAIL:ana@example.com\n")
	assert.Contains(t, card, "END:VCARD\n")

	_, err = c.AddContact(context.Background(), models.ContactData{})
	assert.ErrorIs(t, err, ErrEmptyContact)
}

// ---------------------------------------------------------------------------
// Encoder
// ---------------------------------------------------------------------------

func TestEncoder_Encode(t *testing.T) {
	e := NewEncoder()

	m, err := e.Encode("hola", models.ErrorCorrectionLow)
	require.NoError(t, err)
	assert.Equal(t, 21, m.Size, "short text fits a version 1 symbol")
	require.Len(t, m.Modules, m.Size)
	for _, row := range m.Modules {
		assert.Len(t, row, m.Size)
	}

	// finder pattern corner is dark
	assert.True(t, m.Modules[0][0])
	assert.True(t, m.Modules[6][6])

	hi, err := e.Encode("hola", models.ErrorCorrectionHigh)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, hi.Size, m.Size)
}

func TestEncoder_Encode_Errors(t *testing.T) {
	e := NewEncoder()

	_, err := e.Encode("hola", "Z")
	assert.Error(t, err)

	_, err = e.Encode(strings.Repeat("x", 5000), models.ErrorCorrectionHigh)
	assert.Error(t, err)
}
