// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/qr-facil/internal/dispatcher"
	"github.com/MKhiriev/qr-facil/internal/logger"
	"github.com/MKhiriev/qr-facil/internal/mock"
	"github.com/MKhiriev/qr-facil/internal/processor"
	"github.com/MKhiriev/qr-facil/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type execCall struct {
	code     models.ClassifiedCode
	scope    string
	isReplay bool
}

type fakeExecutor struct {
	mu    sync.Mutex
	calls []execCall
}

func (f *fakeExecutor) ExecuteAction(_ context.Context, code models.ClassifiedCode, userScope string, isReplay bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, execCall{code: code, scope: userScope, isReplay: isReplay})
}

type modelFixture struct {
	history *mock.MockHistoryStore
	sync    *mock.MockSyncService
	qrcodes *mock.MockQRCodeService
	profile *mock.MockProfileService
	exec    *fakeExecutor
	model   Model
}

func newModelFixture(t *testing.T) *modelFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &modelFixture{
		history: mock.NewMockHistoryStore(ctrl),
		sync:    mock.NewMockSyncService(ctrl),
		qrcodes: mock.NewMockQRCodeService(ctrl),
		profile: mock.NewMockProfileService(ctrl),
		exec:    &fakeExecutor{},
	}
	f.model = NewModel(context.Background(), Deps{
		Processor: processor.New(logger.Nop()),
		Executor:  f.exec,
		History:   f.history,
		Sync:      f.sync,
		QRCodes:   f.qrcodes,
		Profile:   f.profile,
		UserScope: "ana@example.com",
		BuildInfo: models.NewAppBuildInfo("1.2.3", "", ""),
	})
	return f
}

func (f *modelFixture) update(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := f.model.Update(msg)
	m, ok := next.(Model)
	require.True(t, ok)
	f.model = m
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBridge_ChooseWithoutProgram(t *testing.T) {
	b := NewBridge()
	id, err := b.Choose(context.Background(), "t", "m", nil)
	assert.ErrorIs(t, err, ErrUINotRunning)
	assert.Equal(t, dispatcher.ActionCancel, id)
}

func TestBridge_ChooseReturnsAnswer(t *testing.T) {
	b := NewBridge()
	b.attach(func(msg tea.Msg) {
		p, ok := msg.(promptMsg)
		require.True(t, ok)
		assert.Equal(t, "URL", p.title)
		newPromptState(p).answer(dispatcher.ActionOpenLink)
	})

	id, err := b.Choose(context.Background(), "URL", "https://example.com", []dispatcher.Option{
		{ID: dispatcher.ActionCancel, Label: "Cancel"},
		{ID: dispatcher.ActionOpenLink, Label: "Open Link"},
	})
	require.NoError(t, err)
	assert.Equal(t, dispatcher.ActionOpenLink, id)
}

func TestBridge_ChooseUnblocksOnDetachAndCancel(t *testing.T) {
	t.Run("detach", func(t *testing.T) {
		b := NewBridge()
		b.attach(func(tea.Msg) {})
		go func() {
			time.Sleep(10 * time.Millisecond)
			b.detach()
		}()
		id, err := b.Choose(context.Background(), "t", "m", nil)
		assert.ErrorIs(t, err, ErrUINotRunning)
		assert.Equal(t, dispatcher.ActionCancel, id)
	})

	t.Run("context", func(t *testing.T) {
		b := NewBridge()
		b.attach(func(tea.Msg) {})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		id, err := b.Choose(ctx, "t", "m", nil)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, dispatcher.ActionCancel, id)
	})
}

func TestBridge_AlertAndScannedForwardMessages(t *testing.T) {
	var got []tea.Msg
	b := NewBridge()
	assert.False(t, b.Send(alertMsg{}))

	b.attach(func(msg tea.Msg) { got = append(got, msg) })
	b.Alert(context.Background(), "Copied", "Copied to clipboard.")
	b.Scanned(context.Background(), "tel:+5511999999999")

	require.Len(t, got, 2)
	assert.Equal(t, alertMsg{title: "Copied", message: "Copied to clipboard."}, got[0])
	assert.Equal(t, ScannedMsg{Raw: "tel:+5511999999999"}, got[1])
}

func TestModel_ScanDispatchesClassifiedCode(t *testing.T) {
	f := newModelFixture(t)

	cmd := f.update(t, ScannedMsg{Raw: "https://example.com"})
	require.NotNil(t, cmd)
	assert.True(t, f.model.busy)

	msg := cmd()
	assert.Equal(t, dispatchDoneMsg{}, msg)
	require.Len(t, f.exec.calls, 1)
	assert.Equal(t, models.URL, f.exec.calls[0].code.Type)
	assert.Equal(t, "ana@example.com", f.exec.calls[0].scope)
	assert.False(t, f.exec.calls[0].isReplay)

	f.update(t, msg)
	assert.False(t, f.model.busy)
}

func TestModel_ScanWhileBusyIsDropped(t *testing.T) {
	f := newModelFixture(t)

	first := f.update(t, ScannedMsg{Raw: "hello"})
	require.NotNil(t, first)

	f.update(t, ScannedMsg{Raw: "second"})
	assert.Equal(t, "Finish the current action first.", f.model.status)
	assert.Empty(t, f.exec.calls)
}

func TestModel_BlankScanIgnored(t *testing.T) {
	f := newModelFixture(t)
	cmd := f.update(t, ScannedMsg{Raw: "   "})
	assert.Nil(t, cmd)
	assert.False(t, f.model.busy)
}

func TestModel_PastedVCardKeepsLines(t *testing.T) {
	f := newModelFixture(t)
	vcard := "BEGIN:VCARD\nVERSION:3.0\nFN:John Doe\nTEL:+15551234567\nEND:VCARD"

	f.update(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(vcard), Paste: true})
	assert.Equal(t, vcard, f.model.input.Value())

	cmd := f.update(t, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Empty(t, f.model.input.Value())

	cmd()
	require.Len(t, f.exec.calls, 1)
	code := f.exec.calls[0].code
	assert.Equal(t, models.Contact, code.Type)
	contact, ok := code.Payload.(models.ContactData)
	require.True(t, ok)
	assert.Equal(t, "John Doe", contact.Name)
	assert.Equal(t, []string{"+15551234567"}, contact.Phones)
}

func TestModel_CtrlJBreaksLine(t *testing.T) {
	f := newModelFixture(t)

	f.update(t, runes("BEGIN:VCARD"))
	f.update(t, tea.KeyMsg{Type: tea.KeyCtrlJ})
	f.update(t, runes("FN:Ana"))

	assert.Equal(t, "BEGIN:VCARD\nFN:Ana", f.model.input.Value())
	assert.Empty(t, f.exec.calls)
}

func TestModel_PromptSelection(t *testing.T) {
	options := []dispatcher.Option{
		{ID: dispatcher.ActionCancel, Label: "Cancel"},
		{ID: dispatcher.ActionCopyText, Label: "Copy Text"},
		{ID: dispatcher.ActionSave, Label: "Save"},
	}

	tests := []struct {
		name string
		keys []tea.KeyMsg
		want dispatcher.ActionID
	}{
		{name: "number key", keys: []tea.KeyMsg{runes("3")}, want: dispatcher.ActionSave},
		{name: "arrows and enter", keys: []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyEnter}}, want: dispatcher.ActionCopyText},
		{name: "wrap upwards", keys: []tea.KeyMsg{{Type: tea.KeyUp}, {Type: tea.KeyEnter}}, want: dispatcher.ActionSave},
		{name: "escape cancels", keys: []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyEsc}}, want: dispatcher.ActionCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newModelFixture(t)
			reply := make(chan dispatcher.ActionID, 1)
			f.update(t, promptMsg{title: "Text", message: "hello", options: options, reply: reply})
			assert.Contains(t, f.model.View(), "Copy Text")

			for _, k := range tt.keys {
				f.update(t, k)
			}

			assert.Nil(t, f.model.prompt)
			select {
			case got := <-reply:
				assert.Equal(t, tt.want, got)
			default:
				t.Fatal("no answer delivered")
			}
		})
	}
}

func TestModel_OutOfRangeNumberKeepsPrompt(t *testing.T) {
	f := newModelFixture(t)
	reply := make(chan dispatcher.ActionID, 1)
	f.update(t, promptMsg{title: "Text", options: []dispatcher.Option{{ID: dispatcher.ActionCancel, Label: "Cancel"}}, reply: reply})

	f.update(t, runes("5"))
	assert.NotNil(t, f.model.prompt)
	assert.Empty(t, reply)
}

func TestModel_AlertsAreQueued(t *testing.T) {
	f := newModelFixture(t)
	f.update(t, alertMsg{title: "Copied", message: "first"})
	f.update(t, alertMsg{title: "Saved", message: "second"})

	assert.Contains(t, f.model.View(), "first")
	f.update(t, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, f.model.View(), "second")
	f.update(t, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, f.model.alerts)
}

func TestModel_HistoryReplayAndDelete(t *testing.T) {
	f := newModelFixture(t)
	records := []models.HistoryRecord{
		{ID: 2, Type: models.Phone, RawData: "tel:123", Description: "Phone: 123", CreatedAt: time.Now()},
		{ID: 1, Type: models.Text, RawData: "hi", Description: "Text: hi", CreatedAt: time.Now()},
	}

	f.history.EXPECT().List(gomock.Any(), "ana@example.com", models.DefaultHistoryLimit).Return(records, true)
	cmd := f.update(t, tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, cmd)
	assert.Equal(t, screenHistory, f.model.screen)

	f.update(t, cmd())
	assert.Contains(t, f.model.View(), "Phone: 123")

	f.update(t, tea.KeyMsg{Type: tea.KeyDown})
	cmd = f.update(t, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	cmd()
	require.Len(t, f.exec.calls, 1)
	assert.True(t, f.exec.calls[0].isReplay)
	assert.Equal(t, "hi", f.exec.calls[0].code.RawData)

	f.history.EXPECT().DeleteOne(gomock.Any(), int64(1)).Return(true)
	cmd = f.update(t, runes("d"))
	require.NotNil(t, cmd)
	assert.Equal(t, historyDeletedMsg{ok: true}, cmd())
}

func TestModel_WipeNeedsConfirmation(t *testing.T) {
	f := newModelFixture(t)
	f.model.screen = screenHistory

	f.update(t, runes("D"))
	assert.True(t, f.model.confirmWipe)
	assert.Contains(t, f.model.View(), "Delete the whole history?")

	f.update(t, runes("n"))
	assert.False(t, f.model.confirmWipe)

	f.history.EXPECT().DeleteAll(gomock.Any(), "ana@example.com").Return(true)
	f.update(t, runes("D"))
	cmd := f.update(t, runes("y"))
	require.NotNil(t, cmd)
	assert.Equal(t, historyDeletedMsg{ok: true}, cmd())
}

func TestModel_SyncStatusLine(t *testing.T) {
	f := newModelFixture(t)

	f.update(t, pendingMsg{pending: 3})
	assert.Contains(t, f.model.View(), "3 pending sync")

	f.update(t, syncDoneMsg{result: models.FlushResult{Remaining: 2, Offline: true}})
	assert.Contains(t, f.model.View(), "offline")

	f.update(t, syncDoneMsg{result: models.FlushResult{Synced: 2}})
	assert.Contains(t, f.model.View(), "synced")
}

func TestModel_FlushFromScanScreen(t *testing.T) {
	f := newModelFixture(t)
	f.sync.EXPECT().FlushPending(gomock.Any()).Return(models.FlushResult{Synced: 1}, nil)

	cmd := f.update(t, tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.True(t, f.model.sync.running)

	again := f.update(t, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, again)

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	var done tea.Msg
	for _, c := range batch {
		if msg, ok := c().(syncDoneMsg); ok {
			done = msg
		}
	}
	require.NotNil(t, done)
	f.update(t, done)
	assert.False(t, f.model.sync.running)
	assert.Equal(t, 0, f.model.sync.pending)
}

func TestModel_QuitCancelsOpenPrompt(t *testing.T) {
	f := newModelFixture(t)
	reply := make(chan dispatcher.ActionID, 1)
	f.update(t, promptMsg{title: "t", options: []dispatcher.Option{{ID: dispatcher.ActionSave}}, reply: reply})

	cmd := f.update(t, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, dispatcher.ActionCancel, <-reply)
}

func TestModel_BuildInfoScreenTogglesPremium(t *testing.T) {
	f := newModelFixture(t)
	f.model.screen = screenHistory

	f.profile.EXPECT().IsPremium(gomock.Any(), "ana@example.com").Return(false, nil)
	cmd := f.update(t, runes("v"))
	require.NotNil(t, cmd)
	f.update(t, cmd())
	view := f.model.View()
	assert.Contains(t, view, "1.2.3")
	assert.Contains(t, view, "Premium: no")

	f.profile.EXPECT().SetPremium(gomock.Any(), "ana@example.com", true).Return(nil)
	cmd = f.update(t, runes("p"))
	require.NotNil(t, cmd)
	f.update(t, cmd())
	assert.Contains(t, f.model.View(), "Premium: yes")

	f.update(t, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenHistory, f.model.screen)
}

func TestModel_GenerateQRCode(t *testing.T) {
	f := newModelFixture(t)
	f.model.input.SetValue("tel:+5511999999999")

	matrix := models.Matrix{Modules: [][]bool{{true, false}, {false, true}}, Size: 2}
	f.qrcodes.EXPECT().
		Generate(gomock.Any(), "ana@example.com", gomock.Any(), models.ErrorCorrectionMedium).
		DoAndReturn(func(_ context.Context, _ string, p models.Payload, level models.ErrorCorrection) (models.QRCodeRecord, models.Matrix, error) {
			assert.Equal(t, models.Phone, p.Type())
			return models.QRCodeRecord{Type: models.Phone, Content: "tel:+5511999999999", ErrorCorrection: level}, matrix, nil
		})

	cmd := f.update(t, tea.KeyMsg{Type: tea.KeyCtrlG})
	require.NotNil(t, cmd)
	assert.Empty(t, f.model.input.Value())

	next := f.update(t, cmd())
	require.NotNil(t, next)
	assert.Equal(t, screenQRCode, f.model.screen)
	assert.False(t, f.model.busy)
	assert.Contains(t, f.model.View(), "QR: phone (M)")

	f.update(t, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenScan, f.model.screen)
}

func TestModel_GenerateFailureShowsStatus(t *testing.T) {
	f := newModelFixture(t)
	f.update(t, qrGeneratedMsg{err: assert.AnError})
	assert.Equal(t, screenScan, f.model.screen)
	assert.Equal(t, assert.AnError.Error(), f.model.status)
}

func TestRenderMatrix(t *testing.T) {
	assert.Empty(t, renderMatrix(models.Matrix{}))

	out := renderMatrix(models.Matrix{Modules: [][]bool{{true, true}, {false, true}}, Size: 2})
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "██████", lines[0])
	assert.Equal(t, "██▄ ██", lines[1])
	assert.Equal(t, "██████", lines[2])
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "abc", fitText("abc", 5))
	assert.Equal(t, "ab...", fitText("abcdefgh", 5))
	assert.Equal(t, "ág", fitText("ágúa", 2))
}
