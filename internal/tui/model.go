// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/qr-facil/internal/dispatcher"
	"github.com/MKhiriev/qr-facil/internal/i18n"
	"github.com/MKhiriev/qr-facil/internal/service"
	"github.com/MKhiriev/qr-facil/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultStatusInterval = 5 * time.Second
	statusMessageTTL      = 3 * time.Second
	historyPageSize       = models.DefaultHistoryLimit
	scanBoxHeight         = 4
)

type screen int

const (
	screenScan screen = iota
	screenHistory
	screenInfo
	screenQRCode
)

// Deps groups what the terminal UI talks to.
type Deps struct {
	Processor  Processor
	Executor   Executor
	History    service.HistoryStore
	Sync       service.SyncService
	QRCodes    service.QRCodeService
	Profile    service.ProfileService
	Translator i18n.Translator
	UserScope  string
	BuildInfo  models.AppBuildInfo

	// StatusInterval is how often the pending outbox count is refreshed.
	StatusInterval time.Duration
}

// newScanBox returns the multi-line scan input. enter submits the code,
// ctrl+j breaks the line, and pasted vCards keep their line breaks.
func newScanBox(t i18n.Translator) textarea.Model {
	in := textarea.New()
	in.Placeholder = i18n.Tr(t, i18n.KeyScanPlaceholder)
	in.Prompt = "> "
	in.ShowLineNumbers = false
	in.CharLimit = 0
	in.MaxHeight = 0
	in.SetHeight(scanBoxHeight)
	in.KeyMap.InsertNewline = keys.newline
	in.Focus()
	return in
}

// Model is the root bubbletea model: the scan box, the history list and the
// overlays the dispatcher raises through the [Bridge].
type Model struct {
	ctx  context.Context
	deps Deps

	screen  screen
	input   textarea.Model
	history historyModel
	sync    syncStatus
	qrcode  qrCodeModel
	premium premiumState

	busy        bool
	prompt      *promptState
	alerts      []alertMsg
	confirmWipe bool
	status      string
}

// NewModel builds the initial model on the scan screen.
func NewModel(ctx context.Context, deps Deps) Model {
	if deps.StatusInterval <= 0 {
		deps.StatusInterval = defaultStatusInterval
	}

	in := newScanBox(deps.Translator)

	return Model{
		ctx:   ctx,
		deps:  deps,
		input: in,
		sync:  newSyncStatus(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.cmdPending(), m.cmdStatusTick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ScannedMsg:
		return m.submit(msg.Raw)
	case promptMsg:
		if m.prompt != nil {
			m.prompt.answer(dispatcher.ActionCancel)
		}
		m.prompt = newPromptState(msg)
		return m, nil
	case alertMsg:
		m.alerts = append(m.alerts, msg)
		return m, nil
	case dispatchDoneMsg:
		m.busy = false
		cmds := []tea.Cmd{m.cmdPending()}
		if m.screen == screenHistory {
			cmds = append(cmds, m.cmdLoadHistory())
		}
		return m, tea.Batch(cmds...)
	case historyLoadedMsg:
		m.history.failed = !msg.ok
		m.history.setItems(msg.records)
		return m, nil
	case historyDeletedMsg:
		if !msg.ok {
			m.history.failed = true
			return m, nil
		}
		m.history.loading = true
		return m, tea.Batch(m.cmdLoadHistory(), m.cmdPending())
	case syncDoneMsg:
		m.sync.running = false
		if msg.err != nil {
			return m.setStatus(msg.err.Error())
		}
		m.sync.apply(msg.result)
		return m, nil
	case pendingMsg:
		if msg.err == nil && !m.sync.running {
			m.sync.known = true
			m.sync.pending = msg.pending
		}
		return m, nil
	case statusTickMsg:
		return m, tea.Batch(m.cmdPending(), m.cmdStatusTick())
	case qrGeneratedMsg:
		m.busy = false
		if msg.err != nil {
			return m.setStatus(msg.err.Error())
		}
		m.qrcode = qrCodeModel{record: msg.record, matrix: msg.matrix}
		m.screen = screenQRCode
		m.input.Blur()
		return m, m.cmdPending()
	case premiumMsg:
		if msg.err != nil {
			return m.setStatus(msg.err.Error())
		}
		m.premium = premiumState{known: true, premium: msg.premium}
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.sync.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.sync.spinner, cmd = m.sync.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		return m.quit()
	}

	switch {
	case m.prompt != nil:
		return m.updatePrompt(msg)
	case len(m.alerts) > 0:
		if key.Matches(msg, keys.enter, keys.esc) {
			m.alerts = m.alerts[1:]
		}
		return m, nil
	case m.confirmWipe:
		return m.updateConfirm(msg)
	}

	switch m.screen {
	case screenHistory:
		return m.updateHistory(msg)
	case screenInfo:
		switch {
		case key.Matches(msg, keys.esc, keys.info):
			m.screen = screenHistory
		case key.Matches(msg, keys.premium):
			if !m.premium.known {
				return m, nil
			}
			return m, m.cmdSetPremium(!m.premium.premium)
		}
		return m, nil
	case screenQRCode:
		if key.Matches(msg, keys.esc, keys.enter) {
			m.screen = screenScan
			return m, m.input.Focus()
		}
		return m, nil
	default:
		return m.updateScan(msg)
	}
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		m.prompt.move(-1)
	case key.Matches(msg, keys.down):
		m.prompt.move(1)
	case key.Matches(msg, keys.enter):
		m.prompt.answer(m.prompt.selected())
		m.prompt = nil
	case key.Matches(msg, keys.esc):
		m.prompt.answer(dispatcher.ActionCancel)
		m.prompt = nil
	default:
		s := msg.String()
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			n := int(s[0] - '1')
			if n < len(m.prompt.options) {
				m.prompt.answer(m.prompt.options[n].ID)
				m.prompt = nil
			}
		}
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.confirmWipe = false
		m.history.loading = true
		return m, m.cmdDeleteAll()
	case key.Matches(msg, keys.no):
		m.confirmWipe = false
	}
	return m, nil
}

func (m Model) updateScan(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m.quit()
	case key.Matches(msg, keys.tab):
		m.screen = screenHistory
		m.history.loading = true
		m.input.Blur()
		return m, m.cmdLoadHistory()
	case key.Matches(msg, keys.scanSync):
		return m.flush()
	case key.Matches(msg, keys.generate):
		raw := m.input.Value()
		if strings.TrimSpace(raw) == "" {
			return m, nil
		}
		if m.busy {
			return m.setStatus(i18n.Tr(m.deps.Translator, i18n.KeyBusy))
		}
		m.busy = true
		m.input.Reset()
		return m, m.cmdGenerate(raw)
	case key.Matches(msg, keys.enter):
		raw := m.input.Value()
		m.input.Reset()
		return m.submit(raw)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m.quit()
	case key.Matches(msg, keys.tab, keys.esc):
		m.screen = screenScan
		return m, m.input.Focus()
	case key.Matches(msg, keys.up):
		m.history.move(-1)
	case key.Matches(msg, keys.down):
		m.history.move(1)
	case key.Matches(msg, keys.sync):
		return m.flush()
	case key.Matches(msg, keys.info):
		m.screen = screenInfo
		return m, m.cmdLoadPremium()
	case key.Matches(msg, keys.deleteAll):
		m.confirmWipe = true
	case key.Matches(msg, keys.delete):
		rec, ok := m.history.current()
		if !ok {
			return m, nil
		}
		m.history.loading = true
		return m, m.cmdDeleteOne(rec.ID)
	case key.Matches(msg, keys.enter):
		rec, ok := m.history.current()
		if !ok {
			return m, nil
		}
		if m.busy {
			return m.setStatus(i18n.Tr(m.deps.Translator, i18n.KeyBusy))
		}
		m.busy = true
		return m, m.cmdDispatch(rec.Code(), true)
	}
	return m, nil
}

// submit classifies raw and hands it to the dispatcher. A scan arriving
// while a dispatch is still running is dropped.
func (m Model) submit(raw string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(raw) == "" {
		return m, nil
	}
	if m.busy {
		return m.setStatus(i18n.Tr(m.deps.Translator, i18n.KeyBusy))
	}
	m.busy = true

	ctx, proc := m.ctx, m.deps.Processor
	return m, m.cmdDispatchWith(func() models.ClassifiedCode {
		return proc.Process(ctx, raw)
	}, false)
}

func (m Model) flush() (tea.Model, tea.Cmd) {
	if m.sync.running {
		return m, nil
	}
	m.sync.running = true

	ctx, svc := m.ctx, m.deps.Sync
	return m, tea.Batch(m.sync.spinner.Tick, func() tea.Msg {
		result, err := svc.FlushPending(ctx)
		return syncDoneMsg{result: result, err: err}
	})
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.prompt != nil {
		m.prompt.answer(dispatcher.ActionCancel)
		m.prompt = nil
	}
	return m, tea.Quit
}

func (m Model) setStatus(s string) (tea.Model, tea.Cmd) {
	m.status = s
	return m, tea.Tick(statusMessageTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m Model) cmdDispatch(code models.ClassifiedCode, isReplay bool) tea.Cmd {
	return m.cmdDispatchWith(func() models.ClassifiedCode { return code }, isReplay)
}

func (m Model) cmdDispatchWith(code func() models.ClassifiedCode, isReplay bool) tea.Cmd {
	ctx, exec, scope := m.ctx, m.deps.Executor, m.deps.UserScope
	return func() tea.Msg {
		exec.ExecuteAction(ctx, code(), scope, isReplay)
		return dispatchDoneMsg{}
	}
}

func (m Model) cmdLoadHistory() tea.Cmd {
	ctx, store, scope := m.ctx, m.deps.History, m.deps.UserScope
	return func() tea.Msg {
		records, ok := store.List(ctx, scope, historyPageSize)
		return historyLoadedMsg{records: records, ok: ok}
	}
}

func (m Model) cmdDeleteOne(id int64) tea.Cmd {
	ctx, store := m.ctx, m.deps.History
	return func() tea.Msg {
		return historyDeletedMsg{ok: store.DeleteOne(ctx, id)}
	}
}

func (m Model) cmdDeleteAll() tea.Cmd {
	ctx, store, scope := m.ctx, m.deps.History, m.deps.UserScope
	return func() tea.Msg {
		return historyDeletedMsg{ok: store.DeleteAll(ctx, scope)}
	}
}

// cmdGenerate encodes raw as typed. The processor picks the payload type, so
// "WIFI:..." or "tel:..." input produces a code of that type.
func (m Model) cmdGenerate(raw string) tea.Cmd {
	ctx, proc, qr, scope := m.ctx, m.deps.Processor, m.deps.QRCodes, m.deps.UserScope
	return func() tea.Msg {
		code := proc.Process(ctx, raw)
		record, matrix, err := qr.Generate(ctx, scope, code.Payload, models.ErrorCorrectionMedium)
		return qrGeneratedMsg{record: record, matrix: matrix, err: err}
	}
}

func (m Model) cmdLoadPremium() tea.Cmd {
	ctx, profile, scope := m.ctx, m.deps.Profile, m.deps.UserScope
	return func() tea.Msg {
		premium, err := profile.IsPremium(ctx, scope)
		return premiumMsg{premium: premium, err: err}
	}
}

func (m Model) cmdSetPremium(premium bool) tea.Cmd {
	ctx, profile, scope := m.ctx, m.deps.Profile, m.deps.UserScope
	return func() tea.Msg {
		if err := profile.SetPremium(ctx, scope, premium); err != nil {
			return premiumMsg{err: err}
		}
		return premiumMsg{premium: premium}
	}
}

func (m Model) cmdPending() tea.Cmd {
	ctx, svc := m.ctx, m.deps.Sync
	return func() tea.Msg {
		n, err := svc.Pending(ctx)
		return pendingMsg{pending: n, err: err}
	}
}

func (m Model) cmdStatusTick() tea.Cmd {
	return tea.Tick(m.deps.StatusInterval, func(time.Time) tea.Msg { return statusTickMsg{} })
}

func (m Model) View() string {
	t := m.deps.Translator

	var body string
	switch {
	case m.prompt != nil:
		body = m.prompt.View()
	case len(m.alerts) > 0:
		body = renderAlert(m.alerts[0])
	case m.confirmWipe:
		body = renderConfirm(i18n.Tr(t, i18n.KeyWipeConfirm))
	case m.screen == screenHistory:
		body = m.history.View(t)
	case m.screen == screenInfo:
		body = renderBuildInfoWindow(m.deps.BuildInfo, m.premium)
	case m.screen == screenQRCode:
		body = m.qrcode.View()
	default:
		body = m.scanView()
	}

	var b strings.Builder
	b.WriteString(body)
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(m.status))
	}
	if line := m.sync.View(t); line != "" {
		b.WriteString("\n\n")
		b.WriteString(line)
	}
	return appStyle.Render(b.String())
}

func (m Model) scanView() string {
	title := "QR Fácil"
	if m.deps.UserScope != "" {
		title += "  (" + m.deps.UserScope + ")"
	}
	data := m.input.View()
	if m.busy {
		data += "\n\n..."
	}
	return renderPage(title, data, "enter: scan  ctrl+j: new line  ctrl+g: make QR  tab: history  ctrl+s: sync  esc: quit")
}
