package state

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/api"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/autosave"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/config"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/logging"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/settings"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/tui/affordance"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/tui/render"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/validate"
)

const (
	defaultViewportWidth  = 80
	defaultViewportHeight = 20
	headerFooterLines     = 6
)

// Backend is the slice of the API client the dashboard consumes.
// Narrow on purpose so tests can fake it.
type Backend interface {
	Health(ctx context.Context) (*api.HealthData, error)
	Summarize(ctx context.Context, req api.SummarizeRequest) (*api.SummarizeResult, error)
	UploadDocument(ctx context.Context, fileName string, content io.Reader, collection string) (*api.UploadResult, error)
	AskQuestion(ctx context.Context, req api.QuestionRequest) (*api.AnswerResult, error)
	ListCollections(ctx context.Context) (*api.CollectionsData, error)
	DeleteCollection(ctx context.Context, name string) error
	GenerateLearningPath(ctx context.Context, profile api.UserProfile) (*api.LearningPathResult, error)
	PopularPaths(ctx context.Context) (*api.PopularPathsData, error)
}

// Model is the BubbleTea model for the dashboard.
type Model struct {
	backend Backend

	tabs       *TabManager
	forms      map[settings.Tab]*tabForm
	validators map[settings.Tab]*validate.Validator
	tooltips   map[settings.Tab]*affordance.TooltipProvider

	toasts        *affordance.NotificationManager
	loading       *affordance.LoadingTracker
	modal         *affordance.ModalManager
	operation     *affordance.ProgressTracker
	toastDuration time.Duration

	keys keyMap
	help help.Model

	spinner     spinner.Model
	progressBar progress.Model
	viewport    viewport.Model

	results     map[settings.Tab]string
	collections []api.CollectionInfo
	popular     *api.PopularPathsData

	drafts     *autosave.Store
	formSavers map[settings.Tab]*autosave.Debouncer
	textSavers map[settings.Tab]*autosave.Debouncer
	fileLimits validate.FileLimits

	prefs  *settings.Settings
	health string

	// queued holds the command armed by a confirm modal's action until
	// the key handler can return it.
	queued tea.Cmd

	width  int
	height int
	ready  bool
}

// NewModel creates the dashboard model. The draft store may be nil, in
// which case autosave is disabled.
func NewModel(backend Backend, prefs *settings.Settings, drafts *autosave.Store) *Model {
	if prefs == nil {
		prefs = settings.DefaultSettings()
	}

	forms := make(map[settings.Tab]*tabForm, len(settings.Tabs))
	// Each tab debounces independently so a pending write on one tab is
	// never displaced by typing on another.
	formDelay := time.Duration(config.GetInt("autosave_form_debounce_ms", 2000)) * time.Millisecond
	textDelay := time.Duration(config.GetInt("autosave_text_debounce_ms", 300)) * time.Millisecond
	formSavers := make(map[settings.Tab]*autosave.Debouncer, len(settings.Tabs))
	textSavers := make(map[settings.Tab]*autosave.Debouncer, len(settings.Tabs))
	for _, tab := range settings.Tabs {
		forms[tab] = newTabForm(tab, prefs.DefaultCollection)
		formSavers[tab] = autosave.NewDebouncer(formDelay)
		textSavers[tab] = autosave.NewDebouncer(textDelay)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	vp := viewport.New(defaultViewportWidth, defaultViewportHeight)

	m := &Model{
		backend:    backend,
		tabs:       NewTabManager(prefs.ActiveTab),
		forms:      forms,
		validators: defaultValidators(),
		tooltips:   defaultTooltips(),

		toasts:        affordance.NewNotificationManager(),
		loading:       affordance.NewLoadingTracker(),
		modal:         affordance.NewModalManager(),
		operation:     affordance.NewProgressTracker(),
		toastDuration: time.Duration(config.GetInt("notification_duration_seconds", 5)) * time.Second,

		keys: defaultKeyMap(),
		help: help.New(),

		spinner:     sp,
		progressBar: progress.New(progress.WithDefaultGradient()),
		viewport:    vp,

		results: make(map[settings.Tab]string),

		drafts:     drafts,
		formSavers: formSavers,
		textSavers: textSavers,
		fileLimits: validate.DefaultFileLimits(),

		prefs:  prefs,
		health: "unknown",
	}

	render.ApplyTheme(prefs.Theme)
	m.restoreDrafts()
	return m
}

func defaultValidators() map[settings.Tab]*validate.Validator {
	return map[settings.Tab]*validate.Validator{
		settings.TabSummarize:    validate.Summarizer(),
		settings.TabAsk:          validate.Question(),
		settings.TabLearningPath: validate.LearningPath(),
	}
}

func defaultTooltips() map[settings.Tab]*affordance.TooltipProvider {
	return map[settings.Tab]*affordance.TooltipProvider{
		settings.TabSummarize: affordance.NewTooltipProvider(map[string]string{
			"text":      "paste the text to summarize, at least 10 characters",
			"maxLength": "summary length in characters, 50-2000",
			"style":     "concise, detailed, bullet, or executive",
		}),
		settings.TabDocuments: affordance.NewTooltipProvider(map[string]string{
			"filePath":       "path to a .pdf, .docx, .txt, or .md file",
			"collectionName": "collection to index the document into",
		}),
		settings.TabAsk: affordance.NewTooltipProvider(map[string]string{
			"question":       "ask anything about your uploaded documents",
			"collectionName": "collection to search for answers",
		}),
		settings.TabLearningPath: affordance.NewTooltipProvider(map[string]string{
			"goal":           "what you want to learn, at least 5 characters",
			"experience":     "beginner, intermediate, or advanced",
			"timeCommitment": "how much time you can invest, e.g. 10 hours/week",
			"learningStyle":  "visual, hands-on, theoretical, or mixed",
		}),
	}
}

// restoreDrafts loads saved form snapshots for every tab.
func (m *Model) restoreDrafts() {
	if m.drafts == nil {
		return
	}
	for _, tab := range settings.Tabs {
		draft, ok, err := m.drafts.Load(string(tab))
		if err != nil {
			logging.Warn("draft restore failed", "tab", string(tab), "error", err)
			continue
		}
		if !ok {
			continue
		}
		if err := m.forms[tab].unmarshal(draft.Data); err != nil {
			logging.Warn("discarding unreadable draft", "tab", string(tab))
			_ = m.drafts.Delete(string(tab))
		}
	}
}

// saveDraftSoon schedules a debounced draft write for the active tab.
func (m *Model) saveDraftSoon() {
	if m.drafts == nil {
		return
	}
	tab := m.tabs.Active()
	snapshot, err := m.forms[tab].marshal()
	if err != nil {
		return
	}
	// Free-text areas save on a shorter window than ordinary fields.
	saver := m.formSavers[tab]
	if m.forms[tab].focusedIsArea() {
		saver = m.textSavers[tab]
	}
	store := m.drafts
	saver.Trigger(func() {
		if err := store.Save(string(tab), snapshot); err != nil {
			logging.Warn("draft save failed", "tab", string(tab), "error", err)
		}
	})
}

// Init starts the spinner, probes backend health, and kicks off the
// initial load of the restored tab.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick, m.checkHealthCmd()}
	if m.tabs.Activate(m.tabs.Active()) {
		cmds = append(cmds, m.initTabCmd(m.tabs.Active()))
	}
	if cmd := m.activeForm().focusFirst(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	m.syncTooltipFocus()
	return tea.Batch(cmds...)
}

func (m *Model) activeForm() *tabForm {
	return m.forms[m.tabs.Active()]
}

func (m *Model) syncTooltipFocus() {
	if tp, ok := m.tooltips[m.tabs.Active()]; ok {
		tp.Focus(m.activeForm().focusedField())
	}
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case progress.FrameMsg:
		bar, cmd := m.progressBar.Update(msg)
		m.progressBar = bar.(progress.Model)
		return m, cmd

	case healthCheckedMsg:
		return m.handleHealthChecked(msg)
	case toastExpiredMsg:
		m.toasts.Dismiss(msg.ID)
		return m, nil

	case summarizeDoneMsg:
		return m.handleSummarizeDone(msg)
	case uploadDoneMsg:
		return m.handleUploadDone(msg)
	case answerDoneMsg:
		return m.handleAnswerDone(msg)
	case pathDoneMsg:
		return m.handlePathDone(msg)
	case popularPathsMsg:
		return m.handlePopularPaths(msg)
	case collectionsMsg:
		return m.handleCollections(msg)
	case collectionDeletedMsg:
		return m.handleCollectionDeleted(msg)
	}
	return m, nil
}

func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.viewport.Width = msg.Width
	m.viewport.Height = msg.Height - headerFooterLines
	if m.viewport.Height < 3 {
		m.viewport.Height = 3
	}
	m.ready = true
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The modal captures all input while open.
	if m.modal.IsOpen() {
		switch msg.String() {
		case "esc", "n":
			m.modal.Dismiss()
		case "enter", "y":
			if m.modal.Confirm() && m.queued != nil {
				cmd := m.queued
				m.queued = nil
				return m, cmd
			}
			m.modal.Dismiss()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()
	case key.Matches(msg, m.keys.NextTab):
		return m.switchTab(1)
	case key.Matches(msg, m.keys.PrevTab):
		return m.switchTab(-1)
	case key.Matches(msg, m.keys.DeleteColl):
		return m.confirmDeleteCollection()
	case key.Matches(msg, m.keys.NextField):
		cmd := m.activeForm().cycleFocus(1)
		m.syncTooltipFocus()
		return m, cmd
	case key.Matches(msg, m.keys.PrevField):
		cmd := m.activeForm().cycleFocus(-1)
		m.syncTooltipFocus()
		return m, cmd
	case key.Matches(msg, m.keys.Submit):
		return m.submitActiveTab()
	case key.Matches(msg, m.keys.Refresh):
		return m, m.checkHealthCmd()
	case key.Matches(msg, m.keys.ClearNotes):
		m.toasts.Clear()
		return m, nil
	case msg.String() == "enter":
		// Enter submits unless the focused field is the multiline text.
		if !m.activeForm().focusedIsArea() {
			return m.submitActiveTab()
		}
	}

	cmd := m.activeForm().update(msg)
	m.saveDraftSoon()
	return m, cmd
}

func (m *Model) switchTab(delta int) (tea.Model, tea.Cmd) {
	var tab settings.Tab
	var needsInit bool
	if delta > 0 {
		tab, needsInit = m.tabs.Next()
	} else {
		tab, needsInit = m.tabs.Prev()
	}
	m.prefs.ActiveTab = tab

	cmds := []tea.Cmd{m.activeForm().focusFirst()}
	if needsInit {
		cmds = append(cmds, m.initTabCmd(tab))
	}
	m.syncTooltipFocus()
	return m, tea.Batch(cmds...)
}

// quit flushes drafts, persists the active tab, and exits.
func (m *Model) quit() tea.Cmd {
	for _, saver := range m.textSavers {
		saver.Flush()
	}
	for _, saver := range m.formSavers {
		saver.Flush()
	}
	m.loading.ReleaseAll()
	if err := settings.Save(m.prefs); err != nil {
		logging.Warn("failed to persist settings", "error", err)
	}
	if m.drafts != nil {
		_ = m.drafts.Close()
	}
	return tea.Quit
}

func (m *Model) handleHealthChecked(msg healthCheckedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.health = "error"
		return m, m.notify("backend unreachable", affordance.LevelError)
	}
	m.health = msg.Data.Status
	return m, nil
}

func (m *Model) checkHealthCmd() tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		data, err := backend.Health(context.Background())
		return healthCheckedMsg{Data: data, Err: err}
	}
}

// notify queues a toast and schedules its expiry.
func (m *Model) notify(text string, level affordance.NotificationLevel) tea.Cmd {
	toast := m.toasts.Add(text, level)
	return tea.Tick(m.toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{ID: toast.ID}
	})
}

// openFile is split out so tests can exercise upload without a real file.
var openFile = os.Open
