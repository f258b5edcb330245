package state

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/api"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/client"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/format"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/logging"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/sanitize"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/settings"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/tui/affordance"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/validate"
)

// renderer turns backend results into viewport content.
var renderer = format.NewTextFormatter()

// initTabCmd runs a tab's first-activation load. Tabs without one are
// initialized on the spot.
func (m *Model) initTabCmd(tab settings.Tab) tea.Cmd {
	switch tab {
	case settings.TabDocuments:
		return m.loadCollectionsCmd()
	case settings.TabLearningPath:
		return m.loadPopularCmd()
	default:
		m.tabs.MarkInitialized(tab)
		return nil
	}
}

// submitActiveTab validates the active form and, when it passes, starts
// the tab's operation.
func (m *Model) submitActiveTab() (tea.Model, tea.Cmd) {
	switch m.tabs.Active() {
	case settings.TabSummarize:
		return m.submitSummarize()
	case settings.TabDocuments:
		return m.submitUpload()
	case settings.TabAsk:
		return m.submitAsk()
	case settings.TabLearningPath:
		return m.submitLearningPath()
	}
	return m, nil
}

// validateForm runs the tab's validator and, on failure, queues one
// error toast per problem in field order.
func (m *Model) validateForm(tab settings.Tab, values map[string]string) (tea.Cmd, bool) {
	validator, ok := m.validators[tab]
	if !ok {
		return nil, true
	}
	problems := validator.Form(values)
	if len(problems) == 0 {
		return nil, true
	}
	var cmds []tea.Cmd
	for _, field := range validator.Fields() {
		if err, found := problems[field]; found {
			cmds = append(cmds, m.notify(err.Error(), affordance.LevelError))
		}
	}
	return tea.Batch(cmds...), false
}

// guardBusy refuses a second submission while the tab's operation runs.
func (m *Model) guardBusy(scope string) (tea.Cmd, bool) {
	if m.loading.IsLoading(scope) {
		return m.notify("still working on the previous request", affordance.LevelWarning), true
	}
	return nil, false
}

func (m *Model) submitSummarize() (tea.Model, tea.Cmd) {
	tab := settings.TabSummarize
	values := m.forms[tab].values()
	if cmd, ok := m.validateForm(tab, values); !ok {
		return m, cmd
	}
	if cmd, busy := m.guardBusy(string(tab)); busy {
		return m, cmd
	}

	options := api.DefaultSummarizeOptions()
	if raw := values["maxLength"]; raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			options.MaxLength = n
		}
	}
	if values["style"] != "" {
		options.Style = values["style"]
	}
	req := api.SummarizeRequest{Text: values["text"], Options: options}

	token := m.loading.Acquire(string(tab))
	m.operation.Start("summarizing")
	backend := m.backend
	return m, func() tea.Msg {
		result, err := backend.Summarize(context.Background(), req)
		return summarizeDoneMsg{Token: token, Result: result, Err: err}
	}
}

func (m *Model) handleSummarizeDone(msg summarizeDoneMsg) (tea.Model, tea.Cmd) {
	m.loading.Release(msg.Token)
	m.operation.Complete()
	if msg.Err != nil {
		return m, m.notifyError("summarize failed", msg.Err)
	}
	m.setResult(settings.TabSummarize, func(buf *bytes.Buffer) error {
		return renderer.Summary(buf, msg.Result)
	})
	return m, m.notify("summary ready", affordance.LevelSuccess)
}

func (m *Model) submitUpload() (tea.Model, tea.Cmd) {
	tab := settings.TabDocuments
	values := m.forms[tab].values()

	path := values["filePath"]
	if path == "" {
		return m, m.notify("file path is required", affordance.LevelError)
	}
	info, err := os.Stat(path)
	if err != nil {
		return m, m.notify("cannot read "+path, affordance.LevelError)
	}
	if err := validate.File(info.Name(), info.Size(), m.fileLimits); err != nil {
		return m, m.notify(err.Error(), affordance.LevelError)
	}
	if cmd, busy := m.guardBusy(string(tab)); busy {
		return m, cmd
	}

	collection := values["collectionName"]
	if collection == "" {
		collection = m.prefs.DefaultCollection
	}

	token := m.loading.Acquire(string(tab))
	m.operation.Start("uploading " + filepath.Base(path))
	backend := m.backend
	return m, func() tea.Msg {
		file, err := openFile(path)
		if err != nil {
			return uploadDoneMsg{Token: token, Err: err}
		}
		defer file.Close()
		result, err := backend.UploadDocument(context.Background(), filepath.Base(path), file, collection)
		return uploadDoneMsg{Token: token, Result: result, Err: err}
	}
}

func (m *Model) handleUploadDone(msg uploadDoneMsg) (tea.Model, tea.Cmd) {
	m.loading.Release(msg.Token)
	m.operation.Complete()
	if msg.Err != nil {
		return m, m.notifyError("upload failed", msg.Err)
	}
	m.setResult(settings.TabDocuments, func(buf *bytes.Buffer) error {
		return renderer.Upload(buf, msg.Result)
	})
	form := m.forms[settings.TabDocuments]
	form.reset()
	form.setValues(map[string]string{"collectionName": msg.Result.CollectionName})
	if m.drafts != nil {
		_ = m.drafts.Delete(string(settings.TabDocuments))
	}
	// The collection list is stale after an upload.
	return m, tea.Batch(
		m.notify("document indexed", affordance.LevelSuccess),
		m.loadCollectionsCmd(),
	)
}

func (m *Model) submitAsk() (tea.Model, tea.Cmd) {
	tab := settings.TabAsk
	values := m.forms[tab].values()
	if cmd, ok := m.validateForm(tab, values); !ok {
		return m, cmd
	}
	if cmd, busy := m.guardBusy(string(tab)); busy {
		return m, cmd
	}

	req := api.QuestionRequest{
		Question:       values["question"],
		CollectionName: values["collectionName"],
		Options:        api.QuestionOptions{TopK: 3, IncludeMetadata: true},
	}

	token := m.loading.Acquire(string(tab))
	m.operation.Start("searching documents")
	backend := m.backend
	return m, func() tea.Msg {
		result, err := backend.AskQuestion(context.Background(), req)
		return answerDoneMsg{Token: token, Result: result, Err: err}
	}
}

func (m *Model) handleAnswerDone(msg answerDoneMsg) (tea.Model, tea.Cmd) {
	m.loading.Release(msg.Token)
	m.operation.Complete()
	if msg.Err != nil {
		return m, m.notifyError("question failed", msg.Err)
	}
	m.setResult(settings.TabAsk, func(buf *bytes.Buffer) error {
		return renderer.Answer(buf, msg.Result)
	})
	return m, m.notify("answer ready", affordance.LevelSuccess)
}

func (m *Model) submitLearningPath() (tea.Model, tea.Cmd) {
	tab := settings.TabLearningPath
	values := m.forms[tab].values()
	if cmd, ok := m.validateForm(tab, values); !ok {
		return m, cmd
	}
	if cmd, busy := m.guardBusy(string(tab)); busy {
		return m, cmd
	}

	profile := api.UserProfile{
		Goal:           values["goal"],
		Experience:     values["experience"],
		TimeCommitment: values["timeCommitment"],
		LearningStyle:  values["learningStyle"],
	}
	if profile.Experience == "" {
		profile.Experience = "beginner"
	}
	if profile.LearningStyle == "" {
		profile.LearningStyle = "mixed"
	}

	token := m.loading.Acquire(string(tab))
	m.operation.Start("generating learning path")
	backend := m.backend
	return m, func() tea.Msg {
		result, err := backend.GenerateLearningPath(context.Background(), profile)
		return pathDoneMsg{Token: token, Result: result, Err: err}
	}
}

func (m *Model) handlePathDone(msg pathDoneMsg) (tea.Model, tea.Cmd) {
	m.loading.Release(msg.Token)
	m.operation.Complete()
	if msg.Err != nil {
		return m, m.notifyError("learning path failed", msg.Err)
	}
	m.setResult(settings.TabLearningPath, func(buf *bytes.Buffer) error {
		return renderer.LearningPath(buf, msg.Result)
	})
	return m, m.notify("learning path ready", affordance.LevelSuccess)
}

func (m *Model) loadCollectionsCmd() tea.Cmd {
	token := m.loading.Acquire("collections")
	backend := m.backend
	return func() tea.Msg {
		data, err := backend.ListCollections(context.Background())
		return collectionsMsg{Token: token, Data: data, Err: err}
	}
}

func (m *Model) handleCollections(msg collectionsMsg) (tea.Model, tea.Cmd) {
	m.loading.Release(msg.Token)
	if msg.Err != nil {
		if m.tabs.IsInitializing(settings.TabDocuments) {
			m.tabs.MarkFailed(settings.TabDocuments)
		}
		return m, m.notifyError("loading collections failed", msg.Err)
	}
	m.tabs.MarkInitialized(settings.TabDocuments)
	m.collections = msg.Data.Collections
	return m, nil
}

func (m *Model) loadPopularCmd() tea.Cmd {
	token := m.loading.Acquire("popular")
	backend := m.backend
	return func() tea.Msg {
		data, err := backend.PopularPaths(context.Background())
		return popularPathsMsg{Token: token, Data: data, Err: err}
	}
}

func (m *Model) handlePopularPaths(msg popularPathsMsg) (tea.Model, tea.Cmd) {
	m.loading.Release(msg.Token)
	if msg.Err != nil {
		if m.tabs.IsInitializing(settings.TabLearningPath) {
			m.tabs.MarkFailed(settings.TabLearningPath)
		}
		return m, m.notifyError("loading popular paths failed", msg.Err)
	}
	m.tabs.MarkInitialized(settings.TabLearningPath)
	m.popular = msg.Data
	return m, nil
}

// confirmDeleteCollection opens the confirm modal for the collection
// named in the documents form.
func (m *Model) confirmDeleteCollection() (tea.Model, tea.Cmd) {
	if m.tabs.Active() != settings.TabDocuments {
		return m, nil
	}
	name := m.forms[settings.TabDocuments].values()["collectionName"]
	if name == "" {
		return m, m.notify("collection name is required", affordance.LevelError)
	}

	m.modal.Show(affordance.Modal{
		Kind:  affordance.ModalConfirm,
		Title: "Delete collection",
		Body:  "Delete collection " + sanitize.Line(name) + " and every document in it?",
		OnConfirm: func() {
			m.queued = m.deleteCollectionCmd(name)
		},
	})
	return m, nil
}

func (m *Model) deleteCollectionCmd(name string) tea.Cmd {
	token := m.loading.Acquire("collections")
	backend := m.backend
	return func() tea.Msg {
		err := backend.DeleteCollection(context.Background(), name)
		return collectionDeletedMsg{Token: token, Name: name, Err: err}
	}
}

func (m *Model) handleCollectionDeleted(msg collectionDeletedMsg) (tea.Model, tea.Cmd) {
	m.loading.Release(msg.Token)
	if msg.Err != nil {
		return m, m.notifyError("delete failed", msg.Err)
	}
	return m, tea.Batch(
		m.notify("deleted collection "+msg.Name, affordance.LevelSuccess),
		m.loadCollectionsCmd(),
	)
}

// setResult renders a result into the tab's stored output and, when the
// tab is active, into the viewport.
func (m *Model) setResult(tab settings.Tab, render func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		logging.Error("render failed", "tab", string(tab), "error", err)
		return
	}
	m.results[tab] = buf.String()
	if m.tabs.Active() == tab {
		m.viewport.SetContent(m.results[tab])
		m.viewport.GotoTop()
	}
}

// notifyError classifies err and queues the matching toast.
func (m *Model) notifyError(prefix string, err error) tea.Cmd {
	level := affordance.LevelError
	text := prefix

	var reqErr *client.RequestError
	switch {
	case client.IsTransport(err):
		m.health = "error"
		text = prefix + ": backend unreachable"
	case errors.As(err, &reqErr):
		level = affordance.LevelWarning
		text = prefix + ": " + reqErr.Error()
	default:
		text = prefix + ": " + err.Error()
	}
	logging.Warn(prefix, "error", err)
	return m.notify(sanitize.Line(text), level)
}
