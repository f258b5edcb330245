package state

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/api"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/autosave"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/client"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/settings"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/tui/affordance"
)

// fakeBackend counts calls and returns canned results or a forced error.
type fakeBackend struct {
	err error

	healthCalls      atomic.Int32
	summarizeCalls   atomic.Int32
	uploadCalls      atomic.Int32
	askCalls         atomic.Int32
	pathCalls        atomic.Int32
	popularCalls     atomic.Int32
	collectionsCalls atomic.Int32
	deleteCalls      atomic.Int32
}

func (f *fakeBackend) Health(context.Context) (*api.HealthData, error) {
	f.healthCalls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return &api.HealthData{Status: "healthy"}, nil
}

func (f *fakeBackend) Summarize(context.Context, api.SummarizeRequest) (*api.SummarizeResult, error) {
	f.summarizeCalls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return &api.SummarizeResult{Summary: "the gist", OriginalLength: 100, SummaryLength: 8}, nil
}

func (f *fakeBackend) UploadDocument(context.Context, string, io.Reader, string) (*api.UploadResult, error) {
	f.uploadCalls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return &api.UploadResult{FileName: "doc.pdf", CollectionName: "default", ChunksCreated: 3}, nil
}

func (f *fakeBackend) AskQuestion(context.Context, api.QuestionRequest) (*api.AnswerResult, error) {
	f.askCalls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return &api.AnswerResult{Answer: "forty-two"}, nil
}

func (f *fakeBackend) ListCollections(context.Context) (*api.CollectionsData, error) {
	f.collectionsCalls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return &api.CollectionsData{Collections: []api.CollectionInfo{{Name: "default", DocumentCount: 1}}}, nil
}

func (f *fakeBackend) DeleteCollection(context.Context, string) error {
	f.deleteCalls.Add(1)
	return f.err
}

func (f *fakeBackend) GenerateLearningPath(context.Context, api.UserProfile) (*api.LearningPathResult, error) {
	f.pathCalls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return &api.LearningPathResult{LearningPath: api.LearningPath{Title: "Go Path"}}, nil
}

func (f *fakeBackend) PopularPaths(context.Context) (*api.PopularPathsData, error) {
	f.popularCalls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return &api.PopularPathsData{PopularPaths: []api.PopularPath{{Title: "ML Basics"}}}, nil
}

func newTestModel(backend Backend) *Model {
	m := NewModel(backend, settings.DefaultSettings(), nil)
	// Keep expiry ticks from stalling drain.
	m.toastDuration = time.Millisecond
	return m
}

// drain runs a command and feeds its message back into the model,
// following batches, until no commands remain.
func drain(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg := next()
		if msg == nil {
			continue
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		if _, ok := msg.(toastExpiredMsg); ok {
			continue // expiry ticks would block the drain
		}
		_, follow := m.Update(msg)
		queue = append(queue, follow)
	}
}

func TestSubmitSummarizeHappyPath(t *testing.T) {
	backend := &fakeBackend{}
	m := newTestModel(backend)
	m.forms[settings.TabSummarize].setValues(map[string]string{
		"text":  "a sufficiently long input text",
		"style": "concise",
	})

	_, cmd := m.submitActiveTab()
	drain(t, m, cmd)

	assert.Equal(t, int32(1), backend.summarizeCalls.Load())
	assert.Contains(t, m.results[settings.TabSummarize], "the gist")
	assert.False(t, m.loading.Any(), "token must be released after completion")

	toasts := m.toasts.Active()
	require.Len(t, toasts, 1)
	assert.Equal(t, affordance.LevelSuccess, toasts[0].Level)
}

func TestSubmitSummarizeRejectsInvalidInputWithoutNetworkCall(t *testing.T) {
	backend := &fakeBackend{}
	m := newTestModel(backend)
	m.forms[settings.TabSummarize].setValues(map[string]string{"text": "short"})

	_, cmd := m.submitActiveTab()
	drain(t, m, cmd)

	assert.Equal(t, int32(0), backend.summarizeCalls.Load(), "invalid input must not reach the backend")
	toasts := m.toasts.Active()
	require.NotEmpty(t, toasts)
	assert.Equal(t, affordance.LevelError, toasts[0].Level)
	assert.Contains(t, toasts[0].Text, "at least 10 characters")
}

func TestTokenReleasedOnFailure(t *testing.T) {
	backend := &fakeBackend{err: errors.New("boom")}
	m := newTestModel(backend)
	m.forms[settings.TabSummarize].setValues(map[string]string{
		"text": "a sufficiently long input text",
	})

	_, cmd := m.submitActiveTab()
	drain(t, m, cmd)

	assert.False(t, m.loading.Any(), "token must be released even when the call fails")
	toasts := m.toasts.Active()
	require.NotEmpty(t, toasts)
	assert.Equal(t, affordance.LevelError, toasts[0].Level)
}

func TestRequestErrorBecomesWarningToast(t *testing.T) {
	backend := &fakeBackend{err: &client.RequestError{Status: 422, StatusText: "Unprocessable Entity", Detail: "too short"}}
	m := newTestModel(backend)
	m.forms[settings.TabSummarize].setValues(map[string]string{
		"text": "a sufficiently long input text",
	})

	_, cmd := m.submitActiveTab()
	drain(t, m, cmd)

	toasts := m.toasts.Active()
	require.NotEmpty(t, toasts)
	assert.Equal(t, affordance.LevelWarning, toasts[0].Level)
	assert.Contains(t, toasts[0].Text, "too short")
}

func TestTransportErrorFlipsHealth(t *testing.T) {
	backend := &fakeBackend{err: &client.TransportError{Err: errors.New("connection refused")}}
	m := newTestModel(backend)
	m.forms[settings.TabSummarize].setValues(map[string]string{
		"text": "a sufficiently long input text",
	})

	_, cmd := m.submitActiveTab()
	drain(t, m, cmd)

	assert.Equal(t, "error", m.health)
}

func TestSecondSubmitWhileBusyIsRefused(t *testing.T) {
	backend := &fakeBackend{}
	m := newTestModel(backend)
	m.forms[settings.TabSummarize].setValues(map[string]string{
		"text": "a sufficiently long input text",
	})

	_, first := m.submitActiveTab()
	require.NotNil(t, first)
	// The first call is still in flight; submit again before draining.
	_, second := m.submitActiveTab()
	drain(t, m, second)

	assert.Equal(t, int32(0), backend.summarizeCalls.Load(), "second submit must not start another call")
	toasts := m.toasts.Active()
	require.NotEmpty(t, toasts)
	assert.Equal(t, affordance.LevelWarning, toasts[0].Level)

	drain(t, m, first)
	assert.Equal(t, int32(1), backend.summarizeCalls.Load())
}

func TestDocumentsTabInitLoadsCollectionsOnce(t *testing.T) {
	backend := &fakeBackend{}
	m := newTestModel(backend)

	_, cmd := m.switchTab(1) // summarize -> documents
	drain(t, m, cmd)
	require.Equal(t, int32(1), backend.collectionsCalls.Load())
	assert.Equal(t, "default", m.collections[0].Name)

	// Leave and return: no reload.
	_, cmd = m.switchTab(1)
	drain(t, m, cmd)
	_, cmd = m.switchTab(-1)
	drain(t, m, cmd)
	assert.Equal(t, int32(1), backend.collectionsCalls.Load())
}

func TestFailedTabInitRetriesOnNextActivation(t *testing.T) {
	backend := &fakeBackend{err: errors.New("down")}
	m := newTestModel(backend)

	_, cmd := m.switchTab(1)
	drain(t, m, cmd)
	require.Equal(t, int32(1), backend.collectionsCalls.Load())
	assert.False(t, m.tabs.IsInitialized(settings.TabDocuments))

	backend.err = nil
	_, cmd = m.switchTab(1) // away
	drain(t, m, cmd)
	_, cmd = m.switchTab(-1) // back
	drain(t, m, cmd)
	assert.Equal(t, int32(2), backend.collectionsCalls.Load(), "failed init retries")
	assert.True(t, m.tabs.IsInitialized(settings.TabDocuments))
}

func TestLearningPathTabInitLoadsPopularPaths(t *testing.T) {
	backend := &fakeBackend{}
	m := newTestModel(backend)

	_, cmd := m.switchTab(-1) // wraps to learning path
	drain(t, m, cmd)

	assert.Equal(t, int32(1), backend.popularCalls.Load())
	require.NotNil(t, m.popular)
	assert.Equal(t, "ML Basics", m.popular.PopularPaths[0].Title)
}

func TestAskHappyPath(t *testing.T) {
	backend := &fakeBackend{}
	m := newTestModel(backend)
	m.tabs.Activate(settings.TabAsk)
	m.forms[settings.TabAsk].setValues(map[string]string{
		"question":       "what is a goroutine?",
		"collectionName": "default",
	})

	_, cmd := m.submitActiveTab()
	drain(t, m, cmd)

	assert.Equal(t, int32(1), backend.askCalls.Load())
	assert.Contains(t, m.results[settings.TabAsk], "forty-two")
}

func TestDeleteCollectionFlow(t *testing.T) {
	backend := &fakeBackend{}
	m := newTestModel(backend)
	_, cmd := m.switchTab(1) // documents
	drain(t, m, cmd)
	m.forms[settings.TabDocuments].setValues(map[string]string{"collectionName": "default"})

	_, cmd = m.confirmDeleteCollection()
	drain(t, m, cmd)
	require.True(t, m.modal.IsOpen(), "deletion must ask for confirmation first")
	assert.Equal(t, int32(0), backend.deleteCalls.Load())

	_, cmd = m.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	drain(t, m, cmd)

	assert.Equal(t, int32(1), backend.deleteCalls.Load())
	assert.False(t, m.modal.IsOpen())
	assert.Equal(t, int32(2), backend.collectionsCalls.Load(), "list refreshes after deletion")
	assert.False(t, m.loading.Any())
}

func TestEscDismissesModalWithoutAction(t *testing.T) {
	backend := &fakeBackend{}
	m := newTestModel(backend)
	_, cmd := m.switchTab(1)
	drain(t, m, cmd)
	m.forms[settings.TabDocuments].setValues(map[string]string{"collectionName": "default"})

	_, _ = m.confirmDeleteCollection()
	require.True(t, m.modal.IsOpen())

	_, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.modal.IsOpen())
	assert.Equal(t, int32(0), backend.deleteCalls.Load())
}

func TestUploadRejectsDisallowedFileBeforeNetwork(t *testing.T) {
	backend := &fakeBackend{}
	m := newTestModel(backend)
	_, cmd := m.switchTab(1)
	drain(t, m, cmd)

	tmp := t.TempDir() + "/malware.exe"
	require.NoError(t, writeFile(tmp, "MZ"))
	m.forms[settings.TabDocuments].setValues(map[string]string{
		"filePath":       tmp,
		"collectionName": "default",
	})

	_, cmd = m.submitActiveTab()
	drain(t, m, cmd)

	assert.Equal(t, int32(0), backend.uploadCalls.Load())
	toasts := m.toasts.Active()
	require.NotEmpty(t, toasts)
	assert.Contains(t, toasts[0].Text, ".exe")
}

func TestUploadHappyPathRefreshesCollections(t *testing.T) {
	backend := &fakeBackend{}
	m := newTestModel(backend)
	_, cmd := m.switchTab(1)
	drain(t, m, cmd)
	require.Equal(t, int32(1), backend.collectionsCalls.Load())

	tmp := t.TempDir() + "/notes.md"
	require.NoError(t, writeFile(tmp, "# notes"))
	m.forms[settings.TabDocuments].setValues(map[string]string{
		"filePath":       tmp,
		"collectionName": "default",
	})

	_, cmd = m.submitActiveTab()
	drain(t, m, cmd)

	assert.Equal(t, int32(1), backend.uploadCalls.Load())
	assert.Equal(t, int32(2), backend.collectionsCalls.Load(), "upload invalidates the collection list")
	assert.Contains(t, m.results[settings.TabDocuments], "doc.pdf")
	assert.Empty(t, m.forms[settings.TabDocuments].values()["filePath"], "form clears after a successful upload")
	assert.False(t, m.loading.Any())
}

func TestHealthProbeUpdatesStatus(t *testing.T) {
	backend := &fakeBackend{}
	m := newTestModel(backend)

	drain(t, m, m.checkHealthCmd())
	assert.Equal(t, "healthy", m.health)

	backend.err = errors.New("down")
	drain(t, m, m.checkHealthCmd())
	assert.Equal(t, "error", m.health)
}

func TestViewRendersWithoutPanicking(t *testing.T) {
	backend := &fakeBackend{}
	m := newTestModel(backend)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	view := m.View()
	assert.Contains(t, view, "Summarize")
	assert.Contains(t, view, "backend:")
}

// A pending draft on one tab must survive typing on another tab inside
// the debounce window: every tab debounces independently.
func TestPendingDraftsSurviveTabSwitch(t *testing.T) {
	store, err := autosave.NewStore(filepath.Join(t.TempDir(), "drafts.db"))
	require.NoError(t, err)
	defer store.Close()

	m := NewModel(&fakeBackend{}, settings.DefaultSettings(), store)
	m.toastDuration = time.Millisecond

	m.switchTab(1) // documents
	m.forms[settings.TabDocuments].setValues(map[string]string{"filePath": "/tmp/notes.pdf"})
	m.saveDraftSoon()

	m.switchTab(1) // ask, while the documents draft is still pending
	m.forms[settings.TabAsk].setValues(map[string]string{"question": "what changed?"})
	m.saveDraftSoon()

	for _, saver := range m.formSavers {
		saver.Flush()
	}

	docs, ok, err := store.Load(string(settings.TabDocuments))
	require.NoError(t, err)
	require.True(t, ok, "documents draft written despite the later ask edit")
	assert.Contains(t, docs.Data, "notes.pdf")

	ask, ok, err := store.Load(string(settings.TabAsk))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, ask.Data, "what changed?")
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
