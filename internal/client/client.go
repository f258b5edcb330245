// Package client is the single point of contact with the AI microservices
// backend. It owns the response cache, deduplicates identical in-flight
// GETs, and tracks the backend health signal.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/api"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/config"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/logging"
	"github.com/Vivinjayanth/AI-Microservices-Platform/internal/sanitize"
)

// HealthStatus is the last observed backend health.
type HealthStatus int

const (
	HealthUnknown HealthStatus = iota
	HealthHealthy
	HealthError
)

// String returns the display name of the status.
func (s HealthStatus) String() string {
	switch s {
	case HealthHealthy:
		return "healthy"
	case HealthError:
		return "error"
	default:
		return "unknown"
	}
}

// Client issues requests against the backend. GET responses are memoized
// in a bounded LRU+TTL cache; concurrent GETs for the same key share one
// network call. Safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *responseCache

	pendingMu sync.Mutex
	pending   map[string]*pendingCall

	healthMu sync.RWMutex
	health   HealthStatus
}

type pendingCall struct {
	done    chan struct{}
	payload []byte
	err     error
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Used by tests to
// install a fake transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithCache replaces the cache dimensions.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = newResponseCache(capacity, ttl)
	}
}

// New creates a Client configured from the global configuration.
func New() *Client {
	return NewWithOptions(config.Get("backend_url", "http://localhost:8000"),
		WithCache(
			config.GetInt("cache_capacity", 128),
			time.Duration(config.GetInt("cache_ttl_seconds", 300))*time.Second,
		),
		WithHTTPClient(&http.Client{
			Timeout: time.Duration(config.GetInt("request_timeout_seconds", 60)) * time.Second,
		}),
	)
}

// NewWithOptions creates a Client for the given base URL.
func NewWithOptions(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 60 * time.Second},
		cache:   newResponseCache(128, 5*time.Minute),
		pending: make(map[string]*pendingCall),
		health:  HealthUnknown,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HealthStatus returns the last observed backend health.
func (c *Client) HealthStatus() HealthStatus {
	c.healthMu.RLock()
	defer c.healthMu.RUnlock()
	return c.health
}

func (c *Client) setHealth(s HealthStatus) {
	c.healthMu.Lock()
	c.health = s
	c.healthMu.Unlock()
}

// cacheKey builds the composite memoization key for a GET.
func cacheKey(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}

// resourcePrefix returns the cache-invalidation prefix for a path:
// the leading "/api/<resource>" segment.
func resourcePrefix(path string) string {
	parts := strings.SplitN(strings.TrimPrefix(path, "/"), "/", 3)
	if len(parts) >= 2 {
		return "/" + parts[0] + "/" + parts[1]
	}
	return path
}

// get performs a memoized, deduplicated GET and unmarshals the envelope
// data into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	key := cacheKey(path, query)

	if payload, ok := c.cache.Get(key); ok {
		logging.Debug("cache hit", "key", key)
		return json.Unmarshal(payload, out)
	}

	c.pendingMu.Lock()
	if call, ok := c.pending[key]; ok {
		// Another caller already has this request in flight; share its result.
		c.pendingMu.Unlock()
		select {
		case <-call.done:
		case <-ctx.Done():
			return &TransportError{Err: ctx.Err()}
		}
		if call.err != nil {
			return call.err
		}
		return json.Unmarshal(call.payload, out)
	}
	call := &pendingCall{done: make(chan struct{})}
	c.pending[key] = call
	c.pendingMu.Unlock()

	payload, err := c.do(ctx, http.MethodGet, key, "", nil)

	call.payload = payload
	call.err = err
	close(call.done)
	c.pendingMu.Lock()
	delete(c.pending, key)
	c.pendingMu.Unlock()

	if err != nil {
		return err
	}
	c.cache.Put(key, payload)
	return json.Unmarshal(payload, out)
}

// send performs a mutating call with a JSON body and unmarshals the
// envelope data into out. The resource's cached GETs are invalidated.
func (c *Client) send(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	payload, err := c.do(ctx, method, path, "application/json", reader)
	if err != nil {
		return err
	}
	c.cache.InvalidatePrefix(resourcePrefix(path))
	if out == nil {
		return nil
	}
	return json.Unmarshal(payload, out)
}

// do performs one HTTP round trip and normalizes failures:
// transport errors become TransportError, non-2xx statuses become
// RequestError, and success=false envelopes become BackendError.
// Returns the raw envelope data on success.
func (c *Client) do(ctx context.Context, method, pathAndQuery, contentType string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+pathAndQuery, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logging.Warn("request failed", "method", method, "path", pathAndQuery, "error", err)
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	logging.Debug("request completed",
		"method", method, "path", pathAndQuery,
		"status", resp.StatusCode, "elapsed", time.Since(started).String())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newRequestError(resp.StatusCode, errorDetail(raw))
	}

	var envelope api.Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if !envelope.Success {
		// Backend-controlled text; strip escapes before it can reach a
		// terminal through Error().
		msg := sanitize.Line(envelope.Error)
		if msg == "" {
			msg = "request failed"
		}
		return nil, &BackendError{Message: msg}
	}
	return envelope.Data, nil
}

// errorDetail extracts the human-readable message from an error body.
// The backend emits either {"detail": ...} or the standard envelope.
// The message is backend-controlled, so escapes are stripped here and
// every error surface downstream can print it as-is.
func errorDetail(raw []byte) string {
	var detail struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if json.Unmarshal(raw, &detail) != nil {
		return ""
	}
	if detail.Detail != "" {
		return sanitize.Line(detail.Detail)
	}
	return sanitize.Line(detail.Error)
}

// Health probes GET /health and updates the health signal: healthy on
// success, error on any failure. The probe is never served from cache.
func (c *Client) Health(ctx context.Context) (*api.HealthData, error) {
	payload, err := c.do(ctx, http.MethodGet, "/health", "", nil)
	if err != nil {
		c.setHealth(HealthError)
		return nil, err
	}
	var data api.HealthData
	if err := json.Unmarshal(payload, &data); err != nil {
		c.setHealth(HealthError)
		return nil, fmt.Errorf("decode health payload: %w", err)
	}
	c.setHealth(HealthHealthy)
	return &data, nil
}

// Summarize condenses text via POST /api/summarize.
func (c *Client) Summarize(ctx context.Context, req api.SummarizeRequest) (*api.SummarizeResult, error) {
	var result api.SummarizeResult
	if err := c.send(ctx, http.MethodPost, "/api/summarize", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SummarizeBatch condenses up to ten texts via POST /api/summarize/batch.
func (c *Client) SummarizeBatch(ctx context.Context, req api.BatchSummarizeRequest) (*api.BatchSummarizeResult, error) {
	var result api.BatchSummarizeResult
	if err := c.send(ctx, http.MethodPost, "/api/summarize/batch", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UploadDocument sends a document as multipart form data to
// POST /api/documents/upload and indexes it into collection.
func (c *Client) UploadDocument(ctx context.Context, fileName string, content io.Reader, collection string) (*api.UploadResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("document", fileName)
	if err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	if err := writer.WriteField("collectionName", collection); err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}

	payload, err := c.do(ctx, http.MethodPost, "/api/documents/upload", writer.FormDataContentType(), &buf)
	if err != nil {
		return nil, err
	}
	c.cache.InvalidatePrefix("/api/documents")

	var result api.UploadResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("decode upload payload: %w", err)
	}
	return &result, nil
}

// AskQuestion queries uploaded documents via POST /api/documents/ask.
func (c *Client) AskQuestion(ctx context.Context, req api.QuestionRequest) (*api.AnswerResult, error) {
	var result api.AnswerResult
	if err := c.send(ctx, http.MethodPost, "/api/documents/ask", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchDocuments searches document content via GET /api/documents/search.
func (c *Client) SearchDocuments(ctx context.Context, query, collection string, limit int) (*api.SearchResult, error) {
	params := url.Values{}
	params.Set("query", query)
	if collection != "" {
		params.Set("collectionName", collection)
	}
	if limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", limit))
	}
	var result api.SearchResult
	if err := c.get(ctx, "/api/documents/search", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListCollections lists document collections via GET /api/documents/collections.
func (c *Client) ListCollections(ctx context.Context) (*api.CollectionsData, error) {
	var result api.CollectionsData
	if err := c.get(ctx, "/api/documents/collections", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteCollection removes a collection via DELETE /api/documents/collections/{name}.
func (c *Client) DeleteCollection(ctx context.Context, name string) error {
	return c.send(ctx, http.MethodDelete, "/api/documents/collections/"+url.PathEscape(name), nil, nil)
}

// GenerateLearningPath builds a personalized path via POST /api/learning-path/generate.
func (c *Client) GenerateLearningPath(ctx context.Context, profile api.UserProfile) (*api.LearningPathResult, error) {
	var result api.LearningPathResult
	if err := c.send(ctx, http.MethodPost, "/api/learning-path/generate", profile, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PopularPaths lists trending paths via GET /api/learning-path/popular.
func (c *Client) PopularPaths(ctx context.Context) (*api.PopularPathsData, error) {
	var result api.PopularPathsData
	if err := c.get(ctx, "/api/learning-path/popular", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateProgress marks a milestone via PUT /api/learning-path/progress.
func (c *Client) UpdateProgress(ctx context.Context, req api.ProgressUpdateRequest) (*api.ProgressUpdateResult, error) {
	var result api.ProgressUpdateResult
	if err := c.send(ctx, http.MethodPut, "/api/learning-path/progress", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
