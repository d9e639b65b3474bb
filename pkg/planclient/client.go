package planclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/MOTAHAR124/AI-Trip-Planner/internal/models/request_models"
)

// DefaultTimeout is the cancellation ceiling for one generation attempt.
const DefaultTimeout = 60 * time.Second

// State models the lifecycle of one generation attempt.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateStreaming
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateStreaming:
		return "streaming"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

var rateLimitPattern = regexp.MustCompile(`(?i)rate.?limit|too many requests|quota|\b429\b`)

// Session owns the full lifecycle of plan generation attempts: the growing
// plan buffer, the loading state and the single user-facing error all live
// here, so independent sessions never interfere.
type Session struct {
	endpoint   string
	httpClient *http.Client
	timeout    time.Duration
	authToken  string
	onChunk    func(snapshot string)
	onComplete func(final string)

	mu      sync.Mutex
	state   State
	buffer  strings.Builder
	planErr *PlanError
	cancel  context.CancelFunc
	attempt uint64
}

type Option func(*Session)

// WithTimeout overrides the cancellation ceiling.
func WithTimeout(d time.Duration) Option {
	return func(s *Session) { s.timeout = d }
}

// WithHTTPClient overrides the transport, mainly for tests.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Session) { s.httpClient = c }
}

// WithAuthToken attaches a bearer token so the server can personalize the plan.
func WithAuthToken(token string) Option {
	return func(s *Session) { s.authToken = token }
}

// WithChunkHook registers a callback invoked with the full buffer snapshot
// after every appended fragment. Drives incremental re-rendering.
func WithChunkHook(fn func(snapshot string)) Option {
	return func(s *Session) { s.onChunk = fn }
}

// WithCompleteHook registers a callback invoked once with the final plan text
// after a clean end of stream.
func WithCompleteHook(fn func(final string)) Option {
	return func(s *Session) { s.onComplete = fn }
}

func NewSession(endpoint string, opts ...Option) *Session {
	s := &Session{
		endpoint:   endpoint,
		httpClient: http.DefaultClient,
		timeout:    DefaultTimeout,
		state:      StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit runs one generation attempt to completion. It validates the payload,
// resets the buffer and error, streams the response body appending each chunk
// in receipt order, and classifies any failure. A Submit issued while another
// attempt is in flight cancels and replaces it; the superseded attempt can no
// longer touch session state.
func (s *Session) Submit(ctx context.Context, payload request_models.TripPlanRequest) error {
	if err := payload.Validate(); err != nil {
		return &PlanError{Kind: ErrorValidation, Message: err.Error(), cause: err}
	}

	runCtx, cancel, attempt := s.begin(ctx)
	defer cancel()

	body, err := json.Marshal(payload)
	if err != nil {
		return s.fail(attempt, &PlanError{Kind: ErrorTransport, Message: msgUpstream, cause: err})
	}

	req, err := http.NewRequestWithContext(runCtx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return s.fail(attempt, &PlanError{Kind: ErrorTransport, Message: msgUpstream, cause: err})
	}
	req.Header.Set("Content-Type", "application/json")
	if s.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.authToken)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			return s.fail(attempt, &PlanError{Kind: ErrorTimeout, Message: msgTimeout, cause: err})
		}
		return s.fail(attempt, &PlanError{Kind: ErrorTransport, Message: msgUpstream, cause: err})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return s.fail(attempt, classifyStatus(resp.StatusCode, strings.TrimSpace(string(raw))))
	}

	s.setState(attempt, StateStreaming)

	buf := make([]byte, 4096)
	for {
		n, err := resp.Body.Read(buf)
		if n > 0 {
			s.append(attempt, string(buf[:n]))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(runCtx.Err(), context.DeadlineExceeded) {
				return s.fail(attempt, &PlanError{Kind: ErrorTimeout, Message: msgTimeout, cause: err})
			}
			return s.fail(attempt, classifyStreamError(err))
		}
	}

	final, superseded := s.complete(attempt)
	if !superseded && s.onComplete != nil {
		s.onComplete(final)
	}
	return nil
}

// StartNewPlan clears the result and error and returns the session to the
// submission entry point. It does not cancel in-flight work; it is only
// meaningful when idle.
func (s *Session) StartNewPlan() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buffer.Reset()
	s.planErr = nil
	s.state = StateIdle
}

// Plan returns a snapshot of the itinerary text received so far.
func (s *Session) Plan() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buffer.String()
}

// State reports the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Loading reports whether an attempt is in flight.
func (s *Session) Loading() bool {
	st := s.State()
	return st == StateSubmitting || st == StateStreaming
}

// Err returns the classified error of the last failed attempt, or nil.
func (s *Session) Err() *PlanError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.planErr
}

// begin resets session state for a fresh attempt, cancelling any prior one.
func (s *Session) begin(ctx context.Context) (context.Context, context.CancelFunc, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	s.attempt++
	s.buffer.Reset()
	s.planErr = nil
	s.state = StateSubmitting

	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	s.cancel = cancel
	return runCtx, cancel, s.attempt
}

func (s *Session) setState(attempt uint64, state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if attempt != s.attempt {
		return
	}
	s.state = state
}

func (s *Session) append(attempt uint64, chunk string) {
	s.mu.Lock()
	if attempt != s.attempt {
		s.mu.Unlock()
		return
	}
	s.buffer.WriteString(chunk)
	snapshot := s.buffer.String()
	hook := s.onChunk
	s.mu.Unlock()

	if hook != nil {
		hook(snapshot)
	}
}

// fail records the classified error, keeping whatever partial text arrived.
func (s *Session) fail(attempt uint64, planErr *PlanError) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if attempt != s.attempt {
		return planErr
	}
	s.state = StateFailed
	s.planErr = planErr
	s.cancel = nil
	return planErr
}

func (s *Session) complete(attempt uint64) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if attempt != s.attempt {
		return "", true
	}
	s.state = StateCompleted
	s.cancel = nil
	return s.buffer.String(), false
}

// classifyStatus maps a non-success response received before streaming began.
// The body, if any, is surfaced verbatim, except for rate-limit shaped
// failures which get a dedicated message.
func classifyStatus(code int, body string) *PlanError {
	if code == http.StatusTooManyRequests || rateLimitPattern.MatchString(body) {
		return &PlanError{Kind: ErrorUpstream, Message: msgRateLimited}
	}
	if body != "" {
		return &PlanError{Kind: ErrorTransport, Message: body}
	}
	return &PlanError{Kind: ErrorTransport, Message: msgUpstream}
}

// classifyStreamError maps a body-read failure after streaming began.
func classifyStreamError(err error) *PlanError {
	if rateLimitPattern.MatchString(err.Error()) {
		return &PlanError{Kind: ErrorUpstream, Message: msgRateLimited, cause: err}
	}
	return &PlanError{Kind: ErrorUpstream, Message: msgUpstream, cause: err}
}
