// Package reveal drives the staged envelope-opening flow that follows a
// claim submission. One session owns one ClaimResult at a time; the host
// decides when a session restarts via Reset.
package reveal

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/seallabs/lixi/claim"
	types "github.com/seallabs/lixi/types/v1"
)

// Stage 红包翻面流程所处阶段
type Stage string

const (
	StageIdle       Stage = "idle"
	StageSubmitting Stage = "submitting"
	StageFront      Stage = "front"
	StageBack       Stage = "back"
	StageResult     Stage = "result"
)

var (
	// ErrSubmitInFlight rejects a duplicate submission while one is still
	// resolving; the service's idempotency is per call, not per intent.
	ErrSubmitInFlight = errors.New("a claim submission is already in flight")
	// ErrClaimSettled rejects submissions once a result was accepted.
	ErrClaimSettled = errors.New("claim already settled, reset the session to start over")
	// ErrStaleResult reports that the session was reset while the
	// submission was in flight, so its outcome was discarded.
	ErrStaleResult = errors.New("session reset while submitting, result discarded")

	ErrNothingToReveal = errors.New("no accepted claim to reveal")
	ErrRevealFinished  = errors.New("reveal already at its terminal stage")
)

// Session is the reveal state machine:
//
//	idle -> submitting -> front -> back -> result
//
// Only claimable outcomes (SUCCESS, ALREADY_CLAIMED) enter the reveal
// stages; everything else returns to idle with the failure message kept
// for display. The result stage is terminal until Reset.
type Session struct {
	client    claim.Submitter
	celebrate func(types.ClaimResult)

	mu         sync.Mutex
	stage      Stage
	result     *types.ClaimResult
	failMsg    string
	celebrated bool
	gen        uint64
}

type Option func(*Session)

// WithCelebration registers the edge-triggered celebration hook. It fires
// at most once per accepted claim, on the transition into the result
// stage, and only for SUCCESS.
func WithCelebration(fn func(types.ClaimResult)) Option {
	return func(s *Session) { s.celebrate = fn }
}

func NewSession(client claim.Submitter, opts ...Option) *Session {
	s := &Session{client: client, stage: StageIdle}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit runs one claim attempt. It blocks for the round-trip, then either
// enters the first reveal stage (claimable outcome) or returns to idle
// with the failure message attached. The returned result is the canonical
// outcome either way.
func (s *Session) Submit(ctx context.Context, identifier string) (types.ClaimResult, error) {
	s.mu.Lock()
	switch s.stage {
	case StageIdle:
	case StageSubmitting:
		s.mu.Unlock()
		return types.ClaimResult{}, ErrSubmitInFlight
	default:
		s.mu.Unlock()
		return types.ClaimResult{}, ErrClaimSettled
	}
	s.stage = StageSubmitting
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	res := s.client.SubmitClaim(ctx, identifier)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen || s.stage != StageSubmitting {
		// The session moved on (Reset) while we were in flight. Committing
		// this outcome would resurrect an abandoned attempt.
		return res, ErrStaleResult
	}

	if res.Status.Claimable() {
		s.stage = StageFront
		s.result = &res
		s.failMsg = ""
		s.celebrated = false
		return res, nil
	}

	s.stage = StageIdle
	s.failMsg = res.Message
	if s.failMsg == "" {
		s.failMsg = "Something went wrong."
	}
	return res, nil
}

// Advance moves the reveal one stage forward and returns the stage that
// was entered.
func (s *Session) Advance() (Stage, error) {
	s.mu.Lock()
	var fire *types.ClaimResult
	switch s.stage {
	case StageFront:
		s.stage = StageBack
	case StageBack:
		s.stage = StageResult
		if s.result != nil && s.result.Status == types.StatusSuccess && !s.celebrated {
			s.celebrated = true
			r := *s.result
			fire = &r
		}
	case StageResult:
		s.mu.Unlock()
		return StageResult, ErrRevealFinished
	default:
		st := s.stage
		s.mu.Unlock()
		return st, ErrNothingToReveal
	}
	st := s.stage
	cb := s.celebrate
	s.mu.Unlock()

	if fire != nil && cb != nil {
		cb(*fire)
	}
	return st, nil
}

// Reset returns the session to idle and invalidates any submission still
// in flight. The host calls it to start a new claim attempt.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stage = StageIdle
	s.result = nil
	s.failMsg = ""
	s.celebrated = false
	s.gen++
}

func (s *Session) Stage() Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

// Result returns the accepted claim outcome, if any.
func (s *Session) Result() (types.ClaimResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return types.ClaimResult{}, false
	}
	return *s.result, true
}

// FailMessage returns the inline message from the last rejected attempt,
// empty once a claim is accepted or the session is reset.
func (s *Session) FailMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failMsg
}
