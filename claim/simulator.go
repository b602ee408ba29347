package claim

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/seallabs/lixi/config"
	"github.com/seallabs/lixi/logger/xzap"
	types "github.com/seallabs/lixi/types/v1"
)

// Simulator produces claim outcomes offline when no allocation endpoint is
// configured. The result shape is indistinguishable from the live path so
// nothing downstream needs mode awareness; only the logs differ.
type Simulator struct {
	delay  time.Duration
	rate   float64
	amount int64
	denoms []int64
	now    func() time.Time

	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rng *rand.Rand
}

func NewSimulator(cfg config.SimulateConf) *Simulator {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	denoms := cfg.Denominations
	if len(denoms) == 0 {
		denoms = config.DefaultConfig().Simulate.Denominations
	}

	xzap.WithContext(context.Background()).Warn("simulation mode active, claims are not hitting a live allocation service",
		zap.Int64("seed", seed),
		zap.Float64("already_claimed_rate", cfg.AlreadyClaimedRate))

	return &Simulator{
		delay:  time.Duration(cfg.DelayMs) * time.Millisecond,
		rate:   cfg.AlreadyClaimedRate,
		amount: cfg.AlreadyClaimedAmount,
		denoms: denoms,
		now:    time.Now,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Draw runs one simulated round-trip: artificial delay, then a
// pseudo-random outcome. ctx cancellation during the delay yields an ERROR
// result, mirroring the live path's never-throw contract.
func (s *Simulator) Draw(ctx context.Context, identifier string) types.ClaimResult {
	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return types.ClaimResult{
				Identifier: identifier,
				Timestamp:  s.now().UTC().Format(time.RFC3339),
				Status:     types.StatusError,
				Message:    "Claim was canceled before it completed. Please try again.",
			}
		case <-t.C:
		}
	}

	s.mu.Lock()
	already := s.rng.Float64() < s.rate
	denom := s.denoms[s.rng.Intn(len(s.denoms))]
	suffix := s.rng.Intn(1000)
	s.mu.Unlock()

	now := s.now()
	if already {
		return types.ClaimResult{
			Identifier: identifier,
			Amount:     s.amount,
			ReceiptID:  fmt.Sprintf("MOCK-%d", now.UnixMilli()),
			Timestamp:  now.UTC().Format(time.RFC3339),
			Status:     types.StatusAlreadyClaimed,
			Message:    "This code has already claimed lucky money.",
		}
	}

	return types.ClaimResult{
		Identifier: identifier,
		Amount:     denom,
		ReceiptID:  fmt.Sprintf("RCPT-%d-%d", now.UnixMilli(), suffix),
		Timestamp:  now.UTC().Format(time.RFC3339),
		Status:     types.StatusSuccess,
	}
}
