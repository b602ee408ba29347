package svc

import (
	"math/rand"
	"sync"
	"time"

	"github.com/seallabs/lixi/claim"
	"github.com/seallabs/lixi/config"
	"github.com/seallabs/lixi/fortune"
)

// ServerCtx 服务上下文
type ServerCtx struct {
	C   *config.Config
	Sim *claim.Simulator

	mu  sync.Mutex
	rng *rand.Rand
}

// NewServiceContext wires the stand-in service: the same simulation engine
// the client uses offline, exposed over the real wire contract. There is
// deliberately no storage here; idempotency is simulated by the draw.
func NewServiceContext(c *config.Config) (*ServerCtx, error) {
	return &ServerCtx{
		C:   c,
		Sim: claim.NewSimulator(c.Simulate),
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// DrawFortune 抽一支签
func (s *ServerCtx) DrawFortune() fortune.Fortune {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fortune.Draw(s.rng)
}
