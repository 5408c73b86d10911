package scene

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/math-escape/internal/config"
	"github.com/vovakirdan/math-escape/internal/core"
	"github.com/vovakirdan/math-escape/internal/storage"
)

// Env is everything scenes share for the life of one player's program:
// configuration, persistence and the host that switches between them.
type Env struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Scores  storage.Gateway
	History storage.HistoryRecorder // Optional
	Copy    func(string) error      // Optional clipboard writer
	Log     *log.Logger
	Host    *Host

	sessions int64
}

// Start creates a host sized to the runtime grid, attaches it to env and
// shows the menu.
func Start(env *Env) *Host {
	if env.Log == nil {
		env.Log = log.New(io.Discard)
	}
	if env.Scores == nil {
		env.Scores = storage.NewMemoryGateway(0)
	}
	env.Host = NewHost(env.Runtime.ScreenW, env.Runtime.ScreenH, env.Log)
	env.Host.SetScene(NewMenu(env))
	return env.Host
}

// nextSeed returns the RNG seed for a new session. A fixed runtime seed
// gives a reproducible sequence of sessions; zero stays time based.
func (e *Env) nextSeed() int64 {
	if e.Runtime.Seed == 0 {
		return 0
	}
	seed := e.Runtime.Seed + e.sessions
	e.sessions++
	return seed
}

func (e *Env) center() (int, int) {
	w, h := e.Host.Size()
	return w / 2, h / 2
}
