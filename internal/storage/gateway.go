package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/math-escape/internal/config"
)

// Gateway loads and saves the single best score.
// Implementations never surface errors: a failed load reads as 0 and a
// failed save is dropped. Failures are logged.
type Gateway interface {
	Load() int
	Save(score int)
}

// HistoryRecorder appends finished sessions to a history, best-effort.
type HistoryRecorder interface {
	Record(rec SessionRecord)
}

// Raiser is a Gateway that can compare and store in one atomic step.
// Gateways shared between SSH sessions implement it so that two sessions
// ending together cannot overwrite a higher best with a lower one.
type Raiser interface {
	Raise(score int) (best int, updated bool)
}

// Commit compares score against the stored best and saves it when strictly
// greater. Returns the best score after the commit and whether it changed.
func Commit(g Gateway, score int) (best int, updated bool) {
	if r, ok := g.(Raiser); ok {
		return r.Raise(score)
	}
	best = g.Load()
	if score > best {
		g.Save(score)
		return score, true
	}
	return best, false
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger != nil {
		return logger
	}
	return log.New(io.Discard)
}

// SQLiteGateway stores the best score and the history in a Store.
type SQLiteGateway struct {
	store *Store
	log   *log.Logger
}

var (
	_ Gateway         = (*SQLiteGateway)(nil)
	_ Raiser          = (*SQLiteGateway)(nil)
	_ HistoryRecorder = (*SQLiteGateway)(nil)
)

// NewSQLiteGateway wraps an open store.
func NewSQLiteGateway(store *Store, logger *log.Logger) *SQLiteGateway {
	return &SQLiteGateway{store: store, log: orDiscard(logger)}
}

func (g *SQLiteGateway) Load() int {
	score, err := g.store.BestScore()
	if err != nil {
		g.log.Warn("best score unavailable, using 0", "err", err)
		return 0
	}
	return score
}

func (g *SQLiteGateway) Save(score int) {
	if err := g.store.SetBestScore(score); err != nil {
		g.log.Warn("best score not saved", "score", score, "err", err)
	}
}

// Raise stores score if it beats the stored best, in a single statement.
func (g *SQLiteGateway) Raise(score int) (int, bool) {
	best, updated, err := g.store.RaiseBestScore(score)
	if err != nil {
		g.log.Warn("best score not saved", "score", score, "err", err)
		return g.Load(), false
	}
	return best, updated
}

func (g *SQLiteGateway) Record(rec SessionRecord) {
	if _, err := g.store.RecordSession(rec); err != nil {
		g.log.Warn("session not recorded", "mode", rec.Mode, "score", rec.Score, "err", err)
	}
}

// highScoreFile is the on-disk document of FileGateway.
type highScoreFile struct {
	HighScore int `yaml:"highscore"`
}

// FileGateway keeps the best score in a small YAML document.
type FileGateway struct {
	mu   sync.Mutex // Serializes Raise within the process
	path string
	log  *log.Logger
}

var (
	_ Gateway = (*FileGateway)(nil)
	_ Raiser  = (*FileGateway)(nil)
)

// NewFileGateway returns a gateway for the YAML file at path. The file is
// created on the first save.
func NewFileGateway(path string, logger *log.Logger) *FileGateway {
	if expanded, err := config.ExpandHome(path); err == nil {
		path = expanded
	}
	return &FileGateway{path: path, log: orDiscard(logger)}
}

// Path returns the backing file path.
func (g *FileGateway) Path() string {
	return g.path
}

func (g *FileGateway) Load() int {
	data, err := os.ReadFile(g.path)
	if errors.Is(err, fs.ErrNotExist) {
		g.log.Debug("no high score file yet", "path", g.path)
		return 0
	}
	if err != nil {
		g.log.Warn("high score file unreadable, using 0", "path", g.path, "err", err)
		return 0
	}

	var doc highScoreFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		g.log.Warn("high score file malformed, using 0", "path", g.path, "err", err)
		return 0
	}
	if doc.HighScore < 0 {
		g.log.Warn("negative high score ignored", "path", g.path, "score", doc.HighScore)
		return 0
	}
	return doc.HighScore
}

func (g *FileGateway) Save(score int) {
	if err := g.write(score); err != nil {
		g.log.Warn("high score not saved", "path", g.path, "score", score, "err", err)
	}
}

// Raise reads, compares and rewrites the file under the gateway lock.
// Other processes writing the same file are not coordinated with.
func (g *FileGateway) Raise(score int) (int, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	best := g.Load()
	if score <= best {
		return best, false
	}
	g.Save(score)
	return score, true
}

// write replaces the file atomically through a temp file in the same directory.
func (g *FileGateway) write(score int) error {
	data, err := yaml.Marshal(highScoreFile{HighScore: score})
	if err != nil {
		return fmt.Errorf("storage: cannot encode high score: %w", err)
	}

	dir := filepath.Dir(g.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	if err := os.Rename(tmp.Name(), g.path); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", g.path, err)
	}
	return nil
}

// MemoryGateway keeps everything in process memory. It backs tests and the
// "memory" storage backend, and is safe for concurrent SSH sessions.
type MemoryGateway struct {
	mu      sync.Mutex
	best    int
	records []SessionRecord
}

var (
	_ Gateway         = (*MemoryGateway)(nil)
	_ Raiser          = (*MemoryGateway)(nil)
	_ HistoryRecorder = (*MemoryGateway)(nil)
)

// NewMemoryGateway creates a gateway with an initial best score.
func NewMemoryGateway(best int) *MemoryGateway {
	return &MemoryGateway{best: best}
}

func (g *MemoryGateway) Load() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.best
}

func (g *MemoryGateway) Save(score int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.best = score
}

func (g *MemoryGateway) Raise(score int) (int, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if score <= g.best {
		return g.best, false
	}
	g.best = score
	return score, true
}

func (g *MemoryGateway) Record(rec SessionRecord) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.records = append(g.records, rec)
}

// Records returns a copy of the recorded sessions in insertion order.
func (g *MemoryGateway) Records() []SessionRecord {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]SessionRecord(nil), g.records...)
}
