package config

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"remind/pkg/logx"
)

// Manager owns the reminders document: it loads it, hands out the current
// snapshot, and (in watch mode) republishes it whenever the file changes on
// disk. Reloads are debounced to ride out partial editor writes, deduped by
// content hash, and rate limited so a pathological writer cannot spin the
// subscribers.
type Manager struct {
	path string

	mu  sync.RWMutex
	doc *Document

	// subsMu guards the subscriber list and ensures we never send on a
	// channel that is concurrently being closed in Unsubscribe().
	subsMu sync.Mutex
	subs   []chan *Document

	log logx.Logger

	// limiter caps how often file changes turn into publishes.
	limiter *rate.Limiter

	// timer drives debounced and rate-deferred reloads; re-arming
	// supersedes any pending fire, so only the latest reload runs.
	timerMu sync.Mutex
	timer   *time.Timer

	// lastHash tracks the last committed document content, to skip
	// redundant publishes when the editor fires multiple write events
	// without content changes.
	lastHash uint64
}

// debounceDelay lets a burst of write events (or a partial write) settle
// before the file is re-read.
const debounceDelay = 250 * time.Millisecond

// NewManager creates a manager for the reminders document at path.
func NewManager(path string, log logx.Logger) *Manager {
	return &Manager{
		path:    path,
		log:     log,
		limiter: rate.NewLimiter(rate.Limit(2), 2), // at most ~2 reloads/sec
	}
}

// Parse reads and strictly decodes the document without committing it.
func (m *Manager) Parse() (*Document, error) {
	var doc Document
	if err := decodeFile(m.path, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load parses the document and commits it as the current snapshot.
func (m *Manager) Load() (*Document, error) {
	doc, err := m.Parse()
	if err != nil {
		return nil, err
	}
	m.Commit(doc)
	return doc, nil
}

// Commit installs doc as the current snapshot.
func (m *Manager) Commit(doc *Document) {
	m.mu.Lock()
	m.doc = doc
	m.lastHash = hashDocument(doc)
	m.mu.Unlock()
}

// Get returns the current snapshot (nil before the first Load).
func (m *Manager) Get() *Document {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.doc
}

// Subscribe returns a channel receiving each newly published document.
func (m *Manager) Subscribe(buffer int) chan *Document {
	ch := make(chan *Document, buffer)
	m.subsMu.Lock()
	m.subs = append(m.subs, ch)
	m.subsMu.Unlock()
	return ch
}

// Unsubscribe removes and closes a channel returned by Subscribe.
func (m *Manager) Unsubscribe(ch chan *Document) {
	if ch == nil {
		return
	}
	m.subsMu.Lock()
	defer m.subsMu.Unlock()
	for i, s := range m.subs {
		if s == ch {
			// swap-remove (order doesn't matter)
			last := len(m.subs) - 1
			m.subs[i] = m.subs[last]
			m.subs[last] = nil
			m.subs = m.subs[:last]
			close(ch)
			return
		}
	}
}

func (m *Manager) publish(doc *Document) {
	// Hold subsMu while sending to avoid send-on-closed panics.
	m.subsMu.Lock()
	defer m.subsMu.Unlock()
	for _, ch := range m.subs {
		if ch == nil {
			continue
		}
		// Deliver the latest document. If a subscriber is slow and its
		// buffer is full, drop one stale item and push the newest.
		select {
		case ch <- doc:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- doc:
			default:
				m.log.Debug("reminders update dropped (subscriber slow)",
					logx.Int("queue_cap", cap(ch)))
			}
		}
	}
}

// scheduleReload (re)arms the reload timer. Later calls supersede earlier
// ones, so a flurry of events still ends in exactly one reload.
func (m *Manager) scheduleReload(d time.Duration) {
	m.timerMu.Lock()
	defer m.timerMu.Unlock()
	if m.timer != nil {
		m.timer.Stop()
	}
	m.timer = time.AfterFunc(d, m.reload)
}

func (m *Manager) stopReloadTimer() {
	m.timerMu.Lock()
	defer m.timerMu.Unlock()
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

// reload parses, dedupes, commits and publishes. Called from the reload
// timer, never directly from the fsnotify event loop.
func (m *Manager) reload() {
	// Over the burst cap the reload is deferred, not dropped: the last
	// write of a burst must still land once capacity frees up.
	if r := m.limiter.Reserve(); r.Delay() > 0 {
		d := r.Delay()
		r.Cancel()
		m.log.Debug("reminders reload rate limited; deferring",
			logx.String("path", m.path), logx.Duration("delay", d))
		m.scheduleReload(d)
		return
	}

	doc, err := m.Parse()
	if err != nil {
		m.log.Warn("reminders parse failed", logx.String("path", m.path), logx.Err(err))
		return
	}

	h := hashDocument(doc)
	m.mu.RLock()
	unchanged := h != 0 && h == m.lastHash
	m.mu.RUnlock()
	if unchanged {
		m.log.Debug("reminders unchanged; skipping publish", logx.String("path", m.path))
		return
	}

	m.Commit(doc)
	m.publish(doc)
	m.log.Info("reminders reloaded", logx.String("path", m.path), logx.Int("count", len(doc.Reminders)))
}

// Watch blocks until ctx is done, republishing the document on file changes.
// The parent directory is watched (not the file itself) so atomic
// rename-into-place saves keep working.
func (m *Manager) Watch(ctx context.Context) error {
	dir := filepath.Dir(m.path)
	file := filepath.Base(m.path)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		return err
	}
	m.log.Debug("reminders watcher started", logx.String("dir", dir), logx.String("file", file))

	debounce := func() { m.scheduleReload(debounceDelay) }
	defer m.stopReloadTimer()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			// Compare by basename: robust across absolute/relative paths.
			if !strings.EqualFold(filepath.Base(ev.Name), file) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove|fsnotify.Chmod) != 0 {
				debounce()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			if err == nil {
				continue
			}
			// Overflow means events were missed; reload once and keep going.
			if strings.Contains(strings.ToLower(err.Error()), "overflow") {
				debounce()
				continue
			}
			m.log.Warn("reminders watch error", logx.Err(err), logx.String("dir", dir))
		}
	}
}
