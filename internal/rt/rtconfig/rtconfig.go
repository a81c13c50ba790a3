// Package rtconfig hot-reloads the collector's tunable floors from a JSON
// file, using the same fsnotify watch-loop shape the teacher's
// internal/runtime/vfs package uses for OS-native file notifications: an
// events channel, an errors channel, and a background loop goroutine.
package rtconfig

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/orizon-lang/orizon-rt/internal/rt"
	"github.com/orizon-lang/orizon-rt/internal/rt/rterr"
)

// Thresholds mirrors the JSON shape of the collector config file.
type Thresholds struct {
	YoungFloor int `json:"young_floor"`
	OldFloor   int `json:"old_floor"`
}

// DefaultThresholds matches the floors §4.6 names: 1024 young, 65536 old.
var DefaultThresholds = Thresholds{YoungFloor: 1024, OldFloor: 65536}

// Watcher applies a config file to a Collector on load and on every
// subsequent write, until Close is called.
type Watcher struct {
	path string
	c    *rt.Collector
	fw   *fsnotify.Watcher

	mu     sync.Mutex
	closed bool
}

// Load reads path once and applies it to c, without starting a watch.
func Load(path string, c *rt.Collector) error {
	th, err := readThresholds(path)
	if err != nil {
		return err
	}

	c.Reconfigure(th.YoungFloor, th.OldFloor)

	return nil
}

// Watch loads path once, then watches it for writes and reapplies it to c
// on every change until the returned Watcher is closed.
func Watch(path string, c *rt.Collector) (*Watcher, error) {
	if err := Load(path, c); err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fw.Add(path); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{path: path, c: c, fw: fw}
	go w.loop()

	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}

			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				// Best-effort: a transient parse failure (the editor is
				// mid-write) just keeps the previous thresholds.
				_ = Load(w.path, w.c)
			}
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
		}
	}
}

// Close stops the watch loop.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}

	w.closed = true

	return w.fw.Close()
}

func readThresholds(path string) (Thresholds, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Thresholds{}, rterr.InvalidConfig(path, err)
	}

	th := DefaultThresholds
	if err := json.Unmarshal(data, &th); err != nil {
		return Thresholds{}, rterr.InvalidConfig(path, err)
	}

	return th, nil
}
