package prefabs

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// Watcher reports changed spec and script files. It never touches simulation
// state; consumers drain Events on their own loop.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

// run coalesces bursts of writes: a name is reported once, after no further
// events for it arrived within watchDebounce. Editors often write a file
// several times per save.
func (w *Watcher) run() {
	defer close(w.done)

	pending := make(map[string]time.Time)
	timer := time.NewTimer(watchDebounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !relevant(event) {
				continue
			}
			pending[filepath.Base(event.Name)] = time.Now().Add(watchDebounce)
			timer.Reset(watchDebounce)
		case <-timer.C:
			if !w.flush(pending, time.Now()) {
				return
			}
			if len(pending) > 0 {
				timer.Reset(watchDebounce)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// flush sends every settled name in sorted order. It returns false when the
// watcher closed mid-send.
func (w *Watcher) flush(pending map[string]time.Time, now time.Time) bool {
	names := make([]string, 0, len(pending))
	for name, due := range pending {
		if !now.Before(due) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	for _, name := range names {
		delete(pending, name)
		select {
		case w.Events <- name:
		case <-w.closeCh:
			return false
		}
	}
	return true
}

func relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	return isSpecFile(event.Name) || isScriptFile(event.Name)
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}
