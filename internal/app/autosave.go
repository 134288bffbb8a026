package app

import (
	"os"
	"path/filepath"
	"time"

	"github.com/maskedsyntax/splashy/internal/project"
)

// Autosaver periodically asks for the session to be snapshotted to a
// recovery file.
type Autosaver struct {
	interval time.Duration
	stopCh   chan struct{}
	onTick   func()
}

// NewAutosaver creates an autosaver that fires at the given interval.
func NewAutosaver(interval time.Duration) *Autosaver {
	return &Autosaver{
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// OnTick sets the callback to invoke each interval. The callback runs on
// the ticker goroutine.
func (a *Autosaver) OnTick(callback func()) {
	a.onTick = callback
}

// Start begins ticking in a background goroutine.
func (a *Autosaver) Start() {
	// Create a fresh stop channel in case we're restarting
	a.stopCh = make(chan struct{})
	go a.loop()
}

// Stop stops the ticker goroutine.
func (a *Autosaver) Stop() {
	close(a.stopCh)
}

func (a *Autosaver) loop() {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-a.stopCh:
			return
		case <-ticker.C:
			if a.onTick != nil {
				a.onTick()
			}
		}
	}
}

// RecoveryPath returns the location of the crash recovery file inside the
// user's config directory, creating the directory if needed.
func RecoveryPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "splashy")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "recovery.sphy"), nil
}

// HasRecovery reports whether a recovery file from an earlier run exists.
func HasRecovery() bool {
	path, err := RecoveryPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// RemoveRecovery deletes the recovery file, called after a clean save or
// exit so stale work is not offered again.
func RemoveRecovery() {
	if path, err := RecoveryPath(); err == nil {
		os.Remove(path)
	}
}

// SaveRecovery writes the session to the recovery file when it has unsaved
// changes. It leaves the project path and modified flag alone. The write is
// a point-in-time read of the surfaces; a stroke landing mid-write may be
// only partly captured, which is fine for crash recovery.
func (s *State) SaveRecovery() error {
	if !s.IsModified() {
		return nil
	}
	path, err := RecoveryPath()
	if err != nil {
		return err
	}
	return s.snapshotFile().Save(path)
}

// snapshotFile captures the session as a project file value.
func (s *State) snapshotFile() *project.File {
	f := &project.File{
		Width:       s.Doc.Width(),
		Height:      s.Doc.Height(),
		ActiveLayer: s.Doc.ActiveIndex(),
		Background:  s.Background,
		Page:        s.PageStyle,
		View:        s.View,
	}
	for _, l := range s.Doc.Layers() {
		f.Layers = append(f.Layers, l.Surface)
	}
	return f
}
