// Package tray provides the system tray interface for the analysis
// application.
package tray

import (
	"sync"

	"github.com/getlantern/systray"
)

// Tray is the system tray menu showing the analysis state and the most
// recent stabilized labels.
type Tray struct {
	onToggle   func(enabled bool)
	onSettings func()
	onQuit     func()
	enabled    bool
	mu         sync.RWMutex

	menuToggle      *systray.MenuItem
	menuLastEmotion *systray.MenuItem
	menuLastGesture *systray.MenuItem
}

// New creates a Tray with analysis enabled by default.
func New() *Tray {
	return &Tray{
		enabled: true,
	}
}

// OnToggle sets the callback fired when analysis is toggled.
func (t *Tray) OnToggle(fn func(enabled bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onToggle = fn
}

// OnSettings sets the callback fired when the settings item is clicked.
func (t *Tray) OnSettings(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onSettings = fn
}

// OnQuit sets the callback fired when the quit item is clicked.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// Run starts the system tray. Blocks until systray.Quit() is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

func (t *Tray) onReady() {
	systray.SetTitle("Abhinaya")
	systray.SetTooltip("Abhinaya Expression Analysis")

	t.menuToggle = systray.AddMenuItem("● Enabled", "Toggle expression analysis")
	systray.AddSeparator()

	t.menuLastEmotion = systray.AddMenuItem("Emotion: none", "Last stabilized emotion")
	t.menuLastEmotion.Disable()
	t.menuLastGesture = systray.AddMenuItem("Gesture: none", "Last stabilized gesture")
	t.menuLastGesture.Disable()
	systray.AddSeparator()

	menuSettings := systray.AddMenuItem("Open Dashboard...", "Open dashboard in browser")
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Quit", "Quit Abhinaya")

	go func() {
		for {
			select {
			case <-t.menuToggle.ClickedCh:
				t.handleToggle()
			case <-menuSettings.ClickedCh:
				t.handleSettings()
			case <-menuQuit.ClickedCh:
				t.handleQuit()
				return
			}
		}
	}()
}

func (t *Tray) onExit() {
}

func (t *Tray) handleToggle() {
	t.mu.Lock()
	t.enabled = !t.enabled
	enabled := t.enabled

	if enabled {
		t.menuToggle.SetTitle("● Enabled")
	} else {
		t.menuToggle.SetTitle("○ Disabled")
	}

	callback := t.onToggle
	t.mu.Unlock()

	// Call the callback outside the lock to prevent deadlocks
	if callback != nil {
		callback(enabled)
	}
}

func (t *Tray) handleSettings() {
	t.mu.RLock()
	callback := t.onSettings
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

func (t *Tray) handleQuit() {
	t.mu.RLock()
	callback := t.onQuit
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}

	systray.Quit()
}

// SetLastEmotion updates the last emotion display in the menu.
func (t *Tray) SetLastEmotion(label string) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuLastEmotion != nil {
		if label == "" {
			t.menuLastEmotion.SetTitle("Emotion: none")
		} else {
			t.menuLastEmotion.SetTitle("Emotion: " + label)
		}
	}
}

// SetLastGesture updates the last gesture display in the menu.
func (t *Tray) SetLastGesture(label string) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuLastGesture != nil {
		if label == "" {
			t.menuLastGesture.SetTitle("Gesture: none")
		} else {
			t.menuLastGesture.SetTitle("Gesture: " + label)
		}
	}
}

// IsEnabled returns the current enabled state.
func (t *Tray) IsEnabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.enabled
}
