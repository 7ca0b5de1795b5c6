// Package tray provides the system tray interface for the Ganitha quiz game.
package tray

import (
	"fmt"
	"sync"

	"github.com/getlantern/systray"
)

// Tray represents the system tray application.
type Tray struct {
	onToggle  func(enabled bool)
	onRestart func()
	onOverlay func()
	onQuit    func()
	enabled   bool
	score     int
	mode      string
	mu        sync.RWMutex

	// Menu items stored for later updates
	menuToggle *systray.MenuItem
	menuScore  *systray.MenuItem
	menuMode   *systray.MenuItem
}

// New creates a new Tray instance with play enabled by default.
func New() *Tray {
	return &Tray{
		enabled: true,
		mode:    "comparison",
	}
}

// OnToggle sets the callback function to be called when play is paused or resumed.
func (t *Tray) OnToggle(fn func(enabled bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onToggle = fn
}

// OnRestart sets the callback function to be called when a new session is requested.
func (t *Tray) OnRestart(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onRestart = fn
}

// OnOverlay sets the callback function to be called when the overlay menu item is clicked.
func (t *Tray) OnOverlay(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onOverlay = fn
}

// OnQuit sets the callback function to be called when the quit menu item is clicked.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// Run starts the system tray application.
// This function blocks until systray.Quit() is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// onReady is called when the system tray is ready.
// It sets up the menu structure.
func (t *Tray) onReady() {
	// Set the tray title and tooltip
	systray.SetTitle("Ganitha")
	systray.SetTooltip("Ganitha Math Quiz")

	// Create menu items. Held under the lock so SetScore and SetMode see
	// either no menu item or a fully initialized one.
	t.mu.Lock()
	t.menuToggle = systray.AddMenuItem("● Playing", "Pause or resume play")
	systray.AddSeparator()

	t.menuScore = systray.AddMenuItem(fmt.Sprintf("Score: %d", t.score), "Current session score")
	t.menuScore.Disable()
	t.menuMode = systray.AddMenuItem("Mode: "+t.mode, "Current quiz mode")
	t.menuMode.Disable()
	t.mu.Unlock()
	systray.AddSeparator()

	menuRestart := systray.AddMenuItem("New Session", "Start a fresh quiz session")
	menuOverlay := systray.AddMenuItem("Open Overlay...", "Open the game overlay in a browser")
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Quit", "Quit Ganitha")

	// Handle menu item clicks in a separate goroutine
	go func() {
		for {
			select {
			case <-t.menuToggle.ClickedCh:
				t.handleToggle()
			case <-menuRestart.ClickedCh:
				t.handleRestart()
			case <-menuOverlay.ClickedCh:
				t.handleOverlay()
			case <-menuQuit.ClickedCh:
				t.handleQuit()
				return
			}
		}
	}()
}

// onExit is called when the system tray is about to exit.
func (t *Tray) onExit() {
}

// handleToggle handles the pause/resume menu item click.
func (t *Tray) handleToggle() {
	t.mu.Lock()
	t.enabled = !t.enabled
	enabled := t.enabled

	// Update menu item text based on new state
	if enabled {
		t.menuToggle.SetTitle("● Playing")
	} else {
		t.menuToggle.SetTitle("○ Paused")
	}

	callback := t.onToggle
	t.mu.Unlock()

	// Call the callback outside the lock to prevent deadlocks
	if callback != nil {
		callback(enabled)
	}
}

// handleRestart handles the new session menu item click.
func (t *Tray) handleRestart() {
	t.mu.RLock()
	callback := t.onRestart
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}

	t.SetScore(0)
}

// handleOverlay handles the overlay menu item click.
func (t *Tray) handleOverlay() {
	t.mu.RLock()
	callback := t.onOverlay
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

// handleQuit handles the quit menu item click.
func (t *Tray) handleQuit() {
	t.mu.RLock()
	callback := t.onQuit
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}

	systray.Quit()
}

// SetScore updates the score display in the menu. Safe to call before Run;
// the menu picks up the value when it is built.
func (t *Tray) SetScore(score int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.score = score
	if t.menuScore != nil {
		t.menuScore.SetTitle(fmt.Sprintf("Score: %d", score))
	}
}

// SetMode updates the quiz mode display in the menu. Safe to call before Run.
func (t *Tray) SetMode(mode string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.mode = mode
	if t.menuMode != nil {
		t.menuMode.SetTitle("Mode: " + mode)
	}
}

// IsEnabled returns whether play is currently enabled.
func (t *Tray) IsEnabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.enabled
}
