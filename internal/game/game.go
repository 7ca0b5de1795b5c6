// Package game provides the main application logic for the Ganitha quiz game.
// It owns the capture pipeline, feeds finger counts into the quiz engine, and
// dispatches game events to plugins.
package game

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/ayusman/ganitha/internal/capture"
	"github.com/ayusman/ganitha/internal/detector"
	"github.com/ayusman/ganitha/internal/gesture"
	"github.com/ayusman/ganitha/internal/plugin"
	"github.com/ayusman/ganitha/internal/quiz"
	"github.com/ayusman/ganitha/internal/store"
)

// Pipeline timing constants.
const (
	// IdleFPS is the frame rate when no motion is detected.
	IdleFPS = 5
	// ActiveFPS is the frame rate during active play.
	ActiveFPS = 15
	// IdleTimeoutMs is the time in milliseconds to wait before switching back to idle mode.
	IdleTimeoutMs = 2000
)

// Config holds configuration options for the game.
type Config struct {
	Store        *store.Store
	PluginDir    string
	CameraID     int
	MotionThresh float64
	Mode         quiz.Kind
	// Rand overrides the equation generator's randomness source. Tests use
	// it to script equations; leave nil for normal play.
	Rand quiz.Rand
}

// Game orchestrates one quiz game: camera frames in, finger counts into the
// quiz engine, score and feedback out to the overlay, tray, and plugins.
type Game struct {
	config     Config
	camera     capture.Camera
	motion     *capture.MotionDetector
	detector   detector.Detector
	engine     *quiz.Engine
	wave       *gesture.WaveDetector
	pluginMgr  *plugin.Manager
	pluginExec *plugin.Executor

	enabled   bool
	mu        sync.RWMutex
	stopCh    chan struct{}
	elapsed   float64
	fingers   int
	lastHand  *detector.HandLandmarks
	sessionID string

	// OnAnswer, when set, is called after every evaluated answer with the
	// outcome and the running score. Set it before Start.
	OnAnswer func(correct bool, score int)
}

// Snapshot is a point-in-time view of the game for the API and overlay.
type Snapshot struct {
	SessionID string                   `json:"session_id"`
	Kind      quiz.Kind                `json:"kind"`
	State     quiz.State               `json:"state"`
	Equation  string                   `json:"equation"`
	Score     int                      `json:"score"`
	Feedback  string                   `json:"feedback"`
	Fingers   int                      `json:"fingers"`
	Extended  [gesture.NumFingers]bool `json:"extended"`
	Hand      *detector.HandLandmarks  `json:"hand,omitempty"`
	Enabled   bool                     `json:"enabled"`
}

// New creates a new Game instance with the given configuration.
func New(config Config) *Game {
	motionThreshold := config.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // Default threshold: 1% pixel change
	}

	mode := config.Mode
	if mode == "" {
		mode = quiz.KindComparison
	}

	g := &Game{
		config:     config,
		camera:     capture.NewCamera(config.CameraID),
		motion:     capture.NewMotionDetector(motionThreshold),
		engine:     quiz.NewEngine(mode, quiz.NewGenerator(config.Rand)),
		wave:       gesture.NewWaveDetector(),
		pluginMgr:  plugin.NewManager(config.PluginDir),
		pluginExec: plugin.NewExecutor(5000), // 5 second timeout for plugin execution
		enabled:    false,
		stopCh:     nil,
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		g.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		g.detector = detector.NewMockDetector()
	}

	return g
}

// SetEnabled pauses or resumes play. While paused the quiz clock stops and
// frames are not processed.
func (g *Game) SetEnabled(enabled bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.enabled = enabled
}

// IsEnabled returns whether play is currently enabled.
func (g *Game) IsEnabled() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.enabled
}

// SetDetector sets the hand detector implementation to use.
func (g *Game) SetDetector(d detector.Detector) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.detector = d
}

// DiscoverPlugins scans the plugin directory and loads available plugins.
func (g *Game) DiscoverPlugins() error {
	return g.pluginMgr.Discover()
}

// Start opens the camera, enables play and begins the game loop.
func (g *Game) Start() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	// Don't start if already running
	if g.stopCh != nil {
		return nil
	}

	// Open the camera
	if err := g.camera.Open(); err != nil {
		return err
	}

	// Set initial FPS to idle mode
	g.camera.SetFPS(IdleFPS)

	// Record the session and start the loop with play enabled
	g.enabled = true
	g.beginSessionLocked()
	g.stopCh = make(chan struct{})
	go g.runLoop(g.stopCh)

	log.Println("Game loop started")
	return nil
}

// Stop halts the game loop and releases resources.
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()

	// Signal the loop to stop
	if g.stopCh != nil {
		close(g.stopCh)
		g.stopCh = nil
	}

	// Record the final score
	g.finishSessionLocked()

	// Close the camera
	if err := g.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	// Close motion detector
	g.motion.Close()

	// Close the hand detector if set
	if g.detector != nil {
		if err := g.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Game loop stopped")
}

// OnElapsed advances the quiz clock by dt seconds. When the generation delay
// runs out a new equation appears and the equation event fires.
func (g *Game) OnElapsed(dt float64) {
	g.mu.Lock()
	if dt > 0 {
		g.elapsed += dt
	}
	eq := g.engine.Advance(dt)
	var text string
	if eq != nil {
		text = eq.Text()
	}
	fingers := g.fingers
	score := g.engine.Score()
	g.mu.Unlock()

	if eq != nil {
		log.Printf("New equation: %s", text)
		go g.fireEvent(store.EventEquation, text, fingers, score, "")
	}
}

// OnTick processes one classified camera tick. A nil hand means nothing was
// detected this tick; the finger count drops to zero and no answer is
// submitted.
func (g *Game) OnTick(hand *detector.HandLandmarks) {
	g.mu.Lock()

	if hand == nil {
		g.fingers = 0
		g.lastHand = nil
		g.wave.Reset()
		g.mu.Unlock()
		return
	}

	h := *hand
	g.lastHand = &h
	g.fingers = gesture.CountFingers(hand)

	// A wave of the wrist restarts the session
	nowMs := int64(g.elapsed * 1000)
	wrist := hand.Points[detector.Wrist]
	g.wave.Observe(wrist.X, wrist.Y, nowMs)
	if g.wave.Detected(nowMs) {
		g.restartLocked()
		g.mu.Unlock()
		log.Println("Wave detected, session restarted")
		go g.fireEvent(store.EventRestart, "", 0, 0, "")
		return
	}

	eq := g.engine.Equation()
	text := g.engine.EquationText()
	outcome := g.engine.Submit(g.fingers)
	fingers := g.fingers
	score := g.engine.Score()
	feedback := g.engine.Feedback()
	sessionID := g.sessionID
	cb := g.OnAnswer
	g.mu.Unlock()

	switch outcome {
	case quiz.OutcomeCorrect:
		log.Printf("Correct: %s answered with %d (score: %d)", text, fingers, score)
		g.recordRound(sessionID, eq, fingers, true, score)
		go g.fireEvent(store.EventCorrect, text, fingers, score, feedback)
		if cb != nil {
			cb(true, score)
		}
	case quiz.OutcomeIncorrect:
		log.Printf("Incorrect: %s answered with %d", text, fingers)
		g.recordRound(sessionID, eq, fingers, false, score)
		go g.fireEvent(store.EventIncorrect, text, fingers, score, feedback)
		if cb != nil {
			cb(false, score)
		}
	}
}

// Restart abandons the current session and begins a fresh one with score zero.
func (g *Game) Restart() {
	g.mu.Lock()
	g.restartLocked()
	g.mu.Unlock()

	log.Println("Session restarted")
	go g.fireEvent(store.EventRestart, "", 0, 0, "")
}

// restartLocked finishes the current session row and resets the engine.
// Callers must hold g.mu.
func (g *Game) restartLocked() {
	g.finishSessionLocked()
	g.engine.Reset()
	g.wave.Reset()
	g.fingers = 0
	g.beginSessionLocked()
}

// beginSessionLocked creates a new session row. Callers must hold g.mu.
func (g *Game) beginSessionLocked() {
	if g.config.Store == nil {
		return
	}

	sess := &store.Session{
		ID:   uuid.New().String(),
		Mode: string(g.engine.Kind()),
	}
	if err := g.config.Store.Sessions().Create(sess); err != nil {
		log.Printf("Failed to create session: %v", err)
		return
	}
	g.sessionID = sess.ID
}

// finishSessionLocked records the final score and end time of the current
// session row. Callers must hold g.mu.
func (g *Game) finishSessionLocked() {
	if g.config.Store == nil || g.sessionID == "" {
		return
	}

	if err := g.config.Store.Sessions().Finish(g.sessionID, g.engine.Score()); err != nil {
		log.Printf("Failed to finish session: %v", err)
	}
	g.sessionID = ""
}

// recordRound persists one evaluated answer.
func (g *Game) recordRound(sessionID string, eq *quiz.Equation, fingers int, correct bool, score int) {
	if g.config.Store == nil || sessionID == "" || eq == nil {
		return
	}

	round := &store.Round{
		SessionID: sessionID,
		Equation:  eq.Text(),
		A:         eq.A,
		B:         eq.B,
		Fingers:   fingers,
		Correct:   correct,
	}
	if eq.Kind == quiz.KindArithmetic {
		round.Op = eq.Op.String()
		result := eq.Result
		round.Result = &result
	}

	if err := g.config.Store.Rounds().Create(round); err != nil {
		log.Printf("Failed to record round: %v", err)
		return
	}

	if correct {
		if err := g.config.Store.Sessions().SetScore(sessionID, score); err != nil {
			log.Printf("Failed to update session score: %v", err)
		}
	}
}

// fireEvent runs the plugin actions bound to a game event.
func (g *Game) fireEvent(event store.Event, equation string, fingers, score int, feedback string) {
	if g.config.Store == nil {
		return
	}

	bindings, err := g.config.Store.EventActions().ListByEvent(event)
	if err != nil {
		log.Printf("Failed to load actions for %s: %v", event, err)
		return
	}

	for _, binding := range bindings {
		p, err := g.pluginMgr.Get(binding.PluginName)
		if err != nil {
			log.Printf("Plugin %s not found for %s action", binding.PluginName, event)
			continue
		}
		if !p.HandlesEvent(string(event)) {
			log.Printf("Plugin %s does not handle %s events", binding.PluginName, event)
			continue
		}

		req := &plugin.Request{
			Action:   binding.ActionName,
			Event:    string(event),
			Equation: equation,
			Fingers:  fingers,
			Score:    score,
			Feedback: feedback,
			Config:   binding.Config,
		}

		resp, err := g.pluginExec.Execute(p, req)
		if err != nil {
			log.Printf("Plugin %s failed on %s: %v", binding.PluginName, event, err)
			continue
		}
		if !resp.Success {
			log.Printf("Plugin %s reported error on %s: %s", binding.PluginName, event, resp.Error)
		}
	}
}

// Snapshot returns a consistent view of the game state.
func (g *Game) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	snap := Snapshot{
		SessionID: g.sessionID,
		Kind:      g.engine.Kind(),
		State:     g.engine.State(),
		Equation:  g.engine.EquationText(),
		Score:     g.engine.Score(),
		Feedback:  g.engine.Feedback(),
		Fingers:   g.fingers,
		Enabled:   g.enabled,
	}
	if g.lastHand != nil {
		h := *g.lastHand
		snap.Hand = &h
		snap.Extended = gesture.ExtendedFingers(&h)
	}
	return snap
}

// FingerCount returns the finger count from the latest tick.
func (g *Game) FingerCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.fingers
}

// Score returns the current session score.
func (g *Game) Score() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.engine.Score()
}

// Feedback returns the most recent answer feedback.
func (g *Game) Feedback() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.engine.Feedback()
}

// EquationText returns the display form of the current equation, or an empty
// string when no equation is active.
func (g *Game) EquationText() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.engine.EquationText()
}

// State returns the quiz engine state.
func (g *Game) State() quiz.State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.engine.State()
}

// Kind returns the quiz mode being played.
func (g *Game) Kind() quiz.Kind {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.engine.Kind()
}

// SessionID returns the store ID of the session in progress, or an empty
// string when no store is attached.
func (g *Game) SessionID() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.sessionID
}

// LastHand returns a copy of the most recently detected hand, or nil.
func (g *Game) LastHand() *detector.HandLandmarks {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.lastHand == nil {
		return nil
	}
	h := *g.lastHand
	return &h
}

// Camera returns the camera instance.
func (g *Game) Camera() capture.Camera {
	return g.camera
}
