package game

import (
	"log"
	"time"
)

// runLoop is the main game loop that processes frames from the camera.
// It manages the state transitions between idle and active modes based on
// motion detection.
//
// Loop logic:
// 1. Start in idle mode (idleFPS=5)
// 2. Advance the quiz clock every tick while play is enabled
// 3. On motion detected, switch to active mode (activeFPS=15)
// 4. Run hand detection and feed the first hand to the quiz
// 5. After 2s no motion, switch back to idle mode
func (g *Game) runLoop(stopCh <-chan struct{}) {
	// Track whether we're in active mode
	activeMode := false

	// Track the last motion detection time
	lastMotionTime := time.Now()

	// Frame interval based on current FPS
	frameInterval := time.Second / time.Duration(IdleFPS)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(lastTick).Seconds()
			lastTick = now

			// Skip processing while paused
			if !g.IsEnabled() {
				continue
			}

			// The quiz clock keeps running even when no hand is visible
			g.OnElapsed(dt)

			// Read a frame from the camera
			frame, err := g.camera.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			// Step 1: Motion detection
			motionDetected, _ := g.motion.Detect(frame)

			if motionDetected {
				lastMotionTime = now

				// Switch to active mode if not already
				if !activeMode {
					activeMode = true
					g.camera.SetFPS(ActiveFPS)
					frameInterval = time.Second / time.Duration(ActiveFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to active mode")
				}
			} else if activeMode {
				// Check if we should switch back to idle mode
				if time.Since(lastMotionTime) > time.Duration(IdleTimeoutMs)*time.Millisecond {
					activeMode = false
					g.camera.SetFPS(IdleFPS)
					frameInterval = time.Second / time.Duration(IdleFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to idle mode")
				}
			}

			// In idle mode the scene is still, so no hand is answering
			if !activeMode {
				frame.Close()
				g.OnTick(nil)
				continue
			}

			// Step 2: Hand detection
			hands, err := g.detector.Detect(frame)
			frame.Close() // Done with the frame

			if err != nil {
				log.Printf("Error detecting hands: %v", err)
				continue
			}

			if len(hands) == 0 {
				g.OnTick(nil)
				continue
			}

			// Step 3: The quiz reads a single hand; the first one answers
			g.OnTick(&hands[0])
		}
	}
}
