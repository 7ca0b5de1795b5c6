// Package capture provides camera capture functionality using GoCV (OpenCV).
package capture

import (
	"errors"
	"fmt"
	"sync"

	"gocv.io/x/gocv"
)

// DefaultFPS is the capture rate cameras start at. The game loop raises it
// while a player is active and drops back when the scene goes quiet.
const DefaultFPS = 5

// Capture resolution. Hand detection works fine at 640x480 and higher
// resolutions only add per-frame cost.
const (
	frameWidth  = 640
	frameHeight = 480
)

// ErrCameraNotOpen is returned when trying to read from a camera that is not open.
var ErrCameraNotOpen = errors.New("camera is not open")

// Camera defines the interface for camera capture implementations.
type Camera interface {
	Open() error
	Close() error
	ReadFrame() (*gocv.Mat, error)
	SetFPS(fps int)
	FPS() int
	IsOpen() bool
}

// deviceCamera captures frames from a physical camera device through GoCV.
type deviceCamera struct {
	deviceID int
	mu       sync.Mutex
	capture  *gocv.VideoCapture
	open     bool
	fps      int
}

// NewCamera creates a Camera for the given device ID. The camera starts
// closed; call Open before reading frames.
func NewCamera(deviceID int) Camera {
	return &deviceCamera{
		deviceID: deviceID,
		fps:      DefaultFPS,
	}
}

// Open opens the camera device and configures the capture resolution.
// Opening an already open camera is a no-op.
func (c *deviceCamera) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.open {
		return nil
	}

	capture, err := gocv.OpenVideoCapture(c.deviceID)
	if err != nil {
		return fmt.Errorf("open camera device %d: %w", c.deviceID, err)
	}

	capture.Set(gocv.VideoCaptureFrameWidth, frameWidth)
	capture.Set(gocv.VideoCaptureFrameHeight, frameHeight)
	capture.Set(gocv.VideoCaptureFPS, float64(c.fps))

	c.capture = capture
	c.open = true

	return nil
}

// Close releases the camera device. Closing a camera that was never opened
// returns nil.
func (c *deviceCamera) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.open || c.capture == nil {
		c.open = false
		return nil
	}

	err := c.capture.Close()
	c.capture = nil
	c.open = false

	return err
}

// ReadFrame reads a single frame from the camera. The caller owns the
// returned Mat and must Close it.
func (c *deviceCamera) ReadFrame() (*gocv.Mat, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.open || c.capture == nil {
		return nil, ErrCameraNotOpen
	}

	frame := gocv.NewMat()
	if ok := c.capture.Read(&frame); !ok || frame.Empty() {
		frame.Close()
		return nil, fmt.Errorf("read frame from camera device %d", c.deviceID)
	}

	return &frame, nil
}

// SetFPS sets the capture rate, propagating it to the open device. Values
// less than or equal to 0 are ignored.
func (c *deviceCamera) SetFPS(fps int) {
	if fps <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.fps = fps

	if c.capture != nil {
		c.capture.Set(gocv.VideoCaptureFPS, float64(fps))
	}
}

// FPS returns the current capture rate setting.
func (c *deviceCamera) FPS() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.fps
}

// IsOpen reports whether the camera device is open.
func (c *deviceCamera) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.open
}
