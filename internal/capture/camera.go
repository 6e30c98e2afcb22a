// Package capture provides webcam frame acquisition and motion detection
// using GoCV (OpenCV).
package capture

import (
	"errors"
	"fmt"
	"sync"

	"gocv.io/x/gocv"
)

// Default capture settings. The resolution matches what the landmark
// models were tuned against; the pipeline lowers the effective rate when
// the scene is idle.
const (
	DefaultWidth  = 1280
	DefaultHeight = 720
	DefaultFPS    = 30
)

// ErrCameraNotOpen is returned when reading from a camera that is not open.
var ErrCameraNotOpen = errors.New("camera is not open")

// Camera is the frame source consumed by the analysis pipeline.
type Camera interface {
	Open() error
	Close() error
	ReadFrame() (*gocv.Mat, error)
	SetFPS(fps int)
	FPS() int
	IsOpen() bool
}

// Config holds camera device settings.
type Config struct {
	DeviceID int
	Width    int
	Height   int
	FPS      int
}

// DefaultConfig returns settings for device 0 at the default resolution.
func DefaultConfig() Config {
	return Config{
		DeviceID: 0,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		FPS:      DefaultFPS,
	}
}

// webcam captures frames from a physical device through GoCV.
type webcam struct {
	cfg     Config
	capture *gocv.VideoCapture
	mu      sync.Mutex
	open    bool
	fps     int
}

// NewCamera creates a Camera for the configured device. Zero width,
// height, or FPS fall back to the defaults.
func NewCamera(cfg Config) Camera {
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.FPS <= 0 {
		cfg.FPS = DefaultFPS
	}
	return &webcam{cfg: cfg, fps: cfg.FPS}
}

// Open opens the device and applies the configured resolution and rate.
func (c *webcam) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.open {
		return nil
	}

	capture, err := gocv.OpenVideoCapture(c.cfg.DeviceID)
	if err != nil {
		return fmt.Errorf("opening camera %d: %w", c.cfg.DeviceID, err)
	}

	capture.Set(gocv.VideoCaptureFrameWidth, float64(c.cfg.Width))
	capture.Set(gocv.VideoCaptureFrameHeight, float64(c.cfg.Height))
	capture.Set(gocv.VideoCaptureFPS, float64(c.fps))

	c.capture = capture
	c.open = true

	return nil
}

// Close releases the device.
func (c *webcam) Close() error {
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

// ReadFrame reads one frame. The caller owns the returned Mat and must
// close it.
func (c *webcam) ReadFrame() (*gocv.Mat, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.open || c.capture == nil {
		return nil, ErrCameraNotOpen
	}

	mat := gocv.NewMat()
	if ok := c.capture.Read(&mat); !ok {
		mat.Close()
		return nil, errors.New("failed to read frame from camera")
	}
	if mat.Empty() {
		mat.Close()
		return nil, errors.New("captured frame is empty")
	}

	return &mat, nil
}

// SetFPS changes the capture rate. Values <= 0 are ignored.
func (c *webcam) SetFPS(fps int) {
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
func (c *webcam) FPS() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.fps
}

// IsOpen reports whether the device is open.
func (c *webcam) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.open
}
