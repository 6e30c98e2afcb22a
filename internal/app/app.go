// Package app wires the capture, detection, analysis, storage, and plugin
// layers into the running application.
package app

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ayusman/abhinaya/internal/analysis"
	"github.com/ayusman/abhinaya/internal/capture"
	"github.com/ayusman/abhinaya/internal/detector"
	"github.com/ayusman/abhinaya/internal/plugin"
	"github.com/ayusman/abhinaya/internal/store"
)

// Pipeline timing constants.
const (
	// IdleFPS is the frame rate when no motion is detected.
	IdleFPS = 5
	// ActiveFPS is the frame rate during active analysis.
	ActiveFPS = 15
	// IdleTimeoutMs is how long without motion before dropping back to idle.
	IdleTimeoutMs = 2000
	// pluginTimeoutMs bounds each reaction plugin invocation.
	pluginTimeoutMs = 5000
)

// ResultsPublisher receives every frame's analysis result. The HTTP
// server's WebSocket hub implements it.
type ResultsPublisher interface {
	Publish(result interface{})
}

// TransitionFunc is called when a stream's stabilized label changes.
type TransitionFunc func(stream store.StreamKind, index int, label string, confidence float64)

// Config holds configuration options for the application.
type Config struct {
	Store        *store.Store
	PluginDir    string
	CameraID     int
	MotionThresh float64
}

// App orchestrates the per-frame analysis pipeline and its reactions.
type App struct {
	config     Config
	camera     capture.Camera
	motion     *capture.MotionDetector
	detector   detector.Detector
	analyzer   *analysis.Analyzer
	pluginMgr  *plugin.Manager
	pluginExec *plugin.Executor
	results    ResultsPublisher

	enabled      bool
	mu           sync.RWMutex
	stopCh       chan struct{}
	sessionID    string
	onTransition TransitionFunc

	lastEmotion  string
	lastGestures map[int]string
}

// New creates an App with the given configuration.
func New(config Config) *App {
	motionThreshold := config.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // 1% pixel change
	}

	a := &App{
		config:       config,
		camera:       capture.NewCamera(capture.Config{DeviceID: config.CameraID, FPS: IdleFPS}),
		motion:       capture.NewMotionDetector(motionThreshold),
		analyzer:     analysis.New(),
		pluginMgr:    plugin.NewManager(config.PluginDir),
		pluginExec:   plugin.NewExecutor(pluginTimeoutMs),
		lastGestures: make(map[int]string),
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe face and hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// SetEnabled enables or disables analysis.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether analysis is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector replaces the landmark detector implementation.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// SetResultsPublisher wires the live-results sink, typically the server's
// WebSocket hub.
func (a *App) SetResultsPublisher(p ResultsPublisher) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.results = p
}

// OnTransition registers a callback fired on each stabilized label change.
func (a *App) OnTransition(fn TransitionFunc) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onTransition = fn
}

// DiscoverPlugins scans the plugin directory and loads available plugins.
func (a *App) DiscoverPlugins() error {
	return a.pluginMgr.Discover()
}

// Start opens the camera, begins a session, and starts the pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}
	a.camera.SetFPS(IdleFPS)

	if a.config.Store != nil {
		sess := &store.Session{ID: uuid.NewString()}
		if err := a.config.Store.Sessions().Create(sess); err != nil {
			log.Printf("Failed to create session: %v", err)
		} else {
			a.sessionID = sess.ID
		}
	}

	a.stopCh = make(chan struct{})
	go a.runPipeline(a.stopCh)

	log.Println("Analysis pipeline started")
	return nil
}

// Stop halts the pipeline, ends the session, and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.motion.Close()

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	if a.config.Store != nil && a.sessionID != "" {
		if err := a.config.Store.Sessions().End(a.sessionID); err != nil {
			log.Printf("Failed to end session: %v", err)
		}
		a.sessionID = ""
	}

	log.Println("Analysis pipeline stopped")
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// MotionDetector returns the motion detector instance.
func (a *App) MotionDetector() *capture.MotionDetector {
	return a.motion
}

// PluginManager returns the plugin manager.
func (a *App) PluginManager() *plugin.Manager {
	return a.pluginMgr
}

// Detector returns the landmark detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}

// SessionID returns the active session's ID, empty when not running.
func (a *App) SessionID() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.sessionID
}

// idleTimeout returns the idle switchover duration.
func idleTimeout() time.Duration {
	return time.Duration(IdleTimeoutMs) * time.Millisecond
}
