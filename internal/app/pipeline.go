package app

import (
	"log"
	"time"

	"github.com/ayusman/abhinaya/internal/analysis"
	"github.com/ayusman/abhinaya/internal/plugin"
	"github.com/ayusman/abhinaya/internal/store"
)

// runPipeline is the main loop: it paces frame reads by motion state,
// runs detection and analysis on active frames, and reacts to stabilized
// label transitions.
//
// Pipeline logic:
// 1. Start in idle mode (5 FPS)
// 2. On motion, switch to active mode (15 FPS)
// 3. Run landmark detection and per-frame analysis
// 4. Publish every frame result to the live-results sink
// 5. On a stabilized label change, record an event and fire reactions
// 6. After 2s without motion, drop back to idle mode
//
// The stop channel is passed in rather than re-read from the struct so
// that Stop clearing the field cannot leave a mid-frame iteration
// selecting on a nil channel.
func (a *App) runPipeline(stopCh <-chan struct{}) {
	activeMode := false
	lastMotionTime := time.Now()

	frameInterval := time.Second / time.Duration(IdleFPS)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if !a.IsEnabled() {
				continue
			}

			frame, err := a.camera.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			motionDetected, _ := a.motion.Detect(frame)

			if motionDetected {
				lastMotionTime = time.Now()

				if !activeMode {
					activeMode = true
					a.camera.SetFPS(ActiveFPS)
					frameInterval = time.Second / time.Duration(ActiveFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to active mode")
				}
			} else if activeMode && time.Since(lastMotionTime) > idleTimeout() {
				activeMode = false
				a.camera.SetFPS(IdleFPS)
				frameInterval = time.Second / time.Duration(IdleFPS)
				ticker.Reset(frameInterval)
				log.Println("Switched to idle mode")
			}

			if !activeMode || a.Detector() == nil {
				frame.Close()
				continue
			}

			obs, err := a.Detector().Detect(frame)
			if err != nil {
				frame.Close()
				log.Printf("Error detecting landmarks: %v", err)
				continue
			}

			result := a.analyzer.Analyze(frame, obs)
			frame.Close()

			a.handleResult(result)
		}
	}
}

// handleResult publishes the frame result and turns stabilized label
// changes into events and plugin reactions.
func (a *App) handleResult(result analysis.FrameResult) {
	a.mu.RLock()
	publisher := a.results
	a.mu.RUnlock()

	if publisher != nil {
		publisher.Publish(result)
	}

	if result.Emotion != nil && result.Emotion.Label != a.lastEmotion {
		a.lastEmotion = result.Emotion.Label
		a.recordTransition(store.StreamEmotion, 0, result.Emotion.Label, result.Emotion.Confidence)
	}

	for _, g := range result.Gestures {
		if g.Label == a.lastGestures[g.Stream] {
			continue
		}
		a.lastGestures[g.Stream] = g.Label
		a.recordTransition(store.StreamGesture, g.Stream, g.Label, g.Confidence)
	}
}

// recordTransition persists a label change and fires plugin reactions
// and the registered callback.
func (a *App) recordTransition(stream store.StreamKind, index int, label string, confidence float64) {
	log.Printf("%s stream %d: %s (%.2f)", stream, index, label, confidence)

	if a.config.Store != nil && a.sessionID != "" {
		event := &store.Event{
			SessionID:   a.sessionID,
			Stream:      stream,
			StreamIndex: index,
			Label:       label,
			Confidence:  confidence,
		}
		if err := a.config.Store.Events().Create(event); err != nil {
			log.Printf("Failed to record event: %v", err)
		}
	}

	for _, p := range a.pluginMgr.Subscribers(label) {
		go a.runReaction(p, stream, index, label, confidence)
	}

	a.mu.RLock()
	callback := a.onTransition
	a.mu.RUnlock()
	if callback != nil {
		callback(stream, index, label, confidence)
	}
}

func (a *App) runReaction(p *plugin.Plugin, stream store.StreamKind, index int, label string, confidence float64) {
	req := &plugin.Request{
		Event:       "label_changed",
		Stream:      string(stream),
		StreamIndex: index,
		Label:       label,
		Confidence:  confidence,
	}

	resp, err := a.pluginExec.Execute(p, req)
	if err != nil {
		log.Printf("Plugin %s failed: %v", p.Manifest.Name, err)
		return
	}
	if !resp.Success {
		log.Printf("Plugin %s reported error: %s", p.Manifest.Name, resp.Error)
	}
}
