package server

import (
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"time"

	"gocv.io/x/gocv"

	"github.com/ayusman/abhinaya/internal/capture"
)

const (
	// streamBoundary separates JPEG parts in the multipart stream.
	streamBoundary = "frame"
	// streamInterval paces the stream at roughly 15 FPS.
	streamInterval = 66 * time.Millisecond
)

// StreamHandler serves the camera feed as a multipart/x-mixed-replace
// MJPEG stream.
type StreamHandler struct {
	camera capture.Camera
}

// NewStreamHandler creates a StreamHandler over the given camera.
func NewStreamHandler(camera capture.Camera) *StreamHandler {
	return &StreamHandler{camera: camera}
}

// ServeHTTP writes JPEG parts until the client disconnects or a part can
// no longer be written. Frames that fail to read or encode are skipped;
// the stream stays open across transient camera errors.
func (h *StreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "multipart/x-mixed-replace; boundary="+streamBoundary)
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	mw := multipart.NewWriter(w)
	if err := mw.SetBoundary(streamBoundary); err != nil {
		http.Error(w, "Failed to set up stream", http.StatusInternalServerError)
		return
	}
	defer mw.Close()

	flusher, _ := w.(http.Flusher)

	ticker := time.NewTicker(streamInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}

		frame, err := h.camera.ReadFrame()
		if err != nil {
			continue
		}

		buf, err := gocv.IMEncode(".jpg", *frame)
		frame.Close()
		if err != nil {
			continue
		}

		if err := writeStreamPart(mw, buf.GetBytes()); err != nil {
			buf.Close()
			return
		}
		buf.Close()

		if flusher != nil {
			flusher.Flush()
		}
	}
}

// writeStreamPart emits one JPEG frame as a multipart section.
func writeStreamPart(mw *multipart.Writer, jpeg []byte) error {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", "image/jpeg")
	header.Set("Content-Length", strconv.Itoa(len(jpeg)))

	part, err := mw.CreatePart(header)
	if err != nil {
		return err
	}
	_, err = part.Write(jpeg)
	return err
}
