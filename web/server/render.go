package server

import (
	"encoding/binary"
	"log"
	"net/http"
	"sync/atomic"

	"github.com/golang/snappy"
	"github.com/gorilla/websocket"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// StartMessage is the JSON frame sent before any pixel data
type StartMessage struct {
	Type   string `json:"type"` // "start"
	Scene  string `json:"scene"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// CompleteMessage is the JSON frame sent after the last row
type CompleteMessage struct {
	Type        string `json:"type"` // "complete"
	ElapsedMs   int64  `json:"elapsedMs"`
	PrimaryRays int64  `json:"primaryRays"`
}

// rowTracker is a PixelSink that wraps a framebuffer and reports each row
// as soon as every pixel in it has been written. The renderer writes rows
// from concurrent goroutines, so the counters are atomic.
type rowTracker struct {
	fb        *renderer.Framebuffer
	remaining []int32 // pixels left per row
	rowsLeft  int32
	done      chan int // completed row indices; closed after the last row
}

func newRowTracker(fb *renderer.Framebuffer) *rowTracker {
	width, height := fb.Size()
	t := &rowTracker{
		fb:        fb,
		remaining: make([]int32, height),
		rowsLeft:  int32(height),
		done:      make(chan int, height),
	}
	for y := range t.remaining {
		t.remaining[y] = int32(width)
	}
	return t
}

// SetColor forwards the pixel to the framebuffer and signals the row when
// its last pixel lands. The channel is buffered to the full row count, so
// sends never block render goroutines.
func (t *rowTracker) SetColor(x, y int, c core.Color) {
	t.fb.SetColor(x, y, c)
	if y < 0 || y >= len(t.remaining) {
		return
	}
	if atomic.AddInt32(&t.remaining[y], -1) == 0 {
		t.done <- y
		if atomic.AddInt32(&t.rowsLeft, -1) == 0 {
			close(t.done)
		}
	}
}

// handleRenderWS renders a scene and streams finished rows to the client
// over a websocket: a JSON start frame, one binary frame per row, console
// frames as the renderer logs, and a JSON complete frame at the end.
func (s *Server) handleRenderWS(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		http.Error(w, "Invalid request: "+err.Error(), http.StatusBadRequest)
		return
	}

	sceneObj := s.createScene(req.Scene)
	if sceneObj == nil {
		http.Error(w, "Unknown scene: "+req.Scene, http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}
	defer conn.Close()

	consoleChan := make(chan ConsoleMessage, 64)
	sceneObj.CameraConfig.ReflectionDepth = req.Depth
	sceneObj.CameraConfig.Logger = NewWebLogger(consoleChan)
	camera := sceneObj.NewCamera()

	fb := renderer.NewFramebuffer(req.Width, req.Height)
	tracker := newRowTracker(fb)

	if err := conn.WriteJSON(StartMessage{
		Type:   "start",
		Scene:  req.Scene,
		Width:  req.Width,
		Height: req.Height,
	}); err != nil {
		return
	}

	statsCh := make(chan renderer.RenderStats, 1)
	go func() {
		statsCh <- camera.RenderThreaded(sceneObj, tracker, req.Width, req.Height)
	}()

	if err := streamRows(conn, fb, tracker, consoleChan); err != nil {
		log.Printf("Render stream aborted: %v", err)
		// Drain the tracker so render goroutines are not leaked
		for range tracker.done {
		}
		<-statsCh
		return
	}

	stats := <-statsCh
	if err := conn.WriteJSON(CompleteMessage{
		Type:        "complete",
		ElapsedMs:   stats.Elapsed.Milliseconds(),
		PrimaryRays: stats.PrimaryRays,
	}); err != nil {
		log.Printf("Render complete frame failed: %v", err)
	}
}

// streamRows forwards completed rows and console messages to the client
// until the tracker reports the last row
func streamRows(conn *websocket.Conn, fb *renderer.Framebuffer, tracker *rowTracker, consoleChan <-chan ConsoleMessage) error {
	for {
		select {
		case y, ok := <-tracker.done:
			if !ok {
				return nil
			}
			if err := writeRowFrame(conn, fb, y); err != nil {
				return err
			}
		case msg := <-consoleChan:
			if err := conn.WriteJSON(msg); err != nil {
				return err
			}
		}
	}
}

// writeRowFrame sends one row as a binary frame: a big-endian uint32 row
// index followed by the snappy-compressed RGBA bytes of the row.
func writeRowFrame(conn *websocket.Conn, fb *renderer.Framebuffer, y int) error {
	compressed := snappy.Encode(nil, fb.Row(y))
	frame := make([]byte, 4+len(compressed))
	binary.BigEndian.PutUint32(frame, uint32(y))
	copy(frame[4:], compressed)
	return conn.WriteMessage(websocket.BinaryMessage, frame)
}
