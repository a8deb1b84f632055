package server

import (
	"fmt"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// ConsoleMessage is a renderer log line forwarded to the web client
type ConsoleMessage struct {
	Type      string    `json:"type"` // "console"
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// WebLogger implements renderer.Logger by sending messages to a console channel
type WebLogger struct {
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a logger whose output is forwarded to the client
func NewWebLogger(consoleChan chan<- ConsoleMessage) renderer.Logger {
	return &WebLogger{consoleChan: consoleChan}
}

// Printf implements the renderer.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	// Also write to stdout for server logs
	fmt.Println(message)

	// Send to the web console if the channel has room (never block a render)
	if wl.consoleChan != nil {
		select {
		case wl.consoleChan <- ConsoleMessage{
			Type:      "console",
			Message:   message,
			Timestamp: time.Now(),
			Level:     "info",
		}:
		default:
		}
	}
}
