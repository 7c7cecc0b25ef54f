package observability

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// EventType defines the category of the log event.
type EventType string

const (
	EventTypeRun           EventType = "run"
	EventTypeStageInput    EventType = "stage_input"
	EventTypeStageOutput   EventType = "stage_output"
	EventTypeReasoning     EventType = "reasoning"
	EventTypeDecodeWarning EventType = "decode_warning"
	EventTypeStageError    EventType = "stage_error"
	EventTypePlanSaved     EventType = "plan_saved"
)

// Event represents a structured log entry.
type Event struct {
	Type      EventType `json:"type"`
	Stage     string    `json:"stage,omitempty"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// Logger emits structured JSON events to an injected writer, so tests can
// capture diagnostics without intercepting standard output. Raw model output
// events are additionally appended to a rotating jsonl file.
type Logger struct {
	out        io.Writer
	llmLogPath string
	maxSize    int64
}

func NewLogger() *Logger {
	l := NewLoggerWithWriter(os.Stdout)
	l.llmLogPath = filepath.Join("logs", "llm.jsonl")
	return l
}

// NewLoggerWithWriter builds a logger that emits only to w, with no jsonl
// file sink. Tests use this to capture diagnostics.
func NewLoggerWithWriter(w io.Writer) *Logger {
	return &Logger{
		out:     w,
		maxSize: 10 * 1024 * 1024, // 10MB
	}
}

// Log emits a structured JSON event to the logger's writer.
func (l *Logger) Log(evt Event) {
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now()
	}
	data, err := json.Marshal(evt)
	if err != nil {
		fmt.Fprintf(l.out, "{\"error\": \"failed to marshal event: %v\"}\n", err)
		return
	}
	fmt.Fprintln(l.out, string(data))

	if evt.Type == EventTypeStageOutput && l.llmLogPath != "" {
		l.writeToFile(data)
	}
}

func (l *Logger) writeToFile(data []byte) {
	if err := os.MkdirAll(filepath.Dir(l.llmLogPath), 0755); err != nil {
		log.Printf("failed to create log directory: %v", err)
		return
	}

	// Check size before writing
	info, err := os.Stat(l.llmLogPath)
	if err == nil && info.Size() > l.maxSize {
		l.rotateLogs()
	}

	f, err := os.OpenFile(l.llmLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("failed to open log file: %v", err)
		return
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		log.Printf("failed to write to log file: %v", err)
	}
}

func (l *Logger) rotateLogs() {
	// Simple rotation: keep one .old file
	oldPath := l.llmLogPath + ".old"
	_ = os.Remove(oldPath)
	_ = os.Rename(l.llmLogPath, oldPath)
}

// Helper methods for common events

func (l *Logger) LogStageInput(stage string, inputs map[string]string) {
	l.Log(Event{
		Type:  EventTypeStageInput,
		Stage: stage,
		Data:  inputs,
	})
}

func (l *Logger) LogStageOutput(stage, raw string) {
	l.Log(Event{
		Type:  EventTypeStageOutput,
		Stage: stage,
		Data:  map[string]string{"raw": raw},
	})
}

func (l *Logger) LogReasoning(stage, content string) {
	l.Log(Event{
		Type:  EventTypeReasoning,
		Stage: stage,
		Data:  map[string]string{"content": content},
	})
}

func (l *Logger) LogDecodeWarning(message, preview string) {
	l.Log(Event{
		Type: EventTypeDecodeWarning,
		Data: map[string]string{
			"message": message,
			"preview": preview,
		},
	})
}

func (l *Logger) LogStageError(stage string, err error) {
	l.Log(Event{
		Type:  EventTypeStageError,
		Stage: stage,
		Data:  map[string]string{"error": err.Error()},
	})
}

func (l *Logger) LogPlanSaved(request string) {
	l.Log(Event{
		Type: EventTypePlanSaved,
		Data: map[string]string{"request": request},
	})
}
