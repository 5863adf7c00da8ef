// Package logger provides the structured logger used across the detector
// service. Entries go out as JSON by default; text format is for local runs.
package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Level is the logging threshold.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a config string onto a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return DebugLevel
	case "WARN", "WARNING":
		return WarnLevel
	case "ERROR":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Format selects the output encoding.
type Format int

const (
	JSONFormat Format = iota
	TextFormat
)

// Config sets up a Logger.
type Config struct {
	Level   Level     `yaml:"level" json:"level"`
	Format  Format    `yaml:"format" json:"format"`
	Output  io.Writer `yaml:"-" json:"-"`
	Service string    `yaml:"service" json:"service"`
}

// Logger is an immutable structured logger; WithField and friends return
// derived instances, so sharing one across goroutines is safe.
type Logger struct {
	level   Level
	format  Format
	output  io.Writer
	service string
	fields  map[string]any
}

type entry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Service   string         `json:"service,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// New creates a logger from config; nil gets info-level JSON on stdout.
func New(config *Config) *Logger {
	if config == nil {
		config = &Config{}
	}
	out := config.Output
	if out == nil {
		out = os.Stdout
	}
	return &Logger{
		level:   config.Level,
		format:  config.Format,
		output:  out,
		service: config.Service,
		fields:  map[string]any{},
	}
}

// WithField returns a logger that attaches key=value to every entry.
func (l *Logger) WithField(key string, value any) *Logger {
	derived := l.clone()
	derived.fields[key] = value
	return derived
}

// WithContext picks up the request ID, when one has been set by the server
// middleware.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return l.WithField("request_id", id)
	}
	return l
}

func (l *Logger) Debug(msg string, args ...any) { l.log(DebugLevel, msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.log(InfoLevel, msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.log(WarnLevel, msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.log(ErrorLevel, msg, args...) }

func (l *Logger) log(level Level, msg string, args ...any) {
	if level < l.level {
		return
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	e := entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Level:     level.String(),
		Message:   msg,
		Service:   l.service,
	}
	for k, v := range l.fields {
		if k == "request_id" {
			if s, ok := v.(string); ok {
				e.RequestID = s
				continue
			}
		}
		if e.Fields == nil {
			e.Fields = map[string]any{}
		}
		e.Fields[k] = v
	}

	l.write(e)
}

func (l *Logger) write(e entry) {
	if l.format == TextFormat {
		parts := []string{e.Timestamp, "[" + e.Level + "]"}
		if e.RequestID != "" {
			parts = append(parts, "request_id="+e.RequestID)
		}
		parts = append(parts, e.Message)
		for k, v := range e.Fields {
			parts = append(parts, fmt.Sprintf("%s=%v", k, v))
		}
		fmt.Fprintln(l.output, strings.Join(parts, " "))
		return
	}

	data, err := json.Marshal(e)
	if err != nil {
		fmt.Fprintf(l.output, "%s [%s] %s\n", e.Timestamp, e.Level, e.Message)
		return
	}
	l.output.Write(append(data, '\n'))
}

func (l *Logger) clone() *Logger {
	fields := make(map[string]any, len(l.fields)+1)
	for k, v := range l.fields {
		fields[k] = v
	}
	return &Logger{
		level:   l.level,
		format:  l.format,
		output:  l.output,
		service: l.service,
		fields:  fields,
	}
}

type requestIDKey struct{}

// ContextWithRequestID stamps a request ID into ctx for WithContext.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the stamped request ID, if any.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
