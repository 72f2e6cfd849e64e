// Package logging provides the in-window console: a bounded line buffer that a
// zap core writes to and the UI subscribes to.
package logging

import (
	"strings"
	"sync"

	"go.uber.org/zap/zapcore"
)

// DefaultConsoleLines bounds the console history
const DefaultConsoleLines = 500

// Console keeps the most recent log lines
type Console struct {
	mu          sync.Mutex
	lines       []string
	max         int
	pending     string
	nextID      int
	subscribers map[int]func(string)
}

// NewConsole creates a console holding at most max lines
func NewConsole(max int) *Console {
	if max <= 0 {
		max = DefaultConsoleLines
	}
	return &Console{
		max:         max,
		subscribers: make(map[int]func(string)),
	}
}

// Write appends complete lines; a trailing fragment waits for its newline
func (c *Console) Write(p []byte) (int, error) {
	c.mu.Lock()
	text := c.pending + string(p)
	parts := strings.Split(text, "\n")
	c.pending = parts[len(parts)-1]
	complete := parts[:len(parts)-1]

	for _, line := range complete {
		c.lines = append(c.lines, line)
	}
	if over := len(c.lines) - c.max; over > 0 {
		c.lines = append([]string(nil), c.lines[over:]...)
	}

	subs := make([]func(string), 0, len(c.subscribers))
	for _, fn := range c.subscribers {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, line := range complete {
		for _, fn := range subs {
			fn(line)
		}
	}
	return len(p), nil
}

// Sync implements zapcore.WriteSyncer
func (c *Console) Sync() error {
	return nil
}

// Lines returns a copy of the buffered lines
func (c *Console) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.lines...)
}

// Text returns the buffered lines joined by newlines
func (c *Console) Text() string {
	return strings.Join(c.Lines(), "\n")
}

// Subscribe registers fn for every new line and returns a function that removes it.
// fn runs on the goroutine that logged.
func (c *Console) Subscribe(fn func(line string)) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subscribers[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subscribers, id)
		c.mu.Unlock()
	}
}

// Core returns a zap core that renders human-readable lines into the console
func (c *Console) Core(level zapcore.LevelEnabler) zapcore.Core {
	cfg := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		MessageKey:     "msg",
		NameKey:        "logger",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("15:04:05"),
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
	return zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(c), level)
}
