package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/carregistry/internal/logging"
)

type logEntry struct {
	msg  string
	args []any
}

// recLogger keeps Info messages so tests can check confirmation logs.
type recLogger struct {
	mu      *sync.Mutex
	entries *[]logEntry
}

func newRecLogger() *recLogger {
	return &recLogger{mu: &sync.Mutex{}, entries: &[]logEntry{}}
}

func (l *recLogger) Info(_ context.Context, msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.entries = append(*l.entries, logEntry{msg: msg, args: args})
}
func (l *recLogger) Warn(context.Context, string, ...any)  {}
func (l *recLogger) Error(context.Context, string, ...any) {}
func (l *recLogger) With(...any) logging.Logger            { return l }

func (l *recLogger) messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, 0, len(*l.entries))
	for _, e := range *l.entries {
		out = append(out, e.msg)
	}
	return out
}
