package client

import (
	"strings"
	"sync"
)

// serverSpeaker is the nickname the server uses for its own game text.
// It is never ignored.
const serverSpeaker = "Server"

// IgnoreList holds nicknames whose chat is suppressed locally.
type IgnoreList struct {
	mu    sync.RWMutex
	names []string
}

func (l *IgnoreList) Add(name string) {
	name = strings.TrimSpace(name)
	if name == "" || l.Has(name) {
		return
	}
	l.mu.Lock()
	l.names = append(l.names, name)
	l.mu.Unlock()
}

func (l *IgnoreList) Remove(name string) {
	name = strings.TrimSpace(name)
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.names[:0]
	for _, n := range l.names {
		if n != name {
			out = append(out, n)
		}
	}
	l.names = out
}

func (l *IgnoreList) Has(name string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, n := range l.names {
		if n == name {
			return true
		}
	}
	return false
}

// Names returns the list in insertion order.
func (l *IgnoreList) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]string(nil), l.names...)
}

// suppressed reports whether chat from speaker should be hidden.
func (l *IgnoreList) suppressed(speaker string) bool {
	return speaker != serverSpeaker && l.Has(speaker)
}

// localCommand handles "\ignore name" and "\unignore name" typed into a
// chat box. It returns the lines to echo and whether text was a command.
func (l *IgnoreList) localCommand(text string) ([]string, bool) {
	var echo string
	switch {
	case strings.HasPrefix(text, `\ignore `):
		name := strings.TrimSpace(strings.TrimPrefix(text, `\ignore `))
		l.Add(name)
		echo = "Ignoring " + name
	case strings.HasPrefix(text, `\unignore `):
		name := strings.TrimSpace(strings.TrimPrefix(text, `\unignore `))
		l.Remove(name)
		echo = "Unignoring " + name
	default:
		return nil, false
	}
	lines := []string{echo, "Ignore list:"}
	lines = append(lines, l.Names()...)
	return lines, true
}
