package tui

import (
	"io"

	"github.com/charmbracelet/log"
)

// logger receives platform events. It discards output until SetLogger is
// called so the game screen is never overwritten.
var logger = log.New(io.Discard)

// SetLogger sets the logger used by game models and menus.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}
