package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/soap-notes/internal/logger"
)

// New creates a Watcher on inputDir that hands each new media file to handler
func New(inputDir string, handler EventHandler, log logger.Logger, settleDelay time.Duration) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if settleDelay < 0 {
		settleDelay = 0
	}

	return &implWatcher{
		inputDir:    inputDir,
		handler:     handler,
		logger:      log,
		watcher:     watcher,
		settleDelay: settleDelay,
	}, nil
}
