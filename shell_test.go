package main

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/milk9111/platformer/level"
	"github.com/stretchr/testify/assert"
)

func TestDrainWatcherStopsWhenWatcherCloses(t *testing.T) {
	ev := make(chan string)
	er := make(chan error)
	close(ev)
	close(er)

	s := &Shell{
		logger:  log.New(io.Discard),
		watcher: &level.Watcher{Events: ev, Errors: er},
	}
	s.drainWatcher()
	assert.Nil(t, s.watcher, "a closed watcher is dropped, not polled forever")
}

func TestDrainWatcherLogsErrorsWithoutStopping(t *testing.T) {
	er := make(chan error, 1)
	er <- errors.New("watch failed")

	s := &Shell{
		logger:  log.New(io.Discard),
		watcher: &level.Watcher{Events: make(chan string), Errors: er},
	}
	s.drainWatcher()
	assert.NotNil(t, s.watcher, "an error report keeps the watcher alive")
}
