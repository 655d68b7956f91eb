package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// watcherReadyMsg hands the created watcher to the model after Init.
type watcherReadyMsg struct{ watcher *fsnotify.Watcher }

// tableChangedMsg is sent when the watched table file changes on disk.
type tableChangedMsg struct{}

// watcherErrMsg is sent when the file watcher encounters an error.
type watcherErrMsg struct{ err error }

// createWatcher watches the table file itself. Editors that replace the file
// (rename-over-write) still trigger an event on the old path.
func createWatcher(path string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, err
	}
	return watcher, nil
}

// waitForChange returns a tea.Cmd that blocks until the watcher fires an
// event or error, then sends the appropriate message.
func waitForChange(watcher *fsnotify.Watcher) tea.Cmd {
	if watcher == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case _, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			return tableChangedMsg{}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return watcherErrMsg{err: err}
		}
	}
}
