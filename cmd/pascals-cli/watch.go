package main

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Editors often write files in multiple steps, so changes are debounced
// before re-running.
const debounceDelay = 100 * time.Millisecond

// watchAndRun executes run once, then again after every change to path.
// It blocks until the watcher fails. The watched path is re-added after
// rename/remove events because atomic saves replace the inode.
func watchAndRun(path string, run func() error) error {
	if err := run(); err != nil {
		log.Errorf("%v", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	log.Infof("watching %s", path)

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				_ = watcher.Remove(path)
				if err := watcher.Add(path); err != nil {
					log.Warningf("failed to re-watch %s: %v", path, err)
				}
			}

			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				if err := run(); err != nil {
					log.Errorf("%v", err)
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Errorf("watch error: %v", err)
		}
	}
}
