// File: watch.go
// Title: Configuration File Watching Implementation
// Description: Implements file system watching for configuration files to
//              support hot-reloading and automatic configuration updates.
//              Uses fsnotify for native change events with a polling
//              fallback for filesystems where fsnotify is unavailable.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-06
// Modified: 2025-03-06
//
// Change History:
// - 2025-03-06 v0.1.0: Initial implementation with fsnotify and polling fallback

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	dkiterror "github.com/msto63/dkit/core/error"
	"github.com/msto63/dkit/utils/stringx"
)

// watchPollInterval is the interval of the polling fallback and of the
// liveness check in the event-based watcher.
const watchPollInterval = 1 * time.Second

// startWatching starts monitoring the configuration file for changes.
// It prefers fsnotify events and falls back to modification time polling
// when a native watcher cannot be created.
func (c *Config) startWatching() error {
	if stringx.IsBlank(c.filePath) {
		return dkiterror.New("file path required for watching").
			WithCode(dkiterror.CodeValidationFailed).
			WithOperation("config.startWatching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return c.pollForChanges()
	}

	// Watch the directory rather than the file itself. Editors and
	// deployment tools often replace config files atomically, which
	// removes a watch placed directly on the file.
	if err := watcher.Add(filepath.Dir(c.filePath)); err != nil {
		watcher.Close()
		return c.pollForChanges()
	}
	defer watcher.Close()

	ticker := time.NewTicker(watchPollInterval)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(c.filePath) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if c.fileChanged() {
				// Reload errors keep the previous configuration active
				if err := c.reload(); err != nil {
					continue
				}
			}
		case _, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			// Transient watcher errors are ignored, the next event or
			// liveness tick resumes normal operation
		case <-ticker.C:
			if !c.IsWatching() {
				return nil
			}
		}
	}
}

// pollForChanges is the fallback watcher used when fsnotify is
// unavailable. It compares the file modification time on a fixed interval.
func (c *Config) pollForChanges() error {
	ticker := time.NewTicker(watchPollInterval)
	defer ticker.Stop()

	for range ticker.C {
		if !c.IsWatching() {
			break
		}

		if c.fileChanged() {
			// Reload errors keep the previous configuration active
			if err := c.reload(); err != nil {
				continue
			}
		}
	}

	return nil
}

// fileChanged reports whether the file has been modified since the last
// successful load or reload.
func (c *Config) fileChanged() bool {
	fileInfo, err := os.Stat(c.filePath)
	if err != nil {
		// File might have been deleted or moved
		return false
	}

	c.mu.RLock()
	lastModified := c.lastModified
	c.mu.RUnlock()

	return fileInfo.ModTime().After(lastModified)
}

// reload reloads the configuration from the file and notifies watchers
func (c *Config) reload() error {
	// Read and parse the updated file
	content, err := os.ReadFile(c.filePath)
	if err != nil {
		return dkiterror.Wrap(err, "failed to read config file during reload").
			WithCode(dkiterror.CodeConfigError).
			WithOperation("config.reload").
			WithDetail("filePath", c.filePath)
	}

	newData, err := parseContent(content, c.format)
	if err != nil {
		return dkiterror.Wrap(err, "failed to parse config file during reload").
			WithCode(dkiterror.CodeInvalidConfig).
			WithOperation("config.reload").
			WithDetail("filePath", c.filePath).
			WithDetail("format", c.format.String())
	}

	// Create a copy of the old configuration for comparison
	c.mu.Lock()
	oldConfig := &Config{
		data:   c.deepCopyMap(c.data),
		format: c.format,
	}

	// Update the configuration
	c.data = newData
	fileInfo, _ := os.Stat(c.filePath)
	if fileInfo != nil {
		c.lastModified = fileInfo.ModTime()
	}

	// Get watchers (copy to avoid holding lock during callbacks)
	watchers := make([]ChangeHandler, len(c.watchers))
	copy(watchers, c.watchers)
	c.mu.Unlock()

	// Notify all watchers
	newConfig := &Config{
		data:   c.deepCopyMap(c.data),
		format: c.format,
	}

	for _, handler := range watchers {
		if handler != nil {
			go handler(oldConfig, newConfig)
		}
	}

	return nil
}

// StopWatching stops file monitoring
func (c *Config) StopWatching() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.watching = false
}

// IsWatching returns whether file monitoring is active
func (c *Config) IsWatching() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.watching
}
