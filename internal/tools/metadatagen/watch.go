package metadatagen

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch regenerates opts every time the input tree changes, until ctx is
// cancelled. Bursts of events are collapsed into one run after debounce of
// quiet. Each run's outcome is passed to onResult; a failed run does not stop
// watching.
func Watch(ctx context.Context, opts Options, debounce time.Duration, onResult func(Result, error)) error {
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fsnotify watcher: %w", err)
	}
	defer fsw.Close()

	if err := watchTree(fsw, opts.InputDir); err != nil {
		return err
	}

	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			relevant := isRelevantEvent(event)
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				// A directory moved or copied in may already hold icons.
				if err := watchTree(fsw, event.Name); err != nil {
					log.Printf("watch %s: %v", event.Name, err)
				}
				relevant = true
			}
			if !relevant {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			result, err := Generate(ctx, opts)
			if onResult != nil {
				onResult(result, err)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch %s: %v", opts.InputDir, err)
		}
	}
}

// watchTree adds root and every directory below it to fsw.
func watchTree(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(current string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() {
			return nil
		}
		if err := fsw.Add(current); err != nil {
			return fmt.Errorf("watch directory %s: %w", current, err)
		}
		return nil
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// isRelevantEvent reports whether event touches a descriptor or vector file.
func isRelevantEvent(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	switch filepath.Ext(event.Name) {
	case descriptorExt, vectorExt:
		return true
	default:
		return false
	}
}
