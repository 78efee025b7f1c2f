package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

// lockTimeout bounds how long a build waits for another gleam process that
// holds the output directory.
const lockTimeout = 30 * time.Second

// withOutputLock runs fn while holding an exclusive lock on the output
// directory, so concurrent builds of the same project cannot interleave
// their writes.
func withOutputLock(outDir string, fn func() error) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("creating output dir %s: %w", outDir, err)
	}
	fl := flock.New(filepath.Join(outDir, ".gleam.lock"))
	deadline := time.Now().Add(lockTimeout)
	for {
		ok, err := fl.TryLock()
		if err != nil {
			return fmt.Errorf("locking output dir: %w", err)
		}
		if ok {
			break
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("output dir %s is locked by another build", outDir)
		}
		time.Sleep(50 * time.Millisecond)
	}
	defer fl.Unlock()
	return fn()
}

// writeCrateFile writes one file under the crate's src directory.
func writeCrateFile(outDir, name, content string) error {
	path := filepath.Join(outDir, "src", name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}
