// Package stopfile implements the file-as-signal stop interface: the
// presence of a sentinel file asks a running activity loop to shut down.
// Internally the loop runs on context cancellation; the file is the external
// adapter other processes (and the stop command) can reach.
package stopfile

import (
	"fmt"
	"os"
)

// Exists reports whether the stop file is present.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Create writes the stop file. Contents are irrelevant; existence is the
// signal.
func Create(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create stop file %s: %w", path, err)
	}
	return f.Close()
}

// Remove deletes the stop file if present.
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove stop file %s: %w", path, err)
	}
	return nil
}
