package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Log files are named devforge-<timestamp>.log; the layout sorts
// lexically in chronological order, which pruning relies on.
const (
	logFilePrefix      = "devforge-"
	logFileSuffix      = ".log"
	logTimestampLayout = "20060102-150405"
)

// SetupLogFile opens a fresh timestamped log file under dir and prunes the
// directory down to the keep newest files. The caller owns the returned
// handle and closes it on shutdown.
func SetupLogFile(dir string, keep int) (*os.File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("log directory: %w", err)
	}

	name := logFilePrefix + time.Now().Format(logTimestampLayout) + logFileSuffix
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("log file: %w", err)
	}

	if err := pruneLogFiles(dir, keep); err != nil {
		// Pruning failures don't block logging.
		fmt.Fprintf(os.Stderr, "prune old logs: %v\n", err)
	}

	return f, nil
}

// pruneLogFiles removes the oldest log files once the directory holds more
// than keep of them. Files outside the devforge-*.log scheme are left alone.
func pruneLogFiles(dir string, keep int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, logFilePrefix) && strings.HasSuffix(name, logFileSuffix) {
			names = append(names, name)
		}
	}
	if len(names) <= keep {
		return nil
	}

	sort.Strings(names)
	for _, name := range names[:len(names)-keep] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("remove %s: %w", name, err)
		}
	}

	return nil
}
