package logging

import (
	"bufio"
	"errors"
	"fmt"
	"os"
)

// maxLogLine caps a single log line; longer lines stop the scan with an error.
const maxLogLine = 1 << 20

// Tail feeds the log overlay. It returns the last n lines of the file, oldest
// first. A log file that was never created is not an error.
func Tail(path string, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("tail %s: %w", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(nil, maxLogLine)

	// Keep at most 2n lines in memory and compact back to n when full.
	var kept []string
	for sc.Scan() {
		kept = append(kept, sc.Text())
		if len(kept) == 2*n {
			kept = append(kept[:0], kept[n:]...)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tail %s: scan: %w", path, err)
	}

	if len(kept) > n {
		kept = kept[len(kept)-n:]
	}
	return append([]string(nil), kept...), nil
}
