package utils

import (
	"bytes"
	"runtime/debug"
)

// Stack returns the current goroutine stack without the first skip frames.
// Each frame takes two lines in debug.Stack output after the header line.
func Stack(skip int) []byte {
	lines := bytes.Split(debug.Stack(), []byte("\n"))
	if len(lines) == 0 {
		return nil
	}
	header, frames := lines[0], lines[1:]
	drop := skip * 2
	if drop > len(frames) {
		drop = len(frames)
	}
	return bytes.Join(append([][]byte{header}, frames[drop:]...), []byte("\n"))
}
