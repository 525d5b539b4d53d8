// Package stacktrace trims goroutine stack dumps for logs.
package stacktrace

import (
	"bufio"
	"bytes"
	"strings"
)

// InternalPaths extracts "internal/<pkg>/<file>.go:<line>" frames from a
// debug.Stack dump, dropping runtime and third-party frames.
func InternalPaths(stack []byte) []string {
	var paths []string

	sc := bufio.NewScanner(bytes.NewReader(stack))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(line, "/") && !strings.Contains(line, ":\\") {
			continue
		}

		_, rel, ok := strings.Cut(line, "/internal/")
		if !ok || !strings.Contains(rel, ".go:") {
			continue
		}

		if sp := strings.IndexByte(rel, ' '); sp >= 0 {
			rel = rel[:sp]
		}
		paths = append(paths, "internal/"+rel)
	}

	return paths
}
