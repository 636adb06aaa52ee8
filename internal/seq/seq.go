// Package seq has small helpers over slices and maps.
package seq

import (
	"bufio"
	"fmt"
	"io"
	"sort"
)

// Show writes every element followed by a space, then a newline.
func Show[T any](w io.Writer, items []T) error {
	bw := bufio.NewWriter(w)
	for _, item := range items {
		if _, err := fmt.Fprintf(bw, "%v ", item); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}

// ShowMap writes `k:v` entries ordered by formatted key, each followed by a space,
// then a newline.
func ShowMap[K comparable, V any](w io.Writer, m map[K]V) error {
	type entry struct {
		key  string
		line string
	}

	entries := make([]entry, 0, len(m))
	for k, v := range m {
		entries = append(entries, entry{
			key:  fmt.Sprint(k),
			line: fmt.Sprintf("%v:%v", k, v),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].key < entries[j].key
	})

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.line)
	}
	return Show(w, lines)
}

func ForEach[T any](items []T, f func(T)) {
	for _, item := range items {
		f(item)
	}
}
