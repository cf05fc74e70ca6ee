// Package render turns queue iteration output into the demo's display string.
package render

import (
	"fmt"
	"github.com/zeebo/xxh3"
	"iter"
	"strings"
)

// Concat writes every element of seq with %v and no separator.
func Concat[T any](seq iter.Seq[T]) string {
	var sb strings.Builder
	for v := range seq {
		fmt.Fprint(&sb, v)
	}
	return sb.String()
}

// Digest fingerprints a rendered string so two runs can be compared from logs.
func Digest(s string) string {
	return fmt.Sprintf("%016x", xxh3.HashString(s))
}
