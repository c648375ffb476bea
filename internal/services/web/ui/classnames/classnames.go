// Package classnames merges CSS class lists.
package classnames

import "strings"

// Merge joins class lists, dropping blanks and repeated classes while keeping
// the first occurrence order. Later parts never remove earlier classes.
func Merge(parts ...string) string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(parts)*4)
	for _, part := range parts {
		for _, class := range strings.Fields(part) {
			if _, ok := seen[class]; ok {
				continue
			}
			seen[class] = struct{}{}
			out = append(out, class)
		}
	}
	return strings.Join(out, " ")
}
