package charset

import "github.com/rivo/uniseg"

// GraphemeCount returns the number of user-perceived characters in s.
// Display code wants grapheme clusters rather than code points when
// reporting widths, so this lives next to the codec even though the
// engine's positions are always code-point based.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// FirstGraphemeLen returns the byte length of the first grapheme
// cluster in s, or 0 if s is empty.
func FirstGraphemeLen(s string) int {
	if s == "" {
		return 0
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return len(cluster)
}
