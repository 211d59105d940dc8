// Package text implements the pure content transformations used by the
// migration operations: marker splitting, literal replacement, and
// regex rewriting. Nothing in this package touches the filesystem.
package text

import "strings"

// HeaderBefore returns the portion of content before the first
// occurrence of marker. If the marker is absent, the whole content is
// treated as the header.
func HeaderBefore(content, marker string) string {
	head, _, _ := strings.Cut(content, marker)
	return head
}

// JoinAtMarker builds new file content from a header region, the marker
// line, and a body: header + "\n" + marker + "\n" + body.
func JoinAtMarker(header, marker, body string) string {
	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n")
	sb.WriteString(marker)
	sb.WriteString("\n")
	sb.WriteString(body)
	return sb.String()
}
