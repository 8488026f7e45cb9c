package shared

import "strings"

// CenterWithBottomHints renders content vertically centered in the available
// height, with hint text pinned to the very bottom line.
func CenterWithBottomHints(content, hints string, height int) string {
	content = strings.TrimRight(content, "\n")
	hints = strings.TrimRight(hints, "\n")

	var contentLines []string
	if content != "" {
		contentLines = strings.Split(content, "\n")
	}
	hintLines := strings.Split(hints, "\n")

	gap := height - len(contentLines) - len(hintLines)
	if gap <= 0 {
		if content == "" {
			return hints
		}
		return content + "\n" + hints
	}

	topPad := gap / 2
	lines := make([]string, 0, height)
	lines = append(lines, make([]string, topPad)...)
	lines = append(lines, contentLines...)
	lines = append(lines, make([]string, gap-topPad)...)
	lines = append(lines, hintLines...)

	return strings.Join(lines, "\n")
}
