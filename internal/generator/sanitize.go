package generator

import "strings"

// sanitizeBullets turns a raw LLM reply into at most limit clean bullet
// lines. Percentage signs are removed entirely, leading list glyphs are
// stripped, and lines that end up empty do not count toward the limit.
func sanitizeBullets(raw string, limit int) []string {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, "%", ""))
	if cleaned == "" {
		return nil
	}

	bullets := make([]string, 0, limit)
	for _, line := range strings.Split(cleaned, "\n") {
		line = strings.TrimLeft(line, "•- \t")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		bullets = append(bullets, ensurePunctuation(line))
		if len(bullets) == limit {
			break
		}
	}
	return bullets
}

// ensurePunctuation appends a period unless the line already ends with
// terminal punctuation.
func ensurePunctuation(line string) string {
	switch line[len(line)-1] {
	case '.', '!', '?':
		return line
	}
	return line + "."
}
