// Package preprocess resolves language-conditional blocks in markdown content.
//
// A conditional block is a fenced region opened by ":::<tag>" on its own line
// and closed by ":::". The tag names a language code ("python" or "js"). When
// preprocessing for a target language, a block whose tag matches is unwrapped
// (the fence lines are removed, the body kept) and a block whose tag does not
// match is dropped entirely. With no target language every block is unwrapped,
// so unconditional output still contains all content.
package preprocess

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnclosedBlock indicates a conditional fence was opened but never closed.
	ErrUnclosedBlock = errors.New("unclosed conditional block")

	// ErrNestedBlock indicates a conditional fence was opened inside another one.
	ErrNestedBlock = errors.New("nested conditional block")

	// ErrUnknownTag indicates a conditional fence names an unsupported language code.
	ErrUnknownTag = errors.New("unknown conditional block tag")
)

const fenceMarker = ":::"

// knownTags are the language codes a conditional fence may carry.
var knownTags = map[string]bool{
	"python": true,
	"js":     true,
}

// HasConditionalBlocks reports whether content contains at least one
// conditional fence opener. It never fails: malformed fences are detection
// hits too, they are rejected later by Preprocess.
func HasConditionalBlocks(content []byte) bool {
	for _, line := range strings.Split(string(content), "\n") {
		if tag, ok := fenceTag(line); ok && tag != "" {
			return true
		}
	}
	return false
}

// Preprocess resolves conditional blocks in content for the given target
// language code. An empty langCode unwraps every block. sourcePath is used
// only for error reporting.
func Preprocess(content, sourcePath, langCode string) (string, error) {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))

	inBlock := false
	keepBlock := false
	openLine := 0

	for i, line := range lines {
		tag, isFence := fenceTag(line)
		if !isFence {
			if !inBlock || keepBlock {
				out = append(out, line)
			}
			continue
		}

		if tag == "" {
			// Closing fence.
			if !inBlock {
				// A bare ::: outside any block is ordinary content.
				out = append(out, line)
				continue
			}
			inBlock = false
			continue
		}

		if inBlock {
			return "", fmt.Errorf("%w: %s:%d (opened at line %d)", ErrNestedBlock, sourcePath, i+1, openLine)
		}
		if !knownTags[tag] {
			return "", fmt.Errorf("%w: %s:%d: %q", ErrUnknownTag, sourcePath, i+1, tag)
		}

		inBlock = true
		openLine = i + 1
		keepBlock = langCode == "" || tag == langCode
	}

	if inBlock {
		return "", fmt.Errorf("%w: %s: opened at line %d", ErrUnclosedBlock, sourcePath, openLine)
	}

	return strings.Join(out, "\n"), nil
}

// fenceTag parses a line as a conditional fence. It returns the tag (empty for
// a closing fence) and whether the line is a fence at all.
func fenceTag(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, fenceMarker) {
		return "", false
	}
	rest := strings.TrimSpace(strings.TrimPrefix(trimmed, fenceMarker))
	if rest == "" {
		return "", true
	}
	// Tags are single lowercase words; anything else (e.g. ::: followed by
	// prose, or a nested-colon directive) is not a conditional fence.
	if strings.ContainsAny(rest, " \t:") {
		return "", false
	}
	return rest, true
}
