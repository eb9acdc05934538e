// Package javadoc extracts block tags from Javadoc comments.
package javadoc

import (
	"strings"
)

// BlockTag is a block tag like @param or @has, with its content collapsed to
// a single line.
type BlockTag struct {
	Name    string
	Content string
}

// Fields splits the tag content on whitespace.
func (t BlockTag) Fields() []string {
	return strings.Fields(t.Content)
}

// BlockTags returns the block tags of a Javadoc comment in source order. The
// comment may still carry its /** */ delimiters and line prefixes. A block
// tag is an @ at the start of a line; it extends until the next block tag or
// the end of the comment.
func BlockTags(comment string) []BlockTag {
	var tags []BlockTag
	var current *BlockTag
	var content []string

	flush := func() {
		if current != nil {
			current.Content = strings.Join(content, " ")
			tags = append(tags, *current)
		}
		current = nil
		content = content[:0]
	}

	for _, line := range strings.Split(stripCommentDelimiters(comment), "\n") {
		line = strings.TrimSpace(stripLinePrefix(line))
		if strings.HasPrefix(line, "@") {
			flush()
			name, rest := line[1:], ""
			if i := strings.IndexAny(name, " \t"); i >= 0 {
				name, rest = name[:i], name[i+1:]
			}
			if name == "" {
				continue
			}
			current = &BlockTag{Name: name}
			line = strings.TrimSpace(rest)
		}
		if current != nil && line != "" {
			content = append(content, line)
		}
	}
	flush()

	return tags
}

// stripCommentDelimiters removes a leading /** and trailing */.
func stripCommentDelimiters(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "/**")
	s = strings.TrimSuffix(s, "*/")
	return s
}

// stripLinePrefix removes the leading whitespace and single asterisk of a
// comment line.
func stripLinePrefix(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "*") && !strings.HasPrefix(trimmed, "*/") {
		return trimmed[1:]
	}
	return line
}
