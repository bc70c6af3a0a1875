package extractor

import "strings"

// cleanReply strips the wrapping models tend to add around JSON output:
// markdown code fences and any prose before or after the object. Returns
// the outermost brace-balanced {...} span, or "" when none exists.
func cleanReply(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return balancedObject(strings.TrimSpace(s))
}

// balancedObject extracts the first brace-balanced object from s, tracking
// JSON string literals so braces inside values don't confuse the depth count.
func balancedObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
