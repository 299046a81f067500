package sift

import (
	"regexp"
)

// LocateAssignment finds a `var <name> = {...}` assignment in an HTML
// document and returns the JSON object text it assigns.
//
// The object is captured with a brace-depth scanner that skips braces
// inside string literals, so payloads containing "};" in nested strings
// are captured whole. Returns ELOCATOR when the assignment is absent and
// EMALFORMED when the object is never closed.
func LocateAssignment(doc, name string) (string, error) {
	re, err := regexp.Compile(`var\s+` + regexp.QuoteMeta(name) + `\s*=\s*`)
	if err != nil {
		return "", WrapError(EINVALID, err, "invalid variable name %q", name)
	}

	loc := re.FindStringIndex(doc)
	if loc == nil {
		return "", Errorf(ELOCATOR, "%s not present: site markup has likely changed", name)
	}

	rest := doc[loc[1]:]
	if rest == "" || rest[0] != '{' {
		return "", Errorf(ELOCATOR, "%s is not assigned an object literal: site markup has likely changed", name)
	}

	end := scanObject(rest)
	if end < 0 {
		return "", Errorf(EMALFORMED, "%s payload is not terminated", name)
	}
	return rest[:end], nil
}

// ExtractEmbedded locates the named assignment and parses its payload.
func ExtractEmbedded(doc, name string) (Value, error) {
	payload, err := LocateAssignment(doc, name)
	if err != nil {
		return nil, err
	}
	return ParseValue(payload)
}

// scanObject returns the length of the balanced object starting at s[0],
// or -1 if the input ends first.
func scanObject(s string) int {
	depth := 0
	inStr := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inStr {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inStr = false
			}
			continue
		}
		switch c {
		case '"':
			inStr = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}
	return -1
}
