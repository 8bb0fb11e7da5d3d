package sname

import "strings"

// Match implements spec §4.2's glob matcher: `*` matches exactly one
// scope, and a leading `**` matches any (possibly empty) prefix of
// scopes. The pattern is itself `::`-separated, e.g. `s::*::foo` or
// `**::x`.
func Match(s SName, glob string) bool {
	patternScopes := splitScopes(glob)
	nameScopes := make([]string, len(s.Scopes))
	for i, sc := range s.Scopes {
		nameScopes[i] = sc.Name
	}

	if len(patternScopes) > 0 && patternScopes[0] == "**" {
		rest := patternScopes[1:]
		if len(rest) > len(nameScopes) {
			return false
		}
		suffix := nameScopes[len(nameScopes)-len(rest):]
		return matchExact(suffix, rest)
	}
	return matchExact(nameScopes, patternScopes)
}

func matchExact(names, pattern []string) bool {
	if len(names) != len(pattern) {
		return false
	}
	for i := range names {
		if pattern[i] == "*" {
			continue
		}
		if !globSegmentMatch(pattern[i], names[i]) {
			return false
		}
	}
	return true
}

// globSegmentMatch allows a single scope-level pattern like "foo*bar" to
// contain '*' as a standard shell-style wildcard within one segment, in
// addition to a bare "*" meaning "any single scope" handled above.
func globSegmentMatch(pattern, name string) bool {
	if pattern == name {
		return true
	}
	if !strings.Contains(pattern, "*") {
		return false
	}
	parts := strings.Split(pattern, "*")
	pos := 0
	for i, part := range parts {
		if part == "" {
			continue
		}
		idx := strings.Index(name[pos:], part)
		if idx == -1 {
			return false
		}
		if i == 0 && idx != 0 {
			return false
		}
		pos += idx + len(part)
	}
	if last := parts[len(parts)-1]; last != "" && !strings.HasSuffix(name, last) {
		return false
	}
	return true
}

func splitScopes(glob string) []string {
	if glob == "" {
		return nil
	}
	return strings.Split(glob, "::")
}
