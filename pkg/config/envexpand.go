package config

import (
	"os"
	"strings"
)

// ExpandEnv expands ${VAR} and ${VAR:-default} references in settings file
// content. Bare $VAR is left untouched so literal dollar signs in values
// (passwords, shell snippets) survive; only the braced form expands. An
// unset variable without a default expands to the empty string; validation
// catches required fields left empty.
func ExpandEnv(data []byte) []byte {
	s := string(data)
	var b strings.Builder
	b.Grow(len(s))
	for {
		i := strings.Index(s, "${")
		if i < 0 {
			b.WriteString(s)
			break
		}
		j := strings.IndexByte(s[i:], '}')
		if j < 0 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:i])
		b.WriteString(resolve(s[i+2 : i+j]))
		s = s[i+j+1:]
	}
	return []byte(b.String())
}

func resolve(ref string) string {
	key, def, hasDef := strings.Cut(ref, ":-")
	if v := os.Getenv(key); v != "" {
		return v
	}
	if hasDef {
		return def
	}
	return ""
}
