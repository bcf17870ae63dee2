package keys

import "strings"

// ContentKey produces the canonical key for a content name: trimmed,
// lower-cased, spaces replaced with underscores. Monsters, training actions,
// skills and items all share this key scheme so config entries may omit an
// explicit key and derive it from the display name.
func ContentKey(name string) string {
	s := strings.TrimSpace(name)
	return strings.ToLower(strings.ReplaceAll(s, " ", "_"))
}
