package assistant

import (
	"encoding/json"
	"strings"
)

// decodeJSON tolerates markdown code fences around the payload; anything that
// still fails to unmarshal is a plain error, no partial results.
func decodeJSON(raw string, v any) error {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return json.Unmarshal([]byte(strings.TrimSpace(s)), v)
}
