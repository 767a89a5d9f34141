package crafting

import (
	"strings"

	"github.com/osse101/ArcPlanner_Go/internal/domain"
)

// PredecessorID returns the id of the tier immediately below id, e.g. anvil_ii -> anvil_i.
// The final delimiter-separated segment must be a known tier suffix (any case) other than
// the first tier. Everything before it is kept verbatim. The catalog is not consulted.
func PredecessorID(id string) (string, bool) {
	cut := strings.LastIndex(id, domain.TierDelimiter)
	if cut < 0 {
		return "", false
	}

	prefix, suffix := id[:cut], strings.ToLower(id[cut+len(domain.TierDelimiter):])
	for i, tier := range domain.TierSuffixes {
		if tier != suffix {
			continue
		}
		if i == 0 {
			return "", false
		}
		return prefix + domain.TierDelimiter + domain.TierSuffixes[i-1], true
	}
	return "", false
}
