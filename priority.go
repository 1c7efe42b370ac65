package bubbleboard

import (
	"math"
	"strconv"
	"strings"
)

// UnrankedPriority is the rank resolved for blank or unparsable priority
// cells. It is not an error code: it means "unranked, sorts last".
const UnrankedPriority = 999

// priorityLabels resolves the qualitative labels to their rank.
var priorityLabels = map[string]int{
	"high": 1, "h": 1,
	"medium": 2, "med": 2, "m": 2,
	"low": 3, "l": 3,
}

// Rank maps a raw priority cell to a total order, lower is higher priority.
//
// Priority cells arrive in practice as either word labels or numeric
// severities. Labels resolve case-insensitively through a fixed table;
// anything else is parsed as a number (decimals truncate toward an integer)
// so user-defined numeric scales pass through unchanged. It is total: no
// input fails.
func Rank(raw string) int {
	s := strings.ToLower(strings.TrimSpace(raw))
	if r, ok := priorityLabels[s]; ok {
		return r
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		// ParseFloat accepts "inf", "nan" and huge exponents; converting
		// those to int is implementation-specific and would sort them
		// before every real priority. They are unranked, not urgent.
		if math.IsNaN(f) || f < math.MinInt32 || f > math.MaxInt32 {
			return UnrankedPriority
		}
		return int(f)
	}
	return UnrankedPriority
}
