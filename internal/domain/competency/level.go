package competency

import (
	"math"
	"strconv"
	"strings"
)

var namedTiers = map[string]int{
	"BEGINNER":     1,
	"INTERMEDIATE": 2,
	"ADVANCED":     3,
	"EXPERT":       4,
}

// LevelOrdinal converts an expertise-level token into its numeric rank.
// Two encodings are accepted: "L<digit>" (ordinal = digit) and the named
// tiers Beginner/Intermediate/Advanced/Expert, both case-insensitive.
// Unknown or empty tokens rank 0.
func LevelOrdinal(token string) int {
	n, ok := parseOrdinal(token)
	if !ok || n < 0 {
		return 0
	}
	return n
}

// parseOrdinal distinguishes an unparseable token from a genuine L0:
// "L0" is a valid rank of zero, "garbage" is not a rank at all.
func parseOrdinal(token string) (int, bool) {
	t := strings.ToUpper(strings.TrimSpace(token))
	if t == "" {
		return 0, false
	}
	if strings.HasPrefix(t, "L") {
		n, err := strconv.Atoi(strings.TrimPrefix(t, "L"))
		if err != nil || n < 0 {
			return 0, false
		}
		return n, true
	}
	if n, ok := namedTiers[t]; ok {
		return n, true
	}
	return 0, false
}

// Progress maps a (current, target) level pair to a 0-100 scalar.
// A zero target ordinal yields 0 by convention: target-less skills are
// defined as 0% progress, never an error.
func Progress(current, target string) int {
	cur := LevelOrdinal(current)
	tgt := LevelOrdinal(target)
	if tgt == 0 {
		return 0
	}
	p := int(math.Round(float64(cur) / float64(tgt) * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// StatusFromLevels derives the Met/Gap/Error status from a level pair.
// An unparseable token on either side is an error record and stays out of
// the met/gap counts; a parseable L0 current against a real target is a gap.
func StatusFromLevels(current, target string) Status {
	cur, curOK := parseOrdinal(current)
	tgt, tgtOK := parseOrdinal(target)
	if !curOK || !tgtOK {
		return StatusError
	}
	if cur >= tgt {
		return StatusMet
	}
	return StatusGap
}
