package competency

import (
	"math"
	"sort"
)

// TopGapsCompact is the gap-ranking truncation used by the compact
// dashboard card. Detail views pass AllGaps.
const (
	TopGapsCompact = 3
	AllGaps        = 0
)

type Summary struct {
	Total           int
	MetCount        int
	GapCount        int
	ErrorCount      int
	ProgressPercent int
}

type GapRank struct {
	SkillName string
	Count     int
}

// Summarize reduces a competency list into counts and a progress percent.
// Records with an unknown status count toward Total and ErrorCount only.
// An empty list is 0%, never a division fault.
func Summarize(list []Competency) Summary {
	s := Summary{Total: len(list)}
	for _, c := range list {
		switch c.Status.Normalize() {
		case StatusMet:
			s.MetCount++
		case StatusGap:
			s.GapCount++
		default:
			s.ErrorCount++
		}
	}
	if s.Total > 0 {
		s.ProgressPercent = int(math.Round(float64(s.MetCount) / float64(s.Total) * 100))
	}
	return s
}

// Gaps returns the competencies whose status is Gap, in encounter order.
func Gaps(list []Competency) []Competency {
	out := make([]Competency, 0)
	for _, c := range list {
		if c.Status.Normalize() == StatusGap {
			out = append(out, c)
		}
	}
	return out
}

// Met returns the competencies whose status is Met, in encounter order.
func Met(list []Competency) []Competency {
	out := make([]Competency, 0)
	for _, c := range list {
		if c.Status.Normalize() == StatusMet {
			out = append(out, c)
		}
	}
	return out
}

// Flatten concatenates every member's competency list. Member identity is
// dropped here; callers needing it attach it before flattening.
func Flatten(members []Person) []Competency {
	out := make([]Competency, 0)
	for _, m := range members {
		out = append(out, m.Competencies...)
	}
	return out
}

// TeamSummary aggregates across a whole team by flattening first.
func TeamSummary(members []Person) Summary {
	return Summarize(Flatten(members))
}

// RankGaps groups gaps by skill name, counts occurrences across the list,
// and orders descending by count. The sort is stable so skills tied on
// count keep their first-seen order. topN <= 0 means unbounded.
func RankGaps(list []Competency, topN int) []GapRank {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, c := range list {
		if c.Status.Normalize() != StatusGap {
			continue
		}
		if _, seen := counts[c.SkillName]; !seen {
			order = append(order, c.SkillName)
		}
		counts[c.SkillName]++
	}

	ranked := make([]GapRank, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, GapRank{SkillName: name, Count: counts[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

// ApplySkillUpdate folds a single recomputed competency back into a cached
// summary without a re-fetch: the counts move from the old status bucket to
// the new one and the percent is rederived.
func ApplySkillUpdate(s Summary, oldStatus, newStatus Status) Summary {
	if s.Total == 0 {
		return s
	}
	dec := func(st Status) {
		switch st.Normalize() {
		case StatusMet:
			s.MetCount--
		case StatusGap:
			s.GapCount--
		default:
			s.ErrorCount--
		}
	}
	inc := func(st Status) {
		switch st.Normalize() {
		case StatusMet:
			s.MetCount++
		case StatusGap:
			s.GapCount++
		default:
			s.ErrorCount++
		}
	}
	dec(oldStatus)
	inc(newStatus)
	s.ProgressPercent = int(math.Round(float64(s.MetCount) / float64(s.Total) * 100))
	return s
}
