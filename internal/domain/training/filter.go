package training

import (
	"sort"
	"strings"
	"time"
)

// FacetAll is the sentinel facet value meaning "no filter on this facet".
const FacetAll = "All"

// SearchField names a text field the substring search may cover.
type SearchField string

const (
	SearchName    SearchField = "name"
	SearchTopics  SearchField = "topics"
	SearchTrainer SearchField = "trainer"
	SearchSkill   SearchField = "skill"
)

// Filter is a conjunctive set of predicates over a training list: one
// case-insensitive substring search plus exact-match facets, each facet
// independently switched off with FacetAll or the empty string. The date
// facet is literal date equality, not a range.
type Filter struct {
	Search        string
	SearchIn      []SearchField
	Skill         string
	SkillCategory string
	Type          string
	Date          string
}

var defaultSearchFields = []SearchField{SearchName, SearchTopics, SearchTrainer, SearchSkill}

// Apply filters a copy of the list; the source is never mutated.
func (f Filter) Apply(list []Record) []Record {
	out := make([]Record, 0, len(list))
	for _, r := range list {
		if f.matches(r) {
			out = append(out, r)
		}
	}
	return out
}

func (f Filter) matches(r Record) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		fields := f.SearchIn
		if len(fields) == 0 {
			fields = defaultSearchFields
		}
		hit := false
		for _, field := range fields {
			if strings.Contains(strings.ToLower(searchText(r, field)), q) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}

	if facetOn(f.Skill) && !strings.EqualFold(r.Skill, f.Skill) {
		return false
	}
	if facetOn(f.SkillCategory) && !strings.EqualFold(r.SkillCategory, f.SkillCategory) {
		return false
	}
	if facetOn(f.Type) && !strings.EqualFold(r.Type, f.Type) {
		return false
	}
	if facetOn(f.Date) && DateString(r.Date) != strings.TrimSpace(f.Date) {
		return false
	}
	return true
}

func facetOn(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != FacetAll
}

func searchText(r Record, field SearchField) string {
	switch field {
	case SearchName:
		return r.Name
	case SearchTopics:
		return r.Topics
	case SearchTrainer:
		return r.TrainerName
	case SearchSkill:
		return r.Skill
	default:
		return ""
	}
}

// DateString renders an optional date in the ISO form the wire uses.
func DateString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// SortByDateAsc orders a copy ascending by date with undated records last.
// This is the catalog and assigned-trainings policy.
func SortByDateAsc(list []Record) []Record {
	out := make([]Record, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		return dateOrLate(out[i].Date) < dateOrLate(out[j].Date)
	})
	return out
}

// SortByDateDesc orders a copy descending by date with undated records
// treated as earliest, so they land at the tail here too. The "my
// trainings" view depends on this; it is deliberately not the inverse of
// SortByDateAsc.
func SortByDateDesc(list []Record) []Record {
	out := make([]Record, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		return dateOrEarly(out[i].Date) > dateOrEarly(out[j].Date)
	})
	return out
}

// Upcoming keeps records dated today or later, ascending. Undated records
// are excluded: nothing to schedule against.
func Upcoming(list []Record, now time.Time) []Record {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	out := make([]Record, 0)
	for _, r := range list {
		if r.Date == nil {
			continue
		}
		if !r.Date.Before(today) {
			out = append(out, r)
		}
	}
	return SortByDateAsc(out)
}

const lateSentinel = int64(1) << 62

func dateOrLate(t *time.Time) int64 {
	if t == nil {
		return lateSentinel
	}
	return t.Unix()
}

func dateOrEarly(t *time.Time) int64 {
	if t == nil {
		return 0
	}
	return t.Unix()
}
