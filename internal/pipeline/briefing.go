package pipeline

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abelbrown/radar/internal/feeds"
	"github.com/abelbrown/radar/internal/snapshot"
)

// buildBriefing produces the heuristic day summary: top category mix,
// a concentration risk line, and a short watch list.
func buildBriefing(total int, primaryDist map[string]int, topEntities []snapshot.EntityCount) *snapshot.Briefing {
	type catCount struct {
		cat string
		n   int
	}
	cats := make([]catCount, 0, len(primaryDist))
	for c, n := range primaryDist {
		cats = append(cats, catCount{cat: c, n: n})
	}
	sort.Slice(cats, func(i, j int) bool {
		if cats[i].n != cats[j].n {
			return cats[i].n > cats[j].n
		}
		return cats[i].cat < cats[j].cat
	})
	if len(cats) > 3 {
		cats = cats[:3]
	}

	var parts []string
	for _, cc := range cats {
		parts = append(parts, fmt.Sprintf("%s (%d/%d)", feeds.ParseCategory(cc.cat).Label(), cc.n, total))
	}
	mix := "Misc"
	if len(parts) > 0 {
		mix = strings.Join(parts, ", ")
	}

	var names []string
	for _, e := range topEntities {
		names = append(names, e.Entity)
	}
	actors := "n/a"
	if len(names) > 0 {
		actors = strings.Join(names, ", ")
	}

	maxCat := 0
	if len(cats) > 0 {
		maxCat = cats[0].n
	}
	denom := total
	if denom < 1 {
		denom = 1
	}
	concentration := float64(maxCat) / float64(denom)

	var risk string
	switch {
	case concentration >= 0.60:
		risk = "High concentration in one category: possible mono-theme or scoring bias."
	case concentration >= 0.50:
		risk = "Medium concentration: watch whether it consolidates as the dominant narrative."
	default:
		risk = "Reasonable category diversity (no extreme dominance)."
	}

	var watch []string
	if len(names) > 0 {
		top := names
		if len(top) > 3 {
			top = top[:3]
		}
		watch = append(watch, fmt.Sprintf("Follow: %s.", strings.Join(top, ", ")))
	}
	if len(cats) > 0 {
		watch = append(watch, fmt.Sprintf("Watch whether %q keeps its dominance tomorrow.", feeds.ParseCategory(cats[0].cat).Label()))
	}
	if len(watch) == 0 {
		watch = []string{"Grow the history to detect real momentum."}
	}
	if len(watch) > 3 {
		watch = watch[:3]
	}

	top5 := names
	if len(top5) > 5 {
		top5 = top5[:5]
	}

	return &snapshot.Briefing{
		Signals: []string{
			fmt.Sprintf("Today's mix (top): %s.", mix),
			fmt.Sprintf("Dominant actors (today): %s.", actors),
		},
		Risks:       []string{risk},
		Watch:       watch,
		EntitiesTop: top5,
	}
}
