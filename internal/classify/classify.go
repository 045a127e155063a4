// Package classify scores items and assigns their primary category.
//
// Scoring is keyword-hit counting over title+summary, weighted per
// keyword group, with small per-source bonuses. It is deliberately dumb
// and fast; the digest engine downstream does the real math.
package classify

import (
	"strings"

	"github.com/abelbrown/radar/internal/feeds"
)

var keywords = map[string][]string{
	"infra": {
		"datacenter", "data center", "power", "grid", "substation", "cooling",
		"hbm", "hbm3", "hbm3e", "cowos", "packaging", "2.5d", "3d",
		"tsmc", "samsung", "intel foundry", "substrate", "interconnect",
		"blackwell", "hopper", "gb200", "mi300", "dram",
	},
	"models": {
		"llm", "model", "reasoning", "agent", "tool", "mcp", "alignment", "rl",
		"inference", "training", "token", "context", "benchmark", "eval",
		"multimodal", "transformer", "mixture of experts", "moe",
	},
	"invest": {
		"earnings", "guidance", "capex", "opex", "margin", "backlog", "revenue",
		"supply", "shortage", "constraint", "price", "pricing",
	},
	"geopol": {
		"export control", "sanction", "china", "taiwan", "eu ai act", "bis",
		"sovereign", "regulation", "chip act",
	},
	"hype": {
		"breakthrough", "state-of-the-art", "sota", "launch", "released", "announces",
		"preview", "new", "first", "record", "massive",
	},
}

func countHits(text string, words []string) int {
	t := strings.ToLower(text)
	hits := 0
	for _, w := range words {
		if strings.Contains(t, w) {
			hits++
		}
	}
	return hits
}

// Result carries the outcome of scoring one item.
type Result struct {
	Score   int
	Primary feeds.Category
	Tags    []string
}

// Score rates an item's relevance 0-100 and picks its primary category.
func Score(title, summary, source string) Result {
	text := strings.TrimSpace(title + "\n" + summary)

	infra := countHits(text, keywords["infra"])
	models := countHits(text, keywords["models"])
	invest := countHits(text, keywords["invest"])
	geopol := countHits(text, keywords["geopol"])
	hype := countHits(text, keywords["hype"])

	raw := infra*10 + invest*10 + models*5 + geopol*5 + hype*3

	// Source bonuses
	src := strings.ToLower(source)
	if strings.Contains(src, "semiwiki") {
		raw += 10
	}
	if strings.Contains(src, "nvidia") {
		raw += 8
	}
	if strings.Contains(src, "arxiv") {
		raw += 4
	}
	if strings.Contains(src, "deepmind") || strings.Contains(src, "google ai") {
		raw += 6
	}

	score := raw
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	var tags []string
	if infra > 0 {
		tags = append(tags, "infra")
	}
	if invest > 0 {
		tags = append(tags, "invest")
	}
	if models > 0 {
		tags = append(tags, "models")
	}
	if geopol > 0 {
		tags = append(tags, "geopol")
	}

	primary := feeds.CategoryMisc
	switch {
	case infra > 0 && infra >= models && infra >= invest && infra >= geopol:
		primary = feeds.CategoryInfra
	case invest > 0 && invest >= models && invest >= infra && invest >= geopol:
		primary = feeds.CategoryInvest
	case models > 0 && models >= infra && models >= invest && models >= geopol:
		primary = feeds.CategoryModels
	case geopol > 0:
		primary = feeds.CategoryGeopol
	}

	return Result{Score: score, Primary: primary, Tags: tags}
}
