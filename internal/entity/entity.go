// Package entity normalizes and extracts named actors from item text.
//
// Extraction is cheap regex matching (no LLM). Budget: <5ms per title.
// Normalization runs before any aggregation so equivalent spellings of
// the same actor merge into one key.
package entity

import (
	"regexp"
	"strings"
)

// knownEntities are matched first, preserving their canonical casing.
var knownEntities = []string{
	"OpenAI", "NVIDIA", "Anthropic", "Google", "DeepMind", "Microsoft", "Meta", "Apple",
	"Amazon", "AWS", "Azure", "TSMC", "AMD", "Intel", "Arm", "Tesla",
	"Cerebras", "Groq", "Mistral", "Hugging Face", "Stability AI",
	"ByteDance", "Alibaba", "Tencent", "Samsung", "Qualcomm",
}

// aliases fold common short forms into one canonical key.
var aliases = map[string]string{
	"UK":  "United Kingdom",
	"US":  "United States",
	"USA": "United States",
	"EU":  "European Union",
}

// stopEntities are generic acronyms that look like entities but aren't.
var stopEntities = map[string]bool{
	"AI": true, "ML": true, "LLM": true, "RAG": true, "RL": true,
	"GPU": true, "CPU": true, "API": true, "SDK": true, "OSS": true,
	"PDF": true, "HTML": true,
}

// allowAcronyms are short all-caps names that are real actors.
var allowAcronyms = map[string]bool{
	"AWS": true, "TSMC": true, "AMD": true, "ARM": true,
	"NVIDIA": true, "GPT": true, "CUDA": true,
}

var (
	wsRun          = regexp.MustCompile(`\s+`)
	upperTokenRe   = regexp.MustCompile(`\b[A-Z][A-Z0-9]{1,6}\b`)
	capPhraseRe    = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+){0,2})\b`)
	knownEntityRes = buildKnownRes()
)

func buildKnownRes() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(knownEntities))
	for i, e := range knownEntities {
		res[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(e) + `\b`)
	}
	return res
}

// Normalize trims, collapses internal whitespace runs and applies the
// alias map. Returns "" for blank input.
func Normalize(e string) string {
	e = strings.TrimSpace(e)
	e = wsRun.ReplaceAllString(e, " ")
	if canon, ok := aliases[e]; ok {
		return canon
	}
	return e
}

// Bad reports whether a normalized string should be rejected as an
// entity key: empty, a stop acronym, or a short all-caps token that
// isn't on the allowlist.
func Bad(e string) bool {
	if e == "" {
		return true
	}
	if stopEntities[e] {
		return true
	}
	if len(e) <= 2 && e == strings.ToUpper(e) && !allowAcronyms[e] {
		if _, aliased := aliases[e]; !aliased {
			return true
		}
	}
	if len(e) < 3 {
		return true
	}
	return false
}

var phraseStopWords = map[string]bool{
	"The": true, "A": true, "An": true, "And": true, "Of": true,
	"In": true, "On": true, "For": true, "With": true, "New": true,
}

// FromTitle extracts up to max entity names from a title: known actors
// first, then standalone acronyms, then capitalized phrases. Duplicates
// are folded case-insensitively, first spelling wins.
func FromTitle(title string, max int) []string {
	var hits []string
	seen := map[string]bool{}

	add := func(e string) {
		key := strings.ToLower(e)
		if seen[key] {
			return
		}
		seen[key] = true
		hits = append(hits, e)
	}

	for i, re := range knownEntityRes {
		if re.MatchString(title) {
			add(knownEntities[i])
		}
	}

	for _, m := range upperTokenRe.FindAllString(title, -1) {
		m2 := Normalize(m)
		if Bad(m2) {
			continue
		}
		add(m2)
	}

	for _, m := range capPhraseRe.FindAllStringSubmatch(title, -1) {
		c := Normalize(m[1])
		if phraseStopWords[c] || Bad(c) {
			continue
		}
		add(c)
	}

	if max > 0 && len(hits) > max {
		hits = hits[:max]
	}
	return hits
}
