// Package matching scores traces against each other: tag overlap for similar
// traces and word overlap for alternative solutions.
//
// Every function scans the full candidate list. That is fine for the table
// sizes this application sees and there is deliberately no index behind it.
package matching

import (
	"cmp"
	"slices"
	"strings"

	"github.com/WeAreTheArtMakers/mindTrace/internal/domain"
)

// minTokenLength is the shortest word that takes part in problem matching.
// Shorter words ("the", "how", "my") are treated as stopwords.
const minTokenLength = 4

// Scored is a candidate trace with its overlap score.
type Scored struct {
	Trace domain.Trace
	Score int
}

// Tokens splits text on whitespace into the distinct lowercase words used for
// problem matching. Punctuation stays attached to its word; words shorter than
// four characters are dropped.
func Tokens(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	out := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if domain.RuneLen(f) < minTokenLength {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

// WordMatches counts the target tokens that contain, or are contained in, at
// least one candidate token.
func WordMatches(target, candidate []string) int {
	n := 0
	for _, t := range target {
		for _, c := range candidate {
			if strings.Contains(t, c) || strings.Contains(c, t) {
				n++
				break
			}
		}
	}
	return n
}

// TagOverlap counts the distinct target tags that also appear on the
// candidate, compared case-insensitively.
func TagOverlap(target, candidate []string) int {
	have := make(map[string]struct{}, len(candidate))
	for _, c := range candidate {
		have[strings.ToLower(strings.TrimSpace(c))] = struct{}{}
	}
	seen := make(map[string]struct{}, len(target))
	n := 0
	for _, t := range target {
		t = strings.ToLower(strings.TrimSpace(t))
		if _, dup := seen[t]; dup || t == "" {
			continue
		}
		seen[t] = struct{}{}
		if _, ok := have[t]; ok {
			n++
		}
	}
	return n
}

// Similar returns up to limit traces sharing at least one tag with target,
// highest overlap first. Ties keep candidate order. The target never matches itself.
func Similar(target domain.Trace, candidates []domain.Trace, limit int) []Scored {
	out := []Scored{}
	if len(target.Tags) == 0 || limit <= 0 {
		return out
	}

	for _, c := range candidates {
		if c.ID == target.ID {
			continue
		}
		if score := TagOverlap(target.Tags, c.Tags); score > 0 {
			out = append(out, Scored{Trace: c, Score: score})
		}
	}

	slices.SortStableFunc(out, func(a, b Scored) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return truncate(out, limit)
}

// Alternatives returns up to limit traces whose problem shares words with
// problem, most matches first, then newest first. A trace with id excludeID
// is skipped; pass "" to keep every candidate.
func Alternatives(problem, excludeID string, candidates []domain.Trace, limit int) []Scored {
	out := []Scored{}
	target := Tokens(problem)
	if len(target) == 0 || limit <= 0 {
		return out
	}

	for _, c := range candidates {
		if excludeID != "" && c.ID == excludeID {
			continue
		}
		if score := WordMatches(target, Tokens(c.Problem)); score > 0 {
			out = append(out, Scored{Trace: c, Score: score})
		}
	}

	slices.SortStableFunc(out, func(a, b Scored) int {
		if n := cmp.Compare(b.Score, a.Score); n != 0 {
			return n
		}
		if n := b.Trace.CreatedAt.Compare(a.Trace.CreatedAt); n != 0 {
			return n
		}
		return cmp.Compare(b.Trace.ID, a.Trace.ID)
	})
	return truncate(out, limit)
}

// StrongOverlap reports whether a later problem (tokens b) restates an earlier
// one (tokens a): at least two matching words and at least half of the shorter
// token set.
func StrongOverlap(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	threshold := max(2, (min(len(a), len(b))+1)/2)
	return WordMatches(a, b) >= threshold
}

// AlternativeIDs returns the ids of traces that restate an earlier trace's
// problem. Traces are visited oldest first; a trace strongly overlapping any
// earlier canonical trace is an alternative, otherwise it becomes canonical itself.
func AlternativeIDs(traces []domain.Trace) map[string]struct{} {
	ordered := slices.Clone(traces)
	slices.SortStableFunc(ordered, func(a, b domain.Trace) int {
		if n := a.CreatedAt.Compare(b.CreatedAt); n != 0 {
			return n
		}
		return cmp.Compare(a.ID, b.ID)
	})

	type canonical struct {
		tokens []string
	}
	var canon []canonical
	alternatives := make(map[string]struct{})

	for _, t := range ordered {
		tokens := Tokens(t.Problem)
		isAlt := false
		for _, c := range canon {
			if StrongOverlap(c.tokens, tokens) {
				isAlt = true
				break
			}
		}
		if isAlt {
			alternatives[t.ID] = struct{}{}
			continue
		}
		canon = append(canon, canonical{tokens: tokens})
	}
	return alternatives
}

func truncate(s []Scored, limit int) []Scored {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
