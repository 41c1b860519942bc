package classifier

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// Matcher scores an utterance against labeled sample templates and returns
// the best label with its confidence. Implementations are injectable so the
// classifier never depends on a particular matching engine.
type Matcher interface {
	Match(utterance string, intents map[string][]string) (label string, confidence float64, ok bool)
}

// TemplateMatcher matches utterances against templates with {query} slots,
// e.g. "play {query} music". Literal template tokens must appear in order in
// the utterance; token comparison tolerates small typos via edit distance.
type TemplateMatcher struct {
	// minTokenSimilarity is the per-token similarity needed for a literal
	// template token to count as matched.
	minTokenSimilarity float64
	// minConfidence is the internal cutoff below which Match reports no result.
	minConfidence float64
}

// NewTemplateMatcher returns a TemplateMatcher with default thresholds.
func NewTemplateMatcher() *TemplateMatcher {
	return &TemplateMatcher{
		minTokenSimilarity: 0.8,
		minConfidence:      0.7,
	}
}

// Verify TemplateMatcher implements Matcher at compile time.
var _ Matcher = (*TemplateMatcher)(nil)

// Match returns the best-scoring label across all templates of all labels.
func (m *TemplateMatcher) Match(utterance string, intents map[string][]string) (string, float64, bool) {
	tokens := tokenize(utterance)
	if len(tokens) == 0 {
		return "", 0, false
	}

	bestLabel := ""
	bestConfidence := 0.0
	bestLiterals := 0

	for label, templates := range intents {
		for _, template := range templates {
			confidence, literals := m.scoreTemplate(tokens, template)
			if confidence < m.minConfidence {
				continue
			}
			// More literal evidence wins between equally confident labels.
			if confidence > bestConfidence ||
				(confidence == bestConfidence && literals > bestLiterals) {
				bestLabel = label
				bestConfidence = confidence
				bestLiterals = literals
			}
		}
	}

	if bestLabel == "" {
		return "", 0, false
	}
	return bestLabel, bestConfidence, true
}

// scoreTemplate scores utterance tokens against one template. It returns the
// confidence and the number of literal tokens the template carries. A score
// of zero means the template does not match.
func (m *TemplateMatcher) scoreTemplate(tokens []string, template string) (float64, int) {
	literals, slots := parseTemplate(template)
	if len(literals) == 0 {
		return 0, 0
	}

	// A slot must consume at least one token.
	if len(tokens) < len(literals)+slots {
		return 0, len(literals)
	}

	// Greedy in-order alignment of literal tokens.
	total := 0.0
	pos := 0
	for _, lit := range literals {
		matched := false
		for ; pos < len(tokens); pos++ {
			sim := tokenSimilarity(lit, tokens[pos])
			if sim >= m.minTokenSimilarity {
				total += sim
				pos++
				matched = true
				break
			}
		}
		if !matched {
			return 0, len(literals)
		}
	}

	// Templates without slots must account for the whole utterance.
	if slots == 0 && len(tokens) != len(literals) {
		return 0, len(literals)
	}

	return total / float64(len(literals)), len(literals)
}

// parseTemplate splits a template into its literal tokens and counts its
// {slot} placeholders.
func parseTemplate(template string) (literals []string, slots int) {
	for _, field := range strings.Fields(strings.ToLower(template)) {
		if strings.HasPrefix(field, "{") && strings.HasSuffix(field, "}") {
			slots++
			continue
		}
		literals = append(literals, normalizeToken(field))
	}
	return literals, slots
}

// tokenSimilarity returns a 0..1 similarity between two tokens based on
// edit distance.
func tokenSimilarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := max(len(a), len(b))
	if maxLen == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}

// tokenize lowercases and splits an utterance, stripping punctuation.
func tokenize(s string) []string {
	var tokens []string
	for _, field := range strings.Fields(strings.ToLower(s)) {
		if t := normalizeToken(field); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

func normalizeToken(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
