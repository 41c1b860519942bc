// Package voc provides locale vocabulary matching: small per-concept
// sample files ("audio_only.voc", "resume.voc", ...) whose entries are
// matched against utterances on word boundaries.
package voc

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

// Vocabulary holds the loaded vocabulary samples for one locale.
type Vocabulary struct {
	samples map[string][]string // concept name -> lowercased samples
}

// Load reads every .voc file in localeDir. A missing directory or file is
// not an error; the affected vocabulary is simply empty.
func Load(localeDir string) *Vocabulary {
	v := &Vocabulary{samples: make(map[string][]string)}

	entries, err := os.ReadDir(localeDir)
	if err != nil {
		return v
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".voc") {
			continue
		}
		samples := readSamples(filepath.Join(localeDir, name))
		if len(samples) > 0 {
			v.samples[strings.TrimSuffix(name, ".voc")] = samples
		}
	}

	return v
}

// readSamples reads one sample per line, skipping blanks and # comments.
// Longer samples sort first so multi-word entries win over their prefixes.
func readSamples(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var samples []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(strings.ToLower(line))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		samples = append(samples, line)
	}

	sort.Slice(samples, func(i, j int) bool {
		return len(samples[i]) > len(samples[j])
	})

	return samples
}

// Match reports whether the utterance contains any sample of the named
// vocabulary on word boundaries.
func (v *Vocabulary) Match(utterance, name string) bool {
	_, _, ok := v.find(utterance, name)
	return ok
}

// MatchExact reports whether the whole utterance equals a sample of the
// named vocabulary after trimming and lowercasing.
func (v *Vocabulary) MatchExact(utterance, name string) bool {
	cleaned := strings.ToLower(strings.TrimSpace(utterance))
	for _, sample := range v.samples[name] {
		if cleaned == sample {
			return true
		}
	}
	return false
}

// Remove strips the first matched sample of the named vocabulary from the
// utterance. Surrounding whitespace is left untouched; trimming is the
// caller's decision. The utterance is returned unchanged when nothing
// matches.
func (v *Vocabulary) Remove(utterance, name string) string {
	start, end, ok := v.find(utterance, name)
	if !ok {
		return utterance
	}
	return utterance[:start] + utterance[end:]
}

// find locates the first boundary-aligned sample occurrence, returning its
// byte span within the original utterance.
func (v *Vocabulary) find(utterance, name string) (start, end int, ok bool) {
	lowered := strings.ToLower(utterance)
	for _, sample := range v.samples[name] {
		offset := 0
		for {
			idx := strings.Index(lowered[offset:], sample)
			if idx < 0 {
				break
			}
			s := offset + idx
			e := s + len(sample)
			if boundaryAt(lowered, s, e) {
				return s, e, true
			}
			offset = s + 1
		}
	}
	return 0, 0, false
}

// boundaryAt reports whether [start,end) sits on word boundaries.
func boundaryAt(s string, start, end int) bool {
	if start > 0 {
		prev := rune(s[start-1])
		if unicode.IsLetter(prev) || unicode.IsDigit(prev) {
			return false
		}
	}
	if end < len(s) {
		next := rune(s[end])
		if unicode.IsLetter(next) || unicode.IsDigit(next) {
			return false
		}
	}
	return true
}
