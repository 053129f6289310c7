// Package transform implements the multi-pass rewrite pipeline: a shared
// pattern-match engine plus the four passes (passive voice, formal
// simplification, contraction forming, sentence variety).
package transform

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/evan-william/humanifyai/internal/ruleset"
)

// Table is one pass's compiled pattern table. It supports both rewriting
// and dry-run counting (the analyzer reuses the contraction and formal
// tables in count mode).
type Table struct {
	rules []compiledRule
}

type compiledRule struct {
	re       *regexp.Regexp
	replace  string
	priority int
}

// candidate is one potential match found during the scan.
type candidate struct {
	start    int
	end      int
	replace  string
	priority int
}

// NewTable compiles a pattern table. Each rule becomes a case-insensitive,
// word-bounded regular expression; phrases are matched literally.
func NewTable(rules []ruleset.Rule) *Table {
	t := &Table{rules: make([]compiledRule, 0, len(rules))}
	for i, r := range rules {
		t.rules = append(t.rules, compiledRule{
			re:       regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(r.Match) + `\b`),
			replace:  r.Replace,
			priority: i,
		})
	}
	return t
}

// Apply rewrites text in a single scan. All rules are matched up front,
// candidates are ranked longest-first (then by table priority), and a
// non-overlapping subset is applied, so a more specific rule always
// pre-empts a general one at the same offset.
func (t *Table) Apply(text string) string {
	selected := t.scan(text)
	if len(selected) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	prev := 0
	upperNext := false
	for _, m := range selected {
		start, end := m.start, m.end
		if m.replace == "" {
			// Deletion consumes one adjacent space, following preferred.
			if end < len(text) && text[end] == ' ' {
				end++
			} else if start > 0 && text[start-1] == ' ' {
				start--
			}
		}
		writeChunk(&b, text[prev:start], &upperNext)
		if m.replace != "" {
			writeChunk(&b, casedReplacement(text, m), &upperNext)
		} else if sentenceInitial(text, m.start) {
			// Deleting a sentence opener promotes the next word.
			upperNext = true
		}
		prev = end
	}
	writeChunk(&b, text[prev:], &upperNext)
	return b.String()
}

// Count returns how many non-overlapping matches the table has in text
// without rewriting anything.
func (t *Table) Count(text string) int {
	return len(t.scan(text))
}

// scan finds all candidate matches, resolves overlaps (length descending,
// then table priority), and returns the winners in text order.
func (t *Table) scan(text string) []candidate {
	var found []candidate
	for _, r := range t.rules {
		for _, loc := range r.re.FindAllStringIndex(text, -1) {
			found = append(found, candidate{
				start:    loc[0],
				end:      loc[1],
				replace:  r.replace,
				priority: r.priority,
			})
		}
	}
	if len(found) == 0 {
		return nil
	}

	sort.Slice(found, func(i, j int) bool {
		li, lj := found[i].end-found[i].start, found[j].end-found[j].start
		if li != lj {
			return li > lj
		}
		if found[i].priority != found[j].priority {
			return found[i].priority < found[j].priority
		}
		return found[i].start < found[j].start
	})

	var selected []candidate
	for _, c := range found {
		overlaps := false
		for _, s := range selected {
			if c.start < s.end && s.start < c.end {
				overlaps = true
				break
			}
		}
		if !overlaps {
			selected = append(selected, c)
		}
	}

	sort.Slice(selected, func(i, j int) bool { return selected[i].start < selected[j].start })
	return selected
}

// writeChunk appends s, uppercasing its first rune when a preceding
// sentence-initial deletion asked for it. An empty chunk keeps the request
// pending.
func writeChunk(b *strings.Builder, s string, upperNext *bool) {
	if s == "" {
		return
	}
	if *upperNext {
		*upperNext = false
		s = upperFirst(s)
	}
	b.WriteString(s)
}

// casedReplacement adjusts only the replacement's first letter: it adopts
// the original capitalization when the match starts a sentence, and is
// lowercased mid-sentence (except for the pronoun "I").
func casedReplacement(text string, m candidate) string {
	orig, _ := utf8.DecodeRuneInString(text[m.start:m.end])
	if sentenceInitial(text, m.start) && unicode.IsUpper(orig) {
		return upperFirst(m.replace)
	}
	if keepsLeadingCase(m.replace) {
		return m.replace
	}
	return lowerFirst(m.replace)
}

// sentenceInitial reports whether pos is the first character of a sentence:
// start of text, start of a line, or preceded by terminal punctuation.
func sentenceInitial(text string, pos int) bool {
	i := pos
	for i > 0 {
		c := text[i-1]
		switch {
		case c == ' ' || c == '\t':
			i--
		case c == '\n' || c == '\r':
			return true
		case c == '"' || c == '\'' || c == ')':
			i--
		default:
			return c == '.' || c == '!' || c == '?'
		}
	}
	return true
}

// keepsLeadingCase guards replacements whose first word is the pronoun "I".
func keepsLeadingCase(rep string) bool {
	return rep == "I" || strings.HasPrefix(rep, "I ") || strings.HasPrefix(rep, "I'")
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
