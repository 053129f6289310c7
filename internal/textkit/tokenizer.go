// Package textkit provides sentence, word and paragraph tokenization for
// plain English text. It is the leaf dependency of both the analyzer and the
// transformation pipeline.
package textkit

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Sentence is a contiguous span of the source text. Start and End are byte
// offsets into the original string; Text is the trimmed content.
type Sentence struct {
	Text  string
	Start int
	End   int
}

// Abbreviations that end with a period but do not terminate a sentence.
// Stored lowercase without the trailing period.
var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"sr": true, "jr": true, "st": true, "vs": true, "etc": true,
	"e.g": true, "i.e": true, "u.s": true, "u.k": true,
	"a.m": true, "p.m": true, "fig": true, "no": true,
	"inc": true, "ltd": true, "co": true, "approx": true,
}

// wordPattern keeps contractions (don't) and hyphenated compounds
// (well-known) as single tokens while stripping surrounding punctuation.
var wordPattern = regexp.MustCompile(`[a-zA-Z]+(?:['’][a-zA-Z]+)*(?:-[a-zA-Z]+(?:['’][a-zA-Z]+)*)*`)

// paragraphBreak matches a blank line (the paragraph separator).
var paragraphBreak = regexp.MustCompile(`\n[ \t]*\n+`)

// Sentences splits text into ordered sentences. Boundaries are '.', '!' or
// '?' followed by whitespace and a capital/digit/quote, with common
// abbreviations exempted. Empty or whitespace-only input yields no
// sentences, never an error.
func Sentences(text string) []Sentence {
	var out []Sentence
	start := 0
	i := 0
	for i < len(text) {
		c := text[i]
		if c != '.' && c != '!' && c != '?' {
			i++
			continue
		}
		// Consume trailing closers so `word."` splits after the quote.
		j := i + 1
		for j < len(text) && isCloser(text[j]) {
			j++
		}
		if c == '.' && isAbbreviation(text, i) {
			i = j
			continue
		}
		if !boundaryFollows(text, j) {
			i = j
			continue
		}
		if s, ok := makeSentence(text, start, j); ok {
			out = append(out, s)
		}
		for j < len(text) && isSpaceByte(text[j]) {
			j++
		}
		start = j
		i = j
	}
	if s, ok := makeSentence(text, start, len(text)); ok {
		out = append(out, s)
	}
	return out
}

// Words returns the word tokens of a sentence (or any text fragment).
func Words(text string) []string {
	return wordPattern.FindAllString(text, -1)
}

// ParagraphSpans returns the byte spans of each non-empty paragraph, where a
// paragraph is a maximal run of text unseparated by a blank line.
func ParagraphSpans(text string) [][2]int {
	var spans [][2]int
	prev := 0
	for _, sep := range paragraphBreak.FindAllStringIndex(text, -1) {
		if strings.TrimSpace(text[prev:sep[0]]) != "" {
			spans = append(spans, [2]int{prev, sep[0]})
		}
		prev = sep[1]
	}
	if strings.TrimSpace(text[prev:]) != "" {
		spans = append(spans, [2]int{prev, len(text)})
	}
	return spans
}

// FirstWord returns the first word token of text, or "" when there is none.
func FirstWord(text string) string {
	return wordPattern.FindString(text)
}

func makeSentence(text string, start, end int) (Sentence, bool) {
	for start < end && isSpaceByte(text[start]) {
		start++
	}
	for end > start && isSpaceByte(text[end-1]) {
		end--
	}
	if start >= end {
		return Sentence{}, false
	}
	return Sentence{Text: text[start:end], Start: start, End: end}, true
}

// isAbbreviation reports whether the period at pos ends a known
// abbreviation (or a single-letter initial like "J.").
func isAbbreviation(text string, pos int) bool {
	begin := pos
	for begin > 0 {
		c := text[begin-1]
		if isLetterByte(c) || c == '.' {
			begin--
			continue
		}
		break
	}
	word := strings.ToLower(text[begin:pos])
	word = strings.TrimSuffix(word, ".")
	if word == "" {
		return false
	}
	if len(word) == 1 && word != "i" && word != "a" {
		return true // single-letter initial
	}
	return abbreviations[word]
}

// boundaryFollows reports whether the text after a terminator run looks like
// the start of a new sentence.
func boundaryFollows(text string, pos int) bool {
	if pos >= len(text) {
		return true
	}
	if !isSpaceByte(text[pos]) {
		return false
	}
	k := pos
	for k < len(text) && isSpaceByte(text[k]) {
		k++
	}
	if k >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[k:])
	return unicode.IsUpper(r) || unicode.IsDigit(r) || r == '"' || r == '\'' || r == '(' || r == '“'
}

func isCloser(c byte) bool {
	return c == '"' || c == '\'' || c == ')' || c == ']' ||
		c == '.' || c == '!' || c == '?'
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isLetterByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
