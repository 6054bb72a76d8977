package repl

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/lithium/lang"
)

// ctrlCommands are the available control-mode commands.
var ctrlCommands = []string{"help", "vars", "modules", "dump", "edit", "clear", "quit"}

// ctrlPrefix marks a control command typed in eval mode.
const ctrlPrefix = ":"

// isWordBoundary reports whether c delimits words for completion purposes.
func isWordBoundary(c byte) bool { return !lang.IsIdentifier(c) }

// wordBounds returns the current word at the cursor position and its byte
// boundaries within input.
// Returns an empty word when the cursor sits on a boundary (after a space,
// after an operator, start of line, etc.).
func wordBounds(input string, cursor int) (word string, start, end int) {
	cursor = min(max(cursor, 0), len(input))

	start = cursor
	for start > 0 && !isWordBoundary(input[start-1]) {
		start--
	}

	end = cursor
	for end < len(input) && !isWordBoundary(input[end]) {
		end++
	}

	return input[start:end], start, end
}

// precedingWords returns up to n words before offset, nearest last.
// Only words separated by whitespace are collected; any other boundary,
// like an operator or parenthesis, ends the run.
func precedingWords(input string, offset, n int) []string {
	var words []string

	prefix := input[:offset]

	for len(words) < n {
		trimmed := strings.TrimRight(prefix, " \t\r\n")
		if trimmed == "" || isWordBoundary(trimmed[len(trimmed)-1]) {
			break
		}

		i := len(trimmed)
		for i > 0 && !isWordBoundary(trimmed[i-1]) {
			i--
		}

		words = append([]string{trimmed[i:]}, words...)
		prefix = trimmed[:i]

		if prefix == "" || !isSpace(prefix[len(prefix)-1]) {
			break
		}
	}

	return words
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// candidates returns the names that can follow the words before the
// current one, given the properties, variables, and modules of c, and
// whether the preceding words selected them.
//
//	from | to          module names
//	from M | to M      properties of module M
//	local              variables
//	get | set          properties, and "local"
//	int                nothing (a new name)
//	anything else      keywords
func candidates(c *lang.Context, before []string) ([]string, bool) {
	last := func(i int) string {
		if i < len(before) {
			return before[len(before)-1-i]
		}

		return ""
	}

	switch prev := last(0); prev {
	case "from", "to":
		return c.Modules(), true
	case "local":
		return c.Variables(), true
	case "get", "set":
		return append(c.Accessors(), "local"), true
	case "int":
		return nil, true
	default:
		if p := last(1); p == "from" || p == "to" {
			if mod, ok := c.GetModule(prev); ok {
				return mod.Accessors(), true
			}

			return nil, true
		}
	}

	return lang.Keywords(), false
}

// computeMatches calculates the fuzzy match results for the word at the cursor.
// It returns the matches (ranked best-first), the candidate list, and the word
// boundaries. When the current word is empty, it returns every candidate
// that depends on the preceding words, and nothing otherwise, keeping the
// hint text visible on a fresh line.
func (m model) computeMatches() (
	matches fuzzy.Matches,
	cands []string,
	wordStart, wordEnd int,
) {
	input := m.input.Value()
	cursor := m.input.Position()

	word, wordStart, wordEnd := wordBounds(input, cursor)

	cands, contextual := m.candidatesAt(input, wordStart)

	if len(cands) == 0 {
		return nil, nil, wordStart, wordEnd
	}

	if word == "" {
		if !contextual {
			return nil, nil, wordStart, wordEnd
		}

		matches = make(fuzzy.Matches, len(cands))
		for i, c := range cands {
			matches[i] = fuzzy.Match{Str: c, Index: i}
		}

		return matches, cands, wordStart, wordEnd
	}

	return fuzzy.Find(word, cands), cands, wordStart, wordEnd
}

// candidatesAt returns the candidates for the word starting at wordStart
// and whether they were selected by the preceding words.
func (m model) candidatesAt(input string, wordStart int) ([]string, bool) {
	if m.mode == modeCtrl {
		return ctrlCommands, false
	}

	if rest, ok := strings.CutPrefix(input, ctrlPrefix); ok && wordStart == len(ctrlPrefix) && !strings.ContainsAny(rest, " \t") {
		return ctrlCommands, false
	}

	return candidates(m.script, precedingWords(input, wordStart, 2))
}

// renderCandidateBar builds the single-line completion bar, ellipsized to fit
// within the given terminal width. Each candidate is rendered with its matched
// characters highlighted. The selected candidate (when tabbing) uses the
// selected style.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range matches {
		rendered := renderCandidate(match, tabActive && i == suggIdx)
		entryWidth := lipgloss.Width(rendered)

		if i > 0 {
			entryWidth += sepWidth
		}

		if used+entryWidth+ellipsisWidth > width && i > 0 {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth
	}

	return b.String()
}

// renderCandidate renders a single candidate with matched characters
// highlighted.
func renderCandidate(match fuzzy.Match, selected bool) string {
	base, highlight := suggestionStyle, matchStyle
	if selected {
		base, highlight = selectedStyle, selectedMatchStyle
	}

	matched := make(map[int]bool, len(match.MatchedIndexes))
	for _, idx := range match.MatchedIndexes {
		matched[idx] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		if matched[i] {
			b.WriteString(highlight.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}

	return b.String()
}
