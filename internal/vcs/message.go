// Package vcs records document changes in version control: it suggests
// commit messages from task descriptions and runs git.
package vcs

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// verbs are rewritten to past tense by [DoneMessage], in this order.
var verbs = []string{
	"add", "adjust", "allow", "apply", "archive",
	"build",
	"change", "check", "clean", "close", "complete", "configure", "create",
	"debug", "delete", "disable", "document",
	"enable", "enforce", "enhance",
	"fix",
	"handle",
	"implement", "improve", "initialize", "install",
	"merge", "migrate",
	"optimize",
	"perform", "prevent",
	"refactor", "refine", "release", "remove", "replace", "report", "reset", "resolve", "restart", "revert", "review",
	"save", "send", "start", "stop",
	"test", "track",
	"update", "upgrade",
	"validate", "verify",
}

// DoneMessage suggests a commit message for completing the task described by
// text.
//
// Every known imperative verb found as a whole word is rewritten to past
// tense in place, matching case-insensitively ("Fix login" becomes "Fixed
// login"). Without a known verb the message is "Closed '<text>'".
func DoneMessage(text string) string {
	message := text
	changed := false

	for _, verb := range verbs {
		start, ok := findWord(message, verb)
		if !ok {
			continue
		}

		end := start + len(verb)
		found := message[start:end]
		message = message[:start] + trimForSuffix(found) + pastTenseSuffix(found) + message[end:]
		changed = true
	}

	if !changed {
		return "Closed '" + text + "'"
	}

	return message
}

// UndoMessage suggests a commit message for reopening the task.
func UndoMessage(text string) string {
	return "Reopened '" + text + "'"
}

// RemoveMessage suggests a commit message for deleting the task.
func RemoveMessage(text string) string {
	return "Removed '" + text + "'"
}

// findWord returns the byte offset of the first ASCII case-insensitive
// occurrence of the lower-case word in s that is not glued to other letters
// or digits.
func findWord(s, word string) (int, bool) {
	for start := 0; start+len(word) <= len(s); start++ {
		end := start + len(word)

		if !equalFoldASCII(s[start:end], word) {
			continue
		}

		if !isWordRune(lastRune(s[:start])) && !isWordRune(firstRune(s[end:])) {
			return start, true
		}
	}

	return 0, false
}

func equalFoldASCII(s, lowerWord string) bool {
	for i := range len(lowerWord) {
		c := s[i]
		if isUpper(c) {
			c += 'a' - 'A'
		}

		if c != lowerWord[i] {
			return false
		}
	}

	return true
}

// pastTenseSuffix returns what to append to the matched verb. found keeps
// the user's casing; an upper-case final letter gives an upper-case suffix.
func pastTenseSuffix(found string) string {
	lower := strings.ToLower(found)
	last := lower[len(lower)-1]
	prev := lower[len(lower)-2]

	var suffix string

	switch {
	case last == 'e':
		suffix = "d"
	case last == 'y':
		suffix = "ied"
	case (prev == 'l' || prev == 'n') && last == 'd':
		suffix = "t"
	case strings.IndexByte("aeiouy", prev) >= 0 && (last == 'g' || last == 'p'):
		suffix = string(last) + "ed"
	default:
		suffix = "ed"
	}

	if isUpper(found[len(found)-1]) {
		return strings.ToUpper(suffix)
	}

	return suffix
}

// trimForSuffix drops the final letter of found where the suffix replaces
// it (apply -> applied, build -> built).
func trimForSuffix(found string) string {
	lower := strings.ToLower(found)
	last := lower[len(lower)-1]
	prev := lower[len(lower)-2]

	if last == 'y' || ((prev == 'l' || prev == 'n') && last == 'd') {
		return found[:len(found)-1]
	}

	return found
}

func isUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)

	return r
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)

	return r
}
