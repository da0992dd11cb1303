package trivia

import "strings"

var guessPunctuation = strings.NewReplacer(
	".", "", ",", "", "/", "", "#", "", "!", "", "$", "", "%", "", "^", "",
	"&", "", "*", "", ";", "", ":", "", "{", "", "}", "", "=", "", "-", "",
	"_", "", "`", "", "~", "", "(", "", ")", "",
)

// CheckAnswer reports whether guess contains every word of answer,
// ignoring case and punctuation in the guess.
func CheckAnswer(guess, answer string) bool {
	g := strings.ToLower(guessPunctuation.Replace(guess))
	words := strings.Fields(strings.ToLower(answer))
	if len(words) == 0 || strings.TrimSpace(g) == "" {
		return false
	}
	for _, w := range words {
		if !strings.Contains(g, w) {
			return false
		}
	}
	return true
}
