package wordle

import (
	"regexp"
	"strconv"
	"strings"
)

// resultPattern matches shared wordle results like "Wordle 1,234 3/6" or
// "Wordle 1234 🎉 X/6". The game number may carry a thousands separator and
// the celebratory marker is optional.
var resultPattern = regexp.MustCompile(`Wordle (\d{0,3},?\d{1,3}) (🎉 ?)?([X1-6])/6`)

// ParseResult extracts a wordle score from a message. It returns false when
// the message does not contain a result. Only the first match is used.
func ParseResult(authorID, authorName, content string) (Result, bool) {
	match := resultPattern.FindStringSubmatch(content)
	if match == nil {
		return Result{}, false
	}

	gameNumber, err := strconv.Atoi(strings.ReplaceAll(match[1], ",", ""))
	if err != nil {
		return Result{}, false
	}

	return Result{
		DiscordID:   authorID,
		DiscordName: authorName,
		GameNumber:  gameNumber,
		Attempts:    match[3],
	}, true
}
