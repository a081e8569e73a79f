package game

import "github.com/kuredoro/termsnake/core"

// QuitToken ends the run. It is handled by the caller, never by Resolve.
const QuitToken = "CTRL_C"

// synonyms maps every accepted input token to its cardinal. It is filled
// once at package initialisation and only read afterwards.
var synonyms = buildSynonyms(map[core.Direction][]string{
	core.Up:    {"W", "w", "UP"},
	core.Down:  {"S", "s", "DOWN"},
	core.Left:  {"A", "a", "LEFT"},
	core.Right: {"D", "d", "RIGHT"},
})

func buildSynonyms(table map[core.Direction][]string) map[string]core.Direction {
	m := make(map[string]core.Direction)
	for dir, tokens := range table {
		for _, tok := range tokens {
			m[tok] = dir
		}
	}
	return m
}

// Lookup reports which cardinal a token stands for.
func Lookup(token string) (core.Direction, bool) {
	dir, ok := synonyms[token]
	return dir, ok
}

func IsQuit(token string) bool {
	return token == QuitToken
}

// Resolve returns the direction the snake should head in after token was
// received while moving towards current. Unknown tokens and 180 degree turns
// leave current untouched.
func Resolve(token string, current core.Direction) core.Direction {
	dir, ok := Lookup(token)
	if !ok || dir == current.Opposite() {
		return current
	}
	return dir
}
