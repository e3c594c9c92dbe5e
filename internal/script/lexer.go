// Package script parses the line-oriented command language used to drive a
// board: event lines in their rendered form ("put w Pawn A_2", "A_2 --> A_4")
// plus a handful of commands for inspecting and branching the game.
package script

import "unicode"

// Token is one whitespace-separated word of a line.
type Token struct {
	Text   string
	Column int // 1-based
}

// tokenize splits a line into tokens, dropping everything after '#'.
func tokenize(line string) []Token {
	var tokens []Token
	start := -1
	for i, r := range line {
		if r == '#' {
			break
		}
		if unicode.IsSpace(r) {
			if start >= 0 {
				tokens = append(tokens, Token{Text: line[start:i], Column: start + 1})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		end := len(line)
		for i, r := range line[start:] {
			if r == '#' || unicode.IsSpace(r) {
				end = start + i
				break
			}
		}
		tokens = append(tokens, Token{Text: line[start:end], Column: start + 1})
	}
	return tokens
}
