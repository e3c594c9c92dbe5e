package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chessmodel-go/internal/board"
	"github.com/lgbarn/chessmodel-go/internal/chess"
	"github.com/lgbarn/chessmodel-go/internal/errors"
)

// CommandKind identifies what a script line asks for.
type CommandKind int

const (
	ApplyEvent CommandKind = iota
	Standard
	Lock
	Show
	Log
	Moves
	ViewSquare
	Material
	Save
	Restore
	Fork
	RelationsOf
	Snapshots
	Drop
)

var commandNames = map[CommandKind]string{
	ApplyEvent:  "event",
	Standard:    "standard",
	Lock:        "lock",
	Show:        "show",
	Log:         "log",
	Moves:       "moves",
	ViewSquare:  "view",
	Material:    "material",
	Save:        "save",
	Restore:     "restore",
	Fork:        "fork",
	RelationsOf: "relations",
	Snapshots:   "snapshots",
	Drop:        "drop",
}

// String returns the keyword of the command.
func (k CommandKind) String() string {
	if name, ok := commandNames[k]; ok {
		return name
	}
	return "unknown"
}

// Command is one parsed script line.
type Command struct {
	Kind   CommandKind
	Event  board.Event  // ApplyEvent
	Side   chess.Side   // Moves, Material
	Square chess.Square // ViewSquare, RelationsOf
	Ply    int          // Fork
	Arg    string       // Save label, Restore and Drop id
	Line   int
	Text   string
}

// Parser reads commands from a script.
type Parser struct {
	scanner *bufio.Scanner
	file    string
	line    int
}

// NewParser returns a parser over r. file is only used in error messages.
func NewParser(r io.Reader, file string) *Parser {
	return &Parser{scanner: bufio.NewScanner(r), file: file}
}

// Next returns the next command, skipping blank and comment-only lines.
// It returns io.EOF when the input is exhausted.
func (p *Parser) Next() (Command, error) {
	for p.scanner.Scan() {
		p.line++
		text := p.scanner.Text()
		cmd, ok, err := parseTokens(tokenize(text))
		if err != nil {
			var pe *errors.ParseError
			if errors.As(err, &pe) {
				pe.File = p.file
				pe.Line = p.line
			}
			return Command{}, err
		}
		if !ok {
			continue
		}
		cmd.Line = p.line
		cmd.Text = strings.TrimSpace(text)
		return cmd, nil
	}
	if err := p.scanner.Err(); err != nil {
		return Command{}, err
	}
	return Command{}, io.EOF
}

// ParseEvent parses a single event in its rendered form.
func ParseEvent(text string) (board.Event, error) {
	cmd, ok, err := parseTokens(tokenize(text))
	if err != nil {
		return nil, err
	}
	if !ok || cmd.Kind != ApplyEvent {
		return nil, &errors.ParseError{Err: errors.ErrParseFailure, Expected: "event", Got: fmt.Sprintf("%q", text)}
	}
	return cmd.Event, nil
}

func parseTokens(tokens []Token) (Command, bool, error) {
	if len(tokens) == 0 {
		return Command{}, false, nil
	}

	head := tokens[0]
	switch strings.ToLower(head.Text) {
	case "put":
		return parsePut(tokens)
	case "remove":
		if err := expectCount(tokens, 2, "remove <square>"); err != nil {
			return Command{}, false, err
		}
		sq, err := square(tokens[1])
		if err != nil {
			return Command{}, false, err
		}
		return Command{Kind: ApplyEvent, Event: board.Remove{Source: sq}}, true, nil
	case "standard", "lock", "show", "log", "snapshots":
		if err := expectCount(tokens, 1, head.Text); err != nil {
			return Command{}, false, err
		}
		return Command{Kind: keywordKind(head.Text)}, true, nil
	case "moves", "material":
		if err := expectCount(tokens, 2, head.Text+" <side>"); err != nil {
			return Command{}, false, err
		}
		s, err := chess.ParseSide(tokens[1].Text)
		if err != nil {
			return Command{}, false, syntaxError(tokens[1], "side", err)
		}
		return Command{Kind: keywordKind(head.Text), Side: s}, true, nil
	case "view", "relations":
		if err := expectCount(tokens, 2, head.Text+" <square>"); err != nil {
			return Command{}, false, err
		}
		sq, err := square(tokens[1])
		if err != nil {
			return Command{}, false, err
		}
		return Command{Kind: keywordKind(head.Text), Square: sq}, true, nil
	case "fork":
		if err := expectCount(tokens, 2, "fork <ply>"); err != nil {
			return Command{}, false, err
		}
		ply, err := strconv.Atoi(tokens[1].Text)
		if err != nil || ply < 0 {
			return Command{}, false, &errors.ParseError{
				Err: errors.ErrParseFailure, Column: tokens[1].Column, Expected: "ply", Got: fmt.Sprintf("%q", tokens[1].Text),
			}
		}
		return Command{Kind: Fork, Ply: ply}, true, nil
	case "save":
		label := make([]string, 0, len(tokens)-1)
		for _, t := range tokens[1:] {
			label = append(label, t.Text)
		}
		return Command{Kind: Save, Arg: strings.Join(label, " ")}, true, nil
	case "restore", "drop":
		if err := expectCount(tokens, 2, head.Text+" <id>"); err != nil {
			return Command{}, false, err
		}
		return Command{Kind: keywordKind(head.Text), Arg: tokens[1].Text}, true, nil
	}

	return parseMoveOrCapture(tokens)
}

// parsePut accepts "put <side> <rank> <square>" and, for pieces that start
// away from where they are put, "put <side> <rank> <square> home <square>".
func parsePut(tokens []Token) (Command, bool, error) {
	if len(tokens) != 4 && len(tokens) != 6 {
		return Command{}, false, countError(tokens, "put <side> <rank> <square> [home <square>]")
	}
	side, err := chess.ParseSide(tokens[1].Text)
	if err != nil {
		return Command{}, false, syntaxError(tokens[1], "side", err)
	}
	rank, err := chess.ParseRank(tokens[2].Text)
	if err != nil {
		return Command{}, false, syntaxError(tokens[2], "rank", err)
	}
	target, err := square(tokens[3])
	if err != nil {
		return Command{}, false, err
	}
	home := target
	if len(tokens) == 6 {
		if !strings.EqualFold(tokens[4].Text, "home") {
			return Command{}, false, &errors.ParseError{
				Err: errors.ErrParseFailure, Column: tokens[4].Column, Expected: `"home"`, Got: fmt.Sprintf("%q", tokens[4].Text),
			}
		}
		if home, err = square(tokens[5]); err != nil {
			return Command{}, false, err
		}
	}
	piece, err := chess.NewPiece(side, rank, home)
	if err != nil {
		return Command{}, false, syntaxError(tokens[1], "piece", err)
	}
	return Command{Kind: ApplyEvent, Event: board.Put{Piece: piece, Target: target}}, true, nil
}

func parseMoveOrCapture(tokens []Token) (Command, bool, error) {
	if len(tokens) != 3 {
		return Command{}, false, &errors.ParseError{
			Err: errors.ErrParseFailure, Column: tokens[0].Column, Expected: "command or event", Got: fmt.Sprintf("%q", tokens[0].Text),
		}
	}
	source, err := square(tokens[0])
	if err != nil {
		return Command{}, false, err
	}
	target, err := square(tokens[2])
	if err != nil {
		return Command{}, false, err
	}
	switch strings.ToLower(tokens[1].Text) {
	case "-->":
		return Command{Kind: ApplyEvent, Event: board.Move{Source: source, Target: target}}, true, nil
	case "x":
		return Command{Kind: ApplyEvent, Event: board.Capture{Source: source, Target: target}}, true, nil
	}
	return Command{}, false, &errors.ParseError{
		Err: errors.ErrParseFailure, Column: tokens[1].Column, Expected: `"-->" or "x"`, Got: fmt.Sprintf("%q", tokens[1].Text),
	}
}

func keywordKind(word string) CommandKind {
	w := strings.ToLower(word)
	for k, name := range commandNames {
		if name == w {
			return k
		}
	}
	return ApplyEvent
}

func square(t Token) (chess.Square, error) {
	sq, err := chess.ParseSquare(t.Text)
	if err != nil {
		return chess.Square{}, syntaxError(t, "square", err)
	}
	return sq, nil
}

func expectCount(tokens []Token, n int, usage string) error {
	if len(tokens) != n {
		return countError(tokens, usage)
	}
	return nil
}

func countError(tokens []Token, usage string) error {
	return &errors.ParseError{
		Err:      errors.ErrParseFailure,
		Column:   tokens[0].Column,
		Expected: usage,
		Got:      fmt.Sprintf("%d words", len(tokens)),
	}
}

func syntaxError(t Token, expected string, cause error) error {
	return &errors.ParseError{
		Err:      fmt.Errorf("%v: %w", cause, errors.ErrParseFailure),
		Column:   t.Column,
		Expected: expected,
		Got:      fmt.Sprintf("%q", t.Text),
	}
}
