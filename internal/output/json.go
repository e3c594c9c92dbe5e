package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessmodel-go/internal/board"
	"github.com/lgbarn/chessmodel-go/internal/chess"
	"github.com/lgbarn/chessmodel-go/internal/config"
	"github.com/lgbarn/chessmodel-go/internal/session"
	"github.com/lgbarn/chessmodel-go/internal/view"
)

// JSONPiece represents a piece and where it stands.
type JSONPiece struct {
	Side   string `json:"side"`
	Rank   string `json:"rank"`
	Home   string `json:"home"`
	Square string `json:"square,omitempty"`
}

// JSONEvent represents one event.
type JSONEvent struct {
	Ply      int        `json:"ply,omitempty"`
	Kind     string     `json:"kind"`
	Text     string     `json:"text"`
	Source   string     `json:"source,omitempty"`
	Target   string     `json:"target,omitempty"`
	Piece    *JSONPiece `json:"piece,omitempty"`
	Captured *JSONPiece `json:"captured,omitempty"`
}

// JSONBoard represents a board.
type JSONBoard struct {
	Locked bool        `json:"locked"`
	Ply    int         `json:"ply"`
	Pieces []JSONPiece `json:"pieces"`
}

// JSONView represents a piece's view.
type JSONView struct {
	Piece      JSONPiece `json:"piece"`
	MoveTo     []string  `json:"moveTo"`
	Attacked   []string  `json:"attacked"`
	Defended   []string  `json:"defended"`
	Threatened []string  `json:"threatened"`
}

// JSONRelations represents the relations of one piece.
type JSONRelations struct {
	Piece     JSONPiece   `json:"piece"`
	Attacks   []JSONPiece `json:"attacks"`
	Defends   []JSONPiece `json:"defends"`
	Attackers []JSONPiece `json:"attackers"`
	Defenders []JSONPiece `json:"defenders"`
}

// JSONSnapshot represents one entry of a snapshot listing.
type JSONSnapshot struct {
	ID          string `json:"id"`
	Label       string `json:"label,omitempty"`
	Ply         int    `json:"ply"`
	DuplicateOf string `json:"duplicateOf,omitempty"`
}

// JSONRecord is one line of JSON output. Exactly one payload field is set,
// named by Type.
type JSONRecord struct {
	Type        string         `json:"type"`
	Event       *JSONEvent     `json:"event,omitempty"`
	Board       *JSONBoard     `json:"board,omitempty"`
	Events      []JSONEvent    `json:"events,omitempty"`
	Side        string         `json:"side,omitempty"`
	View        *JSONView      `json:"view,omitempty"`
	Relations   *JSONRelations `json:"relations,omitempty"`
	Material    *int           `json:"material,omitempty"`
	Snapshot    string         `json:"snapshot,omitempty"`
	Label       string         `json:"label,omitempty"`
	DuplicateOf string         `json:"duplicateOf,omitempty"`
	Snapshots   []JSONSnapshot `json:"snapshots,omitempty"`
	Positions   *int           `json:"positions,omitempty"`
	Line        int            `json:"line,omitempty"`
	Error       string         `json:"error,omitempty"`
}

// JSONWriter writes one JSON object per line.
type JSONWriter struct {
	enc *json.Encoder
	cfg *config.Config
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{enc: json.NewEncoder(w), cfg: cfg}
}

// WriteEvent writes an "event" record, followed by a "board" record if
// diagrams are enabled.
func (jw *JSONWriter) WriteEvent(b *board.Board, e board.Event) error {
	if jw.cfg.Output.EchoEvents {
		ev := EventToJSON(e, b.Ply())
		if err := jw.enc.Encode(JSONRecord{Type: "event", Event: &ev}); err != nil {
			return err
		}
	}
	if jw.cfg.Output.ShowBoard {
		return jw.WriteBoard(b)
	}
	return nil
}

// WriteBoard writes a "board" record.
func (jw *JSONWriter) WriteBoard(b *board.Board) error {
	jb := BoardToJSON(b)
	return jw.enc.Encode(JSONRecord{Type: "board", Board: &jb})
}

// WriteLog writes a "log" record.
func (jw *JSONWriter) WriteLog(b *board.Board) error {
	events := b.Events()
	out := make([]JSONEvent, len(events))
	for i, e := range events {
		out[i] = EventToJSON(e, i+1)
	}
	return jw.enc.Encode(JSONRecord{Type: "log", Events: out})
}

// WriteMoves writes a "moves" record.
func (jw *JSONWriter) WriteMoves(side chess.Side, events []board.Event) error {
	out := make([]JSONEvent, len(events))
	for i, e := range events {
		out[i] = EventToJSON(e, 0)
	}
	return jw.enc.Encode(JSONRecord{Type: "moves", Side: side.String(), Events: out})
}

// WriteView writes a "view" record.
func (jw *JSONWriter) WriteView(v view.View) error {
	jv := JSONView{
		Piece:      PieceToJSON(v.Piece, v.Origin),
		MoveTo:     squareStrings(v.MoveTo),
		Attacked:   squareStrings(v.Attacked),
		Defended:   squareStrings(v.Defended),
		Threatened: squareStrings(v.Threatened),
	}
	return jw.enc.Encode(JSONRecord{Type: "view", View: &jv})
}

// WriteRelations writes a "relations" record.
func (jw *JSONWriter) WriteRelations(b *board.Board, r board.Relations) error {
	jr := JSONRelations{
		Piece:     PieceToJSON(r.Piece, r.Square),
		Attacks:   piecesToJSON(b, r.Attacks),
		Defends:   piecesToJSON(b, r.Defends),
		Attackers: piecesToJSON(b, r.Attackers),
		Defenders: piecesToJSON(b, r.Defenders),
	}
	return jw.enc.Encode(JSONRecord{Type: "relations", Relations: &jr})
}

// WriteMaterial writes a "material" record.
func (jw *JSONWriter) WriteMaterial(side chess.Side, points int) error {
	return jw.enc.Encode(JSONRecord{Type: "material", Side: side.String(), Material: &points})
}

// WriteSnapshot writes a record typed by action ("saved" or "restored").
func (jw *JSONWriter) WriteSnapshot(action string, s *session.Snapshot) error {
	return jw.enc.Encode(JSONRecord{Type: action, Snapshot: s.ID, Label: s.Label, DuplicateOf: s.DuplicateOf})
}

// WriteSnapshots writes a "snapshots" record.
func (jw *JSONWriter) WriteSnapshots(snaps []*session.Snapshot, positions int) error {
	out := make([]JSONSnapshot, len(snaps))
	for i, s := range snaps {
		out[i] = JSONSnapshot{ID: s.ID, Label: s.Label, Ply: s.Board.Ply(), DuplicateOf: s.DuplicateOf}
	}
	return jw.enc.Encode(JSONRecord{Type: "snapshots", Snapshots: out, Positions: &positions})
}

// WriteError writes an "error" record.
func (jw *JSONWriter) WriteError(line int, err error) error {
	return jw.enc.Encode(JSONRecord{Type: "error", Line: line, Error: err.Error()})
}

// EventToJSON converts an event. ply 0 is omitted.
func EventToJSON(e board.Event, ply int) JSONEvent {
	je := JSONEvent{Ply: ply, Kind: e.Kind().String(), Text: e.String()}
	switch ev := e.(type) {
	case board.Put:
		je.Target = ev.Target.String()
		p := PieceToJSON(ev.Piece, chess.Square{})
		je.Piece = &p
	case board.Remove:
		je.Source = ev.Source.String()
	case board.Move:
		je.Source = ev.Source.String()
		je.Target = ev.Target.String()
	case board.Capture:
		je.Source = ev.Source.String()
		je.Target = ev.Target.String()
		if ev.Captured.Valid() {
			p := PieceToJSON(ev.Captured, chess.Square{})
			je.Captured = &p
		}
	}
	return je
}

// BoardToJSON converts a board, listing White's pieces before Black's.
func BoardToJSON(b *board.Board) JSONBoard {
	jb := JSONBoard{Locked: b.Locked(), Ply: b.Ply(), Pieces: []JSONPiece{}}
	for _, side := range []chess.Side{chess.White, chess.Black} {
		for _, p := range b.PiecesOf(side) {
			sq, _ := b.SquareOf(p)
			jb.Pieces = append(jb.Pieces, PieceToJSON(p, sq))
		}
	}
	return jb
}

// PieceToJSON converts a piece; a zero square is omitted.
func PieceToJSON(p chess.Piece, sq chess.Square) JSONPiece {
	jp := JSONPiece{Side: p.Side.String(), Rank: p.Rank.String(), Home: p.Home.String()}
	if sq.Valid() {
		jp.Square = sq.String()
	}
	return jp
}

func piecesToJSON(b *board.Board, pieces []chess.Piece) []JSONPiece {
	out := make([]JSONPiece, len(pieces))
	for i, p := range pieces {
		sq, _ := b.SquareOf(p)
		out[i] = PieceToJSON(p, sq)
	}
	return out
}

func squareStrings(squares view.Squares) []string {
	out := make([]string, len(squares))
	for i, sq := range squares {
		out[i] = sq.String()
	}
	return out
}
