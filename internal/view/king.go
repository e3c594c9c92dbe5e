package view

import "github.com/lgbarn/chessmodel-go/internal/chess"

// excludeThreatened drops every candidate square some opponent piece
// threatens. Opponent views are recomputed for each candidate; at board size
// this stays cheap.
func excludeThreatened(pos Position, side chess.Side, candidates Squares) Squares {
	safe := make(Squares, 0, len(candidates))
	for _, sq := range candidates {
		if !Threatens(pos, side.Opponent(), sq) {
			safe = append(safe, sq)
		}
	}
	return safe
}
