/*
 * chesscore - bitboard chess move generation and search core
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package position represents a chess position as twelve piece
// bitboards plus a mutable side-to-move/castling/en-passant descriptor
// and an undo stack of prior descriptors (spec §3), and implements the
// make/unmake engine (spec §4.8) that mutates it in place and reverses
// that mutation exactly.
package position

import (
	"github.com/cjkessler/chesscore/internal/attacks"
	"github.com/cjkessler/chesscore/internal/types"
)

// state is the part of a position that make/unmake must save and
// restore around a committed move: side to move, castling rights and
// the en-passant target square, per spec §3's history-stack tuple.
type state struct {
	sideToMove      types.Color
	castling        types.CastlingRights
	enPassant       types.Square
	halfMoveClock   int
	fullMoveNumber  int
}

// Position is the mutable board: twelve piece bitboards indexed by
// types.PieceIndex(color, kind), the current state descriptor, and a
// stack of prior descriptors pushed on each committed MakeMove and
// popped on each committed UnmakeMove (spec §3).
type Position struct {
	pieces  [12]types.Bitboard
	state   state
	history []state
}

// New builds the standard chess starting position.
func New() *Position {
	p := &Position{}
	p.setupStart()
	return p
}

// Empty builds a position with no pieces and White to move, no castling
// rights and no en-passant target - the blank canvas internal/fen fills
// in while decoding a FEN record.
func Empty() *Position {
	return &Position{
		state: state{sideToMove: types.White, castling: types.NoCastling, enPassant: types.SqNone},
	}
}

// PlacePiece adds a piece of (c, pt) at sq. It does not check sq is
// already empty - callers (FEN decoding) are expected to place each
// square at most once.
func (p *Position) PlacePiece(c types.Color, pt types.PieceType, sq types.Square) {
	p.xorPiece(c, pt, sq)
}

// SetSideToMove sets whose turn it is, with no history side effects.
func (p *Position) SetSideToMove(c types.Color) {
	p.state.sideToMove = c
}

// SetCastling sets the current castling rights outright.
func (p *Position) SetCastling(r types.CastlingRights) {
	p.state.castling = r
}

// SetEnPassant sets the current en-passant target square outright.
func (p *Position) SetEnPassant(sq types.Square) {
	p.state.enPassant = sq
}

// SetClocks sets the halfmove clock and fullmove number carried by a FEN
// record. Neither feeds move generation, legality or search - spec §1
// scopes out fifty-move and threefold-repetition detection - they exist
// only so a position round-trips through FEN without losing information.
func (p *Position) SetClocks(halfMoveClock, fullMoveNumber int) {
	p.state.halfMoveClock = halfMoveClock
	p.state.fullMoveNumber = fullMoveNumber
}

// HalfMoveClock returns the halfmove clock carried by the last decoded
// or default-initialized FEN record.
func (p *Position) HalfMoveClock() int {
	return p.state.halfMoveClock
}

// FullMoveNumber returns the fullmove number carried by the last decoded
// or default-initialized FEN record.
func (p *Position) FullMoveNumber() int {
	return p.state.fullMoveNumber
}

func (p *Position) setupStart() {
	place := func(c types.Color, pt types.PieceType, squares ...types.Square) {
		idx := types.PieceIndex(c, pt)
		for _, sq := range squares {
			p.pieces[idx] = p.pieces[idx].Set(sq)
		}
	}
	place(types.White, types.Pawn, types.SqA2, types.SqB2, types.SqC2, types.SqD2, types.SqE2, types.SqF2, types.SqG2, types.SqH2)
	place(types.White, types.Rook, types.SqA1, types.SqH1)
	place(types.White, types.Knight, types.SqB1, types.SqG1)
	place(types.White, types.Bishop, types.SqC1, types.SqF1)
	place(types.White, types.Queen, types.SqD1)
	place(types.White, types.King, types.SqE1)
	place(types.Black, types.Pawn, types.SqA7, types.SqB7, types.SqC7, types.SqD7, types.SqE7, types.SqF7, types.SqG7, types.SqH7)
	place(types.Black, types.Rook, types.SqA8, types.SqH8)
	place(types.Black, types.Knight, types.SqB8, types.SqG8)
	place(types.Black, types.Bishop, types.SqC8, types.SqF8)
	place(types.Black, types.Queen, types.SqD8)
	place(types.Black, types.King, types.SqE8)
	p.state = state{
		sideToMove:     types.White,
		castling:       types.AllCastling,
		enPassant:      types.SqNone,
		fullMoveNumber: 1,
	}
}

// Clone returns a deep copy, including its own independent history
// stack - per spec §9, "cloning a position must clone its history;
// aliasing histories across positions would violate the unmake
// invariant."
func (p *Position) Clone() *Position {
	cp := &Position{
		pieces: p.pieces,
		state:  p.state,
	}
	cp.history = append([]state(nil), p.history...)
	return cp
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() types.Color {
	return p.state.sideToMove
}

// Castling returns the current castling rights.
func (p *Position) Castling() types.CastlingRights {
	return p.state.castling
}

// EnPassant returns the current en-passant target square, or SqNone.
func (p *Position) EnPassant() types.Square {
	return p.state.enPassant
}

// HistoryLen returns the number of committed, not-yet-unmade moves -
// equal to the number of committed makes so far (spec §3's invariant).
func (p *Position) HistoryLen() int {
	return len(p.history)
}

// PieceBB returns the bitboard for (color, kind).
func (p *Position) PieceBB(c types.Color, pt types.PieceType) types.Bitboard {
	return p.pieces[types.PieceIndex(c, pt)]
}

// Occupied returns the union of every piece of color c.
func (p *Position) Occupied(c types.Color) types.Bitboard {
	var bb types.Bitboard
	for _, pt := range types.PieceTypes {
		bb |= p.pieces[types.PieceIndex(c, pt)]
	}
	return bb
}

// AllOccupied returns the union of every piece on the board.
func (p *Position) AllOccupied() types.Bitboard {
	return p.Occupied(types.White) | p.Occupied(types.Black)
}

// KingSquare returns the square of color c's king.
func (p *Position) KingSquare(c types.Color) types.Square {
	return p.PieceBB(c, types.King).LSB()
}

// PieceAt identifies which (color, kind) owns sq, if any. Used by the
// generator to look up a captured piece's kind by scanning the twelve
// piece bitboards for membership, per spec §4.4 - the position keeps no
// square->piece mailbox.
func (p *Position) PieceAt(sq types.Square) (types.Color, types.PieceType, bool) {
	mask := types.Mask(sq)
	for c := types.White; c < types.ColorLength; c++ {
		for _, pt := range types.PieceTypes {
			if p.pieces[types.PieceIndex(c, pt)]&mask != 0 {
				return c, pt, true
			}
		}
	}
	return 0, 0, false
}

func (p *Position) xorPiece(c types.Color, pt types.PieceType, sq types.Square) {
	idx := types.PieceIndex(c, pt)
	p.pieces[idx] ^= types.Mask(sq)
}

// originalRookSquares and originalKingSquare are the fixed corner/center
// squares spec §4.5's castling rights are keyed to.
func originalRookSquares(c types.Color) (kingside, queenside types.Square) {
	if c == types.White {
		return types.SqH1, types.SqA1
	}
	return types.SqH8, types.SqA8
}

func originalKingSquare(c types.Color) types.Square {
	if c == types.White {
		return types.SqE1
	}
	return types.SqE8
}

// doublePushRanks returns the pawn's starting rank and the rank reached
// by a double push, per color - used by apply to recognise a double push
// and set its en-passant target square.
func doublePushRanks(c types.Color) (start, target types.Rank) {
	if c == types.White {
		return types.Rank2, types.Rank4
	}
	return types.Rank7, types.Rank5
}

// MakeMove applies m, committing it to history and flipping the side to
// move, per spec §4.8. It is the caller's responsibility to only ever
// pass pseudo-legal moves generated for the current side to move.
func (p *Position) MakeMove(m types.Move) {
	p.apply(m, true)
}

// UnmakeMove reverses the most recently committed move, per spec §4.8.
func (p *Position) UnmakeMove(m types.Move) {
	p.unapply(m, true)
}

// apply implements Make(move, commit) from spec §4.8. When commit is
// false (used by the legal filter and by castling's recursive king
// sub-move) the history stack is untouched and the side to move does
// not flip.
func (p *Position) apply(m types.Move, commit bool) {
	mover := p.state.sideToMove
	prior := p.state
	working := p.state

	if m.IsCastle() {
		kFrom, kTo := types.CastleKingFromTo(m)
		p.apply(types.NewMove(kFrom, kTo, types.King), false)
		working.castling = working.castling.Clear(types.KingsideFor(mover)).Clear(types.QueensideFor(mover))
	}

	if m.Piece() == types.King {
		working.castling = working.castling.Clear(types.KingsideFor(mover)).Clear(types.QueensideFor(mover))
	} else if m.Piece() == types.Rook {
		ksq, qsq := originalRookSquares(mover)
		switch m.From() {
		case ksq:
			working.castling = working.castling.Clear(types.KingsideFor(mover))
		case qsq:
			working.castling = working.castling.Clear(types.QueensideFor(mover))
		}
	}

	if m.IsCapture() {
		capSq := m.To()
		if m.IsEnPassant() {
			capSq = epCapturedSquare(mover, m.To())
		}
		p.xorPiece(mover.Flip(), m.Captured(), capSq)
	}

	p.xorPiece(mover, m.Piece(), m.From())
	p.xorPiece(mover, m.Piece(), m.To())

	working.enPassant = types.SqNone
	if m.Piece() == types.Pawn {
		start, target := doublePushRanks(mover)
		if m.From().RankOf() == start && m.To().RankOf() == target {
			skipped := types.SquareOf(m.From().FileOf(), midRank(start, target))
			working.enPassant = skipped
		}
	}

	if m.IsPromotion() {
		p.xorPiece(mover, types.Pawn, m.To())
		p.xorPiece(mover, m.Promotion(), m.To())
	}

	if commit {
		p.history = append(p.history, prior)
		p.state = working
		p.state.sideToMove = mover.Flip()
	}
}

// unapply implements Unmake(move, commit) from spec §4.8.
func (p *Position) unapply(m types.Move, commit bool) {
	if commit {
		n := len(p.history) - 1
		p.state = p.history[n]
		p.history = p.history[:n]
	}

	// The restored state.sideToMove is who owned the moving/captured
	// pieces - computed before any bit manipulation, per spec §4.8 step 1.
	mover := p.state.sideToMove

	if m.IsCastle() {
		kFrom, kTo := types.CastleKingFromTo(m)
		p.unapply(types.NewMove(kFrom, kTo, types.King), false)
	}

	if m.IsCapture() {
		capSq := m.To()
		if m.IsEnPassant() {
			capSq = epCapturedSquare(mover, m.To())
		}
		p.xorPiece(mover.Flip(), m.Captured(), capSq)
	}

	if m.IsPromotion() {
		p.xorPiece(mover, m.Promotion(), m.To())
		p.xorPiece(mover, types.Pawn, m.To())
	}

	p.xorPiece(mover, m.Piece(), m.To())
	p.xorPiece(mover, m.Piece(), m.From())
}

// epCapturedSquare returns the square of the pawn taken by an
// en-passant capture: one rank behind the destination, in the mover's
// direction - not the destination itself (spec §4.4, §4.8).
func epCapturedSquare(mover types.Color, dest types.Square) types.Square {
	if mover == types.White {
		return types.SquareOf(dest.FileOf(), dest.RankOf()-1)
	}
	return types.SquareOf(dest.FileOf(), dest.RankOf()+1)
}

// midRank returns the rank strictly between start and target - the rank
// a double-pushed pawn skipped over.
func midRank(start, target types.Rank) types.Rank {
	if target > start {
		return start + 1
	}
	return start - 1
}

// AttacksBy returns the union of every square attacked by side c: for
// each piece of c on the board, its pseudo-legal destination set as if
// capturing - pawns contribute only their two diagonal-forward squares,
// never pushes (spec §4.6). When excludeKing is given (non-SqNone) it
// names a king bit removed from the occupancy before computing slider
// attacks, so a slider attack passing through that king's square is not
// wrongly blocked by it.
func (p *Position) AttacksBy(c types.Color, excludeKing types.Square) types.Bitboard {
	occ := p.AllOccupied()
	if excludeKing != types.SqNone {
		occ = occ.Clear(excludeKing)
	}
	var attacked types.Bitboard

	p.PieceBB(c, types.Pawn).ForEach(func(sq types.Square) {
		attacked |= attacks.PawnAttacks(c, sq)
	})
	p.PieceBB(c, types.Knight).ForEach(func(sq types.Square) {
		attacked |= attacks.Knight[sq]
	})
	p.PieceBB(c, types.King).ForEach(func(sq types.Square) {
		attacked |= attacks.King[sq]
	})
	own := p.Occupied(c)
	p.PieceBB(c, types.Rook).ForEach(func(sq types.Square) {
		attacked |= attacks.RookAttacks(sq, occ) &^ own
	})
	p.PieceBB(c, types.Bishop).ForEach(func(sq types.Square) {
		attacked |= attacks.BishopAttacks(sq, occ) &^ own
	})
	p.PieceBB(c, types.Queen).ForEach(func(sq types.Square) {
		attacked |= attacks.QueenAttacks(sq, occ) &^ own
	})
	return attacked
}

// InCheck reports whether c's king is attacked by the opposing side,
// per spec §4.6.
func (p *Position) InCheck(c types.Color) bool {
	king := p.KingSquare(c)
	return p.AttacksBy(c.Flip(), king) & types.Mask(king) != 0
}

// IsLegal applies m without committing history, tests whether the mover
// is left in check, then reverses it - the legal filter of spec §4.7.
// Castling moves skip this: the generator already rejected any path
// that crosses an attacked square, so they are appended directly by the
// generator without calling IsLegal.
func (p *Position) IsLegal(m types.Move) bool {
	mover := p.state.sideToMove
	p.apply(m, false)
	ok := !p.InCheck(mover)
	p.unapply(m, false)
	return ok
}
