/*
 * chesscore - bitboard chess move generation and search core
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package fen decodes and encodes the six-field FEN subset of spec §6:
// piece placement, side to move, castling rights, en-passant target,
// halfmove clock and fullmove number. It is the only place a Position
// is built from or rendered to FEN text - the position package itself
// never parses or formats FEN.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cjkessler/chesscore/internal/position"
	"github.com/cjkessler/chesscore/internal/types"
)

// StartFEN is the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Decode parses a FEN record into a fresh Position. A malformed record -
// a bad piece letter, a rank that over- or under-counts its eight files,
// a bad side-to-move letter, an unparsable castling or en-passant field,
// or clock fields that are not plain integers - is a malformed position
// descriptor (spec §7) and returns a non-nil error; it never panics.
func Decode(s string) (*position.Position, error) {
	fields := strings.Fields(s)
	if len(fields) != 6 {
		return nil, fmt.Errorf("fen: want 6 fields, got %d: %q", len(fields), s)
	}

	p := position.Empty()
	if err := decodePlacement(p, fields[0]); err != nil {
		return nil, err
	}

	side, err := decodeSide(fields[1])
	if err != nil {
		return nil, err
	}
	p.SetSideToMove(side)

	castling, err := decodeCastling(fields[2])
	if err != nil {
		return nil, err
	}
	p.SetCastling(castling)

	ep, err := decodeEnPassant(fields[3])
	if err != nil {
		return nil, err
	}
	p.SetEnPassant(ep)

	half, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("fen: bad halfmove clock %q: %w", fields[4], err)
	}
	full, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("fen: bad fullmove number %q: %w", fields[5], err)
	}
	p.SetClocks(half, full)

	return p, nil
}

func decodePlacement(p *position.Position, field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("fen: want 8 ranks, got %d: %q", len(ranks), field)
	}
	// FEN lists rank 8 first; Rank8 is types.Rank index 7.
	for i, rankStr := range ranks {
		r := types.Rank(7 - i)
		file := 0
		for _, ch := range []byte(rankStr) {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			piece, ok := types.PieceFromChar(ch)
			if !ok {
				return fmt.Errorf("fen: bad piece letter %q in rank %q", ch, rankStr)
			}
			if file > 7 {
				return fmt.Errorf("fen: rank %q overruns 8 files", rankStr)
			}
			p.PlacePiece(piece.Color, piece.Kind, types.SquareOf(types.File(file), r))
			file++
		}
		if file != 8 {
			return fmt.Errorf("fen: rank %q does not cover 8 files", rankStr)
		}
	}
	return nil
}

func decodeSide(field string) (types.Color, error) {
	switch field {
	case "w":
		return types.White, nil
	case "b":
		return types.Black, nil
	default:
		return 0, fmt.Errorf("fen: bad side to move %q", field)
	}
}

func decodeCastling(field string) (types.CastlingRights, error) {
	if field == "-" {
		return types.NoCastling, nil
	}
	var rights types.CastlingRights
	for _, ch := range []byte(field) {
		switch ch {
		case 'K':
			rights |= types.WhiteKingside
		case 'Q':
			rights |= types.WhiteQueenside
		case 'k':
			rights |= types.BlackKingside
		case 'q':
			rights |= types.BlackQueenside
		default:
			return 0, fmt.Errorf("fen: bad castling letter %q in %q", ch, field)
		}
	}
	return rights, nil
}

func decodeEnPassant(field string) (types.Square, error) {
	if field == "-" {
		return types.SqNone, nil
	}
	sq := types.ParseSquare(field)
	if sq == types.SqNone {
		return types.SqNone, fmt.Errorf("fen: bad en-passant square %q", field)
	}
	return sq, nil
}

// Encode renders p as a six-field FEN record, the inverse of Decode.
func Encode(p *position.Position) string {
	var b strings.Builder
	for i := 0; i < 8; i++ {
		r := types.Rank(7 - i)
		empty := 0
		for f := types.FileA; f <= types.FileH; f++ {
			sq := types.SquareOf(f, r)
			c, pt, ok := p.PieceAt(sq)
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte(byte('0' + empty))
				empty = 0
			}
			b.WriteByte(types.Piece{Color: c, Kind: pt}.Char())
		}
		if empty > 0 {
			b.WriteByte(byte('0' + empty))
		}
		if i != 7 {
			b.WriteByte('/')
		}
	}

	b.WriteByte(' ')
	b.WriteString(p.SideToMove().String())
	b.WriteByte(' ')
	b.WriteString(p.Castling().String())
	b.WriteByte(' ')
	b.WriteString(p.EnPassant().String())
	fmt.Fprintf(&b, " %d %d", p.HalfMoveClock(), p.FullMoveNumber())
	return b.String()
}

// Render draws p as an 8x8 ASCII diagram, rank 8 at the top, for the
// UCI handler's "d" debugging extension (spec §6 names FEN/UCI as the
// only wire formats; this is a human-facing convenience grounded in the
// teacher's board-printing helpers, not part of the wire protocol).
func Render(p *position.Position) string {
	var b strings.Builder
	for i := 0; i < 8; i++ {
		r := types.Rank(7 - i)
		fmt.Fprintf(&b, "%d  ", int(r)+1)
		for f := types.FileA; f <= types.FileH; f++ {
			sq := types.SquareOf(f, r)
			if c, pt, ok := p.PieceAt(sq); ok {
				b.WriteByte(types.Piece{Color: c, Kind: pt}.Char())
			} else {
				b.WriteByte('.')
			}
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a b c d e f g h\n")
	fmt.Fprintf(&b, "side to move: %s\n", p.SideToMove().String())
	return b.String()
}
