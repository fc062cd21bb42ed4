/*
 * chesscore - bitboard chess move generation and search core
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package attacks builds and holds the engine's precomputed attack
// tables: eight per-square ray tables, one knight-jump table and one
// king-step table. They are built once from pure bit arithmetic at
// package init and are read-only afterwards, safe to share across any
// number of positions (spec §4.2, §5).
package attacks

import "github.com/cjkessler/chesscore/internal/types"

// Dir names one of the eight compass directions a sliding piece can move
// along. The values double as indices into the Ray table.
type Dir uint8

const (
	North Dir = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	dirLength
)

// Ray[dir][sq] is the set of squares strictly beyond sq in direction dir,
// stopping at the board edge (spec §4.2).
var Ray [dirLength][64]types.Bitboard

// Knight[sq] is the set of squares a knight on sq attacks.
var Knight [64]types.Bitboard

// King[sq] is the set of squares a king on sq attacks (non-castling).
var King [64]types.Bitboard

func init() {
	buildRays()
	buildKnight()
	buildKing()
}

// buildRays walks each of the eight directions one file/rank step at a
// time from every square, stopping when the next step would leave the
// board, so no ray wraps around an edge.
func buildRays() {
	for sq := types.SqA1; sq <= types.SqH8; sq++ {
		f, r := int(sq.FileOf()), int(sq.RankOf())

		var north, south, east, west types.Bitboard
		for rr := r + 1; rr < 8; rr++ {
			north = north.Set(types.SquareOf(sq.FileOf(), types.Rank(rr)))
		}
		for rr := r - 1; rr >= 0; rr-- {
			south = south.Set(types.SquareOf(sq.FileOf(), types.Rank(rr)))
		}
		for ff := f + 1; ff < 8; ff++ {
			east = east.Set(types.SquareOf(types.File(ff), sq.RankOf()))
		}
		for ff := f - 1; ff >= 0; ff-- {
			west = west.Set(types.SquareOf(types.File(ff), sq.RankOf()))
		}
		Ray[North][sq] = north
		Ray[South][sq] = south
		Ray[East][sq] = east
		Ray[West][sq] = west

		var ne, nw, se, sw types.Bitboard
		for ff, rr := f+1, r+1; ff < 8 && rr < 8; ff, rr = ff+1, rr+1 {
			ne = ne.Set(types.SquareOf(types.File(ff), types.Rank(rr)))
		}
		for ff, rr := f-1, r+1; ff >= 0 && rr < 8; ff, rr = ff-1, rr+1 {
			nw = nw.Set(types.SquareOf(types.File(ff), types.Rank(rr)))
		}
		for ff, rr := f+1, r-1; ff < 8 && rr >= 0; ff, rr = ff+1, rr-1 {
			se = se.Set(types.SquareOf(types.File(ff), types.Rank(rr)))
		}
		for ff, rr := f-1, r-1; ff >= 0 && rr >= 0; ff, rr = ff-1, rr-1 {
			sw = sw.Set(types.SquareOf(types.File(ff), types.Rank(rr)))
		}
		Ray[NorthEast][sq] = ne
		Ray[NorthWest][sq] = nw
		Ray[SouthEast][sq] = se
		Ray[SouthWest][sq] = sw
	}
}

// knightDeltas are the eight (file, rank) jumps of a knight.
var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

func buildKnight() {
	for sq := types.SqA1; sq <= types.SqH8; sq++ {
		f, r := int(sq.FileOf()), int(sq.RankOf())
		var bb types.Bitboard
		for _, d := range knightDeltas {
			ff, rr := f+d[0], r+d[1]
			if ff >= 0 && ff < 8 && rr >= 0 && rr < 8 {
				bb = bb.Set(types.SquareOf(types.File(ff), types.Rank(rr)))
			}
		}
		Knight[sq] = bb
	}
}

var kingDeltas = [8][2]int{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

func buildKing() {
	for sq := types.SqA1; sq <= types.SqH8; sq++ {
		f, r := int(sq.FileOf()), int(sq.RankOf())
		var bb types.Bitboard
		for _, d := range kingDeltas {
			ff, rr := f+d[0], r+d[1]
			if ff >= 0 && ff < 8 && rr >= 0 && rr < 8 {
				bb = bb.Set(types.SquareOf(types.File(ff), types.Rank(rr)))
			}
		}
		King[sq] = bb
	}
}

// slideAttacks computes the reachable set of a sliding piece on sq along
// dir given the board's full occupancy, per spec §4.3: take the ray,
// intersect with occupancy to find blockers, then strip everything
// beyond the first blocker (lowest bit for a positive ray, highest bit
// for a negative ray) by XORing with that blocker's own ray; the blocker
// square itself stays in the result.
func slideAttacks(sq types.Square, dir Dir, occupied types.Bitboard) types.Bitboard {
	ray := Ray[dir][sq]
	blockers := ray & occupied
	if blockers.Empty() {
		return ray
	}
	var blocker types.Square
	switch dir {
	case North, NorthEast, East, NorthWest:
		blocker = blockers.LSB()
	default:
		blocker = blockers.MSB()
	}
	return ray ^ Ray[dir][blocker]
}

// RookAttacks returns the squares a rook on sq attacks given the current
// occupancy, not yet excluding the mover's own pieces.
func RookAttacks(sq types.Square, occupied types.Bitboard) types.Bitboard {
	return slideAttacks(sq, North, occupied) | slideAttacks(sq, South, occupied) |
		slideAttacks(sq, East, occupied) | slideAttacks(sq, West, occupied)
}

// BishopAttacks returns the squares a bishop on sq attacks given the
// current occupancy, not yet excluding the mover's own pieces.
func BishopAttacks(sq types.Square, occupied types.Bitboard) types.Bitboard {
	return slideAttacks(sq, NorthEast, occupied) | slideAttacks(sq, NorthWest, occupied) |
		slideAttacks(sq, SouthEast, occupied) | slideAttacks(sq, SouthWest, occupied)
}

// QueenAttacks is the union of rook and bishop attacks from sq.
func QueenAttacks(sq types.Square, occupied types.Bitboard) types.Bitboard {
	return RookAttacks(sq, occupied) | BishopAttacks(sq, occupied)
}

// PawnAttacks returns the two diagonal-forward squares a pawn of color c
// on sq attacks, masked against the a/h file edges so a pawn on the a-
// or h-file does not wrap around the board (spec §4.4, §4.6). Pawns
// never contribute their push squares to an attack set - only captures.
func PawnAttacks(c types.Color, sq types.Square) types.Bitboard {
	bb := types.Mask(sq)
	if c == types.White {
		return ((bb &^ types.FileABb) << 7) | ((bb &^ types.FileHBb) << 9)
	}
	return ((bb &^ types.FileHBb) >> 7) | ((bb &^ types.FileABb) >> 9)
}
