package board

import (
	"strings"

	"github.com/pkg/errors"
)

// FENStartPos is the standard starting position in Forsyth-Edwards
// notation.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var runeToPiece = map[rune]Piece{
	'P': MakePiece(White, Pawn),
	'N': MakePiece(White, Knight),
	'B': MakePiece(White, Bishop),
	'R': MakePiece(White, Rook),
	'Q': MakePiece(White, Queen),
	'K': MakePiece(White, King),
	'p': MakePiece(Black, Pawn),
	'n': MakePiece(Black, Knight),
	'b': MakePiece(Black, Bishop),
	'r': MakePiece(Black, Rook),
	'q': MakePiece(Black, Queen),
	'k': MakePiece(Black, King),
}

var pieceToRune = map[Piece]rune{
	MakePiece(White, Pawn):   'P',
	MakePiece(White, Knight): 'N',
	MakePiece(White, Bishop): 'B',
	MakePiece(White, Rook):   'R',
	MakePiece(White, Queen):  'Q',
	MakePiece(White, King):   'K',
	MakePiece(Black, Pawn):   'p',
	MakePiece(Black, Knight): 'n',
	MakePiece(Black, Bishop): 'b',
	MakePiece(Black, Rook):   'r',
	MakePiece(Black, Queen):  'q',
	MakePiece(Black, King):   'k',
}

// ParseFEN reads the first four FEN fields into a Position plus the side
// to move. The halfmove and fullmove counters are accepted but dropped;
// the position tracks neither clock.
func ParseFEN(fen string) (*Position, Color, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return nil, White, errors.Errorf("fen %q: want at least 4 fields, got %d", fen, len(fields))
	}

	pos := Empty()
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, White, errors.Errorf("fen %q: want 8 ranks, got %d", fen, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, r := range rankStr {
			switch {
			case r >= '1' && r <= '8':
				file += int(r - '0')
			default:
				pc, ok := runeToPiece[r]
				if !ok {
					return nil, White, errors.Errorf("fen %q: bad piece letter %q", fen, r)
				}
				if file > 7 {
					return nil, White, errors.Errorf("fen %q: rank %d overflows", fen, rank+1)
				}
				pos.Set(SquareAt(file, rank), pc)
				file++
			}
		}
		if file != 8 {
			return nil, White, errors.Errorf("fen %q: rank %d has %d files", fen, rank+1, file)
		}
	}

	var side Color
	switch fields[1] {
	case "w":
		side = White
	case "b":
		side = Black
	default:
		return nil, White, errors.Errorf("fen %q: bad side to move %q", fen, fields[1])
	}

	var wk, wq, bk, bq bool
	if fields[2] != "-" {
		for _, r := range fields[2] {
			switch r {
			case 'K':
				wk = true
			case 'Q':
				wq = true
			case 'k':
				bk = true
			case 'q':
				bq = true
			default:
				return nil, White, errors.Errorf("fen %q: bad castling letter %q", fen, r)
			}
		}
	}
	pos.setCastlingRights(wk, wq, bk, bq)

	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, White, errors.Wrapf(err, "fen %q: en passant", fen)
		}
		pos.epTarget = sq
	}

	return &pos, side, nil
}

// FEN renders the position with the given side to move. The halfmove and
// fullmove fields come out as "0 1" since the position keeps no clocks.
func (p *Position) FEN(sideToMove Color) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pc := p.squares[SquareAt(file, rank)]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToRune[pc])
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	if sideToMove == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	rights := ""
	if p.CanCastle(White, true) {
		rights += "K"
	}
	if p.CanCastle(White, false) {
		rights += "Q"
	}
	if p.CanCastle(Black, true) {
		rights += "k"
	}
	if p.CanCastle(Black, false) {
		rights += "q"
	}
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(rights)

	sb.WriteByte(' ')
	sb.WriteString(p.epTarget.String())
	sb.WriteString(" 0 1")
	return sb.String()
}
