package board

import "github.com/pkg/errors"

// Move is a half-move: source square, destination square, and the kind a
// pawn promotes to when it reaches the last rank. The generator expands
// a promoting push or capture into four moves, one per kind; Promotion
// is NoPieceType on every other move, and ApplyMove turns an unspecified
// promotion into a Queen. Moves are comparable, equality is structural.
type Move struct {
	From      Square
	To        Square
	Promotion PieceType
}

var promotionLetters = map[PieceType]byte{
	Knight: 'n',
	Bishop: 'b',
	Rook:   'r',
	Queen:  'q',
}

// String renders the move in coordinate form: "e2e4", "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if l, ok := promotionLetters[m.Promotion]; ok {
		s += string(l)
	}
	return s
}

// ParseSquare reads an algebraic square name such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, errors.Errorf("square %q: want two characters", s)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, errors.Errorf("square %q: out of range", s)
	}
	return SquareAt(int(file-'a'), int(rank-'1')), nil
}

// ParseMove reads coordinate notation, four characters plus an optional
// promotion letter: "e2e4", "a7a8n".
func ParseMove(s string) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return Move{}, errors.Errorf("move %q: want 4 or 5 characters", s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, errors.Wrapf(err, "move %q", s)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, errors.Wrapf(err, "move %q", s)
	}
	mv := Move{From: from, To: to}
	if len(s) == 5 {
		switch s[4] {
		case 'n':
			mv.Promotion = Knight
		case 'b':
			mv.Promotion = Bishop
		case 'r':
			mv.Promotion = Rook
		case 'q':
			mv.Promotion = Queen
		default:
			return Move{}, errors.Errorf("move %q: unknown promotion %q", s, s[4])
		}
	}
	return mv, nil
}
