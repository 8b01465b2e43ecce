package store

import "fmt"

type Direction int

const (
	Ascending Direction = iota + 1
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

func (d Direction) sql() (string, error) {
	switch d {
	case Ascending:
		return "ASC", nil
	case Descending:
		return "DESC", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidDirection, d)
	}
}
