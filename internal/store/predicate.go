package store

import (
	"fmt"
	"strings"
)

type Op int

const (
	Equal Op = iota
	LessThan
	Contains
	HasSuffix
)

func (o Op) String() string {
	switch o {
	case Equal:
		return "equal"
	case LessThan:
		return "less_than"
	case Contains:
		return "contains"
	case HasSuffix:
		return "has_suffix"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Predicate is a single-field filter translated to SQL.
type Predicate struct {
	Field string
	Op    Op
	Value any
}

func Eq(field string, value any) Predicate {
	return Predicate{Field: field, Op: Equal, Value: value}
}

func Lt(field string, value any) Predicate {
	return Predicate{Field: field, Op: LessThan, Value: value}
}

func Like(field, substring string) Predicate {
	return Predicate{Field: field, Op: Contains, Value: substring}
}

func Suffix(field, suffix string) Predicate {
	return Predicate{Field: field, Op: HasSuffix, Value: suffix}
}

// compile returns the WHERE clause (always using $1) and its argument.
// LIKE patterns are case-sensitive and the operand's wildcards are escaped.
func (p Predicate) compile() (string, any, error) {
	switch p.Op {
	case Equal:
		return p.Field + " = $1", p.Value, nil
	case LessThan:
		return p.Field + " < $1", p.Value, nil
	case Contains, HasSuffix:
		text, ok := p.Value.(string)
		if !ok {
			return "", nil, fmt.Errorf("%w: %s needs a string operand, got %T", ErrInvalidPredicate, p.Op, p.Value)
		}
		pattern := "%" + escapeLike(text)
		if p.Op == Contains {
			pattern += "%"
		}
		return p.Field + " LIKE $1", pattern, nil
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrInvalidPredicate, p.Op)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}
