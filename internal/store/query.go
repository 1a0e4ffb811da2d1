package store

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNoRows is returned by Single when nothing matches.
	ErrNoRows = errors.New("no rows matched")
	// ErrMultipleRows is returned by Single when more than one row matches.
	ErrMultipleRows = errors.New("multiple rows matched")
	// ErrInvalidQuery is returned before any I/O when a query is malformed
	// (unknown operator, bad identifier, empty IN list, negative paging).
	ErrInvalidQuery = errors.New("invalid query")
)

// Op is a filter comparison operator.
type Op string

const (
	OpEq  Op = "eq"
	OpNeq Op = "neq"
	OpGt  Op = "gt"
	OpGte Op = "gte"
	OpLt  Op = "lt"
	OpLte Op = "lte"
	OpIn  Op = "in"
)

var opSQL = map[Op]string{
	OpEq:  "=",
	OpNeq: "<>",
	OpGt:  ">",
	OpGte: ">=",
	OpLt:  "<",
	OpLte: "<=",
	OpIn:  "IN",
}

// Filter restricts rows by comparing Column with Value.
type Filter struct {
	Column string
	Op     Op
	Value  any
}

// Order sorts by Column.
type Order struct {
	Column string
	Desc   bool
}

// Query describes a read against a single table.
//
// Columns projects fields (empty selects all). Limit <= 0 means no limit.
type Query struct {
	Table   string
	Columns []string
	Filters []Filter
	Orders  []Order
	Limit   int
	Offset  int
}

// Helpers to build filters.
func Eq(col string, v any) Filter  { return Filter{Column: col, Op: OpEq, Value: v} }
func Neq(col string, v any) Filter { return Filter{Column: col, Op: OpNeq, Value: v} }
func Gt(col string, v any) Filter  { return Filter{Column: col, Op: OpGt, Value: v} }
func Gte(col string, v any) Filter { return Filter{Column: col, Op: OpGte, Value: v} }
func Lt(col string, v any) Filter  { return Filter{Column: col, Op: OpLt, Value: v} }
func Lte(col string, v any) Filter { return Filter{Column: col, Op: OpLte, Value: v} }
func In(col string, vs []string) Filter {
	return Filter{Column: col, Op: OpIn, Value: vs}
}

// Asc and Desc build orderings.
func Asc(col string) Order  { return Order{Column: col} }
func Desc(col string) Order { return Order{Column: col, Desc: true} }

// identRE accepts plain snake_case identifiers; anything else would need
// quoting and is rejected.
var identRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}$`)

// Validate checks identifiers, operators and paging.
func (q Query) Validate() error {
	if !identRE.MatchString(q.Table) {
		return fmt.Errorf("%w: table %q", ErrInvalidQuery, q.Table)
	}
	for _, c := range q.Columns {
		if !identRE.MatchString(c) {
			return fmt.Errorf("%w: column %q", ErrInvalidQuery, c)
		}
	}
	for _, f := range q.Filters {
		if !identRE.MatchString(f.Column) {
			return fmt.Errorf("%w: filter column %q", ErrInvalidQuery, f.Column)
		}
		if _, ok := opSQL[f.Op]; !ok {
			return fmt.Errorf("%w: operator %q", ErrInvalidQuery, f.Op)
		}
		if f.Op == OpIn {
			vs, ok := f.Value.([]string)
			if !ok || len(vs) == 0 {
				return fmt.Errorf("%w: IN on %q needs a non-empty []string", ErrInvalidQuery, f.Column)
			}
		}
	}
	for _, o := range q.Orders {
		if !identRE.MatchString(o.Column) {
			return fmt.Errorf("%w: order column %q", ErrInvalidQuery, o.Column)
		}
	}
	if q.Offset < 0 {
		return fmt.Errorf("%w: negative offset", ErrInvalidQuery)
	}
	return nil
}

// apply composes q onto a GORM statement. q must be valid.
func (q Query) apply(db *gorm.DB) *gorm.DB {
	tx := db.Table(q.Table)
	if len(q.Columns) > 0 {
		tx = tx.Select(q.Columns)
	}
	for _, f := range q.Filters {
		if f.Op == OpIn {
			tx = tx.Where(f.Column+" IN ?", f.Value)
			continue
		}
		tx = tx.Where(f.Column+" "+opSQL[f.Op]+" ?", f.Value)
	}
	for _, o := range q.Orders {
		dir := "asc"
		if o.Desc {
			dir = "desc"
		}
		tx = tx.Order(o.Column + " " + dir)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	if q.Offset > 0 {
		tx = tx.Offset(q.Offset)
	}
	return tx
}

// String renders q for logs.
func (q Query) String() string {
	var b strings.Builder
	b.WriteString(q.Table)
	for _, f := range q.Filters {
		fmt.Fprintf(&b, " %s.%s=%v", f.Column, f.Op, f.Value)
	}
	if q.Limit > 0 {
		fmt.Fprintf(&b, " limit=%d", q.Limit)
	}
	if q.Offset > 0 {
		fmt.Fprintf(&b, " offset=%d", q.Offset)
	}
	return b.String()
}
