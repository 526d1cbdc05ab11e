package controllers

import (
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
)

type scanner interface {
	Scan(dest ...any) error
}

// collectRows scans every row and closes rows. An error that ends the stream
// early is returned instead of a short slice.
func collectRows[T any](rows pgx.Rows, scan func(scanner) (T, error)) ([]T, error) {
	defer rows.Close()
	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// sqlBuilder accumulates WHERE conditions and SET assignments with
// positional arguments. Each "?" in an expression becomes the next $n.
type sqlBuilder struct {
	conds []string
	sets  []string
	args  []any
}

func (b *sqlBuilder) bind(expr string, args ...any) string {
	var out strings.Builder
	i := 0
	for _, r := range expr {
		if r == '?' && i < len(args) {
			b.args = append(b.args, args[i])
			out.WriteString("$" + strconv.Itoa(len(b.args)))
			i++
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}

func (b *sqlBuilder) where(expr string, args ...any) {
	b.conds = append(b.conds, b.bind(expr, args...))
}

func (b *sqlBuilder) set(col string, v any) {
	b.sets = append(b.sets, col+" = "+b.bind("?", v))
}

// arg appends a bare argument and returns its placeholder.
func (b *sqlBuilder) arg(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

func (b *sqlBuilder) whereSQL() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

func (b *sqlBuilder) setSQL() string {
	return strings.Join(b.sets, ", ")
}

func (b *sqlBuilder) page(skip, limit int) string {
	return " OFFSET " + b.arg(skip) + " LIMIT " + b.arg(limit)
}

// contains builds a case-insensitive substring pattern for ILIKE.
func contains(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}
