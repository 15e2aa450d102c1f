package db

import (
	"strconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// Float converts a NUMERIC column value, treating NULL as zero.
func Float(n pgtype.Numeric) float64 {
	if !n.Valid {
		return 0
	}
	f, err := n.Float64Value()
	if err != nil {
		return 0
	}
	return f.Float64
}

// Numeric encodes v with two decimal places for NUMERIC(_, 2) columns.
func Numeric(v float64) pgtype.Numeric {
	var n pgtype.Numeric
	if err := n.Scan(strconv.FormatFloat(v, 'f', 2, 64)); err != nil {
		return pgtype.Numeric{}
	}
	return n
}
