package database

// Package database contains a small builder for filtered list queries. FROM
// clauses and column lists are compile-time constants owned by the
// repositories; only order-by identifiers and condition fields are sanitized.

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// ConditionType is the SQL comparison applied by a Condition.
type ConditionType string

const (
	Equal              ConditionType = "="
	NotEqual           ConditionType = "!="
	GreaterThan        ConditionType = ">"
	LessThan           ConditionType = "<"
	LessThanOrEqual    ConditionType = "<="
	GreaterThanOrEqual ConditionType = ">="
	ILike              ConditionType = "ILIKE"
)

// Condition is one WHERE predicate. Field may be qualified ("a.status").
type Condition struct {
	Field string
	Type  ConditionType
	Value any
}

// Where builds a condition.
func Where(field string, condType ConditionType, value any) Condition {
	return Condition{Field: field, Type: condType, Value: value}
}

// ListQuery describes a filtered, ordered, paginated SELECT.
type ListQuery struct {
	// Select is the full "SELECT ... FROM ..." head, including any JOINs.
	// It must be a trusted constant, never user input.
	Select     string
	Conditions []Condition
	OrderBy    string // sanitized; empty disables ordering
	OrderDir   string // "asc" or "desc" (case-insensitive); anything else ignored
	Limit      int    // <= 0 disables LIMIT
	Offset     int    // <= 0 disables OFFSET
}

// Build renders the query text and positional arguments.
func (q ListQuery) Build() (string, []any) {
	var sb strings.Builder
	sb.WriteString(q.Select)

	args := make([]any, 0, len(q.Conditions)+2)
	param := 1

	if len(q.Conditions) > 0 {
		preds := make([]string, 0, len(q.Conditions))
		for _, cond := range q.Conditions {
			field := sanitizeQualified(cond.Field)
			if field == "" {
				continue
			}
			preds = append(preds, fmt.Sprintf("%s %s $%d", field, cond.Type, param))
			args = append(args, cond.Value)
			param++
		}
		if len(preds) > 0 {
			sb.WriteString(" WHERE ")
			sb.WriteString(strings.Join(preds, " AND "))
		}
	}

	if q.OrderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(sanitizeQualified(q.OrderBy))
		dir := strings.ToUpper(q.OrderDir)
		if dir == "ASC" || dir == "DESC" {
			sb.WriteString(" ")
			sb.WriteString(dir)
		}
	}

	if q.Limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", param))
		args = append(args, q.Limit)
		param++
	}
	if q.Offset > 0 {
		sb.WriteString(fmt.Sprintf(" OFFSET $%d", param))
		args = append(args, q.Offset)
	}

	return sb.String(), args
}

// sanitizeQualified quotes a possibly-qualified identifier ("table.column")
// part by part using pgx identifier sanitization.
func sanitizeQualified(ident string) string {
	ident = strings.TrimSpace(ident)
	if ident == "" {
		return ""
	}
	return pgx.Identifier(strings.Split(ident, ".")).Sanitize()
}
