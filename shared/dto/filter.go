package dto

import (
	"fmt"
	"maps"
	"strings"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterPlainQuery        = "plan"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

var comparisons = map[string]string{
	FilterOperatorEq:        "=",
	FilterOperatorLessEq:    "<=",
	FilterOperatorGreaterEq: ">=",
}

// Filter is one condition of a WHERE clause. Values always travel as named arguments.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq less_eq greater_eq plan"`
	Table    string
	// Args carries named arguments referenced by a plain query.
	Args map[string]any
}

func Eq(table, field string, value any) Filter {
	return Filter{Table: table, Field: field, Value: value, Operator: FilterOperatorEq}
}

// GreaterEq compares against the named argument arg, so two bounds on one column stay distinct.
func GreaterEq(table, field, arg string, value any) Filter {
	return Filter{Table: table, Field: field, ArgName: arg, Value: value, Operator: FilterOperatorGreaterEq}
}

func LessEq(table, field, arg string, value any) Filter {
	return Filter{Table: table, Field: field, ArgName: arg, Value: value, Operator: FilterOperatorLessEq}
}

// Plain embeds a hand-written condition. It must reference its values through args only.
func Plain(query string, args map[string]any) Filter {
	return Filter{Value: query, Operator: FilterPlainQuery, Args: args}
}

func (f *Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

func (f *Filter) argName() string {
	if f.ArgName == "" {
		return f.Field
	}

	return f.ArgName
}

func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}

	if op, ok := comparisons[f.Operator]; ok {
		args[f.argName()] = f.Value

		return fmt.Sprintf("%s %s :%s", f.column(), op, f.argName()), args
	}

	if f.Operator != FilterPlainQuery {
		return "", args
	}

	query, _ := f.Value.(string)
	maps.Copy(args, f.Args)

	return fmt.Sprintf("(%s)", query), args
}

// FilterGroup joins filters and nested groups with one operator, AND when unset.
type FilterGroup struct {
	Filters  []any
	Operator string
}

func And(filters ...any) FilterGroup {
	return FilterGroup{Operator: FilterGroupOperatorAnd, Filters: filters}
}

func (f *FilterGroup) Add(filters ...any) {
	f.Filters = append(f.Filters, filters...)
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	operator := f.Operator
	if operator == "" {
		operator = FilterGroupOperatorAnd
	}

	args := map[string]any{}
	clauses := make([]string, 0, len(f.Filters))

	for _, filter := range f.Filters {
		var (
			where string
			arg   map[string]any
		)

		switch fill := filter.(type) {
		case Filter:
			where, arg = fill.GetWhereClause()
		case FilterGroup:
			where, arg = fill.GetWhereClause()
		default:
			continue
		}

		if where == "" {
			continue
		}

		clauses = append(clauses, where)
		maps.Copy(args, arg)
	}

	if len(clauses) == 0 {
		return "", args
	}

	return fmt.Sprintf("(%s)", strings.Join(clauses, " "+operator+" ")), args
}
