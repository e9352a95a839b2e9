package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/shared/constant"
	"frontdesk/shared/dto"
	"frontdesk/shared/logger"
	"reflect"
	"strings"

	"github.com/jmoiron/sqlx"
)

const (
	argLimit  = "limit"
	argOffset = "offset"
)

// Joined is implemented by models whose columns come from more than one table. The returned
// JOIN clauses are appended after the model's own table.
type Joined interface {
	GetJoinQuery() string
}

// Repository is a read-only query builder for T. Columns come from the `db`, `table` and
// `column` struct tags. The connection is resolved on every call, so a repository outlives
// connect and disconnect cycles.
type Repository[T any] struct {
	db            postgres.Provider
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	selectList    string
	join          string
	// sortable holds every qualified column; ORDER BY accepts nothing else.
	sortable map[string]struct{}
}

func NewRepository[T any](entityName, tableName, primaryColumn string, db postgres.Provider, otl otel.Otel) Repository[T] {
	var zero T

	columns := columnsOf(tableName, reflect.TypeOf(zero))
	selectList := make([]string, len(columns))
	sortable := make(map[string]struct{}, len(columns))

	for i, col := range columns {
		selectList[i] = col.selectExpr()
		sortable[col.qualified()] = struct{}{}
	}

	var join string
	if joined, ok := any(zero).(Joined); ok {
		join = joined.GetJoinQuery()
	}

	return Repository[T]{
		db:            db,
		otel:          otl,
		table:         tableName,
		entity:        entityName,
		primaryColumn: primaryColumn,
		selectList:    strings.Join(selectList, ", "),
		join:          join,
		sortable:      sortable,
	}
}

// Get returns the first row matching filter, or the zero T when nothing matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup) (T, error) {
	var model T

	where, args := whereClause(filter)
	query := repo.statement("SELECT "+repo.selectList, where)

	err := repo.run(ctx, "Get", query, func(ctx context.Context, stmt *sqlx.NamedStmt) error {
		err := stmt.GetContext(ctx, &model, args)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}

		return err //nolint:wrapcheck
	})

	return model, err
}

// GetAll lists rows matching filter. Pagination applies when params.Limit is set; ordering
// applies only to a known column.
func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup) ([]T, error) {
	where, args := whereClause(filter)
	clauses := []string{where, repo.orderBy(params)}

	if params.Limit > 0 {
		args[argLimit] = params.Limit
		clauses = append(clauses, "LIMIT :"+argLimit)

		if params.Page > 0 {
			args[argOffset] = params.Offset()
			clauses = append(clauses, "OFFSET :"+argOffset)
		}
	}

	query := repo.statement("SELECT "+repo.selectList, clauses...)

	models := []T{}

	err := repo.run(ctx, "GetAll", query, func(ctx context.Context, stmt *sqlx.NamedStmt) error {
		return stmt.SelectContext(ctx, &models, args) //nolint:wrapcheck
	})

	return models, err
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	var count int

	where, args := whereClause(filter)
	query := repo.statement(fmt.Sprintf("SELECT COUNT(%s.%s)", repo.table, repo.primaryColumn), where)

	err := repo.run(ctx, "Count", query, func(ctx context.Context, stmt *sqlx.NamedStmt) error {
		return stmt.GetContext(ctx, &count, args) //nolint:wrapcheck
	})

	return count, err
}

// run prepares query on the live connection and hands the statement to fn inside one span.
func (repo *Repository[T]) run(ctx context.Context, op, query string, fn func(context.Context, *sqlx.NamedStmt) error) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, op))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	db, err := repo.db.DB()
	if err != nil {
		return fmt.Errorf("no connection (%s): %w", repo.entity, err)
	}

	stmt, err := db.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to prepare statement (%s): %w", repo.entity, err)
	}
	defer stmt.Close()

	if err = fn(ctx, stmt); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to %s (%s): %w", strings.ToLower(op), repo.entity, err)
	}

	return nil
}

func (repo *Repository[T]) statement(head string, clauses ...string) string {
	parts := []string{head, "FROM", repo.table}
	if repo.join != constant.Empty {
		parts = append(parts, repo.join)
	}

	for _, clause := range clauses {
		if clause != constant.Empty {
			parts = append(parts, clause)
		}
	}

	return strings.Join(parts, " ")
}

func (repo *Repository[T]) orderBy(params dto.QueryParams) string {
	if _, ok := repo.sortable[params.SortBy]; !ok {
		return constant.Empty
	}

	dir := dto.SortDirAsc
	if params.SortDir == dto.SortDirDesc {
		dir = dto.SortDirDesc
	}

	return fmt.Sprintf("ORDER BY %s %s", params.SortBy, dir)
}

func whereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == constant.Empty {
		return where, map[string]any{}
	}

	return "WHERE " + where, args
}

type column struct {
	name  string
	table string
	alias string
}

func (c column) qualified() string {
	return c.table + "." + c.name
}

func (c column) selectExpr() string {
	if c.alias == constant.Empty {
		return c.qualified()
	}

	return fmt.Sprintf("%s AS %s", c.qualified(), c.alias)
}

func columnsOf(table string, reflectType reflect.Type) (columns []column) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, columnsOf(table, field.Type)...)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == constant.Empty || dbTag == "-" {
			continue
		}

		col := column{name: dbTag, table: field.Tag.Get("table")}
		if col.table == constant.Empty {
			col.table = table
		}

		if name := field.Tag.Get("column"); name != constant.Empty {
			col.name = name
			col.alias = dbTag
		}

		columns = append(columns, col)
	}

	return columns
}
