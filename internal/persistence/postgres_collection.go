package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/restaurant-service/internal/domain"
)

// PostgresCollection stores documents in a (id, doc JSONB) table.
type PostgresCollection struct {
	pool  *pgxpool.Pool
	name  string
	table string
}

func (c *PostgresCollection) Name() string { return c.name }

func (c *PostgresCollection) Find(ctx context.Context, q Query) ([]domain.Document, error) {
	where, args := sqlWhere(q.Conditions)
	query := fmt.Sprintf(`SELECT id, doc FROM %s WHERE %s`, c.table, where)

	if q.Sort != nil {
		args = append(args, jsonPath(q.Sort.Field))
		// jsonb ordering compares numbers numerically; missing fields are NULL.
		if q.Sort.Descending {
			query += fmt.Sprintf(` ORDER BY doc #> $%d::text[] DESC NULLS LAST, created_at`, len(args))
		} else {
			query += fmt.Sprintf(` ORDER BY doc #> $%d::text[] ASC NULLS FIRST, created_at`, len(args))
		}
	} else {
		query += ` ORDER BY created_at`
	}
	if q.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, q.Limit)
	}
	if q.Skip > 0 {
		query += fmt.Sprintf(` OFFSET %d`, q.Skip)
	}

	rows, err := c.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", c.name, err)
	}
	defer rows.Close()

	docs := []domain.Document{}
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", c.name, err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (c *PostgresCollection) FindByID(ctx context.Context, id string) (domain.Document, error) {
	query := fmt.Sprintf(`SELECT id, doc FROM %s WHERE id=$1`, c.table)
	doc, err := scanDocument(c.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find %s/%s: %w", c.name, id, err)
	}
	return doc, nil
}

func (c *PostgresCollection) Count(ctx context.Context, conds ...Condition) (int64, error) {
	where, args := sqlWhere(conds)
	var n int64
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s`, c.table, where)
	if err := c.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", c.name, err)
	}
	return n, nil
}

func (c *PostgresCollection) Insert(ctx context.Context, doc domain.Document) (*InsertResult, error) {
	id := uuid.NewString()
	query := fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES ($1, $2::jsonb)`, c.table)
	if _, err := c.pool.Exec(ctx, query, id, doc.Without(domain.FieldID)); err != nil {
		return nil, fmt.Errorf("insert %s: %w", c.name, err)
	}
	return &InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func (c *PostgresCollection) UpsertFields(ctx context.Context, id string, fields domain.Document) (*UpdateResult, error) {
	// xmax is zero only for freshly inserted rows.
	query := fmt.Sprintf(`
        INSERT INTO %[1]s (id, doc) VALUES ($1, $2::jsonb)
        ON CONFLICT (id) DO UPDATE SET doc = %[1]s.doc || EXCLUDED.doc
        RETURNING (xmax = 0)`, c.table)

	var inserted bool
	if err := c.pool.QueryRow(ctx, query, id, fields.Without(domain.FieldID)).Scan(&inserted); err != nil {
		return nil, fmt.Errorf("upsert %s/%s: %w", c.name, id, err)
	}
	if inserted {
		upserted := id
		return &UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: &upserted}, nil
	}
	return &UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (c *PostgresCollection) Increment(ctx context.Context, id, field string, delta int) (*UpdateResult, error) {
	query := fmt.Sprintf(`
        UPDATE %s
        SET doc = jsonb_set(doc, $2::text[], to_jsonb(COALESCE((doc #>> $2::text[])::numeric, 0) + $3::int), true)
        WHERE id=$1`, c.table)
	cmd, err := c.pool.Exec(ctx, query, id, jsonPath(field), delta)
	if err != nil {
		return nil, fmt.Errorf("increment %s/%s: %w", c.name, id, err)
	}
	n := cmd.RowsAffected()
	return &UpdateResult{Acknowledged: true, MatchedCount: n, ModifiedCount: n}, nil
}

func (c *PostgresCollection) Delete(ctx context.Context, id string) (*DeleteResult, error) {
	cmd, err := c.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id=$1`, c.table), id)
	if err != nil {
		return nil, fmt.Errorf("delete %s/%s: %w", c.name, id, err)
	}
	return &DeleteResult{Acknowledged: true, DeletedCount: cmd.RowsAffected()}, nil
}

func scanDocument(row pgx.Row) (domain.Document, error) {
	var (
		id  string
		doc domain.Document
	)
	if err := row.Scan(&id, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = domain.Document{}
	}
	doc[domain.FieldID] = id
	return doc, nil
}

func sqlWhere(conds []Condition) (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}
	for _, cond := range conds {
		args = append(args, jsonPath(cond.Field))
		path := fmt.Sprintf("$%d::text[]", len(args))
		// Only string values match, as in the other backends.
		typed := fmt.Sprintf("jsonb_typeof(doc #> %s) = 'string'", path)
		switch cond.Op {
		case OpEquals:
			args = append(args, cond.Value)
			clauses = append(clauses, fmt.Sprintf("(%s AND doc #>> %s = $%d)", typed, path, len(args)))
		case OpContains:
			args = append(args, "%"+escapeLike(cond.Value)+"%")
			clauses = append(clauses, fmt.Sprintf("(%s AND doc #>> %s ILIKE $%d)", typed, path, len(args)))
		}
	}
	return strings.Join(clauses, " AND "), args
}

func jsonPath(field string) []string {
	return strings.Split(field, ".")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
