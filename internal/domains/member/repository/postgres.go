package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"garden-members-backend/internal/domains/member"
)

const memberColumns = `id, name, contact, membership_class, join_date, expiry_date, source, note, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) member.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) CreateMember(ctx context.Context, m *member.Member) error {
	query := `INSERT INTO members (name, contact, membership_class, join_date, expiry_date, source, note)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		m.Name, m.Contact, m.MembershipClass, m.JoinDate, m.ExpiryDate, m.Source, m.Note).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetMemberByID(ctx context.Context, id int64) (*member.Member, error) {
	query := fmt.Sprintf(`SELECT %s FROM members WHERE id = $1`, memberColumns)

	var m member.Member
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Name, &m.Contact, &m.MembershipClass, &m.JoinDate,
		&m.ExpiryDate, &m.Source, &m.Note, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, member.ErrMemberNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return &m, nil
}

// buildFilterClauses translates the optional criteria into WHERE clauses.
// Every criterion is ANDed; the free text query ORs across the four text
// fields. Absent criteria contribute nothing.
func buildFilterClauses(f member.ListFilter) ([]string, []interface{}) {
	where := []string{}
	args := []interface{}{}
	idx := 1

	if f.Query != "" {
		where = append(where, fmt.Sprintf(
			"(name ILIKE $%d OR contact ILIKE $%d OR source ILIKE $%d OR note ILIKE $%d)",
			idx, idx, idx, idx))
		args = append(args, "%"+f.Query+"%")
		idx++
	}
	if f.MembershipClass != "" {
		where = append(where, fmt.Sprintf("membership_class = $%d", idx))
		args = append(args, f.MembershipClass)
		idx++
	}

	switch f.ExpiryState {
	case member.StateActive:
		where = append(where, fmt.Sprintf("(expiry_date IS NULL OR expiry_date >= $%d)", idx))
		args = append(args, f.Today)
		idx++
	case member.StateExpired:
		where = append(where, fmt.Sprintf("(expiry_date IS NOT NULL AND expiry_date < $%d)", idx))
		args = append(args, f.Today)
		idx++
	}

	if f.JoinFrom != nil {
		where = append(where, fmt.Sprintf("join_date >= $%d", idx))
		args = append(args, *f.JoinFrom)
		idx++
	}
	if f.JoinTo != nil {
		where = append(where, fmt.Sprintf("join_date <= $%d", idx))
		args = append(args, *f.JoinTo)
		idx++
	}
	// A NULL expiry never satisfies a range bound, so expiry-less members
	// drop out of any exp-range query without an extra clause.
	if f.ExpFrom != nil {
		where = append(where, fmt.Sprintf("expiry_date >= $%d", idx))
		args = append(args, *f.ExpFrom)
		idx++
	}
	if f.ExpTo != nil {
		where = append(where, fmt.Sprintf("expiry_date <= $%d", idx))
		args = append(args, *f.ExpTo)
		idx++
	}

	return where, args
}

func (r *postgresRepository) ListMembers(ctx context.Context, filter member.ListFilter, order member.SortOrder) ([]member.Member, error) {
	where, args := buildFilterClauses(filter)

	query := fmt.Sprintf(`SELECT %s FROM members`, memberColumns)
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY " + string(order)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var result []member.Member
	for rows.Next() {
		var m member.Member
		err := rows.Scan(
			&m.ID, &m.Name, &m.Contact, &m.MembershipClass, &m.JoinDate,
			&m.ExpiryDate, &m.Source, &m.Note, &m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read members: %w", err)
	}
	return result, nil
}

func (r *postgresRepository) DeleteMember(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	if result.RowsAffected() == 0 {
		return member.ErrMemberNotFound
	}
	return nil
}
