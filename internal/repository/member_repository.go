package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/member-directory/internal/domain"
)

// MemberFilter captures directory and admin listing parameters.
type MemberFilter struct {
	Search     *string
	Department *string
	Language   *string
	Role       *domain.Role
	IsApproved *bool
}

// DepartmentCount is a per-department aggregate for dashboard stats.
type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

// LanguageCount is a per-language aggregate for dashboard stats.
type LanguageCount struct {
	Language string `json:"language"`
	Count    int    `json:"count"`
}

// DirectoryStats summarizes the membership for the admin dashboard.
type DirectoryStats struct {
	TotalMembers    int               `json:"totalMembers"`
	ApprovedMembers int               `json:"approvedMembers"`
	PendingMembers  int               `json:"pendingMembers"`
	DepartmentStats []DepartmentCount `json:"departmentStats"`
	LanguageStats   []LanguageCount   `json:"languageStats"`
}

// MemberRepository defines persistence access for member accounts.
type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	Update(ctx context.Context, member *domain.Member) error
	UpdatePhoto(ctx context.Context, id, photoURL, photoKey string) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	GetByEmail(ctx context.Context, email string) (*domain.Member, error)
	List(ctx context.Context, filter MemberFilter) ([]domain.Member, error)
	Stats(ctx context.Context) (*DirectoryStats, error)
}

type memberRepository struct {
	pool *pgxpool.Pool
}

// NewMemberRepository returns a Postgres-backed implementation.
func NewMemberRepository(pool *pgxpool.Pool) MemberRepository {
	return &memberRepository{pool: pool}
}

func (r *memberRepository) Create(ctx context.Context, member *domain.Member) error {
	const query = `
        INSERT INTO members (name, email, password_hash, phone, location, department,
            languages, bio, portfolio_links, profile_photo, photo_key, is_approved, role)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		member.Name,
		member.Email,
		member.PasswordHash,
		member.Phone,
		member.Location,
		member.Department,
		member.Languages,
		member.Bio,
		member.PortfolioLinks,
		member.ProfilePhoto,
		member.PhotoKey,
		member.IsApproved,
		member.Role,
	).Scan(&member.ID, &member.CreatedAt)
}

func (r *memberRepository) Update(ctx context.Context, member *domain.Member) error {
	const query = `
        UPDATE members SET name=$1, email=$2, password_hash=$3, phone=$4, location=$5,
            department=$6, languages=$7, bio=$8, portfolio_links=$9, profile_photo=$10,
            photo_key=$11, is_approved=$12, role=$13
        WHERE id=$14`

	cmd, err := r.pool.Exec(ctx, query,
		member.Name,
		member.Email,
		member.PasswordHash,
		member.Phone,
		member.Location,
		member.Department,
		member.Languages,
		member.Bio,
		member.PortfolioLinks,
		member.ProfilePhoto,
		member.PhotoKey,
		member.IsApproved,
		member.Role,
		member.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *memberRepository) UpdatePhoto(ctx context.Context, id, photoURL, photoKey string) error {
	const query = `UPDATE members SET profile_photo=$1, photo_key=$2 WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query, photoURL, photoKey, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *memberRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM members WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

const memberColumns = `id, name, email, password_hash, phone, location, department,
        languages, bio, portfolio_links, profile_photo, photo_key, is_approved, role, created_at`

func (r *memberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	query := fmt.Sprintf(`SELECT %s FROM members WHERE id=$1`, memberColumns)
	return r.fetchSingle(ctx, query, id)
}

func (r *memberRepository) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	query := fmt.Sprintf(`SELECT %s FROM members WHERE email=$1`, memberColumns)
	return r.fetchSingle(ctx, query, email)
}

func (r *memberRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Member, error) {
	var member domain.Member
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&member.ID,
		&member.Name,
		&member.Email,
		&member.PasswordHash,
		&member.Phone,
		&member.Location,
		&member.Department,
		&member.Languages,
		&member.Bio,
		&member.PortfolioLinks,
		&member.ProfilePhoto,
		&member.PhotoKey,
		&member.IsApproved,
		&member.Role,
		&member.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &member, nil
}

// List returns members matching the filter, newest first. The password hash
// column is never selected here.
func (r *memberRepository) List(ctx context.Context, filter MemberFilter) ([]domain.Member, error) {
	base := `SELECT id, name, email, phone, location, department, languages, bio,
                    portfolio_links, profile_photo, photo_key, is_approved, role, created_at
             FROM members`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Role != nil {
		args = append(args, *filter.Role)
		clauses = append(clauses, fmt.Sprintf("role=$%d", len(args)))
	}
	if filter.IsApproved != nil {
		args = append(args, *filter.IsApproved)
		clauses = append(clauses, fmt.Sprintf("is_approved=$%d", len(args)))
	}
	if filter.Department != nil && *filter.Department != "" {
		args = append(args, *filter.Department)
		clauses = append(clauses, fmt.Sprintf("department=$%d", len(args)))
	}
	if filter.Language != nil && *filter.Language != "" {
		args = append(args, *filter.Language)
		clauses = append(clauses, fmt.Sprintf("$%d = ANY(languages)", len(args)))
	}
	if filter.Search != nil && strings.TrimSpace(*filter.Search) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.Search)) + "%"
		args = append(args, search)
		clauses = append(clauses, fmt.Sprintf("LOWER(name) LIKE $%d", len(args)))
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY created_at DESC`, base, strings.Join(clauses, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMembers(rows)
}

func scanMembers(rows pgx.Rows) ([]domain.Member, error) {
	var result []domain.Member
	for rows.Next() {
		var member domain.Member
		if err := rows.Scan(
			&member.ID,
			&member.Name,
			&member.Email,
			&member.Phone,
			&member.Location,
			&member.Department,
			&member.Languages,
			&member.Bio,
			&member.PortfolioLinks,
			&member.ProfilePhoto,
			&member.PhotoKey,
			&member.IsApproved,
			&member.Role,
			&member.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, member)
	}
	return result, rows.Err()
}

func (r *memberRepository) Stats(ctx context.Context) (*DirectoryStats, error) {
	stats := &DirectoryStats{
		DepartmentStats: []DepartmentCount{},
		LanguageStats:   []LanguageCount{},
	}

	const countsQuery = `
        SELECT COUNT(*),
               COUNT(*) FILTER (WHERE is_approved),
               COUNT(*) FILTER (WHERE NOT is_approved)
        FROM members WHERE role='member'`
	if err := r.pool.QueryRow(ctx, countsQuery).Scan(
		&stats.TotalMembers,
		&stats.ApprovedMembers,
		&stats.PendingMembers,
	); err != nil {
		return nil, err
	}

	const deptQuery = `
        SELECT department, COUNT(*) FROM members
        WHERE role='member' AND is_approved
        GROUP BY department ORDER BY COUNT(*) DESC`
	rows, err := r.pool.Query(ctx, deptQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var dc DepartmentCount
		if err := rows.Scan(&dc.Department, &dc.Count); err != nil {
			return nil, err
		}
		stats.DepartmentStats = append(stats.DepartmentStats, dc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const langQuery = `
        SELECT lang, COUNT(*) FROM members, unnest(languages) AS lang
        WHERE role='member' AND is_approved
        GROUP BY lang ORDER BY COUNT(*) DESC`
	langRows, err := r.pool.Query(ctx, langQuery)
	if err != nil {
		return nil, err
	}
	defer langRows.Close()
	for langRows.Next() {
		var lc LanguageCount
		if err := langRows.Scan(&lc.Language, &lc.Count); err != nil {
			return nil, err
		}
		stats.LanguageStats = append(stats.LanguageStats, lc)
	}
	return stats, langRows.Err()
}
