package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/visitor-service/internal/domain"
)

// VisitorFilter narrows visitor listings. Nil flags are not filtered on.
type VisitorFilter struct {
	CheckedIn *bool
	Invited   *bool
	Limit     int
	Offset    int
}

// VisitorRepository encapsulates visitor persistence.
type VisitorRepository interface {
	Create(ctx context.Context, visitor *domain.Visitor) error
	EmailExists(ctx context.Context, email string) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.Visitor, error)
	SetCheckedIn(ctx context.Context, id string, checkedIn bool) (*domain.Visitor, error)
	List(ctx context.Context, filter VisitorFilter) ([]domain.Visitor, error)
	Count(ctx context.Context, filter VisitorFilter) (int, error)
}

type visitorRepository struct {
	db DBTX
}

// NewVisitorRepository instantiates repository.
func NewVisitorRepository(db DBTX) VisitorRepository {
	return &visitorRepository{db: db}
}

const visitorColumns = `id, full_name, email, phone, address, company, purpose, visit_date, profile_image, checked_in, invited, created_by_staff, staff_admin_id, created_at, updated_at`

// Create inserts the visitor. Email uniqueness and the staff reference are
// enforced by the schema, so concurrent creates cannot both succeed.
func (r *visitorRepository) Create(ctx context.Context, visitor *domain.Visitor) error {
	const query = `
        INSERT INTO visitors (full_name, email, phone, address, company, purpose, visit_date, profile_image, checked_in, invited, created_by_staff, staff_admin_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		visitor.FullName,
		visitor.Email,
		visitor.Phone,
		visitor.Address,
		visitor.Company,
		visitor.Purpose,
		visitor.VisitDate,
		visitor.ProfileImage,
		visitor.CheckedIn,
		visitor.Invited,
		visitor.CreatedByStaff,
		visitor.StaffAdminID,
	).Scan(&visitor.ID, &visitor.CreatedAt, &visitor.UpdatedAt)
	return translatePgError(err)
}

// EmailExists reports whether a visitor already uses email, ignoring case.
func (r *visitorRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM visitors WHERE LOWER(email)=LOWER($1))`, email).Scan(&exists)
	if err != nil {
		return false, translatePgError(err)
	}
	return exists, nil
}

func (r *visitorRepository) GetByID(ctx context.Context, id string) (*domain.Visitor, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT `+visitorColumns+` FROM visitors WHERE id=$1`, id)
	return scanVisitor(row)
}

// SetCheckedIn is last-writer-wins; no version check is made.
func (r *visitorRepository) SetCheckedIn(ctx context.Context, id string, checkedIn bool) (*domain.Visitor, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	row := r.db.QueryRow(ctx, `
        UPDATE visitors SET checked_in=$1, updated_at=NOW()
        WHERE id=$2
        RETURNING `+visitorColumns, checkedIn, id)
	return scanVisitor(row)
}

func (r *visitorRepository) List(ctx context.Context, filter VisitorFilter) ([]domain.Visitor, error) {
	where, args := filter.where()
	limit := filter.Limit
	if limit <= 0 {
		limit = domain.VisitorPageSize
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM visitors%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		visitorColumns, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, translatePgError(err)
	}
	defer rows.Close()

	result := []domain.Visitor{}
	for rows.Next() {
		visitor, err := scanVisitor(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *visitor)
	}
	return result, translatePgError(rows.Err())
}

func (r *visitorRepository) Count(ctx context.Context, filter VisitorFilter) (int, error) {
	where, args := filter.where()
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM visitors`+where, args...).Scan(&count); err != nil {
		return 0, translatePgError(err)
	}
	return count, nil
}

func (f VisitorFilter) where() (string, []any) {
	args := []any{}
	clauses := []string{}
	if f.CheckedIn != nil {
		args = append(args, *f.CheckedIn)
		clauses = append(clauses, fmt.Sprintf("checked_in=$%d", len(args)))
	}
	if f.Invited != nil {
		args = append(args, *f.Invited)
		clauses = append(clauses, fmt.Sprintf("invited=$%d", len(args)))
	}
	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func scanVisitor(row pgx.Row) (*domain.Visitor, error) {
	var v domain.Visitor
	if err := row.Scan(
		&v.ID,
		&v.FullName,
		&v.Email,
		&v.Phone,
		&v.Address,
		&v.Company,
		&v.Purpose,
		&v.VisitDate,
		&v.ProfileImage,
		&v.CheckedIn,
		&v.Invited,
		&v.CreatedByStaff,
		&v.StaffAdminID,
		&v.CreatedAt,
		&v.UpdatedAt,
	); err != nil {
		return nil, translatePgError(err)
	}
	return &v, nil
}
