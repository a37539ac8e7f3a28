package repository

import (
	"context"

	"github.com/spec-kit/visitor-service/internal/domain"
)

// StaffRepository handles persistence for staff accounts.
type StaffRepository interface {
	Create(ctx context.Context, staff *domain.Staff) error
	GetByID(ctx context.Context, id string) (*domain.Staff, error)
	GetByEmail(ctx context.Context, email string) (*domain.Staff, error)
}

type staffRepository struct {
	db DBTX
}

// NewStaffRepository instantiates the repository.
func NewStaffRepository(db DBTX) StaffRepository {
	return &staffRepository{db: db}
}

const staffColumns = `id, full_name, email, password_hash, phone, address, employer_id, department, dob, gender, profile_image, created_at, updated_at`

func (r *staffRepository) Create(ctx context.Context, staff *domain.Staff) error {
	const query = `
        INSERT INTO staff (full_name, email, password_hash, phone, address, employer_id, department, dob, gender, profile_image)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		staff.FullName,
		staff.Email,
		staff.PasswordHash,
		staff.Phone,
		staff.Address,
		staff.EmployerID,
		staff.Department,
		staff.DOB,
		staff.Gender,
		staff.ProfileImage,
	).Scan(&staff.ID, &staff.CreatedAt, &staff.UpdatedAt)
	return translatePgError(err)
}

func (r *staffRepository) GetByID(ctx context.Context, id string) (*domain.Staff, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	return r.getOne(ctx, `SELECT `+staffColumns+` FROM staff WHERE id=$1`, id)
}

func (r *staffRepository) GetByEmail(ctx context.Context, email string) (*domain.Staff, error) {
	return r.getOne(ctx, `SELECT `+staffColumns+` FROM staff WHERE LOWER(email)=LOWER($1)`, email)
}

func (r *staffRepository) getOne(ctx context.Context, query string, arg string) (*domain.Staff, error) {
	var staff domain.Staff
	if err := r.db.QueryRow(ctx, query, arg).Scan(
		&staff.ID,
		&staff.FullName,
		&staff.Email,
		&staff.PasswordHash,
		&staff.Phone,
		&staff.Address,
		&staff.EmployerID,
		&staff.Department,
		&staff.DOB,
		&staff.Gender,
		&staff.ProfileImage,
		&staff.CreatedAt,
		&staff.UpdatedAt,
	); err != nil {
		return nil, translatePgError(err)
	}
	return &staff, nil
}
