package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shivanand-hulikatti/conference-lodging/internal/model"
)

// EnrollmentRepository handles persistence for enrollments and their addresses.
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository constructs an EnrollmentRepository.
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// FindByUser returns the user's enrollment with its first address, if any.
func (r *EnrollmentRepository) FindByUser(ctx context.Context, userID string) (*model.Enrollment, error) {
	const query = `
SELECT e.id, e.user_id, e.name, e.cpf, e.birthday, e.phone, e.created_at,
       a.id, a.cep, a.street, a.city, a.state, a.number, a.neighborhood, a.address_detail
FROM enrollments e
LEFT JOIN LATERAL (
	SELECT id, cep, street, city, state, number, neighborhood, address_detail
	FROM addresses
	WHERE enrollment_id = e.id
	ORDER BY created_at ASC
	LIMIT 1
) a ON TRUE
WHERE e.user_id = $1`

	var (
		e    model.Enrollment
		addr struct {
			id, cep, street, city, state, number, neighborhood, detail *string
		}
	)
	err := conn(ctx, r.db).QueryRow(ctx, query, userID).Scan(
		&e.ID, &e.UserID, &e.Name, &e.CPF, &e.Birthday, &e.Phone, &e.CreatedAt,
		&addr.id, &addr.cep, &addr.street, &addr.city, &addr.state, &addr.number, &addr.neighborhood, &addr.detail,
	)
	if err != nil {
		return nil, translate(err, "enrollment not found", "find enrollment")
	}

	if addr.id != nil {
		e.Address = &model.Address{
			ID:            *addr.id,
			CEP:           deref(addr.cep),
			Street:        deref(addr.street),
			City:          deref(addr.city),
			State:         deref(addr.state),
			Number:        deref(addr.number),
			Neighborhood:  deref(addr.neighborhood),
			AddressDetail: deref(addr.detail),
		}
	}
	return &e, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
