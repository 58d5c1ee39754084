package catalogrepo

import (
	"context"
	"errors"
	"strings"

	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// SQLSTATE class for connection exceptions.
const pgConnectionExceptionClass = "08"

// GormCatalogRepository implements the UserResolver, ProductCatalog, and
// ZoneResolver ports over one GORM connection. All lookups are reads
// outside any unit of work.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// ResolveUser returns the user with the given id.
func (r *GormCatalogRepository) ResolveUser(ctx context.Context, id kernel.UUID) (account.User, error) {
	if err := id.Validate(); err != nil {
		return account.User{}, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account.User{}, errs.NewObjectNotFoundError("user", id.String())
		}
		return account.User{}, storeError("resolve user", err)
	}

	return userToDomain(dto)
}

// ResolveProductsByIDs returns the active products among the given ids.
// Missing or inactive ids are simply absent from the result.
func (r *GormCatalogRepository) ResolveProductsByIDs(
	ctx context.Context, ids []kernel.UUID,
) ([]catalog.Product, error) {
	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []ProductDTO
	err := r.db.WithContext(ctx).Find(&dtos, "id IN ? AND active = true", rawIDs).Error
	if err != nil {
		return nil, storeError("resolve products", err)
	}

	products := make([]catalog.Product, 0, len(dtos))
	for _, dto := range dtos {
		product, productErr := productToDomain(dto)
		if productErr != nil {
			return nil, productErr
		}
		products = append(products, product)
	}

	return products, nil
}

// ResolveZone returns the zone with the given id.
func (r *GormCatalogRepository) ResolveZone(ctx context.Context, id kernel.UUID) (catalog.Zone, error) {
	if err := id.Validate(); err != nil {
		return catalog.Zone{}, err
	}

	var dto ZoneDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Zone{}, errs.NewObjectNotFoundError("zone", id.String())
		}
		return catalog.Zone{}, storeError("resolve zone", err)
	}

	return zoneToDomain(dto)
}

// storeError classifies low-level database failures. Timeouts, canceled
// contexts, and lost connections become TransientError so callers know a
// retry may succeed; everything else passes through unchanged.
func storeError(operation string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errs.NewTransientError(operation, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, pgConnectionExceptionClass) {
		return errs.NewTransientError(operation, err)
	}

	return err
}
