package rentals

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/JaimeStill/attest/internal/party"
	"github.com/JaimeStill/attest/pkg/cache"
	"github.com/JaimeStill/attest/pkg/faults"
	"github.com/JaimeStill/attest/pkg/pagination"
	"github.com/JaimeStill/attest/pkg/query"
	"github.com/JaimeStill/attest/pkg/repository"
	"github.com/JaimeStill/attest/pkg/validation"
)

type repo struct {
	db         *sql.DB
	cache      cache.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a rental history repository implementing the System interface.
func New(db *sql.DB, cache cache.System, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		cache:      cache,
		logger:     logger.With("system", "rentals"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[History], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort...).
		WhereSearch(page.Search, "PropertyAddress", "TenantName", "LandlordName")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count rental histories: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanHistory)
	if err != nil {
		return nil, fmt.Errorf("query rental histories: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*History, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	h, err := repository.QueryOne(ctx, r.db, q, args, scanHistory)
	if err != nil {
		return nil, repository.MapError(err, faults.NotFound(entity, id.String()), nil)
	}
	return &h, nil
}

func (r *repo) ByLandlord(ctx context.Context, landlordID uuid.UUID) ([]History, error) {
	return r.byParty(ctx, "LandlordID", landlordID)
}

func (r *repo) ByTenant(ctx context.Context, tenantID uuid.UUID) ([]History, error) {
	return r.byParty(ctx, "TenantID", tenantID)
}

func (r *repo) byParty(ctx context.Context, field string, id uuid.UUID) ([]History, error) {
	q, args := query.
		NewBuilder(projection, defaultSort...).
		WhereEquals(field, id).
		Build()

	items, err := repository.QueryMany(ctx, r.db, q, args, scanHistory)
	if err != nil {
		return nil, fmt.Errorf("query rental histories by %s: %w", field, err)
	}
	return items, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*History, error) {
	if err := validation.Struct(cmd); err != nil {
		return nil, faults.InvalidInput(entity, "", err.Error())
	}
	if cmd.RentAmount.IsNegative() {
		return nil, faults.InvalidInput(entity, "", "rent_amount must not be negative")
	}
	if cmd.LeaseEndDate != nil && cmd.LeaseEndDate.Before(cmd.LeaseStartDate.Time) {
		return nil, faults.InvalidInput(entity, "", "lease_end_date must not precede lease_start_date")
	}

	insert := `
		INSERT INTO rental_histories(
			tenant_id, landlord_id, property_address, lease_start_date, lease_end_date,
			rent_amount, deposit_amount, security_deposit_returned, deposit_deduction_reason,
			on_time_payments, late_payments_count, property_damage, damage_description,
			had_disputes, dispute_description, eviction_filed, eviction_reason,
			landlord_responsiveness_rating, landlord_fairness_rating,
			tenant_cleanliness_rating, tenant_cooperation_rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING id`

	args := []any{
		cmd.TenantID,
		cmd.LandlordID,
		strings.TrimSpace(cmd.PropertyAddress),
		cmd.LeaseStartDate,
		cmd.LeaseEndDate,
		cmd.RentAmount,
		cmd.DepositAmount,
		cmd.SecurityDepositReturned,
		cmd.DepositDeductionReason,
		cmd.OnTimePayments,
		cmd.LatePaymentsCount,
		cmd.PropertyDamage,
		cmd.DamageDescription,
		cmd.HadDisputes,
		cmd.DisputeDescription,
		cmd.EvictionFiled,
		cmd.EvictionReason,
		cmd.LandlordResponsivenessRating,
		cmd.LandlordFairnessRating,
		cmd.TenantCleanlinessRating,
		cmd.TenantCooperationRating,
	}

	h, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (History, error) {
		if err := ensureParty(ctx, tx, "tenants", "tenant", cmd.TenantID); err != nil {
			return History{}, err
		}
		if err := ensureParty(ctx, tx, "landlords", "landlord", cmd.LandlordID); err != nil {
			return History{}, err
		}

		var id uuid.UUID
		if err := tx.QueryRowContext(ctx, insert, args...).Scan(&id); err != nil {
			return History{}, err
		}

		q, qargs := query.NewBuilder(projection).BuildSingle("ID", id)
		return repository.QueryOne(ctx, tx, q, qargs, scanHistory)
	})
	if err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, faults.InvalidInput(entity, "", "tenant or landlord was removed during registration")
		}
		return nil, err
	}

	party.Evict(ctx, r.cache, r.logger)
	r.logger.Info("rental history created",
		"id", h.ID,
		"tenant_id", h.TenantID,
		"landlord_id", h.LandlordID,
	)
	return &h, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, "DELETE FROM rental_histories WHERE id = $1", id)
	})
	if err != nil {
		return repository.MapError(err, faults.NotFound(entity, id.String()), nil)
	}

	party.Evict(ctx, r.cache, r.logger)
	r.logger.Info("rental history deleted", "id", id)
	return nil
}

func ensureParty(ctx context.Context, q repository.Querier, table, kind string, id uuid.UUID) error {
	exists, err := repository.Exists(ctx, q, fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)", table), id)
	if err != nil {
		return fmt.Errorf("check %s: %w", kind, err)
	}
	if !exists {
		return faults.NotFound(kind, id.String())
	}
	return nil
}
