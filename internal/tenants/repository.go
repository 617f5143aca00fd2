package tenants

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

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

// New creates a tenant repository implementing the System interface.
func New(db *sql.DB, cache cache.System, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		cache:      cache,
		logger:     logger.With("system", "tenants"),
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
) (*pagination.PageResult[Tenant], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort...).
		WhereSearch(page.Search, "Name", "Email", "Phone", "CurrentAddress", "Employer")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count tenants: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanTenant)
	if err != nil {
		return nil, fmt.Errorf("query tenants: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Tenant, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	t, err := repository.QueryOne(ctx, r.db, q, args, scanTenant)
	if err != nil {
		return nil, repository.MapError(err, faults.NotFound(entity, id.String()), nil)
	}
	return &t, nil
}

func (r *repo) Search(ctx context.Context, c SearchCriteria) ([]Tenant, error) {
	qb := query.NewBuilder(projection, defaultSort...)

	switch {
	case c.IDNumber != "":
		qb.WhereEquals("IDNumber", c.IDNumber)
	case c.Email != "":
		qb.WhereEquals("Email", c.Email)
	case c.Phone != "":
		qb.WhereEquals("Phone", c.Phone)
	case c.Name != "":
		qb.WhereContains("Name", &c.Name)
	case c.Address != "":
		qb.WhereContains("CurrentAddress", &c.Address)
	default:
		return nil, ErrNoSearchFields
	}

	q, args := qb.BuildLimit(r.pagination.MaxLookupResults)
	items, err := repository.QueryMany(ctx, r.db, q, args, scanTenant)
	if err != nil {
		return nil, fmt.Errorf("search tenants: %w", err)
	}
	return items, nil
}

func (r *repo) FindByIdentifier(ctx context.Context, identifier string, idType party.IdentifierType) (*Tenant, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, nil
	}

	qb := query.NewBuilder(projection, defaultSort...)

	switch idType {
	case party.ByName:
		qb.WhereContains("Name", &identifier)
	case party.ByIDNumber:
		qb.WhereEquals("IDNumber", identifier)
	case party.ByPhone:
		qb.WhereEquals("Phone", identifier)
	case party.ByAddress:
		qb.WhereContains("CurrentAddress", &identifier)
	default:
		r.logger.Warn("unsupported identifier type", "type", idType)
		return nil, nil
	}

	q, args := qb.BuildFirst()
	t, err := repository.QueryOne(ctx, r.db, q, args, scanTenant)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find tenant by %s: %w", idType, err)
	}
	return &t, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Tenant, error) {
	if err := validation.Struct(cmd); err != nil {
		return nil, faults.InvalidInput(entity, cmd.IDNumber, err.Error())
	}
	if err := validateIncome(cmd.MonthlyIncome); err != nil {
		return nil, faults.InvalidInput(entity, cmd.IDNumber, err.Error())
	}

	if err := r.ensureUnique(ctx, uuid.Nil, cmd.IDNumber, cmd.Email); err != nil {
		return nil, err
	}

	q := `
		INSERT INTO tenants(name, id_number, email, phone, current_address,
			employment_status, employer, monthly_income)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		` + returning

	args := []any{
		cmd.Name,
		cmd.IDNumber,
		cmd.Email,
		cmd.Phone,
		cmd.CurrentAddress,
		cmd.EmploymentStatus,
		cmd.Employer,
		cmd.MonthlyIncome,
	}

	t, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Tenant, error) {
		return repository.QueryOne(ctx, tx, q, args, scanTenant)
	})
	if err != nil {
		return nil, repository.MapError(err, nil, faults.AlreadyExists(entity, cmd.IDNumber))
	}

	party.Evict(ctx, r.cache, r.logger)
	r.logger.Info("tenant created", "id", t.ID, "id_number", t.IDNumber)
	return &t, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Tenant, error) {
	if err := validation.Struct(cmd); err != nil {
		return nil, faults.InvalidInput(entity, id.String(), err.Error())
	}
	if err := validateIncome(cmd.MonthlyIncome); err != nil {
		return nil, faults.InvalidInput(entity, id.String(), err.Error())
	}

	if err := r.ensureUnique(ctx, id, "", cmd.Email); err != nil {
		return nil, err
	}

	q := `
		UPDATE tenants
		SET name = $1, email = $2, phone = $3, current_address = $4,
			employment_status = $5, employer = $6, monthly_income = $7,
			updated_at = NOW()
		WHERE id = $8
		` + returning

	args := []any{
		cmd.Name,
		cmd.Email,
		cmd.Phone,
		cmd.CurrentAddress,
		cmd.EmploymentStatus,
		cmd.Employer,
		cmd.MonthlyIncome,
		id,
	}

	t, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Tenant, error) {
		return repository.QueryOne(ctx, tx, q, args, scanTenant)
	})
	if err != nil {
		return nil, repository.MapError(err, faults.NotFound(entity, id.String()), faults.AlreadyExists(entity, cmd.Email))
	}

	party.Evict(ctx, r.cache, r.logger)
	r.logger.Info("tenant updated", "id", t.ID)
	return &t, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, "DELETE FROM tenants WHERE id = $1", id)
	})
	if err != nil {
		return repository.MapError(err, faults.NotFound(entity, id.String()), nil)
	}

	party.Evict(ctx, r.cache, r.logger)
	r.logger.Info("tenant deleted", "id", id)
	return nil
}

func (r *repo) SaveAssessment(ctx context.Context, id uuid.UUID, a party.Assessment) (*Tenant, error) {
	q := `
		UPDATE tenants
		SET trust_score = $1, classification = $2, behavioral_summary = $3,
			red_flags = $4, updated_at = NOW()
		WHERE id = $5
		` + returning

	args := []any{
		a.TrustScore,
		a.Classification,
		a.BehavioralSummary,
		repository.EncodeList(a.RedFlags),
		id,
	}

	t, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Tenant, error) {
		return repository.QueryOne(ctx, tx, q, args, scanTenant)
	})
	if err != nil {
		return nil, repository.MapError(err, faults.NotFound(entity, id.String()), nil)
	}

	r.logger.Info("tenant assessment saved",
		"id", id,
		"trust_score", a.TrustScore,
		"classification", a.Classification,
	)
	return &t, nil
}

func (r *repo) ensureUnique(ctx context.Context, self uuid.UUID, idNumber, email string) error {
	checks := []struct {
		field string
		value string
	}{
		{"IDNumber", idNumber},
		{"Email", email},
	}

	for _, c := range checks {
		if c.value == "" {
			continue
		}

		qb := query.NewBuilder(projection).WhereEquals(c.field, c.value)
		if self != uuid.Nil {
			qb.WhereNot("ID", self)
		}

		q, args := qb.BuildExists()
		var exists bool
		if err := r.db.QueryRowContext(ctx, q, args...).Scan(&exists); err != nil {
			return fmt.Errorf("check tenant %s: %w", c.field, err)
		}
		if exists {
			return faults.AlreadyExists(entity, c.value)
		}
	}

	return nil
}

func validateIncome(income decimal.NullDecimal) error {
	if income.Valid && income.Decimal.IsNegative() {
		return errors.New("monthly_income must not be negative")
	}
	return nil
}
