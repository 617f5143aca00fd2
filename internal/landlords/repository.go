package landlords

import (
	"context"
	"database/sql"
	"errors"
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

// New creates a landlord repository implementing the System interface.
func New(db *sql.DB, cache cache.System, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		cache:      cache,
		logger:     logger.With("system", "landlords"),
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
) (*pagination.PageResult[Landlord], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort...).
		WhereSearch(page.Search, "Name", "Email", "Phone", "Address")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count landlords: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanLandlord)
	if err != nil {
		return nil, fmt.Errorf("query landlords: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Landlord, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	l, err := repository.QueryOne(ctx, r.db, q, args, scanLandlord)
	if err != nil {
		return nil, repository.MapError(err, faults.NotFound(entity, id.String()), nil)
	}
	return &l, nil
}

func (r *repo) Search(ctx context.Context, c SearchCriteria) ([]Landlord, error) {
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
		qb.WhereContains("Address", &c.Address)
	default:
		return nil, ErrNoSearchFields
	}

	q, args := qb.BuildLimit(r.pagination.MaxLookupResults)
	items, err := repository.QueryMany(ctx, r.db, q, args, scanLandlord)
	if err != nil {
		return nil, fmt.Errorf("search landlords: %w", err)
	}
	return items, nil
}

func (r *repo) FindByIdentifier(ctx context.Context, identifier string, idType party.IdentifierType) (*Landlord, error) {
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
		qb.WhereContains("Address", &identifier)
	case party.ByPropertyAddress:
		qb.WhereElementContains("ManagedProperties", &identifier)
	default:
		r.logger.Warn("unsupported identifier type", "type", idType)
		return nil, nil
	}

	q, args := qb.BuildFirst()
	l, err := repository.QueryOne(ctx, r.db, q, args, scanLandlord)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find landlord by %s: %w", idType, err)
	}
	return &l, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Landlord, error) {
	if err := validation.Struct(cmd); err != nil {
		return nil, faults.InvalidInput(entity, cmd.IDNumber, err.Error())
	}

	if err := r.ensureUnique(ctx, uuid.Nil, cmd.IDNumber, cmd.Email); err != nil {
		return nil, err
	}

	q := `
		INSERT INTO landlords(name, id_number, email, phone, address, managed_properties)
		VALUES ($1, $2, $3, $4, $5, $6)
		` + returning

	args := []any{
		cmd.Name,
		cmd.IDNumber,
		cmd.Email,
		cmd.Phone,
		cmd.Address,
		repository.EncodeList(trimAll(cmd.ManagedProperties)),
	}

	l, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Landlord, error) {
		return repository.QueryOne(ctx, tx, q, args, scanLandlord)
	})
	if err != nil {
		return nil, repository.MapError(err, nil, faults.AlreadyExists(entity, cmd.IDNumber))
	}

	party.Evict(ctx, r.cache, r.logger)
	r.logger.Info("landlord created", "id", l.ID, "id_number", l.IDNumber)
	return &l, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Landlord, error) {
	if err := validation.Struct(cmd); err != nil {
		return nil, faults.InvalidInput(entity, id.String(), err.Error())
	}

	if err := r.ensureUnique(ctx, id, "", cmd.Email); err != nil {
		return nil, err
	}

	var properties []byte
	if len(cmd.ManagedProperties) > 0 {
		properties = repository.EncodeList(trimAll(cmd.ManagedProperties))
	}

	q := `
		UPDATE landlords
		SET name = $1, email = $2, phone = $3, address = $4,
			managed_properties = COALESCE($5, managed_properties),
			updated_at = NOW()
		WHERE id = $6
		` + returning

	args := []any{cmd.Name, cmd.Email, cmd.Phone, cmd.Address, properties, id}

	l, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Landlord, error) {
		return repository.QueryOne(ctx, tx, q, args, scanLandlord)
	})
	if err != nil {
		return nil, repository.MapError(err, faults.NotFound(entity, id.String()), faults.AlreadyExists(entity, cmd.Email))
	}

	party.Evict(ctx, r.cache, r.logger)
	r.logger.Info("landlord updated", "id", l.ID)
	return &l, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, "DELETE FROM landlords WHERE id = $1", id)
	})
	if err != nil {
		return repository.MapError(err, faults.NotFound(entity, id.String()), nil)
	}

	party.Evict(ctx, r.cache, r.logger)
	r.logger.Info("landlord deleted", "id", id)
	return nil
}

func (r *repo) SaveAssessment(ctx context.Context, id uuid.UUID, a party.Assessment) (*Landlord, error) {
	q := `
		UPDATE landlords
		SET trust_score = $1, classification = $2, responsiveness_score = $3,
			fairness_score = $4, deposit_return_rate = $5, behavioral_summary = $6,
			red_flags = $7, updated_at = NOW()
		WHERE id = $8
		` + returning

	args := []any{
		a.TrustScore,
		a.Classification,
		a.ResponsivenessScore,
		a.FairnessScore,
		a.DepositReturnRate,
		a.BehavioralSummary,
		repository.EncodeList(a.RedFlags),
		id,
	}

	l, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Landlord, error) {
		return repository.QueryOne(ctx, tx, q, args, scanLandlord)
	})
	if err != nil {
		return nil, repository.MapError(err, faults.NotFound(entity, id.String()), nil)
	}

	r.logger.Info("landlord assessment saved",
		"id", id,
		"trust_score", a.TrustScore,
		"classification", a.Classification,
	)
	return &l, nil
}

// ensureUnique rejects an id number or email already held by a landlord other
// than self. Empty values are not checked.
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
			return fmt.Errorf("check landlord %s: %w", c.field, err)
		}
		if exists {
			return faults.AlreadyExists(entity, c.value)
		}
	}

	return nil
}

func trimAll(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
