package lands

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/JaimeStill/attest/internal/confidence"
	"github.com/JaimeStill/attest/internal/party"
	"github.com/JaimeStill/attest/pkg/faults"
	"github.com/JaimeStill/attest/pkg/pagination"
	"github.com/JaimeStill/attest/pkg/query"
	"github.com/JaimeStill/attest/pkg/repository"
	"github.com/JaimeStill/attest/pkg/validation"
)

type repo struct {
	db         *sql.DB
	source     confidence.Source
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a land repository implementing the System interface.
// source drives the confidence scores of AI-assisted verifications.
func New(db *sql.DB, source confidence.Source, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		source:     source,
		logger:     logger.With("system", "lands"),
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
) (*pagination.PageResult[Land], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort...).
		WhereSearch(page.Search, "StandNumber", "Location", "Title", "OwnerName")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count lands: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanLand)
	if err != nil {
		return nil, fmt.Errorf("query lands: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Land, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	l, err := repository.QueryOne(ctx, r.db, q, args, scanLand)
	if err != nil {
		return nil, repository.MapError(err, faults.NotFound(entity, id.String()), nil)
	}
	return &l, nil
}

func (r *repo) FindByStandNumber(ctx context.Context, stand string) (*Land, error) {
	stand = strings.TrimSpace(stand)
	q, args := query.NewBuilder(projection).BuildSingle("StandNumber", stand)

	l, err := repository.QueryOne(ctx, r.db, q, args, scanLand)
	if err != nil {
		return nil, repository.MapError(err, faults.NotFound(entity, stand), nil)
	}
	return &l, nil
}

func (r *repo) Resolve(ctx context.Context, c ResolveCriteria) (*Land, error) {
	steps := []func(*query.Builder) *query.Builder{}

	if c.StandNumber != "" {
		steps = append(steps, func(b *query.Builder) *query.Builder {
			return b.WhereEquals("StandNumber", c.StandNumber)
		})
	}
	if c.OwnerIDNumber != "" {
		steps = append(steps, func(b *query.Builder) *query.Builder {
			return b.WhereEquals("OwnerIDNumber", c.OwnerIDNumber)
		})
	}
	if c.OwnerName != "" {
		steps = append(steps, func(b *query.Builder) *query.Builder {
			return b.WhereContains("OwnerName", &c.OwnerName)
		})
	}

	for _, step := range steps {
		l, err := r.first(ctx, step(query.NewBuilder(projection, defaultSort...)))
		if err != nil || l != nil {
			return l, err
		}
	}

	return nil, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Land, error) {
	cmd.StandNumber = strings.TrimSpace(cmd.StandNumber)
	if err := validation.Struct(cmd); err != nil {
		return nil, faults.InvalidInput(entity, cmd.StandNumber, err.Error())
	}

	if err := r.ensureUnique(ctx, uuid.Nil, cmd.StandNumber); err != nil {
		return nil, err
	}

	status := cmd.VerificationStatus
	if status == "" {
		status = party.StatusPending
	}

	q := `
		INSERT INTO lands(
			stand_number, location, title, owner_name, owner_id_number, is_allocated,
			allocation_date, property_size_square_meters, property_type, verification_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		` + returning

	args := []any{
		cmd.StandNumber,
		cmd.Location,
		cmd.Title,
		cmd.OwnerName,
		cmd.OwnerIDNumber,
		cmd.IsAllocated,
		cmd.AllocationDate,
		cmd.PropertySizeSquareMeters,
		cmd.PropertyType,
		status,
	}

	l, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Land, error) {
		return repository.QueryOne(ctx, tx, q, args, scanLand)
	})
	if err != nil {
		return nil, repository.MapError(err, nil, faults.AlreadyExists(entity, cmd.StandNumber))
	}

	r.logger.Info("land created", "id", l.ID, "stand_number", l.StandNumber)
	return &l, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Land, error) {
	if err := validation.Struct(cmd); err != nil {
		return nil, faults.InvalidInput(entity, id.String(), err.Error())
	}

	l, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Land, error) {
		q, args := query.NewBuilder(projection).BuildSingle("ID", id)
		current, err := repository.LockOne(ctx, tx, q, args, scanLand)
		if err != nil {
			return Land{}, err
		}

		if cmd.StandNumber != nil && *cmd.StandNumber != current.StandNumber {
			if err := r.ensureUnique(ctx, id, *cmd.StandNumber); err != nil {
				return Land{}, err
			}
		}

		cmd.apply(&current)
		return save(ctx, tx, current)
	})
	if err != nil {
		return nil, repository.MapError(err, faults.NotFound(entity, id.String()), faults.AlreadyExists(entity, id.String()))
	}

	r.logger.Info("land updated", "id", l.ID)
	return &l, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, "DELETE FROM lands WHERE id = $1", id)
	})
	if err != nil {
		return repository.MapError(err, faults.NotFound(entity, id.String()), nil)
	}

	r.logger.Info("land deleted", "id", id)
	return nil
}

func (r *repo) Verify(ctx context.Context, req VerifyRequest) (*VerifyResponse, error) {
	req.StandNumber = strings.TrimSpace(req.StandNumber)
	req.Location = strings.TrimSpace(req.Location)
	if req.StandNumber == "" {
		return nil, ErrNoStandNumber
	}

	l, err := r.locate(ctx, req)
	if err != nil {
		return nil, err
	}

	resp := Report(req, l)

	r.logger.Info("land verified",
		"stand_number", req.StandNumber,
		"exists", resp.Exists,
		"allocated", resp.IsAllocated,
	)
	return &resp, nil
}

func (r *repo) VerifyWithAI(ctx context.Context, req VerifyRequest) (*VerifyResponse, error) {
	resp, err := r.Verify(ctx, req)
	if err != nil {
		return nil, err
	}

	Enhance(resp, confidence.Score(r.source))
	return resp, nil
}

// locate prefers an exact stand and location match, falling back to the
// stand alone when the two locations overlap.
func (r *repo) locate(ctx context.Context, req VerifyRequest) (*Land, error) {
	if req.Location != "" {
		exact := query.
			NewBuilder(projection, defaultSort...).
			WhereEquals("StandNumber", req.StandNumber).
			WhereEquals("Location", req.Location)

		l, err := r.first(ctx, exact)
		if err != nil || l != nil {
			return l, err
		}
	}

	l, err := r.FindByStandNumber(ctx, req.StandNumber)
	if err != nil {
		if errors.Is(err, faults.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if req.Location != "" && !LocationMatches(l.Location, req.Location) {
		return nil, nil
	}
	return l, nil
}

func (r *repo) first(ctx context.Context, qb *query.Builder) (*Land, error) {
	q, args := qb.BuildFirst()
	l, err := repository.QueryOne(ctx, r.db, q, args, scanLand)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find land: %w", err)
	}
	return &l, nil
}

func (r *repo) ensureUnique(ctx context.Context, self uuid.UUID, stand string) error {
	qb := query.NewBuilder(projection).WhereEquals("StandNumber", stand)
	if self != uuid.Nil {
		qb.WhereNot("ID", self)
	}

	q, args := qb.BuildExists()
	exists, err := repository.Exists(ctx, r.db, q, args...)
	if err != nil {
		return fmt.Errorf("check land stand number: %w", err)
	}
	if exists {
		return faults.AlreadyExists(entity, stand)
	}
	return nil
}

func save(ctx context.Context, tx *sql.Tx, l Land) (Land, error) {
	q := `
		UPDATE lands
		SET stand_number = $1, location = $2, title = $3, owner_name = $4,
			owner_id_number = $5, is_allocated = $6, allocation_date = $7,
			property_size_square_meters = $8, property_type = $9,
			verification_status = $10, updated_at = NOW()
		WHERE id = $11
		` + returning

	args := []any{
		l.StandNumber,
		l.Location,
		l.Title,
		l.OwnerName,
		l.OwnerIDNumber,
		l.IsAllocated,
		l.AllocationDate,
		l.PropertySizeSquareMeters,
		l.PropertyType,
		l.VerificationStatus,
		l.ID,
	}

	return repository.QueryOne(ctx, tx, q, args, scanLand)
}
