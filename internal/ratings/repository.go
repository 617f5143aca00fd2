package ratings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/JaimeStill/attest/internal/lexicon"
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

// New creates a rating repository implementing the System interface.
func New(db *sql.DB, cache cache.System, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		cache:      cache,
		logger:     logger.With("system", "ratings"),
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
) (*pagination.PageResult[Rating], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort...).
		WhereSearch(page.Search, "Review", "PropertyAddress", "LandlordName", "TenantName")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count ratings: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanRating)
	if err != nil {
		return nil, fmt.Errorf("query ratings: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Rating, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	rt, err := repository.QueryOne(ctx, r.db, q, args, scanRating)
	if err != nil {
		return nil, repository.MapError(err, faults.NotFound(entity, id.String()), nil)
	}
	return &rt, nil
}

func (r *repo) ByLandlord(ctx context.Context, landlordID uuid.UUID) ([]Rating, error) {
	return r.many(ctx, "by landlord", Filters{LandlordID: &landlordID})
}

func (r *repo) ByTenant(ctx context.Context, tenantID uuid.UUID) ([]Rating, error) {
	return r.many(ctx, "by tenant", Filters{TenantID: &tenantID})
}

func (r *repo) ByProperty(ctx context.Context, address string) ([]Rating, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrMissingAddress
	}
	return r.many(ctx, "by property", Filters{PropertyAddress: &address})
}

func (r *repo) ByLandlordAndType(ctx context.Context, landlordID uuid.UUID, t Type) ([]Rating, error) {
	return r.many(ctx, "by landlord and type", Filters{LandlordID: &landlordID, RatingType: &t})
}

func (r *repo) ByTenantAndType(ctx context.Context, tenantID uuid.UUID, t Type) ([]Rating, error) {
	return r.many(ctx, "by tenant and type", Filters{TenantID: &tenantID, RatingType: &t})
}

func (r *repo) many(ctx context.Context, label string, f Filters) ([]Rating, error) {
	qb := query.NewBuilder(projection, defaultSort...)
	f.Apply(qb)

	q, args := qb.Build()
	items, err := repository.QueryMany(ctx, r.db, q, args, scanRating)
	if err != nil {
		return nil, fmt.Errorf("query ratings %s: %w", label, err)
	}
	return items, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Rating, error) {
	if err := validation.Struct(cmd); err != nil {
		return nil, faults.InvalidInput(entity, "", err.Error())
	}

	target, err := targetOf(cmd.RatingType, cmd.LandlordID, cmd.TenantID)
	if err != nil {
		return nil, err
	}

	tm, lm := metricsFor(cmd.RatingType, cmd.TenantMetrics, cmd.LandlordMetrics)
	sentiment, traits := analyze(cmd.Review)

	insert := `
		INSERT INTO ratings(
			landlord_id, tenant_id, rating_type, rating_value, review, property_address,
			lease_start_date, lease_end_date,
			payment_timeliness, property_care, communication, rule_adherence, cleanliness,
			responsiveness, maintenance_quality, fairness, deposit_handling, privacy_respect,
			sentiment_score, detected_traits)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING id`

	args := []any{
		cmd.LandlordID,
		cmd.TenantID,
		cmd.RatingType,
		cmd.RatingValue,
		cmd.Review,
		strings.TrimSpace(cmd.PropertyAddress),
		cmd.LeaseStartDate,
		cmd.LeaseEndDate,
		tm.PaymentTimeliness,
		tm.PropertyCare,
		tm.Communication,
		tm.RuleAdherence,
		tm.Cleanliness,
		lm.Responsiveness,
		lm.MaintenanceQuality,
		lm.Fairness,
		lm.DepositHandling,
		lm.PrivacyRespect,
		sentiment,
		repository.EncodeList(traits),
	}

	rt, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Rating, error) {
		agg, err := target.lock(ctx, tx)
		if err != nil {
			return Rating{}, err
		}

		if err := target.ensureCounterpart(ctx, tx); err != nil {
			return Rating{}, err
		}

		agg = agg.Apply(cmd.RatingValue)
		if err := target.save(ctx, tx, agg); err != nil {
			return Rating{}, err
		}

		var id uuid.UUID
		if err := tx.QueryRowContext(ctx, insert, args...).Scan(&id); err != nil {
			return Rating{}, err
		}

		q, qargs := query.NewBuilder(projection).BuildSingle("ID", id)
		return repository.QueryOne(ctx, tx, q, qargs, scanRating)
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("rating created",
		"id", rt.ID,
		"type", rt.RatingType,
		"landlord_id", rt.LandlordID,
		"tenant_id", rt.TenantID,
	)
	r.evict(ctx)
	return &rt, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Rating, error) {
	if err := validation.Struct(cmd); err != nil {
		return nil, faults.InvalidInput(entity, id.String(), err.Error())
	}

	rt, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Rating, error) {
		existing, err := lockRating(ctx, tx, id)
		if err != nil {
			return Rating{}, err
		}

		tm, lm := metricsFor(existing.RatingType, cmd.TenantMetrics, cmd.LandlordMetrics)

		sentiment, traits := existing.SentimentScore, existing.DetectedTraits
		if cmd.Review != "" {
			sentiment, traits = analyze(cmd.Review)
		}

		leaseStart, leaseEnd := existing.LeaseStartDate, existing.LeaseEndDate
		if cmd.LeaseStartDate != nil {
			leaseStart = cmd.LeaseStartDate
		}
		if cmd.LeaseEndDate != nil {
			leaseEnd = cmd.LeaseEndDate
		}

		q := `
			UPDATE ratings
			SET rating_value = $1, review = $2, property_address = $3,
				lease_start_date = $4, lease_end_date = $5,
				payment_timeliness = $6, property_care = $7, communication = $8,
				rule_adherence = $9, cleanliness = $10,
				responsiveness = $11, maintenance_quality = $12, fairness = $13,
				deposit_handling = $14, privacy_respect = $15,
				sentiment_score = $16, detected_traits = $17, updated_at = NOW()
			WHERE id = $18`

		args := []any{
			cmd.RatingValue,
			cmd.Review,
			strings.TrimSpace(cmd.PropertyAddress),
			leaseStart,
			leaseEnd,
			tm.PaymentTimeliness,
			tm.PropertyCare,
			tm.Communication,
			tm.RuleAdherence,
			tm.Cleanliness,
			lm.Responsiveness,
			lm.MaintenanceQuality,
			lm.Fairness,
			lm.DepositHandling,
			lm.PrivacyRespect,
			sentiment,
			repository.EncodeList(traits),
			id,
		}

		if err := repository.ExecExpectOne(ctx, tx, q, args...); err != nil {
			return Rating{}, err
		}

		target, err := targetOf(existing.RatingType, existing.LandlordID, existing.TenantID)
		if err != nil {
			return Rating{}, err
		}
		if err := target.recompute(ctx, tx); err != nil {
			return Rating{}, err
		}

		sq, sargs := query.NewBuilder(projection).BuildSingle("ID", id)
		return repository.QueryOne(ctx, tx, sq, sargs, scanRating)
	})
	if err != nil {
		return nil, repository.MapError(err, faults.NotFound(entity, id.String()), nil)
	}

	r.logger.Info("rating updated", "id", rt.ID)
	r.evict(ctx)
	return &rt, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		existing, err := lockRating(ctx, tx, id)
		if err != nil {
			return struct{}{}, err
		}

		if err := repository.ExecExpectOne(ctx, tx, "DELETE FROM ratings WHERE id = $1", id); err != nil {
			return struct{}{}, err
		}

		target, err := targetOf(existing.RatingType, existing.LandlordID, existing.TenantID)
		if err != nil {
			return struct{}{}, err
		}
		return struct{}{}, target.recompute(ctx, tx)
	})
	if err != nil {
		return repository.MapError(err, faults.NotFound(entity, id.String()), nil)
	}

	r.logger.Info("rating deleted", "id", id)
	r.evict(ctx)
	return nil
}

func (r *repo) AnalyzeSentiment(text string) (lexicon.Analysis, error) {
	if strings.TrimSpace(text) == "" {
		return lexicon.Analysis{}, ErrEmptyText
	}
	return lexicon.Analyze(text), nil
}

func (r *repo) evict(ctx context.Context) {
	party.Evict(ctx, r.cache, r.logger)
}

func analyze(review string) (*float64, []string) {
	if review == "" {
		return nil, []string{}
	}
	a := lexicon.Analyze(review)
	return &a.SentimentScore, a.DetectedTraits
}

func lockRating(ctx context.Context, tx *sql.Tx, id uuid.UUID) (Rating, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)
	return repository.LockOne(ctx, tx, q, args, scanRating, "r")
}

// rated identifies the party whose aggregate a rating feeds and the
// counterpart that must exist alongside it.
type rated struct {
	table      string
	kind       string
	column     string
	id         uuid.UUID
	ratingType Type
	otherTable string
	otherKind  string
	otherID    uuid.UUID
}

func targetOf(t Type, landlordID, tenantID uuid.UUID) (rated, error) {
	switch t {
	case LandlordToTenant:
		return rated{
			table:      "tenants",
			kind:       "tenant",
			column:     "tenant_id",
			id:         tenantID,
			ratingType: t,
			otherTable: "landlords",
			otherKind:  "landlord",
			otherID:    landlordID,
		}, nil
	case TenantToLandlord:
		return rated{
			table:      "landlords",
			kind:       "landlord",
			column:     "landlord_id",
			id:         landlordID,
			ratingType: t,
			otherTable: "tenants",
			otherKind:  "tenant",
			otherID:    tenantID,
		}, nil
	default:
		return rated{}, ErrInvalidType
	}
}

func (p rated) lock(ctx context.Context, tx *sql.Tx) (Aggregate, error) {
	var agg Aggregate
	q := fmt.Sprintf("SELECT average_rating, total_ratings FROM %s WHERE id = $1 FOR UPDATE", p.table)
	if err := tx.QueryRowContext(ctx, q, p.id).Scan(&agg.Average, &agg.Total); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return agg, faults.NotFound(p.kind, p.id.String())
		}
		return agg, fmt.Errorf("lock %s: %w", p.kind, err)
	}
	return agg, nil
}

func (p rated) ensureCounterpart(ctx context.Context, tx *sql.Tx) error {
	q := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)", p.otherTable)
	exists, err := repository.Exists(ctx, tx, q, p.otherID)
	if err != nil {
		return fmt.Errorf("check %s: %w", p.otherKind, err)
	}
	if !exists {
		return faults.NotFound(p.otherKind, p.otherID.String())
	}
	return nil
}

func (p rated) save(ctx context.Context, tx *sql.Tx, agg Aggregate) error {
	q := fmt.Sprintf("UPDATE %s SET average_rating = $1, total_ratings = $2, updated_at = NOW() WHERE id = $3", p.table)
	return repository.ExecExpectOne(ctx, tx, q, agg.Average, agg.Total, p.id)
}

func (p rated) recompute(ctx context.Context, tx *sql.Tx) error {
	q := fmt.Sprintf(`
		UPDATE %s
		SET average_rating = COALESCE(agg.average, 0), total_ratings = agg.total, updated_at = NOW()
		FROM (
			SELECT AVG(rating_value) AS average, COUNT(*) AS total
			FROM ratings
			WHERE %s = $1 AND rating_type = $2
		) agg
		WHERE id = $1`, p.table, p.column)

	if _, err := tx.ExecContext(ctx, q, p.id, p.ratingType); err != nil {
		return fmt.Errorf("recompute %s rating aggregate: %w", p.kind, err)
	}
	return nil
}
