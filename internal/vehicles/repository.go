package vehicles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/attest/internal/confidence"
	"github.com/JaimeStill/attest/internal/party"
	"github.com/JaimeStill/attest/pkg/faults"
	"github.com/JaimeStill/attest/pkg/formatting"
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

// New creates a vehicle repository implementing the System interface.
// source drives the confidence scores of AI-assisted verifications.
func New(db *sql.DB, source confidence.Source, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		source:     source,
		logger:     logger.With("system", "vehicles"),
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
) (*pagination.PageResult[Vehicle], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort...).
		WhereSearch(page.Search, "ChassisNumber", "RegistrationNumber", "Make", "Model", "CurrentOwnerName")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count vehicles: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanVehicle)
	if err != nil {
		return nil, fmt.Errorf("query vehicles: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Vehicle, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	v, err := repository.QueryOne(ctx, r.db, q, args, scanVehicle)
	if err != nil {
		return nil, repository.MapError(err, faults.NotFound(entity, id.String()), nil)
	}
	return &v, nil
}

func (r *repo) FindByChassis(ctx context.Context, chassis string) (*Vehicle, error) {
	return r.findBy(ctx, "ChassisNumber", chassis)
}

func (r *repo) FindByRegistration(ctx context.Context, registration string) (*Vehicle, error) {
	return r.findBy(ctx, "RegistrationNumber", registration)
}

func (r *repo) Stolen(ctx context.Context) ([]Vehicle, error) {
	return r.flagged(ctx, "IsStolen")
}

func (r *repo) Tampered(ctx context.Context) ([]Vehicle, error) {
	return r.flagged(ctx, "HasBeenTampered")
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Vehicle, error) {
	cmd.ChassisNumber = strings.TrimSpace(cmd.ChassisNumber)
	if err := validation.Struct(cmd); err != nil {
		return nil, faults.InvalidInput(entity, cmd.ChassisNumber, err.Error())
	}

	if err := r.ensureUnique(ctx, uuid.Nil, cmd.ChassisNumber, cmd.RegistrationNumber); err != nil {
		return nil, err
	}

	status := cmd.VerificationStatus
	if status == "" {
		status = party.StatusPending
	}

	q := `
		INSERT INTO vehicles(
			chassis_number, registration_number, make, model, year, color, engine_number,
			current_owner_name, current_owner_id, purchase_date, is_stolen, has_been_tampered,
			verification_status, verification_notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		` + returning

	args := []any{
		cmd.ChassisNumber,
		cmd.RegistrationNumber,
		cmd.Make,
		cmd.Model,
		cmd.Year,
		cmd.Color,
		cmd.EngineNumber,
		cmd.CurrentOwnerName,
		cmd.CurrentOwnerID,
		cmd.PurchaseDate,
		cmd.IsStolen != nil && *cmd.IsStolen,
		cmd.HasBeenTampered != nil && *cmd.HasBeenTampered,
		status,
		cmd.VerificationNotes,
	}

	v, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Vehicle, error) {
		return repository.QueryOne(ctx, tx, q, args, scanVehicle)
	})
	if err != nil {
		return nil, repository.MapError(err, nil, faults.AlreadyExists(entity, cmd.ChassisNumber))
	}

	r.logger.Info("vehicle created", "id", v.ID, "chassis_number", v.ChassisNumber)
	return &v, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Vehicle, error) {
	if err := validation.Struct(cmd); err != nil {
		return nil, faults.InvalidInput(entity, id.String(), err.Error())
	}

	v, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Vehicle, error) {
		current, err := lockBy(ctx, tx, "ID", id)
		if err != nil {
			return Vehicle{}, err
		}

		var chassis string
		if cmd.ChassisNumber != nil && *cmd.ChassisNumber != current.ChassisNumber {
			chassis = *cmd.ChassisNumber
		}
		var registration *string
		if cmd.RegistrationNumber != nil &&
			(current.RegistrationNumber == nil || *cmd.RegistrationNumber != *current.RegistrationNumber) {
			registration = cmd.RegistrationNumber
		}
		if err := r.ensureUnique(ctx, id, chassis, registration); err != nil {
			return Vehicle{}, err
		}

		cmd.apply(&current)
		return save(ctx, tx, current)
	})
	if err != nil {
		return nil, repository.MapError(err, faults.NotFound(entity, id.String()), faults.AlreadyExists(entity, id.String()))
	}

	r.logger.Info("vehicle updated", "id", v.ID)
	return &v, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, "DELETE FROM vehicles WHERE id = $1", id)
	})
	if err != nil {
		return repository.MapError(err, faults.NotFound(entity, id.String()), nil)
	}

	r.logger.Info("vehicle deleted", "id", id)
	return nil
}

func (r *repo) Verify(ctx context.Context, req VerifyRequest) (*VerifyResponse, error) {
	req.ChassisNumber = strings.TrimSpace(req.ChassisNumber)
	req.RegistrationNumber = strings.TrimSpace(req.RegistrationNumber)

	var (
		v   *Vehicle
		err error
	)

	switch {
	case req.ChassisNumber != "":
		v, err = r.FindByChassis(ctx, req.ChassisNumber)
	case req.RegistrationNumber != "":
		v, err = r.FindByRegistration(ctx, req.RegistrationNumber)
	default:
		return nil, ErrNoIdentifier
	}

	if err != nil && !errors.Is(err, faults.ErrNotFound) {
		return nil, err
	}

	resp := Report(req, v, formatting.NewDate(time.Now()))

	r.logger.Info("vehicle verified",
		"chassis_number", req.ChassisNumber,
		"registration_number", req.RegistrationNumber,
		"exists", resp.Exists,
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

func (r *repo) ReportStolen(ctx context.Context, chassis, details string) (*Vehicle, error) {
	return r.report(ctx, chassis, "stolen", details, func(v *Vehicle) {
		v.IsStolen = true
		v.VerificationStatus = StatusReportedStolen
	})
}

func (r *repo) ReportTampered(ctx context.Context, chassis, details string) (*Vehicle, error) {
	return r.report(ctx, chassis, "tampered", details, func(v *Vehicle) {
		v.HasBeenTampered = true
		v.VerificationStatus = StatusReportedTampered
	})
}

func (r *repo) TransferOwnership(ctx context.Context, chassis, ownerName, ownerID string) (*Vehicle, error) {
	ownerName = strings.TrimSpace(ownerName)
	ownerID = strings.TrimSpace(ownerID)
	if ownerName == "" || ownerID == "" {
		return nil, ErrMissingNewOwner
	}

	now := time.Now()
	v, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Vehicle, error) {
		v, err := lockBy(ctx, tx, "ChassisNumber", chassis)
		if err != nil {
			return Vehicle{}, err
		}

		previous := "unknown"
		if v.CurrentOwnerName != nil {
			previous = *v.CurrentOwnerName
		}
		appendNote(&v, note(now, "Ownership changed from %s to %s", previous, ownerName))

		today := formatting.NewDate(now)
		v.CurrentOwnerName = &ownerName
		v.CurrentOwnerID = &ownerID
		v.PurchaseDate = &today

		return save(ctx, tx, v)
	})
	if err != nil {
		return nil, repository.MapError(err, faults.NotFound(entity, chassis), nil)
	}

	r.logger.Info("vehicle ownership transferred", "id", v.ID, "chassis_number", chassis)
	return &v, nil
}

func (r *repo) report(ctx context.Context, chassis, kind, details string, mark func(*Vehicle)) (*Vehicle, error) {
	details = strings.TrimSpace(details)
	if details == "" {
		return nil, ErrMissingDetails
	}

	now := time.Now()
	v, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Vehicle, error) {
		v, err := lockBy(ctx, tx, "ChassisNumber", chassis)
		if err != nil {
			return Vehicle{}, err
		}

		mark(&v)
		appendNote(&v, note(now, "Reported as %s: %s", kind, details))

		return save(ctx, tx, v)
	})
	if err != nil {
		return nil, repository.MapError(err, faults.NotFound(entity, chassis), nil)
	}

	r.logger.Warn("vehicle reported", "id", v.ID, "chassis_number", chassis, "kind", kind)
	return &v, nil
}

func (r *repo) findBy(ctx context.Context, field, value string) (*Vehicle, error) {
	value = strings.TrimSpace(value)
	q, args := query.NewBuilder(projection).BuildSingle(field, value)

	v, err := repository.QueryOne(ctx, r.db, q, args, scanVehicle)
	if err != nil {
		return nil, repository.MapError(err, faults.NotFound(entity, value), nil)
	}
	return &v, nil
}

func (r *repo) flagged(ctx context.Context, field string) ([]Vehicle, error) {
	q, args := query.
		NewBuilder(projection, defaultSort...).
		WhereEquals(field, true).
		Build()

	items, err := repository.QueryMany(ctx, r.db, q, args, scanVehicle)
	if err != nil {
		return nil, fmt.Errorf("query vehicles by %s: %w", field, err)
	}
	return items, nil
}

// ensureUnique rejects a chassis or registration number already held by a
// vehicle other than self. Empty values are not checked.
func (r *repo) ensureUnique(ctx context.Context, self uuid.UUID, chassis string, registration *string) error {
	type check struct {
		field string
		value string
	}

	checks := []check{{"ChassisNumber", chassis}}
	if registration != nil {
		checks = append(checks, check{"RegistrationNumber", strings.TrimSpace(*registration)})
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
		exists, err := repository.Exists(ctx, r.db, q, args...)
		if err != nil {
			return fmt.Errorf("check vehicle %s: %w", c.field, err)
		}
		if exists {
			return faults.AlreadyExists(entity, c.value)
		}
	}

	return nil
}

func lockBy(ctx context.Context, tx *sql.Tx, field string, value any) (Vehicle, error) {
	q, args := query.NewBuilder(projection).BuildSingle(field, value)
	return repository.LockOne(ctx, tx, q, args, scanVehicle)
}

func save(ctx context.Context, tx *sql.Tx, v Vehicle) (Vehicle, error) {
	q := `
		UPDATE vehicles
		SET chassis_number = $1, registration_number = $2, make = $3, model = $4,
			year = $5, color = $6, engine_number = $7, current_owner_name = $8,
			current_owner_id = $9, purchase_date = $10, is_stolen = $11,
			has_been_tampered = $12, verification_status = $13,
			verification_notes = $14, updated_at = NOW()
		WHERE id = $15
		` + returning

	args := []any{
		v.ChassisNumber,
		v.RegistrationNumber,
		v.Make,
		v.Model,
		v.Year,
		v.Color,
		v.EngineNumber,
		v.CurrentOwnerName,
		v.CurrentOwnerID,
		v.PurchaseDate,
		v.IsStolen,
		v.HasBeenTampered,
		v.VerificationStatus,
		v.VerificationNotes,
		v.ID,
	}

	return repository.QueryOne(ctx, tx, q, args, scanVehicle)
}

func appendNote(v *Vehicle, line string) {
	notes := line
	if v.VerificationNotes != nil {
		notes = *v.VerificationNotes + line
	}
	v.VerificationNotes = &notes
}
