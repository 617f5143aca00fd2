package landdocs

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/JaimeStill/attest/pkg/faults"
	"github.com/JaimeStill/attest/pkg/pagination"
	"github.com/JaimeStill/attest/pkg/query"
	"github.com/JaimeStill/attest/pkg/repository"
	"github.com/JaimeStill/attest/pkg/storage"
)

type repo struct {
	db         *sql.DB
	storage    storage.System
	lands      LandResolver
	extractor  TextExtractor
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a land document repository implementing the System interface.
func New(
	db *sql.DB,
	store storage.System,
	lands LandResolver,
	extractor TextExtractor,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		storage:    store,
		lands:      lands,
		extractor:  extractor,
		logger:     logger.With("system", "landdocs"),
		pagination: pagination,
	}
}

func (r *repo) Handler(maxUploadSize int64) *Handler {
	return NewHandler(r, r.logger, r.pagination, maxUploadSize)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Document], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Filename", "ExtractedStandNumber", "ExtractedOwnerName")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count land documents: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	docs, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanDocument)
	if err != nil {
		return nil, fmt.Errorf("query land documents: %w", err)
	}

	result := pagination.NewPageResult(docs, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Document, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	d, err := repository.QueryOne(ctx, r.db, q, args, scanDocument)
	if err != nil {
		return nil, repository.MapError(err, faults.NotFound(entity, id.String()), nil)
	}
	return &d, nil
}

func (r *repo) Verify(ctx context.Context, cmd VerifyCommand) (*Document, error) {
	if len(cmd.Data) == 0 {
		return nil, ErrEmptyFile
	}

	text, err := r.extractor.Extract(cmd.Data)
	if err != nil {
		r.logger.Warn("text extraction failed", "filename", cmd.Filename, "error", err)
		return nil, faults.VerificationFailed(entity, cmd.Filename, "document text could not be extracted")
	}

	ext := Parse(text)
	ext.Supplement(
		strings.TrimSpace(cmd.StandNumber),
		strings.TrimSpace(cmd.OwnerName),
		strings.TrimSpace(cmd.OwnerIDNumber),
	)

	outcome := Assess(ext, nil)
	if !ext.Empty() {
		land, err := r.lands.Resolve(ctx, ext.Criteria())
		if err != nil {
			return nil, fmt.Errorf("resolve land record: %w", err)
		}
		outcome = Assess(ext, land)
	}

	id := uuid.New()
	key := buildStorageKey(id, sanitizeFilename(cmd.Filename))

	if err := r.storage.Upload(ctx, key, bytes.NewReader(cmd.Data), cmd.ContentType); err != nil {
		return nil, fmt.Errorf("upload land document blob: %w", err)
	}

	q := `
		INSERT INTO land_documents(
			id, filename, content_type, size_bytes, page_count, storage_key,
			extracted_stand_number, extracted_owner_name, extracted_id_number, land_id,
			record_stand_number, record_owner_name, record_id_number, matched,
			verification_status, message, confidence_scores)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		` + returning

	args := []any{
		id,
		cmd.Filename,
		cmd.ContentType,
		int64(len(cmd.Data)),
		cmd.PageCount,
		key,
		ext.StandNumber,
		ext.OwnerName,
		ext.IDNumber,
	}
	args = append(args, recordArgs(outcome)...)
	args = append(args,
		outcome.Matched,
		outcome.Status,
		outcome.Message,
		repository.EncodeMap(ext.ConfidenceScores),
	)

	d, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Document, error) {
		return repository.QueryOne(ctx, tx, q, args, scanDocument)
	})
	if err != nil {
		if delErr := r.storage.Delete(ctx, key); delErr != nil {
			r.logger.Warn("compensating blob delete failed", "key", key, "error", delErr)
		}
		return nil, fmt.Errorf("record land document: %w", err)
	}

	r.logger.Info("land document verified",
		"id", d.ID,
		"filename", d.Filename,
		"status", d.VerificationStatus,
		"matched", d.Matched,
	)
	return &d, nil
}

func (r *repo) Download(ctx context.Context, id uuid.UUID) (*Document, io.ReadCloser, error) {
	d, err := r.Find(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	body, err := r.storage.Download(ctx, d.StorageKey)
	if err != nil {
		return nil, nil, err
	}
	return d, body, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	d, err := r.Find(ctx, id)
	if err != nil {
		return err
	}

	_, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, "DELETE FROM land_documents WHERE id = $1", id)
	})
	if err != nil {
		return repository.MapError(err, faults.NotFound(entity, id.String()), nil)
	}

	if delErr := r.storage.Delete(ctx, d.StorageKey); delErr != nil {
		r.logger.Warn(
			"blob delete failed after DB delete",
			"key", d.StorageKey,
			"error", delErr,
		)
	}

	r.logger.Info("land document deleted", "id", id)
	return nil
}

// recordArgs yields the matched record's id, stand number, owner name, and
// owner ID number, all nil when no record was resolved.
func recordArgs(o Outcome) []any {
	if o.Land == nil {
		return []any{nil, nil, nil, nil}
	}
	return []any{o.Land.ID, o.Land.StandNumber, o.Land.OwnerName, o.Land.OwnerIDNumber}
}

func buildStorageKey(id uuid.UUID, filename string) string {
	return storage.Key("land-documents", id.String(), filename)
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	if name == "." || name == "" || name == "/" {
		name = "document"
	}
	return url.PathEscape(name)
}
