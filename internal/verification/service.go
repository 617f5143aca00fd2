package verification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/attest/internal/landlords"
	"github.com/JaimeStill/attest/internal/party"
	"github.com/JaimeStill/attest/internal/ratings"
	"github.com/JaimeStill/attest/internal/rentals"
	"github.com/JaimeStill/attest/internal/scoring"
	"github.com/JaimeStill/attest/internal/tenants"
	"github.com/JaimeStill/attest/pkg/cache"
	"github.com/JaimeStill/attest/pkg/formatting"
)

type service struct {
	landlords landlords.System
	tenants   tenants.System
	rentals   rentals.System
	ratings   ratings.System
	cache     cache.System
	ttl       time.Duration
	logger    *slog.Logger
}

// New creates the verification orchestrator. Reports are cached for ttl.
func New(
	landlords landlords.System,
	tenants tenants.System,
	rentals rentals.System,
	ratings ratings.System,
	cache cache.System,
	ttl time.Duration,
	logger *slog.Logger,
) System {
	return &service{
		landlords: landlords,
		tenants:   tenants,
		rentals:   rentals,
		ratings:   ratings,
		cache:     cache,
		ttl:       ttl,
		logger:    logger.With("system", "verification"),
	}
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *service) VerifyLandlord(ctx context.Context, req LandlordRequest) (*LandlordResponse, error) {
	idType := party.ParseIdentifierType(req.IdentifierType)
	includeProperties := flag(req.IncludeProperties)
	includeRatings := flag(req.IncludeRatings)

	key := cacheKey("landlord", idType, req.Identifier, includeProperties, includeRatings)
	var cached LandlordResponse
	if s.lookup(ctx, key, &cached) {
		return &cached, nil
	}

	l, err := s.landlords.FindByIdentifier(ctx, req.Identifier, idType)
	if err != nil {
		return nil, fmt.Errorf("resolve landlord: %w", err)
	}
	if l == nil {
		s.logger.Info("landlord not found", "identifier_type", idType)
		return &LandlordResponse{
			Exists:             false,
			VerificationStatus: party.StatusNotFound,
			Message:            fmt.Sprintf("Landlord with identifier '%s' not found", req.Identifier),
		}, nil
	}

	var (
		histories  []rentals.History
		rs         []ratings.Rating
		properties = managedProperties(l.ManagedProperties)
		byProperty = make([][]ratings.Rating, len(properties))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		histories, err = s.rentals.ByLandlord(gctx, l.ID)
		return err
	})
	g.Go(func() (err error) {
		rs, err = s.ratings.ByLandlordAndType(gctx, l.ID, ratings.TenantToLandlord)
		return err
	})
	if includeProperties {
		for i, p := range properties {
			g.Go(func() (err error) {
				byProperty[i], err = s.ratings.ByProperty(gctx, p)
				return err
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("gather landlord records: %w", err)
	}

	a := scoring.AssessLandlord(l, histories, rs)
	saved, err := s.landlords.SaveAssessment(ctx, l.ID, a)
	if err != nil {
		return nil, fmt.Errorf("save landlord assessment: %w", err)
	}

	resp := &LandlordResponse{
		ID:                  &saved.ID,
		Name:                saved.Name,
		IDNumber:            saved.IDNumber,
		Phone:               saved.Phone,
		Address:             saved.Address,
		Exists:              true,
		VerificationStatus:  saved.VerificationStatus,
		AverageRating:       &saved.AverageRating,
		TrustScore:          &a.TrustScore,
		Classification:      a.Classification,
		ResponsivenessScore: a.ResponsivenessScore,
		FairnessScore:       a.FairnessScore,
		DepositReturnRate:   a.DepositReturnRate,
		BehavioralSummary:   a.BehavioralSummary,
		RedFlags:            a.RedFlags,
		ManagedProperties:   saved.ManagedProperties,
		Message:             "Landlord verification completed successfully",
	}

	if includeProperties {
		resp.Properties = summarizeProperties(properties, histories, byProperty)
	}
	if includeRatings {
		resp.Ratings = landlordRatings(rs)
	}

	s.logger.Info("landlord verified",
		"id", saved.ID,
		"trust_score", a.TrustScore,
		"classification", a.Classification,
	)

	s.store(ctx, key, resp)
	return resp, nil
}

func (s *service) VerifyTenant(ctx context.Context, req TenantRequest) (*TenantResponse, error) {
	idType := party.ParseIdentifierType(req.IdentifierType)
	includeHistory := flag(req.IncludeRentalHistory)
	includeRatings := flag(req.IncludeRatings)

	key := cacheKey("tenant", idType, req.Identifier, includeHistory, includeRatings)
	var cached TenantResponse
	if s.lookup(ctx, key, &cached) {
		return &cached, nil
	}

	t, err := s.tenants.FindByIdentifier(ctx, req.Identifier, idType)
	if err != nil {
		return nil, fmt.Errorf("resolve tenant: %w", err)
	}
	if t == nil {
		s.logger.Info("tenant not found", "identifier_type", idType)
		return &TenantResponse{
			Exists:             false,
			VerificationStatus: party.StatusNotFound,
			Message:            fmt.Sprintf("Tenant with identifier '%s' not found", req.Identifier),
		}, nil
	}

	var (
		histories []rentals.History
		rs        []ratings.Rating
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		histories, err = s.rentals.ByTenant(gctx, t.ID)
		return err
	})
	g.Go(func() (err error) {
		rs, err = s.ratings.ByTenantAndType(gctx, t.ID, ratings.LandlordToTenant)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("gather tenant records: %w", err)
	}

	a := scoring.AssessTenant(t, histories, rs)
	saved, err := s.tenants.SaveAssessment(ctx, t.ID, a)
	if err != nil {
		return nil, fmt.Errorf("save tenant assessment: %w", err)
	}

	resp := &TenantResponse{
		ID:                 &saved.ID,
		Name:               saved.Name,
		IDNumber:           saved.IDNumber,
		Phone:              saved.Phone,
		CurrentAddress:     saved.CurrentAddress,
		Exists:             true,
		VerificationStatus: saved.VerificationStatus,
		AverageRating:      &saved.AverageRating,
		TrustScore:         &a.TrustScore,
		Classification:     a.Classification,
		BehavioralSummary:  a.BehavioralSummary,
		RedFlags:           a.RedFlags,
		Message:            "Tenant verification completed successfully",
	}

	if includeHistory {
		resp.RentalHistory = tenantHistory(histories)
	}
	if includeRatings {
		resp.Ratings = tenantRatings(rs)
	}

	s.logger.Info("tenant verified",
		"id", saved.ID,
		"trust_score", a.TrustScore,
		"classification", a.Classification,
	)

	s.store(ctx, key, resp)
	return resp, nil
}

func (s *service) lookup(ctx context.Context, key string, dest any) bool {
	hit, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		s.logger.Warn("verification cache read failed", "key", key, "error", err)
		return false
	}
	return hit
}

func (s *service) store(ctx context.Context, key string, v any) {
	if err := s.cache.Set(ctx, key, v, s.ttl); err != nil {
		s.logger.Warn("verification cache write failed", "key", key, "error", err)
	}
}

func cacheKey(kind string, idType party.IdentifierType, identifier string, flags ...bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s%s:%s:%s", party.CachePrefix, kind, idType, idType.Canonical(identifier))
	for _, f := range flags {
		if f {
			sb.WriteString(":1")
		} else {
			sb.WriteString(":0")
		}
	}
	return sb.String()
}

func managedProperties(list []string) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func summarizeProperties(properties []string, histories []rentals.History, byProperty [][]ratings.Rating) []Property {
	out := make([]Property, 0, len(properties))

	for i, address := range properties {
		p := Property{PropertyAddress: address}
		needle := strings.ToLower(address)

		var matched []rentals.History
		for _, h := range histories {
			if strings.Contains(strings.ToLower(h.PropertyAddress), needle) {
				matched = append(matched, h)
			}
		}

		if len(matched) > 0 {
			since := matched[0].LeaseStartDate
			tenantIDs := make(map[string]bool)
			seenNames := make(map[string]bool)
			names := []string{}

			for _, h := range matched {
				if h.LeaseStartDate.Before(since.Time) {
					since = h.LeaseStartDate
				}
				tenantIDs[h.TenantID.String()] = true
				if !seenNames[h.TenantName] {
					seenNames[h.TenantName] = true
					names = append(names, h.TenantName)
				}
			}

			c := rentals.Tally(matched)
			count := len(tenantIDs)

			p.ManagedSince = &since
			p.TotalTenants = &count
			p.TotalDisputes = &c.Disputes
			p.TotalEvictions = &c.Evictions
			p.TenantNames = names
		}

		if avg, ok := scoring.MeanValue(byProperty[i]); ok {
			p.AverageRating = &avg
		}

		out = append(out, p)
	}

	return out
}

func landlordRatings(rs []ratings.Rating) []LandlordRating {
	out := make([]LandlordRating, 0, len(rs))
	for _, r := range rs {
		out = append(out, LandlordRating{
			TenantName:         r.TenantName,
			RatingValue:        r.RatingValue,
			Review:             r.Review,
			PropertyAddress:    r.PropertyAddress,
			RatingDate:         formatting.NewDate(r.CreatedAt),
			Responsiveness:     r.Responsiveness,
			MaintenanceQuality: r.MaintenanceQuality,
			Fairness:           r.Fairness,
			DepositHandling:    r.DepositHandling,
			PrivacyRespect:     r.PrivacyRespect,
			DetectedTraits:     r.DetectedTraits,
		})
	}
	return out
}

func tenantHistory(histories []rentals.History) []TenantHistory {
	out := make([]TenantHistory, 0, len(histories))
	for _, h := range histories {
		out = append(out, TenantHistory{
			PropertyAddress:    h.PropertyAddress,
			LeaseStartDate:     h.LeaseStartDate,
			LeaseEndDate:       h.LeaseEndDate,
			RentAmount:         h.RentAmount,
			OnTimePayments:     h.OnTimePayments,
			LatePaymentsCount:  h.LatePaymentsCount,
			PropertyDamage:     h.PropertyDamage,
			DamageDescription:  h.DamageDescription,
			HadDisputes:        h.HadDisputes,
			DisputeDescription: h.DisputeDescription,
			EvictionFiled:      h.EvictionFiled,
			EvictionReason:     h.EvictionReason,
			LandlordName:       h.LandlordName,
		})
	}
	return out
}

func tenantRatings(rs []ratings.Rating) []TenantRating {
	out := make([]TenantRating, 0, len(rs))
	for _, r := range rs {
		out = append(out, TenantRating{
			LandlordName:      r.LandlordName,
			RatingValue:       r.RatingValue,
			Review:            r.Review,
			PropertyAddress:   r.PropertyAddress,
			RatingDate:        formatting.NewDate(r.CreatedAt),
			PaymentTimeliness: r.PaymentTimeliness,
			PropertyCare:      r.PropertyCare,
			Communication:     r.Communication,
			RuleAdherence:     r.RuleAdherence,
			Cleanliness:       r.Cleanliness,
			DetectedTraits:    r.DetectedTraits,
		})
	}
	return out
}
