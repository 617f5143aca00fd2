package verification_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/attest/internal/landlords"
	"github.com/JaimeStill/attest/internal/party"
	"github.com/JaimeStill/attest/internal/ratings"
	"github.com/JaimeStill/attest/internal/rentals"
	"github.com/JaimeStill/attest/internal/scoring"
	"github.com/JaimeStill/attest/internal/tenants"
	"github.com/JaimeStill/attest/internal/verification"
	"github.com/JaimeStill/attest/pkg/formatting"
	"github.com/JaimeStill/attest/pkg/lifecycle"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T { return &v }

type landlordStore struct {
	landlords.System
	landlord *landlords.Landlord
	finds    int
	idType   party.IdentifierType
	saved    *party.Assessment
}

func (s *landlordStore) FindByIdentifier(_ context.Context, identifier string, idType party.IdentifierType) (*landlords.Landlord, error) {
	s.finds++
	s.idType = idType
	if s.landlord == nil {
		return nil, nil
	}
	if idType == party.ByName {
		if strings.Contains(strings.ToLower(s.landlord.Name), strings.ToLower(identifier)) {
			return s.landlord, nil
		}
		return nil, nil
	}
	if identifier != s.landlord.IDNumber {
		return nil, nil
	}
	return s.landlord, nil
}

func (s *landlordStore) SaveAssessment(_ context.Context, id uuid.UUID, a party.Assessment) (*landlords.Landlord, error) {
	s.saved = &a
	l := *s.landlord
	l.TrustScore = &a.TrustScore
	l.Classification = &a.Classification
	l.RedFlags = a.RedFlags
	l.VerificationStatus = party.StatusVerified
	return &l, nil
}

type tenantStore struct {
	tenants.System
	tenant *tenants.Tenant
	saved  *party.Assessment
}

func (s *tenantStore) FindByIdentifier(_ context.Context, identifier string, _ party.IdentifierType) (*tenants.Tenant, error) {
	if s.tenant == nil || identifier != s.tenant.IDNumber {
		return nil, nil
	}
	return s.tenant, nil
}

func (s *tenantStore) SaveAssessment(_ context.Context, _ uuid.UUID, a party.Assessment) (*tenants.Tenant, error) {
	s.saved = &a
	t := *s.tenant
	t.TrustScore = &a.TrustScore
	return &t, nil
}

type rentalStore struct {
	rentals.System
	histories []rentals.History
	err       error
}

func (s *rentalStore) ByLandlord(context.Context, uuid.UUID) ([]rentals.History, error) {
	return s.histories, s.err
}

func (s *rentalStore) ByTenant(context.Context, uuid.UUID) ([]rentals.History, error) {
	return s.histories, s.err
}

type ratingStore struct {
	ratings.System
	mu         sync.Mutex
	ratings    []ratings.Rating
	properties []string
}

func (s *ratingStore) ByLandlordAndType(_ context.Context, _ uuid.UUID, t ratings.Type) ([]ratings.Rating, error) {
	return s.filter(t), nil
}

func (s *ratingStore) ByTenantAndType(_ context.Context, _ uuid.UUID, t ratings.Type) ([]ratings.Rating, error) {
	return s.filter(t), nil
}

func (s *ratingStore) ByProperty(_ context.Context, address string) ([]ratings.Rating, error) {
	s.mu.Lock()
	s.properties = append(s.properties, address)
	s.mu.Unlock()

	var out []ratings.Rating
	for _, r := range s.ratings {
		if strings.Contains(strings.ToLower(r.PropertyAddress), strings.ToLower(address)) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *ratingStore) filter(t ratings.Type) []ratings.Rating {
	var out []ratings.Rating
	for _, r := range s.ratings {
		if r.RatingType == t {
			out = append(out, r)
		}
	}
	return out
}

// memCache is a JSON round-tripping cache.System.
type memCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string][]byte)}
}

func (c *memCache) Start(*lifecycle.Coordinator) error { return nil }

func (c *memCache) Get(_ context.Context, key string, dest any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memCache) Set(_ context.Context, key string, v any, _ time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = raw
	return nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
	}
	return nil
}

func (c *memCache) DeletePrefix(_ context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
	return nil
}

type fixture struct {
	landlords *landlordStore
	tenants   *tenantStore
	rentals   *rentalStore
	ratings   *ratingStore
	cache     *memCache
	sys       verification.System
}

func newFixture() *fixture {
	f := &fixture{
		landlords: &landlordStore{},
		tenants:   &tenantStore{},
		rentals:   &rentalStore{},
		ratings:   &ratingStore{},
		cache:     newMemCache(),
	}
	f.sys = verification.New(f.landlords, f.tenants, f.rentals, f.ratings, f.cache, time.Minute, discard())
	return f
}

func date(y int, m time.Month, d int) formatting.Date {
	return formatting.NewDate(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func TestVerifyLandlordNotFound(t *testing.T) {
	f := newFixture()

	resp, err := f.sys.VerifyLandlord(context.Background(), verification.LandlordRequest{Identifier: "ID404"})
	if err != nil {
		t.Fatalf("VerifyLandlord() error = %v", err)
	}

	if resp.Exists {
		t.Error("exists = true, want false")
	}
	if resp.VerificationStatus != party.StatusNotFound {
		t.Errorf("status = %s, want NOT_FOUND", resp.VerificationStatus)
	}
	if resp.Message != "Landlord with identifier 'ID404' not found" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.TrustScore != nil {
		t.Errorf("trust score = %v, want nil", *resp.TrustScore)
	}
	if f.landlords.idType != party.ByIDNumber {
		t.Errorf("identifier type = %s, want ID_NUMBER default", f.landlords.idType)
	}

	if _, err := f.sys.VerifyLandlord(context.Background(), verification.LandlordRequest{Identifier: "ID404"}); err != nil {
		t.Fatalf("second VerifyLandlord() error = %v", err)
	}
	if f.landlords.finds != 2 {
		t.Errorf("finds = %d, want 2 since misses are not cached", f.landlords.finds)
	}
}

func TestVerifyLandlordPersistsAssessment(t *testing.T) {
	f := newFixture()

	landlordID := uuid.New()
	tenantA, tenantB := uuid.New(), uuid.New()

	f.landlords.landlord = &landlords.Landlord{
		ID:                 landlordID,
		Name:               "Acme Rentals",
		IDNumber:           "LL-1",
		VerificationStatus: party.StatusPending,
		AverageRating:      4.5,
		ManagedProperties:  []string{"12 Main St", "  ", "8 Oak Ave"},
	}
	f.rentals.histories = []rentals.History{
		{TenantID: tenantA, TenantName: "Ann", PropertyAddress: "12 Main St, Unit 1", LeaseStartDate: date(2021, time.March, 1), HadDisputes: true},
		{TenantID: tenantB, TenantName: "Ben", PropertyAddress: "12 main st, unit 2", LeaseStartDate: date(2020, time.June, 1)},
		{TenantID: tenantA, TenantName: "Ann", PropertyAddress: "12 Main St, Unit 1", LeaseStartDate: date(2023, time.January, 1), EvictionFiled: true},
	}
	f.ratings.ratings = []ratings.Rating{
		{
			RatingType:      ratings.TenantToLandlord,
			TenantName:      "Ann",
			RatingValue:     5,
			PropertyAddress: "12 Main St, Unit 1",
			LandlordMetrics: ratings.LandlordMetrics{Responsiveness: ptr(5), Fairness: ptr(5), DepositHandling: ptr(4)},
			CreatedAt:       time.Date(2024, 2, 3, 10, 0, 0, 0, time.UTC),
		},
		{
			RatingType:      ratings.TenantToLandlord,
			TenantName:      "Ben",
			RatingValue:     4,
			PropertyAddress: "12 Main St, Unit 2",
			CreatedAt:       time.Date(2024, 5, 6, 10, 0, 0, 0, time.UTC),
		},
		{RatingType: ratings.LandlordToTenant, TenantName: "Ann", RatingValue: 1, PropertyAddress: "12 Main St, Unit 1"},
	}

	req := verification.LandlordRequest{Identifier: "LL-1", IdentifierType: "id_number"}
	resp, err := f.sys.VerifyLandlord(context.Background(), req)
	if err != nil {
		t.Fatalf("VerifyLandlord() error = %v", err)
	}

	if !resp.Exists || resp.ID == nil || *resp.ID != landlordID {
		t.Fatalf("resp = %+v, want existing landlord", resp)
	}

	if f.landlords.saved == nil {
		t.Fatal("assessment was not persisted")
	}
	want := scoring.AssessLandlord(f.landlords.landlord, f.rentals.histories, f.ratings.filter(ratings.TenantToLandlord))
	if f.landlords.saved.TrustScore != want.TrustScore || *resp.TrustScore != want.TrustScore {
		t.Errorf("trust score saved = %d, reported = %d, want %d", f.landlords.saved.TrustScore, *resp.TrustScore, want.TrustScore)
	}
	if resp.Classification != want.Classification {
		t.Errorf("classification = %s, want %s", resp.Classification, want.Classification)
	}
	if resp.VerificationStatus != party.StatusVerified {
		t.Errorf("status = %s, want the saved record's status", resp.VerificationStatus)
	}

	if len(resp.Properties) != 2 {
		t.Fatalf("properties = %d, want 2 after dropping the blank entry", len(resp.Properties))
	}
	mainSt, oak := resp.Properties[0], resp.Properties[1]

	if mainSt.TotalTenants == nil || *mainSt.TotalTenants != 2 {
		t.Errorf("total tenants = %v, want 2", mainSt.TotalTenants)
	}
	if *mainSt.TotalDisputes != 1 || *mainSt.TotalEvictions != 1 {
		t.Errorf("disputes/evictions = %d/%d, want 1/1", *mainSt.TotalDisputes, *mainSt.TotalEvictions)
	}
	if mainSt.ManagedSince == nil || mainSt.ManagedSince.String() != "2020-06-01" {
		t.Errorf("managed since = %v, want 2020-06-01", mainSt.ManagedSince)
	}
	if strings.Join(mainSt.TenantNames, ",") != "Ann,Ben" {
		t.Errorf("tenant names = %v, want [Ann Ben]", mainSt.TenantNames)
	}
	if mainSt.AverageRating == nil {
		t.Error("main street average rating should be set")
	}

	if oak.TotalTenants != nil || oak.ManagedSince != nil || oak.AverageRating != nil {
		t.Errorf("unmentioned property = %+v, want history fields nil", oak)
	}

	if len(resp.Ratings) != 2 {
		t.Fatalf("ratings = %d, want the 2 tenant-to-landlord ratings", len(resp.Ratings))
	}
	if resp.Ratings[0].RatingDate.String() != "2024-02-03" || resp.Ratings[0].Responsiveness == nil {
		t.Errorf("first rating = %+v", resp.Ratings[0])
	}

	if _, err := f.sys.VerifyLandlord(context.Background(), req); err != nil {
		t.Fatalf("cached VerifyLandlord() error = %v", err)
	}
	if f.landlords.finds != 1 {
		t.Errorf("finds = %d, want 1 with the report served from cache", f.landlords.finds)
	}

	if err := f.cache.DeletePrefix(context.Background(), party.CachePrefix); err != nil {
		t.Fatal(err)
	}
	if _, err := f.sys.VerifyLandlord(context.Background(), req); err != nil {
		t.Fatalf("VerifyLandlord() after eviction error = %v", err)
	}
	if f.landlords.finds != 2 {
		t.Errorf("finds = %d, want 2 after eviction", f.landlords.finds)
	}
}

func TestVerifyLandlordExcludesSections(t *testing.T) {
	f := newFixture()
	f.landlords.landlord = &landlords.Landlord{ID: uuid.New(), IDNumber: "LL-2", ManagedProperties: []string{"1 Elm"}}
	f.ratings.ratings = []ratings.Rating{{RatingType: ratings.TenantToLandlord, RatingValue: 3}}

	resp, err := f.sys.VerifyLandlord(context.Background(), verification.LandlordRequest{
		Identifier:        "LL-2",
		IncludeProperties: ptr(false),
		IncludeRatings:    ptr(false),
	})
	if err != nil {
		t.Fatalf("VerifyLandlord() error = %v", err)
	}

	if resp.Properties != nil || resp.Ratings != nil {
		t.Errorf("properties/ratings = %v/%v, want both omitted", resp.Properties, resp.Ratings)
	}
	if len(f.ratings.properties) != 0 {
		t.Errorf("property lookups = %v, want none when properties are excluded", f.ratings.properties)
	}
	if len(resp.ManagedProperties) != 1 {
		t.Errorf("managed properties = %v, want the stored list", resp.ManagedProperties)
	}
}

func TestVerifyTenantZeroHistory(t *testing.T) {
	f := newFixture()
	f.tenants.tenant = &tenants.Tenant{ID: uuid.New(), Name: "Jane", IDNumber: "T-1"}

	resp, err := f.sys.VerifyTenant(context.Background(), verification.TenantRequest{Identifier: "T-1"})
	if err != nil {
		t.Fatalf("VerifyTenant() error = %v", err)
	}

	if *resp.TrustScore != scoring.BaseScore {
		t.Errorf("trust score = %d, want %d", *resp.TrustScore, scoring.BaseScore)
	}
	if resp.Classification != party.Safe {
		t.Errorf("classification = %s, want Safe", resp.Classification)
	}
	if len(resp.RedFlags) != 0 {
		t.Errorf("red flags = %v, want none", resp.RedFlags)
	}
	if f.tenants.saved == nil || f.tenants.saved.ResponsivenessScore != nil {
		t.Errorf("saved assessment = %+v, want tenant assessment without landlord scores", f.tenants.saved)
	}
	if resp.Message != "Tenant verification completed successfully" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestVerifyTenantHistory(t *testing.T) {
	f := newFixture()
	f.tenants.tenant = &tenants.Tenant{ID: uuid.New(), Name: "Jane", IDNumber: "T-2"}
	f.rentals.histories = []rentals.History{
		{LandlordName: "Acme", PropertyAddress: "3 Pine", LeaseStartDate: date(2022, time.January, 1), LatePaymentsCount: 2, OnTimePayments: false},
	}
	f.ratings.ratings = []ratings.Rating{
		{
			RatingType:    ratings.LandlordToTenant,
			LandlordName:  "Acme",
			RatingValue:   2,
			TenantMetrics: ratings.TenantMetrics{PaymentTimeliness: ptr(2)},
		},
	}

	resp, err := f.sys.VerifyTenant(context.Background(), verification.TenantRequest{
		Identifier:           "T-2",
		IncludeRentalHistory: ptr(true),
	})
	if err != nil {
		t.Fatalf("VerifyTenant() error = %v", err)
	}

	if len(resp.RentalHistory) != 1 || resp.RentalHistory[0].LandlordName != "Acme" || resp.RentalHistory[0].LatePaymentsCount != 2 {
		t.Errorf("rental history = %+v", resp.RentalHistory)
	}
	if len(resp.Ratings) != 1 || resp.Ratings[0].PaymentTimeliness == nil {
		t.Errorf("ratings = %+v", resp.Ratings)
	}

	want := scoring.TenantTrustScore(f.tenants.tenant, f.rentals.histories, f.ratings.ratings)
	if *resp.TrustScore != want {
		t.Errorf("trust score = %d, want %d", *resp.TrustScore, want)
	}
}

func TestVerifyTenantGatherFailure(t *testing.T) {
	f := newFixture()
	f.tenants.tenant = &tenants.Tenant{ID: uuid.New(), IDNumber: "T-3"}
	f.rentals.err = errors.New("connection refused")

	_, err := f.sys.VerifyTenant(context.Background(), verification.TenantRequest{Identifier: "T-3"})
	if err == nil || !strings.Contains(err.Error(), "connection refused") {
		t.Fatalf("err = %v, want gather failure", err)
	}
	if f.tenants.saved != nil {
		t.Error("assessment should not be saved when records cannot be gathered")
	}
}

func TestVerifyLandlordCacheKeyFollowsMatchRules(t *testing.T) {
	tests := []struct {
		name      string
		idType    string
		first     string
		second    string
		wantFinds int
		wantFound bool
	}{
		{"exact id number keeps case", "ID_NUMBER", "AB-1", "ab-1", 2, false},
		{"exact id number trims", "ID_NUMBER", "AB-1", " AB-1 ", 1, true},
		{"name folds case", "NAME", "Acme", "ACME", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.landlords.landlord = &landlords.Landlord{ID: uuid.New(), Name: "Acme Rentals", IDNumber: "AB-1"}
			ctx := context.Background()

			first, err := f.sys.VerifyLandlord(ctx, verification.LandlordRequest{Identifier: tt.first, IdentifierType: tt.idType})
			if err != nil {
				t.Fatalf("first VerifyLandlord() error = %v", err)
			}
			if !first.Exists {
				t.Fatal("first verification should find the landlord")
			}

			second, err := f.sys.VerifyLandlord(ctx, verification.LandlordRequest{Identifier: tt.second, IdentifierType: tt.idType})
			if err != nil {
				t.Fatalf("second VerifyLandlord() error = %v", err)
			}

			if f.landlords.finds != tt.wantFinds {
				t.Errorf("finds = %d, want %d", f.landlords.finds, tt.wantFinds)
			}
			if second.Exists != tt.wantFound {
				t.Errorf("exists = %v, want %v", second.Exists, tt.wantFound)
			}
			if !tt.wantFound && second.VerificationStatus != party.StatusNotFound {
				t.Errorf("status = %s, want NOT_FOUND", second.VerificationStatus)
			}
		})
	}
}
