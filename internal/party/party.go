// Package party holds the vocabulary shared by the landlord and tenant domains:
// identifier lookup types, verification statuses, and classification tiers.
package party

import (
	"context"
	"log/slog"
	"strings"

	"github.com/JaimeStill/attest/pkg/cache"
)

// IdentifierType selects how a verification identifier is matched.
type IdentifierType string

const (
	ByName            IdentifierType = "NAME"
	ByIDNumber        IdentifierType = "ID_NUMBER"
	ByPhone           IdentifierType = "PHONE"
	ByAddress         IdentifierType = "ADDRESS"
	ByPropertyAddress IdentifierType = "PROPERTY_ADDRESS"
)

// ParseIdentifierType upper-cases s, defaulting to ID_NUMBER when blank.
// Unknown values are returned as-is so lookups can reject them.
func ParseIdentifierType(s string) IdentifierType {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return ByIDNumber
	}
	return IdentifierType(s)
}

// Canonical reduces identifier to the value a lookup of this type compares.
// Substring types match case-insensitively and fold case. Exact types keep it.
func (t IdentifierType) Canonical(identifier string) string {
	identifier = strings.TrimSpace(identifier)
	switch t {
	case ByName, ByAddress, ByPropertyAddress:
		return strings.ToLower(identifier)
	default:
		return identifier
	}
}

// Verification statuses.
const (
	StatusPending  = "PENDING"
	StatusVerified = "VERIFIED"
	StatusNotFound = "NOT_FOUND"
)

// Classification tiers.
const (
	Safe    = "Safe"
	Caution = "Caution"
	Avoid   = "Avoid"
	Unknown = "Unknown"
)

// Assessment is the computed verdict persisted back onto a party record.
// Landlord-only scores are nil for tenants.
type Assessment struct {
	TrustScore          int
	Classification      string
	BehavioralSummary   string
	RedFlags            []string
	ResponsivenessScore *int
	FairnessScore       *int
	DepositReturnRate   *float64
}

// CachePrefix namespaces cached verification responses. Any write to a party,
// its rental histories, or its ratings evicts every key under it.
const CachePrefix = "verify:"

// Evict drops every cached verification response. A failure only costs
// staleness until the entries expire.
func Evict(ctx context.Context, c cache.System, logger *slog.Logger) {
	if err := c.DeletePrefix(ctx, CachePrefix); err != nil {
		logger.Warn("verification cache eviction failed", "error", err)
	}
}
