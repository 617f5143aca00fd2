package scoring

import (
	"github.com/JaimeStill/attest/internal/landlords"
	"github.com/JaimeStill/attest/internal/party"
	"github.com/JaimeStill/attest/internal/ratings"
	"github.com/JaimeStill/attest/internal/rentals"
	"github.com/JaimeStill/attest/internal/tenants"
)

// AssessLandlord runs every landlord rule over the same inputs.
func AssessLandlord(l *landlords.Landlord, histories []rentals.History, rs []ratings.Rating) party.Assessment {
	score := LandlordTrustScore(l, histories, rs)
	responsiveness := ResponsivenessScore(rs)
	fairness := FairnessScore(rs)
	deposits := DepositReturnRate(rs)

	return party.Assessment{
		TrustScore:          score,
		Classification:      ClassifyLandlord(l, &score, rs),
		BehavioralSummary:   LandlordSummary(l, histories, rs),
		RedFlags:            LandlordRedFlags(l, histories, rs),
		ResponsivenessScore: &responsiveness,
		FairnessScore:       &fairness,
		DepositReturnRate:   &deposits,
	}
}

// AssessTenant runs every tenant rule over the same inputs.
func AssessTenant(t *tenants.Tenant, histories []rentals.History, rs []ratings.Rating) party.Assessment {
	score := TenantTrustScore(t, histories, rs)

	return party.Assessment{
		TrustScore:        score,
		Classification:    ClassifyTenant(t, &score, histories),
		BehavioralSummary: TenantSummary(t, histories, rs),
		RedFlags:          TenantRedFlags(t, histories, rs),
	}
}
