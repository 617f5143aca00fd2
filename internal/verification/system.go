package verification

import "context"

// System defines the verification operations for landlords and tenants.
type System interface {
	Handler() *Handler

	// VerifyLandlord returns a report with Exists false when the identifier
	// does not resolve to a landlord.
	VerifyLandlord(ctx context.Context, req LandlordRequest) (*LandlordResponse, error)

	// VerifyTenant returns a report with Exists false when the identifier
	// does not resolve to a tenant.
	VerifyTenant(ctx context.Context, req TenantRequest) (*TenantResponse, error)
}
