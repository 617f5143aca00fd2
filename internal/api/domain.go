package api

import (
	"github.com/JaimeStill/attest/internal/books"
	"github.com/JaimeStill/attest/internal/confidence"
	"github.com/JaimeStill/attest/internal/landdocs"
	"github.com/JaimeStill/attest/internal/landlords"
	"github.com/JaimeStill/attest/internal/lands"
	"github.com/JaimeStill/attest/internal/ratings"
	"github.com/JaimeStill/attest/internal/rentals"
	"github.com/JaimeStill/attest/internal/tenants"
	"github.com/JaimeStill/attest/internal/vehicles"
	"github.com/JaimeStill/attest/internal/verification"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Landlords    landlords.System
	Tenants      tenants.System
	Rentals      rentals.System
	Ratings      ratings.System
	Verification verification.System
	Vehicles     vehicles.System
	Lands        lands.System
	LandDocs     landdocs.System
	Books        books.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	db := runtime.Database.Connection()
	source := confidence.NewSource(runtime.Verification.ConfidenceSeed)

	landlordsSystem := landlords.New(db, runtime.Cache, runtime.Logger, runtime.Pagination)
	tenantsSystem := tenants.New(db, runtime.Cache, runtime.Logger, runtime.Pagination)
	rentalsSystem := rentals.New(db, runtime.Cache, runtime.Logger, runtime.Pagination)
	ratingsSystem := ratings.New(db, runtime.Cache, runtime.Logger, runtime.Pagination)

	verificationSystem := verification.New(
		landlordsSystem,
		tenantsSystem,
		rentalsSystem,
		ratingsSystem,
		runtime.Cache,
		runtime.Verification.CacheTTLDuration(),
		runtime.Logger,
	)

	landsSystem := lands.New(db, source, runtime.Logger, runtime.Pagination)

	landDocsSystem := landdocs.New(
		db,
		runtime.Storage,
		landsSystem,
		landdocs.SampleExtractor{},
		runtime.Logger,
		runtime.Pagination,
	)

	return &Domain{
		Landlords:    landlordsSystem,
		Tenants:      tenantsSystem,
		Rentals:      rentalsSystem,
		Ratings:      ratingsSystem,
		Verification: verificationSystem,
		Vehicles:     vehicles.New(db, source, runtime.Logger, runtime.Pagination),
		Lands:        landsSystem,
		LandDocs:     landDocsSystem,
		Books:        books.New(db, runtime.Logger, runtime.Pagination),
	}
}
