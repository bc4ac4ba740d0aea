package postgres

// PostgreSQL error codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

const globalConfigColumns = `owner, version, period, cleanup_cost, breed_cost,
	bud_asset, terp_asset, slot_asset, seed_counter, biomass_counter,
	total_biomass, cure_vault_bal, terp_registry`

const accountColumns = `address, harvest_count, pod_slots, pods`
