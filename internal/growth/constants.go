package growth

// Stage thresholds on the water counter. Reaching ripeWaterCount makes the
// pod ready to harvest from any growing stage.
const (
	ripeWaterCount       = 10
	vegetativeWaterCount = 3
	buddingWaterCount    = 6
	floweringWaterCount  = 8
)

// Positional evidence offsets, counted back from the call
const (
	paymentOffset  = 1
	parent2Offset  = 1
	parent1Offset  = 2
	breedFeeOffset = 3

	breedMinGroupSize = 4
)

// Asset parameters created by bootstrap
const (
	budTotal    = 10_000_000_000_000_000 // 10B BUD, 6 decimals
	budDecimals = 6
	budName     = "GrowPod BUD"

	terpTotal    = 100_000_000_000_000 // 100M TERP, 6 decimals
	terpDecimals = 6
	terpName     = "GrowPod TERP"

	slotTotal    = 1_000_000
	slotDecimals = 0
	slotName     = "GrowPod Slot Token"
)

// Names of minted unique tokens; the counter value is appended
const (
	seedNamePrefix     = "GrowPod Seed #"
	bredSeedNamePrefix = "GrowPod Bred Seed #"
	biomassNamePrefix  = "GrowPod Biomass #"
)

// URL paths appended to the ruleset's asset URL base
const (
	urlPathBud     = "/bud"
	urlPathTerp    = "/terp"
	urlPathSlot    = "/slot"
	urlPathSeed    = "/seed"
	urlPathBiomass = "/biomass"
)

// slotTokenAmount is the number of slot tokens paid per claim and burned per unlock
const slotTokenAmount = 1

// uniqueAmount is the quantity of a unique token moved by a transfer
const uniqueAmount = 1
