package rules

import "math"

// Cooldowns, in seconds
const (
	DefaultWaterCooldown    = 600
	MinWaterCooldown        = 600
	DefaultNutrientCooldown = 600
)

// Costs, in BUD micro-units (6 decimals)
const (
	DefaultCleanupBurn   = 500_000_000   // 500 BUD
	DefaultBreedCost     = 1_000_000_000 // 1,000 BUD
	DefaultSeedMintCost  = 250_000_000   // 250 BUD
	DefaultSlotTokenCost = 2_500_000_000 // 2,500 BUD
)

// Biomass weight, in milligram micro-units (2.0g / 0.5g / 3.5g)
const (
	DefaultBaseWeight           = 2_000_000
	DefaultMinWeight            = 500_000
	DefaultMaxWeight            = 3_500_000
	DefaultWaterBonusThreshold  = 10
	DefaultWaterBonusPercent    = 2
	DefaultNutrientBonusPercent = 3
)

// Rarity rewards, in TERP micro-units
const (
	DefaultRarityThreshold = 32
	DefaultMinTerpReward   = 5_000_000  // 5 TERP
	DefaultMaxTerpReward   = 50_000_000 // 50 TERP

	// MaxTerpRewardLimit keeps (threshold-b)*(max-min) within uint64 for
	// any threshold up to 256
	MaxTerpRewardLimit = math.MaxUint64 / 256
)

// Slots
const (
	DefaultHarvestsForSlot = 5
	DefaultInitialPodSlots = 2
	DefaultMaxPodSlots     = 5
)

// DefaultPeriod is the legacy growth period in seconds (10 days)
const DefaultPeriod = 864_000

// DefaultAssetURLBase prefixes asset URLs of bootstrapped and minted assets
const DefaultAssetURLBase = "https://growpod.empire"

// percentDenominator is the divisor of every percentage bonus
const percentDenominator = 100

// Genetic hash domain tags
const (
	TagDNA  = "dna"
	TagTerp = "terp"
	TagSeed = "seed"
)

// Error messages
const (
	ErrMsgInvalidRuleset  = "invalid ruleset"
	ErrMsgReadRulesFailed = "failed to read rules file"
)

// RulesetSchemaName is the schema id the loader validates rule files against
const RulesetSchemaName = "ruleset.schema.json"
