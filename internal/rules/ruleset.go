package rules

import (
	"errors"
	"fmt"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
)

// ErrInvalidRuleset is returned when a ruleset violates its own constraints
var ErrInvalidRuleset = errors.New(ErrMsgInvalidRuleset)

// Ruleset carries every tunable constant of the game.
type Ruleset struct {
	WaterCooldownDefault uint64 `yaml:"water_cooldown_default" json:"water_cooldown_default"`
	WaterCooldownMin     uint64 `yaml:"water_cooldown_min" json:"water_cooldown_min"`
	NutrientCooldown     uint64 `yaml:"nutrient_cooldown" json:"nutrient_cooldown"`

	CleanupBurn   uint64 `yaml:"cleanup_burn" json:"cleanup_burn"`
	BreedCost     uint64 `yaml:"breed_cost" json:"breed_cost"`
	SeedMintCost  uint64 `yaml:"seed_mint_cost" json:"seed_mint_cost"`
	SlotTokenCost uint64 `yaml:"slot_token_cost" json:"slot_token_cost"`

	BaseWeight           uint64 `yaml:"base_weight" json:"base_weight"`
	MinWeight            uint64 `yaml:"min_weight" json:"min_weight"`
	MaxWeight            uint64 `yaml:"max_weight" json:"max_weight"`
	WaterBonusThreshold  uint64 `yaml:"water_bonus_threshold" json:"water_bonus_threshold"`
	WaterBonusPercent    uint64 `yaml:"water_bonus_percent" json:"water_bonus_percent"`
	NutrientBonusPercent uint64 `yaml:"nutrient_bonus_percent" json:"nutrient_bonus_percent"`

	RarityThreshold uint64 `yaml:"rarity_threshold" json:"rarity_threshold"`
	MinTerpReward   uint64 `yaml:"min_terp_reward" json:"min_terp_reward"`
	MaxTerpReward   uint64 `yaml:"max_terp_reward" json:"max_terp_reward"`

	HarvestsForSlot uint64 `yaml:"harvests_for_slot" json:"harvests_for_slot"`
	InitialPodSlots uint64 `yaml:"initial_pod_slots" json:"initial_pod_slots"`
	MaxPodSlots     uint64 `yaml:"max_pod_slots" json:"max_pod_slots"`

	Period       uint64 `yaml:"period" json:"period"`
	AssetURLBase string `yaml:"asset_url_base" json:"asset_url_base"`

	// Tokenomics selects biomass NFTs ("biomass") or direct BUD payouts ("direct") at harvest
	Tokenomics string `yaml:"tokenomics" json:"tokenomics"`

	// TrustDeclaredWeight makes process accept the caller's weight argument
	// without checking it against the biomass token's minted note.
	TrustDeclaredWeight bool `yaml:"trust_declared_weight" json:"trust_declared_weight"`
}

// Default returns the production ruleset
func Default() Ruleset {
	return Ruleset{
		WaterCooldownDefault: DefaultWaterCooldown,
		WaterCooldownMin:     MinWaterCooldown,
		NutrientCooldown:     DefaultNutrientCooldown,
		CleanupBurn:          DefaultCleanupBurn,
		BreedCost:            DefaultBreedCost,
		SeedMintCost:         DefaultSeedMintCost,
		SlotTokenCost:        DefaultSlotTokenCost,
		BaseWeight:           DefaultBaseWeight,
		MinWeight:            DefaultMinWeight,
		MaxWeight:            DefaultMaxWeight,
		WaterBonusThreshold:  DefaultWaterBonusThreshold,
		WaterBonusPercent:    DefaultWaterBonusPercent,
		NutrientBonusPercent: DefaultNutrientBonusPercent,
		RarityThreshold:      DefaultRarityThreshold,
		MinTerpReward:        DefaultMinTerpReward,
		MaxTerpReward:        DefaultMaxTerpReward,
		HarvestsForSlot:      DefaultHarvestsForSlot,
		InitialPodSlots:      DefaultInitialPodSlots,
		MaxPodSlots:          DefaultMaxPodSlots,
		Period:               DefaultPeriod,
		AssetURLBase:         DefaultAssetURLBase,
		Tokenomics:           domain.TokenomicsBiomass,
	}
}

// Validate checks the cross-field constraints the schema cannot express
func (r Ruleset) Validate() error {
	switch {
	case r.WaterCooldownDefault < r.WaterCooldownMin:
		return fmt.Errorf("%w: water_cooldown_default %d below water_cooldown_min %d", ErrInvalidRuleset, r.WaterCooldownDefault, r.WaterCooldownMin)
	case r.MinWeight > r.BaseWeight || r.BaseWeight > r.MaxWeight:
		return fmt.Errorf("%w: weights must satisfy min <= base <= max", ErrInvalidRuleset)
	case r.RarityThreshold == 0 || r.RarityThreshold > 256:
		return fmt.Errorf("%w: rarity_threshold must be in 1..256", ErrInvalidRuleset)
	case r.MinTerpReward > r.MaxTerpReward:
		return fmt.Errorf("%w: min_terp_reward exceeds max_terp_reward", ErrInvalidRuleset)
	case r.MaxTerpReward > MaxTerpRewardLimit:
		return fmt.Errorf("%w: max_terp_reward cannot exceed %d", ErrInvalidRuleset, uint64(MaxTerpRewardLimit))
	case r.HarvestsForSlot == 0:
		return fmt.Errorf("%w: harvests_for_slot must be positive", ErrInvalidRuleset)
	case r.InitialPodSlots == 0 || r.InitialPodSlots > r.MaxPodSlots:
		return fmt.Errorf("%w: initial_pod_slots must be in 1..max_pod_slots", ErrInvalidRuleset)
	case r.MaxPodSlots > domain.PodSlotLimit:
		return fmt.Errorf("%w: max_pod_slots cannot exceed %d", ErrInvalidRuleset, domain.PodSlotLimit)
	case r.Tokenomics != domain.TokenomicsBiomass && r.Tokenomics != domain.TokenomicsDirect:
		return fmt.Errorf("%w: unknown tokenomics %q", ErrInvalidRuleset, r.Tokenomics)
	}
	return nil
}

// BiomassMode reports whether harvests mint biomass tokens
func (r Ruleset) BiomassMode() bool {
	return r.Tokenomics == domain.TokenomicsBiomass
}
