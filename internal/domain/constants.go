package domain

// Action tags accepted by the growth engine. Pod-scoped tags take an
// optional "_N" suffix selecting pod N.
const (
	ActionBootstrap      = "bootstrap"
	ActionSetAssetIDs    = "set_asset_ids"
	ActionMintSeed       = "mint_seed"
	ActionPlantSeed      = "plant_seed"
	ActionWater          = "water"
	ActionNutrients      = "nutrients"
	ActionHarvest        = "harvest"
	ActionProcess        = "process"
	ActionCleanup        = "cleanup"
	ActionBreed          = "breed"
	ActionClaimSlotToken = "claim_slot_token"
	ActionUnlockSlot     = "unlock_slot"

	// ActionSetAsaIDs is the legacy spelling of ActionSetAssetIDs
	ActionSetAsaIDs = "set_asa_ids"

	// ActionOptIn is recorded in events and metrics; it is not part of the
	// invocation vocabulary.
	ActionOptIn = "opt_in"
)

// PodSlotLimit is the hard upper bound on pods per account. The ruleset may
// lower it but never raise it.
const PodSlotLimit = 5

// Asset unit names used to recognise minted entities
const (
	UnitBUD     = "BUD"
	UnitTERP    = "TERP"
	UnitSLOT    = "SLOT"
	UnitSeed    = "SEED"
	UnitBiomass = "BIOMASS"
)

// Minted note field names
const (
	NoteFieldWeight  = "weight"
	NoteFieldSeed    = "seed"
	NoteFieldParent1 = "parent1"
	NoteFieldParent2 = "parent2"
	NoteFieldDNA     = "dna"
	NoteFieldStrain  = "strain"
	NoteFieldRarity  = "rarity"
)

// Tokenomics modes for harvest payouts
const (
	TokenomicsBiomass = "biomass"
	TokenomicsDirect  = "direct"
)
