package domain

import "bytes"

// Stage is a pod's position in its growth cycle.
type Stage uint8

const (
	StageEmpty Stage = iota
	StageGrowing1
	StageGrowing2
	StageGrowing3
	StageGrowing4
	StageReadyToHarvest
	StageAwaitingCleanup
)

// stageNames indexes display names by stage value
var stageNames = [...]string{
	"empty",
	"seedling",
	"vegetative",
	"budding",
	"flowering",
	"ready_to_harvest",
	"awaiting_cleanup",
}

// String returns the display name of the stage
func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "unknown"
}

// Valid reports whether s is one of the defined stages
func (s Stage) Valid() bool {
	return s <= StageAwaitingCleanup
}

// Growing reports whether the pod accepts water and nutrients
func (s Stage) Growing() bool {
	return s >= StageGrowing1 && s <= StageGrowing4
}

// PodState is one growth slot of an account.
type PodState struct {
	Stage          Stage  `json:"stage"`
	WaterCount     uint64 `json:"water_count"`
	LastWatered    uint64 `json:"last_watered"`
	NutrientCount  uint64 `json:"nutrient_count"`
	LastNutrients  uint64 `json:"last_nutrients"`
	PlantedAssetID uint64 `json:"planted_seed"`
	PlantedTime    uint64 `json:"planted_time"`
	DNA            []byte `json:"dna,omitempty"`
	TerpProfile    []byte `json:"terp_profile,omitempty"`
}

// Clone returns a deep copy of the pod
func (p PodState) Clone() PodState {
	c := p
	c.DNA = bytes.Clone(p.DNA)
	c.TerpProfile = bytes.Clone(p.TerpProfile)
	return c
}

// IsEmpty reports whether nothing is planted in the pod
func (p PodState) IsEmpty() bool {
	return p.Stage == StageEmpty
}

// AccountProgress holds counters shared by all pods of an account.
type AccountProgress struct {
	HarvestCount uint64 `json:"harvest_count"`
	PodSlotCount uint64 `json:"pod_slots"`
}

// AccountState is the full local state of an opted-in account.
// len(Pods) always equals Progress.PodSlotCount.
type AccountState struct {
	Address  string          `json:"address"`
	Pods     []PodState      `json:"pods"`
	Progress AccountProgress `json:"progress"`
}

// Clone returns a deep copy of the account state
func (a *AccountState) Clone() *AccountState {
	if a == nil {
		return nil
	}
	c := &AccountState{
		Address:  a.Address,
		Progress: a.Progress,
		Pods:     make([]PodState, len(a.Pods)),
	}
	for i, p := range a.Pods {
		c.Pods[i] = p.Clone()
	}
	return c
}

// Pod returns the pod at index i, or false when the slot is not unlocked
func (a *AccountState) Pod(i int) (*PodState, bool) {
	if i < 0 || i >= len(a.Pods) {
		return nil, false
	}
	return &a.Pods[i], true
}

// GlobalConfig is the single application-wide record.
// Version increments on every persisted change.
type GlobalConfig struct {
	Owner          string `json:"owner"`
	Version        uint64 `json:"version"`
	Period         uint64 `json:"period"`
	CleanupCost    uint64 `json:"cleanup_cost"`
	BreedCost      uint64 `json:"breed_cost"`
	BudAssetID     uint64 `json:"bud_asset"`
	TerpAssetID    uint64 `json:"terp_asset"`
	SlotAssetID    uint64 `json:"slot_asset"`
	SeedCounter    uint64 `json:"seed_counter"`
	BiomassCounter uint64 `json:"biomass_counter"`
	TotalBiomass   uint64 `json:"total_biomass"`
	CureVaultBal   uint64 `json:"cure_vault_bal"`
	TerpRegistry   uint64 `json:"terp_registry"`
}

// Bootstrapped reports whether any asset class has been created
func (g GlobalConfig) Bootstrapped() bool {
	return g.BudAssetID != 0 || g.TerpAssetID != 0 || g.SlotAssetID != 0
}
