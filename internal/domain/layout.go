package domain

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Global state keys, exposed verbatim for inspection and migration tooling.
const (
	KeyOwner          = "owner"
	KeyPeriod         = "period"
	KeyCleanupCost    = "cleanup_cost"
	KeyBreedCost      = "breed_cost"
	KeyBudAsset       = "bud_asset"
	KeyTerpAsset      = "terp_asset"
	KeySlotAsset      = "slot_asset"
	KeySeedCounter    = "seed_counter"
	KeyBiomassCounter = "biomass_counter"
	KeyTotalBiomass   = "total_biomass"
	KeyCureVaultBal   = "cure_vault_bal"
	KeyTerpRegistry   = "terp_registry"
)

// Local state keys. Pod keys carry a "_N" suffix for pod index N-1 > 0.
const (
	KeyStage         = "stage"
	KeyWaterCount    = "water_count"
	KeyLastWatered   = "last_watered"
	KeyNutrientCount = "nutrient_count"
	KeyLastNutrients = "last_nutrients"
	KeyPlantedSeed   = "planted_seed"
	KeyPlantedTime   = "planted_time"
	KeyDNA           = "dna"
	KeyTerpProfile   = "terp_profile"
	KeyHarvestCount  = "harvest_count"
	KeyPodSlots      = "pod_slots"
)

// StateValue is a single typed entry of the state layout.
type StateValue struct {
	Bytes []byte `json:"bytes,omitempty"`
	Uint  uint64 `json:"uint"`
	IsRaw bool   `json:"is_bytes,omitempty"`
}

// UintValue builds an integer entry
func UintValue(v uint64) StateValue {
	return StateValue{Uint: v}
}

// BytesValue builds a byte-slice entry
func BytesValue(b []byte) StateValue {
	return StateValue{Bytes: bytes.Clone(b), IsRaw: true}
}

// Layout is a key/value view of persisted state.
type Layout map[string]StateValue

// PodKey returns the layout key for a field of pod index i
func PodKey(field string, i int) string {
	if i == 0 {
		return field
	}
	return field + "_" + strconv.Itoa(i+1)
}

// StateLayout returns the global record as its persisted key/value layout
func (g GlobalConfig) StateLayout() Layout {
	return Layout{
		KeyOwner:          BytesValue([]byte(g.Owner)),
		KeyPeriod:         UintValue(g.Period),
		KeyCleanupCost:    UintValue(g.CleanupCost),
		KeyBreedCost:      UintValue(g.BreedCost),
		KeyBudAsset:       UintValue(g.BudAssetID),
		KeyTerpAsset:      UintValue(g.TerpAssetID),
		KeySlotAsset:      UintValue(g.SlotAssetID),
		KeySeedCounter:    UintValue(g.SeedCounter),
		KeyBiomassCounter: UintValue(g.BiomassCounter),
		KeyTotalBiomass:   UintValue(g.TotalBiomass),
		KeyCureVaultBal:   UintValue(g.CureVaultBal),
		KeyTerpRegistry:   UintValue(g.TerpRegistry),
	}
}

// StateLayout returns the account as its persisted key/value layout
func (a *AccountState) StateLayout() Layout {
	l := Layout{
		KeyHarvestCount: UintValue(a.Progress.HarvestCount),
		KeyPodSlots:     UintValue(a.Progress.PodSlotCount),
	}
	for i, p := range a.Pods {
		l[PodKey(KeyStage, i)] = UintValue(uint64(p.Stage))
		l[PodKey(KeyWaterCount, i)] = UintValue(p.WaterCount)
		l[PodKey(KeyLastWatered, i)] = UintValue(p.LastWatered)
		l[PodKey(KeyNutrientCount, i)] = UintValue(p.NutrientCount)
		l[PodKey(KeyLastNutrients, i)] = UintValue(p.LastNutrients)
		l[PodKey(KeyPlantedSeed, i)] = UintValue(p.PlantedAssetID)
		l[PodKey(KeyPlantedTime, i)] = UintValue(p.PlantedTime)
		l[PodKey(KeyDNA, i)] = BytesValue(p.DNA)
		l[PodKey(KeyTerpProfile, i)] = BytesValue(p.TerpProfile)
	}
	return l
}

// ParseAccountLayout rebuilds an account from its key/value layout.
func ParseAccountLayout(address string, l Layout) (*AccountState, error) {
	slots, ok := l[KeyPodSlots]
	if !ok {
		return nil, fmt.Errorf("%w: missing %s", ErrInvalidArgument, KeyPodSlots)
	}
	if slots.Uint == 0 || slots.Uint > PodSlotLimit {
		return nil, fmt.Errorf("%w: %s=%d", ErrInvalidArgument, KeyPodSlots, slots.Uint)
	}
	a := &AccountState{
		Address: address,
		Progress: AccountProgress{
			HarvestCount: l[KeyHarvestCount].Uint,
			PodSlotCount: slots.Uint,
		},
		Pods: make([]PodState, 0, slots.Uint),
	}
	for i := 0; i < int(slots.Uint); i++ {
		stage := l[PodKey(KeyStage, i)].Uint
		if stage > uint64(StageAwaitingCleanup) {
			return nil, fmt.Errorf("%w: %s=%d", ErrInvalidArgument, PodKey(KeyStage, i), stage)
		}
		a.Pods = append(a.Pods, PodState{
			Stage:          Stage(stage),
			WaterCount:     l[PodKey(KeyWaterCount, i)].Uint,
			LastWatered:    l[PodKey(KeyLastWatered, i)].Uint,
			NutrientCount:  l[PodKey(KeyNutrientCount, i)].Uint,
			LastNutrients:  l[PodKey(KeyLastNutrients, i)].Uint,
			PlantedAssetID: l[PodKey(KeyPlantedSeed, i)].Uint,
			PlantedTime:    l[PodKey(KeyPlantedTime, i)].Uint,
			DNA:            nonEmpty(l[PodKey(KeyDNA, i)].Bytes),
			TerpProfile:    nonEmpty(l[PodKey(KeyTerpProfile, i)].Bytes),
		})
	}
	return a, nil
}

// Keys returns the layout keys in a stable order: shared and first-pod
// keys first, then the keys of each further pod grouped by suffix.
func (l Layout) Keys() []string {
	keys := make([]string, 0, len(l))
	for k := range l {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		sa, fa := splitPodKey(a)
		sb, fb := splitPodKey(b)
		if sa != sb {
			return sa - sb
		}
		return strings.Compare(fa, fb)
	})
	return keys
}

// splitPodKey returns the pod number encoded in a key suffix (1 when absent)
// and the bare field name.
func splitPodKey(k string) (int, string) {
	if i := strings.LastIndexByte(k, '_'); i > 0 {
		if n, err := strconv.Atoi(k[i+1:]); err == nil {
			return n, k[:i]
		}
	}
	return 1, k
}

func nonEmpty(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return bytes.Clone(b)
}
