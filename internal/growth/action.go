package growth

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
)

// Action is a parsed action tag.
type Action struct {
	Name string `json:"name"`
	// Pod is the zero-based pod index for pod-scoped actions
	Pod int `json:"pod"`
}

var podScopedActions = map[string]bool{
	domain.ActionPlantSeed: true,
	domain.ActionWater:     true,
	domain.ActionNutrients: true,
	domain.ActionHarvest:   true,
	domain.ActionCleanup:   true,
}

var initRequired = map[string]bool{
	domain.ActionPlantSeed:      true,
	domain.ActionWater:          true,
	domain.ActionNutrients:      true,
	domain.ActionHarvest:        true,
	domain.ActionCleanup:        true,
	domain.ActionClaimSlotToken: true,
	domain.ActionUnlockSlot:     true,
}

var globalActions = map[string]bool{
	domain.ActionBootstrap:   true,
	domain.ActionSetAssetIDs: true,
	domain.ActionMintSeed:    true,
	domain.ActionProcess:     true,
	domain.ActionBreed:       true,
}

// ParseAction resolves a tag such as "water_3" into its action and pod.
// Pod-scoped tags take a suffix 2..PodSlotLimit; no suffix means pod 1.
func ParseAction(tag string) (Action, error) {
	if tag == domain.ActionSetAsaIDs {
		return Action{Name: domain.ActionSetAssetIDs}, nil
	}
	if podScopedActions[tag] || initRequired[tag] || globalActions[tag] {
		return Action{Name: tag}, nil
	}

	i := strings.LastIndexByte(tag, '_')
	if i > 0 && podScopedActions[tag[:i]] {
		suffix := tag[i+1:]
		n, err := strconv.Atoi(suffix)
		if err == nil && strconv.Itoa(n) == suffix && n >= 2 && n <= domain.PodSlotLimit {
			return Action{Name: tag[:i], Pod: n - 1}, nil
		}
	}
	return Action{}, fmt.Errorf("%w: %q", domain.ErrUnknownAction, tag)
}

// Tag renders the action back to its canonical tag
func (a Action) Tag() string {
	if a.Pod == 0 {
		return a.Name
	}
	return a.Name + "_" + strconv.Itoa(a.Pod+1)
}

func (a Action) podScoped() bool {
	return podScopedActions[a.Name]
}

func (a Action) needsInit() bool {
	return initRequired[a.Name]
}
