package growth

import (
	"fmt"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
)

// water advances the water counter and, at fixed counts, the stage.
// Args: [cooldown]. The cooldown may be raised above the minimum but not
// lowered below it.
func (c *call) water() error {
	p := c.pod()
	if err := c.requireStage(p.Stage.Growing()); err != nil {
		return err
	}

	cooldown, ok, err := c.arg(0)
	if err != nil {
		return err
	}
	if !ok {
		cooldown = c.rules().WaterCooldownDefault
	}
	if cooldown < c.rules().WaterCooldownMin {
		return fmt.Errorf("%w: %d < %d", domain.ErrCooldownTooShort, cooldown, c.rules().WaterCooldownMin)
	}
	if err := c.cooldownElapsed(p.LastWatered, cooldown); err != nil {
		return err
	}

	if p.WaterCount, err = addChecked(p.WaterCount, 1, "water_count"); err != nil {
		return err
	}
	p.LastWatered = c.env.Now
	c.t.AccountChanged = true

	prev := p.Stage
	if next := stageForWaterCount(p.WaterCount); next > p.Stage {
		p.Stage = next
	}

	c.emit(domain.EventTypePodWatered, c.podPayload(prev))
	if p.Stage != prev {
		c.emit(domain.EventTypeStageAdvanced, c.podPayload(prev))
	}
	return nil
}

// nutrients advances the nutrient counter under a fixed cooldown
func (c *call) nutrients() error {
	p := c.pod()
	if err := c.requireStage(p.Stage.Growing()); err != nil {
		return err
	}
	if err := c.cooldownElapsed(p.LastNutrients, c.rules().NutrientCooldown); err != nil {
		return err
	}

	var err error
	if p.NutrientCount, err = addChecked(p.NutrientCount, 1, "nutrient_count"); err != nil {
		return err
	}
	p.LastNutrients = c.env.Now
	c.t.AccountChanged = true

	c.emit(domain.EventTypePodFed, c.podPayload(p.Stage))
	return nil
}

// cooldownElapsed passes when last is 0 or at least cooldown seconds ago
func (c *call) cooldownElapsed(last, cooldown uint64) error {
	if last == 0 {
		return nil
	}
	if c.env.Now < last || c.env.Now-last < cooldown {
		return fmt.Errorf("%w: next at %d", domain.ErrCooldownActive, last+cooldown)
	}
	return nil
}

// stageForWaterCount returns the stage a pod reaches at the given water
// count, or StageEmpty when the count does not trigger a transition.
func stageForWaterCount(n uint64) domain.Stage {
	switch {
	case n >= ripeWaterCount:
		return domain.StageReadyToHarvest
	case n == floweringWaterCount:
		return domain.StageGrowing4
	case n == buddingWaterCount:
		return domain.StageGrowing3
	case n == vegetativeWaterCount:
		return domain.StageGrowing2
	}
	return domain.StageEmpty
}
