package growth

import (
	"fmt"
	"strconv"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
)

// harvest pays out a ready pod. In biomass mode the yield is minted as a
// biomass token carrying its weight; in direct mode it is paid in BUD.
func (c *call) harvest() error {
	p := c.pod()
	if err := c.requireStage(p.Stage == domain.StageReadyToHarvest); err != nil {
		return err
	}
	if err := c.requireBud(); err != nil {
		return err
	}

	g := &c.t.Global
	weight := c.engine.formulas.Weight(p.WaterCount, p.NutrientCount)
	payload := domain.HarvestPayload{
		Account:     c.req.Caller,
		Pod:         c.t.Action.Pod,
		Weight:      weight,
		SeedAssetID: p.PlantedAssetID,
		Timestamp:   c.env.Now,
	}

	var err error
	if c.rules().BiomassMode() {
		if g.BiomassCounter, err = addChecked(g.BiomassCounter, 1, "biomass_counter"); err != nil {
			return err
		}
		if g.TotalBiomass, err = addChecked(g.TotalBiomass, weight, "total_biomass"); err != nil {
			return err
		}
		c.createAsset("", c.req.Caller, domain.AssetSpec{
			Total:    uniqueAmount,
			UnitName: domain.UnitBiomass,
			Name:     biomassNamePrefix + strconv.FormatUint(g.BiomassCounter, 10),
			URL:      c.rules().AssetURLBase + urlPathBiomass,
			Note:     pairNote(domain.NoteFieldWeight, weight, domain.NoteFieldSeed, p.PlantedAssetID),
		})
		payload.BiomassNo = g.BiomassCounter
		c.t.GlobalChanged = true
	} else {
		c.pay(g.BudAssetID, weight)
	}

	if g.TerpAssetID != 0 {
		if reward := c.engine.formulas.RarityReward(p.TerpProfile); reward > 0 {
			if g.TerpRegistry, err = addChecked(g.TerpRegistry, reward, "terp_registry"); err != nil {
				return err
			}
			c.pay(g.TerpAssetID, reward)
			payload.TerpReward = reward
			c.t.GlobalChanged = true
		}
	}

	a := c.t.Account
	if a.Progress.HarvestCount, err = addChecked(a.Progress.HarvestCount, 1, "harvest_count"); err != nil {
		return err
	}
	prev := p.Stage
	p.Stage = domain.StageAwaitingCleanup
	c.t.AccountChanged = true

	c.emit(domain.EventTypePodHarvested, payload)
	if payload.TerpReward > 0 {
		c.emit(domain.EventTypeRarityRewarded, payload)
	}
	c.emit(domain.EventTypeStageAdvanced, c.podPayload(prev))
	return nil
}

// process redeems a biomass token for BUD. Args: [weight]. The weight is
// read from the token's minted note unless the ruleset trusts the declared
// argument.
func (c *call) process() error {
	if !c.rules().BiomassMode() {
		return fmt.Errorf("%w: process requires biomass tokenomics", domain.ErrActionDisabled)
	}
	if err := c.requireBud(); err != nil {
		return err
	}
	token, err := c.evidence(transferCheck{
		offset:   paymentOffset,
		what:     "biomass transfer",
		anyAsset: true,
		amount:   uniqueAmount,
	})
	if err != nil {
		return err
	}

	declared, hasDeclared, err := c.arg(0)
	if err != nil {
		return err
	}

	g := &c.t.Global
	var weight uint64
	if c.rules().TrustDeclaredWeight {
		if !hasDeclared {
			return fmt.Errorf("%w: process needs a declared weight", domain.ErrInvalidArgument)
		}
		if declared > g.TotalBiomass {
			return fmt.Errorf("%w: declared weight %d exceeds outstanding biomass %d", domain.ErrInsufficientAmount, declared, g.TotalBiomass)
		}
		weight = declared
	} else {
		if weight, err = c.mintedWeight(token.AssetID); err != nil {
			return err
		}
		if hasDeclared && declared != weight {
			return fmt.Errorf("%w: declared %d, minted %d", domain.ErrWeightMismatch, declared, weight)
		}
		if weight > g.TotalBiomass {
			return fmt.Errorf("%w: minted weight %d exceeds outstanding biomass %d", domain.ErrInvariantViolation, weight, g.TotalBiomass)
		}
	}

	g.TotalBiomass -= weight
	c.t.GlobalChanged = true
	c.pay(g.BudAssetID, weight)

	c.emit(domain.EventTypeBiomassProcessed, domain.BiomassProcessedPayload{
		Account:        c.req.Caller,
		BiomassAssetID: token.AssetID,
		Weight:         weight,
		Timestamp:      c.env.Now,
	})
	return nil
}

// mintedWeight reads the weight from a biomass token minted by the application
func (c *call) mintedWeight(id uint64) (uint64, error) {
	info, ok := c.req.Assets[id]
	if !ok {
		return 0, fmt.Errorf("%w: asset %d: no ledger metadata", domain.ErrMissingBundledPayment, id)
	}
	if info.UnitName != domain.UnitBiomass || info.Creator != c.env.AppAddress {
		return 0, fmt.Errorf("%w: asset %d is not a biomass token", domain.ErrMissingBundledPayment, id)
	}
	weight, _, err := BiomassNote(info.Note)
	if err != nil {
		return 0, fmt.Errorf("%w: asset %d: %v", domain.ErrMissingBundledPayment, id, err)
	}
	return weight, nil
}

// cleanup resets a harvested pod against a BUD burn
func (c *call) cleanup() error {
	p := c.pod()
	if err := c.requireStage(p.Stage == domain.StageAwaitingCleanup); err != nil {
		return err
	}
	if err := c.requireBud(); err != nil {
		return err
	}
	if _, err := c.evidence(transferCheck{
		offset:  paymentOffset,
		what:    "cleanup burn",
		asset:   c.t.Global.BudAssetID,
		minimum: c.t.Global.CleanupCost,
	}); err != nil {
		return err
	}

	prev := p.Stage
	*p = domain.PodState{}
	c.t.AccountChanged = true

	c.emit(domain.EventTypePodCleaned, c.podPayload(prev))
	return nil
}
