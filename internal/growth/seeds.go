package growth

import (
	"strconv"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/rules"
)

// mintSeed sells a seed from the seed bank. Args: [strain, rarity].
func (c *call) mintSeed() error {
	if err := c.requireBud(); err != nil {
		return err
	}
	if _, err := c.evidence(transferCheck{
		offset:  paymentOffset,
		what:    "seed payment",
		asset:   c.t.Global.BudAssetID,
		minimum: c.rules().SeedMintCost,
	}); err != nil {
		return err
	}

	strain, hasStrain, err := c.arg(0)
	if err != nil {
		return err
	}
	rarity, hasRarity, err := c.arg(1)
	if err != nil {
		return err
	}

	n, err := c.nextSeed()
	if err != nil {
		return err
	}
	dna := rules.GeneticHash(c.req.Caller, rules.TagSeed, c.env.Now, c.env.Round)
	c.createAsset("", c.req.Caller, domain.AssetSpec{
		Total:    uniqueAmount,
		UnitName: domain.UnitSeed,
		Name:     seedNamePrefix + strconv.FormatUint(n, 10),
		URL:      c.rules().AssetURLBase + urlPathSeed,
		Note:     seedNote(dna, strain, rarity, hasStrain || hasRarity),
	})

	c.emit(domain.EventTypeSeedMinted, domain.SeedPayload{
		Account:   c.req.Caller,
		SeedNo:    n,
		Timestamp: c.env.Now,
	})
	return nil
}

// plant puts the bundled seed into an empty pod and derives its genetics
func (c *call) plant() error {
	p := c.pod()
	if err := c.requireStage(p.IsEmpty()); err != nil {
		return err
	}
	seed, err := c.evidence(transferCheck{
		offset:   paymentOffset,
		what:     "seed transfer",
		anyAsset: true,
		amount:   uniqueAmount,
	})
	if err != nil {
		return err
	}

	*p = domain.PodState{
		Stage:          domain.StageGrowing1,
		PlantedAssetID: seed.AssetID,
		PlantedTime:    c.env.Now,
		DNA:            rules.GeneticHash(c.req.Caller, rules.TagDNA, c.env.Now, c.env.Round),
		TerpProfile:    rules.GeneticHash(c.req.Caller, rules.TagTerp, c.env.Now, c.env.Round),
	}
	c.t.AccountChanged = true

	c.emit(domain.EventTypeSeedPlanted, c.podPayload(domain.StageEmpty))
	return nil
}

// breed takes a BUD fee and two parent seeds, bundled in that order, and
// mints a hybrid seed. The parents stay with the application.
func (c *call) breed() error {
	if err := c.requireBud(); err != nil {
		return err
	}
	if c.req.Bundle.Index < breedFeeOffset || c.req.Bundle.Size() < breedMinGroupSize {
		return malformed(transferCheck{what: "breed group"}, "needs fee and two parents before the call")
	}

	if _, err := c.evidence(transferCheck{
		offset:  breedFeeOffset,
		what:    "breed fee",
		asset:   c.t.Global.BudAssetID,
		sender:  c.req.Caller,
		minimum: c.t.Global.BreedCost,
	}); err != nil {
		return err
	}
	parent1, err := c.evidence(transferCheck{
		offset: parent1Offset, what: "first parent", anyAsset: true, sender: c.req.Caller, amount: uniqueAmount,
	})
	if err != nil {
		return err
	}
	parent2, err := c.evidence(transferCheck{
		offset: parent2Offset, what: "second parent", anyAsset: true, sender: c.req.Caller, amount: uniqueAmount,
	})
	if err != nil {
		return err
	}

	n, err := c.nextSeed()
	if err != nil {
		return err
	}
	c.createAsset("", c.req.Caller, domain.AssetSpec{
		Total:    uniqueAmount,
		UnitName: domain.UnitSeed,
		Name:     bredSeedNamePrefix + strconv.FormatUint(n, 10),
		URL:      c.rules().AssetURLBase + urlPathSeed,
		Note:     pairNote(domain.NoteFieldParent1, parent1.AssetID, domain.NoteFieldParent2, parent2.AssetID),
	})

	c.emit(domain.EventTypeSeedBred, domain.SeedPayload{
		Account:   c.req.Caller,
		SeedNo:    n,
		Parent1:   parent1.AssetID,
		Parent2:   parent2.AssetID,
		Timestamp: c.env.Now,
	})
	return nil
}

func (c *call) nextSeed() (uint64, error) {
	n, err := addChecked(c.t.Global.SeedCounter, 1, "seed_counter")
	if err != nil {
		return 0, err
	}
	c.t.Global.SeedCounter = n
	c.t.GlobalChanged = true
	return n, nil
}
