package growth

import (
	"fmt"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
)

// bootstrap creates the BUD, TERP and SLOT asset classes. The created ids
// are bound into the global record once the ledger reports them.
func (c *call) bootstrap() error {
	if err := c.requireOwner(); err != nil {
		return err
	}
	if c.t.Global.Bootstrapped() {
		return fmt.Errorf("%w: bud=%d terp=%d slot=%d", domain.ErrAlreadyBootstrapped,
			c.t.Global.BudAssetID, c.t.Global.TerpAssetID, c.t.Global.SlotAssetID)
	}

	base := c.rules().AssetURLBase
	c.createAsset(domain.KeyBudAsset, "", domain.AssetSpec{
		Total: budTotal, Decimals: budDecimals, UnitName: domain.UnitBUD, Name: budName, URL: base + urlPathBud,
	})
	c.createAsset(domain.KeyTerpAsset, "", domain.AssetSpec{
		Total: terpTotal, Decimals: terpDecimals, UnitName: domain.UnitTERP, Name: terpName, URL: base + urlPathTerp,
	})
	c.createAsset(domain.KeySlotAsset, "", domain.AssetSpec{
		Total: slotTotal, Decimals: slotDecimals, UnitName: domain.UnitSLOT, Name: slotName, URL: base + urlPathSlot,
	})

	c.t.GlobalChanged = true
	c.emit(domain.EventTypeAssetsBootstrapped, c.assetsPayload())
	return nil
}

// setAssetIDs rebinds the asset ids. Args: bud, terp[, slot]. An id that
// is already set can change but never return to 0.
func (c *call) setAssetIDs() error {
	if err := c.requireOwner(); err != nil {
		return err
	}
	if len(c.req.Args) < 2 {
		return fmt.Errorf("%w: set_asset_ids needs bud and terp ids", domain.ErrInvalidArgument)
	}

	g := &c.t.Global
	targets := []*uint64{&g.BudAssetID, &g.TerpAssetID, &g.SlotAssetID}
	for i, target := range targets {
		v, ok, err := c.arg(i)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if v == 0 && *target != 0 {
			return fmt.Errorf("%w: asset id %d cannot be reset to 0", domain.ErrInvalidArgument, i)
		}
		*target = v
	}

	c.t.GlobalChanged = true
	c.emit(domain.EventTypeAssetIDsUpdated, c.assetsPayload())
	return nil
}

// createAsset appends an asset creation by the application. An empty
// receiver leaves the supply with the application.
func (c *call) createAsset(bind, receiver string, spec domain.AssetSpec) {
	spec.Manager = c.env.AppAddress
	spec.Reserve = c.env.AppAddress
	c.effect(domain.LedgerOp{
		Type:     domain.OpCreateAsset,
		Sender:   c.env.AppAddress,
		Receiver: receiver,
		Asset:    &spec,
		Bind:     bind,
	})
}

func (c *call) assetsPayload() domain.AssetsPayload {
	g := c.t.Global
	return domain.AssetsPayload{
		Owner:       g.Owner,
		BudAssetID:  g.BudAssetID,
		TerpAssetID: g.TerpAssetID,
		SlotAssetID: g.SlotAssetID,
		// version is bumped after the handler returns
		Version: g.Version + 1,
	}
}
