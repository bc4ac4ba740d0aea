package growth

import (
	"fmt"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/domain"
)

// claimSlotToken redeems harvests plus a BUD payment for one slot token
func (c *call) claimSlotToken() error {
	g := c.t.Global
	if g.SlotAssetID == 0 || g.BudAssetID == 0 {
		return fmt.Errorf("%w: SLOT and BUD", domain.ErrAssetNotBootstrapped)
	}

	progress := &c.t.Account.Progress
	need := c.rules().HarvestsForSlot
	if progress.HarvestCount < need {
		return fmt.Errorf("%w: %d of %d", domain.ErrInsufficientHarvests, progress.HarvestCount, need)
	}

	if _, err := c.evidence(transferCheck{
		offset:  paymentOffset,
		what:    "slot token payment",
		asset:   g.BudAssetID,
		sender:  c.req.Caller,
		minimum: c.rules().SlotTokenCost,
	}); err != nil {
		return err
	}

	progress.HarvestCount -= need
	c.t.AccountChanged = true
	c.pay(g.SlotAssetID, slotTokenAmount)

	c.emit(domain.EventTypeSlotTokenClaimed, c.slotPayload())
	return nil
}

// unlockSlot burns a slot token to open one more pod
func (c *call) unlockSlot() error {
	if c.t.Global.SlotAssetID == 0 {
		return fmt.Errorf("%w: SLOT", domain.ErrAssetNotBootstrapped)
	}

	a := c.t.Account
	if a.Progress.PodSlotCount >= c.rules().MaxPodSlots {
		return fmt.Errorf("%w: %d", domain.ErrMaxSlotsReached, a.Progress.PodSlotCount)
	}

	if _, err := c.evidence(transferCheck{
		offset: paymentOffset,
		what:   "slot token",
		asset:  c.t.Global.SlotAssetID,
		sender: c.req.Caller,
		amount: slotTokenAmount,
	}); err != nil {
		return err
	}

	a.Progress.PodSlotCount++
	a.Pods = append(a.Pods, domain.PodState{})
	c.t.AccountChanged = true

	c.emit(domain.EventTypeSlotUnlocked, c.slotPayload())
	return nil
}

func (c *call) slotPayload() domain.SlotPayload {
	return domain.SlotPayload{
		Account:      c.req.Caller,
		HarvestCount: c.t.Account.Progress.HarvestCount,
		PodSlotCount: c.t.Account.Progress.PodSlotCount,
		Timestamp:    c.env.Now,
	}
}
