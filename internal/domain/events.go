package domain

// Event type constants used for event bus subscriptions and metrics.
//
// Event types follow the pattern: growpod.<entity>.<action>
const (
	// EventTypeAccountOptedIn is published when an account opts in
	EventTypeAccountOptedIn = "growpod.account.opted_in"

	// EventTypeAssetsBootstrapped is published when the three asset classes are created
	EventTypeAssetsBootstrapped = "growpod.assets.bootstrapped"

	// EventTypeAssetIDsUpdated is published when the owner rebinds asset ids
	EventTypeAssetIDsUpdated = "growpod.assets.updated"

	// EventTypeSeedMinted is published when a seed is bought from the seed bank
	EventTypeSeedMinted = "growpod.seed.minted"

	// EventTypeSeedPlanted is published when a seed enters an empty pod
	EventTypeSeedPlanted = "growpod.pod.planted"

	// EventTypePodWatered is published on every accepted water action
	EventTypePodWatered = "growpod.pod.watered"

	// EventTypePodFed is published on every accepted nutrients action
	EventTypePodFed = "growpod.pod.fed"

	// EventTypeStageAdvanced is published when a pod moves to a later stage
	EventTypeStageAdvanced = "growpod.pod.stage_advanced"

	// EventTypePodHarvested is published when a ready pod is harvested
	EventTypePodHarvested = "growpod.pod.harvested"

	// EventTypeRarityRewarded is published when a harvest pays a TERP bonus
	EventTypeRarityRewarded = "growpod.terp.rewarded"

	// EventTypeBiomassProcessed is published when biomass is redeemed for BUD
	EventTypeBiomassProcessed = "growpod.biomass.processed"

	// EventTypePodCleaned is published when a harvested pod is reset
	EventTypePodCleaned = "growpod.pod.cleaned"

	// EventTypeSeedBred is published when two parents produce a new seed.
	// Parents stay in application custody; this event is the reconciliation record.
	EventTypeSeedBred = "growpod.seed.bred"

	// EventTypeSlotTokenClaimed is published when harvests are redeemed for a slot token
	EventTypeSlotTokenClaimed = "growpod.slot.claimed"

	// EventTypeSlotUnlocked is published when a slot token opens a new pod
	EventTypeSlotUnlocked = "growpod.slot.unlocked"
)

// EventTypes returns every event type the growth engine can emit
func EventTypes() []string {
	return []string{
		EventTypeAccountOptedIn,
		EventTypeAssetsBootstrapped,
		EventTypeAssetIDsUpdated,
		EventTypeSeedMinted,
		EventTypeSeedPlanted,
		EventTypePodWatered,
		EventTypePodFed,
		EventTypeStageAdvanced,
		EventTypePodHarvested,
		EventTypeRarityRewarded,
		EventTypeBiomassProcessed,
		EventTypePodCleaned,
		EventTypeSeedBred,
		EventTypeSlotTokenClaimed,
		EventTypeSlotUnlocked,
	}
}
