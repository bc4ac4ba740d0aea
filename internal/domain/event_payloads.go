package domain

// ActionEvent is emitted by the growth engine alongside a transition and
// published by the service after the transition commits.
type ActionEvent struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// PodEventPayload is the payload for pod-scoped events
type PodEventPayload struct {
	Account   string `json:"account"`
	Pod       int    `json:"pod"`
	Stage     Stage  `json:"stage"`
	PrevStage Stage  `json:"prev_stage"`
	Timestamp uint64 `json:"timestamp"`
}

// HarvestPayload is the payload for growpod.pod.harvested events
type HarvestPayload struct {
	Account     string `json:"account"`
	Pod         int    `json:"pod"`
	Weight      uint64 `json:"weight"`
	SeedAssetID uint64 `json:"seed_asset_id"`
	BiomassNo   uint64 `json:"biomass_no,omitempty"`
	TerpReward  uint64 `json:"terp_reward,omitempty"`
	Timestamp   uint64 `json:"timestamp"`
}

// BiomassProcessedPayload is the payload for growpod.biomass.processed events
type BiomassProcessedPayload struct {
	Account        string `json:"account"`
	BiomassAssetID uint64 `json:"biomass_asset_id"`
	Weight         uint64 `json:"weight"`
	Timestamp      uint64 `json:"timestamp"`
}

// SeedPayload is the payload for seed mint and breed events
type SeedPayload struct {
	Account   string `json:"account"`
	SeedNo    uint64 `json:"seed_no"`
	Parent1   uint64 `json:"parent1,omitempty"`
	Parent2   uint64 `json:"parent2,omitempty"`
	Timestamp uint64 `json:"timestamp"`
}

// SlotPayload is the payload for slot claim and unlock events
type SlotPayload struct {
	Account      string `json:"account"`
	HarvestCount uint64 `json:"harvest_count"`
	PodSlotCount uint64 `json:"pod_slots"`
	Timestamp    uint64 `json:"timestamp"`
}

// AssetsPayload is the payload for asset bootstrap and rebinding events
type AssetsPayload struct {
	Owner       string `json:"owner"`
	BudAssetID  uint64 `json:"bud_asset"`
	TerpAssetID uint64 `json:"terp_asset"`
	SlotAssetID uint64 `json:"slot_asset"`
	Version     uint64 `json:"version"`
}
