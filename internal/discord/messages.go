package discord

// Friendly message constants for Discord responses
const (
	// Account
	MsgNotOptedIn     = "🌱 **Not Opted In**\nUse `/optin` with this address first."
	MsgAlreadyOptedIn = "👋 **Already Opted In**\nThis address already has pods."
	MsgNotDeployed    = "🏗️ **Game Not Deployed**\nAsk an admin to deploy the application."

	// Pods
	MsgInvalidStage = "🪴 **Wrong Stage**\nThat pod can't do this right now."
	MsgPodLocked    = "🔒 **Pod Locked**\nUnlock more pod slots to use this pod."

	// Cooldowns
	MsgCooldownActive = "⏳ **Whoa there!**\nYour plant needs a moment before doing that again."

	// Assets
	MsgAssetsNotReady = "🧰 **Assets Not Ready**\nThe game's tokens have not been created yet."

	MsgGenericError = "❌ Something went wrong."
	MsgAPIError     = "Error connecting to game server."
)

// Embed colors
const (
	ColorInfo    = 0x3498db
	ColorSuccess = 0x2ecc71
	ColorHarvest = 0xf1c40f
)

// Footer constants for standardized embed footers.
const (
	FooterGrowPod = "GrowPod"
)
