package discord

// Friendly message constants for Discord responses
const (
	// Economy
	MsgInsufficientFunds = "⚠️ **Not Enough Dollars!**\nYou don't have enough for this transaction."
	MsgSameAccount       = "🤝 **That's You!**\nYou can't send money to yourself."
	MsgStakeTooLow       = "🎲 **Stake Too Low**\nBet a little more than that."

	// Accounts
	MsgAccountNotFound = "👤 **No Account**\nCreate one first with `/account create`."
	MsgAccountExists   = "👤 **Already Registered**\nYou already have an account."

	// Items & Inventory
	MsgItemNotFound  = "❓ **Item Not Found**\nMaybe check the spelling?"
	MsgNotOwner      = "🎒 **Not Yours**\nThat item belongs to someone else."
	MsgNotEquippable = "🎒 **Can't Equip That**\nThat item type isn't wearable."

	// Airdrop
	MsgAirdropGone = "📦 **Too Slow!**\nThe airdrop has already been claimed or expired."

	MsgGenericError = "❌ Something went wrong."
)
