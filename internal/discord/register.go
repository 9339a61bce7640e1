package discord

// RegisterAll wires every slash command and component handler into the
// registry. The spawner may be nil when the airdrop loop is disabled.
func RegisterAll(registry *CommandRegistry, spawner *AirdropSpawner) {
	registry.Register(AccountCommand())
	registry.Register(BalanceCommand())
	registry.Register(SendCommand())
	registry.Register(GambleCommand())
	registry.Register(LeaderboardCommand())
	registry.Register(InventoryCommand())
	registry.Register(HelpCommand())

	registry.RegisterComponent(ComponentInventorySelect, HandleInventorySelect)
	registry.RegisterComponent(ComponentInventoryEquip, HandleInventoryAction)
	registry.RegisterComponent(ComponentInventoryUnequip, HandleInventoryAction)
	registry.RegisterComponent(ComponentInventoryDrop, HandleInventoryAction)

	if spawner != nil {
		registry.RegisterComponent(ComponentAirdropClaim, spawner.HandleClaim)
	}
}
