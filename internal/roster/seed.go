package roster

// Seed tables for the Predecessor roster and baseline item list. This is the
// single authoritative copy; clients read it through /api/characters instead
// of shipping their own mirror.

type seedCharacter struct {
	ID    string
	Name  string
	Roles []string
}

type seedItem struct {
	ID          string
	Name        string
	Category    string
	Price       int
	Description string
}

var seedCharacters = []seedCharacter{
	{"akeron", "Akeron", []string{"jungle", "offlane"}},
	{"argus", "Argus", []string{"support", "mid"}},
	{"aurora", "Aurora", []string{"jungle", "offlane"}},
	{"bayle", "Bayle", []string{"jungle", "offlane"}},
	{"boris", "Boris", []string{"jungle"}},
	{"countess", "Countess", []string{"jungle", "mid", "offlane"}},
	{"crunch", "Crunch", []string{"jungle", "offlane"}},
	{"dekker", "Dekker", []string{"support"}},
	{"drongo", "Drongo", []string{"adc"}},
	{"eden", "Eden", []string{"adc", "mid", "offlane"}},
	{"fengmao", "Feng Mao", []string{"jungle", "offlane"}},
	{"gadget", "Gadget", []string{"mid"}},
	{"gideon", "Gideon", []string{"mid"}},
	{"greystone", "Greystone", []string{"jungle", "offlane"}},
	{"grimexe", "GRIM.exe", []string{"adc"}},
	{"grux", "Grux", []string{"jungle", "offlane"}},
	{"howitzer", "Howitzer", []string{"mid"}},
	{"iggyscorch", "Iggy & Scorch", []string{"mid", "offlane"}},
	{"kallari", "Kallari", []string{"jungle"}},
	{"khaimera", "Khaimera", []string{"jungle", "offlane"}},
	{"kira", "Kira", []string{"adc"}},
	{"kwang", "Kwang", []string{"jungle", "offlane"}},
	{"ltbelica", "Lt. Belica", []string{"support", "mid"}},
	{"maco", "Maco", []string{"support", "mid", "offlane"}},
	{"morigesh", "Morigesh", []string{"mid"}},
	{"mourn", "Mourn", []string{"support"}},
	{"murdock", "Murdock", []string{"adc", "offlane"}},
	{"muriel", "Muriel", []string{"support"}},
	{"narbash", "Narbash", []string{"support"}},
	{"phase", "Phase", []string{"support"}},
	{"rampage", "Rampage", []string{"jungle"}},
	{"renna", "Renna", []string{"mid"}},
	{"revenant", "Revenant", []string{"adc"}},
	{"riktor", "Riktor", []string{"support"}},
	{"serath", "Serath", []string{"jungle", "offlane"}},
	{"sevarog", "Sevarog", []string{"jungle", "offlane"}},
	{"shinbi", "Shinbi", []string{"jungle", "offlane"}},
	{"skylar", "Skylar", []string{"adc"}},
	{"sparrow", "Sparrow", []string{"adc"}},
	{"steel", "Steel", []string{"support", "offlane"}},
	{"terra", "Terra", []string{"jungle", "offlane"}},
	{"thefey", "The Fey", []string{"support", "mid"}},
	{"twinblast", "TwinBlast", []string{"adc"}},
	{"wraith", "Wraith", []string{"adc", "mid"}},
	{"wukong", "Wukong", []string{"jungle", "offlane"}},
	{"yin", "Yin", []string{"jungle", "offlane"}},
	{"yurei", "Yurei", []string{"jungle", "offlane"}},
	{"zarus", "Zarus", []string{"jungle", "offlane"}},
	{"zinx", "Zinx", []string{"support", "mid"}},
}

var seedItems = []seedItem{
	{"abyssal_bracers", "Abyssal Bracers", "defense", 1500, "Defensive bracers for early trades."},
	{"abyssal_dart", "Abyssal Dart", "utility", 2400, "Mark and teleport to marked targets."},
	{"aegis_of_agawar", "Aegis Of Agawar", "defense", 3200, "Defensive item with stacking armor and CC resistance."},
	{"alchemical_rod", "Alchemical Rod", "magical", 850, "Starter ability power rod for mages."},
	{"alternator", "Alternator", "magical", 1200, "Mid-tier magical power component."},
	{"amulet_of_chaos", "Amulet Of Chaos", "magical", 2000, "Chaotic magic item with burst potential."},
	{"ashbringer", "Ashbringer", "physical", 3200, "Cooldown reduction on basic attacks."},
	{"astral_catalyst", "Astral Catalyst", "magical", 2400, "Amplifies ability damage with burst-on-cast."},
	{"augmentation", "Augmentation", "physical", 2800, "Ability-triggered empowered attacks."},
	{"azure_core", "Azure Core", "magical", 2200, "Mana and ability-haste focused item."},
	{"banded_emerald", "Banded Emerald", "utility", 800, "Grants health and modest movement speed."},
	{"barbed_pauldron", "Barbed Pauldron", "defense", 1500, "Armor that punishes melee attackers."},
	{"berserkers_axe", "Berserker's Axe", "physical", 1400, "Attack damage component item."},
	{"blood_tome", "Blood Tome", "magical", 850, "Basic ability power tome for mages."},
	{"bloodletter", "Bloodletter", "physical", 3200, "High physical damage with execute potential."},
	{"brutallax", "Brutallax", "utility", 2800, "Cleanse that purifies debuffs and grants tenacity."},
	{"caustica", "Caustica", "magical", 2600, "Magical armor penetration item."},
	{"champion_crest", "Champion Crest", "physical", 2000, "Evolved warrior crest with bonus stats."},
	{"chronomatic_wand", "Chronomatic Wand", "magical", 1200, "Mage weapon with cooldown reduction."},
	{"claymore", "Claymore", "physical", 1000, "Basic two-handed sword for early damage."},
	{"claw_of_hermes", "Claw Of Hermes", "physical", 2400, "Movement and attack speed item."},
	{"combustion", "Combustion", "magical", 2800, "Magic damage spike on ability combos."},
	{"composite_bow", "Composite Bow", "physical", 1400, "Balanced attack speed and damage."},
	{"consort_crest", "Consort Crest", "utility", 1400, "Support scaling crest item."},
	{"crescelia", "Crescelia", "magical", 3000, "Lunar-themed magical power item."},
	{"crimson_edge", "Crimson Edge", "physical", 3000, "Sustain-focused attack item with lifesteal."},
	{"cursed_scroll", "Cursed Scroll", "magical", 1800, "Dark magic scroll with damage amp."},
	{"dawnstar", "Dawnstar", "magical", 3200, "Light-themed magical burst item."},
	{"demon_edge", "Demon Edge", "physical", 2600, "Attack damage with lifesteal passive."},
	{"devotion", "Devotion", "utility", 2200, "Support item with ally-boosting effects."},
	{"diffusal_cane", "Diffusal Cane", "magical", 2000, "Drains mana on ability hit."},
	{"divine_potion", "Divine Potion", "utility", 350, "Enhanced potion with mana restoration."},
	{"divine_pouch", "Divine Pouch", "utility", 500, "Consumable pouch for potions."},
	{"draconum", "Draconum", "utility", 3000, "Healing boost with stacking mechanics."},
	{"dreambinder", "Dreambinder", "magical", 3200, "Crowd-control magic item."},
	{"dusk_stave", "Dusk Stave", "magical", 1600, "Core ability-power weapon."},
	{"dust_devil", "Dust Devil", "utility", 1800, "Movement speed utility item."},
	{"earth_spirit", "Earth Spirit", "utility", 2800, "Boulder transformation for crowd control."},
	{"enmas_blessing", "Enma's Blessing", "utility", 2400, "Blessing with protective effects."},
	{"envy", "Envy", "physical", 3400, "Guaranteed crits after dashes with silencing."},
	{"epoch", "Epoch", "utility", 2800, "Stasis for 2.5s defensive protection."},
	{"equinox", "Equinox", "utility", 2600, "Low-health shield generation."},
	{"essence_ring", "Essence Ring", "utility", 1200, "Ring with essence energy over time."},
	{"everbloom", "Everbloom", "utility", 2800, "Shield grants with mitigation aura."},
	{"eviscerator", "Eviscerator", "physical", 3400, "Attack speed with omnivamp."},
	{"exodus", "Exodus", "utility", 2800, "Knockback grenade with damage amplification."},
	{"fist_of_razuul", "Fist Of Razuul", "physical", 3200, "Heavy melee weapon with burst."},
	{"florescence", "Florescence", "utility", 2400, "Bouncy movement utility platform."},
	{"frosted_lure", "Frosted Lure", "utility", 1600, "Slow effect utility item."},
	{"gaussian_greaves", "Gaussian Greaves", "defense", 2200, "Boots with defensive stats."},
	{"gilded_pendant", "Gilded Pendant", "utility", 600, "Gold generation pendant."},
	{"golems_gift", "Golem's Gift", "defense", 2800, "Health and crowd control resistance."},
	{"gravitum", "Gravitum", "utility", 2600, "Ground effect projectile for disruption."},
	{"heroic_guard", "Heroic Guard", "defense", 2400, "Reduces damage taken by nearby allies."},
	{"hexbound_bracers", "Hexbound Bracers", "defense", 1600, "Magic-resist bracers."},
	{"honed_kris", "Honed Kris", "physical", 800, "Quick dagger for fast attacks."},
	{"hunt", "Hunt", "physical", 1000, "Jungle starter item."},
	{"iceskorn_talons", "Iceskorn Talons", "physical", 3200, "Ice sheet with team buffs and enemy slow."},
	{"imbued_amulet", "Imbued Amulet", "magical", 1400, "Magical power amulet component."},
	{"infernum", "Infernum", "magical", 3200, "Fire magic with burn stacking."},
	{"inquisition", "Inquisition", "magical", 3000, "Wave emission on ability cast."},
	{"judgement", "Judgement", "utility", 2800, "Area damage with healing on hero hits."},
	{"keeper_crest", "Keeper Crest", "utility", 1400, "Support crest with utility scaling."},
	{"leafsong", "Leafsong", "utility", 2600, "Movement speed aura with slow immunity."},
	{"leather_tunic", "Leather Tunic", "defense", 500, "Basic armor tunic."},
	{"legacy", "Legacy", "utility", 2800, "Low-health self-cleanse with CC immunity."},
	{"liberator", "Liberator", "utility", 2600, "Cleanse with shield generation."},
	{"life_stream", "Life Stream", "utility", 2200, "Health regeneration item."},
	{"lifebinder", "Lifebinder", "magical", 2800, "Scaling magical power based on missing health."},
	{"lightning_hawk", "Lightning Hawk", "physical", 3000, "Attack speed with chain-strike."},
	{"longbow", "Longbow", "physical", 900, "Basic attack speed item."},
	{"lunaria", "Lunaria", "utility", 2800, "Damage-to-charge healing conversion."},
	{"magician_crest", "Magician Crest", "magical", 1000, "Mage scaling crest item."},
	{"malady", "Malady", "magical", 2400, "Magic damage over time item."},
	{"marksman_crest", "Marksman Crest", "physical", 1000, "ADC scaling crest item."},
	{"megacosm", "Megacosm", "magical", 3200, "Health-scaling ability damage."},
	{"mesmer", "Mesmer", "magical", 2600, "Crowd control magic item."},
	{"mistmeadow_buckler", "Mistmeadow Buckler", "defense", 1200, "Small defensive shield."},
	{"mutilator", "Mutilator", "physical", 3200, "Max health damage on hits."},
	{"mystic_cane", "Mystic Cane", "magical", 1400, "Magical power cane component."},
	{"necrosis", "Necrosis", "magical", 2800, "Death-themed magic damage item."},
	{"nex", "Nex", "utility", 2800, "Dash with damage and slowdown."},
	{"nightfall", "Nightfall", "magical", 3000, "Ability healing with shield on takedown."},
	{"noxia", "Noxia", "magical", 2600, "Poison magic item."},
	{"nuclear_rounds", "Nuclear Rounds", "physical", 2800, "Explosive ammo with AoE damage."},
	{"nyr_warboots", "Nyr Warboots", "utility", 2000, "Movement speed with health regeneration."},
	{"occult_crest", "Occult Crest", "magical", 1000, "Dark magic scaling crest."},
	{"orb_of_enlightenment", "Orb Of Enlightenment", "magical", 1600, "Magical power orb component."},
	{"orion", "Orion", "physical", 3400, "Stellar-themed attack item."},
	{"overlord", "Overlord", "physical", 3600, "Dominant late-game attack item."},
	{"pendant", "Pendant", "utility", 400, "Basic pendant component."},
	{"plasma_blade", "Plasma Blade", "physical", 2000, "Energy blade with bonus damage."},
	{"polar_treads", "Polar Treads", "defense", 1800, "Cold-themed defensive boots."},
	{"potent_staff", "Potent Staff", "magical", 1200, "Magical power staff component."},
	{"prophecy", "Prophecy", "magical", 2800, "Vision and magical power item."},
	{"pygmy_dust", "Pygmy Dust", "utility", 600, "Stealth dust consumable."},
	{"rapid_rapier", "Rapid Rapier", "physical", 1600, "Fast attack speed rapier."},
	{"razorback", "Razorback", "defense", 2800, "Armor boost with damage reflection."},
	{"razorclaw", "Razorclaw", "physical", 1800, "Claw weapon with attack speed."},
	{"redwood_shortbow", "Redwood Shortbow", "physical", 1200, "Basic shortbow component."},
	{"refillable_potion", "Refillable Potion", "utility", 350, "Reusable health potion."},
	{"rejuvenation_robe", "Rejuvenation Robe", "utility", 1400, "Health regeneration robe."},
	{"resolution", "Resolution", "defense", 2800, "Tenacity and CC resistance."},
	{"rift_walkers", "Rift Walkers", "utility", 2600, "Dash pulling nearby enemies."},
	{"rogue_crest", "Rogue Crest", "physical", 1000, "Assassin scaling crest."},
	{"rune_bow", "Rune Bow", "physical", 2200, "Magical-infused bow."},
	{"runic_veil", "Runic Veil", "defense", 2000, "Magic resistance veil."},
	{"ruthless_broadsword", "Ruthless Broadsword", "physical", 1800, "High damage broadsword."},
	{"sabre", "Sabre", "physical", 600, "Basic attack damage sword."},
	{"sai", "Sai", "physical", 1000, "Dual weapon for attack speed."},
	{"salvation", "Salvation", "utility", 2800, "Healing and support item."},
	{"sanctification", "Sanctification", "utility", 3000, "Group shield with tenacity and vision."},
	{"saphirs_mantle", "Saphir's Mantle", "defense", 2400, "Sapphire-themed defensive mantle."},
	{"scattershot", "Scattershot", "physical", 2600, "Spread damage attack item."},
	{"sentry", "Sentry", "utility", 0, "Ward revelation ability."},
	{"serrated_blade", "Serrated Blade", "physical", 1400, "Serrated weapon component."},
	{"sharpshooter_crest", "Sharpshooter Crest", "physical", 2000, "Evolved marksman crest."},
	{"skyplitter", "Skyplitter", "physical", 3400, "Ranged burst physical item."},
	{"solaris", "Solaris", "magical", 3000, "Ability-triggered attacks with lifesteal."},
	{"solstice", "Solstice", "physical", 3200, "Stack-based damage with healing conversion."},
	{"solstone", "Solstone", "utility", 0, "Oracle ward with 3 charges."},
	{"soul_chalice", "Soul Chalice", "utility", 1800, "Mana to health conversion."},
	{"soulbinder", "Soulbinder", "magical", 3000, "Range-based damage bonus with scaling."},
	{"spear_of_desolation", "Spear Of Desolation", "magical", 3200, "Ultimate ability damage boost."},
	{"spectra", "Spectra", "magical", 2800, "Spectral magic damage item."},
	{"spell_slasher", "Spell Slasher", "physical", 2800, "Attack procs on ability use."},
	{"spellbreaker", "Spellbreaker", "defense", 2600, "Magic resistance with spell-shield."},
	{"spirit_locket", "Spirit Locket", "utility", 1600, "Spirit-themed support item."},
	{"spirit_of_amir", "Spirit Of Amir", "utility", 2400, "Amir spirit blessing item."},
	{"stamina_tonic", "Stamina Tonic", "utility", 500, "Temporary health boost tonic."},
	{"stealth_ward", "Stealth Ward", "utility", 0, "Invisible ward for vision."},
	{"steel_mail", "Steel Mail", "defense", 800, "Basic armor component."},
	{"stone_of_strength", "Stone Of Strength", "physical", 1000, "Strength component item."},
	{"stonewall", "Stonewall", "defense", 2800, "Health and armor for frontline."},
	{"strength_tonic", "Strength Tonic", "utility", 500, "Temporary attack damage tonic."},
	{"syonic_echo", "Syonic Echo", "physical", 2800, "Attack speed on ability casting."},
	{"tainted_rounds", "Tainted Rounds", "physical", 2200, "Corruption ammo with anti-heal."},
	{"tainted_scepter", "Tainted Scepter", "magical", 2400, "Magical damage with healing reduction."},
	{"tainted_trident", "Tainted Trident", "physical", 2600, "Anti-heal trident weapon."},
	{"tempest", "Tempest", "physical", 3200, "Damage aura with healing return."},
	{"temporal_ripper", "Temporal Ripper", "physical", 3400, "Time-magic attack weapon."},
	{"tenacious_gem", "Tenacious Gem", "utility", 1200, "Tenacity gem component."},
	{"time_flux_band", "Time-Flux Band", "utility", 2800, "Teleportation with cooldown resets."},
	{"timewarp", "Timewarp", "utility", 2600, "Time manipulation utility."},
	{"transference", "Transference", "utility", 2600, "Shield-to-health conversion."},
	{"tranquility", "Tranquility", "utility", 2800, "Team healing with damage mitigation."},
	{"truesilver_bracelet", "Truesilver Bracelet", "utility", 1400, "Magic resist with mana regen."},
	{"typhoon", "Typhoon", "physical", 3400, "Attack speed stacking with dash."},
	{"unbroken_will", "Unbroken Will", "defense", 3000, "Armor boost when immobilized."},
	{"vainglory", "Vainglory", "physical", 3600, "Glory-themed legendary attack item."},
	{"vanguardian", "Vanguardian", "defense", 2800, "Ally armor sharing aura."},
	{"vanquisher", "Vanquisher", "physical", 3200, "Execute ability at low health."},
	{"vigorous_amulet", "Vigorous Amulet", "utility", 1000, "Health amulet component."},
	{"violet_brooch", "Violet Brooch", "magical", 1200, "Ability haste brooch."},
	{"viper", "Viper", "physical", 2800, "Stacking armor reduction effects."},
	{"void_crystal", "Void Crystal", "magical", 1600, "Magic penetration crystal."},
	{"void_helm", "Void Helm", "defense", 2200, "Magic resistance helm."},
	{"volcanica", "Volcanica", "magical", 3000, "Ability-cast cooldown reduction."},
	{"vyzar_carapace", "Vyzar Carapace", "defense", 2800, "Shield generation with stacking."},
	{"warden_crest", "Warden Crest", "defense", 1000, "Tank scaling crest item."},
	{"wardens_faith", "Warden's Faith", "defense", 3000, "Holy armor with healing on block."},
	{"warlock_crest", "Warlock Crest", "magical", 2000, "Evolved occult crest."},
	{"warp_stream", "Warp Stream", "utility", 2400, "Quantum core utility item."},
	{"windcaller", "Windcaller", "utility", 2400, "Wind-themed movement item."},
	{"winters_fury", "Winter's Fury", "magical", 2800, "Ice sphere with slow and magic amp."},
	{"witchstalker", "Witchstalker", "physical", 3000, "Anti-magic physical item."},
	{"wizard_crest", "Wizard Crest", "magical", 2000, "Evolved magician crest."},
	{"world_breaker", "World Breaker", "magical", 3400, "Stacking magical damage with scaling."},
	{"wraith_leggings", "Wraith Leggings", "defense", 2000, "Ghost leggings with evasion."},
	{"xenia", "Xenia", "utility", 2600, "Proximity-based ally shielding."},
	{"warrior_crest", "Warrior Crest", "physical", 1000, "Fighter scaling crest item."},
	{"assassin_crest", "Assassin Crest", "physical", 2000, "Evolved rogue crest."},
}
