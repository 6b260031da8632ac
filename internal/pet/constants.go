package pet

import "time"

// Game constants
const (
	DefaultPetName  = "Tama"
	MaxStat         = 100.0
	MinStat         = 0.0
	DocumentVersion = 2

	// Stat decay rates (per minute)
	HungerDecayRate      = 0.6
	HappinessDecayRate   = 0.5
	EnergyDecayRate      = 0.4
	CleanlinessDecayRate = 0.3

	// Health decay (per minute)
	SickHealthRate       = 0.5
	StarvationThreshold  = 20.0 // Hunger below this starts costing health
	StarvationRatePerPt  = 0.05 // Health lost per minute per point below threshold
	ExhaustionThreshold  = 10.0 // Energy below this starts costing health
	ExhaustionHealthRate = 0.3

	// Sickness thresholds
	DirtyThreshold       = 30.0 // Cleanliness below this can cause sickness
	SicknessChancePerMin = 0.01 // Onset probability per elapsed minute, capped at 1
	SickHealthThreshold  = 30.0 // Health below this forces sickness
	WellHealthThreshold  = 70.0 // Health above this clears sickness
	SickBlockHealth      = 50.0 // Sick pets under this health refuse physical actions

	// Event decay multipliers
	SickEventDecayMult      = 1.5
	FavorableEventDecayMult = 0.7
	FocusDampeningShare     = 0.5 // Share of the focus bonus fraction applied to excess decay

	// Experience
	BaseXPPerLevel       = 100.0
	LuckXPDampening      = 0.5
	SkillBonusPerLevel   = 0.05 // Bonus fraction per skill level above 1
	SkillLevelDivisor    = 10.0
	FocusPointChancePer  = 0.05 // Extra skill point chance per focus level
	MaxBonusPointChance  = 0.5
	LevelUpHappiness     = 10.0
	SkillPointSkillBoost = 10.0

	// Life stage thresholds (age in minutes)
	ChildAgeMinutes = 5.0
	TeenAgeMinutes  = 1440.0
	AdultAgeMinutes = 4320.0
	ElderAgeMinutes = 10080.0

	StageHappinessBoost = 20.0
	TeenXPGrant         = 50.0
	AdultXPGrant        = 100.0
	ElderXPGrant        = 150.0

	// Evolution rules
	SlackerCareThreshold = 40.0
	DominanceRatio       = 1.3

	// Retirement
	RetireLevel          = 25
	StardustLevelDivisor = 2
	StardustSkillDivisor = 10.0

	// Legacy shop
	LegacyBonusStep = 0.1
	LegacyBaseCost  = 5

	// Economy
	StartingCoins  = 50
	WorkBaseCoins  = 20
	WalkLootChance = 0.1
	WalkLootCoins  = 5
	RichCoins      = 1000
	DecoratorCount = 3
	ScholarLevel   = 5
)

// EventRefreshInterval is the real-time period after which a new daily event is rolled.
const EventRefreshInterval = 24 * time.Hour

// Status emojis
const (
	StatusEmojiEgg     = "🥚"
	StatusEmojiHappy   = "😸"
	StatusEmojiNeutral = "🙂"
	StatusEmojiHungry  = "🙀"
	StatusEmojiSad     = "😿"
	StatusEmojiSick    = "🤢"
	StatusEmojiTired   = "😾"
	StatusEmojiDirty   = "💩"
)
