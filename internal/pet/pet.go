package pet

import (
	"maps"
	"math"
	"slices"
	"time"
)

// Stage is the pet's life-cycle phase. Stages only move forward.
type Stage string

const (
	StageEgg   Stage = "egg"
	StageChild Stage = "child"
	StageTeen  Stage = "teen"
	StageAdult Stage = "adult"
	StageElder Stage = "elder"
)

var stageOrder = []Stage{StageEgg, StageChild, StageTeen, StageAdult, StageElder}

// Rank returns the position of the stage in the life cycle, or -1 if unknown.
func (s Stage) Rank() int {
	return slices.Index(stageOrder, s)
}

// AtLeast reports whether s is the same as or later than other.
func (s Stage) AtLeast(other Stage) bool {
	return s.Rank() >= other.Rank()
}

// Evolution is the adult branch, chosen once at the Teen→Adult transition.
type Evolution string

const (
	EvolutionNone    Evolution = "none"
	EvolutionAverage Evolution = "average"
	EvolutionGenius  Evolution = "genius"
	EvolutionAthlete Evolution = "athlete"
	EvolutionSlacker Evolution = "slacker"
)

// Hobby is chosen once at the Child→Teen transition.
type Hobby string

const (
	HobbyNone    Hobby = ""
	HobbyReading Hobby = "reading"
	HobbyGaming  Hobby = "gaming"
	HobbyDancing Hobby = "dancing"
	HobbySports  Hobby = "sports"
)

// Skill names one of the six skill tracks.
type Skill string

const (
	SkillIntelligence Skill = "intelligence"
	SkillStrength     Skill = "strength"
	SkillAgility      Skill = "agility"
	SkillCharm        Skill = "charm"
	SkillFocus        Skill = "focus"
	SkillLuck         Skill = "luck"
)

// Skills lists every skill track in display order.
var Skills = []Skill{SkillIntelligence, SkillStrength, SkillAgility, SkillCharm, SkillFocus, SkillLuck}

// Valid reports whether s is a known skill.
func (s Skill) Valid() bool {
	return slices.Contains(Skills, s)
}

// WorldEvent is the daily event affecting every pet.
type WorldEvent struct {
	Type       EventType `json:"type"`
	LastUpdate time.Time `json:"last_update"`
}

// Pet represents the virtual pet's state
type Pet struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Personality Personality `json:"personality"`
	Version     int         `json:"version"`

	CreatedAt time.Time `json:"created_at"`
	LastTick  time.Time `json:"last_tick"`

	Hunger      float64 `json:"hunger"`
	Happiness   float64 `json:"happiness"`
	Energy      float64 `json:"energy"`
	Cleanliness float64 `json:"cleanliness"`
	Health      float64 `json:"health"`
	IsSick      bool    `json:"is_sick"`

	AgeMinutes float64   `json:"age_minutes"`
	AgeStage   Stage     `json:"age_stage"`
	Evolution  Evolution `json:"evolution_type"`
	Hobby      Hobby     `json:"hobby"`

	XP          float64           `json:"xp"`
	Level       int               `json:"level"`
	SkillPoints int               `json:"skill_points"`
	Skills      map[Skill]float64 `json:"skills"`

	Coins     int            `json:"coins"`
	Inventory map[string]int `json:"inventory"`
	Decor     []string       `json:"decor"`

	CurrentEvent WorldEvent      `json:"current_event"`
	Achievements map[string]bool `json:"achievements"`

	// Legacy fields survive retirement
	Stardust    int                `json:"stardust"`
	LegacyBonus map[string]float64 `json:"legacy_bonus"`

	notices []Notice
}

// Clone returns a deep copy of the pet, sharing no maps or slices with p.
func (p Pet) Clone() Pet {
	c := p
	c.Skills = maps.Clone(p.Skills)
	c.Inventory = maps.Clone(p.Inventory)
	c.Achievements = maps.Clone(p.Achievements)
	c.LegacyBonus = maps.Clone(p.LegacyBonus)
	c.Decor = slices.Clone(p.Decor)
	c.notices = nil
	return c
}

// SkillLevel derives the integer level of a skill track from its accumulator.
func (p *Pet) SkillLevel(s Skill) int {
	return int(math.Floor(p.Skills[s]/SkillLevelDivisor)) + 1
}

// SkillBonus returns the multiplier a skill provides (1.0 at skill level 1).
func (p *Pet) SkillBonus(s Skill) float64 {
	return 1 + float64(p.SkillLevel(s)-1)*SkillBonusPerLevel
}

// SkillTotal sums every skill accumulator.
func (p *Pet) SkillTotal() float64 {
	total := 0.0
	for _, s := range Skills {
		total += p.Skills[s]
	}
	return total
}

// HasDecor reports whether the decoration is owned.
func (p *Pet) HasDecor(name string) bool {
	return slices.Contains(p.Decor, name)
}

// AverageCare is the mean of the four care stats.
func (p *Pet) AverageCare() float64 {
	return (p.Hunger + p.Happiness + p.Energy + p.Cleanliness) / 4
}

// Legacy returns the named legacy multiplier, never below 1.0.
func (p *Pet) Legacy(name string) float64 {
	if v, ok := p.LegacyBonus[name]; ok && v > 1 {
		return v
	}
	return 1
}

// Event returns the active world event type, or false when none is active.
func (p *Pet) Event() (EventType, bool) {
	if p.CurrentEvent.Type == "" || p.CurrentEvent.Type == EventNone {
		return EventNone, false
	}
	return p.CurrentEvent.Type, true
}

func clampStat(v float64) float64 {
	return math.Max(MinStat, math.Min(v, MaxStat))
}

// addStat adds delta to a stat and clamps it into range.
func addStat(stat *float64, delta float64) {
	*stat = clampStat(*stat + delta)
}
