package pet

import (
	"log"
	"maps"
	"time"

	"github.com/google/uuid"
)

// Legacy bonus names
const (
	LegacyXP    = "xp"
	LegacyCoins = "coins"
	LegacyCare  = "care"
)

// LegacyBonuses lists every purchasable legacy multiplier.
var LegacyBonuses = []string{LegacyXP, LegacyCoins, LegacyCare}

// Template holds the starting values of a brand-new pet. It is treated as
// immutable: New never hands out maps that alias the template's own.
type Template struct {
	Name        string
	Personality Personality // Empty picks one at random
	Hunger      float64
	Happiness   float64
	Energy      float64
	Cleanliness float64
	Health      float64
	Coins       int
	Inventory   map[string]int
}

// DefaultTemplate returns the standard starting values.
func DefaultTemplate() Template {
	return Template{
		Name:        DefaultPetName,
		Hunger:      80,
		Happiness:   80,
		Energy:      80,
		Cleanliness: 80,
		Health:      MaxStat,
		Coins:       StartingCoins,
		Inventory: map[string]int{
			ItemApple:    3,
			ItemMedicine: 1,
		},
	}
}

// WithName returns a copy of the template using a different pet name.
func (t Template) WithName(name string) Template {
	if name != "" {
		t.Name = name
	}
	return t
}

// New creates a fresh egg from the template.
func (t Template) New(now time.Time, rng Rand) Pet {
	personality := t.Personality
	if personality == "" {
		personality = AssignRandomPersonality(rng)
	}

	skills := make(map[Skill]float64, len(Skills))
	for _, s := range Skills {
		skills[s] = 0
	}
	legacy := make(map[string]float64, len(LegacyBonuses))
	for _, b := range LegacyBonuses {
		legacy[b] = 1.0
	}

	p := Pet{
		ID:           uuid.NewString(),
		Name:         t.Name,
		Personality:  personality,
		Version:      DocumentVersion,
		CreatedAt:    now,
		LastTick:     now,
		Hunger:       t.Hunger,
		Happiness:    t.Happiness,
		Energy:       t.Energy,
		Cleanliness:  t.Cleanliness,
		Health:       t.Health,
		AgeStage:     StageEgg,
		Evolution:    EvolutionNone,
		Hobby:        HobbyNone,
		Level:        1,
		Skills:       skills,
		Coins:        t.Coins,
		Inventory:    maps.Clone(t.Inventory),
		Decor:        []string{},
		CurrentEvent: WorldEvent{Type: EventNone},
		Achievements: make(map[string]bool),
		LegacyBonus:  legacy,
	}
	if p.Inventory == nil {
		p.Inventory = make(map[string]int)
	}
	log.Printf("Created new pet: %s (%s)", p.Name, p.Personality)
	return p
}
