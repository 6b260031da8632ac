package pet

import "fmt"

// Personality shapes decay rates and skill gains for the pet's whole life.
type Personality string

const (
	PersonalityCurious Personality = "curious"
	PersonalityLazy    Personality = "lazy"
	PersonalityPlayful Personality = "playful"
	PersonalityGlutton Personality = "glutton"
	PersonalityNeat    Personality = "neat"
)

// Personalities lists every personality a new pet can be born with.
var Personalities = []Personality{
	PersonalityCurious,
	PersonalityLazy,
	PersonalityPlayful,
	PersonalityGlutton,
	PersonalityNeat,
}

// Stat names a decaying care stat.
type Stat int

const (
	StatHunger Stat = iota
	StatHappiness
	StatEnergy
	StatCleanliness
)

var decayingStats = []Stat{StatHunger, StatHappiness, StatEnergy, StatCleanliness}

func (s Stat) String() string {
	switch s {
	case StatHunger:
		return "hunger"
	case StatHappiness:
		return "happiness"
	case StatEnergy:
		return "energy"
	case StatCleanliness:
		return "cleanliness"
	default:
		return fmt.Sprintf("stat(%d)", int(s))
	}
}

func (s Stat) baseRate() float64 {
	switch s {
	case StatHunger:
		return HungerDecayRate
	case StatHappiness:
		return HappinessDecayRate
	case StatEnergy:
		return EnergyDecayRate
	case StatCleanliness:
		return CleanlinessDecayRate
	default:
		return 0
	}
}

func (p *Pet) statPtr(s Stat) *float64 {
	switch s {
	case StatHunger:
		return &p.Hunger
	case StatHappiness:
		return &p.Happiness
	case StatEnergy:
		return &p.Energy
	case StatCleanliness:
		return &p.Cleanliness
	default:
		return nil
	}
}

// DecayModifier returns the personality multiplier applied to a stat's decay.
func (pe Personality) DecayModifier(s Stat) float64 {
	switch pe {
	case PersonalityCurious:
		if s == StatHappiness {
			return 0.9
		}
	case PersonalityLazy:
		switch s {
		case StatEnergy:
			return 0.7
		case StatCleanliness:
			return 1.2
		}
	case PersonalityPlayful:
		switch s {
		case StatHappiness:
			return 1.2
		case StatEnergy:
			return 1.1
		}
	case PersonalityGlutton:
		if s == StatHunger {
			return 1.3
		}
	case PersonalityNeat:
		if s == StatCleanliness {
			return 0.7
		}
	}
	// No modifier for this pair
	return 1.0
}

// SkillModifier returns the personality multiplier applied to skill gains.
func (pe Personality) SkillModifier(s Skill) float64 {
	switch pe {
	case PersonalityCurious:
		switch s {
		case SkillIntelligence:
			return 1.25
		case SkillLuck:
			return 1.1
		}
	case PersonalityLazy:
		switch s {
		case SkillStrength, SkillAgility:
			return 0.8
		case SkillFocus:
			return 1.2
		}
	case PersonalityPlayful:
		switch s {
		case SkillAgility:
			return 1.25
		case SkillCharm:
			return 1.1
		case SkillFocus:
			return 0.9
		}
	case PersonalityGlutton:
		if s == SkillStrength {
			return 1.2
		}
	case PersonalityNeat:
		switch s {
		case SkillCharm:
			return 1.2
		case SkillFocus:
			return 1.1
		}
	}
	// No modifier for this pair
	return 1.0
}

// Valid reports whether pe is a known personality.
func (pe Personality) Valid() bool {
	for _, known := range Personalities {
		if pe == known {
			return true
		}
	}
	return false
}

// AssignRandomPersonality picks a personality for a new pet
func AssignRandomPersonality(rng Rand) Personality {
	return Personalities[rng.IntN(len(Personalities))]
}
