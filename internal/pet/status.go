package pet

import (
	"fmt"
	"strings"
)

// GetStatus returns the status emoji(s) for the pet
func GetStatus(p Pet) string {
	if p.AgeStage == StageEgg {
		return StatusEmojiEgg
	}

	// Icon 1: Activity (world event or default mood)
	activity := StatusEmojiHappy
	if emoji, _, ok := p.GetEventDisplay(); ok {
		activity = emoji
	}

	// Icon 2: Feeling (most critical need)
	if p.IsSick {
		return activity + StatusEmojiSick
	}

	lowestStat := p.Health
	lowestFeeling := StatusEmojiSick

	if p.Energy < lowestStat {
		lowestStat = p.Energy
		lowestFeeling = StatusEmojiTired
	}
	if p.Hunger < lowestStat {
		lowestStat = p.Hunger
		lowestFeeling = StatusEmojiHungry
	}
	if p.Happiness < lowestStat {
		lowestStat = p.Happiness
		lowestFeeling = StatusEmojiSad
	}
	if p.Cleanliness < lowestStat {
		lowestStat = p.Cleanliness
		lowestFeeling = StatusEmojiDirty
	}

	// Show critical feeling if any stat < 30
	if lowestStat < 30 {
		return activity + lowestFeeling
	}
	return activity
}

// GetStatusWithLabel returns status with text labels for the UI
func GetStatusWithLabel(p Pet) string {
	status := GetStatus(p)

	switch {
	case status == StatusEmojiEgg:
		return status + " Incubating"
	case strings.Contains(status, StatusEmojiSick):
		return status + " Sick"
	case strings.Contains(status, StatusEmojiHungry):
		return status + " Hungry"
	case strings.Contains(status, StatusEmojiTired):
		return status + " Tired"
	case strings.Contains(status, StatusEmojiSad):
		return status + " Sad"
	case strings.Contains(status, StatusEmojiDirty):
		return status + " Dirty"
	default:
		return status + " Happy"
	}
}

// GetStageEmoji returns the emoji for the pet's life stage and evolution
func (p *Pet) GetStageEmoji() string {
	switch p.AgeStage {
	case StageEgg:
		return "🥚"
	case StageChild:
		return "🐣"
	case StageTeen:
		return "🐥"
	case StageAdult, StageElder:
		switch p.Evolution {
		case EvolutionGenius:
			return "🦉"
		case EvolutionAthlete:
			return "🐯"
		case EvolutionSlacker:
			return "🦥"
		default:
			if p.AgeStage == StageElder {
				return "🐢"
			}
			return "🐱"
		}
	default:
		return "❓"
	}
}

// GetFormName returns the display name for the pet's stage and evolution
func (p *Pet) GetFormName() string {
	if p.AgeStage == "" {
		return "Unknown"
	}
	stage := strings.ToUpper(string(p.AgeStage[:1])) + string(p.AgeStage[1:])
	if p.Evolution == EvolutionNone || p.Evolution == "" {
		return stage
	}
	evo := strings.ToUpper(string(p.Evolution[:1])) + string(p.Evolution[1:])
	return fmt.Sprintf("%s %s", evo, stage)
}

// GetPersonalityEmoji returns an emoji for the personality
func GetPersonalityEmoji(pe Personality) string {
	switch pe {
	case PersonalityCurious:
		return "🔍"
	case PersonalityLazy:
		return "🛋️"
	case PersonalityPlayful:
		return "🎈"
	case PersonalityGlutton:
		return "🍔"
	case PersonalityNeat:
		return "🧹"
	default:
		return "❔"
	}
}
