package pet

import (
	"fmt"
	"log"
)

// StageForAge returns the stage a pet of the given age belongs to.
func StageForAge(ageMinutes float64) Stage {
	switch {
	case ageMinutes >= ElderAgeMinutes:
		return StageElder
	case ageMinutes >= AdultAgeMinutes:
		return StageAdult
	case ageMinutes >= TeenAgeMinutes:
		return StageTeen
	case ageMinutes >= ChildAgeMinutes:
		return StageChild
	default:
		return StageEgg
	}
}

// advanceStages fires every stage transition the pet's age has crossed, in
// ascending order. Each transition is keyed on the current stage, so it can
// fire only once.
func (e *Engine) advanceStages(p *Pet) {
	for {
		switch {
		case p.AgeStage == StageEgg && p.AgeMinutes >= ChildAgeMinutes:
			e.hatch(p)
		case p.AgeStage == StageChild && p.AgeMinutes >= TeenAgeMinutes:
			p.Hobby = ChooseHobby(p.Skills)
			p.AgeStage = StageTeen
			e.stageRewards(p, TeenXPGrant)
			p.Grant(AchievementTeen)
			p.notify(NoticeStage, "🧒 "+p.Name+" is a teen!", fmt.Sprintf("New hobby: %s", p.Hobby))
		case p.AgeStage == StageTeen && p.AgeMinutes >= AdultAgeMinutes:
			// Evolution reads the stats as they are at the moment of transition
			p.Evolution = ChooseEvolution(p)
			p.AgeStage = StageAdult
			e.stageRewards(p, AdultXPGrant)
			p.Grant(AchievementAdult)
			p.notify(NoticeEvolved, "🧑 "+p.Name+" is an adult!", fmt.Sprintf("Evolved into: %s", p.Evolution))
		case p.AgeStage == StageAdult && p.AgeMinutes >= ElderAgeMinutes:
			p.AgeStage = StageElder
			e.stageRewards(p, ElderXPGrant)
			p.Grant(AchievementElder)
			p.notify(NoticeStage, "🧓 "+p.Name+" is an elder", "Reach level 25 to retire and pass on a legacy.")
		default:
			return
		}
		log.Printf("Pet advanced to stage %s at %.0f minutes", p.AgeStage, p.AgeMinutes)
	}
}

func (e *Engine) hatch(p *Pet) {
	p.AgeStage = StageChild
	p.Grant(AchievementHatched)
	p.notify(NoticeHatched, "🐣 "+p.Name+" hatched!", "Say hello to your new friend.")
}

func (e *Engine) stageRewards(p *Pet, xp float64) {
	p.Level++
	e.AddXP(p, xp)
	addStat(&p.Happiness, StageHappinessBoost)
	p.checkAchievements()
}

// ChooseEvolution picks the adult branch from skill balance and average care.
// Ambiguous skill balance resolves to Average.
func ChooseEvolution(p *Pet) Evolution {
	mental := p.Skills[SkillIntelligence] + p.Skills[SkillCharm]
	physical := p.Skills[SkillStrength] + p.Skills[SkillAgility]

	switch {
	case p.AverageCare() < SlackerCareThreshold:
		return EvolutionSlacker
	case mental > DominanceRatio*physical:
		return EvolutionGenius
	case physical > DominanceRatio*mental:
		return EvolutionAthlete
	default:
		return EvolutionAverage
	}
}

// ChooseHobby picks a hobby from the dominant skill. Ties resolve to Gaming.
func ChooseHobby(skills map[Skill]float64) Hobby {
	intel := skills[SkillIntelligence]
	agility := skills[SkillAgility]
	strength := skills[SkillStrength]

	switch {
	case intel > agility && intel > strength:
		if intel > agility+strength {
			return HobbyReading
		}
		return HobbyGaming
	case agility > intel && agility > strength:
		return HobbyDancing
	case strength > intel && strength > agility:
		return HobbySports
	default:
		return HobbyGaming
	}
}
