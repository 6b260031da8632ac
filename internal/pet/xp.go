package pet

import (
	"fmt"
	"log"
)

// Engine applies the simulation rules to a pet. It holds the random source
// and the template used when a new life begins.
type Engine struct {
	rng      Rand
	template Template
}

// NewEngine creates an engine drawing randomness from rng.
func NewEngine(rng Rand, tmpl Template) *Engine {
	return &Engine{rng: rng, template: tmpl}
}

// Template returns the template used for new pets.
func (e *Engine) Template() Template {
	return e.template
}

// XPRequiredForLevel returns the XP needed to leave the given level.
func XPRequiredForLevel(level int) float64 {
	return BaseXPPerLevel * float64(level)
}

// XPMultiplier returns the combined multiplier applied to raw XP grants.
// Order: intelligence, dampened luck, event, legacy.
func (p *Pet) XPMultiplier() float64 {
	luck := 1 + (p.SkillBonus(SkillLuck)-1)*LuckXPDampening
	return p.SkillBonus(SkillIntelligence) * luck * p.eventXPMultiplier() * p.Legacy(LegacyXP)
}

// AddXP grants experience and resolves every level threshold it crosses.
// It returns the effective amount granted after multipliers.
func (e *Engine) AddXP(p *Pet, raw float64) float64 {
	if raw <= 0 {
		return 0
	}
	amount := raw * p.XPMultiplier()
	p.XP += amount
	for p.XP >= XPRequiredForLevel(p.Level) {
		e.levelUp(p)
	}
	return amount
}

// levelUp consumes one level's worth of XP and grants its rewards.
func (e *Engine) levelUp(p *Pet) {
	p.XP -= XPRequiredForLevel(p.Level)
	p.Level++

	points := 1
	chance := min(float64(p.SkillLevel(SkillFocus))*FocusPointChancePer, MaxBonusPointChance)
	if e.rng.Float64() < chance {
		points++
	}
	p.SkillPoints += points
	addStat(&p.Happiness, LevelUpHappiness)

	log.Printf("Pet reached level %d (+%d skill points)", p.Level, points)
	p.notify(NoticeLevelUp, fmt.Sprintf("⭐ Level %d!", p.Level),
		fmt.Sprintf("%s gained %d skill point(s).", p.Name, points))
	p.checkAchievements()
}

// AddSkill adds to a skill track after applying the personality multiplier.
func (e *Engine) AddSkill(p *Pet, s Skill, raw float64) {
	if raw <= 0 || !s.Valid() {
		return
	}
	if p.Skills == nil {
		p.Skills = make(map[Skill]float64)
	}
	before := p.SkillLevel(s)
	p.Skills[s] += raw * p.Personality.SkillModifier(s)
	if after := p.SkillLevel(s); after > before {
		log.Printf("Skill %s reached level %d", s, after)
	}
	p.checkAchievements()
}
