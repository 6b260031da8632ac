package pet

import (
	"log"
	"maps"
	"math"
	"time"
)

// CanRetire checks the retirement gate without changing anything.
func (p *Pet) CanRetire() error {
	if p.AgeStage != StageElder {
		return reject(ActionRetire, ReasonNotElder)
	}
	if p.Level < RetireLevel {
		return reject(ActionRetire, ReasonLevelTooLow)
	}
	return nil
}

// StardustGain returns how much stardust retiring the pet would earn.
func (p *Pet) StardustGain() int {
	return p.Level/StardustLevelDivisor + int(math.Floor(p.SkillTotal()/StardustSkillDivisor))
}

// Retire ends the pet's life and returns a fresh egg that inherits only the
// stardust (plus this life's gain) and the legacy bonuses. The old pet is
// never modified.
func (e *Engine) Retire(old *Pet, now time.Time) (Pet, error) {
	if err := old.CanRetire(); err != nil {
		return Pet{}, err
	}

	gain := old.StardustGain()
	next := e.template.New(now, e.rng)
	next.Stardust = old.Stardust + gain
	next.LegacyBonus = maps.Clone(old.LegacyBonus)
	if next.LegacyBonus == nil {
		next.LegacyBonus = make(map[string]float64)
	}
	next.Grant(AchievementLegacy)

	log.Printf("Retired %s at level %d for %d stardust (total %d)", old.Name, old.Level, gain, next.Stardust)
	return next, nil
}
