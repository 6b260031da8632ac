package pet

import (
	"log"
	"time"
)

// Tick advances the pet to now: age, stat decay, health, sickness and stage
// transitions. It does nothing when no time has passed.
func (e *Engine) Tick(p *Pet, now time.Time) {
	elapsed := now.Sub(p.LastTick).Minutes()
	if elapsed <= 0 {
		return
	}
	p.LastTick = now
	p.AgeMinutes += elapsed

	// Eggs only age
	if p.AgeStage == StageEgg {
		e.advanceStages(p)
		return
	}

	e.decayStats(p, elapsed)
	e.decayHealth(p, elapsed)
	e.updateSickness(p, elapsed)
	e.advanceStages(p)
}

// DecayMultiplier returns the per-minute multiplier applied to a stat's base
// decay: personality, world event, decor and event-specific factors.
func (p *Pet) DecayMultiplier(s Stat) float64 {
	return p.Personality.DecayModifier(s) *
		p.eventDecayMultiplier() *
		p.decorDecayModifier(s) *
		p.eventStatMultiplier(s)
}

func (e *Engine) decayStats(p *Pet, minutes float64) {
	for _, s := range decayingStats {
		loss := s.baseRate() * p.DecayMultiplier(s) * minutes
		addStat(p.statPtr(s), -loss)
	}
}

func (e *Engine) decayHealth(p *Pet, minutes float64) {
	loss := 0.0
	if p.IsSick {
		loss += SickHealthRate * minutes
	}
	if p.Hunger < StarvationThreshold {
		loss += (StarvationThreshold - p.Hunger) * StarvationRatePerPt * minutes
	}
	if p.Energy < ExhaustionThreshold {
		loss += ExhaustionHealthRate * minutes
	}
	if loss > 0 {
		addStat(&p.Health, -loss)
		log.Printf("Health decreased to %.1f", p.Health)
	}
}

// updateSickness applies the sickness rules in order: dirt may cause onset,
// low health forces sickness, high health clears it unless an event prevents it.
func (e *Engine) updateSickness(p *Pet, minutes float64) {
	wasSick := p.IsSick

	if p.Cleanliness < DirtyThreshold && !p.IsSick {
		chance := min(SicknessChancePerMin*minutes, 1)
		if e.rng.Float64() < chance {
			p.IsSick = true
		}
	}
	if p.Health < SickHealthThreshold {
		p.IsSick = true
	}
	if p.Health > WellHealthThreshold && !p.sickeningEvent() {
		p.IsSick = false
	}

	switch {
	case p.IsSick && !wasSick:
		log.Printf("Pet fell sick (health %.1f, cleanliness %.1f)", p.Health, p.Cleanliness)
		p.notify(NoticeSick, "🤒 "+p.Name+" is sick", "Give medicine and keep them clean.")
	case !p.IsSick && wasSick:
		log.Printf("Pet recovered (health %.1f)", p.Health)
		p.notify(NoticeRecovered, "💚 "+p.Name+" feels better", "")
	}
}
