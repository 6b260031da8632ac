package pet

import (
	"log"
	"time"
)

// EventType names a daily world event.
type EventType string

// Event type constants
const (
	EventNone     EventType = "none"
	EventFlu      EventType = "flu"
	EventSunny    EventType = "sunny"
	EventDoubleXP EventType = "double_xp"
	EventHeatwave EventType = "heatwave"
	EventRainy    EventType = "rainy"
	EventLuckyDay EventType = "lucky_day"
)

// EventDefinition describes an event's properties
type EventDefinition struct {
	Type      EventType
	Emoji     string
	Message   string
	Weight    int
	Sickening bool // Keeps pets sick and raises decay
	Favorable bool // Slows decay
	XPMult    float64
	CoinMult  float64
	StatMult  map[Stat]float64
}

var eventDefinitions = []EventDefinition{
	{
		Type:    EventNone,
		Emoji:   "🌤️",
		Message: "An ordinary day.",
		Weight:  40,
	},
	{
		Type:      EventFlu,
		Emoji:     "🤧",
		Message:   "Flu season! Pets fall ill and tire faster.",
		Weight:    10,
		Sickening: true,
	},
	{
		Type:      EventSunny,
		Emoji:     "☀️",
		Message:   "A lovely sunny day. Everyone feels great.",
		Weight:    15,
		Favorable: true,
	},
	{
		Type:    EventDoubleXP,
		Emoji:   "📚",
		Message: "Learning festival! Experience gains are boosted.",
		Weight:  10,
		XPMult:  1.5,
	},
	{
		Type:     EventHeatwave,
		Emoji:    "🥵",
		Message:  "Heatwave. Energy drains faster.",
		Weight:   10,
		StatMult: map[Stat]float64{StatEnergy: 1.3},
	},
	{
		Type:     EventRainy,
		Emoji:    "🌧️",
		Message:  "Muddy rain all day. Keep your pet clean!",
		Weight:   10,
		StatMult: map[Stat]float64{StatCleanliness: 1.4},
	},
	{
		Type:     EventLuckyDay,
		Emoji:    "🍀",
		Message:  "Lucky day! Coin rewards are doubled.",
		Weight:   5,
		CoinMult: 2,
	},
}

// GetEventDefinitions returns all possible world events
func GetEventDefinitions() []EventDefinition {
	return eventDefinitions
}

// GetEventDefinition returns the definition for a given event type
func GetEventDefinition(eventType EventType) *EventDefinition {
	for i := range eventDefinitions {
		if eventDefinitions[i].Type == eventType {
			return &eventDefinitions[i]
		}
	}
	return nil
}

func (p *Pet) eventDefinition() *EventDefinition {
	t, ok := p.Event()
	if !ok {
		return nil
	}
	return GetEventDefinition(t)
}

// sickeningEvent reports whether the active event keeps pets sick.
func (p *Pet) sickeningEvent() bool {
	def := p.eventDefinition()
	return def != nil && def.Sickening
}

// eventDecayMultiplier is the global decay multiplier of the active event,
// with the excess above 1.0 dampened by the focus skill.
func (p *Pet) eventDecayMultiplier() float64 {
	mult := 1.0
	if def := p.eventDefinition(); def != nil {
		switch {
		case def.Sickening:
			mult = SickEventDecayMult
		case def.Favorable:
			mult = FavorableEventDecayMult
		}
	}
	if mult > 1 {
		focusFraction := p.SkillBonus(SkillFocus) - 1
		dampening := min(focusFraction*FocusDampeningShare, FocusDampeningShare)
		mult = 1 + (mult-1)*(1-dampening)
	}
	return mult
}

// eventStatMultiplier is the additional per-stat multiplier of the active event.
func (p *Pet) eventStatMultiplier(s Stat) float64 {
	if def := p.eventDefinition(); def != nil {
		if m, ok := def.StatMult[s]; ok {
			return m
		}
	}
	return 1
}

func (p *Pet) eventXPMultiplier() float64 {
	if def := p.eventDefinition(); def != nil && def.XPMult > 0 {
		return def.XPMult
	}
	return 1
}

func (p *Pet) eventCoinMultiplier() float64 {
	if def := p.eventDefinition(); def != nil && def.CoinMult > 0 {
		return def.CoinMult
	}
	return 1
}

// RefreshEvent rolls a new daily event once more than a day of real time has
// passed since the last roll. It reports whether the event changed.
func (e *Engine) RefreshEvent(p *Pet, wallNow time.Time) bool {
	last := p.CurrentEvent.LastUpdate
	if !last.IsZero() && wallNow.Sub(last) <= EventRefreshInterval {
		return false
	}

	total := 0
	for _, def := range eventDefinitions {
		total += def.Weight
	}
	roll := e.rng.IntN(total)
	chosen := eventDefinitions[0]
	for _, def := range eventDefinitions {
		if roll < def.Weight {
			chosen = def
			break
		}
		roll -= def.Weight
	}

	p.CurrentEvent = WorldEvent{Type: chosen.Type, LastUpdate: wallNow}
	log.Printf("World event changed: %s %s", chosen.Emoji, chosen.Type)
	p.notify(NoticeEvent, chosen.Emoji+" New day", chosen.Message)

	if chosen.Sickening && !p.IsSick && p.AgeStage != StageEgg {
		p.IsSick = true
		p.notify(NoticeSick, "🤒 "+p.Name+" caught the flu", "Medicine will help once it passes.")
	}
	return true
}

// GetEventDisplay returns the display values for the current world event
func (p *Pet) GetEventDisplay() (emoji, message string, hasEvent bool) {
	def := p.eventDefinition()
	if def == nil {
		return "", "", false
	}
	return def.Emoji, def.Message, true
}
