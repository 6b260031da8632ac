package pet

import "time"

// Snapshot is a read-only copy of the pet plus derived display values. It
// shares no memory with the live pet.
type Snapshot struct {
	Pet

	Status      string
	FormName    string
	StageEmoji  string
	SkillLevels map[Skill]int
	XPToNext    float64
	TakenAt     time.Time
}

// NewSnapshot copies p and computes the derived values.
func NewSnapshot(p *Pet, now time.Time) Snapshot {
	c := p.Clone()
	levels := make(map[Skill]int, len(Skills))
	for _, s := range Skills {
		levels[s] = c.SkillLevel(s)
	}
	return Snapshot{
		Pet:         c,
		Status:      GetStatusWithLabel(c),
		FormName:    c.GetFormName(),
		StageEmoji:  c.GetStageEmoji(),
		SkillLevels: levels,
		XPToNext:    XPRequiredForLevel(c.Level) - c.XP,
		TakenAt:     now,
	}
}
