package store

import (
	"encoding/json"
	"maps"
	"slices"

	"tamalife/internal/pet"
)

// fields records which top-level keys a document carried. A key holding
// JSON null counts as absent.
type fields map[string]json.RawMessage

func (f fields) has(key string) bool {
	raw, ok := f[key]
	return ok && string(raw) != "null"
}

// Reconcile fills every field of loaded that the document did not carry with
// the value from def. Mapping fields are merged key by key, so values the
// document did carry are never replaced.
func Reconcile(def, loaded pet.Pet, present map[string]json.RawMessage) pet.Pet {
	f := fields(present)
	out := loaded.Clone()
	d := def.Clone()

	if !f.has("id") {
		out.ID = d.ID
	}
	if !f.has("name") {
		out.Name = d.Name
	}
	if !f.has("personality") || !out.Personality.Valid() {
		out.Personality = d.Personality
	}
	if !f.has("created_at") {
		out.CreatedAt = d.CreatedAt
	}
	if !f.has("last_tick") {
		out.LastTick = d.LastTick
	}
	if !f.has("hunger") {
		out.Hunger = d.Hunger
	}
	if !f.has("happiness") {
		out.Happiness = d.Happiness
	}
	if !f.has("energy") {
		out.Energy = d.Energy
	}
	if !f.has("cleanliness") {
		out.Cleanliness = d.Cleanliness
	}
	if !f.has("health") {
		out.Health = d.Health
	}
	if !f.has("is_sick") {
		out.IsSick = d.IsSick
	}
	if !f.has("age_minutes") {
		out.AgeMinutes = d.AgeMinutes
	}
	if !f.has("age_stage") || out.AgeStage.Rank() < 0 {
		out.AgeStage = pet.StageForAge(out.AgeMinutes)
	}
	if !f.has("evolution_type") {
		out.Evolution = d.Evolution
	}
	if !f.has("hobby") {
		out.Hobby = d.Hobby
	}
	if !f.has("xp") {
		out.XP = d.XP
	}
	if !f.has("level") || out.Level < 1 {
		out.Level = d.Level
	}
	if !f.has("skill_points") {
		out.SkillPoints = d.SkillPoints
	}
	if !f.has("coins") {
		out.Coins = d.Coins
	}
	if !f.has("decor") {
		out.Decor = d.Decor
	}
	if !f.has("current_event") {
		out.CurrentEvent = d.CurrentEvent
	}

	out.Skills = mergeKeys(out.Skills, d.Skills)
	out.Inventory = mergeKeys(out.Inventory, d.Inventory)
	out.Achievements = mergeKeys(out.Achievements, d.Achievements)

	reconcileLegacy(&out, d, f)
	normalize(&out)
	out.Version = pet.DocumentVersion
	return out
}

// reconcileLegacy merges the cross-life fields. Existing values always win.
func reconcileLegacy(out *pet.Pet, def pet.Pet, f fields) {
	if !f.has("stardust") || out.Stardust < 0 {
		out.Stardust = def.Stardust
	}
	out.LegacyBonus = mergeKeys(out.LegacyBonus, def.LegacyBonus)
	for k, v := range out.LegacyBonus {
		if v < 1 {
			out.LegacyBonus[k] = 1
		}
	}
}

// normalize repairs values a hand-edited document could push out of range.
func normalize(p *pet.Pet) {
	for _, stat := range []*float64{&p.Hunger, &p.Happiness, &p.Energy, &p.Cleanliness, &p.Health} {
		*stat = min(max(*stat, pet.MinStat), pet.MaxStat)
	}
	if p.Coins < 0 {
		p.Coins = 0
	}
	for k, v := range p.Inventory {
		if v < 0 {
			p.Inventory[k] = 0
		}
	}
	slices.Sort(p.Decor)
	p.Decor = slices.Compact(p.Decor)
	if p.Decor == nil {
		p.Decor = []string{}
	}
}

// mergeKeys adds every key of def missing from dst.
func mergeKeys[K comparable, V any](dst, def map[K]V) map[K]V {
	if dst == nil {
		return maps.Clone(def)
	}
	for k, v := range def {
		if _, ok := dst[k]; !ok {
			dst[k] = v
		}
	}
	return dst
}
