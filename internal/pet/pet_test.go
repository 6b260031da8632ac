package pet

import (
	"encoding/json"
	"math"
	"testing"
	"time"
)

var testStart = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// fakeRand replays fixed values. Once exhausted, Float64 returns 0.99 so
// chance rolls fail, and IntN returns 0.
type fakeRand struct {
	floats []float64
	ints   []int
}

func (r *fakeRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *fakeRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

func newTestEngine(rng Rand) *Engine {
	tmpl := DefaultTemplate()
	tmpl.Personality = PersonalityCurious
	return NewEngine(rng, tmpl)
}

// newTestPet returns a curious pet of the given stage, with the age set just
// past the stage's start.
func newTestPet(stage Stage) Pet {
	tmpl := DefaultTemplate()
	tmpl.Personality = PersonalityCurious
	p := tmpl.New(testStart, &fakeRand{})
	p.AgeStage = stage
	switch stage {
	case StageChild:
		p.AgeMinutes = ChildAgeMinutes + 5
	case StageTeen:
		p.AgeMinutes = TeenAgeMinutes + 5
	case StageAdult:
		p.AgeMinutes = AdultAgeMinutes + 5
		p.Evolution = EvolutionAverage
	case StageElder:
		p.AgeMinutes = ElderAgeMinutes + 5
		p.Evolution = EvolutionAverage
	}
	return p
}

func mustJSON(t *testing.T, p *Pet) string {
	t.Helper()
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal pet: %v", err)
	}
	return string(data)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewPet(t *testing.T) {
	tmpl := DefaultTemplate().WithName("Mochi")
	p := tmpl.New(testStart, &fakeRand{ints: []int{2}})

	if p.Name != "Mochi" {
		t.Errorf("Expected name Mochi, got %s", p.Name)
	}
	if p.ID == "" {
		t.Error("Expected a generated id")
	}
	if p.Personality != Personalities[2] {
		t.Errorf("Expected personality %s, got %s", Personalities[2], p.Personality)
	}
	if p.AgeStage != StageEgg || p.Level != 1 || p.XP != 0 {
		t.Errorf("Expected level 1 egg with no xp, got %s level %d xp %.1f", p.AgeStage, p.Level, p.XP)
	}
	if p.Health != MaxStat || p.Hunger != 80 || p.Coins != StartingCoins {
		t.Errorf("Unexpected starting values: health %.1f hunger %.1f coins %d", p.Health, p.Hunger, p.Coins)
	}
	for _, s := range Skills {
		if v, ok := p.Skills[s]; !ok || v != 0 {
			t.Errorf("Expected skill %s to start at 0, got %v (present %v)", s, v, ok)
		}
	}
	for _, b := range LegacyBonuses {
		if p.LegacyBonus[b] != 1 {
			t.Errorf("Expected legacy %s to start at 1.0, got %.2f", b, p.LegacyBonus[b])
		}
	}
	if !p.LastTick.Equal(testStart) || !p.CreatedAt.Equal(testStart) {
		t.Error("Expected timestamps to equal creation time")
	}

	t.Run("Template maps are not shared", func(t *testing.T) {
		p.Inventory[ItemApple] = 99
		if tmpl.Inventory[ItemApple] == 99 {
			t.Error("Mutating the pet inventory changed the template")
		}
	})
}

func TestClone(t *testing.T) {
	p := newTestPet(StageAdult)
	p.Decor = []string{DecorPlant}
	c := p.Clone()

	c.Skills[SkillCharm] = 42
	c.Inventory[ItemApple] = 0
	c.Decor[0] = DecorBed
	c.LegacyBonus[LegacyXP] = 3

	if p.Skills[SkillCharm] == 42 || p.Inventory[ItemApple] == 0 || p.Decor[0] != DecorPlant || p.LegacyBonus[LegacyXP] == 3 {
		t.Error("Clone shares memory with the original")
	}
}

func TestSkillLevels(t *testing.T) {
	tests := []struct {
		raw   float64
		level int
		bonus float64
	}{
		{0, 1, 1.0},
		{9.9, 1, 1.0},
		{10, 2, 1.05},
		{45, 5, 1.2},
	}
	for _, tt := range tests {
		p := newTestPet(StageChild)
		p.Skills[SkillCharm] = tt.raw
		if got := p.SkillLevel(SkillCharm); got != tt.level {
			t.Errorf("raw %.1f: expected level %d, got %d", tt.raw, tt.level, got)
		}
		if got := p.SkillBonus(SkillCharm); !approx(got, tt.bonus) {
			t.Errorf("raw %.1f: expected bonus %.2f, got %.4f", tt.raw, tt.bonus, got)
		}
	}
}

func TestGetStatus(t *testing.T) {
	t.Run("Egg status", func(t *testing.T) {
		p := newTestPet(StageEgg)
		if status := GetStatus(p); status != StatusEmojiEgg {
			t.Errorf("Expected %s, got %s", StatusEmojiEgg, status)
		}
	})

	t.Run("Happy status", func(t *testing.T) {
		p := newTestPet(StageChild)
		if status := GetStatus(p); status != StatusEmojiHappy {
			t.Errorf("Expected %s, got %s", StatusEmojiHappy, status)
		}
	})

	t.Run("Sick status", func(t *testing.T) {
		p := newTestPet(StageChild)
		p.IsSick = true
		if status := GetStatus(p); status != StatusEmojiHappy+StatusEmojiSick {
			t.Errorf("Expected %s, got %s", StatusEmojiHappy+StatusEmojiSick, status)
		}
	})

	t.Run("Lowest critical stat wins", func(t *testing.T) {
		p := newTestPet(StageChild)
		p.Hunger = 25
		p.Cleanliness = 10
		if status := GetStatus(p); status != StatusEmojiHappy+StatusEmojiDirty {
			t.Errorf("Expected %s, got %s", StatusEmojiHappy+StatusEmojiDirty, status)
		}
	})
}

func TestSnapshotIsDetached(t *testing.T) {
	p := newTestPet(StageTeen)
	snap := NewSnapshot(&p, testStart)

	p.Skills[SkillLuck] = 50
	p.Hunger = 1
	if snap.Skills[SkillLuck] != 0 || snap.Hunger == 1 {
		t.Error("Snapshot changed when the live pet changed")
	}
	if snap.XPToNext != XPRequiredForLevel(1) {
		t.Errorf("Expected %.0f xp to next level, got %.1f", XPRequiredForLevel(1), snap.XPToNext)
	}
	if snap.SkillLevels[SkillIntelligence] != 1 {
		t.Errorf("Expected skill level 1, got %d", snap.SkillLevels[SkillIntelligence])
	}
}

func TestPersonalityModifiers(t *testing.T) {
	for _, pe := range Personalities {
		for _, s := range decayingStats {
			if m := pe.DecayModifier(s); m <= 0 {
				t.Errorf("%s/%s: decay modifier must be positive, got %.2f", pe, s, m)
			}
		}
		for _, s := range Skills {
			if m := pe.SkillModifier(s); m <= 0 {
				t.Errorf("%s/%s: skill modifier must be positive, got %.2f", pe, s, m)
			}
		}
	}
	if m := PersonalityCurious.DecayModifier(StatHappiness); m != 0.9 {
		t.Errorf("Expected curious happiness modifier 0.9, got %.2f", m)
	}
	if m := Personality("grumpy").DecayModifier(StatHunger); m != 1 {
		t.Errorf("Expected unknown personality to have no modifier, got %.2f", m)
	}
}
