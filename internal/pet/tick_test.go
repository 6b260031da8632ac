package pet

import (
	"testing"
	"time"
)

func TestTickDecay(t *testing.T) {
	t.Run("Curious child loses happiness at the modified rate", func(t *testing.T) {
		e := newTestEngine(&fakeRand{})
		p := newTestPet(StageChild)

		e.Tick(&p, testStart.Add(60*time.Minute))

		want := clampStat(80 - HappinessDecayRate*0.9*60)
		if !approx(p.Happiness, want) {
			t.Errorf("Expected happiness %.2f, got %.4f", want, p.Happiness)
		}
		if !approx(p.Hunger, 80-HungerDecayRate*60) {
			t.Errorf("Expected hunger %.2f, got %.4f", 80-HungerDecayRate*60, p.Hunger)
		}
		if !approx(p.AgeMinutes, ChildAgeMinutes+5+60) {
			t.Errorf("Expected age %.0f, got %.2f", ChildAgeMinutes+65, p.AgeMinutes)
		}
		if !p.LastTick.Equal(testStart.Add(time.Hour)) {
			t.Errorf("Expected last tick to move to now, got %v", p.LastTick)
		}
	})

	t.Run("Favorable event slows decay", func(t *testing.T) {
		e := newTestEngine(&fakeRand{})
		p := newTestPet(StageChild)
		p.CurrentEvent = WorldEvent{Type: EventSunny, LastUpdate: testStart}

		e.Tick(&p, testStart.Add(10*time.Minute))

		want := 80 - HungerDecayRate*FavorableEventDecayMult*10
		if !approx(p.Hunger, want) {
			t.Errorf("Expected hunger %.2f, got %.4f", want, p.Hunger)
		}
	})

	t.Run("Decor slows its stat", func(t *testing.T) {
		e := newTestEngine(&fakeRand{})
		p := newTestPet(StageChild)
		p.Decor = []string{DecorFridge}

		e.Tick(&p, testStart.Add(10*time.Minute))

		want := 80 - HungerDecayRate*0.9*10
		if !approx(p.Hunger, want) {
			t.Errorf("Expected hunger %.2f, got %.4f", want, p.Hunger)
		}
	})
}

func TestTickClampsStats(t *testing.T) {
	e := newTestEngine(&fakeRand{})
	p := newTestPet(StageAdult)

	e.Tick(&p, testStart.Add(3000*time.Minute))

	for name, v := range map[string]float64{
		"hunger": p.Hunger, "happiness": p.Happiness, "energy": p.Energy,
		"cleanliness": p.Cleanliness, "health": p.Health,
	} {
		if v < MinStat || v > MaxStat {
			t.Errorf("%s out of range: %.2f", name, v)
		}
	}
	if p.Hunger != MinStat || p.Health != MinStat {
		t.Errorf("Expected a long neglect to bottom out hunger and health, got %.2f and %.2f", p.Hunger, p.Health)
	}
	if !p.IsSick {
		t.Error("Expected a neglected pet to be sick")
	}
}

func TestTickWithoutElapsedTime(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
	}{
		{"Same instant", testStart},
		{"Clock went backwards", testStart.Add(-time.Hour)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(&fakeRand{floats: []float64{0}})
			p := newTestPet(StageChild)
			p.Cleanliness = 5
			before := mustJSON(t, &p)

			e.Tick(&p, tt.now)

			if after := mustJSON(t, &p); after != before {
				t.Errorf("Expected no change, got\n%s\nwant\n%s", after, before)
			}
		})
	}
}

func TestEggOnlyAges(t *testing.T) {
	e := newTestEngine(&fakeRand{})
	p := newTestPet(StageEgg)

	e.Tick(&p, testStart.Add(3*time.Minute))

	if p.Hunger != 80 || p.Happiness != 80 || p.Health != MaxStat {
		t.Errorf("Expected egg stats unchanged, got hunger %.1f happiness %.1f health %.1f", p.Hunger, p.Happiness, p.Health)
	}
	if p.AgeStage != StageEgg {
		t.Errorf("Expected still an egg, got %s", p.AgeStage)
	}

	e.Tick(&p, testStart.Add(6*time.Minute))
	if p.AgeStage != StageChild {
		t.Errorf("Expected the egg to hatch, got %s", p.AgeStage)
	}
	if !p.Achievements[AchievementHatched] {
		t.Error("Expected the hatched achievement")
	}
}

func TestStageCascade(t *testing.T) {
	e := newTestEngine(&fakeRand{})
	p := newTestPet(StageEgg)

	e.Tick(&p, testStart.Add(time.Duration(ElderAgeMinutes+1)*time.Minute))

	if p.AgeStage != StageElder {
		t.Fatalf("Expected elder, got %s", p.AgeStage)
	}
	// Teen, adult and elder each add a level; their xp grants sum to 300,
	// which stays below the 400 needed at level 4
	if p.Level != 4 {
		t.Errorf("Expected level 4, got %d", p.Level)
	}
	if !approx(p.XP, TeenXPGrant+AdultXPGrant+ElderXPGrant) {
		t.Errorf("Expected xp %.0f, got %.2f", TeenXPGrant+AdultXPGrant+ElderXPGrant, p.XP)
	}
	if p.Evolution != EvolutionAverage {
		t.Errorf("Expected average evolution, got %s", p.Evolution)
	}
	if p.Hobby != HobbyGaming {
		t.Errorf("Expected the tie to resolve to gaming, got %s", p.Hobby)
	}
	for _, key := range []string{AchievementHatched, AchievementTeen, AchievementAdult, AchievementElder} {
		if !p.Achievements[key] {
			t.Errorf("Expected achievement %s", key)
		}
	}

	var kinds []NoticeKind
	for _, n := range p.TakeNotices() {
		kinds = append(kinds, n.Kind)
	}
	want := []NoticeKind{NoticeHatched, NoticeStage, NoticeEvolved, NoticeStage}
	var stageKinds []NoticeKind
	for _, k := range kinds {
		if k != NoticeAchievement {
			stageKinds = append(stageKinds, k)
		}
	}
	if len(stageKinds) != len(want) {
		t.Fatalf("Expected notices %v, got %v", want, stageKinds)
	}
	for i := range want {
		if stageKinds[i] != want[i] {
			t.Errorf("Notice %d: expected %s, got %s", i, want[i], stageKinds[i])
		}
	}
	if len(p.TakeNotices()) != 0 {
		t.Error("Expected notices to be drained")
	}
}

func TestStageTransitionFiresOnce(t *testing.T) {
	e := newTestEngine(&fakeRand{})
	p := newTestPet(StageChild)
	p.AgeMinutes = TeenAgeMinutes - 1

	e.Tick(&p, testStart.Add(2*time.Minute))
	level := p.Level
	e.Tick(&p, testStart.Add(4*time.Minute))

	if p.AgeStage != StageTeen {
		t.Fatalf("Expected teen, got %s", p.AgeStage)
	}
	if p.Level != level {
		t.Errorf("Expected the teen reward once, level went from %d to %d", level, p.Level)
	}
}

func TestChooseEvolution(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(p *Pet)
		expected Evolution
	}{
		{"Balanced skills", func(p *Pet) {}, EvolutionAverage},
		{"Mental dominance", func(p *Pet) {
			p.Skills[SkillIntelligence] = 30
			p.Skills[SkillStrength] = 10
		}, EvolutionGenius},
		{"Physical dominance", func(p *Pet) {
			p.Skills[SkillAgility] = 20
			p.Skills[SkillCharm] = 5
		}, EvolutionAthlete},
		{"Poor care beats skills", func(p *Pet) {
			p.Skills[SkillIntelligence] = 50
			p.Hunger, p.Happiness, p.Energy, p.Cleanliness = 20, 20, 20, 20
		}, EvolutionSlacker},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPet(StageTeen)
			tt.setup(&p)
			if got := ChooseEvolution(&p); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestChooseHobby(t *testing.T) {
	tests := []struct {
		name     string
		skills   map[Skill]float64
		expected Hobby
	}{
		{"Bookworm", map[Skill]float64{SkillIntelligence: 30, SkillAgility: 5, SkillStrength: 5}, HobbyReading},
		{"Smart but active", map[Skill]float64{SkillIntelligence: 10, SkillAgility: 6, SkillStrength: 5}, HobbyGaming},
		{"Agile", map[Skill]float64{SkillAgility: 10}, HobbyDancing},
		{"Strong", map[Skill]float64{SkillStrength: 10, SkillAgility: 2}, HobbySports},
		{"Nothing yet", map[Skill]float64{}, HobbyGaming},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChooseHobby(tt.skills); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestSickness(t *testing.T) {
	tests := []struct {
		name     string
		rolls    []float64
		setup    func(p *Pet)
		wantSick bool
	}{
		{"Dirt makes a pet sick on a lucky roll", []float64{0}, func(p *Pet) {
			p.Cleanliness = 10
			p.Health = 60
		}, true},
		{"Dirt does nothing on an unlucky roll", []float64{0.5}, func(p *Pet) {
			p.Cleanliness = 10
			p.Health = 60
		}, false},
		{"Dirty but healthy pets shake it off", []float64{0}, func(p *Pet) {
			p.Cleanliness = 10
		}, false},
		{"Low health forces sickness", nil, func(p *Pet) {
			p.Health = 20
		}, true},
		{"High health clears sickness", nil, func(p *Pet) {
			p.IsSick = true
			p.Health = 90
		}, false},
		{"Flu keeps a healthy pet sick", nil, func(p *Pet) {
			p.IsSick = true
			p.Health = 95
			p.CurrentEvent = WorldEvent{Type: EventFlu, LastUpdate: testStart}
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(&fakeRand{floats: tt.rolls})
			p := newTestPet(StageAdult)
			tt.setup(&p)

			e.Tick(&p, testStart.Add(time.Minute))

			if p.IsSick != tt.wantSick {
				t.Errorf("Expected sick=%v, got %v (health %.1f)", tt.wantSick, p.IsSick, p.Health)
			}
		})
	}
}

func TestHealthDecay(t *testing.T) {
	e := newTestEngine(&fakeRand{})
	p := newTestPet(StageAdult)
	p.Hunger = 10.6 // Stays at 10 after one minute of decay
	p.Energy = 5
	p.IsSick = true
	p.Health = 60

	e.Tick(&p, testStart.Add(time.Minute))

	loss := SickHealthRate + (StarvationThreshold-10)*StarvationRatePerPt + ExhaustionHealthRate
	if !approx(p.Health, 60-loss) {
		t.Errorf("Expected health %.3f, got %.4f", 60-loss, p.Health)
	}
}
