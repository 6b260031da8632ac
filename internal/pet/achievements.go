package pet

import "log"

// Achievement keys
const (
	AchievementHatched   = "hatched"
	AchievementTeen      = "teen"
	AchievementAdult     = "adult"
	AchievementElder     = "elder"
	AchievementLevel5    = "level_5"
	AchievementLevel10   = "level_10"
	AchievementLevel20   = "level_20"
	AchievementRich      = "rich"
	AchievementScholar   = "scholar"
	AchievementAthlete   = "athlete_body"
	AchievementDecorator = "decorator"
	AchievementLegacy    = "legacy"
)

// Achievement describes a badge the pet can earn.
type Achievement struct {
	Key         string
	Name        string
	Description string
	Icon        string
}

// Achievements lists every achievement in display order.
var Achievements = []Achievement{
	{AchievementHatched, "Hello World", "Hatch from the egg", "🐣"},
	{AchievementTeen, "Growing Up", "Become a teen", "🧒"},
	{AchievementAdult, "All Grown Up", "Become an adult", "🧑"},
	{AchievementElder, "Wise One", "Become an elder", "🧓"},
	{AchievementLevel5, "Getting Started", "Reach level 5", "🌱"},
	{AchievementLevel10, "Seasoned", "Reach level 10", "🌿"},
	{AchievementLevel20, "Veteran", "Reach level 20", "🌳"},
	{AchievementRich, "Piggy Bank", "Hold 1000 coins", "💰"},
	{AchievementScholar, "Scholar", "Intelligence level 5", "🧠"},
	{AchievementAthlete, "Athlete", "Strength level 5", "💪"},
	{AchievementDecorator, "Interior Designer", "Own 3 decorations", "🪴"},
	{AchievementLegacy, "Legacy", "Start a new life after retirement", "✨"},
}

// Grant flips an achievement on. Achievements are never revoked.
// It reports whether the achievement was newly earned.
func (p *Pet) Grant(key string) bool {
	if p.Achievements == nil {
		p.Achievements = make(map[string]bool)
	}
	if p.Achievements[key] {
		return false
	}
	p.Achievements[key] = true
	for _, a := range Achievements {
		if a.Key == key {
			log.Printf("Achievement unlocked: %s", a.Name)
			p.notify(NoticeAchievement, a.Icon+" "+a.Name, a.Description)
			break
		}
	}
	return true
}

// CountEarned returns how many achievements have been earned.
func (p *Pet) CountEarned() int {
	count := 0
	for _, earned := range p.Achievements {
		if earned {
			count++
		}
	}
	return count
}

// checkAchievements grants every threshold achievement the pet now meets.
func (p *Pet) checkAchievements() {
	if p.Level >= 5 {
		p.Grant(AchievementLevel5)
	}
	if p.Level >= 10 {
		p.Grant(AchievementLevel10)
	}
	if p.Level >= 20 {
		p.Grant(AchievementLevel20)
	}
	if p.Coins >= RichCoins {
		p.Grant(AchievementRich)
	}
	if p.SkillLevel(SkillIntelligence) >= ScholarLevel {
		p.Grant(AchievementScholar)
	}
	if p.SkillLevel(SkillStrength) >= ScholarLevel {
		p.Grant(AchievementAthlete)
	}
	if len(p.Decor) >= DecoratorCount {
		p.Grant(AchievementDecorator)
	}
}
