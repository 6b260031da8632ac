package pet

import (
	"fmt"
	"log"
	"math"
)

// Action names a player-invoked state transition.
type Action string

const (
	ActionFeed       Action = "feed"
	ActionPlay       Action = "play"
	ActionSleep      Action = "sleep"
	ActionClean      Action = "clean"
	ActionTrain      Action = "train"
	ActionWork       Action = "work"
	ActionRead       Action = "read"
	ActionMeditate   Action = "meditate"
	ActionWalk       Action = "walk"
	ActionUseItem    Action = "use"
	ActionBuy        Action = "buy"
	ActionSpendPoint Action = "spend"
	ActionBuyLegacy  Action = "legacy"
	ActionRetire     Action = "retire"
)

// CareActions are the actions offered in the main menu, in menu order.
var CareActions = []Action{
	ActionFeed, ActionPlay, ActionSleep, ActionClean, ActionTrain,
	ActionWork, ActionRead, ActionMeditate, ActionWalk,
}

// Reason is the code attached to a rejected action.
type Reason string

const (
	ReasonEgg          Reason = "egg"
	ReasonTooYoung     Reason = "too_young"
	ReasonTooSick      Reason = "too_sick"
	ReasonTooTired     Reason = "too_tired"
	ReasonNotHungry    Reason = "not_hungry"
	ReasonNotTired     Reason = "not_tired"
	ReasonAlreadyClean Reason = "already_clean"
	ReasonNoCoins      Reason = "no_coins"
	ReasonNoItem       Reason = "no_item"
	ReasonUnknownItem  Reason = "unknown_item"
	ReasonOwned        Reason = "already_owned"
	ReasonNoPoints     Reason = "no_skill_points"
	ReasonUnknownSkill Reason = "unknown_skill"
	ReasonUnknownBonus Reason = "unknown_bonus"
	ReasonNoStardust   Reason = "no_stardust"
	ReasonNotElder     Reason = "not_elder"
	ReasonLevelTooLow  Reason = "level_too_low"
	ReasonUnknown      Reason = "unknown_action"
)

var reasonMessages = map[Reason]string{
	ReasonEgg:          "🥚 Still an egg...",
	ReasonTooYoung:     "🧸 Too young for that!",
	ReasonTooSick:      "🤒 Too sick. Try some medicine first.",
	ReasonTooTired:     "😴 Too tired...",
	ReasonNotHungry:    "🍽️ Not hungry right now!",
	ReasonNotTired:     "👀 Not sleepy at all!",
	ReasonAlreadyClean: "✨ Already sparkling clean!",
	ReasonNoCoins:      "💸 Not enough coins.",
	ReasonNoItem:       "🎒 You don't have any of that.",
	ReasonUnknownItem:  "❓ No such thing in the shop.",
	ReasonOwned:        "🏠 Already in the room.",
	ReasonNoPoints:     "📉 No skill points to spend.",
	ReasonUnknownSkill: "❓ Unknown skill.",
	ReasonUnknownBonus: "❓ Unknown legacy bonus.",
	ReasonNoStardust:   "🌑 Not enough stardust.",
	ReasonNotElder:     "⏳ Only elders can retire.",
	ReasonLevelTooLow:  fmt.Sprintf("📈 Reach level %d to retire.", RetireLevel),
	ReasonUnknown:      "❓ Unknown action.",
}

// Message returns the user-facing text for the reason.
func (r Reason) Message() string {
	if msg, ok := reasonMessages[r]; ok {
		return msg
	}
	return string(r)
}

// ActionError reports an action rejected by one of its preconditions. The pet
// is left untouched whenever an ActionError is returned.
type ActionError struct {
	Action Action
	Reason Reason
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s rejected: %s", e.Action, e.Reason.Message())
}

func reject(a Action, r Reason) error {
	return &ActionError{Action: a, Reason: r}
}

// Outcome describes what a successful action did.
type Outcome struct {
	Action  Action
	Message string
	XP      float64
	Coins   int
}

// Perform dispatches an action by name. arg carries the item, skill or bonus
// name for actions that need one.
func (e *Engine) Perform(p *Pet, a Action, arg string) (Outcome, error) {
	switch a {
	case ActionFeed:
		return e.Feed(p)
	case ActionPlay:
		return e.Play(p)
	case ActionSleep:
		return e.Sleep(p)
	case ActionClean:
		return e.Clean(p)
	case ActionTrain:
		return e.Train(p)
	case ActionWork:
		return e.Work(p)
	case ActionRead:
		return e.Read(p)
	case ActionMeditate:
		return e.Meditate(p)
	case ActionWalk:
		return e.Walk(p)
	case ActionUseItem:
		return e.UseItem(p, arg)
	case ActionBuy:
		return e.Buy(p, arg)
	case ActionSpendPoint:
		return e.SpendSkillPoint(p, Skill(arg))
	case ActionBuyLegacy:
		return e.BuyLegacy(p, arg)
	default:
		return Outcome{}, reject(a, ReasonUnknown)
	}
}

// requirements is the precondition set shared by the care actions.
type requirements struct {
	stage     Stage
	minEnergy float64
	physical  bool // Blocked while too sick
}

func (p *Pet) check(a Action, req requirements) error {
	if p.AgeStage == StageEgg {
		return reject(a, ReasonEgg)
	}
	if req.stage != "" && !p.AgeStage.AtLeast(req.stage) {
		return reject(a, ReasonTooYoung)
	}
	if req.physical && p.tooSick() {
		return reject(a, ReasonTooSick)
	}
	if p.Energy < req.minEnergy {
		return reject(a, ReasonTooTired)
	}
	return nil
}

func (p *Pet) tooSick() bool {
	return p.IsSick && p.Health < SickBlockHealth
}

// gain applies a care-boosted stat change.
func (p *Pet) gain(stat *float64, delta float64) {
	addStat(stat, boost(delta, p.Legacy(LegacyCare)))
}

// hobbyBonus returns the skill gain multiplier for actions matching the hobby.
func (p *Pet) hobbyBonus(a Action) float64 {
	matches := map[Hobby]Action{
		HobbyReading: ActionRead,
		HobbyGaming:  ActionPlay,
		HobbyDancing: ActionWalk,
		HobbySports:  ActionTrain,
	}
	if p.Hobby != HobbyNone && matches[p.Hobby] == a {
		return 1.2
	}
	return 1
}

// Feed restores hunger.
func (e *Engine) Feed(p *Pet) (Outcome, error) {
	if err := p.check(ActionFeed, requirements{}); err != nil {
		return Outcome{}, err
	}
	if p.Hunger >= 95 {
		return Outcome{}, reject(ActionFeed, ReasonNotHungry)
	}

	p.gain(&p.Hunger, 30)
	p.gain(&p.Happiness, 5)
	p.gain(&p.Cleanliness, -5)
	xp := e.AddXP(p, 5)
	log.Printf("Fed pet. Hunger is now %.1f, Happiness is now %.1f", p.Hunger, p.Happiness)
	return Outcome{Action: ActionFeed, XP: xp, Message: "🍖 Yum!"}, nil
}

// Play raises happiness at the cost of energy and hunger.
func (e *Engine) Play(p *Pet) (Outcome, error) {
	if err := p.check(ActionPlay, requirements{minEnergy: 15, physical: true}); err != nil {
		return Outcome{}, err
	}

	p.gain(&p.Happiness, 20)
	p.gain(&p.Energy, -15)
	p.gain(&p.Hunger, -10)
	bonus := p.hobbyBonus(ActionPlay)
	e.AddSkill(p, SkillAgility, 2*bonus)
	e.AddSkill(p, SkillCharm, 1*bonus)
	xp := e.AddXP(p, 10)
	log.Printf("Played with pet. Happiness is now %.1f, Energy is now %.1f", p.Happiness, p.Energy)
	return Outcome{Action: ActionPlay, XP: xp, Message: "🎾 Wheee!"}, nil
}

// Sleep restores energy.
func (e *Engine) Sleep(p *Pet) (Outcome, error) {
	if err := p.check(ActionSleep, requirements{}); err != nil {
		return Outcome{}, err
	}
	if p.Energy >= 90 {
		return Outcome{}, reject(ActionSleep, ReasonNotTired)
	}

	p.gain(&p.Energy, 50)
	p.gain(&p.Hunger, -10)
	xp := e.AddXP(p, 2)
	log.Printf("Pet slept. Energy is now %.1f", p.Energy)
	return Outcome{Action: ActionSleep, XP: xp, Message: "😴 Zzz... refreshed!"}, nil
}

// Clean restores cleanliness.
func (e *Engine) Clean(p *Pet) (Outcome, error) {
	if err := p.check(ActionClean, requirements{}); err != nil {
		return Outcome{}, err
	}
	if p.Cleanliness >= 95 {
		return Outcome{}, reject(ActionClean, ReasonAlreadyClean)
	}

	p.Cleanliness = MaxStat
	p.gain(&p.Happiness, 5)
	xp := e.AddXP(p, 5)
	log.Printf("Cleaned pet")
	return Outcome{Action: ActionClean, XP: xp, Message: "🛁 Squeaky clean!"}, nil
}

// Train builds strength.
func (e *Engine) Train(p *Pet) (Outcome, error) {
	if err := p.check(ActionTrain, requirements{minEnergy: 20, physical: true}); err != nil {
		return Outcome{}, err
	}

	p.gain(&p.Energy, -20)
	p.gain(&p.Hunger, -10)
	p.gain(&p.Cleanliness, -10)
	bonus := p.hobbyBonus(ActionTrain)
	e.AddSkill(p, SkillStrength, 3*bonus)
	e.AddSkill(p, SkillAgility, 1*bonus)
	xp := e.AddXP(p, 15)
	log.Printf("Trained. Strength is now %.1f", p.Skills[SkillStrength])
	return Outcome{Action: ActionTrain, XP: xp, Message: "💪 Feel the burn!"}, nil
}

// WorkCoins returns what a shift of work currently pays.
func (p *Pet) WorkCoins() int {
	pay := float64(WorkBaseCoins) * p.SkillBonus(SkillCharm) * p.SkillBonus(SkillLuck) *
		p.Legacy(LegacyCoins) * p.eventCoinMultiplier()
	return int(math.Round(pay))
}

// Work earns coins. Only teens and older can work.
func (e *Engine) Work(p *Pet) (Outcome, error) {
	if err := p.check(ActionWork, requirements{stage: StageTeen, minEnergy: 25, physical: true}); err != nil {
		return Outcome{}, err
	}

	coins := p.WorkCoins()
	p.Coins += coins
	p.gain(&p.Energy, -25)
	p.gain(&p.Happiness, -10)
	p.gain(&p.Hunger, -10)
	e.AddSkill(p, SkillFocus, 1)
	e.AddSkill(p, SkillCharm, 1)
	xp := e.AddXP(p, 10)
	p.checkAchievements()
	log.Printf("Worked a shift for %d coins (total %d)", coins, p.Coins)
	return Outcome{Action: ActionWork, XP: xp, Coins: coins,
		Message: fmt.Sprintf("💼 Earned %d coins!", coins)}, nil
}

// Read builds intelligence.
func (e *Engine) Read(p *Pet) (Outcome, error) {
	if err := p.check(ActionRead, requirements{minEnergy: 10}); err != nil {
		return Outcome{}, err
	}

	p.gain(&p.Energy, -10)
	bonus := p.hobbyBonus(ActionRead) * p.decorReadModifier()
	e.AddSkill(p, SkillIntelligence, 3*bonus)
	e.AddSkill(p, SkillFocus, 1)
	xp := e.AddXP(p, 10)
	log.Printf("Read a book. Intelligence is now %.1f", p.Skills[SkillIntelligence])
	return Outcome{Action: ActionRead, XP: xp, Message: "📖 So interesting!"}, nil
}

// Meditate builds focus and restores a little health.
func (e *Engine) Meditate(p *Pet) (Outcome, error) {
	if err := p.check(ActionMeditate, requirements{minEnergy: 5}); err != nil {
		return Outcome{}, err
	}

	p.gain(&p.Energy, -5)
	p.gain(&p.Happiness, 5)
	p.gain(&p.Health, 5)
	e.AddSkill(p, SkillFocus, 3)
	xp := e.AddXP(p, 8)
	log.Printf("Meditated. Focus is now %.1f", p.Skills[SkillFocus])
	return Outcome{Action: ActionMeditate, XP: xp, Message: "🧘 Inner peace..."}, nil
}

// Walk builds agility and may turn up a few coins.
func (e *Engine) Walk(p *Pet) (Outcome, error) {
	if err := p.check(ActionWalk, requirements{minEnergy: 10, physical: true}); err != nil {
		return Outcome{}, err
	}

	p.gain(&p.Happiness, 10)
	p.gain(&p.Health, 3)
	p.gain(&p.Energy, -10)
	p.gain(&p.Cleanliness, -10)
	bonus := p.hobbyBonus(ActionWalk)
	e.AddSkill(p, SkillAgility, 2*bonus)
	e.AddSkill(p, SkillLuck, 1)

	out := Outcome{Action: ActionWalk, Message: "🚶 What a nice walk!"}
	if e.rng.Float64() < min(WalkLootChance*p.SkillBonus(SkillLuck), 1) {
		found := int(math.Round(WalkLootCoins * p.SkillBonus(SkillLuck) * p.eventCoinMultiplier()))
		p.Coins += found
		out.Coins = found
		out.Message = fmt.Sprintf("🪙 Found %d coins on the walk!", found)
		p.checkAchievements()
	}
	out.XP = e.AddXP(p, 8)
	log.Printf("Went for a walk. Agility is now %.1f", p.Skills[SkillAgility])
	return out, nil
}
