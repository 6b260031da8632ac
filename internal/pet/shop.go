package pet

import (
	"fmt"
	"log"
	"math"
	"slices"
	"sort"
)

// Item names
const (
	ItemApple       = "apple"
	ItemCake        = "cake"
	ItemSoap        = "soap"
	ItemToy         = "toy"
	ItemEnergyDrink = "energy_drink"
	ItemMedicine    = "medicine"
)

// Decor names
const (
	DecorPlant     = "plant"
	DecorBed       = "bed"
	DecorBathtub   = "bathtub"
	DecorFridge    = "fridge"
	DecorBookshelf = "bookshelf"
)

// ItemDefinition describes a consumable sold in the shop.
type ItemDefinition struct {
	Name        string
	Emoji       string
	Price       int
	Hunger      float64
	Happiness   float64
	Energy      float64
	Cleanliness float64
	Health      float64
	Cures       bool
}

// DecorDefinition describes a decoration and its passive effects.
type DecorDefinition struct {
	Name      string
	Emoji     string
	Price     int
	DecayMult map[Stat]float64
	ReadSkill float64 // Multiplier on skill gains from reading
}

var itemDefinitions = []ItemDefinition{
	{Name: ItemApple, Emoji: "🍎", Price: 5, Hunger: 15, Happiness: 2},
	{Name: ItemCake, Emoji: "🍰", Price: 15, Hunger: 30, Happiness: 10, Cleanliness: -5},
	{Name: ItemSoap, Emoji: "🧼", Price: 8, Cleanliness: 40},
	{Name: ItemToy, Emoji: "🧸", Price: 12, Happiness: 25},
	{Name: ItemEnergyDrink, Emoji: "🥤", Price: 18, Energy: 35, Health: -2},
	{Name: ItemMedicine, Emoji: "💊", Price: 25, Health: 30, Cures: true},
}

var decorDefinitions = []DecorDefinition{
	{Name: DecorPlant, Emoji: "🪴", Price: 50, DecayMult: map[Stat]float64{StatHappiness: 0.9}},
	{Name: DecorBed, Emoji: "🛏️", Price: 80, DecayMult: map[Stat]float64{StatEnergy: 0.85}},
	{Name: DecorBathtub, Emoji: "🛁", Price: 70, DecayMult: map[Stat]float64{StatCleanliness: 0.85}},
	{Name: DecorFridge, Emoji: "🧊", Price: 90, DecayMult: map[Stat]float64{StatHunger: 0.9}},
	{Name: DecorBookshelf, Emoji: "📚", Price: 60, ReadSkill: 1.2},
}

// Items returns every consumable in shop order.
func Items() []ItemDefinition {
	return itemDefinitions
}

// Decorations returns every decoration in shop order.
func Decorations() []DecorDefinition {
	return decorDefinitions
}

// GetItem looks up an item definition by name.
func GetItem(name string) (ItemDefinition, bool) {
	for _, it := range itemDefinitions {
		if it.Name == name {
			return it, true
		}
	}
	return ItemDefinition{}, false
}

// GetDecor looks up a decoration definition by name.
func GetDecor(name string) (DecorDefinition, bool) {
	for _, d := range decorDefinitions {
		if d.Name == name {
			return d, true
		}
	}
	return DecorDefinition{}, false
}

// decorDecayModifier multiplies the passive decay modifiers of owned decor.
func (p *Pet) decorDecayModifier(s Stat) float64 {
	mult := 1.0
	for _, d := range decorDefinitions {
		if m, ok := d.DecayMult[s]; ok && p.HasDecor(d.Name) {
			mult *= m
		}
	}
	return mult
}

func (p *Pet) decorReadModifier() float64 {
	mult := 1.0
	for _, d := range decorDefinitions {
		if d.ReadSkill > 0 && p.HasDecor(d.Name) {
			mult *= d.ReadSkill
		}
	}
	return mult
}

// Buy purchases an item or decoration with coins.
func (e *Engine) Buy(p *Pet, name string) (Outcome, error) {
	if item, ok := GetItem(name); ok {
		if p.Coins < item.Price {
			return Outcome{}, reject(ActionBuy, ReasonNoCoins)
		}
		p.Coins -= item.Price
		if p.Inventory == nil {
			p.Inventory = make(map[string]int)
		}
		p.Inventory[item.Name]++
		log.Printf("Bought %s for %d coins (%d left)", item.Name, item.Price, p.Coins)
		return Outcome{Action: ActionBuy, Coins: -item.Price,
			Message: fmt.Sprintf("%s Bought %s!", item.Emoji, item.Name)}, nil
	}

	decor, ok := GetDecor(name)
	if !ok {
		return Outcome{}, reject(ActionBuy, ReasonUnknownItem)
	}
	if p.HasDecor(decor.Name) {
		return Outcome{}, reject(ActionBuy, ReasonOwned)
	}
	if p.Coins < decor.Price {
		return Outcome{}, reject(ActionBuy, ReasonNoCoins)
	}
	p.Coins -= decor.Price
	p.Decor = append(p.Decor, decor.Name)
	sort.Strings(p.Decor)
	p.checkAchievements()
	log.Printf("Bought decoration %s for %d coins (%d left)", decor.Name, decor.Price, p.Coins)
	return Outcome{Action: ActionBuy, Coins: -decor.Price,
		Message: fmt.Sprintf("%s %s placed in the room!", decor.Emoji, decor.Name)}, nil
}

// UseItem consumes one item from the inventory.
func (e *Engine) UseItem(p *Pet, name string) (Outcome, error) {
	item, ok := GetItem(name)
	if !ok {
		return Outcome{}, reject(ActionUseItem, ReasonUnknownItem)
	}
	if p.AgeStage == StageEgg {
		return Outcome{}, reject(ActionUseItem, ReasonEgg)
	}
	if p.Inventory[name] <= 0 {
		return Outcome{}, reject(ActionUseItem, ReasonNoItem)
	}

	p.Inventory[name]--
	care := p.Legacy(LegacyCare)
	addStat(&p.Hunger, boost(item.Hunger, care))
	addStat(&p.Happiness, boost(item.Happiness, care))
	addStat(&p.Energy, boost(item.Energy, care))
	addStat(&p.Cleanliness, boost(item.Cleanliness, care))
	addStat(&p.Health, boost(item.Health, care))

	msg := fmt.Sprintf("%s Used %s.", item.Emoji, item.Name)
	if item.Cures && p.IsSick {
		if p.sickeningEvent() {
			msg += " The flu is still going around..."
		} else {
			p.IsSick = false
			msg += " Feeling better!"
			p.notify(NoticeRecovered, "💚 "+p.Name+" feels better", "")
		}
	}
	xp := e.AddXP(p, 3)
	log.Printf("Used item %s (%d left)", name, p.Inventory[name])
	return Outcome{Action: ActionUseItem, XP: xp, Message: msg}, nil
}

// SpendSkillPoint converts one skill point into a full skill level.
func (e *Engine) SpendSkillPoint(p *Pet, s Skill) (Outcome, error) {
	if !s.Valid() {
		return Outcome{}, reject(ActionSpendPoint, ReasonUnknownSkill)
	}
	if p.SkillPoints < 1 {
		return Outcome{}, reject(ActionSpendPoint, ReasonNoPoints)
	}
	p.SkillPoints--
	if p.Skills == nil {
		p.Skills = make(map[Skill]float64)
	}
	p.Skills[s] += SkillPointSkillBoost
	p.checkAchievements()
	log.Printf("Spent skill point on %s (now level %d)", s, p.SkillLevel(s))
	return Outcome{Action: ActionSpendPoint,
		Message: fmt.Sprintf("✨ %s is now level %d", s, p.SkillLevel(s))}, nil
}

// LegacyCost returns the stardust price of the next purchase of a legacy bonus.
func (p *Pet) LegacyCost(bonus string) int {
	purchases := int(math.Round((p.Legacy(bonus) - 1) / LegacyBonusStep))
	return LegacyBaseCost * (purchases + 1)
}

// BuyLegacy spends stardust to raise a legacy multiplier.
func (e *Engine) BuyLegacy(p *Pet, bonus string) (Outcome, error) {
	if !slices.Contains(LegacyBonuses, bonus) {
		return Outcome{}, reject(ActionBuyLegacy, ReasonUnknownBonus)
	}
	cost := p.LegacyCost(bonus)
	if p.Stardust < cost {
		return Outcome{}, reject(ActionBuyLegacy, ReasonNoStardust)
	}
	p.Stardust -= cost
	if p.LegacyBonus == nil {
		p.LegacyBonus = make(map[string]float64)
	}
	p.LegacyBonus[bonus] = p.Legacy(bonus) + LegacyBonusStep
	log.Printf("Legacy bonus %s raised to %.2f for %d stardust", bonus, p.LegacyBonus[bonus], cost)
	return Outcome{Action: ActionBuyLegacy,
		Message: fmt.Sprintf("🌟 %s bonus is now x%.1f", bonus, p.LegacyBonus[bonus])}, nil
}

// boost applies the care multiplier to positive stat changes only.
func boost(delta, care float64) float64 {
	if delta > 0 {
		return delta * care
	}
	return delta
}
