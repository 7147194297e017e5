package city

const (
	maxCondition          = 100
	conditionRepairPerDay = 5
)

// Building is one constructed instance. It is owned by its City.
type Building struct {
	ID        int          `json:"id"`
	Type      BuildingType `json:"type" swaggertype:"string" example:"PARK"`
	Capacity  int          `json:"capacity"`
	Condition int          `json:"condition"`
}

func newBuilding(id int, t BuildingType) Building {
	return Building{
		ID:        id,
		Type:      t,
		Capacity:  t.Capacity(),
		Condition: maxCondition,
	}
}

// effective scales a catalog figure by the building's condition.
func (b Building) effective(units int) int {
	return units * b.Condition / maxCondition
}

// EffectiveCapacity is the capacity after fire damage.
func (b Building) EffectiveCapacity() int {
	return b.effective(b.Capacity)
}

// Damaged reports whether the building is below full condition.
func (b Building) Damaged() bool {
	return b.Condition < maxCondition
}

func (b *Building) damage(amount int) {
	b.Condition = clampInt(b.Condition-amount, 0, maxCondition)
}

func (b *Building) repair() {
	b.Condition = clampInt(b.Condition+conditionRepairPerDay, 0, maxCondition)
}
