package city

import (
	"errors"
	"strings"
)

// BuildingType enumerates everything a city can construct.
type BuildingType int

const (
	Residential BuildingType = iota
	Commercial
	Industrial
	School
	Hospital
	Park
	WaterPlant
	PowerPlant
)

// Category groups building types by the kind of capacity they provide.
type Category string

const (
	CategoryHousing    Category = "HOUSING"
	CategoryJobs       Category = "JOBS"
	CategoryEducation  Category = "EDUCATION"
	CategoryHealthcare Category = "HEALTHCARE"
	CategoryLeisure    Category = "LEISURE"
	CategoryUtility    Category = "UTILITY"
)

// ConstructionCostFactor turns a daily upkeep into a one-off construction cost.
const ConstructionCostFactor = 10

var ErrUnknownBuildingType = errors.New("unknown building type")

// BuildingInfo is the immutable catalog entry for a building type.
// Capacity is the generic figure copied onto each Building (housing slots, jobs,
// or the primary service units); the service fields feed coverage ratios.
type BuildingInfo struct {
	Code        string
	Name        string
	Description string
	Category    Category
	Upkeep      int
	Capacity    int
	Education   int
	Healthcare  int
	Water       int
	Power       int
	Leisure     int
	Revenue     int // base daily revenue, income buildings only
}

var catalog = [...]BuildingInfo{
	Residential: {
		Code:        "RESIDENTIAL",
		Name:        "Residential",
		Description: "Housing block for up to 100 families",
		Category:    CategoryHousing,
		Upkeep:      50,
		Capacity:    100,
	},
	Commercial: {
		Code:        "COMMERCIAL",
		Name:        "Commercial",
		Description: "Shops and offices providing jobs and VAT revenue",
		Category:    CategoryJobs,
		Upkeep:      80,
		Capacity:    60,
		Revenue:     120,
	},
	Industrial: {
		Code:        "INDUSTRIAL",
		Name:        "Industrial",
		Description: "Factories providing many jobs and trade revenue",
		Category:    CategoryJobs,
		Upkeep:      100,
		Capacity:    100,
		Revenue:     160,
	},
	School: {
		Code:        "SCHOOL",
		Name:        "School",
		Description: "Education for 200 families",
		Category:    CategoryEducation,
		Upkeep:      120,
		Capacity:    200,
		Education:   200,
	},
	Hospital: {
		Code:        "HOSPITAL",
		Name:        "Hospital",
		Description: "Healthcare for 250 families",
		Category:    CategoryHealthcare,
		Upkeep:      150,
		Capacity:    250,
		Healthcare:  250,
	},
	Park: {
		Code:        "PARK",
		Name:        "Park",
		Description: "Green space serving 150 families",
		Category:    CategoryLeisure,
		Upkeep:      30,
		Capacity:    150,
		Leisure:     150,
	},
	WaterPlant: {
		Code:        "WATER_PLANT",
		Name:        "Water Plant",
		Description: "Water supply for 500 families",
		Category:    CategoryUtility,
		Upkeep:      200,
		Capacity:    500,
		Water:       500,
	},
	PowerPlant: {
		Code:        "POWER_PLANT",
		Name:        "Power Plant",
		Description: "Electricity for 600 families",
		Category:    CategoryUtility,
		Upkeep:      250,
		Capacity:    600,
		Power:       600,
	},
}

// AllBuildingTypes lists every type in catalog order.
func AllBuildingTypes() []BuildingType {
	out := make([]BuildingType, len(catalog))
	for i := range catalog {
		out[i] = BuildingType(i)
	}
	return out
}

// Valid reports whether t is a catalog entry.
func (t BuildingType) Valid() bool {
	return t >= 0 && int(t) < len(catalog)
}

// Info returns the catalog metadata for t. Invalid types yield a zero BuildingInfo.
func (t BuildingType) Info() BuildingInfo {
	if !t.Valid() {
		return BuildingInfo{}
	}
	return catalog[t]
}

func (t BuildingType) Upkeep() int   { return t.Info().Upkeep }
func (t BuildingType) Capacity() int { return t.Info().Capacity }
func (t BuildingType) Name() string  { return t.Info().Name }

// Cost is the construction price: upkeep times ConstructionCostFactor.
func (t BuildingType) Cost() int {
	return t.Upkeep() * ConstructionCostFactor
}

// String returns the stable code used in saves and on the wire.
func (t BuildingType) String() string {
	if !t.Valid() {
		return "UNKNOWN"
	}
	return catalog[t].Code
}

func (t BuildingType) producesIncome() bool {
	return t == Commercial || t == Industrial
}

// ParseBuildingType accepts codes ("WATER_PLANT") and display names ("water plant")
// case-insensitively.
func ParseBuildingType(s string) (BuildingType, error) {
	norm := strings.ToUpper(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	for i, info := range catalog {
		if info.Code == norm || strings.ReplaceAll(info.Code, "_", "") == norm {
			return BuildingType(i), nil
		}
	}
	return 0, ErrUnknownBuildingType
}

func (t BuildingType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, ErrUnknownBuildingType
	}
	return []byte(t.String()), nil
}

func (t *BuildingType) UnmarshalText(text []byte) error {
	v, err := ParseBuildingType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
