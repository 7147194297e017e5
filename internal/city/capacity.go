package city

// Capacity sums what the building stock provides, after condition damage.
type Capacity struct {
	Housing    int `json:"housing"`
	Jobs       int `json:"jobs"`
	Education  int `json:"education"`
	Healthcare int `json:"healthcare"`
	Water      int `json:"water"`
	Power      int `json:"power"`
	Leisure    int `json:"leisure"`
}

// Coverage holds capacity/families ratios. An empty city is fully covered.
type Coverage struct {
	Housing    float64 `json:"housing"`
	Jobs       float64 `json:"jobs"`
	Education  float64 `json:"education"`
	Healthcare float64 `json:"healthcare"`
	Water      float64 `json:"water"`
	Power      float64 `json:"power"`
	Leisure    float64 `json:"leisure"`
}

func computeCapacity(buildings []Building) Capacity {
	var c Capacity
	for _, b := range buildings {
		info := b.Type.Info()
		switch info.Category {
		case CategoryHousing:
			c.Housing += b.EffectiveCapacity()
		case CategoryJobs:
			c.Jobs += b.EffectiveCapacity()
		}
		c.Education += b.effective(info.Education)
		c.Healthcare += b.effective(info.Healthcare)
		c.Water += b.effective(info.Water)
		c.Power += b.effective(info.Power)
		c.Leisure += b.effective(info.Leisure)
	}
	return c
}

func computeCoverage(c Capacity, families int) Coverage {
	return Coverage{
		Housing:    ratio(c.Housing, families),
		Jobs:       ratio(c.Jobs, families),
		Education:  ratio(c.Education, families),
		Healthcare: ratio(c.Healthcare, families),
		Water:      ratio(c.Water, families),
		Power:      ratio(c.Power, families),
		Leisure:    ratio(c.Leisure, families),
	}
}

func ratio(capacity, families int) float64 {
	if families <= 0 {
		return 1.0
	}
	return float64(capacity) / float64(families)
}

// capped limits a ratio to [0,1] so surplus capacity does not count twice.
func capped(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// critical is the worse of housing and jobs coverage.
func (cv Coverage) critical() float64 {
	if cv.Housing < cv.Jobs {
		return cv.Housing
	}
	return cv.Jobs
}

// services is the mean capped coverage of education, healthcare, water and power.
func (cv Coverage) services() float64 {
	return (capped(cv.Education) + capped(cv.Healthcare) + capped(cv.Water) + capped(cv.Power)) / 4
}
