package world

// Resources holds the global counters of a play session.
type Resources struct {
	electricity int
	minerals    int
}

// Electricity is the power balance computed on the last tick.
func (r Resources) Electricity() int {
	return r.electricity
}

// Minerals is the total mined so far.
func (r Resources) Minerals() int {
	return r.minerals
}

func (r *Resources) SetElectricity(electricity int) {
	r.electricity = electricity
}

func (r *Resources) AddMinerals(minerals int) {
	r.minerals += minerals
}

func (r *Resources) Reset(electricity, minerals int) {
	r.electricity = electricity
	r.minerals = minerals
}
