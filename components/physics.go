package components

import (
	"github.com/automoto/flybird/config"
	"github.com/yohamta/donburi"
)

// PhysicsData is a vertical-only body. Speeds are in pixels per tick and
// positive SpeedY points down the screen.
type PhysicsData struct {
	SpeedY      float64
	Gravity     float64 // px/tick^2
	Mass        float64 // kg
	MaxSpeed    float64 // px/tick, 0 = unbounded
	Dynamic     bool
	Category    uint32
	ContactMask uint32
	Touching    uint32 // categories currently in contact
}

// NewBody returns a static body whose mass is derived from its size the way
// a texture-shaped engine body would be.
func NewBody(w, h float64, category, contactMask uint32) PhysicsData {
	ppm := config.Physics.PointsPerMeter
	tps := float64(config.C.TPS)
	return PhysicsData{
		Gravity:     config.Physics.Gravity * ppm / (tps * tps),
		Mass:        w * h * config.Physics.Density / (ppm * ppm),
		MaxSpeed:    config.Physics.MaxFallSpeed,
		Category:    category,
		ContactMask: contactMask,
	}
}

// ApplyImpulse adds an upward impulse in newton-seconds. Static bodies
// ignore it.
func (p *PhysicsData) ApplyImpulse(impulse float64) {
	if !p.Dynamic || p.Mass <= 0 {
		return
	}
	p.SpeedY -= impulse / p.Mass / float64(config.C.TPS)
}

var Physics = donburi.NewComponentType[PhysicsData]()
