package entity

import "github.com/vovakirdan/tui-bomber/internal/games/bomber/world"

// Power-up timings.
const (
	PowerUpHalfSize = world.TileSize * 0.35
	BlinkThreshold  = 3.0 // Remaining seconds at which a power-up starts blinking
	CollectDuration = 0.3 // Seconds of the shrink animation after pickup
)

// PowerUp is a collectible lying on a tile. It satisfies world.Pickup.
type PowerUp struct {
	Entity
	Visible  bool
	Blinking bool

	kind         world.PowerUpType
	lifetime     float64
	hasExpiry    bool
	collecting   bool
	collectTimer float64
}

// NewPowerUp places a power-up on a tile. A lifetime of 0 or less never expires.
func NewPowerUp(kind world.PowerUpType, tile world.Coord, lifetime float64) *PowerUp {
	p := &PowerUp{
		Entity:    Entity{HalfSize: PowerUpHalfSize},
		Visible:   true,
		kind:      kind,
		lifetime:  lifetime,
		hasExpiry: lifetime > 0,
		Blinking:  lifetime > 0 && lifetime <= BlinkThreshold,
	}
	p.PlaceAtTile(tile)
	return p
}

// PowerUpType returns the kind of upgrade granted on pickup.
func (p *PowerUp) PowerUpType() world.PowerUpType { return p.kind }

// Remaining returns seconds until expiry; ok is false for power-ups that never expire.
func (p *PowerUp) Remaining() (seconds float64, ok bool) {
	return p.lifetime, p.hasExpiry
}

// IsCollecting reports whether the pickup animation is running.
func (p *PowerUp) IsCollecting() bool { return p.collecting }

// Collect starts the pickup animation. Returns false if the power-up was
// already collected or removed.
func (p *PowerUp) Collect() bool {
	if p.collecting || p.Removed {
		return false
	}
	p.collecting = true
	p.collectTimer = CollectDuration
	p.Blinking = false
	return true
}

// Scale returns the render scale: 1 normally, shrinking to 0 while collecting.
func (p *PowerUp) Scale() float64 {
	if !p.collecting {
		return 1
	}
	return max(0, min(1, p.collectTimer/CollectDuration))
}

// Update advances the lifetime or the pickup animation by dt seconds.
func (p *PowerUp) Update(dt float64) {
	if p.Removed {
		return
	}
	if p.collecting {
		p.collectTimer -= dt
		if p.collectTimer <= 0 {
			p.collectTimer = 0
			p.remove()
		}
		return
	}
	if !p.hasExpiry {
		return
	}
	p.lifetime -= dt
	p.Blinking = p.lifetime <= BlinkThreshold
	if p.lifetime <= 0 {
		p.lifetime = 0
		p.remove()
	}
}

func (p *PowerUp) remove() {
	p.Removed = true
	p.Visible = false
}
