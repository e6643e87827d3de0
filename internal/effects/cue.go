package effects

// Cue names a sound the simulation asks for. The core never knows how a cue
// is rendered, only that the reaction happened.
type Cue uint8

const (
	CueMovement Cue = iota
	CueWallCollision
	CueObstacleHit
	CueTileCrack
	CueCollectiblePickup
	CueGemPickup
	CueLevelComplete
	CueDoorOpen
	cueCount
)

var cueNames = [cueCount]string{
	CueMovement:          "movement",
	CueWallCollision:     "wall_collision",
	CueObstacleHit:       "obstacle_hit",
	CueTileCrack:         "tile_crack",
	CueCollectiblePickup: "collectible_pickup",
	CueGemPickup:         "gem_pickup",
	CueLevelComplete:     "level_complete",
	CueDoorOpen:          "door_open",
}

func (c Cue) String() string {
	if c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// Cues lists every defined cue in declaration order.
func Cues() []Cue {
	out := make([]Cue, 0, cueCount)
	for c := Cue(0); c < cueCount; c++ {
		out = append(out, c)
	}
	return out
}

// ParseCue maps a cue name back to its value.
func ParseCue(name string) (Cue, bool) {
	for c, n := range cueNames {
		if n == name {
			return Cue(c), true
		}
	}
	return 0, false
}
