package engine

// Kind tags what an entity is. Behavior lookup and level files key on it.
type Kind uint8

const (
	KindWall Kind = iota
	KindPendulum
	KindCrumblingTile
	KindStalactite
	KindGeyser
	KindCollectible
	KindHealthPickup
	KindDoor
	KindPedestal
	kindCount
)

var kindNames = [kindCount]string{
	KindWall:          "wall",
	KindPendulum:      "pendulum",
	KindCrumblingTile: "crumbling_tile",
	KindStalactite:    "stalactite",
	KindGeyser:        "geyser",
	KindCollectible:   "collectible",
	KindHealthPickup:  "health_pickup",
	KindDoor:          "door",
	KindPedestal:      "pedestal",
}

func (k Kind) String() string {
	if k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind maps a level-file kind name to its Kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}
