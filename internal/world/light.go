package world

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Light is a flickering point light. It takes no part in collision.
type Light struct {
	Position      rl.Vector3
	Color         rl.Color
	Base          float32
	Intensity     float32
	FlickerSpeed  float32
	FlickerAmount float32
	offset        float32
}

func NewLight(pos rl.Vector3, color rl.Color, intensity, flickerSpeed, flickerAmount float32) *Light {
	return &Light{
		Position:      pos,
		Color:         color,
		Base:          intensity,
		Intensity:     intensity,
		FlickerSpeed:  flickerSpeed,
		FlickerAmount: flickerAmount,
	}
}

func (l *Light) Update(deltaTime float32) {
	l.offset += l.FlickerSpeed * deltaTime
	l.Intensity = max(0.1, l.Base+float32(math.Sin(float64(l.offset)))*l.FlickerAmount)
}
