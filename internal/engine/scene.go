package engine

import "iter"

// Scene holds a level's entities. Walls are static solids and doors;
// objects are everything with a behavior.
type Scene struct {
	Name    string
	Walls   []*Entity
	Objects []*Entity
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:    name,
		Walls:   make([]*Entity, 0),
		Objects: make([]*Entity, 0),
	}
}

func (s *Scene) AddWall(e *Entity) {
	s.Walls = append(s.Walls, e)
}

func (s *Scene) AddObject(e *Entity) {
	s.Objects = append(s.Objects, e)
}

// All yields walls then objects, active or not.
func (s *Scene) All() iter.Seq[*Entity] {
	return func(yield func(*Entity) bool) {
		for _, e := range s.Walls {
			if !yield(e) {
				return
			}
		}
		for _, e := range s.Objects {
			if !yield(e) {
				return
			}
		}
	}
}

func (s *Scene) FindByName(name string) *Entity {
	for e := range s.All() {
		if e.Name == name {
			return e
		}
	}
	return nil
}

func (s *Scene) FindByKind(kind Kind) []*Entity {
	var result []*Entity
	for e := range s.All() {
		if e.Kind == kind {
			result = append(result, e)
		}
	}
	return result
}

// ActiveCount counts entities still taking part in the simulation.
func (s *Scene) ActiveCount() int {
	n := 0
	for e := range s.All() {
		if e.Active {
			n++
		}
	}
	return n
}

// Update advances every active entity with a behavior, walls first.
func (s *Scene) Update(deltaTime float32) {
	for e := range s.All() {
		e.Update(deltaTime)
	}
}
