package ecs

import (
	"fmt"
	"strings"
)

// System updates a world once per tick.
type System interface {
	Update(w *World)
}

// Scheduler runs systems in the fixed order they were added. Nil systems are
// skipped at construction so optional collaborators can be passed directly.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{systems: make([]System, 0, len(systems))}
	for _, system := range systems {
		if system != nil {
			s.systems = append(s.systems, system)
		}
	}
	return s
}

func (s *Scheduler) Update(w *World) {
	if s == nil || w == nil {
		return
	}
	for _, system := range s.systems {
		system.Update(w)
	}
}

func (s *Scheduler) Len() int {
	if s == nil {
		return 0
	}
	return len(s.systems)
}

// Order lists the system type names in run order, e.g. "Movement" for
// *system.MovementSystem.
func (s *Scheduler) Order() []string {
	if s == nil {
		return nil
	}
	names := make([]string, len(s.systems))
	for i, system := range s.systems {
		name := fmt.Sprintf("%T", system)
		name = name[strings.LastIndex(name, ".")+1:]
		names[i] = strings.TrimSuffix(name, "System")
	}
	return names
}
