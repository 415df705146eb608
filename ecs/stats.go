package ecs

// EntityStats is a snapshot of an entity's component make-up.
type EntityStats struct {
	Name           string
	ComponentCount int
	Started        bool
	Destroyed      bool
	TypeBreakdown  []ComponentTypeStats
}

// ComponentTypeStats counts the components of one concrete type.
type ComponentTypeStats struct {
	Type  string
	Count int
}

// CollectStats summarizes the entity. Types are listed in the order they were
// first attached.
func (e *Entity) CollectStats() EntityStats {
	stats := EntityStats{
		Name:           e.Name,
		ComponentCount: len(e.components),
		Started:        e.started,
		Destroyed:      e.destroyed,
	}

	positions := make(map[string]int)
	for _, typ := range e.types {
		name := typ.Elem().String()
		if pos, ok := positions[name]; ok {
			stats.TypeBreakdown[pos].Count++
			continue
		}
		positions[name] = len(stats.TypeBreakdown)
		stats.TypeBreakdown = append(stats.TypeBreakdown, ComponentTypeStats{Type: name, Count: 1})
	}

	return stats
}
