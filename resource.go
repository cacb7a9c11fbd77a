package gdan

import (
	"fmt"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

// resourceTag marks the singleton entities that carry resources.
var resourceTag = donburi.NewTag().SetName("Resource")

// SetResource stores v as the world's single instance of component c,
// creating the holder entity on first use. It returns a pointer into the
// world's storage.
func SetResource[T any](w donburi.World, c *donburi.ComponentType[T], v T) *T {
	if e, ok := c.First(w); ok {
		c.SetValue(e, v)
		return c.Get(e)
	}
	entry := w.Entry(w.Create(resourceTag, c))
	c.SetValue(entry, v)
	return c.Get(entry)
}

// GetResource returns the world's instance of component c.
func GetResource[T any](w donburi.World, c *donburi.ComponentType[T]) (*T, bool) {
	e, ok := c.First(w)
	if !ok {
		return nil, false
	}
	return c.Get(e), true
}

// MustResource is GetResource for resources a screen inserted on enter.
// It panics when the resource is missing.
func MustResource[T any](w donburi.World, c *donburi.ComponentType[T]) *T {
	v, ok := GetResource(w, c)
	if !ok {
		panic(fmt.Sprintf("gdan: resource %s not present", c.Name()))
	}
	return v
}

// RemoveResource deletes the world's instance of component c, if any.
func RemoveResource[T any](w donburi.World, c *donburi.ComponentType[T]) {
	if e, ok := c.First(w); ok {
		w.Remove(e.Entity())
	}
}

// Despawn returns a system that removes every entity carrying tag. Screens
// register it on exit with their own marker tag.
func Despawn(tag donburi.IComponentType) System {
	q := query.NewQuery(filter.Contains(tag))
	return func(a *App) {
		var doomed []donburi.Entity
		q.Each(a.World, func(e *donburi.Entry) {
			doomed = append(doomed, e.Entity())
		})
		for _, e := range doomed {
			a.World.Remove(e)
		}
		if len(doomed) > 0 {
			a.Debugf("despawned %d entities", len(doomed))
		}
	}
}

// Count returns the number of entities carrying every component in comps.
func Count(w donburi.World, comps ...donburi.IComponentType) int {
	return query.NewQuery(filter.Contains(comps...)).Count(w)
}
