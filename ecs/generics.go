package ecs

import "github.com/milk9111/trophydash/ecs/component"

func CreateEntity(w *World) Entity {
	return w.CreateEntity()
}

func DestroyEntity(w *World, e Entity) bool {
	return w.DestroyEntity(e)
}

func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

func Entities(w *World) []Entity {
	return w.Entities()
}

func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if value == nil {
		return component.ErrNilComponent
	}
	return w.AddComponent(e, kind.ID(), value)
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return w.RemoveComponent(e, kind.ID())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	return w.HasComponent(e, kind.ID())
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	value, ok := w.GetComponent(e, kind.ID())
	if !ok {
		return nil, false
	}
	cast, ok := value.(*T)
	return cast, ok
}

func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	return w.First(kind)
}

func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	for _, e := range w.Query(kind) {
		if v, ok := Get(w, e, kind); ok {
			fn(e, v)
		}
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	for _, e := range w.Query(ka, kb) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		if okA && okB {
			fn(e, a, b)
		}
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	for _, e := range w.Query(ka, kb, kc) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		c, okC := Get(w, e, kc)
		if okA && okB && okC {
			fn(e, a, b, c)
		}
	}
}

func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	for _, e := range w.Query(ka, kb, kc, kd) {
		a, okA := Get(w, e, ka)
		b, okB := Get(w, e, kb)
		c, okC := Get(w, e, kc)
		d, okD := Get(w, e, kd)
		if okA && okB && okC && okD {
			fn(e, a, b, c, d)
		}
	}
}
