package game

import (
	"fmt"

	"github.com/arcadelab/strider/internal/assets"
	"github.com/arcadelab/strider/internal/config"
	"github.com/arcadelab/strider/internal/slotmap"
)

// ImageRecord ties an image kind to its decoded sprite sheet.
// Loaded once at startup, never mutated during play.
type ImageRecord struct {
	Kind   ImageKind
	Sprite *assets.Sprite
}

// SoundRecord ties a sound kind to the backend's opaque clip id.
type SoundRecord struct {
	Kind SoundKind
	Clip int
}

// Registries bundles the three slot maps backing all mutable game objects:
// gameplay entities, loaded images, and loaded sound clips.
type Registries struct {
	Entities *slotmap.SlotMap[Entity]
	Images   *slotmap.SlotMap[ImageRecord]
	Sounds   *slotmap.SlotMap[SoundRecord]
}

func newRegistries(cap config.Capacity) *Registries {
	return &Registries{
		Entities: slotmap.New[Entity](cap.Entities),
		Images:   slotmap.New[ImageRecord](cap.Images),
		Sounds:   slotmap.New[SoundRecord](cap.Sounds),
	}
}

// findEntity returns the first live entity of the given kind in slot order.
// Linear scan; the registries hold tens of entries at most.
func (r *Registries) findEntity(kind EntityKind) (slotmap.Handle, *Entity, bool) {
	return r.Entities.Find(func(e *Entity) bool {
		return e.Kind == kind
	})
}

// eachEntity calls fn for every live entity of the given kind, in slot
// order. fn returning false stops the walk.
func (r *Registries) eachEntity(kind EntityKind, fn func(slotmap.Handle, *Entity) bool) {
	r.Entities.All(func(h slotmap.Handle, e *Entity) bool {
		if e.Kind != kind {
			return true
		}
		return fn(h, e)
	})
}

// MustPlayer returns the player entity. Exactly one player is inserted at
// game start and never removed; its absence is programmer error.
func (r *Registries) MustPlayer() *Entity {
	_, e, ok := r.findEntity(KindPlayer)
	if !ok {
		panic("game: no player entity in registry")
	}
	return e
}

// MustImage returns the sprite for an image kind. All image kinds are
// loaded unconditionally at startup, so a miss is programmer error and
// fails loudly rather than taking a silent "first match" fallback.
func (r *Registries) MustImage(kind ImageKind) *assets.Sprite {
	_, rec, ok := r.Images.Find(func(rec *ImageRecord) bool {
		return rec.Kind == kind
	})
	if !ok {
		panic(fmt.Sprintf("game: image kind %d not loaded", kind))
	}
	return rec.Sprite
}

// MustSound returns the clip id for a sound kind, with the same loud
// failure contract as MustImage.
func (r *Registries) MustSound(kind SoundKind) int {
	_, rec, ok := r.Sounds.Find(func(rec *SoundRecord) bool {
		return rec.Kind == kind
	})
	if !ok {
		panic(fmt.Sprintf("game: sound kind %d not loaded", kind))
	}
	return rec.Clip
}
