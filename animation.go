package jigsaw

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Call Update(dt)
// each frame; values are written straight into the target fields.
//
// There is no global animation manager. Owners call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// add registers one more field. Panics past four fields.
func (g *TweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	if g.count == len(g.fields) {
		panic("jigsaw: tween group is full")
	}
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.count++
	return g
}

// TweenTo creates a TweenGroup that moves *field to the given value.
// Chain Also to animate more fields over the same timeline.
func TweenTo(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return (&TweenGroup{}).add(field, to, duration, fn)
}

// Also adds another field to the group.
func (g *TweenGroup) Also(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return g.add(field, to, duration, fn)
}
