package system

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/toolkit2d/ecs"
	"github.com/milk9111/toolkit2d/ecs/component"
	"github.com/milk9111/toolkit2d/ecs/render"
)

var defaultPrimitiveColor = color.RGBA{R: 128, G: 128, B: 128, A: 255}

const depthShade = 0.55

var whiteSubImage *ebiten.Image

func whitePixel() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// View maps world units to screen pixels for one frame.
type View struct {
	CamX, CamY float64
	// Scale is pixels per world unit after zoom.
	Scale float64
	// CenterX and CenterY are the screen pixel the camera looks at.
	CenterX, CenterY float64
	Mask             component.RenderGroupMask
}

func (v View) ToScreen(p cp.Vector) (float64, float64) {
	return (p.X-v.CamX)*v.Scale + v.CenterX, (p.Y-v.CamY)*v.Scale + v.CenterY
}

// CameraView resolves the view of the first camera entity. Without a camera
// everything is drawn around the origin at 48 pixels per unit.
func CameraView(w *ecs.World, screenW, screenH int) View {
	v := View{Scale: 48, CenterX: float64(screenW) / 2, CenterY: float64(screenH) / 2, Mask: component.MaskAll}
	camEntity, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return v
	}
	if t, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind()); ok {
		v.CamX, v.CamY = t.X, t.Y
	}
	if cam, ok := ecs.Get(w, camEntity, component.CameraComponent.Kind()); ok {
		zoom := cam.Zoom
		if zoom <= 0 {
			zoom = 1
		}
		ppu := cam.PixelsPerUnit
		if ppu <= 0 {
			ppu = 48
		}
		v.Scale = ppu * zoom
		v.Mask = cam.Mask
	}
	return v
}

// DrawOrder returns the primitives visible through mask, lowest render group
// first and by entity id within a group. Entities without a render group tag
// are in Group0.
func DrawOrder(w *ecs.World, mask component.RenderGroupMask) []ecs.Entity {
	type entry struct {
		e     ecs.Entity
		group component.RenderGroup
	}
	var entries []entry
	ecs.ForEach2(w, component.Primitive2DComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Primitive2D, _ *component.Transform) {
		group := component.Group0
		if tag, ok := ecs.Get(w, e, component.RenderGroupComponent.Kind()); ok {
			group = tag.Group
		}
		if !mask.Contains(group) {
			return
		}
		entries = append(entries, entry{e: e, group: group})
	})
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].group != entries[j].group {
			return entries[i].group < entries[j].group
		}
		return entries[i].e.ID() < entries[j].e.ID()
	})
	out := make([]ecs.Entity, len(entries))
	for i, en := range entries {
		out[i] = en.e
	}
	return out
}

// WorldOutline transforms a primitive's local outline into world space.
func WorldOutline(p *component.Primitive2D, t *component.Transform) []cp.Vector {
	sx, sy := t.ScaleX, t.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	sin, cos := math.Sincos(t.Rotation)
	out := make([]cp.Vector, len(p.Outline))
	for i, v := range p.Outline {
		x, y := v.X*sx, v.Y*sy
		out[i] = cp.Vector{X: t.X + x*cos - y*sin, Y: t.Y + x*sin + y*cos}
	}
	return out
}

type RenderSystem struct {
	Background color.RGBA
	// Debug overlays collider outlines from Physics.
	Debug   bool
	Physics *PhysicsSystem

	vertices []ebiten.Vertex
	indices  []uint16
}

func NewRenderSystem(background color.RGBA, physics *PhysicsSystem) *RenderSystem {
	return &RenderSystem{Background: background, Physics: physics}
}

// Update is a no-op; drawing happens in Draw.
func (r *RenderSystem) Update(*ecs.World) {}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(r.Background)

	bounds := screen.Bounds()
	view := CameraView(w, bounds.Dx(), bounds.Dy())

	for _, e := range DrawOrder(w, view.Mask) {
		p, ok := ecs.Get(w, e, component.Primitive2DComponent.Kind())
		if !ok || len(p.Outline) < 3 {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		clr := defaultPrimitiveColor
		var src *ebiten.Image
		if ref, ok := ecs.Get(w, e, component.MaterialComponent.Kind()); ok && ref.Material != nil {
			clr = ref.Material.Color
			src = ref.Material.Image
		}
		outline := WorldOutline(p, t)
		if p.Depth > 0 {
			offset := p.Depth * view.Scale
			r.fillConvex(screen, view, outline, offset, render.Shade(clr, depthShade), nil, p)
		}
		r.fillConvex(screen, view, outline, 0, clr, src, p)
	}

	if r.Debug && r.Physics != nil {
		DrawPhysicsDebug(r.Physics, view, screen)
	}
}

// fillConvex draws a convex outline as a triangle fan. With src set the image
// is stretched over the primitive's local bounding box.
func (r *RenderSystem) fillConvex(screen *ebiten.Image, view View, outline []cp.Vector, offset float64, clr color.RGBA, src *ebiten.Image, p *component.Primitive2D) {
	img := src
	if img == nil {
		img = whitePixel()
	}
	b := img.Bounds()

	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	for i, wv := range outline {
		x, y := view.ToScreen(wv)
		sx, sy := float32(b.Min.X)+0.5, float32(b.Min.Y)+0.5
		if src != nil && p.Width > 0 && p.Height > 0 {
			lv := p.Outline[i]
			sx = float32(b.Min.X) + float32((lv.X/p.Width+0.5)*float64(b.Dx()))
			sy = float32(b.Min.Y) + float32((lv.Y/p.Height+0.5)*float64(b.Dy()))
		}
		r.vertices = append(r.vertices, ebiten.Vertex{
			DstX:   float32(x + offset),
			DstY:   float32(y + offset),
			SrcX:   sx,
			SrcY:   sy,
			ColorR: float32(clr.R) / 255,
			ColorG: float32(clr.G) / 255,
			ColorB: float32(clr.B) / 255,
			ColorA: float32(clr.A) / 255,
		})
	}
	for i := 1; i+1 < len(outline); i++ {
		r.indices = append(r.indices, 0, uint16(i), uint16(i+1))
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	op.AntiAlias = true
	screen.DrawTriangles(r.vertices, r.indices, img, op)
}
