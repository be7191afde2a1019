package ui

import (
	"image/color"
	"log"

	"go-cannon-siege/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SceneRenderer рисует фигуры из библиотеки на ebiten.Image
type SceneRenderer struct {
	shapes  map[string]render.Shape
	view    render.View
	fillImg *ebiten.Image
	screen  *ebiten.Image
	fillVs  []ebiten.Vertex
	fillIs  []uint16
	missing map[string]bool
	dimmed  bool
}

func NewSceneRenderer(shapes map[string]render.Shape, view render.View) *SceneRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &SceneRenderer{
		shapes:  shapes,
		view:    view,
		fillImg: fillImg,
		fillVs:  make([]ebiten.Vertex, 0, 16),
		fillIs:  make([]uint16, 0, 16),
		missing: make(map[string]bool),
	}
}

// SetScreen задаёт изображение, на котором рисуется текущий кадр
func (r *SceneRenderer) SetScreen(screen *ebiten.Image) {
	r.screen = screen
}

// SetDimmed включает затемнение сцены
func (r *SceneRenderer) SetDimmed(dimmed bool) {
	r.dimmed = dimmed
}

// BeginFrame применяет масштаб кадра
func (r *SceneRenderer) BeginFrame(zoom float64) {
	r.view.Zoom = zoom
}

// DrawShape рисует фигуру name в точке (x, y) с поворотом rotation (градусы)
func (r *SceneRenderer) DrawShape(name string, x, y, rotation float64) {
	if r.screen == nil {
		return
	}
	shape, ok := r.shapes[name]
	if !ok {
		if !r.missing[name] {
			log.Printf("WARNING: shape %q is not registered", name)
			r.missing[name] = true
		}
		return
	}

	pts := r.view.Transform(shape, x, y, rotation)
	if len(pts) < 3 {
		return
	}
	path := vector.Path{}
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	fillColor := shape.FillColor(r.dimmed)
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(fillColor.R) / 255
		r.fillVs[i].ColorG = float32(fillColor.G) / 255
		r.fillVs[i].ColorB = float32(fillColor.B) / 255
		r.fillVs[i].ColorA = float32(fillColor.A) / 255
	}
	r.screen.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// View возвращает текущие параметры проекции
func (r *SceneRenderer) View() render.View {
	return r.view
}
