package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/twinstick/common"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor  = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	buttonColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	hoverColor  = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255}
	textColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// menu builds centered overlay panels. Buttons use colored nine-slices and
// the built-in basic font so no theme assets are needed.
type menu struct {
	face  ebtext.Face
	panel *widget.Container
}

func newMenu(title string) *menu {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	m := &menu{face: face}

	m.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/3, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	m.label(title)
	return m
}

func (m *menu) label(s string) {
	m.panel.AddChild(widget.NewText(
		widget.TextOpts.Text(s, &m.face, textColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	))
}

func (m *menu) button(s string, onClick func()) {
	img := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(buttonColor),
		Hover:   imageui.NewNineSliceColor(hoverColor),
		Pressed: imageui.NewNineSliceColor(buttonColor),
	}
	m.panel.AddChild(widget.NewButton(
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text(s, &m.face, &widget.ButtonTextColor{Idle: textColor}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter, Stretch: true})),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
			onClick()
		}),
	))
}

func (m *menu) ui() *ebitenui.UI {
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(m.panel)
	return &ebitenui.UI{Container: root}
}

// NewPauseUI is the manual pause menu toggled with Escape.
func NewPauseUI(g *Game) *ebitenui.UI {
	m := newMenu("Paused")
	m.button("Resume", func() { g.paused = false })
	m.button("Quit", func() { g.quit = true })
	return m.ui()
}
