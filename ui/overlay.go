package ui

import (
	"bytes"
	"image/color"

	"github.com/automoto/gravityman/components"
	cfg "github.com/automoto/gravityman/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Overlay is the full-screen panel shown over the playfield outside of
// active play: splash, pause, level complete and run complete.
type Overlay struct {
	UI *ebitenui.UI

	title    *widget.Label
	subtitle *widget.Label
	hint     *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	mode    components.Mode
	visible bool
}

// NewOverlay builds the overlay widgets.
func NewOverlay() (*Overlay, error) {
	o := &Overlay{}
	if err := o.loadFonts(); err != nil {
		return nil, err
	}
	o.buildUI()
	o.SetMode(components.ModeSplash, "")
	return o, nil
}

func (o *Overlay) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}
	o.titleFace = &text.GoTextFace{Source: fontSource, Size: 20}
	o.normalFace = &text.GoTextFace{Source: fontSource, Size: 10}
	o.smallFace = &text.GoTextFace{Source: fontSource, Size: 8}
	return nil
}

func (o *Overlay) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Palette.Overlay)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	o.title = o.newLabel(&o.titleFace, cfg.Palette.Text)
	o.subtitle = o.newLabel(&o.normalFace, cfg.Palette.Item)
	o.hint = o.newLabel(&o.smallFace, color.RGBA{180, 180, 200, 255})

	contentContainer.AddChild(o.title)
	contentContainer.AddChild(o.subtitle)
	contentContainer.AddChild(o.hint)
	rootContainer.AddChild(contentContainer)

	o.UI = &ebitenui.UI{Container: rootContainer}
}

func (o *Overlay) newLabel(face *text.Face, c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text("", face, &widget.LabelColor{Idle: c}),
		widget.LabelOpts.TextOpts(
			widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
			widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			})),
		),
	)
}

// SetMode switches the overlay text for mode. levelName is shown on the
// level complete panel.
func (o *Overlay) SetMode(mode components.Mode, levelName string) {
	if o.visible && mode == o.mode {
		return
	}
	o.mode = mode
	o.visible = true

	c := CopyFor(mode, levelName)
	if !c.Visible {
		o.visible = false
		return
	}
	o.title.Label = c.Title
	o.subtitle.Label = c.Subtitle
	o.hint.Label = c.Hint
}

// Visible reports whether the overlay should be drawn.
func (o *Overlay) Visible() bool {
	return o.visible
}

func (o *Overlay) Update() {
	if o.visible {
		o.UI.Update()
	}
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.visible {
		o.UI.Draw(screen)
	}
}
