package ui

import (
	"bytes"
	goimage "image"

	"github.com/automoto/pong/components"
	cfg "github.com/automoto/pong/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI holds the ebitenui interface for the main menu
type MenuUI struct {
	UI *ebitenui.UI

	// OnSelect runs a menu option, whether it was clicked or chosen with the
	// keyboard.
	OnSelect func(components.MainMenuOption)

	buttons []*widget.Button

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	buttonFace text.Face
}

// NewMenuUI creates the title screen with one button per menu option
func NewMenuUI(onSelect func(components.MainMenuOption)) *MenuUI {
	mui := &MenuUI{OnSelect: onSelect}

	mui.loadFonts()
	mui.buildUI()

	return mui
}

func (mui *MenuUI) loadFonts() {
	boldSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		panic(err)
	}
	regularSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	mui.titleFace = &text.GoTextFace{
		Source: boldSource,
		Size:   48,
	}
	mui.buttonFace = &text.GoTextFace{
		Source: regularSource,
		Size:   22,
	}
}

func (mui *MenuUI) buildUI() {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(cfg.Menu.ButtonSpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(cfg.Menu.Title, &mui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	)
	contentContainer.AddChild(titleLabel)

	for i, label := range cfg.Menu.MenuOptions {
		option := components.MainMenuOption(i) // Capture for closure
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(cfg.Menu.ButtonWidth, cfg.Menu.ButtonHeight),
				widget.WidgetOpts.LayoutData(widget.RowLayoutData{
					Position: widget.RowLayoutPositionCenter,
				}),
			),
			widget.ButtonOpts.Image(mui.buttonImage()),
			widget.ButtonOpts.Text(label, &mui.buttonFace, &widget.ButtonTextColor{
				Idle:    cfg.Menu.TextColor,
				Hover:   cfg.BrightOrange,
				Pressed: cfg.Menu.TextColor,
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if mui.OnSelect != nil {
					mui.OnSelect(option)
				}
			}),
		)
		mui.buttons = append(mui.buttons, button)
		contentContainer.AddChild(button)
	}

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Menu.ButtonIdle),
		Hover:    image.NewNineSliceColor(cfg.Menu.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.Menu.ButtonPressed),
		Disabled: image.NewNineSliceColor(cfg.DarkGrey),
	}
}

// Update processes mouse input for the widgets
func (mui *MenuUI) Update() {
	mui.UI.Update()
}

// Draw renders the menu and outlines the keyboard selection
func (mui *MenuUI) Draw(screen *ebiten.Image, selected components.MainMenuOption) {
	mui.UI.Draw(screen)

	rect, ok := mui.ButtonRect(selected)
	if !ok || rect.Empty() {
		return
	}
	vector.StrokeRect(screen,
		float32(rect.Min.X)-3, float32(rect.Min.Y)-3,
		float32(rect.Dx())+6, float32(rect.Dy())+6,
		2, cfg.BrightOrange, false)
}

// ButtonRect returns the on-screen bounds of an option's button
func (mui *MenuUI) ButtonRect(option components.MainMenuOption) (goimage.Rectangle, bool) {
	i := int(option)
	if i < 0 || i >= len(mui.buttons) {
		return goimage.Rectangle{}, false
	}
	return mui.buttons[i].GetWidget().Rect, true
}
