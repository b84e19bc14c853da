package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MainMenuOption represents the main menu buttons
type MainMenuOption int

const (
	MainMenuStart MainMenuOption = iota
	MainMenuQuit
)

// MenuData stores main menu keyboard selection and the result banner shown
// after a finished match.
type MenuData struct {
	Selected    MainMenuOption
	Banner      string
	BannerColor color.RGBA
	BannerAlpha float32
	BannerFade  *gween.Tween
}

var Menu = donburi.NewComponentType[MenuData]()
