package types

import (
	"errors"
	"fmt"
)

// ErrUnknownApp is returned when an app kind is not one of the desktop apps
var ErrUnknownApp = errors.New("unknown app")

// AppKind identifies one of the desktop apps
type AppKind string

const (
	AppFoodScanner  AppKind = "food-scanner"
	AppSleepMode    AppKind = "sleep-mode"
	AppZoomies      AppKind = "zoomies"
	AppYarnBall     AppKind = "yarn-ball"
	AppBoxSimulator AppKind = "box-simulator"
	AppHumanIgnore  AppKind = "human-ignore"
)

type appInfo struct {
	title string
	icon  string
}

var apps = map[AppKind]appInfo{
	AppFoodScanner:  {title: "🐟 Food Scanner Pro", icon: "🐟"},
	AppSleepMode:    {title: "🛏️ Sleep Mode v2.0", icon: "🛏️"},
	AppZoomies:      {title: "💥 Random Zoomies Daemon", icon: "💥"},
	AppYarnBall:     {title: "🧶 Yarn Ball Simulator", icon: "🧶"},
	AppBoxSimulator: {title: "📦 If I Fits I Sits", icon: "📦"},
	AppHumanIgnore:  {title: "🙄 Human Ignore Protocol", icon: "🙄"},
}

// AppKinds lists the desktop apps in icon order
func AppKinds() []AppKind {
	return []AppKind{AppFoodScanner, AppSleepMode, AppZoomies, AppYarnBall, AppBoxSimulator, AppHumanIgnore}
}

// ParseAppKind converts a name to an AppKind
func ParseAppKind(s string) (AppKind, error) {
	kind := AppKind(s)
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownApp, s)
	}
	return kind, nil
}

// Valid reports whether k is a known app
func (k AppKind) Valid() bool {
	_, ok := apps[k]
	return ok
}

// Title returns the window title
func (k AppKind) Title() string { return apps[k].title }

// Icon returns the taskbar icon, or a folder for unknown kinds
func (k AppKind) Icon() string {
	if info, ok := apps[k]; ok {
		return info.icon
	}
	return "📁"
}

// WindowHandle is the registry's record of an open window. The presentation
// layer only ever holds the ID.
type WindowHandle struct {
	ID      int     `json:"id"`
	AppKind AppKind `json:"app"`
	ZOrder  int     `json:"z_order"`
	Title   string  `json:"title"`
	Icon    string  `json:"icon"`
}
