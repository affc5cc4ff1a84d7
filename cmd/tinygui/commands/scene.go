package commands

import (
	"fmt"

	"golang.org/x/image/font/basicfont"

	"github.com/agiangrant/tinygui/retained"
	"github.com/agiangrant/tinygui/widgets/led"
	"github.com/agiangrant/tinygui/widgets/window"
)

// Widget IDs of the demo scene.
const (
	idDesktop retained.WidgetID = iota + 1
	idStatus
	idPower
	idLink
	idAlarm
)

// scene is the demo widget tree shared by render, replay and run.
type scene struct {
	desktop *retained.Widget
	status  *retained.Widget
	power   *retained.Widget
	link    *retained.Widget
	alarm   *retained.Widget
}

// buildScene creates a desktop with one LED and a child window holding two
// more. Child offsets are relative to the window origin, so the LEDs start
// below the title band.
func buildScene(g *retained.GUI) (*scene, error) {
	var (
		s   scene
		err error
	)

	if s.desktop, err = window.Create(g, idDesktop); err != nil {
		return nil, fmt.Errorf("failed to create desktop: %w", err)
	}
	if s.alarm, err = led.Create(g, idAlarm, g.LCDWidth()-30, g.LCDHeight()-30, 20, 20, nil, 0); err != nil {
		return nil, fmt.Errorf("failed to create alarm led: %w", err)
	}
	if err := led.SetShape(s.alarm, led.ShapeCircle); err != nil {
		return nil, err
	}
	if err := led.SetColor(s.alarm, led.ColorOn, retained.ColorRed); err != nil {
		return nil, err
	}

	if s.status, err = window.CreateChild(g, idStatus, 10, 10, 100, 60, nil, 0); err != nil {
		return nil, fmt.Errorf("failed to create status window: %w", err)
	}
	if err := window.SetTitle(s.status, basicfont.Face7x13, "Status"); err != nil {
		return nil, err
	}
	if s.power, err = led.Create(g, idPower, 8, 32, 16, 16, s.status, 0); err != nil {
		return nil, fmt.Errorf("failed to create power led: %w", err)
	}
	if s.link, err = led.Create(g, idLink, 32, 32, 16, 16, s.status, 0); err != nil {
		return nil, fmt.Errorf("failed to create link led: %w", err)
	}
	if err := led.Set(s.power, true); err != nil {
		return nil, err
	}

	return &s, nil
}
