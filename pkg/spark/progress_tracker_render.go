package spark

import (
	"fmt"
	"math"
	"strings"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/adevinta/spark-ios-sub000/pkg/spark/constants"
	"github.com/adevinta/spark-ios-sub000/pkg/spark/internal"
	"github.com/adevinta/spark-ios-sub000/pkg/spark/internal/locale"
	"github.com/adevinta/spark-ios-sub000/pkg/spark/internal/logging"
	"github.com/adevinta/spark-ios-sub000/pkg/spark/tracker"
)

// Unscaled layout metrics, designed for a 480p screen.
const (
	indicatorSize   int32 = 36
	titleAreaHeight int32 = 90
	labelGap        int32 = 10
	connectorWidth  int32 = 4
	footerHeight    int32 = 40
)

var trackerMargins = internal.Padding{Top: 20, Right: 40, Bottom: 20 + footerHeight, Left: 40}

func (c *progressTrackerController) render(window *internal.Window) error {
	renderer := window.Renderer
	fonts := internal.GetFonts()
	scale := internal.GetScaleFactor()
	width, _ := window.Size()

	window.Clear()

	margins := trackerMargins.Scaled(scale)
	y := margins.Top
	if c.title != "" {
		h, err := c.drawText(renderer, fonts.Title, c.title, width/2, y, internal.GetTheme().TextColor, constants.TextAlignCenter)
		if err != nil {
			return err
		}
		y += h + int32(float32(constants.DefaultTitleSpacing)*scale)
	}

	if !c.settings.HidePosition {
		position := locale.StepPosition(c.tracker.CurrentPage(), c.tracker.NumberOfPages())
		if _, err := c.drawText(renderer, fonts.Small, position, width/2, y, internal.GetTheme().HintColor, constants.TextAlignCenter); err != nil {
			return err
		}
	}

	c.renderConnectors(renderer, scale)

	for page := 0; page < c.tracker.NumberOfPages(); page++ {
		if err := c.renderIndicator(renderer, page, scale); err != nil {
			return err
		}
	}

	if err := c.renderFooter(renderer, scale); err != nil {
		return err
	}

	window.Present()
	return nil
}

// indicatorRect is the square drawn inside a page frame.
func indicatorRect(frame tracker.Rect, scale float32) sdl.Rect {
	size := math.Min(float64(indicatorSize)*float64(scale), math.Min(frame.Width, frame.Height))
	center := frame.Center()
	return sdl.Rect{
		X: int32(math.Round(center.X - size/2)),
		Y: int32(math.Round(center.Y - size/2)),
		W: int32(size),
		H: int32(size),
	}
}

func (c *progressTrackerController) indicatorColor(page int, ind tracker.Indicator) sdl.Color {
	theme := internal.GetTheme()
	switch {
	case !c.tracker.IsEnabled():
		return theme.DisabledColor
	case ind.Highlighted:
		return theme.HighlightColor
	case page == c.tracker.CurrentPage():
		return theme.AccentColor
	case c.tracker.IsCompleted(page):
		return theme.CompletedColor
	default:
		return theme.IndicatorColor
	}
}

func (c *progressTrackerController) renderConnectors(renderer *sdl.Renderer, scale float32) {
	frames := c.tracker.Frames()
	thickness := max(int32(float32(connectorWidth)*scale), 1)
	theme := internal.GetTheme()

	for i := 1; i < len(frames); i++ {
		color := theme.IndicatorColor
		if c.tracker.IsCompleted(i) || i == c.tracker.CurrentPage() {
			color = theme.CompletedColor
		}
		if !c.tracker.IsEnabled() {
			color = theme.DisabledColor
		}

		from, to := frames[i-1].Center(), frames[i].Center()
		var line sdl.Rect
		if c.tracker.Orientation() == tracker.OrientationVertical {
			line = sdl.Rect{X: int32(from.X) - thickness/2, Y: int32(from.Y), W: thickness, H: int32(to.Y - from.Y)}
		} else {
			line = sdl.Rect{X: int32(from.X), Y: int32(from.Y) - thickness/2, W: int32(to.X - from.X), H: thickness}
		}

		renderer.SetDrawColor(color.R, color.G, color.B, color.A)
		renderer.FillRect(&line)
	}
}

func (c *progressTrackerController) renderIndicator(renderer *sdl.Renderer, page int, scale float32) error {
	ind, ok := c.tracker.Indicator(page)
	if !ok {
		return nil
	}

	theme := internal.GetTheme()
	fonts := internal.GetFonts()
	rect := indicatorRect(ind.Frame, scale)
	if rect.W <= 0 || rect.H <= 0 {
		return nil
	}

	color := c.indicatorColor(page, ind)
	renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	renderer.FillRect(&rect)

	if c.tracker.IsCompleted(page) && !ind.Highlighted {
		icon, err := c.textures.CheckIcon(renderer, rect.H*2/3)
		if err == nil {
			inner := sdl.Rect{X: rect.X + rect.W/6, Y: rect.Y + rect.H/6, W: rect.W * 2 / 3, H: rect.H * 2 / 3}
			renderer.Copy(icon, nil, &inner)
		} else {
			logging.GetInternalLogger().Debug("Check icon unavailable", "error", err)
			if _, err := c.drawText(renderer, fonts.Label, constants.CheckGlyph, rect.X+rect.W/2, rect.Y, theme.HighlightedTextColor, constants.TextAlignCenter); err != nil {
				return err
			}
		}
	} else {
		number := fmt.Sprintf("%d", page+1)
		_, h, _ := fonts.Small.SizeUTF8(number)
		if _, err := c.drawText(renderer, fonts.Small, number, rect.X+rect.W/2, rect.Y+(rect.H-int32(h))/2, theme.HighlightedTextColor, constants.TextAlignCenter); err != nil {
			return err
		}
	}

	labelColor := theme.HintColor
	if page == c.tracker.CurrentPage() || ind.Highlighted {
		labelColor = theme.TextColor
	}

	gap := int32(float32(labelGap) * scale)
	label := c.tracker.Label(page)
	if c.tracker.Orientation() == tracker.OrientationVertical {
		_, h, _ := fonts.Label.SizeUTF8(label)
		_, err := c.drawText(renderer, fonts.Label, label, rect.X+rect.W+gap, rect.Y+(rect.H-int32(h))/2, labelColor, constants.TextAlignLeft)
		return err
	}
	_, err := c.drawText(renderer, fonts.Label, label, rect.X+rect.W/2, rect.Y+rect.H+gap, labelColor, constants.TextAlignCenter)
	return err
}

func (c *progressTrackerController) renderFooter(renderer *sdl.Renderer, scale float32) error {
	if len(c.footer) == 0 {
		return nil
	}

	parts := make([]string, len(c.footer))
	for i, item := range c.footer {
		parts[i] = fmt.Sprintf("%s  %s", item.ButtonName, item.HelpText)
	}

	window := internal.GetWindow()
	_, height := window.Size()
	fonts := internal.GetFonts()
	margins := trackerMargins.Scaled(scale)

	_, h, _ := fonts.Small.SizeUTF8("Aj")
	y := height - int32(float32(footerHeight)*scale/2) - int32(h)/2
	_, err := c.drawText(renderer, fonts.Small, strings.Join(parts, "     "), margins.Left, y, internal.GetTheme().HintColor, constants.TextAlignLeft)
	return err
}

// drawText draws text anchored at x according to align and returns its height.
func (c *progressTrackerController) drawText(renderer *sdl.Renderer, font *ttf.Font, text string, x, y int32, color sdl.Color, align constants.TextAlign) (int32, error) {
	if text == "" || font == nil {
		return 0, nil
	}

	texture, err := c.textures.Text(renderer, font, text, color)
	if err != nil {
		return 0, err
	}

	_, _, w, h, err := texture.Query()
	if err != nil {
		return 0, err
	}

	switch align {
	case constants.TextAlignCenter:
		x -= w / 2
	case constants.TextAlignRight:
		x -= w
	}

	renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: w, H: h})
	return h, nil
}
