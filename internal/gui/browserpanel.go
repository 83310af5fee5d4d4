package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/triptychview/triptych/internal/browser"
	"github.com/triptychview/triptych/internal/config"
)

// BrowserPanel renders a browser.State: the current image at a fixed
// thumbnail height inside a white frame, previous/next buttons, the
// widget caption, and the current file path.
//
// All texture work happens on the UI thread inside refresh; a large
// image stalls that refresh until the decode finishes. That tradeoff is
// accepted for this scope.
type BrowserPanel struct {
	state     *browser.State
	cfg       config.BrowserConfig
	directory string

	img       *canvas.Image
	frame     *canvas.Rectangle
	caption   *widget.Label
	pathLabel *widget.Label
	prevBtn   *widget.Button
	nextBtn   *widget.Button
}

// NewBrowserPanel creates the panel for an existing state. Call Bind to
// attach a directory before showing it.
func NewBrowserPanel(state *browser.State, cfg config.BrowserConfig) *BrowserPanel {
	p := &BrowserPanel{
		state: state,
		cfg:   cfg,
	}

	p.img = &canvas.Image{FillMode: canvas.ImageFillContain}
	p.frame = canvas.NewRectangle(nil)
	p.frame.StrokeColor = imageBorder
	p.frame.StrokeWidth = 2

	p.caption = widget.NewLabel(state.Title())
	p.pathLabel = widget.NewLabel("")
	p.pathLabel.Truncation = fyne.TextTruncateEllipsis

	// Edge presses stay enabled and simply do nothing; the state
	// machine clamps the index.
	p.prevBtn = widget.NewButton("<-", func() {
		p.state.Prev()
		p.refresh()
	})
	p.nextBtn = widget.NewButton("->", func() {
		p.state.Next()
		p.refresh()
	})

	return p
}

// Bind points the panel at a directory and refreshes. Binding the same
// string again is cheap; a different string rescans and resets.
func (p *BrowserPanel) Bind(directory string) {
	p.directory = directory
	p.refresh()
}

// Build assembles the panel contents sized to fill the available width
// at a fixed height.
func (p *BrowserPanel) Build() fyne.CanvasObject {
	thumb := container.NewStack(p.img, p.frame)
	controls := container.NewHBox(p.prevBtn, p.nextBtn)

	body := container.NewVBox(
		container.NewHBox(thumb), // keep the thumbnail left-aligned at its own size
		controls,
		p.caption,
		p.pathLabel,
	)

	bg := canvas.NewRectangle(panelBackground)
	bg.StrokeColor = darkSeparator
	bg.StrokeWidth = 1

	return Sized(container.NewStack(bg, container.NewPadded(body)), Fill(), FixedSize(float32(p.cfg.PanelHeight)))
}

// refresh drives one pass of the state machine and mirrors the result
// into the canvas objects.
func (p *BrowserPanel) refresh() {
	p.state.Sync(p.directory)

	if tex := p.state.Texture(); tex != nil {
		w, h := p.state.ThumbnailSize(float32(p.cfg.ThumbnailHeight))
		p.img.Image = tex.Image()
		p.img.SetMinSize(fyne.NewSize(w, h))
		p.img.Show()
		p.frame.SetMinSize(fyne.NewSize(w, h))
		p.frame.Show()
	} else {
		// No image this pass: decode failed or the collection is empty.
		p.img.Image = nil
		p.img.SetMinSize(fyne.Size{})
		p.img.Hide()
		p.frame.SetMinSize(fyne.Size{})
		p.frame.Hide()
	}
	p.img.Refresh()

	if path := p.state.CurrentPath(); path != "" {
		p.pathLabel.SetText(fmt.Sprintf("Current media: %s", path))
	} else {
		p.pathLabel.SetText("")
	}
}
