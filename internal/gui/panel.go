package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// SizePolicy determines how a region claims space along one axis.
type SizePolicy int

const (
	// FillAvailable expands to whatever space the parent offers.
	FillAvailable SizePolicy = iota
	// Fixed pins the axis to an explicit value.
	Fixed
)

// SizeSpec is one axis of a declarative size: either fill-available or
// a fixed number of device-independent pixels.
type SizeSpec struct {
	Policy SizePolicy
	Value  float32
}

// Fill returns a fill-available SizeSpec.
func Fill() SizeSpec { return SizeSpec{Policy: FillAvailable} }

// FixedSize returns a fixed SizeSpec of v pixels.
func FixedSize(v float32) SizeSpec { return SizeSpec{Policy: Fixed, Value: v} }

// sizedLayout sizes its single object according to per-axis policies.
// It replaces ad-hoc position math: a region states its policy once and
// the layout applies it every pass.
type sizedLayout struct {
	width, height SizeSpec
}

func (l *sizedLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var min fyne.Size
	if len(objects) > 0 {
		min = objects[0].MinSize()
	}
	if l.width.Policy == Fixed {
		min.Width = l.width.Value
	}
	if l.height.Policy == Fixed {
		min.Height = l.height.Value
	}
	return min
}

func (l *sizedLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	w, h := size.Width, size.Height
	if l.width.Policy == Fixed {
		w = l.width.Value
	}
	if l.height.Policy == Fixed {
		h = l.height.Value
	}
	for _, o := range objects {
		o.Resize(fyne.NewSize(w, h))
		o.Move(fyne.NewPos(0, 0))
	}
}

// Sized wraps obj in a container honoring the given size policies.
func Sized(obj fyne.CanvasObject, width, height SizeSpec) *fyne.Container {
	return container.New(&sizedLayout{width: width, height: height}, obj)
}

// Panel is a bordered, captioned region of the main window.
type Panel struct {
	Title   string
	Content fyne.CanvasObject // optional
	Height  SizeSpec
}

// Build assembles the panel: background, border, caption, content.
func (p Panel) Build() fyne.CanvasObject {
	bg := canvas.NewRectangle(panelBackground)
	bg.StrokeColor = darkSeparator
	bg.StrokeWidth = 1

	caption := widget.NewLabel(p.Title)

	var body fyne.CanvasObject
	if p.Content != nil {
		body = container.NewVBox(caption, p.Content)
	} else {
		body = container.NewVBox(caption)
	}

	inner := container.NewStack(bg, container.NewPadded(body))
	return Sized(inner, Fill(), p.Height)
}
