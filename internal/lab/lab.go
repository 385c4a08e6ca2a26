//go:build fyne

package lab

import (
	"fmt"
	"image"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"huelife/internal/config"
	"huelife/internal/core"
	"huelife/internal/export"
	"huelife/internal/sim"
)

// logKeep bounds the event log shown under the canvas.
const logKeep = 6

// eventLog collects overlay messages. Only the ticker goroutine appends;
// the rendered text is copied out before crossing to the UI thread.
type eventLog struct {
	lines []string
}

func (l *eventLog) Show(text string, _ time.Duration) {
	l.lines = append(l.lines, text)
	if len(l.lines) > logKeep {
		l.lines = l.lines[1:]
	}
}

func (l *eventLog) text() string {
	if len(l.lines) == 0 {
		return "..."
	}
	return strings.Join(l.lines, "\n")
}

type mainThreadRunner interface{ RunOnMain(func()) }
type mainThreadCaller interface{ CallOnMainThread(func()) }

func runOnMain(d fyne.Driver, fn func()) {
	switch drv := d.(type) {
	case mainThreadRunner:
		drv.RunOnMain(fn)
	case mainThreadCaller:
		drv.CallOnMainThread(fn)
	default:
		fn()
	}
}

// Run opens the laboratory window: the live grid, a zoom slider, pause and
// reseed buttons and the event log. The simulation lives on a background
// ticker goroutine; UI callbacks reach it through a command queue so the
// sim is only ever touched from one goroutine.
func Run(cfg config.Config) error {
	log := &eventLog{}
	s, err := sim.New(cfg, log)
	if err != nil {
		return err
	}

	a := fyneapp.New()
	w := a.NewWindow("huelife lab")

	canvasImg := canvas.NewImageFromImage(export.Scale(nil, s.Frame(), s.CellSize()))
	canvasImg.FillMode = canvas.ImageFillOriginal
	canvasImg.SetMinSize(fyne.NewSize(float32(cfg.Width), float32(cfg.Height)))

	statusLabel := widget.NewLabel("running")
	logLabel := widget.NewLabel("...")
	logLabel.Wrapping = fyne.TextWrapWord

	cmds := make(chan func(), 16)
	enqueue := func(fn func()) {
		select {
		case cmds <- fn:
		default:
		}
	}

	pauseButton := widget.NewButton("Pause", func() {})
	pauseButton.OnTapped = func() {
		enqueue(func() { s.TogglePause() })
	}
	reseedButton := widget.NewButton("Reseed", func() {})
	reseedButton.OnTapped = func() {
		enqueue(func() { s.Reseed() })
	}

	zoomLabel := widget.NewLabel(fmt.Sprintf("Cell size: %dpx", cfg.CellSize))
	zoomSlider := widget.NewSlider(core.MinCellSize, float64(cfg.CellSize))
	zoomSlider.Step = 1
	zoomSlider.Value = float64(cfg.CellSize)
	zoomSlider.OnChanged = func(v float64) {
		target := int(v)
		enqueue(func() { setCellSize(s, target) })
	}

	controls := container.NewVBox(
		zoomLabel,
		zoomSlider,
		container.NewGridWithColumns(2, pauseButton, reseedButton),
		widget.NewSeparator(),
		logLabel,
	)

	w.SetContent(container.NewBorder(nil, container.NewVBox(statusLabel, controls), nil, nil, canvasImg))
	w.Resize(fyne.NewSize(float32(cfg.Width), float32(cfg.Height)+220))
	w.CenterOnScreen()

	driver := a.Driver()
	stop := make(chan struct{})
	w.SetOnClosed(func() { close(stop) })

	go func() {
		ticker := time.NewTicker(time.Second / 60)
		defer ticker.Stop()
		pacer := core.NewPacer(cfg.TPS)

		// Two scaled buffers alternate so the UI thread never paints the
		// image currently being written.
		var frames [2]*image.RGBA
		fi := 0

		for {
			select {
			case <-stop:
				return
			case now := <-ticker.C:
				for drained := false; !drained; {
					select {
					case cmd := <-cmds:
						cmd()
					default:
						drained = true
					}
				}
				for i := pacer.Steps(now); i > 0; i-- {
					s.Tick(now)
				}

				frames[fi] = export.Scale(frames[fi], s.Frame(), s.CellSize())
				img := frames[fi]
				fi = 1 - fi

				snap := s.Snapshot()
				status := fmt.Sprintf("gen %d  pop %d  %dx%d @ %dpx  hue %.0f",
					snap.Generation, snap.Population, snap.Size.W, snap.Size.H, snap.CellSize, snap.Hue)
				if snap.Paused {
					status += "  [paused]"
				}
				if err := s.Err(); err != nil {
					status += "  " + err.Error()
				}
				logText := log.text()

				runOnMain(driver, func() {
					canvasImg.Image = img
					canvasImg.Refresh()
					statusLabel.SetText(status)
					logLabel.SetText(logText)
					pauseButton.SetText(pauseText(snap.Paused))
					zoomLabel.SetText(fmt.Sprintf("Cell size: %dpx", snap.CellSize))
				})
			}
		}
	}()

	w.ShowAndRun()
	return nil
}

// setCellSize walks the zoom level to the requested size, stopping at the
// viewport clamps.
func setCellSize(s *sim.Sim, target int) {
	for s.CellSize() != target {
		prev := s.CellSize()
		if prev < target {
			s.ZoomIn()
		} else {
			s.ZoomOut()
		}
		if s.CellSize() == prev {
			return
		}
	}
}

func pauseText(paused bool) string {
	if paused {
		return "Resume"
	}
	return "Pause"
}
