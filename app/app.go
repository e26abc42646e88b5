package app

import (
	"fmt"
	"image"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/region-clip-go/assets"
	"github.com/soocke/region-clip-go/config"
	"github.com/soocke/region-clip-go/debug"
	"github.com/soocke/region-clip-go/source"
	"github.com/soocke/region-clip-go/ui/view"
)

// chrome is the vertical space the control rows and paddings occupy; the
// page viewport gets whatever the window leaves after it.
const (
	chromeH  = 130
	marginW  = 24
	minViewW = 100
	minViewH = 100
)

type application struct {
	cfg    *config.Config
	logger *slog.Logger
	c      *AppContainer

	resizeAfterID string
	lastGeom      string
}

// NewApp creates the main window and assembles the component container.
func NewApp(title string, cfg *config.Config, logger *slog.Logger) *application {
	a := &application{cfg: cfg, logger: logger}
	a.c = BuildContainer(cfg, logger)

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", cfg.WindowW, cfg.WindowH))
	return a
}

// Start builds the widget tree, opens the initial page and enters the Tk
// event loop. imagePath may be empty; the embedded placeholder is shown then.
func (a *application) Start(imagePath string) {
	p := a.c.Presenter
	a.c.RootView.Build(view.Handlers{
		Pointer: view.PointerHandlers{
			Down: func(x, y int) { p.PointerDown(pt(x, y)) },
			Move: func(x, y int) { p.PointerMove(pt(x, y)) },
			Up:   func(x, y int) { p.PointerUp(pt(x, y)) },
		},
		OnLoadPath:      a.loadPath,
		OnCaptureScreen: a.captureScreen,
		OnToggleSelect:  p.ToggleSelection,
		OnCommit:        p.Commit,
		OnClear:         p.ClearAll,
		OnExit:          a.exitHandler,
	})

	Bind(App, "<Escape>", Command(p.CancelGesture))
	Bind(App, "<s>", Command(func() {
		// Typing an "s" into the path entry must not flip selection mode.
		if !a.c.RootView.PathEntryFocused() {
			p.ToggleSelection()
		}
	}))
	Bind(App, "<Configure>", Command(a.scheduleResize))

	if imagePath != "" {
		a.loadPath(imagePath)
	} else {
		a.openPlaceholder()
	}

	if a.cfg.Debug {
		debug.StartGoroutineLogger(2*time.Second, a.logger)
		debug.StartMemLogger(2*time.Second, a.logger)
	}

	App.Wait()
}

// loadPath opens an image file through the cached loader.
func (a *application) loadPath(path string) {
	path = strings.TrimSpace(path)
	if path == "" {
		a.c.RootView.Warn("Enter an image path first")
		return
	}
	pg, err := a.c.Loader.Open(path)
	if err != nil {
		a.logger.Error("opening page failed", "path", path, "error", err)
		a.c.RootView.Warn(fmt.Sprintf("Could not open %s", path))
		return
	}
	vw, vh := a.viewportSize()
	a.c.Presenter.OpenSession(pg, vw, vh)
}

// captureScreen grabs the current screen content as the page.
func (a *application) captureScreen() {
	pg, err := source.Screen()
	if err != nil {
		a.logger.Error("screen capture failed", "error", err)
		a.c.RootView.Warn("Screen capture failed")
		return
	}
	vw, vh := a.viewportSize()
	a.c.Presenter.OpenSession(pg, vw, vh)
}

func (a *application) openPlaceholder() {
	img, err := assets.PlaceholderPage()
	if err != nil {
		a.logger.Error("placeholder decode failed", "error", err)
		return
	}
	vw, vh := a.viewportSize()
	a.c.Presenter.OpenSession(source.Page{Name: "placeholder", Image: img}, vw, vh)
}

// scheduleResize debounces window Configure events. Tk fires them in bursts
// during an interactive resize; only the settled geometry triggers a
// re-projection.
func (a *application) scheduleResize() {
	if a.resizeAfterID != "" {
		TclAfterCancel(a.resizeAfterID)
	}
	delay := time.Duration(a.cfg.ResizeDebounceMs) * time.Millisecond
	a.resizeAfterID = TclAfter(delay, func() {
		a.resizeAfterID = ""
		geom := WmGeometry(App)
		if geom == a.lastGeom {
			return
		}
		a.lastGeom = geom
		vw, vh := a.viewportSize()
		a.c.Presenter.ViewportChanged(vw, vh)
	})
}

// viewportSize derives the page display bounds from the current window
// geometry, leaving room for the control rows.
func (a *application) viewportSize() (int, int) {
	w, h := a.cfg.WindowW, a.cfg.WindowH
	if r, ok := parseGeometry(WmGeometry(App)); ok {
		w, h = r.Dx(), r.Dy()
	}
	vw := w - marginW
	if vw < minViewW {
		vw = minViewW
	}
	vh := h - chromeH
	if vh < minViewH {
		vh = minViewH
	}
	return vw, vh
}

func (a *application) exitHandler() {
	if a.resizeAfterID != "" {
		TclAfterCancel(a.resizeAfterID)
	}
	Destroy(App)
}

func pt(x, y int) image.Point { return image.Pt(x, y) }

// geomRe matches window geometry strings in the format "WIDTHxHEIGHT+X+Y".
var geomRe = regexp.MustCompile(`^(\d+)x(\d+)\+(-?\d+)\+(-?\d+)$`)

// parseGeometry parses a Tk geometry string into a rectangle.
func parseGeometry(g string) (image.Rectangle, bool) {
	m := geomRe.FindStringSubmatch(strings.TrimSpace(g))
	if len(m) != 5 {
		return image.Rectangle{}, false
	}
	w, _ := strconv.Atoi(m[1])
	h, _ := strconv.Atoi(m[2])
	x, _ := strconv.Atoi(m[3])
	y, _ := strconv.Atoi(m[4])
	if w <= 0 || h <= 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(x, y, x+w, y+h), true
}
