package view

import (
	"image"
	"log/slog"
	"strings"

	"github.com/soocke/region-clip-go/config"
	"github.com/soocke/region-clip-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Handlers wires user actions to the application layer.
type Handlers struct {
	Pointer         PointerHandlers
	OnLoadPath      func(path string)
	OnCaptureScreen func()
	OnToggleSelect  func()
	OnCommit        func()
	OnClear         func()
	OnExit          func()
}

// RootView composes the top-level application layout and wires UI callbacks.
// It implements the presenter's View contract.
type RootView struct {
	cfg    *config.Config
	logger *slog.Logger

	Page PageView

	statusLabel *LabelWidget
	pathEntry   *TextWidget
	pathFocused bool
}

// NewRootView returns an unbuilt root view.
func NewRootView(cfg *config.Config, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, logger: logger}
}

// Build constructs the layout: a control row, the path loader row and the
// page display below.
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	theme.InitStyles()

	// Row 0: session controls
	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(0), Columnspan(5), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	selectBtn := Button(Txt("Selection On/Off [s]"), Style(theme.StylePrimaryButton), Command(h.OnToggleSelect))
	Grid(selectBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	saveBtn := Button(Txt("Save Regions"), Style(theme.StylePrimaryButton), Command(h.OnCommit))
	Grid(saveBtn, In(btnFrame), Row(0), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	clearBtn := Button(Txt("Clear"), Style(theme.StyleDangerButton), Command(h.OnClear))
	Grid(clearBtn, In(btnFrame), Row(0), Column(2), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	screenBtn := Button(Txt("Capture Screen"), Command(h.OnCaptureScreen))
	Grid(screenBtn, In(btnFrame), Row(0), Column(3), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	exitBtn := Button(Txt("Exit"), Command(h.OnExit))
	Grid(exitBtn, In(btnFrame), Row(0), Column(4), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	// Row 1: image path loader
	pathLbl := Label(Txt("Page image"), Anchor("w"))
	Grid(pathLbl, Row(1), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
	rv.pathEntry = Text(Height(1), Width(48))
	Grid(rv.pathEntry, Row(1), Column(1), Columnspan(3), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
	Bind(rv.pathEntry, "<FocusIn>", Command(func() { rv.setPathFocus(true) }))
	Bind(rv.pathEntry, "<FocusOut>", Command(func() { rv.setPathFocus(false) }))
	loadBtn := Button(Txt("Load"), Command(func() {
		if h.OnLoadPath != nil {
			h.OnLoadPath(rv.PathText())
		}
	}))
	Grid(loadBtn, Row(1), Column(4), Sticky("we"), Padx("0.2m"), Pady("0.15m"))

	// Row 2: status
	rv.statusLabel = Label(Txt("Ready"), Style(theme.StyleStateLabel))
	Grid(rv.statusLabel, Row(2), Column(0), Columnspan(5), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	// Row 3: the page itself
	rv.Page = NewPageView(3, h.Pointer)
}

// PathText returns the trimmed contents of the path entry.
func (rv *RootView) PathText() string {
	if rv == nil || rv.pathEntry == nil {
		return ""
	}
	parts := rv.pathEntry.Get("1.0", END)
	return strings.TrimSpace(strings.Join(parts, ""))
}

// PathEntryFocused reports whether the path entry holds keyboard focus.
// Window-level keyboard shortcuts consult it so typing a path never
// triggers them.
func (rv *RootView) PathEntryFocused() bool {
	if rv == nil {
		return false
	}
	return rv.pathFocused
}

func (rv *RootView) setPathFocus(b bool) {
	if rv != nil {
		rv.pathFocused = b
	}
}

// ShowFrame proxies to the page view.
func (rv *RootView) ShowFrame(img image.Image) {
	if rv != nil && rv.Page != nil {
		rv.Page.ShowFrame(img)
	}
}

// SetStatus updates the status label.
func (rv *RootView) SetStatus(text string) {
	if rv == nil || rv.statusLabel == nil {
		return
	}
	rv.statusLabel.Configure(Txt(text))
}

// Warn surfaces a user-visible warning on the status label and the log.
func (rv *RootView) Warn(text string) {
	if rv == nil {
		return
	}
	if rv.logger != nil {
		rv.logger.Warn("user warning", "text", text)
	}
	if rv.statusLabel != nil {
		rv.statusLabel.Configure(Txt("! " + text))
	}
}
