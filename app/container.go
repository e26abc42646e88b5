package app

import (
	"log/slog"

	"github.com/soocke/region-clip-go/config"
	"github.com/soocke/region-clip-go/domain/gesture"
	"github.com/soocke/region-clip-go/domain/region"
	"github.com/soocke/region-clip-go/source"
	"github.com/soocke/region-clip-go/ui/model"
	"github.com/soocke/region-clip-go/ui/presenter"
	"github.com/soocke/region-clip-go/ui/view"
)

// AppContainer assembles models, services, the presenter and the root view.
type AppContainer struct {
	Config    *config.Config
	Logger    *slog.Logger
	Session   *model.SessionModel
	Selection *model.SelectionModel
	Store     *region.Store
	Tracker   *gesture.Tracker
	Loader    *source.Loader
	Sink      *RegionSink
	RootView  *view.RootView

	Presenter *presenter.SelectionPresenter
}

// BuildContainer constructs all components. The view is created unbuilt; the
// app wires handlers and builds the widget tree once Tk is up.
func BuildContainer(cfg *config.Config, logger *slog.Logger) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Session = model.NewSessionModel()
	c.Selection = &model.SelectionModel{}
	c.Store = region.NewStore(logger)
	c.Tracker = gesture.NewTracker(cfg.MinDragPx)
	loader, err := source.NewLoader(cfg.PageCacheSize, logger)
	if err != nil {
		logger.Error("page cache init failed", "error", err)
	}
	c.Loader = loader
	c.Sink = NewRegionSink(cfg.OutputDir, logger)
	c.RootView = view.NewRootView(cfg, logger)
	c.Presenter = presenter.New(cfg, c.Session, c.Selection, c.Store,
		c.Tracker, c.RootView, c.Sink.Receive, logger)
	return c
}
