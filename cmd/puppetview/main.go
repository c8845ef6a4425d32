// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command puppetview fetches an INP puppet model and displays it in an
// interactive window. Drag with the primary button to pan, scroll to
// zoom, press Escape or close the window to exit.
package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/spf13/cobra"

	"github.com/gogpu/puppetview"
	"github.com/gogpu/puppetview/gpu"
	"github.com/gogpu/puppetview/inp"
)

// defaultCameraScale fits a typical full-body puppet (a few thousand
// pixels tall) into the window at startup.
const defaultCameraScale = 0.15

type options struct {
	url       string
	width     uint32
	height    uint32
	title     string
	zoomSpeed float64
	verbose   bool
}

func main() {
	opts := &options{}
	root := &cobra.Command{
		Use:   "puppetview",
		Short: "Interactive INP puppet viewer",
		Long: `puppetview fetches a puppet model in the INP container format and
displays it in a GPU-accelerated window.

Controls:
  drag (primary button)  pan the camera
  scroll wheel           zoom toward the view center
  Escape / window close  exit`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	f := root.Flags()
	f.StringVar(&opts.url, "url", "", "URL of the .inp model to display (required)")
	f.Uint32Var(&opts.width, "width", 1280, "initial window width in pixels")
	f.Uint32Var(&opts.height, "height", 720, "initial window height in pixels")
	f.StringVar(&opts.title, "title", "puppetview", "window title")
	f.Float64Var(&opts.zoomSpeed, "zoom-speed", puppetview.DefaultZoomSpeed, "scroll zoom speed")
	f.BoolVar(&opts.verbose, "verbose", false, "enable debug logging")
	_ = root.MarkFlagRequired("url")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, opts *options) error {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	puppetview.SetLogger(logger)

	logger.Info("fetching puppet", "url", opts.url)
	data, err := inp.Fetch(ctx, opts.url)
	if err != nil {
		return fmt.Errorf("fetch puppet: %w", err)
	}
	model, err := inp.Parse(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("parse puppet: %w", err)
	}

	logger.Info("puppet loaded",
		"name", model.Puppet.Meta.Name,
		"version", model.Puppet.Meta.Version,
		"nodes", model.Puppet.NodeCount(),
		"params", len(model.Puppet.Params),
		"textures", len(model.Textures))
	logger.Debug("puppet meta\n" + model.Puppet.Meta.String())
	if len(model.Vendors) == 0 {
		logger.Debug("no vendor data")
	}
	for _, v := range model.Vendors {
		logger.Debug("vendor data", "section", v.String())
	}

	return runViewer(model, opts)
}

// runViewer owns the window loop: it adapts gogpu.App callbacks into
// orchestrator occurrences and honors the returned directives.
func runViewer(model *inp.Model, opts *options) error {
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(opts.title).
		WithSize(int(opts.width), int(opts.height)).
		WithContinuousRender(false))

	surface := gpu.NewHostSurface()

	var (
		orc       *puppetview.Orchestrator
		renderer  *gpu.Renderer
		animToken *gogpu.AnimationToken
		lastW     int
		lastH     int
		fatal     error
	)

	// dispatch pumps one occurrence through the orchestrator. Input that
	// arrives before the first draw callback (startup phase) is dropped.
	dispatch := func(occ puppetview.Occurrence) {
		if orc == nil {
			return
		}
		dir, err := orc.Step(occ)
		if err != nil {
			puppetview.Logger().Error("viewport step failed", "err", err)
		}
		if dir == puppetview.DirectiveExit {
			if animToken != nil {
				animToken.Stop()
				animToken = nil
			}
			app.Quit()
		}
		// DirectiveRedraw needs no explicit action: the animation token
		// keeps the host redrawing at vsync.
	}

	app.OnDraw(func(dc *gogpu.Context) {
		w, h := dc.Width(), dc.Height()

		if orc == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			var err error
			renderer, err = gpu.NewRenderer(provider, gputypes.TextureFormatBGRA8Unorm,
				model, uint32(w), uint32(h))
			if err != nil {
				fatal = fmt.Errorf("create renderer: %w", err)
				app.Quit()
				return
			}
			renderer.Camera().Scale = puppetview.Splat(defaultCameraScale)

			ctrl := puppetview.NewSceneController(renderer.Camera(),
				puppetview.WithZoomSpeed(opts.zoomSpeed))
			orc = puppetview.NewOrchestrator(renderer.Camera(), ctrl, surface, renderer,
				model.Puppet, puppetview.DefaultViewportConfig(uint32(w), uint32(h)))

			lastW, lastH = w, h
			dispatch(puppetview.Resized{Width: uint32(w), Height: uint32(h)})
			animToken = app.StartAnimation()
			puppetview.Logger().Info("viewport ready",
				"backend", dc.Backend(), "width", w, "height", h)
		}

		if w != lastW || h != lastH {
			lastW, lastH = w, h
			dispatch(puppetview.Resized{Width: uint32(w), Height: uint32(h)})
		}

		surface.BeginHostFrame(gpu.NewHostDrawTarget(dc.AsTextureDrawer()))
		dispatch(puppetview.RedrawRequested{})
		surface.EndHostFrame()
		dispatch(puppetview.EventsDrained{})
	})

	app.EventSource().OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		dispatch(puppetview.KeyDown{Key: hostKey(key)})
	})
	wirePointer(app, dispatch)

	app.OnClose(func() {
		dispatch(puppetview.CloseRequested{})
		if animToken != nil {
			animToken.Stop()
		}
	})

	if err := app.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return fatal
}

// hostKey maps host key codes into the viewport's key set.
func hostKey(key gpucontext.Key) puppetview.Key {
	switch key {
	case gpucontext.KeyEscape:
		return puppetview.KeyEscape
	case gpucontext.KeySpace:
		return puppetview.KeySpace
	default:
		return puppetview.KeyUnknown
	}
}

// hostButton maps host pointer button codes (0 left, 1 right, 2
// middle) into the viewport's button set.
func hostButton(b int) puppetview.PointerButton {
	switch b {
	case 1:
		return puppetview.PointerButtonSecondary
	case 2:
		return puppetview.PointerButtonMiddle
	default:
		return puppetview.PointerButtonPrimary
	}
}

// pointerEvents is the optional pointer surface of the host event
// source. Hosts without pointer support leave drag and zoom disabled.
type pointerEvents interface {
	OnPointerMove(fn func(x, y float64))
	OnPointerPress(fn func(x, y float64, button int))
	OnPointerRelease(fn func(x, y float64, button int))
	OnScroll(fn func(dx, dy float64))
}

func wirePointer(app *gogpu.App, dispatch func(puppetview.Occurrence)) {
	src, ok := any(app.EventSource()).(pointerEvents)
	if !ok {
		puppetview.Logger().Warn("host exposes no pointer events; drag and zoom disabled")
		return
	}
	src.OnPointerMove(func(x, y float64) {
		dispatch(puppetview.PointerMoved{Pos: puppetview.V2(x, y)})
	})
	src.OnPointerPress(func(x, y float64, button int) {
		dispatch(puppetview.PointerDown{Pos: puppetview.V2(x, y), Button: hostButton(button)})
	})
	src.OnPointerRelease(func(x, y float64, button int) {
		dispatch(puppetview.PointerUp{Pos: puppetview.V2(x, y), Button: hostButton(button)})
	})
	src.OnScroll(func(_, dy float64) {
		dispatch(puppetview.Scroll{Delta: dy})
	})
}
