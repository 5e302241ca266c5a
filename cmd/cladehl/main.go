// Command cladehl renders clade highlights on a generated tree.
//
// Settings come from CLADEHL_* environment variables (see Config) and may
// be overridden on the command line:
//
//	cladehl -layout radial -nodes 0.1,0.2 -output radial.png
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/treeviewer/highlight"
	"github.com/treeviewer/highlight/recording"
	_ "github.com/treeviewer/highlight/recording/backends/raster"
	"github.com/treeviewer/highlight/tree"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		slog.Error("configuration", "err", err)
		os.Exit(1)
	}

	nodes := strings.Join(cfg.Nodes, ",")
	flag.StringVar(&cfg.Layout, "layout", cfg.Layout, "layout: rectangular, radial or circular")
	flag.IntVar(&cfg.Depth, "depth", cfg.Depth, "tree depth")
	flag.IntVar(&cfg.Arity, "arity", cfg.Arity, "children per internal node")
	flag.StringVar(&nodes, "nodes", nodes, "comma-separated names of the nodes to highlight")
	flag.StringVar(&cfg.Output, "output", cfg.Output, "output PNG file")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "image width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "image height")
	flag.BoolVar(&cfg.Gradient, "gradient", cfg.Gradient, "fill with a gradient")
	flag.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log highlight diagnostics")
	flag.Parse()
	cfg.Nodes = strings.Split(nodes, ",")

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	highlight.SetLogger(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("cladehl failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg *Config, logger *slog.Logger) error {
	root := tree.Balanced(cfg.Depth, cfg.Arity)
	coords, err := place(cfg.Layout, root)
	if err != nil {
		return err
	}

	req := cfg.request()
	if err := req.Validate(); err != nil {
		return err
	}
	targets := cfg.targets()

	rec := recording.NewRecorder()
	h := highlight.New(highlight.WithLogger(logger))
	box, err := h.DrawAll(rec, root, coords, func(n highlight.Node) (highlight.Request, bool) {
		return req, targets[n.(*tree.Node).Name()]
	})
	if err != nil {
		return err
	}
	r := rec.Finish()
	logger.Info("highlights recorded", "commands", len(r.Commands()), "bounds", box)

	// Frame the whole tree, not just the highlights.
	var frame highlight.BoundingBox
	for _, p := range coords.Points {
		frame = frame.Include(p)
	}
	frame = frame.Union(r.Bounds())

	backend, err := recording.NewBackend("raster")
	if err != nil {
		return err
	}
	view := recording.Fit(frame, cfg.Width, cfg.Height, 16)
	if err := r.Playback(backend, cfg.Width, cfg.Height, view); err != nil {
		return err
	}

	fb, ok := backend.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("cladehl: backend %T cannot write files", backend)
	}
	if err := fb.SaveToFile(cfg.Output); err != nil {
		return err
	}
	logger.Info("saved", "file", cfg.Output, "width", cfg.Width, "height", cfg.Height)
	return nil
}
