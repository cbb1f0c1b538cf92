package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/davestewart/wxt-module-pages/internal/build"
	"github.com/davestewart/wxt-module-pages/internal/config"
	pageserrors "github.com/davestewart/wxt-module-pages/internal/errors"
	"github.com/davestewart/wxt-module-pages/internal/scan"
	"github.com/davestewart/wxt-module-pages/pkg/driver"
)

func genCmd() *cobra.Command {
	var (
		driverName string
		outDir     string
		srcDir     string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate route modules",
		Long: `Generate one route module per scope from the pages directories.

Roots come from pages.json when configured, otherwise from convention:
pages/ (scope "global") and entrypoints/<name>/pages (scope "<name>").
Output is written to the configured output directory as
routes.<scope>.js.

Examples:
  pagegen gen
  pagegen gen --driver=react
  pagegen gen --out=src/generated`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(driverName, outDir, srcDir)
		},
	}

	cmd.Flags().StringVarP(&driverName, "driver", "d", "", "Rendering driver (default from pages.json)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default from pages.json)")
	cmd.Flags().StringVarP(&srcDir, "src", "s", "", "Source directory (default from pages.json)")

	return cmd
}

func runGen(driverName, outDir, srcDir string) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	if driverName != "" {
		cfg.Driver = driverName
	}
	if outDir != "" {
		cfg.OutDir = outDir
	}
	if srcDir != "" {
		cfg.SrcDir = srcDir
	}

	drv, err := driver.Get(cfg.Driver)
	if err != nil {
		return pageserrors.New("E103").
			WithDetail(err.Error()).
			WithSuggestion("Set \"driver\" in pages.json to one of the available drivers")
	}

	if cfg.LayoutFile != "" && cfg.LayoutFile == cfg.ParentFile {
		warn("%s", pageserrors.New("E104").FormatCompact())
	}

	roots, err := resolveRoots(cfg)
	if err != nil {
		return err
	}
	if len(roots) == 0 {
		return pageserrors.New("E121").
			WithDetail("No pages/ or entrypoints/*/pages directories under " + cfg.SrcPath()).
			WithSuggestion("Create a pages directory or list roots explicitly in pages.json")
	}

	result, err := build.Run(context.Background(), build.Options{
		Roots:      roots,
		Driver:     drv,
		LayoutFile: cfg.LayoutFile,
		ParentFile: cfg.ParentFile,
	})
	if err != nil {
		return err
	}

	for _, conflict := range result.Conflicts {
		warn("duplicate %s file in %s: kept %s, ignored %s",
			conflict.Kind, conflict.Dir, conflict.Kept, conflict.Discarded)
	}

	if err := os.MkdirAll(cfg.OutPath(), 0755); err != nil {
		return pageserrors.New("E140").Wrap(err)
	}

	for _, scope := range result.Scopes() {
		path := filepath.Join(cfg.OutPath(), "routes."+scope+".js")
		content := driver.RenderScope(drv, result.Routes[scope])
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return pageserrors.New("E140").
				WithDetail("Failed to write " + path).
				Wrap(err)
		}
		success("routes.%s.js (%d routes)", scope, len(result.Routes[scope]))
	}

	info("%d files in %s", result.Files, result.Duration.Round(1000000))
	return nil
}

// resolveRoots maps explicit config roots to scan roots, or falls back
// to convention-based discovery.
func resolveRoots(cfg *config.Config) ([]scan.Root, error) {
	if len(cfg.Roots) > 0 {
		roots := make([]scan.Root, 0, len(cfg.Roots))
		for _, rc := range cfg.Roots {
			dir := rc.Dir
			if !filepath.IsAbs(dir) {
				dir = filepath.Join(cfg.Dir(), dir)
			}
			if _, err := os.Stat(dir); err != nil {
				return nil, pageserrors.New("E120").
					WithDetail("Configured root " + rc.Dir + " does not exist").
					WithSuggestion("Fix the \"roots\" entry in pages.json or create the directory")
			}
			roots = append(roots, scan.Root{Dir: dir, Scope: rc.Scope})
		}
		return roots, nil
	}
	return scan.DiscoverRoots(cfg.SrcPath())
}
