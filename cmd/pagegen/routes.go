package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/davestewart/wxt-module-pages/internal/build"
	"github.com/davestewart/wxt-module-pages/internal/config"
	pageserrors "github.com/davestewart/wxt-module-pages/internal/errors"
	"github.com/davestewart/wxt-module-pages/pkg/driver"
	"github.com/davestewart/wxt-module-pages/pkg/pages"
)

func routesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "routes [scope]",
		Short: "Inspect the generated route trees",
		Long: `Build the route trees in memory and print them, without writing
any output files. With a scope argument, only that scope is shown.

Examples:
  pagegen routes
  pagegen routes popup
  pagegen routes --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope := ""
			if len(args) == 1 {
				scope = args[0]
			}
			return runRoutes(scope, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print routes as JSON")

	return cmd
}

func runRoutes(scope string, asJSON bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	drv, err := driver.Get(cfg.Driver)
	if err != nil {
		return pageserrors.New("E103").WithDetail(err.Error())
	}

	roots, err := resolveRoots(cfg)
	if err != nil {
		return err
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

	if scope != "" {
		if _, ok := result.Routes[scope]; !ok {
			return pageserrors.Newf(pageserrors.CategoryCLI,
				"unknown scope %q (available: %s)", scope, strings.Join(result.Scopes(), ", "))
		}
	}

	if asJSON {
		routes := result.Routes
		if scope != "" {
			routes = map[string][]*pages.RouteDefinition{scope: routes[scope]}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(routes)
	}

	for _, name := range result.Scopes() {
		if scope != "" && name != scope {
			continue
		}
		fmt.Printf("\n  %s (%d routes)\n", name, len(result.Routes[name]))
		for _, route := range result.Routes[name] {
			printRoute(route, 2)
		}
	}
	fmt.Println()

	return nil
}

// printRoute prints one route and its children as an indented tree.
func printRoute(route *pages.RouteDefinition, depth int) {
	pad := strings.Repeat("  ", depth)
	path := route.Path
	if path == "" {
		path = "(outlet)"
	}
	fmt.Printf("%s%-30s %s\n", pad, path, route.Name)
	for _, child := range route.Children {
		printRoute(child, depth+1)
	}
}
