// Command phpast is the thin CLI wrapper around the phpast library.
// Per spec.md §1, the CLI itself carries no analysis logic — every
// subcommand is a few lines gluing flags to a library call.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/oxhq/phpast"
	"github.com/oxhq/phpast/analyze"
	"github.com/oxhq/phpast/ast"
	"github.com/oxhq/phpast/internal/assets"
	"github.com/oxhq/phpast/internal/config"
	"github.com/oxhq/phpast/internal/store"
	"github.com/oxhq/phpast/parser"
	"github.com/oxhq/phpast/resource"
	"github.com/oxhq/phpast/traversal"
)

// builtinsFor resolves the builtin-name set a find-calls run should
// ignore: the file named by cfg.BuiltinsFile when set, else the
// bundled default.
func builtinsFor(cfg config.Config) map[string]struct{} {
	if cfg.BuiltinsFile == "" {
		return assets.BuiltinNames()
	}
	names, err := assets.LoadBuiltinNames(cfg.BuiltinsFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.YellowString("warning: %v, falling back to bundled builtins", err))
		return assets.BuiltinNames()
	}
	return names
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "phpast",
		Short: "Static analysis substrate for PHP-like source trees",
	}
	root.AddCommand(newScanCmd(), newFindCallsCmd(), newEmptyCatchesCmd(), newGraphCmd(), newCacheCmd())
	return root
}

func newScanCmd() *cobra.Command {
	var greedy bool
	var names []string
	cmd := &cobra.Command{
		Use:   "scan <root>",
		Short: "Find function declarations and variable assignments by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			tree, err := phpast.AnalyzeVersion(args[0], parser.ParseVersionString(cfg.PHPVersion))
			if err != nil {
				return err
			}
			for path, st := range tree.Trees {
				finder := analyze.NewNameFinder(names, greedy)
				walkTree(st, finder)
				for _, r := range finder.Found {
					fmt.Printf("%s:%d\t%s\t%s\n", path, r.Node.Line(), r.Kind, r.Node.Kind())
				}
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&names, "name", nil, "names to search for")
	cmd.Flags().BoolVar(&greedy, "greedy", true, "keep matching after the first hit")
	return cmd
}

func newEmptyCatchesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "empty-catches <root>",
		Short: "Find try/catch blocks with at least one empty catch body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			tree, err := phpast.AnalyzeVersion(args[0], parser.ParseVersionString(cfg.PHPVersion))
			if err != nil {
				return err
			}
			for path, st := range tree.Trees {
				finder := analyze.NewNodeFinder(hasEmptyCatch)
				walkTree(st, finder)
				for _, r := range finder.Found {
					fmt.Printf("%s:%d\ttry with empty catch\n", path, r.Node.Line())
				}
			}
			return nil
		},
	}
	return cmd
}

func hasEmptyCatch(n ast.Node) bool {
	tryNode, ok := n.(*ast.Try)
	if !ok {
		return false
	}
	for _, c := range tryNode.Catches {
		if block, ok := c.Body.(*ast.Block); ok && len(block.Stmts) == 0 {
			return true
		}
	}
	return false
}

func newFindCallsCmd() *cobra.Command {
	var ignoreBuiltins, matchParams bool
	cmd := &cobra.Command{
		Use:   "find-calls <root>",
		Short: "Resolve function/method calls against declared definitions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			tree, err := phpast.AnalyzeVersion(args[0], parser.ParseVersionString(cfg.PHPVersion))
			if err != nil {
				return err
			}
			finder := analyze.NewResourceCallsFinderWithBuiltins(tree, ignoreBuiltins, matchParams, builtinsFor(cfg))
			finder.Run()
			fmt.Println(color.GreenString("bound calls: %d", len(finder.BoundCalls)))
			fmt.Println(color.YellowString("unbound calls: %d", len(finder.UnboundCalls)))
			for _, m := range finder.UnboundCalls {
				fmt.Printf("  unresolved at line %d\n", m.Call.Line())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&ignoreBuiltins, "ignore-builtins", true, "skip calls to builtin functions")
	cmd.Flags().BoolVar(&matchParams, "match-params", true, "filter candidates by declared parameter count")
	return cmd
}

func newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph <file>",
		Short: "Emit a DOT graph of one file's AST",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			st, err := phpast.AnalyzeFileVersion(args[0], parser.ParseVersionString(cfg.PHPVersion))
			if err != nil {
				return err
			}
			g := analyze.GraphBuilder{}.Build(st)
			out, err := g.DOT()
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
	return cmd
}

func newCacheCmd() *cobra.Command {
	cache := &cobra.Command{Use: "cache", Short: "Manage the incremental symbol-table cache"}
	cache.AddCommand(&cobra.Command{
		Use:   "sync <root>",
		Short: "Refresh the cache for every file under root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			db, err := store.Open(cfg.DBPath)
			if err != nil {
				return err
			}
			defer db.Close()

			tree, err := resource.BuildTreesCachedVersion(args[0], db, parser.ParseVersionString(cfg.PHPVersion))
			if err != nil {
				return err
			}
			stale := 0
			for _, isStale := range tree.Stale {
				if isStale {
					stale++
				}
			}
			fmt.Printf("scanned %d files, %d changed since last sync\n", len(tree.Trees), stale)
			return nil
		},
	})
	return cache
}

// walkTree registers v on a fresh BFS walker and walks st, matching the
// dispatch order guaranteed by spec.md §5.
func walkTree(st ast.Node, v traversal.Visitor) {
	w := traversal.NewWalker()
	_ = w.Register(v)
	w.Walk(st)
}
