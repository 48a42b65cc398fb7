// Command oxclint is a thin CLI collaborator around pkg/oxc: it flattens
// argv into config/files and calls the library, carrying no analysis logic
// of its own.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/oxc-go/oxc/internal/config"
	"github.com/oxc-go/oxc/internal/js_ast"
	"github.com/oxc-go/oxc/internal/partial_loader"
	"github.com/oxc-go/oxc/pkg/oxc"
)

var (
	configPath string
	fixMode    bool
	verbose    bool
	workers    int

	log *zap.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "oxclint [paths...]",
	Short: "Lint JavaScript/TypeScript files",
	Args:  cobra.MinimumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if defaults, err := loadProjectDefaults("oxclint.defaults.yaml"); err != nil {
			return fmt.Errorf("loading oxclint.defaults.yaml: %w", err)
		} else if defaults != nil {
			if !cmd.Flags().Changed("workers") && defaults.Workers > 0 {
				workers = defaults.Workers
			}
			if !cmd.Flags().Changed("fix") {
				fixMode = defaults.Fix
			}
			if !cmd.Flags().Changed("verbose") {
				verbose = defaults.Verbose
			}
		}

		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		built, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		log = built
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to .oxlintrc.json (default: discovered upward from each file)")
	rootCmd.Flags().BoolVar(&fixMode, "fix", false, "apply non-conflicting fixes")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug-level process logging")
	rootCmd.Flags().IntVar(&workers, "workers", 4, "batch worker pool size")
}

func run(cmd *cobra.Command, args []string) error {
	paths, err := collectFiles(args)
	if err != nil {
		return err
	}

	discoverer, err := config.NewDiscoverer(64)
	if err != nil {
		return err
	}

	linter := oxc.NewLinter()
	files := make(map[string]oxc.FileInput, len(paths))
	configFor := make(map[string]*config.Config, len(paths))

	for _, path := range paths {
		contents, err := os.ReadFile(path)
		if err != nil {
			log.Warn("skipping unreadable file", zap.String("path", path), zap.Error(err))
			continue
		}

		sourceType, ok := sourceTypeFor(path)
		if !ok {
			continue
		}

		body := string(contents)
		if loader := partial_loader.ForExtension(filepath.Ext(path)); loader != nil {
			regions, err := loader.Extract(path, body)
			if err != nil {
				log.Warn("partial loader failed", zap.String("path", path), zap.Error(err))
				continue
			}
			for i, region := range regions {
				key := fmt.Sprintf("%s#%d", path, i)
				files[key] = oxc.FileInput{SourceText: region.Source.Contents, SourceType: region.SourceType}
				configFor[key] = resolveConfig(discoverer, path)
			}
			continue
		}

		files[path] = oxc.FileInput{SourceText: body, SourceType: sourceType}
		configFor[path] = resolveConfig(discoverer, path)
	}

	// The library surface takes one config per batch call; files sharing a
	// config are grouped so a mixed-project run still only calls BatchRun
	// once per distinct discovered config instead of once per file.
	byConfig := make(map[*config.Config]map[string]oxc.FileInput)
	for path, in := range files {
		group := byConfig[configFor[path]]
		if group == nil {
			group = make(map[string]oxc.FileInput)
			byConfig[configFor[path]] = group
		}
		group[path] = in
	}

	exitCode := 0
	for cfg, group := range byConfig {
		runID, perFile := linter.BatchRun(context.Background(), group, cfg, workers)
		log.Info("lint batch complete", zap.String("run_id", runID), zap.Int("files", len(group)))
		for path, diags := range perFile {
			for _, d := range diags {
				exitCode = 1
				fmt.Printf("%s:%d:%d %s [%s/%s] %s\n", path, d.Range.Start.Line+1, d.Range.Start.Column+1, d.Severity, d.Plugin, d.Rule, d.Message)
			}
		}
	}

	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}

func resolveConfig(d *config.Discoverer, path string) *config.Config {
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil
		}
		cfg, err := config.Parse(data)
		if err != nil {
			return nil
		}
		return cfg
	}
	cfg, _ := d.Discover(filepath.Dir(path))
	return cfg
}

func collectFiles(args []string) ([]string, error) {
	var out []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", arg, err)
		}
		if !info.IsDir() {
			out = append(out, arg)
			continue
		}
		err = filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() {
				return err
			}
			out = append(out, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func sourceTypeFor(path string) (js_ast.SourceType, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".js", ".mjs", ".cjs":
		return js_ast.SourceType{IsModule: true}, true
	case ".jsx":
		return js_ast.SourceType{IsModule: true, JSX: true}, true
	case ".ts", ".mts", ".cts":
		return js_ast.SourceType{IsModule: true, Language: js_ast.LanguageTS}, true
	case ".tsx":
		return js_ast.SourceType{IsModule: true, Language: js_ast.LanguageTS, JSX: true, TSX: true}, true
	case ".astro", ".vue", ".svelte", ".html", ".htm":
		// Regions are parsed with the SourceType the partial loader derived
		// per-block; the top-level file itself has none of its own.
		return js_ast.SourceType{}, true
	}
	return js_ast.SourceType{}, false
}
