package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/ActiveChai/vega-lite/internal/config"
	"github.com/ActiveChai/vega-lite/internal/diag"
	"github.com/ActiveChai/vega-lite/internal/driver"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags] <spec.json>...",
	Short: "Compile chart specs to rendering specs",
	Long:  "Compile normalized chart specifications into rendering specs. Each input produces a sibling .vg.json file unless -o is given.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  compileExecution,
}

func init() {
	addCompileFlags(compileCmd.Flags())
}

func addCompileFlags(fs *pflag.FlagSet) {
	fs.StringP("output", "o", "", "output path (single input only; \"-\" for stdout)")
	fs.Bool("emit-graph", false, "print each view's transform pipeline")
}

// compileResult captures one input's outcome so output stays in
// argument order even though inputs compile concurrently.
type compileResult struct {
	path string
	out  *driver.Output
	err  error
}

func compileExecution(cmd *cobra.Command, args []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	emitGraph, err := cmd.Flags().GetBool("emit-graph")
	if err != nil {
		return err
	}
	if outputPath != "" && len(args) > 1 {
		return errors.New("-o is only valid with a single input")
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}

	cfg, _, err := config.Load(filepath.Dir(args[0]))
	if err != nil {
		return fmt.Errorf("load %s: %w", config.FileName, err)
	}
	opts := driver.Options{MaxDiagnostics: maxDiagnostics, EmitGraph: emitGraph}

	// Each compile is a pure function of its input, so files can run
	// concurrently; every individual compile stays single-threaded.
	results := make([]compileResult, len(args))
	var g errgroup.Group
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			results[i] = compileOne(path, cfg, opts, outputPath)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	colorize := colorEnabled(cmd, os.Stderr)
	failed := false
	for _, r := range results {
		if r.out != nil && r.out.Bag.Len() > 0 && !quiet {
			r.out.Bag.Sort()
			diag.Render(os.Stderr, r.out.Bag, colorize)
		}
		if r.err != nil {
			failed = true
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.path, r.err)
			continue
		}
		if emitGraph && r.out.Graph != "" {
			fmt.Fprint(os.Stdout, r.out.Graph)
		}
		if showTimings {
			printTimings(os.Stderr, r.path, r.out.Timer)
		}
	}
	if failed {
		return errors.New("compilation failed")
	}
	return nil
}

func compileOne(path string, cfg *config.Config, opts driver.Options, outputPath string) compileResult {
	input, err := os.ReadFile(path)
	if err != nil {
		return compileResult{path: path, err: err}
	}
	out, err := driver.Compile(input, cfg, opts)
	if err != nil {
		return compileResult{path: path, out: out, err: err}
	}
	target := outputPath
	if target == "" {
		target = outputName(path)
	}
	if target == "-" {
		_, err = os.Stdout.Write(out.JSON)
	} else {
		err = os.WriteFile(target, out.JSON, 0o644)
	}
	return compileResult{path: path, out: out, err: err}
}

// outputName derives the sibling output path for an input spec.
func outputName(path string) string {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	return base + ".vg.json"
}
