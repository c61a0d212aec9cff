// Command enumgen derives the Enumerated contract for closed Go enums.
//
// For every requested type it emits Position, Len, Variants and String
// methods, assigning each variant the dense position equal to its zero-based
// declaration index. Types whose constants are not a contiguous, duplicate-
// free run from zero — or whose underlying type is not an integer — are
// rejected before any code is written.
//
// Usage:
//
//	enumgen -type Letter,Weekday [-output file.go] [-v] [dir]
//
// The directory defaults to ".". The output file defaults to
// <package>_enumerated.go in the target directory. Intended to be driven by
// go:generate:
//
//	//go:generate go run github.com/SpecificProtagonist/enum-collections/cmd/enumgen -type Letter
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	typeArg := flag.String("type", "", "comma-separated list of enum type names (required)")
	output := flag.String("output", "", "output file name; defaults to <package>_enumerated.go in the target directory")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	if *typeArg == "" {
		logger.Error("missing required -type flag")
		flag.Usage()
		os.Exit(2)
	}
	typeNames := strings.Split(*typeArg, ",")
	for i := range typeNames {
		typeNames[i] = strings.TrimSpace(typeNames[i])
	}

	dir := "."
	if flag.NArg() > 0 {
		dir = flag.Arg(0)
	}

	if err := run(logger, dir, typeNames, *typeArg, *output); err != nil {
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, dir string, typeNames []string, typeArg, output string) error {
	logger.Debug("parsing package", "dir", dir, "types", typeNames)

	pkg, err := ParsePackage(dir, typeNames)
	if err != nil {
		return err
	}
	for _, enum := range pkg.Enums {
		logger.Debug("accepted enum", "type", enum.Name, "variants", len(enum.Variants))
	}

	src, err := Generate(pkg, typeArg)
	if err != nil {
		return err
	}

	if output == "" {
		output = filepath.Join(dir, pkg.Name+"_enumerated.go")
	}
	if err := os.WriteFile(output, src, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	logger.Info("wrote contract implementation", "file", output, "types", len(pkg.Enums))
	return nil
}
