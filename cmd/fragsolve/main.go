// Command fragsolve reads a contest problem file, reconstructs the
// shuffled image's original layout, resolves that layout into a legal
// sequence of select/swap operations, and writes the contest answer
// format to disk — the same pipeline original_source/src/bin/offline.rs
// drives, minus the HTTP fetch/submit step and the SDL2 GUI hint editor
// (both out of scope per spec.md's Non-goals).
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/tilecraft/fragsolve/answer"
	"github.com/tilecraft/fragsolve/basis"
	"github.com/tilecraft/fragsolve/fragment"
	"github.com/tilecraft/fragsolve/grid"
	"github.com/tilecraft/fragsolve/internal/logging"
	"github.com/tilecraft/fragsolve/moveresolve"
	"github.com/tilecraft/fragsolve/pixelmatch"
	"github.com/tilecraft/fragsolve/ppm"
)

func main() {
	log := logging.New(os.Stderr, "fragsolve", slog.LevelInfo)

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: fragsolve <problem-file>")
		os.Exit(1)
	}

	if err := run(log, os.Args[1]); err != nil {
		log.Error("fragsolve failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(log *slog.Logger, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening problem file: %w", err)
	}
	defer f.Close()

	problem, err := ppm.Read(f)
	if err != nil {
		return fmt.Errorf("reading problem: %w", err)
	}
	log.Info("problem read",
		slog.Int("rows", int(problem.Rows)),
		slog.Int("cols", int(problem.Cols)),
		slog.Int("select_limit", int(problem.SelectLimit)))

	g := grid.New(problem.Rows, problem.Cols)
	fragments := fragment.NewAll(problem.Image.Pixels, problem.Image.Width, problem.Image.Height, problem.Rows, problem.Cols)

	matched, _ := pixelmatch.Resolve(fragments, g, nil)
	log.Info("pixel match resolved")

	rotations := make([]basis.Rot, 0, int(g.Width)*int(g.Height))
	positions := g.AllPos()
	for {
		p, ok := positions.Next()
		if !ok {
			break
		}
		rotations = append(rotations, matched.Get(p).Rot)
	}

	movements := fragment.MapFragment(matched)

	param := moveresolve.ResolveParam{
		SelectLimit: problem.SelectLimit,
		SwapCost:    problem.SwapCost,
		SelectCost:  problem.SelectCost,
	}

	var best []basis.Operation
	for ops := range moveresolve.Resolve(g, movements, param) {
		best = ops
		break
	}
	log.Info("move resolve done", slog.Int("operations", len(best)))

	out := answer.Encode(rotations, problem.Rows, problem.Cols, best)
	outPath := path + ".answer"
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("writing answer: %w", err)
	}
	log.Info("answer written", slog.String("path", outPath))
	return nil
}
