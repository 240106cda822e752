package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/costela/coniclp"
	"github.com/costela/coniclp/memback"
)

var (
	inPath  string
	outPath string
)

// problemFile is the on-disk description of a conic problem.
type problemFile struct {
	Objective       []float64         `json:"objective"`
	RHS             []float64         `json:"rhs"`
	Rows            int               `json:"rows"`
	Cols            int               `json:"cols"`
	Entries         []coniclp.Nonzero `json:"entries"`
	ConstraintCones []coniclp.Cone    `json:"constraint_cones"`
	VariableCones   []coniclp.Cone    `json:"variable_cones"`
}

var reformulateCmd = &cobra.Command{
	Use:   "reformulate",
	Short: "Reformulate a conic problem into an LP/QP model",
	Long: `Reads a conic problem from a JSON file, runs the reformulation and
prints a summary of the resulting LP/QP model. With --out, the full
model is written as JSON.`,
	RunE: runReformulate,
}

func init() {
	reformulateCmd.Flags().StringVar(&inPath, "in", "", "Conic problem JSON file (required)")
	reformulateCmd.Flags().StringVar(&outPath, "out", "", "Write the reformulated model as JSON to this file")

	reformulateCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(reformulateCmd)
}

func runReformulate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading problem: %w", err)
	}

	var pf problemFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return fmt.Errorf("parsing problem: %w", err)
	}

	a, err := coniclp.NewMatrixFromEntries(pf.Rows, pf.Cols, pf.Entries)
	if err != nil {
		return fmt.Errorf("building constraint matrix: %w", err)
	}

	backend := memback.New()
	model, err := coniclp.NewModel(backend)
	if err != nil {
		return err
	}

	slog.Debug("reformulating", "rows", pf.Rows, "cols", pf.Cols, "nonzeros", len(pf.Entries))

	if err := model.LoadConicProblem(pf.Objective, a, pf.RHS, pf.ConstraintCones, pf.VariableCones); err != nil {
		return fmt.Errorf("reformulating: %w", err)
	}

	fmt.Printf("variables:             %d (%d after padding)\n", model.NumVariables(), backend.Cols)
	fmt.Printf("linear rows:           %d (%d after padding)\n", model.NumConstraints(), backend.Rows)
	fmt.Printf("matrix nonzeros:       %d\n", len(backend.Entries))
	fmt.Printf("quadratic constraints: %d\n", len(backend.Quads))

	if outPath != "" {
		out, err := json.MarshalIndent(backend, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding model: %w", err)
		}
		if err := os.WriteFile(outPath, append(out, '\n'), 0o644); err != nil {
			return fmt.Errorf("writing model: %w", err)
		}
		slog.Info("model written", "path", outPath)
	}

	return nil
}
