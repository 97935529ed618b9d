package cli

import (
	"github.com/molvath/topochem/batch"
	"github.com/molvath/topochem/report"
	"github.com/molvath/topochem/store"
	"github.com/spf13/cobra"
)

var (
	computeIn        string
	computeOut       string
	computeNamesFile string
	computeWorkers   int
)

var computeCmd = &cobra.Command{
	Use:   "compute [name...]",
	Short: "Compute topological indices from a JSON document into a spreadsheet",
	Long: `Compute loads a previously fetched edge-relations document, computes the
ten topological indices for every requested compound, and writes the
rounded results to an xlsx table ordered by compound name. Compounds with
retrieval errors keep their error status and are excluded from the table.

Examples:
  topochem compute
  topochem compute --in edges.json --out indices.xlsx --workers 4`,
	RunE: runCompute,
}

func init() {
	computeCmd.Flags().StringVarP(&computeIn, "in", "i", "edge_relations.json", "input document path")
	computeCmd.Flags().StringVarP(&computeOut, "out", "o", "drug_indices.xlsx", "output spreadsheet path")
	computeCmd.Flags().StringVar(&computeNamesFile, "names-file", "", "YAML file listing compound names")
	computeCmd.Flags().IntVar(&computeWorkers, "workers", 0, "concurrent computations (0 = config default)")
	rootCmd.AddCommand(computeCmd)
}

func runCompute(cmd *cobra.Command, args []string) error {
	names, err := resolveNames(args, computeNamesFile)
	if err != nil {
		return err
	}

	src, err := store.Load(computeIn)
	if err != nil {
		return err
	}

	workers := cfg.Workers
	if computeWorkers > 0 {
		workers = computeWorkers
	}

	rep, err := batch.Aggregate(cmd.Context(), names, src, &batch.Options{Workers: workers})
	if err != nil {
		return err
	}

	var failed int
	for _, rec := range rep {
		if rec.Err != "" {
			failed++
			logger.Warn("compound skipped", "name", rec.Name, "error", rec.Err)
		}
	}
	logger.Info("indices computed", "compounds", len(rep), "failed", failed)

	if err = report.WriteXLSX(computeOut, rep); err != nil {
		return err
	}
	logger.Info("drug indices saved", "path", computeOut)

	return nil
}
