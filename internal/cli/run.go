package cli

import (
	"github.com/molvath/topochem/batch"
	"github.com/molvath/topochem/pubchem"
	"github.com/molvath/topochem/report"
	"github.com/molvath/topochem/store"
	"github.com/spf13/cobra"
)

var (
	runJSONOut   string
	runXLSXOut   string
	runNamesFile string
	runWorkers   int
)

var runCmd = &cobra.Command{
	Use:   "run [name...]",
	Short: "Fetch connectivity and compute indices end to end",
	Long: `Run performs the whole pipeline: retrieve each compound's bond list
from PubChem, persist the edge-relations document, compute the ten
topological indices, and export the spreadsheet.

Examples:
  topochem run
  topochem run --json edges.json --xlsx indices.xlsx --workers 4`,
	RunE: runPipeline,
}

func init() {
	runCmd.Flags().StringVar(&runJSONOut, "json", "edge_relations.json", "edge-relations document path")
	runCmd.Flags().StringVar(&runXLSXOut, "xlsx", "drug_indices.xlsx", "output spreadsheet path")
	runCmd.Flags().StringVar(&runNamesFile, "names-file", "", "YAML file listing compound names")
	runCmd.Flags().IntVar(&runWorkers, "workers", 0, "concurrent computations (0 = config default)")
	rootCmd.AddCommand(runCmd)
}

func runPipeline(cmd *cobra.Command, args []string) error {
	names, err := resolveNames(args, runNamesFile)
	if err != nil {
		return err
	}

	client := pubchem.New(
		pubchem.WithBaseURL(cfg.PubChemURL),
		pubchem.WithTimeout(cfg.HTTPTimeout),
		pubchem.WithLogger(logger),
	)

	logger.Info("fetching edge relations", "compounds", len(names))
	src := client.FetchAll(cmd.Context(), names)
	if err = store.Save(runJSONOut, src); err != nil {
		return err
	}
	logger.Info("edge relations saved", "path", runJSONOut)

	workers := cfg.Workers
	if runWorkers > 0 {
		workers = runWorkers
	}
	rep, err := batch.Aggregate(cmd.Context(), names, src, &batch.Options{Workers: workers})
	if err != nil {
		return err
	}

	if err = report.WriteXLSX(runXLSXOut, rep); err != nil {
		return err
	}
	logger.Info("drug indices saved", "path", runXLSXOut)

	return nil
}
