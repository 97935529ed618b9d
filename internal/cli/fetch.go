package cli

import (
	"github.com/molvath/topochem/pubchem"
	"github.com/molvath/topochem/store"
	"github.com/spf13/cobra"
)

var (
	fetchOut       string
	fetchNamesFile string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [name...]",
	Short: "Retrieve bond connectivity from PubChem into a JSON document",
	Long: `Fetch queries PubChem for each compound's bond-edge list and writes
the results to a JSON edge-relations document. Compounds that cannot be
resolved are recorded with an error marker instead of aborting the sweep.

Examples:
  topochem fetch
  topochem fetch afatinib "mitomycin c" --out edges.json
  topochem fetch --names-file drugs.yaml`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchOut, "out", "o", "edge_relations.json", "output document path")
	fetchCmd.Flags().StringVar(&fetchNamesFile, "names-file", "", "YAML file listing compound names")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	names, err := resolveNames(args, fetchNamesFile)
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

	if err = store.Save(fetchOut, src); err != nil {
		return err
	}
	logger.Info("edge relations saved", "path", fetchOut)

	return nil
}
