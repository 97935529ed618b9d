package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultDrugs is the built-in compound list, used when neither
// positional names nor --names-file are given.
var defaultDrugs = []string{
	"afatinib", "alpelisib", "anastrozole", "busulfan", "dasatinib",
	"daunorubicin", "erdafitinib", "melphalan", "mitomycin c",
	"nilotinib", "olaparib", "orgovyx", "plerixafor", "prednisone",
	"zanubrutinib", "belinostat", "bortezomib", "carmustine", "flutamide",
	"futibatinib", "granisetron", "ibrutinib", "lenalidomide",
	"lomustine", "midostaurin", "olutasidenib", "pomalidomide",
	"pralatrexate", "repotrectinib", "ribociclib",
}

// namesFile is the YAML shape accepted by --names-file:
//
//	drugs:
//	  - afatinib
//	  - mitomycin c
type namesFile struct {
	Drugs []string `yaml:"drugs"`
}

// resolveNames picks the compound list: positional args win, then the
// YAML names file, then the built-in default list.
func resolveNames(args []string, path string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if path != "" {
		return loadNamesFile(path)
	}

	return defaultDrugs, nil
}

// loadNamesFile parses a YAML names file; a bare list of strings is
// accepted as well as the {drugs: [...]} form.
func loadNamesFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read names file: %w", err)
	}

	var plain []string
	if err = yaml.Unmarshal(data, &plain); err == nil && len(plain) > 0 {
		return plain, nil
	}

	var nf namesFile
	if err = yaml.Unmarshal(data, &nf); err != nil {
		return nil, fmt.Errorf("parse names file: %w", err)
	}
	if len(nf.Drugs) == 0 {
		return nil, fmt.Errorf("names file %q lists no drugs", path)
	}

	return nf.Drugs, nil
}
