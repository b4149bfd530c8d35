// Copyright 2026 The Tabsyn Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/irifrance/tabsyn/gate"
	"github.com/irifrance/tabsyn/gen"
	"github.com/irifrance/tabsyn/tabio"
	"github.com/irifrance/tabsyn/tt"
)

var (
	genFileArgs string
	genDirArgs  string
)

func newGenCmd() *cobra.Command {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate truth tables from circuit expressions",
		Long: `The tabsyn gen command reads a circuit file, one expression per
        line, optionally named "Name : EXPR", evaluates each over every
        assignment of its input variables and writes input.csv and
        output.csv.  A file starting with "NO OUTPUTS" lists variable names
        instead and produces input.csv only.

        $ tabsyn gen -f circuit.txt -d I-O
        `,
		RunE: genFunc,
	}

	genCmd.Flags().StringVarP(&genFileArgs, "file", "f", "", "The circuit expression file.")
	if err := genCmd.MarkFlagRequired("file"); err != nil {
		log.Fatalf("Failed to mark `file` flag for `gen` subcommand as required")
	}
	genCmd.Flags().StringVarP(&genDirArgs, "dir", "d", "I-O", "Directory to write input.csv and output.csv.")

	return genCmd
}

func genFunc(cmd *cobra.Command, args []string) error {
	f, err := os.Open(genFileArgs)
	if err != nil {
		return err
	}
	spec, err := gen.ParseFile(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %s", genFileArgs, err)
	}

	tables, err := gen.Generate(spec, gate.StdLib())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(genDirArgs, 0755); err != nil {
		return err
	}
	inPath := filepath.Join(genDirArgs, "input.csv")
	if err := writeCsv(inPath, tables.InNames, tables.Inputs); err != nil {
		return err
	}
	fmt.Printf("Generated %s\n", inPath)

	if spec.InputsOnly {
		fmt.Println("No output.csv created (input generation only)")
		return nil
	}
	outPath := filepath.Join(genDirArgs, "output.csv")
	if err := writeCsv(outPath, tables.OutNames, tables.Outputs); err != nil {
		return err
	}
	fmt.Printf("Generated %s\n", outPath)
	return nil
}

func writeCsv(path string, names []string, cols map[string]tt.Vec) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return tabio.WriteTable(f, names, cols)
}
