// Copyright 2026 The Tabsyn Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/irifrance/tabsyn/gate"
	"github.com/irifrance/tabsyn/metrics"
	"github.com/irifrance/tabsyn/synth"
	"github.com/irifrance/tabsyn/tabio"
)

var (
	searchInputArgs   string
	searchOutputArgs  string
	searchGatesArgs   string
	searchJobArgs     string
	searchMetricsArgs string
	searchPprofArgs   string

	searchMaxComplexity int
	searchPoolCap       int
	searchContinue      int
	searchMaxAlt        int
	searchWorkers       int
	searchNoPrune       bool
)

// A jobSpec mirrors the search flags as a YAML document, so repeated
// runs can be kept in a file.  Fields present in the file override
// the corresponding flags.
type jobSpec struct {
	Input         string `yaml:"input"`
	Output        string `yaml:"output"`
	Gates         string `yaml:"gates"`
	MaxComplexity int    `yaml:"maxComplexity"`
	PoolCap       int    `yaml:"poolCapPerLevel"`
	Continue      int    `yaml:"continueLevels"`
	MaxAlt        int    `yaml:"maxAltPerTarget"`
	Workers       int    `yaml:"workers"`
	NoPrune       bool   `yaml:"noPrune"`
}

func newSearchCmd() *cobra.Command {
	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Search for circuits computing target truth tables",
		Long: `The tabsyn search command loads an input table, a target output
        table and optionally a gate list, then searches level by level for
        gate networks computing every target column, sharing structure
        between them.

        $ tabsyn search -i I-O/input.csv -o I-O/output.csv -g I-O/gates_list.csv
        `,
		RunE: searchFunc,
	}

	searchCmd.Flags().StringVarP(&searchInputArgs, "input", "i", "", "CSV file of input columns.")
	searchCmd.Flags().StringVarP(&searchOutputArgs, "output", "o", "", "CSV file of target output columns.")
	searchCmd.Flags().StringVarP(&searchGatesArgs, "gates", "g", "", "CSV gate list (gate_name,num_inputs,cost). Default: all standard gates at cost 1.")
	searchCmd.Flags().StringVarP(&searchJobArgs, "job", "j", "", "YAML job file overriding the other flags.")
	searchCmd.Flags().StringVar(&searchMetricsArgs, "metrics", "", "address to serve prometheus metrics (eg :2112)")
	searchCmd.Flags().StringVar(&searchPprofArgs, "pprof", "", "address to serve http profile (eg :6060)")

	searchCmd.Flags().IntVar(&searchMaxComplexity, "max-complexity", 8, "complexity level ceiling")
	searchCmd.Flags().IntVar(&searchPoolCap, "pool-cap", 0, "cap on new signals kept per level, 0 for no cap")
	searchCmd.Flags().IntVar(&searchContinue, "continue-levels", 0, "extra levels to search after all outputs are matched")
	searchCmd.Flags().IntVar(&searchMaxAlt, "max-alt", 16, "alternative realizations kept per target")
	searchCmd.Flags().IntVar(&searchWorkers, "workers", 1, "parallel workers per level")
	searchCmd.Flags().BoolVar(&searchNoPrune, "no-prune", false, "disable candidate pruning")

	return searchCmd
}

func applyJob(path string) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var job jobSpec
	if err := yaml.UnmarshalStrict(buf, &job); err != nil {
		return err
	}
	if job.Input != "" {
		searchInputArgs = job.Input
	}
	if job.Output != "" {
		searchOutputArgs = job.Output
	}
	if job.Gates != "" {
		searchGatesArgs = job.Gates
	}
	if job.MaxComplexity != 0 {
		searchMaxComplexity = job.MaxComplexity
	}
	if job.PoolCap != 0 {
		searchPoolCap = job.PoolCap
	}
	if job.Continue != 0 {
		searchContinue = job.Continue
	}
	if job.MaxAlt != 0 {
		searchMaxAlt = job.MaxAlt
	}
	if job.Workers != 0 {
		searchWorkers = job.Workers
	}
	if job.NoPrune {
		searchNoPrune = true
	}
	return nil
}

func loadLib() (*gate.Lib, error) {
	if searchGatesArgs == "" {
		return gate.StdLib(), nil
	}
	f, err := os.Open(searchGatesArgs)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tabio.ReadGates(f, gate.StdLib())
}

func searchFunc(cmd *cobra.Command, args []string) error {
	if searchJobArgs != "" {
		if err := applyJob(searchJobArgs); err != nil {
			return err
		}
	}
	if searchInputArgs == "" || searchOutputArgs == "" {
		return fmt.Errorf("both --input and --output are required")
	}
	if searchPprofArgs != "" {
		go func() {
			log.Error(http.ListenAndServe(searchPprofArgs, nil))
		}()
	}

	inF, err := os.Open(searchInputArgs)
	if err != nil {
		return err
	}
	_, inputs, err := tabio.ReadTable(inF)
	inF.Close()
	if err != nil {
		return fmt.Errorf("%s: %s", searchInputArgs, err)
	}

	outF, err := os.Open(searchOutputArgs)
	if err != nil {
		return err
	}
	outNames, targets, err := tabio.ReadTable(outF)
	outF.Close()
	if err != nil {
		return fmt.Errorf("%s: %s", searchOutputArgs, err)
	}

	lib, err := loadLib()
	if err != nil {
		return fmt.Errorf("%s: %s", searchGatesArgs, err)
	}
	log.WithFields(log.Fields{
		"inputs":  len(inputs),
		"outputs": len(outNames),
		"gates":   lib.Len(),
	}).Debug("loaded tables")

	opts := synth.Options{
		MaxComplexity:   searchMaxComplexity,
		PoolCapPerLevel: searchPoolCap,
		ContinueLevels:  searchContinue,
		MaxAltPerTarget: searchMaxAlt,
		Workers:         searchWorkers,
		DisablePrune:    searchNoPrune,
		Logger:          log.StandardLogger(),
	}
	if searchMetricsArgs != "" {
		reg := prometheus.NewRegistry()
		if err := metrics.Register(reg); err != nil {
			return err
		}
		obs := metrics.NewObserver()
		opts.Progress = obs.Observe
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			log.Error(http.ListenAndServe(searchMetricsArgs, mux))
		}()
	}

	r, err := synth.SearchMulti(cmd.Context(), inputs, targets, lib, opts)
	if err != nil {
		return err
	}
	found := false
	for _, name := range outNames {
		s := r.Outputs[name]
		if s.State != synth.Found {
			fmt.Printf("%s: no solution\n", name)
			continue
		}
		found = true
		fmt.Printf("%s: %s [complexity=%d]\n", name, r.Expr(name), s.Level)
	}
	if !found {
		fmt.Println("No solution found. Try increasing --max-complexity or adding more gates.")
		return nil
	}
	fmt.Printf("\nCombined Complexity: %d\n", r.TotalCost)
	return nil
}
