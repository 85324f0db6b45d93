// File: flags.go
// Role: shared flag set and request-building glue for every subcommand.

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pangrowth/gfa"
	"github.com/katalvlaran/pangrowth/group"
	"github.com/katalvlaran/pangrowth/panacus"
	"github.com/katalvlaran/pangrowth/selectlist"
)

// commonFlags is shared by every subcommand that routes into panacus.Run.
type commonFlags struct {
	gfaPath string

	bySample    bool // -S
	byHaplotype bool // -H

	featureKind string // -c node|edge|bp|all

	coverageFloors string // -l, comma-separated, same length as quorums
	quorums        string // -q, comma-separated

	includePath string
	excludePath string
	orderPath   string

	workers int // -t

	outPath string // "" or "-" means stdout
}

func addCommonFlags(cmd *cobra.Command, cf *commonFlags) {
	cmd.Flags().StringVarP(&cf.gfaPath, "gfa", "g", "", "input GFA1 file (required)")
	cmd.Flags().BoolVarP(&cf.bySample, "sample", "S", false, "group by sample instead of by path")
	cmd.Flags().BoolVarP(&cf.byHaplotype, "haplotype", "H", false, "group by sample#haplotype instead of by path")
	cmd.Flags().StringVarP(&cf.featureKind, "count", "c", "all", "feature kind: node|edge|bp|all")
	cmd.Flags().StringVarP(&cf.coverageFloors, "coverage-floor", "l", "", "comma-separated coverage-floor thresholds, paired with -q")
	cmd.Flags().StringVarP(&cf.quorums, "quorum", "q", "", "comma-separated quorum fractions, paired with -l")
	cmd.Flags().StringVar(&cf.includePath, "include", "", "path selection file: only these paths are eligible")
	cmd.Flags().StringVar(&cf.excludePath, "exclude", "", "path selection file: these paths are never eligible")
	cmd.Flags().StringVar(&cf.orderPath, "order", "", "group-order file: numbers listed groups first")
	cmd.Flags().IntVarP(&cf.workers, "threads", "t", 1, "worker pool size for the abundance build")
	cmd.Flags().StringVarP(&cf.outPath, "out", "o", "-", "output path, or - for stdout")
	_ = cmd.MarkFlagRequired("gfa")
}

// featureSelection maps -c to the feature classes Run computes. "bp"
// selects the bp-length-weighted node growth curve (panacus.BP),
// distinct from "node"'s unit-count-weighted curve; the coverage
// histogram always reports both node.count and node.bp regardless of
// -c, via reportio.WriteHistogram's node.bp column.
func (cf commonFlags) featureSelection() (panacus.FeatureKind, error) {
	switch cf.featureKind {
	case "node":
		return panacus.Nodes, nil
	case "bp":
		return panacus.BP, nil
	case "edge":
		return panacus.Edges, nil
	case "all", "":
		return panacus.Nodes | panacus.Edges, nil
	default:
		return 0, fmt.Errorf("unrecognized -c value %q (want node|edge|bp|all)", cf.featureKind)
	}
}

func (cf commonFlags) groupMode() group.Mode {
	switch {
	case cf.bySample:
		return group.BySample
	case cf.byHaplotype:
		return group.ByHaplotype
	default:
		return group.ByPath
	}
}

func (cf commonFlags) thresholdPairs() ([]panacus.ThresholdPair, error) {
	if cf.coverageFloors == "" && cf.quorums == "" {
		return nil, nil
	}
	ls := splitNonEmpty(cf.coverageFloors)
	qs := splitNonEmpty(cf.quorums)
	if len(ls) != len(qs) {
		return nil, fmt.Errorf("%w: -l has %d entries, -q has %d", panacus.ErrThresholdShapeMismatch, len(ls), len(qs))
	}
	pairs := make([]panacus.ThresholdPair, len(ls))
	for i := range ls {
		l, err := strconv.Atoi(strings.TrimSpace(ls[i]))
		if err != nil {
			return nil, fmt.Errorf("bad -l entry %q: %w", ls[i], err)
		}
		q, err := strconv.ParseFloat(strings.TrimSpace(qs[i]), 64)
		if err != nil {
			return nil, fmt.Errorf("bad -q entry %q: %w", qs[i], err)
		}
		pairs[i] = panacus.ThresholdPair{CoverageFloor: l, Quorum: q}
	}
	return pairs, nil
}

func splitNonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func (cf commonFlags) loadSelectionFile(path string) (map[string]bool, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return selectlist.ReadSet(f)
}

func (cf commonFlags) loadOrderFile() ([]string, error) {
	if cf.orderPath == "" {
		return nil, nil
	}
	f, err := os.Open(cf.orderPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return selectlist.Read(f)
}

func (cf commonFlags) parseGraph() (*gfa.Graph, []gfa.Warning, error) {
	f, err := os.Open(cf.gfaPath)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return gfa.Parse(f)
}

// buildRequest turns commonFlags into a panacus.Request.
func (cf commonFlags) buildRequest(extra ...panacus.Option) (panacus.Request, error) {
	features, err := cf.featureSelection()
	if err != nil {
		return panacus.Request{}, err
	}
	include, err := cf.loadSelectionFile(cf.includePath)
	if err != nil {
		return panacus.Request{}, err
	}
	exclude, err := cf.loadSelectionFile(cf.excludePath)
	if err != nil {
		return panacus.Request{}, err
	}
	order, err := cf.loadOrderFile()
	if err != nil {
		return panacus.Request{}, err
	}
	thresholds, err := cf.thresholdPairs()
	if err != nil {
		return panacus.Request{}, err
	}

	opts := []panacus.Option{
		panacus.WithGroupMode(cf.groupMode()),
		panacus.WithFeatures(features),
		panacus.WithInclude(include),
		panacus.WithExclude(exclude),
		panacus.WithOrder(order),
		panacus.WithWorkers(cf.workers),
	}
	if thresholds != nil {
		opts = append(opts, panacus.WithThresholds(thresholds))
	}
	opts = append(opts, extra...)
	return panacus.NewRequest(opts...), nil
}

func (cf commonFlags) openOutput() (*os.File, error) {
	if cf.outPath == "" || cf.outPath == "-" {
		return os.Stdout, nil
	}
	return os.Create(cf.outPath)
}
