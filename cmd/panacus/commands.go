// File: commands.go
// Role: the hist/growth/histgrowth/ordered-histgrowth/table/info/report
//   subcommands, each building one panacus.Request and rendering one
//   reportio section (or, for info/report, its own small summary).

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pangrowth/panacus"
	"github.com/katalvlaran/pangrowth/reportcfg"
	"github.com/katalvlaran/pangrowth/reportio"
	"github.com/katalvlaran/pangrowth/selectlist"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "panacus",
		Short: "Pangenome graph coverage and growth counting engine",
	}
	root.AddCommand(
		newHistCmd(),
		newGrowthCmd(),
		newHistGrowthCmd(),
		newOrderedHistGrowthCmd(),
		newTableCmd(),
		newInfoCmd(),
		newReportCmd(),
	)
	return root
}

func runAndOpen(cf commonFlags, extra ...panacus.Option) (*panacus.Result, *os.File, error) {
	g, _, err := cf.parseGraph()
	if err != nil {
		return nil, nil, err
	}
	req, err := cf.buildRequest(extra...)
	if err != nil {
		return nil, nil, err
	}
	res, _, err := panacus.Run(context.Background(), g, req)
	if err != nil {
		return nil, nil, err
	}
	out, err := cf.openOutput()
	if err != nil {
		return nil, nil, err
	}
	return res, out, nil
}

func newHistCmd() *cobra.Command {
	var cf commonFlags
	cmd := &cobra.Command{
		Use:   "hist",
		Short: "Write the coverage histogram as TSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, out, err := runAndOpen(cf)
			if err != nil {
				return err
			}
			defer closeIfFile(out)
			return reportio.WriteHistogram(out, res)
		},
	}
	addCommonFlags(cmd, &cf)
	return cmd
}

func newGrowthCmd() *cobra.Command {
	var cf commonFlags
	cmd := &cobra.Command{
		Use:   "growth",
		Short: "Write the expected growth curve as TSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, out, err := runAndOpen(cf)
			if err != nil {
				return err
			}
			defer closeIfFile(out)
			return reportio.WriteGrowth(out, res)
		},
	}
	addCommonFlags(cmd, &cf)
	return cmd
}

func newHistGrowthCmd() *cobra.Command {
	var cf commonFlags
	cmd := &cobra.Command{
		Use:   "histgrowth",
		Short: "Write both the histogram and the growth curve as TSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, out, err := runAndOpen(cf)
			if err != nil {
				return err
			}
			defer closeIfFile(out)
			if err := reportio.WriteHistogram(out, res); err != nil {
				return err
			}
			fmt.Fprintln(out)
			return reportio.WriteGrowth(out, res)
		},
	}
	addCommonFlags(cmd, &cf)
	return cmd
}

func newOrderedHistGrowthCmd() *cobra.Command {
	var cf commonFlags
	var permutationPath string
	cmd := &cobra.Command{
		Use:   "ordered-histgrowth",
		Short: "Write the observed growth curve along one fixed group order",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := cf.parseGraph()
			if err != nil {
				return err
			}
			req, err := cf.buildRequest()
			if err != nil {
				return err
			}
			// A dry Run resolves groups so we can translate the
			// permutation file's names into dense group ids.
			dry, _, err := panacus.Run(context.Background(), g, req)
			if err != nil {
				return err
			}
			perm, err := resolvePermutation(permutationPath, dry.GroupNames)
			if err != nil {
				return err
			}

			req, err = cf.buildRequest(panacus.WithPermutation(perm))
			if err != nil {
				return err
			}
			res, _, err := panacus.Run(context.Background(), g, req)
			if err != nil {
				return err
			}
			out, err := cf.openOutput()
			if err != nil {
				return err
			}
			defer closeIfFile(out)
			return reportio.WriteGrowth(out, res)
		},
	}
	addCommonFlags(cmd, &cf)
	cmd.Flags().StringVar(&permutationPath, "permutation", "", "group-name file giving the fixed visiting order (default: dense-id order)")
	return cmd
}

func resolvePermutation(path string, groupNames []string) ([]int32, error) {
	if path == "" {
		perm := make([]int32, len(groupNames))
		for i := range perm {
			perm[i] = int32(i)
		}
		return perm, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	names, err := selectlist.Read(f)
	if err != nil {
		return nil, err
	}
	index := make(map[string]int32, len(groupNames))
	for i, n := range groupNames {
		index[n] = int32(i)
	}
	perm := make([]int32, 0, len(names))
	for _, n := range names {
		id, ok := index[n]
		if !ok {
			return nil, fmt.Errorf("permutation file names unknown group %q", n)
		}
		perm = append(perm, id)
	}
	return perm, nil
}

func newTableCmd() *cobra.Command {
	var cf commonFlags
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Write per-group node/edge counts as TSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, out, err := runAndOpen(cf)
			if err != nil {
				return err
			}
			defer closeIfFile(out)
			return reportio.WriteTable(out, res)
		},
	}
	addCommonFlags(cmd, &cf)
	return cmd
}

func newInfoCmd() *cobra.Command {
	var cf commonFlags
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print basic graph and group statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, warnings, err := cf.parseGraph()
			if err != nil {
				return err
			}
			req, err := cf.buildRequest()
			if err != nil {
				return err
			}
			res, runWarnings, err := panacus.Run(context.Background(), g, req)
			if err != nil {
				return err
			}
			out, err := cf.openOutput()
			if err != nil {
				return err
			}
			defer closeIfFile(out)

			fmt.Fprintf(out, "segments\t%d\n", g.Segments.Len())
			fmt.Fprintf(out, "links\t%d\n", g.LinkCount())
			fmt.Fprintf(out, "paths\t%d\n", g.Paths.Len())
			fmt.Fprintf(out, "groups\t%d\n", res.Table.NumGroups)
			for _, w := range warnings {
				fmt.Fprintf(out, "warning\t%s\n", w.String())
			}
			for _, w := range runWarnings {
				fmt.Fprintf(out, "warning\t%s\n", w.Reason)
			}
			return nil
		},
	}
	addCommonFlags(cmd, &cf)
	return cmd
}

func newReportCmd() *cobra.Command {
	var cf commonFlags
	var configPath string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the sections named by a YAML report configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, err := os.Open(configPath)
			if err != nil {
				return err
			}
			defer cfgFile.Close()
			cfg, err := reportcfg.Load(cfgFile)
			if err != nil {
				return err
			}

			res, out, err := runAndOpen(cf)
			if err != nil {
				return err
			}
			defer closeIfFile(out)

			if cfg.Wants(reportcfg.SectionHistogram) {
				if err := reportio.WriteHistogram(out, res); err != nil {
					return err
				}
				fmt.Fprintln(out)
			}
			if cfg.Wants(reportcfg.SectionGrowth) {
				if err := reportio.WriteGrowth(out, res); err != nil {
					return err
				}
				fmt.Fprintln(out)
			}
			if cfg.Wants(reportcfg.SectionTable) {
				if err := reportio.WriteTable(out, res); err != nil {
					return err
				}
			}
			return nil
		},
	}
	addCommonFlags(cmd, &cf)
	cmd.Flags().StringVar(&configPath, "config", "", "report configuration YAML file (required)")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func closeIfFile(f *os.File) {
	if f != os.Stdout {
		_ = f.Close()
	}
}
