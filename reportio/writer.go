// File: writer.go
// Role: flat TSV rendering of a panacus.Result, one function per report
//   kind so the CLI's hist/growth/table subcommands can each write just
//   the section they computed.

package reportio

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/katalvlaran/pangrowth/panacus"
)

func newTSVWriter(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	return cw
}

// WriteHistogram writes one row per coverage class k: k, node count, node
// bp, edge count.
func WriteHistogram(w io.Writer, res *panacus.Result) error {
	cw := newTSVWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"coverage", "node.count", "node.bp", "edge.count"}); err != nil {
		return err
	}
	h := res.Histogram
	for k := 0; k <= int(h.NumGroups); k++ {
		row := []string{
			strconv.Itoa(k),
			strconv.FormatInt(h.NodeCount[k], 10),
			strconv.FormatInt(h.NodeBP[k], 10),
			strconv.FormatInt(h.EdgeCount[k], 10),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}

// WriteGrowth writes one row per sample size n: n, expected node growth,
// expected edge growth, the bp-weighted node growth curve (when
// requested), one threshold-growth column triple per res.Thresholds
// entry (node/edge/bp), and (when present) the observed-ordered curves
// with their own threshold columns.
func WriteGrowth(w io.Writer, res *panacus.Result) error {
	cw := newTSVWriter(w)
	defer cw.Flush()

	hasBP := res.NodeBPGrowth != nil
	hasOrdered := res.OrderedNodeGrowth != nil || res.OrderedEdgeGrowth != nil
	hasOrderedThreshold := res.OrderedNodeThresholdGrowth != nil || res.OrderedEdgeThresholdGrowth != nil

	header := []string{"n", "node.growth", "edge.growth"}
	if hasBP {
		header = append(header, "node.growth.bp")
	}
	for i := range res.Thresholds {
		header = append(header, thresholdColumnName("node", i), thresholdColumnName("edge", i))
		if hasBP {
			header = append(header, thresholdColumnName("node.bp", i))
		}
	}
	if hasOrdered {
		header = append(header, "node.growth.ordered", "edge.growth.ordered")
		for i := range res.Thresholds {
			header = append(header, thresholdColumnName("node.ordered", i), thresholdColumnName("edge.ordered", i))
		}
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	n := len(res.NodeGrowth)
	if len(res.EdgeGrowth) > n {
		n = len(res.EdgeGrowth)
	}
	if len(res.NodeBPGrowth) > n {
		n = len(res.NodeBPGrowth)
	}
	for i := 0; i < n; i++ {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(valueAt(res.NodeGrowth, i), 'f', 4, 64),
			strconv.FormatFloat(valueAt(res.EdgeGrowth, i), 'f', 4, 64),
		}
		if hasBP {
			row = append(row, strconv.FormatFloat(valueAt(res.NodeBPGrowth, i), 'f', 4, 64))
		}
		for p := range res.Thresholds {
			row = append(row,
				strconv.FormatFloat(valueAt2D(res.NodeThresholdGrowth, p, i), 'f', 4, 64),
				strconv.FormatFloat(valueAt2D(res.EdgeThresholdGrowth, p, i), 'f', 4, 64),
			)
			if hasBP {
				row = append(row, strconv.FormatFloat(valueAt2D(res.NodeBPThresholdGrowth, p, i), 'f', 4, 64))
			}
		}
		if hasOrdered {
			row = append(row,
				strconv.FormatInt(int64At(res.OrderedNodeGrowth, i), 10),
				strconv.FormatInt(int64At(res.OrderedEdgeGrowth, i), 10),
			)
		}
		if hasOrderedThreshold {
			for p := range res.Thresholds {
				row = append(row,
					strconv.FormatInt(int64At2D(res.OrderedNodeThresholdGrowth, p, i), 10),
					strconv.FormatInt(int64At2D(res.OrderedEdgeThresholdGrowth, p, i), 10),
				)
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}

func thresholdColumnName(feature string, i int) string {
	return feature + ".growth.core" + strconv.Itoa(i)
}

// WriteTable writes one row per group: group name, distinct node count,
// distinct edge count.
func WriteTable(w io.Writer, res *panacus.Result) error {
	cw := newTSVWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"group", "node.count", "edge.count"}); err != nil {
		return err
	}
	t := res.Table
	for g := int32(0); g < t.NumGroups; g++ {
		row := []string{
			res.GroupNames[g],
			strconv.Itoa(t.GroupNodeCount(g)),
			strconv.Itoa(t.GroupEdgeCount(g)),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}

func valueAt(s []float64, i int) float64 {
	if i < len(s) {
		return s[i]
	}
	return 0
}

func int64At(s []int64, i int) int64 {
	if i < len(s) {
		return s[i]
	}
	return 0
}

func valueAt2D(s [][]float64, p, i int) float64 {
	if p < len(s) {
		return valueAt(s[p], i)
	}
	return 0
}

func int64At2D(s [][]int64, p, i int) int64 {
	if p < len(s) {
		return int64At(s[p], i)
	}
	return 0
}
