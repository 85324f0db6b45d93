// File: parser.go
// Role: line-oriented GFA1 reader (S/L/P/W records) -> gfa.Graph.
// Determinism: segments, paths and edges are interned in line order;
//   re-parsing the same bytes always yields the same dense ids.
// Concurrency: single-threaded by construction (ingest happens before any
//   worker pool is dispatched, per spec §5 "populated single-threaded
//   before worker dispatch").

package gfa

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/pangrowth/core"
)

const maxLineBytes = 64 * 1024 * 1024 // walks over whole-genome paths can be long

// Parse reads a GFA1 byte stream and returns the resulting Graph along with
// any recoverable Warnings. A non-nil error is always fatal (spec §7):
// MalformedInput, ErrUnknownSegment (an L-record referencing a segment not
// yet seen), ErrMalformedStep, or ErrBluntnessViolated.
func Parse(r io.Reader) (*Graph, []Warning, error) {
	lg := core.NewLinkGraph()
	g := &Graph{LinkGraph: lg}
	var warnings []Warning

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	var offset int64
	for sc.Scan() {
		line := sc.Text()
		lineOffset := offset
		offset += int64(len(line)) + 1 // account for the newline Scanner strips

		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		var err error
		switch fields[0] {
		case "S":
			err = parseSegment(lg, fields, lineOffset)
		case "L":
			err = parseLink(lg, fields, lineOffset)
		case "P":
			err = parsePath(lg, g, fields, lineOffset, &warnings)
		case "W":
			err = parseWalk(lg, g, fields, lineOffset, &warnings)
		default:
			// Unrecognized record types (H, C, comments, future tags) are
			// ignored rather than fatal; only the four recognized record
			// types participate in the counting engine.
		}
		if err != nil {
			return nil, warnings, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, warnings, fmt.Errorf("gfa: scan failed: %w", err)
	}

	lg.Freeze()
	return g, warnings, nil
}

func parseSegment(lg *core.LinkGraph, fields []string, offset int64) error {
	if len(fields) < 3 {
		return malformedf(offset, "S record needs at least 3 fields, got %d", len(fields))
	}
	name, seq := fields[1], fields[2]

	var length int32
	if seq != "*" {
		length = int32(len(seq))
	} else {
		found := false
		for _, tag := range fields[3:] {
			if n, ok := strings.CutPrefix(tag, "LN:i:"); ok {
				v, err := strconv.Atoi(n)
				if err != nil {
					return malformedf(offset, "bad LN:i: tag %q", tag)
				}
				length = int32(v)
				found = true
				break
			}
		}
		if !found {
			return malformedf(offset, "segment %q has no sequence and no LN:i: tag", name)
		}
	}

	_, err := lg.AddSegment(name, length)
	if err != nil {
		return wrapWithOffset(err, offset)
	}
	return nil
}

// wrapWithOffset attaches a byte offset to a sentinel error from core
// while preserving errors.Is against the original sentinel.
func wrapWithOffset(err error, offset int64) error {
	return fmt.Errorf("gfa: %w (byte %d)", err, offset)
}

func signFromToken(tok string) (core.Sign, error) {
	switch tok {
	case "+":
		return core.Forward, nil
	case "-":
		return core.Reverse, nil
	default:
		return 0, core.ErrMalformedStep
	}
}

func parseLink(lg *core.LinkGraph, fields []string, offset int64) error {
	if len(fields) < 6 {
		return malformedf(offset, "L record needs at least 6 fields, got %d", len(fields))
	}
	ou, err := signFromToken(fields[2])
	if err != nil {
		return wrapWithOffset(err, offset)
	}
	ov, err := signFromToken(fields[4])
	if err != nil {
		return wrapWithOffset(err, offset)
	}
	fromSide := core.Step{Sign: ou}.ExitSide()
	toSide := core.Step{Sign: ov}.EntrySide()

	if _, err := lg.AddLink(fields[1], fromSide, fields[3], toSide, fields[5]); err != nil {
		return wrapWithOffset(err, offset)
	}
	return nil
}

func parsePath(lg *core.LinkGraph, g *Graph, fields []string, offset int64, warnings *[]Warning) error {
	if len(fields) < 3 {
		return malformedf(offset, "P record needs at least 3 fields, got %d", len(fields))
	}
	name, steps := fields[1], fields[2]

	id, err := lg.AddPath(name)
	if err != nil {
		if err == core.ErrDuplicatePath {
			*warnings = append(*warnings, Warning{Offset: offset, Reason: fmt.Sprintf("duplicate path %q skipped", name)})
			return nil
		}
		return wrapWithOffset(err, offset)
	}
	appendPathRecord(g, id, PathRecord{Name: name, Encoding: PLineEncoding, Steps: steps})
	return nil
}

func parseWalk(lg *core.LinkGraph, g *Graph, fields []string, offset int64, warnings *[]Warning) error {
	if len(fields) < 7 {
		return malformedf(offset, "W record needs at least 7 fields, got %d", len(fields))
	}
	sample, hap, contig, walk := fields[1], fields[2], fields[3], fields[6]
	name := sample + "#" + hap + "#" + contig

	id, err := lg.AddPath(name)
	if err != nil {
		if err == core.ErrDuplicatePath {
			*warnings = append(*warnings, Warning{Offset: offset, Reason: fmt.Sprintf("duplicate path %q skipped", name)})
			return nil
		}
		return wrapWithOffset(err, offset)
	}
	appendPathRecord(g, id, PathRecord{Name: name, Encoding: WLineEncoding, Steps: walk})
	return nil
}

// appendPathRecord grows g.PathRecords so that it stays indexed by dense
// path id even though Parse discovers ids in file order interleaved with
// other record types.
func appendPathRecord(g *Graph, id int32, rec PathRecord) {
	for int32(len(g.PathRecords)) <= id {
		g.PathRecords = append(g.PathRecords, PathRecord{})
	}
	g.PathRecords[id] = rec
}
