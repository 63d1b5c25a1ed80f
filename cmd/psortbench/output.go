// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/olekukonko/tablewriter"

	"github.com/ajroetker/go-psort/psort/contrib/bench"
)

func writeTable(w io.Writer, r *bench.Report) error {
	fmt.Fprintf(w, "%s/%s, %d CPUs, GOMAXPROCS=%d", r.Host.GOOS, r.Host.GOARCH, r.Host.NumCPU, r.Host.GOMAXPROCS)
	if len(r.Host.Features) > 0 {
		fmt.Fprintf(w, " [%s]", strings.Join(r.Host.Features, " "))
	}
	fmt.Fprintf(w, "\n%d elements, %d workers\n\n", r.Size, r.Workers)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Sorting Algorithm", "Duration", r.Unit.AxisLabel()})
	for _, res := range r.Series() {
		table.Append([]string{
			res.Label,
			res.Duration.String(),
			strconv.FormatFloat(res.Value, 'f', -1, 64),
		})
	}
	table.SetFooter([]string{"", "axis max", strconv.FormatFloat(r.AxisMax, 'f', -1, 64)})
	table.Render()
	return nil
}

func writeJSON(w io.Writer, r *bench.Report) error {
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
