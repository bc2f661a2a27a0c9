package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Report struct {
	Count       uint64        `json:"count" yaml:"count"`
	Prime       uint64        `json:"prime" yaml:"prime"`
	Parallelism int           `json:"parallelism" yaml:"parallelism"`
	BasisSize   int           `json:"basis_size" yaml:"basis_size"`
	Duration    time.Duration `json:"-" yaml:"-"`
	Seconds     float64       `json:"duration_seconds" yaml:"duration_seconds"`
}

func writeReport(w io.Writer, format string, r Report) error {
	r.Seconds = r.Duration.Seconds()

	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return errors.Wrap(enc.Encode(r), "encode yaml report")
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(r), "encode json report")
	default:
		_, err := fmt.Fprintf(w, "The %s prime number is %s\nDuration: %s\n",
			ordinal(r.Count), humanize.Comma(int64(r.Prime)), formatDuration(r.Duration))
		return err
	}
}

// ordinal formats n with thousands separators and an English ordinal suffix, e.g. 1,000,000th.
func ordinal(n uint64) string {
	suffix := strings.TrimPrefix(humanize.Ordinal(int(n)), strconv.FormatUint(n, 10))
	return humanize.Comma(int64(n)) + suffix
}

func formatDuration(d time.Duration) string {
	ms := d.Milliseconds()
	return fmt.Sprintf("%d.%03ds", ms/1000, ms%1000)
}
