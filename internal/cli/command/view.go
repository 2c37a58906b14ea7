package command

import (
	"time"

	"github.com/dustin/go-humanize"

	"github.com/yndnr/postmask-go/internal/core/domain"
)

// codecResult is the output of a single encode or decode.
type codecResult struct {
	Op     string `json:"op" yaml:"op"`
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`
	OK     bool   `json:"ok" yaml:"ok"`
}

// String is what table mode prints: just the output, for piping.
func (r codecResult) String() string {
	return r.Output
}

// reportList renders scan reports.
type reportList []*domain.Report

type reportRow struct {
	Source    string `header:"source"`
	Size      string `header:"size"`
	PublicKey string `header:"public key"`
	Payload   string `header:"payload"`
}

type wideReportRow struct {
	ID        string `header:"id"`
	Source    string `header:"source"`
	Size      string `header:"size"`
	PublicKey string `header:"public key"`
	Payload   string `header:"payload"`
	ScannedAt string `header:"scanned at"`
}

// Rows implements output.Rower.
func (l reportList) Rows(wide bool) any {
	if wide {
		rows := make([]wideReportRow, 0, len(l))
		for _, r := range l {
			rows = append(rows, wideReportRow{
				ID:        r.ID,
				Source:    r.Source,
				Size:      humanize.Bytes(uint64(r.Size)),
				PublicKey: orDash(r.PublicKey),
				Payload:   orDash(r.Payload),
				ScannedAt: r.ScannedAt.Format(time.RFC3339),
			})
		}
		return rows
	}

	rows := make([]reportRow, 0, len(l))
	for _, r := range l {
		rows = append(rows, reportRow{
			Source:    r.Source,
			Size:      humanize.Bytes(uint64(r.Size)),
			PublicKey: orDash(r.PublicKey),
			Payload:   orDash(r.Payload),
		})
	}
	return rows
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
