package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/carverauto/swos/pkg/decode"
	"github.com/carverauto/swos/pkg/endpoints"
)

type options struct {
	out string
}

func main() {
	opts := parseFlags()

	if err := run(opts); err != nil {
		log.Fatalf("swos-report failed: %v", err)
	}
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.out, "o", "", "file to write the report to (default: stdout)")
	flag.Parse()

	return opts
}

func run(opts options) error {
	report := buildReport()

	if opts.out == "" {
		fmt.Print(report)

		return nil
	}

	if err := os.WriteFile(opts.out, []byte(report), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// buildReport renders a markdown summary of every registered endpoint and
// the schema behind it.
func buildReport() string {
	var b strings.Builder

	b.WriteString("# SwOS endpoint coverage\n\n")
	summaryTable(&b)

	for _, e := range endpoints.Entries() {
		fieldTable(&b, e)
	}

	return b.String()
}

func summaryTable(b *strings.Builder) {
	b.WriteString("| Endpoint | Paths | Record | Mode | Fields |\n")
	b.WriteString("|---|---|---|---|---|\n")

	for _, e := range endpoints.Entries() {
		fmt.Fprintf(b, "| %s | %s | %s | %s | %d |\n",
			e.Name, codeList(e.Paths), e.Record, mode(e), len(e.Fields()))
	}

	b.WriteString("\n")
}

func fieldTable(b *strings.Builder, e endpoints.Entry) {
	fmt.Fprintf(b, "## %s (%s)\n\n", e.Paths[0], e.Record)

	if len(e.Paths) > 1 {
		fmt.Fprintf(b, "Also served at %s.\n\n", codeList(e.Paths[1:]))
	}

	b.WriteString("| Field | Keys | Kind | Parameters |\n")
	b.WriteString("|---|---|---|---|\n")

	for _, f := range e.Fields() {
		fmt.Fprintf(b, "| %s | %s | %s | %s |\n",
			f.Name, codeList(f.Keys), f.Kind, params(f))
	}

	b.WriteString("\n")
}

func mode(e endpoints.Entry) string {
	if e.Table {
		return "table"
	}

	return "single"
}

func codeList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = "`" + item + "`"
	}

	return strings.Join(quoted, ", ")
}

// params flattens the schema parameters of a field into one cell.
func params(f decode.FieldInfo) string {
	var parts []string

	if f.IsSlice {
		parts = append(parts, "per-port")
	}

	if len(f.High) > 0 {
		parts = append(parts, "high "+codeList(f.High))
	}

	if len(f.Options) > 0 {
		parts = append(parts, "options: "+strings.Join(f.Options, " / "))
	}

	if f.Bits > 0 {
		parts = append(parts, fmt.Sprintf("signed %d-bit", f.Bits))
	}

	if f.Scale > 0 {
		parts = append(parts, fmt.Sprintf("scale %g", f.Scale))
	}

	if f.Ports > 0 {
		parts = append(parts, fmt.Sprintf("%d ports", f.Ports))
	}

	return strings.Join(parts, "; ")
}
