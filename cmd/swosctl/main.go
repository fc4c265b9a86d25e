package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/tidwall/gjson"

	"github.com/carverauto/swos/pkg/decode"
	"github.com/carverauto/swos/pkg/endpoints"
	"github.com/carverauto/swos/pkg/logger"
	"github.com/carverauto/swos/pkg/version"
)

type options struct {
	file     string
	endpoint string
	ports    int
	pretty   bool
	selector string
	list     bool
	browse   string
	version  bool
}

var (
	errEndpointRequired = errors.New("an -endpoint path is required (use -list to see them)")
	errNoSelection      = errors.New("selection matched nothing in the decoded record")
)

func main() {
	opts := parseFlags()

	if err := logger.InitWithDefaults(); err != nil {
		log.Fatalf("swosctl: %v", err)
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "swosctl: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.file, "file", "", "payload file to decode (default: stdin)")
	flag.StringVar(&opts.endpoint, "endpoint", "", "firmware path the payload came from, e.g. link.b")
	flag.IntVar(&opts.ports, "ports", 0, "force the port count instead of inferring it from the payload")
	flag.BoolVar(&opts.pretty, "pretty", false, "indent the JSON output")
	flag.StringVar(&opts.selector, "select", "", "print only this path of the decoded record (gjson syntax)")
	flag.BoolVar(&opts.list, "list", false, "list the registered endpoint paths and exit")
	flag.StringVar(&opts.browse, "browse", "", "browse a directory of payload files interactively")
	flag.BoolVar(&opts.version, "version", false, "print the version and exit")
	flag.Parse()

	return opts
}

func run(opts options) error {
	switch {
	case opts.version:
		fmt.Println("swosctl " + version.GetFullVersion())

		return nil
	case opts.list:
		return listEndpoints(os.Stdout)
	case opts.browse != "":
		return browse(opts.browse, opts.ports)
	default:
		return decodeOne(opts, os.Stdout)
	}
}

func listEndpoints(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PATHS\tRECORD\tMODE\tFIELDS")

	for _, e := range endpoints.Entries() {
		mode := "single"
		if e.Table {
			mode = "table"
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
			strings.Join(e.Paths, ", "),
			e.Record,
			mode,
			len(e.Fields()),
		)
	}

	return w.Flush()
}

func decodeOne(opts options, out io.Writer) error {
	if opts.endpoint == "" {
		return errEndpointRequired
	}

	data, err := readPayload(opts.file)
	if err != nil {
		return err
	}

	cliLog := logger.WithComponent("swosctl")
	cliLog.Debug().
		Str("endpoint", opts.endpoint).
		Int("bytes", len(data)).
		Msg("decoding payload")

	var decOpts []decode.Option
	if opts.ports > 0 {
		decOpts = append(decOpts, decode.WithPortCount(opts.ports))
	}

	record, err := endpoints.Decode(opts.endpoint, data, decOpts...)
	if err != nil {
		return fmt.Errorf("decode %s: %w", opts.endpoint, err)
	}

	rendered, err := renderJSON(record, opts.pretty)
	if err != nil {
		return err
	}

	if opts.selector != "" {
		result := gjson.GetBytes(rendered, opts.selector)
		if !result.Exists() {
			return fmt.Errorf("%w: %s", errNoSelection, opts.selector)
		}

		fmt.Fprintln(out, result.String())

		return nil
	}

	fmt.Fprintln(out, string(rendered))

	return nil
}

func readPayload(file string) ([]byte, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read payload: %w", err)
		}

		return data, nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload from stdin: %w", err)
	}

	return data, nil
}

func renderJSON(record any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(record, "", "  ")
	}

	return json.Marshal(record)
}
