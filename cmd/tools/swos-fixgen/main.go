package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/carverauto/swos/pkg/decode"
	"github.com/carverauto/swos/pkg/devices"
	"github.com/carverauto/swos/pkg/endpoints"
)

type options struct {
	model      string
	endpoint   string
	seed       int64
	out        string
	entries    int
	catalog    string
	listModels bool
}

var (
	errUnknownModel    = errors.New("unknown device model (use -models to list them)")
	errUnknownEndpoint = errors.New("unknown endpoint path")
)

// fixtureManifest describes one generator run so a fixture directory is
// reproducible.
type fixtureManifest struct {
	ID        string   `json:"id"`
	Model     string   `json:"model"`
	Ports     int      `json:"ports"`
	Endpoint  string   `json:"endpoint,omitempty"`
	Seed      int64    `json:"seed"`
	CreatedAt string   `json:"created_at"`
	Files     []string `json:"files"`
}

func main() {
	opts := parseFlags()

	if err := run(opts); err != nil {
		log.Fatalf("swos-fixgen failed: %v", err)
	}
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.model, "model", "css326", "device model to synthesize")
	flag.StringVar(&opts.endpoint, "endpoint", "", "endpoint path to synthesize, e.g. link.b (default: all)")
	flag.Int64Var(&opts.seed, "seed", 1, "random seed; payload bytes are deterministic per seed")
	flag.StringVar(&opts.out, "out", ".", "directory to write fixtures into")
	flag.IntVar(&opts.entries, "entries", 2, "record count for table endpoints")
	flag.StringVar(&opts.catalog, "catalog", "", "device catalog YAML merged over the built-ins")
	flag.BoolVar(&opts.listModels, "models", false, "list known device models and exit")
	flag.Parse()

	return opts
}

func run(opts options) error {
	if opts.catalog != "" {
		if err := devices.LoadCatalog(opts.catalog); err != nil {
			return err
		}
	}

	if opts.listModels {
		for _, name := range devices.Names() {
			m, _ := devices.Lookup(name)
			fmt.Printf("%-12s %2d ports (%d SFP)\n", name, m.Ports, m.SFP)
		}

		return nil
	}

	model, ok := devices.Lookup(opts.model)
	if !ok {
		return fmt.Errorf("%w: %s", errUnknownModel, opts.model)
	}

	targets, err := resolveTargets(opts.endpoint)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	gen := newGenerator(opts.seed, model)

	manifest := fixtureManifest{
		ID:        uuid.New().String(),
		Model:     model.Name,
		Ports:     model.Ports,
		Endpoint:  opts.endpoint,
		Seed:      opts.seed,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	for _, e := range targets {
		files, err := writeFixture(opts.out, gen, e, opts.entries)
		if err != nil {
			return err
		}

		manifest.Files = append(manifest.Files, files...)

		log.Printf("wrote %s", strings.Join(files, ", "))
	}

	return writeJSON(filepath.Join(opts.out, "manifest.json"), manifest)
}

func resolveTargets(endpoint string) ([]endpoints.Entry, error) {
	if endpoint == "" {
		return endpoints.Entries(), nil
	}

	e, ok := endpoints.Lookup(endpoint)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errUnknownEndpoint, endpoint)
	}

	return []endpoints.Entry{e}, nil
}

// writeFixture emits the raw payload and its decoded form side by side,
// named the way device captures are: {path}_response_{model}.txt.
func writeFixture(dir string, gen *generator, e endpoints.Entry, tableEntries int) ([]string, error) {
	payload := gen.payload(e, tableEntries)

	base := fmt.Sprintf("%s_response_%s", e.Paths[0], gen.model.Name)
	rawName := base + ".txt"
	expectedName := base + ".expected.json"

	if err := os.WriteFile(filepath.Join(dir, rawName), []byte(payload+"\n"), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", rawName, err)
	}

	record, err := e.Decode([]byte(payload), decode.WithPortCount(gen.portsFor(e)))
	if err != nil {
		return nil, fmt.Errorf("decode synthesized %s payload: %w", e.Paths[0], err)
	}

	if err := writeJSON(filepath.Join(dir, expectedName), record); err != nil {
		return nil, err
	}

	return []string{rawName, expectedName}, nil
}

func writeJSON(path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0o644)
}
