// Command fpindexctl builds a fingerprint index from a term corpus,
// reports its distribution statistics, and optionally serves them as
// Prometheus metrics.
//
// Grounded on wayneeseguin/graft's cmd/graft/main.go: a single
// goptions-tagged options struct plus getopts/usage/exit wrapper
// functions in place of the stdlib flag package.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/voxelbrain/goptions"
	"gopkg.in/yaml.v3"

	"github.com/skolem/fpindex/fingerprint"
	"github.com/skolem/fpindex/index"
	"github.com/skolem/fpindex/metricsexporter"
	"github.com/skolem/fpindex/payload"
	"github.com/skolem/fpindex/term"
)

type options struct {
	Config      string `goptions:"-c, --config, description='Path to a YAML config (fingerprint function, corpus path, metrics address)'"`
	Corpus      string `goptions:"--corpus, description='Path to a term corpus file, overriding the config'"`
	Function    string `goptions:"--function, description='Fingerprint function name, overriding the config'"`
	MetricsAddr string `goptions:"--metrics-addr, description='If set, serve Prometheus metrics on this address and block'"`
	Verbose     bool   `goptions:"-v, --verbose, description='Enable trace-level logging'"`
	Help        bool   `goptions:"-h, --help"`
}

var getopts = func(o interface{}) {
	if err := goptions.Parse(o); err != nil {
		usage()
	}
}

var usage = func() {
	goptions.PrintHelp()
	exit(1)
}

var exit = func(code int) {
	os.Exit(code)
}

// fileConfig is the YAML config shape read from options.Config,
// matching the way graft's internal/config package layers YAML
// profiles over defaults.
type fileConfig struct {
	Function    string `yaml:"function"`
	Corpus      string `yaml:"corpus"`
	MetricsAddr string `yaml:"metrics_addr"`
}

func loadFileConfig(path string) (fileConfig, error) {
	if path == "" {
		return fileConfig{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func main() {
	opts := options{}
	getopts(&opts)

	if opts.Help {
		usage()
	}

	cfg, err := loadFileConfig(opts.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		exit(1)
		return
	}

	fn := opts.Function
	if fn == "" {
		fn = cfg.Function
	}
	if fn == "" {
		fn = "FP3D"
	}
	corpusPath := opts.Corpus
	if corpusPath == "" {
		corpusPath = cfg.Corpus
	}
	metricsAddr := opts.MetricsAddr
	if metricsAddr == "" {
		metricsAddr = cfg.MetricsAddr
	}

	logger := hclog.NewNullLogger()
	if opts.Verbose {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:  "fpindexctl",
			Level: hclog.Trace,
		})
	}

	fpFunc, ok := fingerprint.Lookup(fn)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown fingerprint function %q\n", fn)
		exit(1)
		return
	}

	idx := index.New(
		fn,
		fpFunc,
		func(b *payload.Bag[term.Term]) {},
		func(b *payload.Bag[term.Term]) int { return b.Len() },
		index.WithLogger[*payload.Bag[term.Term]](logger),
	)

	if corpusPath != "" {
		terms, loadErr := loadCorpus(corpusPath)
		if loadErr != nil {
			fmt.Fprintln(os.Stderr, loadErr)
			exit(1)
			return
		}
		for _, t := range terms {
			n := idx.InsertTerm(t)
			p, ok := n.Payload()
			if !ok {
				p = payload.NewBag(term.Equal)
				n.SetPayload(p)
			}
			p.Add(t)
		}
	}

	idx.Print(os.Stdout)

	if metricsAddr == "" {
		return
	}

	exporter := metricsexporter.New()
	exporter.Collect(idx)

	mux := http.NewServeMux()
	mux.Handle("/metrics", exporter.Handler())
	logger.Info("serving metrics", "addr", metricsAddr)
	if err := http.ListenAndServe(metricsAddr, mux); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exit(1)
	}
}
