package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin"
	"github.com/oklog/run"
	"github.com/pkg/errors"

	"github.com/slok/promquery/client"
	"github.com/slok/promquery/log"
	"github.com/slok/promquery/query"
)

// Version is the application version (filled at compile time).
var Version = "dev"

type flags struct {
	address   string
	metric    string
	labelEq   []string
	labelNe   []string
	labelRe   []string
	labelNre  []string
	time      string
	timeout   string
	start     string
	end       string
	step      string
	interval  time.Duration
	debug     bool
}

func newFlags() (*flags, error) {
	fl := &flags{}
	app := kingpin.New("promquery", "Build and run instant and range queries against a Prometheus HTTP API.")
	app.Version(Version)

	app.Flag("address", "Base URL of the query API, including the API prefix.").Default("http://127.0.0.1:9090/api/v1").StringVar(&fl.address)
	app.Flag("metric", "Metric name of the selector.").StringVar(&fl.metric)
	app.Flag("label", `Equality label matcher in "name=value" form, repeatable.`).StringsVar(&fl.labelEq)
	app.Flag("label-ne", `Inequality label matcher in "name=value" form, repeatable.`).StringsVar(&fl.labelNe)
	app.Flag("label-re", `Regex label matcher in "name=value" form, repeatable.`).StringsVar(&fl.labelRe)
	app.Flag("label-nre", `Negated regex label matcher in "name=value" form, repeatable.`).StringsVar(&fl.labelNre)
	app.Flag("time", "Evaluation time, a unix timestamp or an RFC3339 datetime.").StringVar(&fl.time)
	app.Flag("timeout", "Evaluation timeout as a PromQL duration literal.").StringVar(&fl.timeout)
	app.Flag("start", "Range start, enables range mode together with --end and --step.").StringVar(&fl.start)
	app.Flag("end", "Range end.").StringVar(&fl.end)
	app.Flag("step", "Range resolution step.").StringVar(&fl.step)
	app.Flag("interval", "Re-run the query on this interval, 0 runs it once.").Default("0s").DurationVar(&fl.interval)
	app.Flag("debug", "Enable debug logging.").BoolVar(&fl.debug)

	if _, err := app.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	rangeMode := fl.start != "" || fl.end != "" || fl.step != ""
	if rangeMode && (fl.start == "" || fl.end == "" || fl.step == "") {
		return nil, errors.New("range mode needs --start, --end and --step")
	}
	if rangeMode && fl.time != "" {
		return nil, errors.New("--time can't be combined with range mode")
	}

	return fl, nil
}

func main() {
	if err := runApp(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func runApp() error {
	fl, err := newFlags()
	if err != nil {
		return err
	}

	logger := log.New(log.Config{
		Output: os.Stderr,
		Debug:  fl.debug,
	})

	cli, err := client.New(client.Config{
		Address: fl.address,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	q, err := buildQuery(fl)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var g run.Group

	// Signal handler.
	{
		sigC := make(chan os.Signal, 1)
		exitC := make(chan struct{})
		signal.Notify(sigC, syscall.SIGTERM, syscall.SIGINT)

		g.Add(
			func() error {
				select {
				case s := <-sigC:
					logger.Infof("signal %s received", s)
					return nil
				case <-exitC:
					return nil
				}
			},
			func(error) {
				close(exitC)
			},
		)
	}

	// Query runner.
	{
		g.Add(
			func() error {
				return runQueries(ctx, cli, q, fl.interval, logger)
			},
			func(error) {
				cancel()
			},
		)
	}

	return g.Run()
}

// runQueries executes the query once, or repeatedly when interval is
// set, printing each raw response envelope to stdout.
func runQueries(ctx context.Context, cli *client.Client, q query.Query, interval time.Duration, logger log.Logger) error {
	execute := func() error {
		resp, err := query.Execute[query.APIResponse](ctx, cli, q)
		if err != nil {
			return err
		}
		if !resp.IsSuccess() {
			logger.Warningf("server reported %s: %s", resp.ErrorType, resp.Error)
		}

		out, err := json.Marshal(resp)
		if err != nil {
			return errors.Wrap(err, "error encoding response")
		}
		fmt.Println(string(out))

		return nil
	}

	if err := execute(); err != nil {
		return err
	}
	if interval == 0 {
		return nil
	}

	tk := time.NewTicker(interval)
	defer tk.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-tk.C:
		}

		if err := execute(); err != nil {
			logger.Errorf("query failed: %s", err)
		}
	}
}

func buildQuery(fl *flags) (query.Query, error) {
	b := query.NewBuilder()

	if fl.metric != "" {
		if _, err := b.Metric(fl.metric); err != nil {
			return nil, err
		}
	}

	type matcherFlag struct {
		values []string
		add    func(name, value string) *query.Builder
	}
	for _, mf := range []matcherFlag{
		{fl.labelEq, b.WithLabel},
		{fl.labelNe, b.WithoutLabel},
		{fl.labelRe, b.MatchLabel},
		{fl.labelNre, b.NoMatchLabel},
	} {
		for _, lv := range mf.values {
			name, value, ok := strings.Cut(lv, "=")
			if !ok {
				return nil, errors.Errorf("invalid label matcher %q, expected \"name=value\"", lv)
			}
			mf.add(name, value)
		}
	}

	if fl.time != "" {
		if _, err := b.At(fl.time); err != nil {
			return nil, err
		}
	}
	if fl.timeout != "" {
		if _, err := b.Timeout(fl.timeout); err != nil {
			return nil, err
		}
	}

	iq, err := b.Build()
	if err != nil {
		return nil, err
	}

	if fl.start != "" {
		return query.RangeQuery{
			Query:   iq.Query,
			Start:   fl.start,
			End:     fl.end,
			Step:    fl.step,
			Timeout: iq.Timeout,
		}, nil
	}

	return iq, nil
}
