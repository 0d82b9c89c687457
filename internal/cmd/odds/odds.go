// Package odds parses odds command flags and prints probabilities for a
// sample space read from a file, an outcome list or dice notation.
package odds

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/text/message"

	"github.com/louisbranch/odds/internal/core/check"
	"github.com/louisbranch/odds/internal/core/dice"
	"github.com/louisbranch/odds/internal/core/probability"
	entrypoint "github.com/louisbranch/odds/internal/platform/cmd"
	apperrors "github.com/louisbranch/odds/internal/platform/errors"
	"github.com/louisbranch/odds/internal/platform/i18n/catalog"
	"github.com/louisbranch/odds/internal/simulation"
	"github.com/louisbranch/odds/internal/spacefile"
)

// ErrUsage marks errors caused by an invalid flag combination.
var ErrUsage = errors.New("usage")

// Config holds odds command configuration.
type Config struct {
	Seed   int64  `env:"SEED"`
	Trials int    `env:"TRIALS" envDefault:"1000"`
	Locale string `env:"LOCALE" envDefault:"en-US"`

	SpaceFile string
	Outcomes  string
	Weights   string
	Dice      string

	Event      string
	Given      string
	Difficulty int
	Modifier   int
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.SpaceFile, "space", "", "YAML space file")
	fs.StringVar(&cfg.Outcomes, "outcomes", "", "comma separated outcomes")
	fs.StringVar(&cfg.Weights, "p", "", "outcome weights, e.g. H=0.2,T=4/5")
	fs.StringVar(&cfg.Dice, "dice", "", "dice pool whose totals form the space, e.g. 2d6")
	fs.StringVar(&cfg.Event, "event", "", "event: a named event from the space file or comma separated outcomes")
	fs.StringVar(&cfg.Given, "given", "", "condition event, same form as -event")
	fs.IntVar(&cfg.Difficulty, "difficulty", 0, "with -dice, print the chance of meeting this difficulty")
	fs.IntVar(&cfg.Modifier, "modifier", 0, "modifier added to dice totals for -difficulty")
	fs.IntVar(&cfg.Trials, "trials", cfg.Trials, "experiments to run (0 skips)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for reproducibility (0 = random)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "output locale")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run prints the space described by cfg to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceOdds, func(ctx context.Context) error {
		return run(ctx, cfg, out)
	})
}

// FormatError renders err for the user in the given locale.
func FormatError(locale string, err error) string {
	return catalog.Default().Printer(locale).Sprintf("cli.error", apperrors.Localize(err, locale))
}

func run(ctx context.Context, cfg Config, out io.Writer) error {
	sources := 0
	for _, s := range []string{cfg.SpaceFile, cfg.Outcomes, cfg.Dice} {
		if s != "" {
			sources++
		}
	}
	if sources != 1 {
		return fmt.Errorf("%w: exactly one of -space, -outcomes or -dice is required", ErrUsage)
	}
	if cfg.Difficulty != 0 && cfg.Dice == "" {
		return fmt.Errorf("%w: -difficulty requires -dice", ErrUsage)
	}

	r := reporter{out: out, printer: catalog.Default().Printer(cfg.Locale)}
	switch {
	case cfg.SpaceFile != "":
		f, err := spacefile.Load(cfg.SpaceFile)
		if err != nil {
			return err
		}
		model, err := f.Build(probability.WithSeed[string](cfg.Seed))
		if err != nil {
			return err
		}
		return describe(ctx, r, cfg, model.Space, namedResolver(model))
	case cfg.Outcomes != "":
		space, err := outcomeSpace(cfg)
		if err != nil {
			return err
		}
		return describe(ctx, r, cfg, space, listResolver(space, identity))
	default:
		specs, err := dice.ParseSpecs(cfg.Dice)
		if err != nil {
			return err
		}
		space, err := dice.Totals(specs, probability.WithSeed[int](cfg.Seed))
		if err != nil {
			return err
		}
		if err := describe(ctx, r, cfg, space, listResolver(space, strconv.Atoi)); err != nil {
			return err
		}
		if cfg.Difficulty == 0 {
			return nil
		}
		odds, err := check.Chance(space, cfg.Difficulty, cfg.Modifier)
		if err != nil {
			return err
		}
		r.event(odds.Success)
		return nil
	}
}

func outcomeSpace(cfg Config) (*probability.SampleSpace[string], error) {
	opts := []probability.Option[string]{probability.WithSeed[string](cfg.Seed)}
	for _, pair := range splitList(cfg.Weights) {
		outcome, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("weight %q must look like outcome=probability", pair)
		}
		p, ok := new(big.Rat).SetString(strings.TrimSpace(value))
		if !ok {
			return nil, fmt.Errorf("weight %q is not a number", pair)
		}
		opts = append(opts, probability.WithExactWeight(strings.TrimSpace(outcome), p))
	}
	return probability.NewSampleSpace(splitList(cfg.Outcomes), opts...)
}

// resolver turns an -event or -given argument into an event.
type resolver[O comparable] func(arg string) (*probability.Event[O], error)

func namedResolver(model *spacefile.Model) resolver[string] {
	list := listResolver(model.Space, identity)
	return func(arg string) (*probability.Event[string], error) {
		if e, ok := model.Events[arg]; ok {
			return e, nil
		}
		return list(arg)
	}
}

func listResolver[O comparable](space *probability.SampleSpace[O], parse func(string) (O, error)) resolver[O] {
	return func(arg string) (*probability.Event[O], error) {
		raw := splitList(arg)
		outcomes := make([]O, 0, len(raw))
		for _, s := range raw {
			o, err := parse(s)
			if err != nil {
				return nil, fmt.Errorf("outcome %q: %w", s, err)
			}
			if !space.Contains(o) {
				return nil, fmt.Errorf("outcome %q is not in the space", s)
			}
			outcomes = append(outcomes, o)
		}
		return space.EventByValues(outcomes...).Named(arg), nil
	}
}

func describe[O comparable](ctx context.Context, r reporter, cfg Config, space *probability.SampleSpace[O], resolve resolver[O]) error {
	r.line("cli.space.header", space.Len())
	for _, m := range space.Members() {
		r.line("cli.space.outcome", m.Outcome(), m.Probability(), m.Exact().RatString())
	}

	if cfg.Event != "" {
		event, err := resolve(cfg.Event)
		if err != nil {
			return err
		}
		r.event(event)
		if cfg.Given != "" {
			given, err := resolve(cfg.Given)
			if err != nil {
				return err
			}
			p, err := event.Given(given)
			if err != nil {
				return err
			}
			r.line("cli.event.given", event.Name(), given.Name(), p)
		}
	}

	if cfg.Trials <= 0 {
		return nil
	}
	report, err := simulation.Run(ctx, space, cfg.Trials)
	if err != nil {
		return err
	}
	r.line("cli.experiment.header", report.Trials)
	for _, row := range report.Rows {
		r.line("cli.experiment.row", row.Outcome, row.Count, row.Observed, row.Expected)
	}
	return nil
}

type reporter struct {
	out     io.Writer
	printer *message.Printer
}

func (r reporter) line(key string, args ...any) {
	r.printer.Fprintf(r.out, key, args...)
	io.WriteString(r.out, "\n")
}

func (r reporter) event(e interface {
	Name() string
	Probability() float64
	Exact() *big.Rat
}) {
	r.line("cli.event.probability", e.Name(), e.Probability(), e.Exact().RatString())
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func identity(s string) (string, error) {
	return s, nil
}
