// Package simulation repeats experiments on a sample space and compares
// the observed frequencies with the exact probabilities.
package simulation

import (
	"context"
	"fmt"
	"math/big"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/odds/internal/core/probability"
	apperrors "github.com/louisbranch/odds/internal/platform/errors"
)

const tracerName = "github.com/louisbranch/odds/internal/simulation"

// Row is the tally for one outcome.
type Row[O comparable] struct {
	Outcome  O
	Count    int
	Observed float64
	Expected float64
	Exact    *big.Rat
}

// Report holds one row per outcome of the space, in space order.
type Report[O comparable] struct {
	Trials int
	Rows   []Row[O]
}

// MaxDeviation returns the largest absolute gap between observed and
// expected frequency across all outcomes.
func (r Report[O]) MaxDeviation() float64 {
	max := 0.0
	for _, row := range r.Rows {
		d := row.Observed - row.Expected
		if d < 0 {
			d = -d
		}
		if d > max {
			max = d
		}
	}
	return max
}

// Run performs trials experiments on space. It checks ctx between batches
// so long runs can be cancelled.
func Run[O comparable](ctx context.Context, space *probability.SampleSpace[O], trials int) (Report[O], error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "simulation.Run", trace.WithAttributes(
		attribute.Int("simulation.trials", trials),
		attribute.Int("simulation.outcomes", space.Len()),
	))
	defer span.End()

	if trials <= 0 {
		err := apperrors.WithMetadata(
			apperrors.CodeTrialsInvalid,
			fmt.Sprintf("trials must be positive, got %d", trials),
			map[string]string{"Trials": strconv.Itoa(trials)},
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Report[O]{}, err
	}

	const batch = 4096
	counts := make(map[O]int, space.Len())
	for done := 0; done < trials; done += batch {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return Report[O]{}, err
		}
		n := batch
		if remaining := trials - done; remaining < n {
			n = remaining
		}
		for _, o := range space.Experiments(n) {
			counts[o]++
		}
	}

	members := space.Members()
	rows := make([]Row[O], 0, len(members))
	for _, m := range members {
		count := counts[m.Outcome()]
		rows = append(rows, Row[O]{
			Outcome:  m.Outcome(),
			Count:    count,
			Observed: float64(count) / float64(trials),
			Expected: m.Probability(),
			Exact:    m.Exact(),
		})
	}
	report := Report[O]{Trials: trials, Rows: rows}
	span.SetAttributes(attribute.Float64("simulation.max_deviation", report.MaxDeviation()))
	return report, nil
}
