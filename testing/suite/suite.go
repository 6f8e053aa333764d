package suite

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"os"
	"testing"
	"time"
)

const (
	maxWaitDuration = 120 * time.Second

	seed = 20241019
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	// Rand is seeded identically in every suite so runs are reproducible.
	Rand *rand.Rand
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Rand:   rand.New(rand.NewPCG(seed, seed)),
	}
}

// Sequence is a scripted random source returning its values in order, each reduced
// modulo n. It fails the test when drained.
type Sequence struct {
	t      testing.TB
	values []int
	next   int
}

func NewSequence(t testing.TB, values ...int) *Sequence {
	t.Helper()

	return &Sequence{t: t, values: values}
}

func (that *Sequence) IntN(n int) int {
	if that.next >= len(that.values) {
		that.t.Fatalf("random sequence drained after %d draws", that.next)
	}

	value := that.values[that.next] % n
	that.next++

	return value
}

// Draws returns how many values were consumed.
func (that *Sequence) Draws() int {
	return that.next
}
