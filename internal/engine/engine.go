// Package engine exposes the run's line collector: either an ordered store
// or a shuffled sequence, selected by the resolved configuration. Callers
// ingest accepted lines one by one, then emit exactly once.
package engine

import (
	"bufio"
	"io"

	"git.home.luguber.info/inful/linesort/internal/config"
	lserrors "git.home.luguber.info/inful/linesort/internal/errors"
	"git.home.luguber.info/inful/linesort/internal/shuffle"
	"git.home.luguber.info/inful/linesort/internal/store"
)

// Engine accepts normalized lines and, once ingestion is complete, writes
// them to a sink in their final order.
type Engine interface {
	// Ingest adds one accepted line. Must not be called after Emit.
	Ingest(line string)
	// Len returns the number of lines held so far.
	Len() int
	// Emit drains the final ordering into w, one line per record. With
	// flushPerLine the sink is flushed after every line. Call once.
	Emit(w io.Writer, flushPerLine bool) error
}

// Build constructs the engine for a validated configuration: a shuffled
// sequence when cfg.Shuffle is set, an ordered store otherwise.
func Build(cfg *config.Options) (Engine, error) {
	if cfg.Shuffle {
		rs := shuffle.NewRandomState()
		if cfg.Seed != nil {
			rs = shuffle.NewSeededRandomState(*cfg.Seed)
		}
		return &shuffleEngine{seq: shuffle.NewSequence(rs)}, nil
	}

	policy, err := cfg.Policy()
	if err != nil {
		return nil, err
	}
	return &sortEngine{store: store.New(policy, cfg.Unique)}, nil
}

type sortEngine struct {
	store *store.Store
}

func (e *sortEngine) Ingest(line string) { e.store.Insert(line) }

func (e *sortEngine) Len() int { return e.store.Len() }

func (e *sortEngine) Emit(w io.Writer, flushPerLine bool) error {
	return emit(w, flushPerLine, e.store.Each)
}

type shuffleEngine struct {
	seq *shuffle.Sequence
}

func (e *shuffleEngine) Ingest(line string) { e.seq.Append(line) }

func (e *shuffleEngine) Len() int { return e.seq.Len() }

func (e *shuffleEngine) Emit(w io.Writer, flushPerLine bool) error {
	e.seq.Shuffle()
	return emit(w, flushPerLine, e.seq.Each)
}

func emit(w io.Writer, flushPerLine bool, each func(func(string) bool)) error {
	bw := bufio.NewWriter(w)
	var werr error
	each(func(line string) bool {
		if _, werr = bw.WriteString(line); werr != nil {
			return false
		}
		if werr = bw.WriteByte('\n'); werr != nil {
			return false
		}
		if flushPerLine {
			if werr = bw.Flush(); werr != nil {
				return false
			}
		}
		return true
	})
	if werr == nil {
		werr = bw.Flush()
	}
	if werr != nil {
		return lserrors.OutputFailed(werr)
	}
	return nil
}
