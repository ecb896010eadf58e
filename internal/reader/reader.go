// Package reader feeds an engine from one decoded line stream at a time.
// A record is only a record when its terminator was seen: a final fragment
// at end-of-stream without a newline is truncated data and is discarded
// rather than silently mixed in with complete lines.
package reader

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"git.home.luguber.info/inful/linesort/internal/textline"
)

// Ingester receives accepted lines. engine.Engine satisfies it.
type Ingester interface {
	Ingest(line string)
}

// Filter controls per-line normalization before ingestion.
type Filter struct {
	// Trim strips leading/trailing whitespace and control characters.
	Trim bool
	// SkipBlank drops lines that are entirely whitespace/control
	// (evaluated after trimming when Trim is also set).
	SkipBlank bool
}

// Source reads newline-terminated records from a single decoded stream.
type Source struct {
	r *bufio.Reader
}

// New wraps r, decoding with the named encoding (see LookupEncoding).
func New(r io.Reader, encodingName string) (*Source, error) {
	enc, err := LookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}
	return &Source{r: bufio.NewReaderSize(enc.NewDecoder().Reader(r), 128*1024)}, nil
}

// Pump reads the stream to its end, normalizing each record per f and
// handing accepted records to ing. Truncated final records are discarded.
// A read failure aborts the source; records already ingested stay ingested.
func (s *Source) Pump(ing Ingester, f Filter) error {
	for {
		line, err := s.r.ReadString('\n')
		if err == io.EOF {
			// Data without a terminator is a truncated record.
			return nil
		}
		if err != nil {
			return fmt.Errorf("read stream: %w", err)
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if f.Trim {
			line = textline.Trim(line)
		}
		if f.SkipBlank && textline.IsBlank(line) {
			continue
		}
		ing.Ingest(line)
	}
}
