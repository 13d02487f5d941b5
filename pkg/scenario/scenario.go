// Package scenario reads a batch of range updates in the "n k" then "C x1 x2"
// text format and replays it through a terrain engine.
package scenario

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/Sumatoshi-tech/terrain/pkg/safeconv"
	"github.com/Sumatoshi-tech/terrain/pkg/terrain"
)

// Input errors.
var (
	ErrMissingHeader = errors.New("missing header: expected \"n k\"")
	ErrInvalidHeader = errors.New("invalid header")
	ErrLimitExceeded = errors.New("limit exceeded")
	ErrTruncated     = errors.New("input ends before all operations were read")
	ErrInvalidNumber = errors.New("invalid number")
)

const (
	maxTokenSize = 1 << 10

	// maxPrealloc caps the op slice capacity taken from the k header, which
	// is untrusted until the ops are actually read.
	maxPrealloc = 1 << 12
)

// Limits caps the accepted input size. Zero means unlimited.
type Limits struct {
	MaxPositions  int
	MaxOperations int
}

// Scenario is a parsed batch: the index line size and the ops in arrival order.
type Scenario struct {
	N   int          `json:"n" yaml:"n"`
	Ops []terrain.Op `json:"ops" yaml:"ops"`
}

// Parse reads a scenario from r. Every op is validated against N; tokens
// after the last op are ignored.
func Parse(r io.Reader, limits Limits) (*Scenario, error) {
	tok := newTokenizer(r)

	n, err := tok.header("n")
	if err != nil {
		return nil, err
	}

	k, err := tok.header("k")
	if err != nil {
		return nil, err
	}

	if limits.MaxPositions > 0 && n > limits.MaxPositions {
		return nil, fmt.Errorf("%w: n=%d, max %d", ErrLimitExceeded, n, limits.MaxPositions)
	}

	if limits.MaxOperations > 0 && k > limits.MaxOperations {
		return nil, fmt.Errorf("%w: k=%d, max %d", ErrLimitExceeded, k, limits.MaxOperations)
	}

	sc := &Scenario{N: n, Ops: make([]terrain.Op, 0, min(k, maxPrealloc))}

	for ordinal := 1; ordinal <= k; ordinal++ {
		op, opErr := tok.op()
		if opErr == nil {
			opErr = op.Validate(n)
		}

		if opErr != nil {
			return nil, fmt.Errorf("operation %d: %w", ordinal, opErr)
		}

		sc.Ops = append(sc.Ops, op)
	}

	return sc, nil
}

// Run applies every op to engine and materializes the result. The engine
// must have been created for sc.N positions.
func (sc *Scenario) Run(engine terrain.Engine) []int64 {
	for _, op := range sc.Ops {
		engine.Apply(op)
	}

	return engine.Materialize()
}

// CountByKind tallies the ops per kind.
func (sc *Scenario) CountByKind() map[terrain.Kind]int {
	counts := make(map[terrain.Kind]int, len(terrain.Kinds))
	for _, op := range sc.Ops {
		counts[op.Kind]++
	}

	return counts
}

type tokenizer struct {
	scanner *bufio.Scanner
}

func newTokenizer(r io.Reader) *tokenizer {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, maxTokenSize), maxTokenSize)
	scanner.Split(bufio.ScanWords)

	return &tokenizer{scanner: scanner}
}

// next returns the next token, or io.EOF / the scanner error.
func (t *tokenizer) next() (string, error) {
	if t.scanner.Scan() {
		return t.scanner.Text(), nil
	}

	if err := t.scanner.Err(); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	return "", io.EOF
}

func (t *tokenizer) header(name string) (int, error) {
	token, err := t.next()
	if errors.Is(err, io.EOF) {
		return 0, ErrMissingHeader
	}

	if err != nil {
		return 0, err
	}

	v, err := parseInt(token)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidHeader, name, token)
	}

	return v, nil
}

func (t *tokenizer) op() (terrain.Op, error) {
	var fields [3]string

	for i := range fields {
		token, err := t.next()
		if errors.Is(err, io.EOF) {
			return terrain.Op{}, ErrTruncated
		}

		if err != nil {
			return terrain.Op{}, err
		}

		fields[i] = token
	}

	kind, err := terrain.ParseKind(fields[0])
	if err != nil {
		return terrain.Op{}, err
	}

	start, err := parseInt(fields[1])
	if err != nil {
		return terrain.Op{}, err
	}

	end, err := parseInt(fields[2])
	if err != nil {
		return terrain.Op{}, err
	}

	return terrain.Op{Kind: kind, Start: start, End: end}, nil
}

func parseInt(token string) (int, error) {
	v, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, token)
	}

	return safeconv.Int64ToInt(v)
}
