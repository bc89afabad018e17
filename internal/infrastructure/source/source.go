// Package source implements the candidate sources of the picker.
package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/bnema/typeahead/internal/application/port"
	"github.com/bnema/typeahead/internal/domain/entity"
	"github.com/bnema/typeahead/internal/domain/repository"
)

// maxLineSize bounds a single candidate line.
const maxLineSize = 1 << 20

// Reader yields one candidate per non-blank line of r.
type Reader struct {
	name string
	r    io.Reader
}

var _ port.CandidateSource = (*Reader)(nil)

// NewReader creates a line source named name.
func NewReader(name string, r io.Reader) *Reader {
	return &Reader{name: name, r: r}
}

func (s *Reader) Name() string { return s.name }

func (s *Reader) Load(ctx context.Context) ([]entity.Candidate, error) {
	return readLines(ctx, s.name, s.r)
}

// File yields one candidate per non-blank line of a file.
type File struct {
	path string
}

var _ port.CandidateSource = (*File)(nil)

// NewFile creates a file source.
func NewFile(path string) *File {
	return &File{path: path}
}

func (s *File) Name() string { return s.path }

func (s *File) Load(ctx context.Context) ([]entity.Candidate, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return readLines(ctx, s.path, f)
}

func readLines(ctx context.Context, name string, r io.Reader) ([]entity.Candidate, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var out []entity.Candidate
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, entity.Candidate{Value: line, Source: name})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return out, nil
}

// History yields the most recent selections.
type History struct {
	repo  repository.HistoryRepository
	limit int
}

var _ port.CandidateSource = (*History)(nil)

// NewHistory creates a source over the newest limit selections.
func NewHistory(repo repository.HistoryRepository, limit int) *History {
	return &History{repo: repo, limit: limit}
}

func (s *History) Name() string { return "history" }

func (s *History) Load(ctx context.Context) ([]entity.Candidate, error) {
	if s.limit <= 0 {
		return nil, nil
	}
	entries, err := s.repo.GetRecent(ctx, s.limit)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Candidate, len(entries))
	for i, e := range entries {
		out[i] = entity.Candidate{Value: e.Value, Source: s.Name()}
	}
	return out, nil
}

// IsPiped reports whether f is not attached to a terminal, e.g. `ls | typeahead pick`.
func IsPiped(f *os.File) bool {
	return !term.IsTerminal(int(f.Fd()))
}
