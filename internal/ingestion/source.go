package ingestion

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"
)

// Source names a piece of text supplied either literally or as a file path.
// Text wins when both are set.
type Source struct {
	Name string
	Text string
	Path string
}

// IsEmpty reports whether the source supplies neither text nor a path
func (s Source) IsEmpty() bool {
	return s.Text == "" && s.Path == ""
}

// Resolve returns the source's cleaned text
func (s Source) Resolve() (string, error) {
	if s.Text != "" {
		return CleanText(s.Text), nil
	}
	if s.Path == "" {
		return "", nil
	}

	text, err := LoadFile(s.Path)
	if err != nil {
		return "", &SourceError{Source: s.Name, Path: s.Path, Cause: err}
	}
	return text, nil
}

// LoadSources resolves all sources concurrently. The returned texts are in
// the same order as sources; empty sources yield empty strings.
func LoadSources(ctx context.Context, sources []Source) ([]string, error) {
	texts := make([]string, len(sources))

	g, gCtx := errgroup.WithContext(ctx)
	for i, src := range sources {
		if src.IsEmpty() {
			continue
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			text, err := src.Resolve()
			if err != nil {
				return err
			}
			// each goroutine owns its own index
			texts[i] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return texts, nil
}

// ResolveText returns the text of src, falling back to stdin when src is
// empty. A nil stdin disables the fallback, so an empty src yields "".
func ResolveText(src Source, stdin io.Reader) (string, error) {
	if !src.IsEmpty() || stdin == nil {
		return src.Resolve()
	}

	text, err := ReadText(stdin)
	if err != nil {
		return "", &SourceError{Source: src.Name, Path: "stdin", Cause: err}
	}
	return text, nil
}
