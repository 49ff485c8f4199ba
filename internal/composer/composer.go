package composer

import "context"

// Request carries everything the composer may use to write a comment.
type Request struct {
	URL      string
	Topics   []string
	Excerpt  string
	MaxWords int
}

// Composer is the single-method capability the publish flow depends on.
// Implementations wrap whatever text-generation backend is configured; the
// returned comment text must be non-empty.
type Composer interface {
	Compose(ctx context.Context, req Request) (string, error)
}

// Func adapts a plain function to the Composer interface.
type Func func(ctx context.Context, req Request) (string, error)

func (f Func) Compose(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}
