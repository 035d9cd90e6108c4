package country

import "context"

// StubLookup is a Lookup test double with injectable behavior.
type StubLookup struct {
	FindByNameFunc func(ctx context.Context, name string) (*Info, error)
}

var _ Lookup = (*StubLookup)(nil)

func (s *StubLookup) FindByName(ctx context.Context, name string) (*Info, error) {
	return s.FindByNameFunc(ctx, name)
}
