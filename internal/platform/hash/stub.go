package hash

// StubHasher is a Hasher test double with injectable behavior.
type StubHasher struct {
	HashFunc   func(plain string) (string, error)
	VerifyFunc func(plain, hashed string) (bool, error)
}

var _ Hasher = (*StubHasher)(nil)

func (s *StubHasher) Hash(plain string) (string, error) {
	return s.HashFunc(plain)
}

func (s *StubHasher) Verify(plain, hashed string) (bool, error) {
	return s.VerifyFunc(plain, hashed)
}
