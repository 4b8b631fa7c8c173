package account

import (
	"fmt"
	"math/rand"
)

const (
	publicIDAlphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	publicIDSuffixLen = 6
)

// newPublicID builds a candidate public id like "driver_AB12CD".
func newPublicID(role string) string {
	buf := make([]byte, publicIDSuffixLen)
	for i := range buf {
		buf[i] = publicIDAlphabet[rand.Intn(len(publicIDAlphabet))]
	}
	return role + "_" + string(buf)
}

// uniquePublicID retries candidates until the store confirms one is unused.
// The loop has no upper bound; if the id space ever fills up it would spin.
func (s *DefaultAccountService) uniquePublicID(role string) (string, error) {
	for {
		candidate := newPublicID(role)
		exists, err := s.Repo.PublicIDExists(candidate)
		if err != nil {
			return "", fmt.Errorf("failed to verify public id uniqueness: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}
}
