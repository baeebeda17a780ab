package names

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abitblue/filebin/internal/common"
	"github.com/abitblue/filebin/internal/logging"
)

// Service mints fresh obfuscated names against a Repository.
type Service struct {
	repo Repository
	log  logging.Logger

	// now is a test seam; defaults to time.Now.
	now func() time.Time
}

func NewService(repo Repository, log logging.Logger) *Service {
	return &Service{repo: repo, log: log.With("component", "allocator"), now: time.Now}
}

// Allocate returns a fresh name and its expiration, already persisted.
//
// Collisions are handled by rejection sampling: a taken candidate (seen
// either by the Exists pre-check or by losing an insert race on the unique
// constraint) is discarded and a new one is drawn. The pre-check is only a
// latency optimization; the constraint is authoritative. The loop has no
// upper retry bound, so expected latency degrades as the table approaches
// the 36^6 name space.
//
// Store errors other than common.ErrNameTaken are fatal and propagated.
func (s *Service) Allocate(ctx context.Context) (*IssuedName, error) {
	for {
		candidate, err := randomName()
		if err != nil {
			return nil, fmt.Errorf("generate candidate: %w", err)
		}

		taken, err := s.repo.Exists(ctx, candidate)
		if err != nil {
			return nil, fmt.Errorf("check candidate: %w", err)
		}
		if taken {
			s.log.Debug(ctx, "candidate taken, regenerating", "name", candidate)
			continue
		}

		expire := nextMonthStart(s.now())

		err = s.repo.Insert(ctx, candidate, expire)
		if errors.Is(err, common.ErrNameTaken) {
			// Lost the insert race to a concurrent allocator.
			s.log.Debug(ctx, "insert race lost, regenerating", "name", candidate)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reserve name: %w", err)
		}

		return &IssuedName{Value: candidate, ExpireAt: expire}, nil
	}
}
