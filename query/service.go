package query

import (
	"context"
	"log/slog"

	"github.com/poiesic/paranuara/core"
	"github.com/poiesic/paranuara/storage"
)

// EligibleEyeColor is the only eye color a friend in common may have.
const EligibleEyeColor = "brown"

// JoinResult is the outcome of JoinFriends.
type JoinResult struct {
	Person1 *core.Person
	Person2 *core.Person

	// FriendsInCommon is never nil. It is ordered as in Person1's friend list.
	FriendsInCommon []*core.Person
}

// Service answers queries over a repository.
type Service struct {
	repo   storage.Repository
	logger *slog.Logger
}

// Option configures a Service.
type Option func(*Service) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewService creates a new query service.
func NewService(repo storage.Repository, opts ...Option) (*Service, error) {
	if repo == nil {
		return nil, ErrRepositoryRequired
	}

	s := &Service{
		repo:   repo,
		logger: slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// CompanyEmployees returns everyone employed by the company.
// Returns storage.ErrCompanyNotFound if the company does not exist; a company
// with no employees yields an empty slice.
func (s *Service) CompanyEmployees(ctx context.Context, companyID core.CompanyID) ([]*core.Person, error) {
	company, err := s.repo.FetchCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	employees, err := s.repo.FetchPeopleByCompany(ctx, company.ID)
	if err != nil {
		s.logger.Error("error fetching employees", "company", company.ID, "err", err)
		return nil, err
	}

	s.logger.Debug("fetched employees", "company", company.ID, "count", len(employees))
	return employees, nil
}

// Person returns a single person.
// Returns storage.ErrPersonNotFound if the person does not exist.
func (s *Service) Person(ctx context.Context, personID core.PersonID) (*core.Person, error) {
	return s.repo.FetchPerson(ctx, personID)
}

// JoinFriends returns both people and the friends they have in common who
// are alive and have brown eyes.
func (s *Service) JoinFriends(ctx context.Context, person1ID, person2ID core.PersonID) (*JoinResult, error) {
	return s.JoinFriendsWithMonitor(ctx, person1ID, person2ID, nil)
}

// JoinFriendsWithMonitor is JoinFriends with a monitor receiving each stage of the join.
// If person1 does not exist that is reported before person2 is looked up.
func (s *Service) JoinFriendsWithMonitor(ctx context.Context, person1ID, person2ID core.PersonID, monitor JoinMonitor) (*JoinResult, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(person1ID, person2ID)

	person1, err := s.repo.FetchPerson(ctx, person1ID)
	if err != nil {
		return nil, err
	}
	person2, err := s.repo.FetchPerson(ctx, person2ID)
	if err != nil {
		return nil, err
	}

	common := CommonFriendIDs(person1, person2)
	monitor.AfterIntersection(common)

	result := &JoinResult{
		Person1:         person1,
		Person2:         person2,
		FriendsInCommon: []*core.Person{},
	}

	if len(common) > 0 {
		friends, err := s.repo.FetchPeopleByIDs(ctx, common...)
		if err != nil {
			s.logger.Error("error fetching friends in common", "person1", person1ID, "person2", person2ID, "err", err)
			return nil, err
		}
		monitor.AfterFriendRetrieval(friends)

		for _, friend := range friends {
			if EligibleFriend(friend) {
				result.FriendsInCommon = append(result.FriendsInCommon, friend)
			} else {
				monitor.Excluded(friend)
			}
		}
	}

	s.logger.Debug("joined friends", "person1", person1ID, "person2", person2ID,
		"common", len(common), "eligible", len(result.FriendsInCommon))
	monitor.Finish(result)
	return result, nil
}

// EligibleFriend reports whether p counts as a friend in common: alive with brown eyes.
// The eye color comparison is exact.
func EligibleFriend(p *core.Person) bool {
	return p != nil && p.EyeColor == EligibleEyeColor && !p.HasDied
}

// CommonFriendIDs returns the ids on both friend lists, in a's order.
// Each id appears at most once.
func CommonFriendIDs(a, b *core.Person) []core.PersonID {
	if a == nil || b == nil {
		return []core.PersonID{}
	}

	other := make(map[core.PersonID]struct{}, len(b.FriendIDs))
	for _, id := range b.FriendIDs {
		other[id] = struct{}{}
	}

	common := []core.PersonID{}
	seen := make(map[core.PersonID]struct{}, len(a.FriendIDs))
	for _, id := range a.FriendIDs {
		if _, ok := other[id]; !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		common = append(common, id)
	}
	return common
}
