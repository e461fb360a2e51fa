package impl

import (
	"context"
	"testing"

	"horeca/internal/domain/repository"
	mockrepo "horeca/internal/mocks/repository"
)

// stubRepoFactory hands out mocked repositories as transaction-bound ones.
type stubRepoFactory struct {
	userRepo       *mockrepo.MockUserRepository
	authRepo       *mockrepo.MockAuthRepository
	refreshRepo    *mockrepo.MockRefreshTokenRepository
	merchantRepo   *mockrepo.MockMerchantRepository
	locationRepo   *mockrepo.MockLocationRepository
	membershipRepo *mockrepo.MockMembershipRepository
	invitationRepo *mockrepo.MockInvitationRepository
}

func newStubRepoFactory(t *testing.T) *stubRepoFactory {
	t.Helper()

	return &stubRepoFactory{
		userRepo:       mockrepo.NewMockUserRepository(t),
		authRepo:       mockrepo.NewMockAuthRepository(t),
		refreshRepo:    mockrepo.NewMockRefreshTokenRepository(t),
		merchantRepo:   mockrepo.NewMockMerchantRepository(t),
		locationRepo:   mockrepo.NewMockLocationRepository(t),
		membershipRepo: mockrepo.NewMockMembershipRepository(t),
		invitationRepo: mockrepo.NewMockInvitationRepository(t),
	}
}

func (f *stubRepoFactory) UserRepo() repository.UserRepository               { return f.userRepo }
func (f *stubRepoFactory) AuthRepo() repository.AuthRepository               { return f.authRepo }
func (f *stubRepoFactory) RefreshTokenRepo() repository.RefreshTokenRepository {
	return f.refreshRepo
}
func (f *stubRepoFactory) MerchantRepo() repository.MerchantRepository { return f.merchantRepo }
func (f *stubRepoFactory) LocationRepo() repository.LocationRepository { return f.locationRepo }
func (f *stubRepoFactory) MembershipRepo() repository.MembershipRepository {
	return f.membershipRepo
}
func (f *stubRepoFactory) InvitationRepo() repository.InvitationRepository {
	return f.invitationRepo
}

// stubTxManager runs the transactional function directly against the stub
// factory. A returned error stands in for a rollback.
type stubTxManager struct {
	factory *stubRepoFactory
}

func (m *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}
