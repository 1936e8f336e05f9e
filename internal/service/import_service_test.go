package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chat-workspace-be/internal/entity"
)

func TestListCandidatesWithoutGithubAppConfigured(t *testing.T) {
	ctx := context.Background()
	uowFactory := newTestFactory(t)
	svc := NewImportService(uowFactory, nil)

	uow := uowFactory.NewUnitOfWork(ctx)
	installation := entity.GithubAppInstallation{Id: 9001, UserId: 7, CreatedAt: time.Now()}
	require.NoError(t, uow.InstallationRepository().Create(ctx, &installation))

	// An owned installation with no configured app must surface a clean 500,
	// not crash on the missing client.
	_, err := svc.ListCandidates(ctx, 7, installation.Id)
	requireApiStatus(t, err, 500)
}

func TestListCandidatesForeignInstallationIsAbsent(t *testing.T) {
	ctx := context.Background()
	uowFactory := newTestFactory(t)
	svc := NewImportService(uowFactory, nil)

	uow := uowFactory.NewUnitOfWork(ctx)
	installation := entity.GithubAppInstallation{Id: 9002, UserId: 7, CreatedAt: time.Now()}
	require.NoError(t, uow.InstallationRepository().Create(ctx, &installation))

	// Ownership resolves before the client is touched.
	_, err := svc.ListCandidates(ctx, 8, installation.Id)
	requireApiStatus(t, err, 404)
}
