package main

import (
	"context"
	"ground/pkg/domain"
	"ground/pkg/fakedata"
	"ground/pkg/storage"
	mockstorage "ground/pkg/storage/mock"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSeedStorage(t *testing.T) (*mockstorage.MockStorage, *mockstorage.MockAllStorage) {
	t.Helper()
	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockStorage(ctrl)
	tx := mockstorage.NewMockAllStorage(ctrl)
	strg.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			return cb(tx)
		},
	)

	user := fakedata.User()
	tx.EXPECT().UpsertUser(gomock.Any(), user).Return(&user, nil)
	tx.EXPECT().StoreSurvey(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, survey domain.Survey) (*domain.Survey, error) {
			require.Equal(t, fakedata.SurveyID, survey.ID)
			_, ok := survey.Jobs[fakedata.JobID].AddLOITask()
			require.True(t, ok)

			return &survey, nil
		},
	)

	return strg, tx
}

func TestSeed(t *testing.T) {
	strg, tx := newSeedStorage(t)
	loi := fakedata.LocationOfInterest()
	tx.EXPECT().LOIByID(gomock.Any(), fakedata.LOIID).Return(nil, nil)
	tx.EXPECT().StoreLOIs(gomock.Any(), loi).Return([]domain.LocationOfInterest{loi}, nil)

	require.NoError(t, seed(context.Background(), strg))
}

func TestSeed_KeepsExistingLOI(t *testing.T) {
	strg, tx := newSeedStorage(t)
	loi := fakedata.LocationOfInterest()
	tx.EXPECT().LOIByID(gomock.Any(), fakedata.LOIID).Return(&loi, nil)

	require.NoError(t, seed(context.Background(), strg))
}
