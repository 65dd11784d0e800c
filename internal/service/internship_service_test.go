// internal/service/internship_service_test.go
package service

import (
	"context"
	"testing"

	"skillsphere/internal/model"
	"skillsphere/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBInternship() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect database for testing: " + err.Error())
	}
	return db
}

func newInternshipServiceForTest() (InternshipService, *mocks.InternshipRepository, *mocks.ApplicationRepository, *mocks.SkillRepository, *mocks.NotificationRepository) {
	db := setupTestDBInternship()
	mockInternshipRepo := new(mocks.InternshipRepository)
	mockApplicationRepo := new(mocks.ApplicationRepository)
	mockSkillRepo := new(mocks.SkillRepository)
	mockNotificationRepo := new(mocks.NotificationRepository)
	svc := NewInternshipService(db, mockInternshipRepo, mockApplicationRepo, mockSkillRepo, mockNotificationRepo)
	return svc, mockInternshipRepo, mockApplicationRepo, mockSkillRepo, mockNotificationRepo
}

// --- Test Apply ---
func Test_internshipService_Apply(t *testing.T) {
	ctx := context.Background()
	svc, mockInternshipRepo, mockApplicationRepo, _, _ := newInternshipServiceForTest()

	userID := uuid.New()
	internshipID := uuid.New()
	internship := &model.MicroInternship{
		InternshipID: internshipID,
		Title:        "Webスクレイパー改善",
		SkillID:      uuid.New(),
	}

	t.Run("正常系: 応募成功でPendingになる", func(t *testing.T) {
		mockInternshipRepo.Mock = mock.Mock{}
		mockApplicationRepo.Mock = mock.Mock{}
		mockInternshipRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), internshipID).
			Return(internship, nil).Once()
		mockApplicationRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Application")).
			Run(func(args mock.Arguments) {
				application := args.Get(2).(*model.Application)
				assert.Equal(t, userID, application.UserID)
				assert.Equal(t, internshipID, application.InternshipID)
				assert.Equal(t, model.ApplicationPending, application.Status)
			}).Return(nil).Once()

		application, err := svc.Apply(ctx, userID, internshipID, &model.ApplyInternshipRequest{Motivation: "実務経験を積みたい"})

		require.NoError(t, err)
		require.NotNil(t, application)
		assert.Equal(t, model.ApplicationPending, application.Status)
		mockApplicationRepo.AssertExpectations(t)
	})

	t.Run("異常系: 同じ募集への二重応募", func(t *testing.T) {
		mockInternshipRepo.Mock = mock.Mock{}
		mockApplicationRepo.Mock = mock.Mock{}
		mockInternshipRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), internshipID).
			Return(internship, nil).Once()
		mockApplicationRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Application")).
			Return(model.ErrConflict).Once()

		application, err := svc.Apply(ctx, userID, internshipID, &model.ApplyInternshipRequest{})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrConflict)
		assert.Nil(t, application)
	})

	t.Run("異常系: 募集が存在しない", func(t *testing.T) {
		mockInternshipRepo.Mock = mock.Mock{}
		mockApplicationRepo.Mock = mock.Mock{}
		mockInternshipRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), internshipID).
			Return(nil, model.ErrNotFound).Once()

		application, err := svc.Apply(ctx, userID, internshipID, &model.ApplyInternshipRequest{})

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrNotFound)
		assert.Nil(t, application)
	})
}

// --- Test CreateInternship ---
func Test_internshipService_CreateInternship(t *testing.T) {
	ctx := context.Background()
	svc, mockInternshipRepo, _, mockSkillRepo, mockNotificationRepo := newInternshipServiceForTest()

	skillID := uuid.New()
	skill := &model.Skill{SkillID: skillID, Name: "Python", Slug: "python"}

	t.Run("正常系: 既定値が補完されブロードキャスト通知が作られる", func(t *testing.T) {
		mockSkillRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), skillID).
			Return(skill, nil).Once()
		mockInternshipRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.MicroInternship")).
			Run(func(args mock.Arguments) {
				internship := args.Get(2).(*model.MicroInternship)
				assert.Equal(t, 1, internship.DurationWeeks)
				assert.Equal(t, 50, internship.RewardPoints)
				assert.Equal(t, "AI Mentor", internship.Mentor)
			}).Return(nil).Once()
		mockNotificationRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Notification")).
			Run(func(args mock.Arguments) {
				notification := args.Get(2).(*model.Notification)
				// 全体向けなので特定ユーザーに紐づかない
				assert.Nil(t, notification.UserID)
			}).Return(nil).Once()

		internship, err := svc.CreateInternship(ctx, &model.CreateInternshipRequest{
			Title:       "データ収集ボット作成",
			Description: "1週間でスクレイパーを実装する",
			SkillID:     skillID,
		})

		require.NoError(t, err)
		require.NotNil(t, internship)
		mockInternshipRepo.AssertExpectations(t)
		mockNotificationRepo.AssertExpectations(t)
	})
}

// --- Test UpdateApplicationStatus ---
func Test_internshipService_UpdateApplicationStatus(t *testing.T) {
	ctx := context.Background()
	svc, _, mockApplicationRepo, _, mockNotificationRepo := newInternshipServiceForTest()

	applicationID := uuid.New()
	applicantID := uuid.New()
	application := &model.Application{
		ApplicationID: applicationID,
		UserID:        applicantID,
		InternshipID:  uuid.New(),
		Status:        model.ApplicationPending,
	}

	t.Run("正常系: Acceptedへ更新し本人へ通知", func(t *testing.T) {
		mockApplicationRepo.Mock = mock.Mock{}
		mockNotificationRepo.Mock = mock.Mock{}
		mockApplicationRepo.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), applicationID).
			Return(application, nil).Once()
		mockApplicationRepo.On("UpdateStatus", ctx, mock.AnythingOfType("*gorm.DB"), applicationID, model.ApplicationAccepted).
			Return(nil).Once()
		mockNotificationRepo.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Notification")).
			Run(func(args mock.Arguments) {
				notification := args.Get(2).(*model.Notification)
				require.NotNil(t, notification.UserID)
				assert.Equal(t, applicantID, *notification.UserID)
			}).Return(nil).Once()

		err := svc.UpdateApplicationStatus(ctx, applicationID, model.ApplicationAccepted)

		require.NoError(t, err)
		mockApplicationRepo.AssertExpectations(t)
		mockNotificationRepo.AssertExpectations(t)
	})

	t.Run("異常系: 不正なステータス", func(t *testing.T) {
		mockApplicationRepo.Mock = mock.Mock{}

		err := svc.UpdateApplicationStatus(ctx, applicationID, "Ghosted")

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}
