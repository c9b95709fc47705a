package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	catalogrepo "github.com/Digital-Coach-Women/APP-API/internal/data/repos/catalog"
	progressrepo "github.com/Digital-Coach-Women/APP-API/internal/data/repos/progress"
	"github.com/Digital-Coach-Women/APP-API/internal/data/repos/testutil"
	userrepo "github.com/Digital-Coach-Women/APP-API/internal/data/repos/user"
	types "github.com/Digital-Coach-Women/APP-API/internal/domain"
	apperrors "github.com/Digital-Coach-Women/APP-API/internal/pkg/errors"
)

func newEnrollmentService(tb testing.TB, tx *gorm.DB) EnrollmentService {
	log := testutil.Logger(tb)
	return NewEnrollmentService(
		tx, log,
		userrepo.NewUserRepo(tx, log),
		catalogrepo.NewSpecialityLevelRepo(tx, log),
		progressrepo.NewUserSpecialityLevelRepo(tx, log),
		progressrepo.NewUserCourseRepo(tx, log),
		progressrepo.NewUserCourseLessonRepo(tx, log),
	)
}

func TestEnrollCreatesOrderedCourseAndLessonRows(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newEnrollmentService(t, tx)

	user := testutil.SeedUser(t, ctx, tx, "enroll-cascade@test.local")
	spec := testutil.SeedSpeciality(t, ctx, tx, "coaching")
	level := testutil.SeedLevel(t, ctx, tx, spec.ID, 2, false)
	courseB := testutil.SeedCourse(t, ctx, tx, level.ID, 2)
	courseA := testutil.SeedCourse(t, ctx, tx, level.ID, 1)
	lessonB2 := testutil.SeedCourseLesson(t, ctx, tx, courseB.ID, 2)
	lessonB1 := testutil.SeedCourseLesson(t, ctx, tx, courseB.ID, 1)
	lessonA1 := testutil.SeedCourseLesson(t, ctx, tx, courseA.ID, 1)

	enrollment, err := svc.Enroll(ctx, user.ID, level.ID)
	require.NoError(t, err)
	require.Equal(t, user.ID, enrollment.UserID)
	require.Equal(t, level.ID, enrollment.SpecialityLevelID)
	require.False(t, enrollment.IsFinish)

	var userCourses []*types.UserCourse
	require.NoError(t, tx.WithContext(ctx).
		Where("user_speciality_level_id = ?", enrollment.ID).
		Find(&userCourses).Error)
	require.Len(t, userCourses, 2)

	byCourse := map[uuid.UUID]*types.UserCourse{}
	for _, uc := range userCourses {
		require.Equal(t, user.ID, uc.UserID)
		require.False(t, uc.IsFinish)
		require.Zero(t, uc.Time)
		byCourse[uc.CourseID] = uc
	}
	require.Contains(t, byCourse, courseA.ID)
	require.Contains(t, byCourse, courseB.ID)

	var userLessons []*types.UserCourseLesson
	require.NoError(t, tx.WithContext(ctx).
		Where("user_id = ?", user.ID).Find(&userLessons).Error)
	require.Len(t, userLessons, 3)

	wantOrder := map[uuid.UUID]int{lessonA1.ID: 1, lessonB1.ID: 1, lessonB2.ID: 2}
	wantCourse := map[uuid.UUID]uuid.UUID{
		lessonA1.ID: byCourse[courseA.ID].ID,
		lessonB1.ID: byCourse[courseB.ID].ID,
		lessonB2.ID: byCourse[courseB.ID].ID,
	}
	for _, ul := range userLessons {
		require.Equal(t, wantOrder[ul.CourseLessonID], ul.Order)
		require.Equal(t, wantCourse[ul.CourseLessonID], ul.UserCourseID)
		require.False(t, ul.IsFinish)
	}
}

func TestEnrollBasicLevelSkipsLessonRows(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newEnrollmentService(t, tx)

	user := testutil.SeedUser(t, ctx, tx, "enroll-basic@test.local")
	spec := testutil.SeedSpeciality(t, ctx, tx, "coaching")
	level := testutil.SeedLevel(t, ctx, tx, spec.ID, 1, true)
	course := testutil.SeedCourse(t, ctx, tx, level.ID, 1)
	testutil.SeedCourseLesson(t, ctx, tx, course.ID, 1)
	testutil.SeedCourseLesson(t, ctx, tx, course.ID, 2)

	enrollment, err := svc.Enroll(ctx, user.ID, level.ID)
	require.NoError(t, err)

	var courseCount, lessonCount int64
	require.NoError(t, tx.WithContext(ctx).Model(&types.UserCourse{}).
		Where("user_speciality_level_id = ?", enrollment.ID).Count(&courseCount).Error)
	require.NoError(t, tx.WithContext(ctx).Model(&types.UserCourseLesson{}).
		Where("user_id = ?", user.ID).Count(&lessonCount).Error)
	require.EqualValues(t, 1, courseCount)
	require.EqualValues(t, 0, lessonCount)
}

func TestEnrollTwiceReturnsAlreadyEnrolled(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newEnrollmentService(t, tx)

	user := testutil.SeedUser(t, ctx, tx, "enroll-twice@test.local")
	spec := testutil.SeedSpeciality(t, ctx, tx, "coaching")
	level := testutil.SeedLevel(t, ctx, tx, spec.ID, 1, true)

	_, err := svc.Enroll(ctx, user.ID, level.ID)
	require.NoError(t, err)

	_, err = svc.Enroll(ctx, user.ID, level.ID)
	require.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)
}

func TestEnrollUnknownUserIsUnauthorized(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newEnrollmentService(t, tx)

	spec := testutil.SeedSpeciality(t, ctx, tx, "coaching")
	level := testutil.SeedLevel(t, ctx, tx, spec.ID, 1, true)

	_, err := svc.Enroll(ctx, uuid.New(), level.ID)
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = svc.Enroll(ctx, uuid.Nil, level.ID)
	require.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestEnrollUnknownLevelIsNotFound(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newEnrollmentService(t, tx)

	user := testutil.SeedUser(t, ctx, tx, "enroll-nolevel@test.local")

	_, err := svc.Enroll(ctx, user.ID, uuid.New())
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

// failingLessonRepo rejects every batch write so the test can observe the
// enrollment transaction rolling back as a unit.
type failingLessonRepo struct {
	progressrepo.UserCourseLessonRepo
}

func (r *failingLessonRepo) Create(ctx context.Context, tx *gorm.DB, lessons []*types.UserCourseLesson) ([]*types.UserCourseLesson, error) {
	return nil, errors.New("lesson batch write refused")
}

func TestEnrollRollsBackWhenLessonWriteFails(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	log := testutil.Logger(t)

	svc := NewEnrollmentService(
		tx, log,
		userrepo.NewUserRepo(tx, log),
		catalogrepo.NewSpecialityLevelRepo(tx, log),
		progressrepo.NewUserSpecialityLevelRepo(tx, log),
		progressrepo.NewUserCourseRepo(tx, log),
		&failingLessonRepo{},
	)

	user := testutil.SeedUser(t, ctx, tx, "enroll-rollback@test.local")
	spec := testutil.SeedSpeciality(t, ctx, tx, "coaching")
	level := testutil.SeedLevel(t, ctx, tx, spec.ID, 2, false)
	course := testutil.SeedCourse(t, ctx, tx, level.ID, 1)
	testutil.SeedCourseLesson(t, ctx, tx, course.ID, 1)

	_, err := svc.Enroll(ctx, user.ID, level.ID)
	require.Error(t, err)

	var enrollments, userCourses int64
	require.NoError(t, tx.WithContext(ctx).Model(&types.UserSpecialityLevel{}).
		Where("user_id = ?", user.ID).Count(&enrollments).Error)
	require.NoError(t, tx.WithContext(ctx).Model(&types.UserCourse{}).
		Where("user_id = ?", user.ID).Count(&userCourses).Error)
	require.EqualValues(t, 0, enrollments)
	require.EqualValues(t, 0, userCourses)
}

func TestListEnrolledFiltersByLevelName(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	svc := newEnrollmentService(t, tx)

	user := testutil.SeedUser(t, ctx, tx, "enroll-list@test.local")
	spec := testutil.SeedSpeciality(t, ctx, tx, "coaching")
	levelA := testutil.SeedLevel(t, ctx, tx, spec.ID, 1, true)
	levelB := testutil.SeedLevel(t, ctx, tx, spec.ID, 2, true)

	_, err := svc.Enroll(ctx, user.ID, levelA.ID)
	require.NoError(t, err)
	_, err = svc.Enroll(ctx, user.ID, levelB.ID)
	require.NoError(t, err)

	page, err := svc.ListEnrolled(ctx, user.ID, "", 1, 20)
	require.NoError(t, err)
	require.EqualValues(t, 2, page.Total)
	require.Len(t, page.Items, 2)

	page, err = svc.ListEnrolled(ctx, user.ID, levelA.Name, 1, 20)
	require.NoError(t, err)
	require.EqualValues(t, 1, page.Total)
	require.Equal(t, levelA.ID, page.Items[0].SpecialityLevelID)
}
