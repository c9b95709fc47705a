package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/Digital-Coach-Women/APP-API/internal/data/repos/testutil"
	apperrors "github.com/Digital-Coach-Women/APP-API/internal/pkg/errors"
)

func TestGetWithCoursesReturnsCatalogOrder(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewSpecialityLevelRepo(tx, testutil.Logger(t))

	spec := testutil.SeedSpeciality(t, ctx, tx, "coaching")
	level := testutil.SeedLevel(t, ctx, tx, spec.ID, 1, false)

	// Seed out of order on purpose.
	third := testutil.SeedCourse(t, ctx, tx, level.ID, 3)
	first := testutil.SeedCourse(t, ctx, tx, level.ID, 1)
	second := testutil.SeedCourse(t, ctx, tx, level.ID, 2)
	lesson2 := testutil.SeedCourseLesson(t, ctx, tx, first.ID, 2)
	lesson1 := testutil.SeedCourseLesson(t, ctx, tx, first.ID, 1)

	for attempt := 0; attempt < 2; attempt++ {
		got, err := repo.GetWithCourses(ctx, tx, level.ID)
		if err != nil {
			t.Fatalf("GetWithCourses: %v", err)
		}
		if got.Speciality == nil || got.Speciality.ID != spec.ID {
			t.Fatalf("speciality not preloaded")
		}
		if len(got.Courses) != 3 {
			t.Fatalf("course count: want=3 got=%d", len(got.Courses))
		}
		wantCourses := []uuid.UUID{first.ID, second.ID, third.ID}
		for i, want := range wantCourses {
			if got.Courses[i].ID != want {
				t.Fatalf("course order at %d: want=%s got=%s", i, want, got.Courses[i].ID)
			}
		}
		if len(got.Courses[0].Lessons) != 2 {
			t.Fatalf("lesson count: want=2 got=%d", len(got.Courses[0].Lessons))
		}
		if got.Courses[0].Lessons[0].ID != lesson1.ID || got.Courses[0].Lessons[1].ID != lesson2.ID {
			t.Fatalf("lesson order: want=[%s %s] got=[%s %s]",
				lesson1.ID, lesson2.ID, got.Courses[0].Lessons[0].ID, got.Courses[0].Lessons[1].ID)
		}
	}
}

func TestGetWithCoursesUnknownLevel(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewSpecialityLevelRepo(tx, testutil.Logger(t))

	_, err := repo.GetWithCourses(context.Background(), tx, uuid.New())
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("GetWithCourses: want ErrNotFound got %v", err)
	}
}

func TestListFiltersByName(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewSpecialityLevelRepo(tx, testutil.Logger(t))

	spec := testutil.SeedSpeciality(t, ctx, tx, "coaching")
	testutil.SeedLevel(t, ctx, tx, spec.ID, 1, true)
	target := testutil.SeedLevel(t, ctx, tx, spec.ID, 2, false)

	rows, total, err := repo.List(ctx, tx, target.Name, 0, 20)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Fatalf("List filtered: want 1 row got total=%d len=%d", total, len(rows))
	}
	if rows[0].ID != target.ID {
		t.Fatalf("List filtered row: want=%s got=%s", target.ID, rows[0].ID)
	}
}
