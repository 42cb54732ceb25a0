package memory

import (
	"context"
	"testing"

	"dayplanner/internal/model"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("empty date yields empty list", func(t *testing.T) {
		repo := New()
		tasks, err := repo.GetTasks(ctx, "2025-03-14")
		if err != nil {
			t.Fatal(err)
		}
		if len(tasks) != 0 {
			t.Errorf("tasks = %v", tasks)
		}
	})

	t.Run("replace then get", func(t *testing.T) {
		repo := New()
		in := []model.Task{{ID: "t1", Text: "buy milk", Tags: []string{"groceries"}}}
		if err := repo.ReplaceTasks(ctx, "2025-03-14", in); err != nil {
			t.Fatal(err)
		}
		out, err := repo.GetTasks(ctx, "2025-03-14")
		if err != nil {
			t.Fatal(err)
		}
		if len(out) != 1 || out[0].ID != "t1" {
			t.Fatalf("out = %v", out)
		}
	})

	t.Run("stored lists do not alias caller slices", func(t *testing.T) {
		repo := New()
		in := []model.Task{{ID: "t1", Text: "buy milk", Tags: []string{"groceries"}}}
		repo.ReplaceTasks(ctx, "2025-03-14", in)
		in[0].Text = "mutated"
		in[0].Tags[0] = "mutated"

		out, _ := repo.GetTasks(ctx, "2025-03-14")
		if out[0].Text != "buy milk" || out[0].Tags[0] != "groceries" {
			t.Errorf("stored task aliased caller memory: %+v", out[0])
		}

		out[0].Text = "also mutated"
		again, _ := repo.GetTasks(ctx, "2025-03-14")
		if again[0].Text != "buy milk" {
			t.Error("returned task aliased stored memory")
		}
	})

	t.Run("replace with empty list clears the date", func(t *testing.T) {
		repo := New()
		repo.ReplaceTasks(ctx, "2025-03-14", []model.Task{{ID: "t1", Text: "x"}})
		repo.ReplaceTasks(ctx, "2025-03-14", nil)
		out, _ := repo.GetTasks(ctx, "2025-03-14")
		if len(out) != 0 {
			t.Errorf("out = %v", out)
		}
	})

	t.Run("dates are independent", func(t *testing.T) {
		repo := New()
		repo.ReplaceTasks(ctx, "2025-03-14", []model.Task{{ID: "a", Text: "x"}})
		repo.ReplaceTasks(ctx, "2025-03-15", []model.Task{{ID: "b", Text: "y"}})
		out, _ := repo.GetTasks(ctx, "2025-03-14")
		if len(out) != 1 || out[0].ID != "a" {
			t.Errorf("out = %v", out)
		}
	})
}
