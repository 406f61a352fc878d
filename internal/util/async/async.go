package async

import (
	"context"
	"errors"
	"fmt"
)

// Task represents an asynchronous operation with a name and function.
type Task struct {
	Name string
	Func func(context.Context) error
}

// RunParallel executes tasks concurrently and waits for all of them.
// At most limit tasks run at the same time; limit <= 0 means no bound.
// Failed tasks are reported together, in task order, wrapped with their name.
//
// Example:
//
//	tasks := []Task{
//	    {Name: "cover.png", Func: loadCover},
//	    {Name: "red.png", Func: loadRed},
//	}
//	if err := RunParallel(ctx, tasks, 4); err != nil {
//	    return err
//	}
func RunParallel(ctx context.Context, tasks []Task, limit int) error {
	if len(tasks) == 0 {
		return nil
	}
	if limit <= 0 || limit > len(tasks) {
		limit = len(tasks)
	}

	errs := make([]error, len(tasks))
	sem := make(chan struct{}, limit)
	done := make(chan struct{}, len(tasks))

	for i, task := range tasks {
		go func() {
			defer func() { done <- struct{}{} }()

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				errs[i] = fmt.Errorf("%s: %w", task.Name, ctx.Err())
				return
			}
			defer func() { <-sem }()

			if err := ctx.Err(); err != nil {
				errs[i] = fmt.Errorf("%s: %w", task.Name, err)
				return
			}

			if err := task.Func(ctx); err != nil {
				errs[i] = fmt.Errorf("%s: %w", task.Name, err)
			}
		}()
	}

	for range len(tasks) {
		<-done
	}

	return errors.Join(errs...)
}
