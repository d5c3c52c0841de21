package task

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Task represents a single to-do item.
type Task struct {
	ID          uint32 `json:"id"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
}

// List is the ordered collection of tasks. Insertion order is the
// on-disk order; ids are unique within a list.
type List []Task

// NextID returns the id for a newly added task: max existing id + 1,
// or 1 for an empty list. Ids are never reused after deletion.
func (l List) NextID() uint32 {
	var max uint32
	for _, t := range l {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}

// Get returns the task with the given id, or nil if not found.
func (l List) Get(id uint32) *Task {
	for i := range l {
		if l[i].ID == id {
			return &l[i]
		}
	}
	return nil
}

// Add appends a new pending task and returns it.
// The description must not be empty or blank.
func (l *List) Add(description string) (Task, error) {
	if strings.TrimSpace(description) == "" {
		return Task{}, &ValidationError{
			Field: "description",
			Err:   errors.New("must not be empty"),
		}
	}
	t := Task{
		ID:          l.NextID(),
		Description: description,
	}
	*l = append(*l, t)
	return t, nil
}

// SetDone sets a task's done flag. Setting a flag to its current value
// is a no-op, not an error.
func (l List) SetDone(id uint32, done bool) error {
	t := l.Get(id)
	if t == nil {
		return fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	t.Done = done
	return nil
}

// Update replaces a task's description.
func (l List) Update(id uint32, description string) error {
	if strings.TrimSpace(description) == "" {
		return &ValidationError{
			Field: "description",
			Err:   errors.New("must not be empty"),
		}
	}
	t := l.Get(id)
	if t == nil {
		return fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	t.Description = description
	return nil
}

// Remove deletes the task with the given id, preserving the order of
// the remaining tasks.
func (l *List) Remove(id uint32) error {
	for i := range *l {
		if (*l)[i].ID == id {
			*l = append((*l)[:i], (*l)[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("task %d: %w", id, ErrNotFound)
}

// Swap exchanges the ids of two tasks. The tasks keep their positions;
// only the ids move, so a later sort by id swaps their ranks.
func (l List) Swap(id1, id2 uint32) error {
	t1 := l.Get(id1)
	if t1 == nil {
		return fmt.Errorf("task %d: %w", id1, ErrNotFound)
	}
	t2 := l.Get(id2)
	if t2 == nil {
		return fmt.Errorf("task %d: %w", id2, ErrNotFound)
	}
	t1.ID, t2.ID = t2.ID, t1.ID
	return nil
}

// Pending returns the tasks that are not done, in list order.
func (l List) Pending() List {
	var pending List
	for _, t := range l {
		if !t.Done {
			pending = append(pending, t)
		}
	}
	return pending
}

// CountDone returns the number of done tasks.
func (l List) CountDone() int {
	count := 0
	for _, t := range l {
		if t.Done {
			count++
		}
	}
	return count
}

// SortByID sorts the list by id in ascending order.
func (l List) SortByID() {
	sort.Slice(l, func(i, j int) bool {
		return l[i].ID < l[j].ID
	})
}
