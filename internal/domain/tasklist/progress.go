package tasklist

import "github.com/jsamuelsen11/task-tracker/internal/domain/task"

// Progress returns the fraction of tasks that are closed, in [0, 1].
// ok is false when tasks is nil (collection not loaded). A loaded empty
// collection has progress 0.
func Progress(tasks []task.Task) (value float64, ok bool) {
	if tasks == nil {
		return 0, false
	}
	if len(tasks) == 0 {
		return 0, true
	}
	var closed int
	for i := range tasks {
		if tasks[i].Status == task.StatusClosed {
			closed++
		}
	}
	return float64(closed) / float64(len(tasks)), true
}

// Progress returns the closed fraction of the list's loaded tasks.
func (l *TaskList) Progress() (float64, bool) {
	return Progress(l.Tasks)
}

// Count returns the number of loaded tasks.
func (l *TaskList) Count() int {
	return len(l.Tasks)
}
