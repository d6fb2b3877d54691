// Package ports declares the seams of the task tracker.
//
// TaskListService and TaskService are what the HTTP handlers call; the app
// package implements them. TaskListRepository and TaskRepository are what
// those services call; the memory and gorm stores implement them, and the
// guard wraps either one.
package ports
