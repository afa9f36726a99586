package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tripdeck-labs/tripdeck-cli/internal/core/domain"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Manage pre-trip tasks",
	Long: `List, add, complete and remove the preparation tasks of the trip.

Tasks are grouped by trip leg and stored locally; the list is seeded
with sensible defaults the first time it is used.`,
	RunE: runTasksList,
}

var tasksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks with completion progress",
	RunE:  runTasksList,
}

var tasksAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTasksAdd,
}

var tasksDoneCmd = &cobra.Command{
	Use:   "done <id-prefix>",
	Short: "Toggle a task done/undone",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksDone,
}

var tasksRemoveCmd = &cobra.Command{
	Use:   "rm <id-prefix>",
	Short: "Remove a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasksRemove,
}

var flagTaskLeg string

func init() {
	tasksAddCmd.Flags().StringVar(&flagTaskLeg, "leg", "", "trip leg the task belongs to")
	tasksCmd.AddCommand(tasksListCmd)
	tasksCmd.AddCommand(tasksAddCmd)
	tasksCmd.AddCommand(tasksDoneCmd)
	tasksCmd.AddCommand(tasksRemoveCmd)
	rootCmd.AddCommand(tasksCmd)
}

func runTasksList(cmd *cobra.Command, _ []string) error {
	if taskService == nil {
		return errors.New("task service not configured")
	}

	prog := taskService.Progress()
	cmd.Printf("Tasks: %d/%d done\n\n", prog.Done, prog.Total)

	lastLeg := "\x00"
	for _, t := range taskService.Tasks() {
		if t.Leg != lastLeg {
			lastLeg = t.Leg
			label := t.Leg
			if label == "" {
				label = "general"
			}
			cmd.Printf("[%s]\n", label)
		}
		mark := " "
		if t.Done {
			mark = "x"
		}
		cmd.Printf("  [%s] %s  (%s)\n", mark, t.Text, shortID(t.ID))
	}

	return nil
}

func runTasksAdd(cmd *cobra.Command, args []string) error {
	if taskService == nil {
		return errors.New("task service not configured")
	}

	text := strings.Join(args, " ")
	t, err := taskService.AddTask(text, flagTaskLeg)
	if err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}

	cmd.Printf("Added task %s: %s\n", shortID(t.ID), t.Text)
	return nil
}

func runTasksDone(cmd *cobra.Command, args []string) error {
	if taskService == nil {
		return errors.New("task service not configured")
	}

	id, err := resolveTaskID(args[0])
	if err != nil {
		return err
	}
	taskService.ToggleTask(id)

	for _, t := range taskService.Tasks() {
		if t.ID == id {
			state := "open"
			if t.Done {
				state = "done"
			}
			cmd.Printf("Task %s is now %s: %s\n", shortID(id), state, t.Text)
		}
	}
	return nil
}

func runTasksRemove(cmd *cobra.Command, args []string) error {
	if taskService == nil {
		return errors.New("task service not configured")
	}

	id, err := resolveTaskID(args[0])
	if err != nil {
		return err
	}
	taskService.RemoveTask(id)
	cmd.Printf("Removed task %s\n", shortID(id))
	return nil
}

// resolveTaskID expands an id prefix into the matching task id. The
// match must be unique.
func resolveTaskID(prefix string) (string, error) {
	var match string
	for _, t := range taskService.Tasks() {
		if strings.HasPrefix(t.ID, prefix) {
			if match != "" {
				return "", fmt.Errorf("ambiguous task id prefix %q", prefix)
			}
			match = t.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("task %q: %w", prefix, domain.ErrNotFound)
	}
	return match, nil
}

// shortID abbreviates a uuid for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
