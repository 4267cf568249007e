package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"hwservices/internal/config"
	"hwservices/internal/manager"
	"hwservices/internal/models"
	"hwservices/internal/storage"
)

var errUsage = errors.New("неверные аргументы")

func main() {
	os.Exit(realMain(os.Args[1:]))
}

func realMain(args []string) int {
	if len(args) < 1 {
		printHelp(os.Stderr)
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		log.Printf("Ошибка конфигурации: %v", err)
		return 1
	}

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Printf("Ошибка открытия хранилища: %v", err)
		return 1
	}
	defer store.Close()

	if err := run(ctx, manager.NewTaskManager(store), args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, errUsage) {
			printHelp(os.Stderr)
		}
		return 1
	}
	return 0
}

func run(ctx context.Context, tm *manager.TaskManager, args []string, out io.Writer) error {
	command, args := args[0], args[1:]

	switch command {
	case "fill":
		if err := tm.FillDefaults(ctx); err != nil {
			return err
		}
		fmt.Fprintln(out, "БД заполнена данными")
		return nil
	case "add":
		return handleAdd(ctx, tm, args, out)
	case "list":
		return handleList(ctx, tm, out)
	case "get":
		return handleGet(ctx, tm, args, out)
	case "update":
		return handleUpdate(ctx, tm, args, out)
	case "delete":
		return handleDelete(ctx, tm, args, out)
	}
	return fmt.Errorf("%w: неизвестная команда %s", errUsage, command)
}

func handleAdd(ctx context.Context, tm *manager.TaskManager, args []string, out io.Writer) error {
	addCmd := flag.NewFlagSet("add", flag.ContinueOnError)
	addCmd.SetOutput(io.Discard)
	title := addCmd.String("title", "", "Task title")
	desc := addCmd.String("desc", "", "Task description")
	if err := addCmd.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	task, err := tm.Create(ctx, taskRequest(addCmd, title, desc))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Added task with ID %d\n", task.ID)
	return nil
}

func handleList(ctx context.Context, tm *manager.TaskManager, out io.Writer) error {
	tasks, err := tm.List(ctx)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks found")
		return nil
	}
	for _, task := range tasks {
		printTask(out, task)
	}
	return nil
}

func handleGet(ctx context.Context, tm *manager.TaskManager, args []string, out io.Writer) error {
	id, err := parseID("get", args)
	if err != nil {
		return err
	}
	task, err := tm.Get(ctx, id)
	if err != nil {
		return err
	}
	printTask(out, *task)
	return nil
}

func handleUpdate(ctx context.Context, tm *manager.TaskManager, args []string, out io.Writer) error {
	updateCmd := flag.NewFlagSet("update", flag.ContinueOnError)
	updateCmd.SetOutput(io.Discard)
	id := updateCmd.Int("id", 0, "Task ID to update")
	title := updateCmd.String("title", "", "New title")
	desc := updateCmd.String("desc", "", "New description")
	if err := updateCmd.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *id == 0 {
		return fmt.Errorf("%w: --id is required", errUsage)
	}

	if _, err := tm.Update(ctx, *id, taskRequest(updateCmd, title, desc)); err != nil {
		return err
	}
	fmt.Fprintf(out, "Task %d updated\n", *id)
	return nil
}

func handleDelete(ctx context.Context, tm *manager.TaskManager, args []string, out io.Writer) error {
	id, err := parseID("delete", args)
	if err != nil {
		return err
	}
	if _, err := tm.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(out, "Task %d deleted\n", id)
	return nil
}

// taskRequest оставляет nil для флагов, которых не было в командной строке,
// чтобы отсутствующее поле не превращалось в пустую строку
func taskRequest(fs *flag.FlagSet, title, desc *string) models.TaskRequest {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	var req models.TaskRequest
	if set["title"] {
		req.Title = title
	}
	if set["desc"] {
		req.Description = desc
	}
	return req
}

func parseID(name string, args []string) (int, error) {
	cmd := flag.NewFlagSet(name, flag.ContinueOnError)
	cmd.SetOutput(io.Discard)
	id := cmd.Int("id", 0, "Task ID")
	if err := cmd.Parse(args); err != nil {
		return 0, fmt.Errorf("%w: %v", errUsage, err)
	}
	if *id == 0 {
		return 0, fmt.Errorf("%w: --id is required", errUsage)
	}
	return *id, nil
}

func printTask(out io.Writer, task models.Task) {
	status := "Pending"
	if task.Status {
		status = "Done"
	}
	fmt.Fprintf(out, "%d: %s - %s [%s]\n", task.ID, task.Title, task.Description, status)
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, `Usage: taskctl <command> [flags]

Commands:
  fill                                       Insert the seed tasks
  add     --title="..." --desc="..."         Add new task
  list                                       List tasks
  get     --id=ID                            Show one task
  update  --id=ID --title="..." --desc="..." Overwrite title and description
  delete  --id=ID                            Delete task

Storage:
  DB_DRIVER and DB_DSN select the store (see .env).`)
}
