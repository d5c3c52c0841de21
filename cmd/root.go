// Package cmd implements the CLI command structure for taskgo.
package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/fvilers/taskgo/internal/config"
	"github.com/fvilers/taskgo/internal/logging"
	"github.com/fvilers/taskgo/internal/render"
	"github.com/fvilers/taskgo/internal/task"
	"github.com/fvilers/taskgo/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// stdin is swappable so tests can script the reset confirmation.
var stdin io.Reader = os.Stdin

// Run executes the taskgo CLI.
func Run(ctx context.Context, args []string) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("taskgo", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags (-debug, -no-color) are registered by config.Load
	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	logger := logging.New(os.Stderr, loggerOptions(cfg))

	// Determine the subcommand
	// If no args remain, default to "list"
	subcommand := "list"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	// Execute the subcommand
	switch subcommand {
	case "add":
		return addCommand(cfg, logger, remainingArgs)
	case "list", "ls":
		return listCommand(cfg, logger, remainingArgs)
	case "update":
		return updateCommand(cfg, logger, remainingArgs)
	case "done":
		return markCommand(cfg, logger, remainingArgs, true)
	case "undone":
		return markCommand(cfg, logger, remainingArgs, false)
	case "rm", "remove", "delete":
		return rmCommand(cfg, logger, remainingArgs)
	case "swap":
		return swapCommand(cfg, logger, remainingArgs)
	case "reset":
		return resetCommand(cfg, logger, remainingArgs)
	case "infos":
		return infosCommand(cfg, remainingArgs)
	case "ui":
		return uiCommand(ctx, cfg, remainingArgs)
	case "version", "--version", "-v":
		return versionCommand()
	case "help", "--help", "-h":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

func loggerOptions(cfg *config.Config) logging.Options {
	opts := logging.DefaultOptions()
	opts.Level = logging.ParseLevel(cfg.LogLevel)
	return opts
}

func renderOptions(cfg *config.Config) render.Options {
	return render.Options{
		DoneGlyph:    cfg.DoneGlyph,
		PendingGlyph: cfg.PendingGlyph,
		NoColor:      cfg.NoColor,
	}
}

// printList renders the task list sorted by id.
func printList(cfg *config.Config, list task.List) {
	list.SortByID()
	fmt.Println(render.Table(list, renderOptions(cfg)))
}

// addCommand appends a new task.
func addCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("taskgo add", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	description := strings.Join(fs.Args(), " ")

	store := task.NewStore(cfg.TasksFile)
	list, err := store.Load()
	if err != nil {
		return err
	}

	added, err := list.Add(description)
	if err != nil {
		return err
	}

	if err := store.Save(list); err != nil {
		return err
	}
	logger.Debug("added task", "id", added.ID, "path", store.Path)

	printList(cfg, list)
	return nil
}

// listCommand prints the task list without mutating it.
func listCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("taskgo list", flag.ContinueOnError)
	pending := fs.Bool("pending", false, "Hide done tasks")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	store := task.NewStore(cfg.TasksFile)
	list, err := store.Load()
	if err != nil {
		return err
	}
	logger.Debug("loaded tasks", "count", len(list), "path", store.Path)

	if *pending {
		list = list.Pending()
	}

	printList(cfg, list)
	return nil
}

// updateCommand replaces a task's description.
func updateCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("taskgo update", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) < 2 {
		return usageError("update requires an id and a description")
	}
	id, err := parseID(remaining[0])
	if err != nil {
		return err
	}
	description := strings.Join(remaining[1:], " ")

	store := task.NewStore(cfg.TasksFile)
	list, err := store.Load()
	if err != nil {
		return err
	}

	if err := list.Update(id, description); err != nil {
		return err
	}

	if err := store.Save(list); err != nil {
		return err
	}
	logger.Debug("updated task", "id", id)

	printList(cfg, list)
	return nil
}

// markCommand flips a task's done flag. Marking a task with its current
// state again is a no-op, not an error.
func markCommand(cfg *config.Config, logger *log.Logger, args []string, done bool) error {
	name := "taskgo done"
	if !done {
		name = "taskgo undone"
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) != 1 {
		return usageError(name[7:] + " requires exactly one task id")
	}
	id, err := parseID(remaining[0])
	if err != nil {
		return err
	}

	store := task.NewStore(cfg.TasksFile)
	list, err := store.Load()
	if err != nil {
		return err
	}

	if err := list.SetDone(id, done); err != nil {
		return err
	}

	if err := store.Save(list); err != nil {
		return err
	}
	logger.Debug("marked task", "id", id, "done", done)

	printList(cfg, list)
	return nil
}

// rmCommand deletes a task.
func rmCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("taskgo rm", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) != 1 {
		return usageError("rm requires exactly one task id")
	}
	id, err := parseID(remaining[0])
	if err != nil {
		return err
	}

	store := task.NewStore(cfg.TasksFile)
	list, err := store.Load()
	if err != nil {
		return err
	}

	if err := list.Remove(id); err != nil {
		return err
	}

	if err := store.Save(list); err != nil {
		return err
	}
	logger.Debug("removed task", "id", id)

	printList(cfg, list)
	return nil
}

// swapCommand exchanges the ids of two tasks.
func swapCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("taskgo swap", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if len(remaining) != 2 {
		return usageError("swap requires exactly two task ids")
	}
	id1, err := parseID(remaining[0])
	if err != nil {
		return err
	}
	id2, err := parseID(remaining[1])
	if err != nil {
		return err
	}

	store := task.NewStore(cfg.TasksFile)
	list, err := store.Load()
	if err != nil {
		return err
	}

	if err := list.Swap(id1, id2); err != nil {
		return err
	}

	if err := store.Save(list); err != nil {
		return err
	}
	logger.Debug("swapped tasks", "id1", id1, "id2", id2)

	printList(cfg, list)
	return nil
}

// resetCommand empties the task list, prompting for confirmation
// unless -force is given. An already empty list is left untouched.
func resetCommand(cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("taskgo reset", flag.ContinueOnError)
	force := fs.Bool("force", false, "Don't prompt for confirmation")
	fs.BoolVar(force, "f", false, "Don't prompt for confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store := task.NewStore(cfg.TasksFile)
	list, err := store.Load()
	if err != nil {
		return err
	}

	if len(list) == 0 {
		return nil
	}

	if !*force {
		fmt.Printf("Are you sure you want to permanently delete %s (y/N)? ", pluralize(len(list), "task", "tasks"))
		reader := bufio.NewReader(stdin)
		input, err := reader.ReadString('\n')
		if err != nil && input == "" {
			return fmt.Errorf("reading confirmation: %w", err)
		}
		if strings.ToLower(strings.TrimSpace(input)) != "y" {
			return nil
		}
	}

	if err := store.Save(task.List{}); err != nil {
		return err
	}
	logger.Debug("reset task list", "deleted", len(list))

	printList(cfg, task.List{})
	return nil
}

// infosCommand prints the file location and task counts.
func infosCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("taskgo infos", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	store := task.NewStore(cfg.TasksFile)
	list, err := store.Load()
	if err != nil {
		return err
	}

	done := list.CountDone()
	fmt.Printf("File location: %s\n", store.Path)
	fmt.Printf("Done tasks: %d\n", done)
	fmt.Printf("Remaining tasks: %d\n", len(list)-done)
	fmt.Printf("Total tasks: %d\n", len(list))
	return nil
}

// uiCommand launches the interactive terminal view.
func uiCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("taskgo ui", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return ui.Run(ctx, cfg)
}

// versionCommand prints version information.
func versionCommand() error {
	fmt.Printf("taskgo version %s\n", Version)
	return nil
}

// parseID parses a task id argument.
func parseID(arg string) (uint32, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil || id == 0 {
		return 0, &task.ValidationError{
			Field: "id",
			Err:   fmt.Errorf("%q is not a valid task id", arg),
		}
	}
	return uint32(id), nil
}

func usageError(msg string) error {
	return &task.ValidationError{Field: "usage", Err: fmt.Errorf("%s", msg)}
}

// pluralize formats a count with its singular or plural noun.
func pluralize(value int, singular, plural string) string {
	if value == 1 {
		return fmt.Sprintf("%d %s", value, singular)
	}
	return fmt.Sprintf("%d %s", value, plural)
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Taskgo - A simple command line to-do manager")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  taskgo [command] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  add <description>      Add a task")
	fmt.Fprintln(w, "  list                   List tasks (default command)")
	fmt.Fprintln(w, "  update <id> <text>     Update a task's description")
	fmt.Fprintln(w, "  done <id>              Mark a task as done")
	fmt.Fprintln(w, "  undone <id>            Mark a task as not done")
	fmt.Fprintln(w, "  rm <id>                Delete a task")
	fmt.Fprintln(w, "  swap <id1> <id2>       Swap two task ids")
	fmt.Fprintln(w, "  reset                  Empty the task list")
	fmt.Fprintln(w, "  infos                  Show file location and task counts")
	fmt.Fprintln(w, "  ui                     Interactive terminal view")
	fmt.Fprintln(w, "  version                Show version information")
	fmt.Fprintln(w, "  help                   Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List Options (use with 'list' command):")
	fmt.Fprintln(w, "  -pending")
	fmt.Fprintln(w, "        Hide done tasks")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Reset Options (use with 'reset' command):")
	fmt.Fprintln(w, "  -f, -force")
	fmt.Fprintln(w, "        Don't prompt for confirmation")
}
