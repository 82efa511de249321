package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fxlab/fxjournal/checklist"
	"github.com/fxlab/fxjournal/journal"
	"github.com/fxlab/fxjournal/pkg/id"
)

var checklistCmd = &cobra.Command{
	Use:   "checklist",
	Short: "Manage the pre-trade checklist",
	Long: `Manage the pre-trade checklist.

Subcommands:
  list            - Show the checklist in display order
  add <text>      - Append an item
  check <id>      - Tick an item
  uncheck <id>    - Untick an item
  rm <id>         - Delete an item
  move <from> <to> - Move an item by position (zero-based)`,
}

var checklistListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the checklist in display order",
	Args:  cobra.NoArgs,
	RunE:  runChecklistList,
}

var checklistAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Append an item",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runChecklistAdd,
}

var checklistCheckCmd = &cobra.Command{
	Use:   "check <item-id>",
	Short: "Tick an item",
	Args:  cobra.ExactArgs(1),
	RunE:  runChecklistSetChecked(true),
}

var checklistUncheckCmd = &cobra.Command{
	Use:   "uncheck <item-id>",
	Short: "Untick an item",
	Args:  cobra.ExactArgs(1),
	RunE:  runChecklistSetChecked(false),
}

var checklistRmCmd = &cobra.Command{
	Use:   "rm <item-id>",
	Short: "Delete an item",
	Args:  cobra.ExactArgs(1),
	RunE:  runChecklistRm,
}

var checklistMoveCmd = &cobra.Command{
	Use:   "move <from> <to>",
	Short: "Move an item by position (zero-based)",
	Args:  cobra.ExactArgs(2),
	RunE:  runChecklistMove,
}

func init() {
	rootCmd.AddCommand(checklistCmd)
	checklistCmd.AddCommand(checklistListCmd)
	checklistCmd.AddCommand(checklistAddCmd)
	checklistCmd.AddCommand(checklistCheckCmd)
	checklistCmd.AddCommand(checklistUncheckCmd)
	checklistCmd.AddCommand(checklistRmCmd)
	checklistCmd.AddCommand(checklistMoveCmd)
}

func withChecklistStore(run func(store *journal.SQLite) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg, nil)
	if err != nil {
		return err
	}
	defer store.Close()
	return run(store)
}

func printItems(items []checklist.Item) {
	for _, it := range items {
		mark := " "
		if it.Checked {
			mark = "x"
		}
		fmt.Printf("%2d [%s] %s  (%s)\n", it.Order, mark, it.Text, it.ID)
	}
}

func runChecklistList(cmd *cobra.Command, args []string) error {
	return withChecklistStore(func(store *journal.SQLite) error {
		items, err := store.ListItems()
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("checklist is empty")
			return nil
		}
		printItems(items)
		return nil
	})
}

func runChecklistAdd(cmd *cobra.Command, args []string) error {
	return withChecklistStore(func(store *journal.SQLite) error {
		items, err := store.ListItems()
		if err != nil {
			return err
		}
		it := checklist.Item{
			ID:    id.New(),
			Text:  strings.Join(args, " "),
			Order: len(items),
		}
		if err := store.AddItem(it); err != nil {
			return err
		}
		fmt.Printf("%2d [ ] %s  (%s)\n", it.Order, it.Text, it.ID)
		return nil
	})
}

func runChecklistSetChecked(checked bool) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return withChecklistStore(func(store *journal.SQLite) error {
			return store.UpdateItem(args[0], journal.ItemUpdate{Checked: &checked})
		})
	}
}

func runChecklistRm(cmd *cobra.Command, args []string) error {
	return withChecklistStore(func(store *journal.SQLite) error {
		if err := store.DeleteItem(args[0]); err != nil {
			return err
		}
		// Close the gap the deletion left.
		items, err := store.ListItems()
		if err != nil {
			return err
		}
		return store.SaveOrder(context.Background(), checklist.Restamp(items))
	})
}

func runChecklistMove(cmd *cobra.Command, args []string) error {
	from, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("from: %w", err)
	}
	to, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("to: %w", err)
	}

	return withChecklistStore(func(store *journal.SQLite) error {
		items, err := store.ListItems()
		if err != nil {
			return err
		}

		r := checklist.NewReconciler(store)
		next, err := r.Reorder(context.Background(), items, from, to)
		if err != nil {
			var rerr *checklist.ReconcileError
			if errors.As(err, &rerr) {
				// The store rejected the move; show the order we reverted to.
				fmt.Println("reorder was not saved, keeping previous order:")
				printItems(rerr.Prev)
			}
			return err
		}

		printItems(next)
		return nil
	})
}
