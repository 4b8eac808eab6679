// Package view exposes the occurrence index and the labeling workflow on
// the command line.
package view

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/mavin-tools/mavinfetch/internal/common"
	"github.com/mavin-tools/mavinfetch/pkg/db"
	"github.com/mavin-tools/mavinfetch/pkg/labeling"
	"github.com/mavin-tools/mavinfetch/pkg/viewindex"
	"github.com/urfave/cli/v2"
)

// IndexAction builds and prints the occurrence index of an output tree.
func IndexAction(c *cli.Context) error {
	outDir := c.String("out")
	if outDir == "" {
		return cli.Exit("output directory required (--out)", 1)
	}

	idx := viewindex.Build(outDir)

	classFilter := c.String("class")
	if classFilter != "" {
		// Accept either the folder name or the normalized key.
		if folder, ok := idx.ResolveFolderForClassKey(classFilter); ok {
			classFilter = folder
		}
	}

	printed := 0
	for _, folder := range sortedFolders(idx) {
		if classFilter != "" && folder != classFilter {
			continue
		}
		items := idx.Classes[folder]
		fmt.Printf("%s (%d occurrences)\n", folder, len(items))
		for _, item := range items {
			marks := ""
			if item.SourcePath != "" {
				marks += "S"
			}
			if item.ActivePath != "" {
				marks += "A"
			}
			fmt.Printf("  %s %s [%s]\n", item.CellKey, item.Region, marks)
		}
		printed++
	}

	if printed == 0 {
		fmt.Println("no occurrences found")
	}
	return nil
}

func sortedFolders(idx *viewindex.Index) []string {
	folders := make([]string, 0, len(idx.Classes))
	for folder := range idx.Classes {
		folders = append(folders, folder)
	}
	// Folder names carry numeric prefixes so plain sort matches
	// on-disk order.
	sort.Strings(folders)
	return folders
}

// LabelAction handles the label command: move one occurrence's SourceMap
// into the review tree, or undo the most recent labeling move.
func LabelAction(c *cli.Context) error {
	logger := common.NewLogger(c.Bool("quiet"))

	outDir := c.String("out")
	if outDir == "" {
		return cli.Exit("output directory required (--out)", 1)
	}

	database, err := openHistory(c.String("db"))
	if err != nil {
		logger.Error("failed to open label history", "error", err)
		os.Exit(2)
	}
	defer database.Close()

	if c.Bool("undo-last") {
		return undoLast(logger, database, outDir)
	}

	label := labeling.Label(c.String("label"))
	if !label.Valid() {
		return cli.Exit(fmt.Sprintf("label must be %s or %s", labeling.LabelRealNG, labeling.LabelOverkill), 1)
	}

	class := c.String("class")
	cell := c.String("cell")
	region := c.String("region")
	if class == "" || cell == "" || region == "" {
		return cli.Exit("--class, --cell and --region are required", 1)
	}

	idx := viewindex.Build(outDir)
	if folder, ok := idx.ResolveFolderForClassKey(class); ok {
		class = folder
	}

	occ := findOccurrence(idx, class, cell, region)
	if occ == nil {
		return cli.Exit(fmt.Sprintf("no occurrence %s/%s %s", class, cell, region), 1)
	}

	action, err := labeling.Apply(occ, label, labeling.HumanRootFromOutput(outDir))
	if err != nil {
		logger.Error("labeling failed", "error", err)
		os.Exit(2)
	}

	if _, err := database.InsertLabelAction(outDir, action); err != nil {
		logger.Warn("failed to record label action", "error", err)
	}

	logger.Info("labeled", "class", action.ClassFolder, "cell", action.CellKey,
		"region", action.Region, "label", string(action.Label), "moved_to", action.DstPath)
	return nil
}

func findOccurrence(idx *viewindex.Index, class, cell, region string) *viewindex.OccurrenceItem {
	for _, item := range idx.Classes[class] {
		if item.CellKey == cell && item.Region == region {
			return item
		}
	}
	return nil
}

func undoLast(logger *slog.Logger, database *db.DB, outDir string) error {
	rec, err := database.LastUndoableAction(outDir)
	if err != nil {
		logger.Error("failed to load undo stack", "error", err)
		os.Exit(2)
	}
	if rec == nil {
		fmt.Println("nothing to undo")
		return nil
	}

	if err := labeling.Undo(rec.Action()); err != nil {
		logger.Error("undo failed", "error", err)
		os.Exit(2)
	}
	if err := database.MarkActionUndone(rec.ActionID); err != nil {
		logger.Error("failed to mark action undone", "error", err)
		os.Exit(2)
	}

	logger.Info("undone", "class", rec.ClassFolder, "cell", rec.CellKey,
		"region", rec.Region, "restored_to", rec.SrcPath)
	return nil
}

func openHistory(dbPath string) (*db.DB, error) {
	if dbPath != "" {
		return db.OpenAt(dbPath)
	}
	return db.Open()
}
