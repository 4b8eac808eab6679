package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mavin-tools/mavinfetch/pkg/labeling"
)

// LabelRecord is one persisted labeling action.
type LabelRecord struct {
	ActionID  int64
	CreatedAt time.Time

	OutDir      string
	Label       string
	ClassFolder string
	CellKey     string
	Region      string
	SrcPath     string
	DstPath     string
	Undone      bool
}

// Action converts a record back into an engine action for undo.
func (r *LabelRecord) Action() *labeling.Action {
	return &labeling.Action{
		Label:       labeling.Label(r.Label),
		ClassFolder: r.ClassFolder,
		CellKey:     r.CellKey,
		Region:      r.Region,
		SrcPath:     r.SrcPath,
		DstPath:     r.DstPath,
	}
}

// InsertLabelAction records a completed labeling move.
func (db *DB) InsertLabelAction(outDir string, action *labeling.Action) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO label_actions
			(out_dir, label, class_folder, cell_key, region, src_path, dst_path)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, outDir, string(action.Label), action.ClassFolder, action.CellKey,
		action.Region, action.SrcPath, action.DstPath)
	if err != nil {
		return 0, fmt.Errorf("failed to insert label action: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get action ID: %w", err)
	}
	return id, nil
}

// LastUndoableAction returns the most recent not-yet-undone action for an
// output tree, or (nil, nil) when the undo stack is empty.
func (db *DB) LastUndoableAction(outDir string) (*LabelRecord, error) {
	row := db.QueryRow(`
		SELECT action_id, created_at, out_dir, label, class_folder,
		       cell_key, region, src_path, dst_path, undone
		FROM label_actions
		WHERE out_dir = ? AND undone = 0
		ORDER BY action_id DESC
		LIMIT 1
	`, outDir)

	var r LabelRecord
	err := row.Scan(&r.ActionID, &r.CreatedAt, &r.OutDir, &r.Label, &r.ClassFolder,
		&r.CellKey, &r.Region, &r.SrcPath, &r.DstPath, &r.Undone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load label action: %w", err)
	}
	return &r, nil
}

// MarkActionUndone flags an action as consumed by undo.
func (db *DB) MarkActionUndone(actionID int64) error {
	_, err := db.Exec("UPDATE label_actions SET undone = 1 WHERE action_id = ?", actionID)
	if err != nil {
		return fmt.Errorf("failed to mark action undone: %w", err)
	}
	return nil
}
