package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Fetch runs: one row per completed (or cancelled) fetch invocation
CREATE TABLE IF NOT EXISTS fetch_runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,

    model TEXT NOT NULL,
    days TEXT NOT NULL,              -- comma-joined YYYY-MM-DD list
    out_dir TEXT NOT NULL,
    include_activemap BOOLEAN NOT NULL DEFAULT 0,

    total_copied INTEGER NOT NULL DEFAULT 0,
    total_overwritten INTEGER NOT NULL DEFAULT 0,
    missing_days INTEGER NOT NULL DEFAULT 0,
    active_included INTEGER NOT NULL DEFAULT 0,
    active_missing INTEGER NOT NULL DEFAULT 0,
    cancelled BOOLEAN NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_fetch_runs_model ON fetch_runs(model);
CREATE INDEX IF NOT EXISTS idx_fetch_runs_out_dir ON fetch_runs(out_dir);

-- Label actions: audit trail of the human-review moves
CREATE TABLE IF NOT EXISTS label_actions (
    action_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,

    out_dir TEXT NOT NULL,
    label TEXT NOT NULL,             -- RealNG or Overkill
    class_folder TEXT NOT NULL,
    cell_key TEXT NOT NULL,
    region TEXT NOT NULL,
    src_path TEXT NOT NULL,
    dst_path TEXT NOT NULL,

    undone BOOLEAN NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_label_actions_out_dir ON label_actions(out_dir, undone);
`
