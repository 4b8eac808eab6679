package help

const ColdstartYAML = `# mavinfetch Quick Start

date_selection:
  single: "--date 2026-01-27"
  range: "--from 2026-01-25 --to 2026-01-27"
  list: "--dates 2026-01-25,2026-01-27"

commands:
  basic_fetch: |
    mavinfetch fetch --date 2026-01-27 --out ./jf2-0127

  fetch_with_activemap: |
    mavinfetch fetch --date 2026-01-27 --out ./jf2-0127 --include-activemap

  fetch_range: |
    mavinfetch fetch --from 2026-01-25 --to 2026-01-27 --out ./jf2-wk4

  list_occurrences: |
    mavinfetch index --out ./jf2-0127
    mavinfetch index --out ./jf2-0127 --class NG_WELDING

  label_occurrence: |
    mavinfetch label --out ./jf2-0127 --class 03_ng_welding --cell E2026A01 --region LOWER_B_L --label RealNG

  undo_label: |
    mavinfetch label --out ./jf2-0127 --undo-last

  raw_summary: |
    mavinfetch summary --csv result.csv --top 15

  barea_summary: |
    mavinfetch barea --csv-dir ./results --date 2026-01-27 --format yaml

  run_history: |
    mavinfetch runs --limit 10

output_tree:
  - "out/<class folder>/<cell>_..._SourceMap.jpg (one folder per class)"
  - "out/<class folder>/..._ActiveMap.jpg (with --include-activemap)"
  - "out/HumanReview/<CLASS>/<RealNG|Overkill>/ (labeled images)"

fetch_behavior:
  - "Drives E..Z probed in order, first hit per day wins"
  - "Re-fetching the same day overwrites existing files"
  - "Classes 01_ok_anode and 01_ok_cathode are skipped"
  - "Ctrl-C stops at the next file with partial stats (exit 3)"
  - "Days with no data count as missing_days, never an error"

labeling:
  - "label moves the SourceMap only, ActiveMap stays in place"
  - "Every move is recorded, --undo-last pops the newest one"
  - "Undoing twice is a no-op"

summary_inputs:
  - ".csv and .xlsx result files, mixed freely"
  - "--csv-dir finds files named ..._<MODEL>_<YYYYMMDD>.csv"
  - "Per-day *_defect.csv exports are ignored"
  - "barea counts cells once per class per row, occurrences per region"

config_file:
  - "config.yaml next to the binary, all keys optional"
  - "keys: model, drives, output_dir, include_activemap, excluded_classes"
  - "flags always win over config values"

exit_codes:
  - "0 success"
  - "1 bad arguments"
  - "2 runtime failure"
  - "3 cancelled fetch (partial stats already printed)"
`
