// Package config loads vmgrid's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/vmgrid/config.toml
//  3. If the config file doesn't exist, return Default()
//  4. If the file exists but fields are missing, zero or blank, use defaults
//
// # TOML Format
//
//	api_bind = "127.0.0.1:7488"      # inventory API; empty disables it
//	data_file = "~/fleet/vms.yaml"    # JSON or YAML inventory; wins over api_bind
//	demo_rows = 40                    # size of the generated demo fleet
//	retry_seconds = 2                 # base interval for load retries
//	max_attempts = 5                  # load attempts before giving up
//	log_file = "~/.cache/vmgrid.log"  # debug log while the TUI runs
//
// Tilde expansion is applied to data_file and log_file.
//
// # Source Selection
//
// Config.Source picks the row provider: data_file when set, else api_bind
// when set, else the demo fleet. Filter state is never part of the config.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, and TOML parse errors ("parse config: ..."). A missing file
// is not an error.
package config
