// Package app is the composition root for the vmgrid TUI.
//
// Run loads the config, applies command-line overrides, picks an inventory
// provider and hands the terminal to the ui package:
//
//	Run()
//	  ├─> LoadConfig()    config file + flag overrides
//	  ├─> prefs.Load()    theme and column width
//	  ├─> NewProvider()   data file, HTTP API or demo fleet
//	  ├─> setupLogging()  log file or discard while the TUI runs
//	  └─> ui.Run()        blocks; rows arrive through LoadStore
//
// LoadStore retries failed fetches with exponential backoff starting at the
// configured retry interval and capped at 30 seconds. Once the attempts are
// used up the error is shown in the TUI, where the user may retry.
package app
