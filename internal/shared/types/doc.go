// Package types provides the shared data model of the CatOS simulation.
//
// Everything the session mutates and the presentation layer renders lives
// here so that domain packages and API adapters agree on one vocabulary.
//
// Core Types:
//   - LogEntry, Severity: entries of the bounded log panel
//   - WindowHandle, AppKind: open windows and the six desktop apps
//   - VitalStats, Priority: attention meter and current drive
//   - ProcessEntry, ProcessKey, ProcessStatus: cosmetic process table
//   - CrashState, CrashPhase: blue screen overlay
//   - ZoomiesState: zoomies mutual exclusion flag
//   - Snapshot: full read model pushed to new stream clients
//
// Example Usage:
//
//	kind, err := types.ParseAppKind("yarn-ball")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(kind.Icon(), kind.Title())
package types
