// Package session owns one running CatOS desktop.
//
// A Session bundles the log panel, window registry, vital stats, process
// table, crash overlay and zoomies flag, and drives them from a set of
// independent timers:
//
//	attention decay    every 3s   drains attention, may trigger chaos
//	priority selection every 5s   redraws the current priority
//	process simulation every 5s   perturbs the process table, may start
//	                              zoomies (5%) or a crash (1%)
//	random events      every 4s   emits one catalogue event
//	crash progress     every 500ms while a crash is active
//
// Every timer firing and every user action runs under one mutex, so all the
// mutations and notifications it causes land before anything else runs.
// Changes are pushed to an Observer; the presentation layer never reaches
// into session state except through Snapshot and the read accessors.
//
// Example Usage:
//
//	sess := session.New(session.Options{Observer: hub, Logger: logger})
//	if err := sess.Start(); err != nil {
//	    return err
//	}
//	defer sess.Close()
//
//	win, err := sess.OpenWindow(types.AppYarnBall)
//	sess.RecordPlayInteraction()
//	sess.CloseWindow(win.ID)
package session
