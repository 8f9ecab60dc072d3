// Package window owns window identity for the desktop.
//
// The registry only tracks which windows exist, which app each one hosts and
// their stacking order. What is drawn inside a window belongs to the
// presentation layer, which addresses windows by the integer ID returned
// from Open.
//
// Example Usage:
//
//	reg := window.NewRegistry()
//	yarn, _ := reg.Open(types.AppYarnBall)
//	box, _ := reg.Open(types.AppBoxSimulator)
//	reg.Raise(yarn.ID) // yarn is now topmost
//	reg.Close(box.ID)
package window
