// Package core provides a small, stable facade over the internal scan engine
// for programs that want to run the check in-process instead of shelling out
// to the CLI.
//
// Example:
//
//	root, _ := core.FindRoot(".")
//	lister, _ := core.NewLister(root)
//	offenders, err := core.Scan(ctx, core.Config{Root: root, Mode: core.ModeStaged}, lister)
//	if err != nil { /* handle */ }
//	_ = core.WriteReport(os.Stdout, core.ModeStaged, core.Result{Offenders: offenders})
package core
