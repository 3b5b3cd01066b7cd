// Package output implements C11: turning a constructed (and usually
// reduced) ZDD into user-facing results — every accepting path's edge
// set, a driver that repeatedly calls count.Sample, and an overlay
// printer that renders a solution back onto the original edge list.
package output
