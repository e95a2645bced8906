// Package orchestration times algorithm variants and compares their
// results. It decouples execution from presentation via the
// ProgressReporter and ResultPresenter interfaces.
package orchestration
