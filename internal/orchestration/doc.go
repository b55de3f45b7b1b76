// Package orchestration runs the selected sorters over a shared input,
// reports their progress and compares their outputs. Presentation is kept
// behind the ProgressReporter and ResultPresenter interfaces.
package orchestration
