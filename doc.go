// Package bubbleboard turns a spreadsheet of project/task rows into a
// browsable, prioritized board.
//
// The core functionalities include:
//   - Record Loading: reading a CSV or spreadsheet-binary source into a
//     canonical, strongly-typed record set with stable row identifiers.
//   - Normalization: cleaning loosely-structured cells (blanks, NaN
//     sentinels, heterogeneous priority labels, partial dates) into
//     canonical values without ever failing a whole row.
//   - Ordering: a deterministic multi-key sort over priority rank, target
//     and start dates, category and title.
//   - Filtering: compound free-text search plus categorical facets,
//     combined as an AND of per-facet ORs.
//   - Board State: an addressable view holding the current selection so the
//     presentation layer can ask for a task detail across refreshes.
//
// The quote/ subpackage maintains a time-bounded cache over an unreliable
// external quote source, the describe/ subpackage generates on-demand task
// descriptions, and the renderer/ and server/ subpackages feed the
// presentation layer. This package serves as the foundational logic for the
// `bbd` command-line tool.
package bubbleboard
