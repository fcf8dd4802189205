// Package column lays out owner-drawn list rows as tab-aligned columns.
//
// A proportional font cannot line text up on tab stops by itself. The
// package expands embedded tabs to spaces and then draws the text between
// consecutive tab stops as separate runs, each started at a fixed multiple
// of a uniform character cell width. The cell width comes from the font's
// average or maximum advance and is resolved once per widget when the host
// toolkit measures the list.
//
// Drawing is driven by the host: it hands DrawRow (or Layout.DrawItem) a
// draw record per row and performs selection highlighting itself. A row
// whose interaction state changed since it was last laid out is not
// re-laid out; see RowState.
package column
