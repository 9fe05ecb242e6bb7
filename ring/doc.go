// Package ring implements the index bookkeeping for a bounded circular
// buffer (Core), a fixed-capacity value history built on top of it
// (History), and the random-access cursor algebra (Cursor) used to iterate
// both History and the sibling idring package.
//
// Core owns no storage; it only ever translates between three coordinate
// systems over the live window of a circular buffer: slot (physical index),
// index (chronological, 0 = oldest), and age (reverse-chronological, 0 =
// newest).
package ring
