// Package store persists the stored-for-later message subset as JSON on
// disk. Writes go through a temp file and rename so a crash mid-write never
// leaves a torn file behind.
package store
