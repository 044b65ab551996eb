// Package registry maps ID3v2 frame IDs to their decoded frame
// class, populated by the frames package during init().
package registry

import "github.com/simonhull/id3v2/internal/frame"

// classes maps a 3- or 4-character frame ID to its class.
var classes = make(map[string]*frame.Class)

// Register registers class under its ID. Called by frame family
// packages during init().
func Register(class *frame.Class) {
	classes[class.ID] = class
}

// Get returns the class registered for id, or nil if id is unknown
// (the tag then keeps the frame's raw bytes as an unknown frame).
func Get(id string) *frame.Class {
	return classes[id]
}

// Known reports whether id has a registered class.
func Known(id string) bool {
	_, ok := classes[id]
	return ok
}

// IDs returns every registered frame ID, for diagnostics and tests.
func IDs() []string {
	out := make([]string, 0, len(classes))
	for id := range classes {
		out = append(out, id)
	}
	return out
}
