// Package engine implements the bidirectional, schema-driven binary codec
// for the game's .bytes save/level format: framed scopes, a visitor contract
// shared between reading and writing, and the component schemas that ride on
// top of it.
package engine

import "math"

// Vector3 is a 3-component float vector, matching the wire's little-endian
// f32 triple.
type Vector3 struct {
	X, Y, Z float32
}

// Quaternion is a rotation quaternion in (x, y, z, w) wire order.
type Quaternion struct {
	X, Y, Z, W float32
}

// Color is an RGBA color with channels in r, g, b, a wire order.
type Color struct {
	R, G, B, A float32
}

// MaterialColorInfo names one color slot of a material.
type MaterialColorInfo struct {
	Name  *string
	Color Color
}

// MaterialInfo describes a renderer's material assignment.
type MaterialInfo struct {
	MaterialName *string
	Colors       []MaterialColorInfo
}

var (
	ZerosVector3 = Vector3{0, 0, 0}
	OnesVector3  = Vector3{1, 1, 1}

	DefaultQuaternion = Quaternion{0, 0, 0, 1}

	InvalidInt      int32   = -127
	InvalidFloat    float32 = -10000.0
	InvalidVector3          = Vector3{InvalidFloat, InvalidFloat, InvalidFloat}
	InvalidQuaternion       = Quaternion{InvalidFloat, InvalidFloat, InvalidFloat, InvalidFloat}
)

// EmptyMark is the sentinel i32 that denotes an absent optional value
// wherever the empty-marker protocol applies.
const EmptyMark int32 = 0x7FFF_FFFD

func isFinite32(v float32) bool {
	return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
}
