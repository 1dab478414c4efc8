// Package types defines shared enums used across the triangulation module, chiefly Relationship,
// which describes how a point relates to a circle (used for the in-circle test the sweep relies
// on) and the orientation of a point triple.
package types
