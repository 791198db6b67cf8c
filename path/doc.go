// Package path provides curve evaluators used by tweens that declare
// waypoints: pure functions that fit a value through N control points
// (start, interior waypoints, target) at a normalized parameter t in [0,1].
package path
