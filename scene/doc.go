// Package scene reads a figure described in YAML and builds the
// [figgeom.Compound] it stands for.
//
// A scene lists objects by kind; compounds nest:
//
//	name: sample
//	lines:
//	  - type: polyline
//	    thickness: 2
//	    points: [[0, 0], [1200, 600]]
//	    forward: {type: triangle, filled: true, width: 60, height: 120}
//	ellipses:
//	  - center: [600, 600]
//	    radii: [300, 100]
//	    angle: 30
//	texts:
//	  - base: [0, 1500]
//	    size: 12
//	    string: 'caf\351'
//	compounds:
//	  - splines:
//	      - kind: open-x
//	        points: [[0, 0], [600, 600], [1200, 0]]
//	        shapes: [0, -1, 0]
//
// Angles are in degrees. Text strings use Fig escapes and are decoded with
// the figtext rules. Texts without a length or height are measured with the
// Go Regular font at their point size.
package scene
