// Package render draws figures and their computed geometry into an RGBA
// image for visual checks.
//
// Objects are stroked as thin outlines: splines and arcs through their
// flattened polylines, arrowheads as the outlines the arrow package
// computes, texts as their estimated extent. Bounding boxes can be overlaid
// in a second colour. The image is sized so the longer side of the view
// fits the requested pixel count.
//
//	c := render.New(bound.Compound(fig), 800)
//	c.Compound(fig)
//	c.Box(bound.Compound(fig), render.BoxColor)
//	err := c.SavePNG("fig.png")
package render
