package sprite

// Overlaps reports whether the bounding boxes of a and b intersect. Touching
// edges count as an overlap. Visibility is not consulted.
func Overlaps(a, b *Entity) bool {
	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()

	collisionX := aMax.X() >= bMin.X() && bMax.X() >= aMin.X()
	collisionY := aMax.Y() >= bMin.Y() && bMax.Y() >= aMin.Y()
	return collisionX && collisionY
}
