package renderer

import "image"

// NewTiles splits a width x height frame into tileSize squares in row-major
// order. Tiles on the right and top edges are cropped to the frame.
func NewTiles(width, height, tileSize int) []image.Rectangle {
	if tileSize <= 0 {
		tileSize = max(width, height)
	}

	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize
	tiles := make([]image.Rectangle, 0, tilesX*tilesY)

	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			bounds := image.Rect(tx*tileSize, ty*tileSize, (tx+1)*tileSize, (ty+1)*tileSize)
			tiles = append(tiles, bounds.Intersect(image.Rect(0, 0, width, height)))
		}
	}
	return tiles
}
