package parameter

// Cover structures
const (
	BunkerCount  = 4
	BunkerWidth  = 60.0
	BunkerHeight = 45.0

	// BunkerBottomOffset places bunkers between the ship and the fleet
	BunkerBottomOffset = 130.0

	BunkerCellSize   = 3.0
	BunkerCornerSize = 3
	BunkerArchWidth  = 4
	BunkerArchHeight = 5

	// BulletErosionRadius is the neighborhood radius eroded around an impact cell
	BulletErosionRadius = 1

	// BulletErosionChance is the per-cell destruction probability inside the radius
	BulletErosionChance = 0.7
)
