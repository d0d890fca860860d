// Package cube models a standard 3x3x3 twisty cube: six faces of nine
// stickers each, the 18-token move alphabet, and the primitives an IDA*
// search needs to drive it — apply, inverse, heuristic, clone, serialize.
//
// # Quick start
//
//	c := cube.NewSolvedCube()
//	c.Apply(cube.Move{Face: cube.FaceR, Turn: cube.CW})
//	fmt.Println(c.IsSolved()) // false
//
// The package has no notion of solving technique or search strategy; that
// lives in internal/ida and internal/solve. Cube is a pure data model:
// cheap to clone, cheap to compare, total over its move alphabet.
package cube
