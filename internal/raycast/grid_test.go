package raycast

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGrid(t *testing.T) {
	Convey("Given a bordered 10x10 grid", t, func() {
		g := NewBorderedGrid(10)

		Convey("The border is solid and the interior is empty", func() {
			So(g.Size(), ShouldEqual, 10)
			So(g.WallCount(), ShouldEqual, 36)
			So(g.At(0, 0), ShouldEqual, Wall)
			So(g.At(9, 4), ShouldEqual, Wall)
			So(g.At(4, 9), ShouldEqual, Wall)
			So(g.At(5, 5), ShouldEqual, Empty)
		})

		Convey("Out of range cells read as empty", func() {
			So(g.InBounds(-1, 3), ShouldBeFalse)
			So(g.InBounds(10, 3), ShouldBeFalse)
			So(g.At(-1, 3), ShouldEqual, Empty)
			So(g.At(3, 10), ShouldEqual, Empty)
		})

		Convey("Occupied uses floor of the coordinates", func() {
			So(g.Occupied(Point{X: 0.5, Y: 5}), ShouldBeTrue)
			So(g.Occupied(Point{X: 9.99, Y: 5}), ShouldBeTrue)
			So(g.Occupied(Point{X: 5, Y: 5}), ShouldBeFalse)
			So(g.Occupied(Point{X: 5.5, Y: 0.2}), ShouldBeTrue)
		})

		Convey("Occupied is false outside the open interval (0, N)", func() {
			So(g.Occupied(Point{X: 0, Y: 5}), ShouldBeFalse)
			So(g.Occupied(Point{X: 5, Y: 0}), ShouldBeFalse)
			So(g.Occupied(Point{X: 10, Y: 5}), ShouldBeFalse)
			So(g.Occupied(Point{X: -1, Y: -1}), ShouldBeFalse)
			So(g.Occupied(Point{X: 5, Y: 12}), ShouldBeFalse)
		})

		Convey("WithWalls copies the grid instead of mutating it", func() {
			inner := g.WithWalls([2]int{3, 2}, [2]int{42, 42})
			So(inner.At(3, 2), ShouldEqual, Wall)
			So(g.At(3, 2), ShouldEqual, Empty)
			So(inner.WallCount(), ShouldEqual, 37)
			So(inner.Occupied(Point{X: 3.5, Y: 2.5}), ShouldBeTrue)
		})
	})
}

func TestGridFromRows(t *testing.T) {
	Convey("Given text rows", t, func() {
		Convey("A closed square map parses with rows as y and columns as x", func() {
			g, err := GridFromRows([]string{
				"#####",
				"#..##",
				"#...#",
				"#.0.#",
				"11111",
			})
			So(err, ShouldBeNil)
			So(g.Size(), ShouldEqual, 5)
			So(g.At(3, 1), ShouldEqual, Wall)
			So(g.At(1, 3), ShouldEqual, Empty)
			So(g.WallCount(), ShouldEqual, 17)
		})

		Convey("An empty map is rejected", func() {
			_, err := GridFromRows(nil)
			So(errors.Is(err, ErrEmptyGrid), ShouldBeTrue)
		})

		Convey("A tiny map is rejected", func() {
			_, err := GridFromRows([]string{"##", "##"})
			So(errors.Is(err, ErrGridTooSmall), ShouldBeTrue)
		})

		Convey("A ragged map is rejected", func() {
			_, err := GridFromRows([]string{"####", "#..#", "#.#", "####"})
			So(errors.Is(err, ErrNotSquare), ShouldBeTrue)
		})

		Convey("An unknown rune is rejected", func() {
			_, err := GridFromRows([]string{"####", "#.x#", "#..#", "####"})
			So(errors.Is(err, ErrUnknownCell), ShouldBeTrue)
		})

		Convey("An open border is rejected", func() {
			_, err := GridFromRows([]string{"####", "...#", "#..#", "####"})
			So(errors.Is(err, ErrOpenBorder), ShouldBeTrue)
		})
	})
}

func TestPoint(t *testing.T) {
	Convey("Points subtract component-wise and measure Euclidean length", t, func() {
		d := Point{X: 5, Y: 7}.Sub(Point{X: 2, Y: 3})
		So(d, ShouldResemble, Point{X: 3, Y: 4})
		So(d.Len(), ShouldEqual, 5.0)
	})
}
