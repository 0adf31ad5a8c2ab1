package raycast

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestShading(t *testing.T) {
	Convey("Slice height follows rows / distance", t, func() {
		So(SliceHeight(1080, 1), ShouldEqual, 1080)
		So(SliceHeight(1080, 4), ShouldEqual, 270)
		So(SliceHeight(1080, 7), ShouldEqual, 154)
		So(SliceHeight(600, 0), ShouldEqual, 600)
	})

	Convey("Tiny distances saturate instead of overflowing", t, func() {
		So(SliceHeight(1080, 1e-300), ShouldEqual, maxSliceHeight)
		So(SliceHeight(1080, 1e-17), ShouldBeGreaterThan, 0)
	})

	Convey("Brightness falls off with the inverse square of half the distance", t, func() {
		So(Brightness(1), ShouldEqual, 255)
		So(Brightness(2), ShouldEqual, 255)
		So(Brightness(4), ShouldEqual, 64)
		So(Brightness(20), ShouldEqual, 3)
		So(Brightness(0), ShouldEqual, 255)
	})

	Convey("Both are non-increasing as distance grows past the clamp", t, func() {
		prevH, prevB := SliceHeight(1080, DefaultMinDistance), Brightness(DefaultMinDistance)
		for d := DefaultMinDistance; d <= DefaultDOF; d += 0.01 {
			h, b := SliceHeight(1080, d), Brightness(d)
			So(h, ShouldBeLessThanOrEqualTo, prevH)
			So(b, ShouldBeLessThanOrEqualTo, prevB)
			prevH, prevB = h, b
		}
	})
}
