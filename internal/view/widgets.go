package view

import (
	"fmt"
	"math"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// IconCloud lays the icons out on a sphere with a Fibonacci lattice. The
// stylesheet spins the sphere; each icon carries its 3D position as custom
// properties.
func IconCloud(images []string) g.Node {
	n := len(images)
	return Div(Class("icon-cloud relative mx-auto size-72 md:size-96"), g.Attr("aria-hidden", "true"),
		Div(Class("icon-cloud-sphere"),
			g.Group(g.Map(indexed(images), func(ic indexedString) g.Node {
				x, y, z := spherePoint(ic.i, n)
				return Img(
					Class("icon-cloud-item"),
					Src(ic.s),
					Alt(""),
					g.Attr("loading", "lazy"),
					Style(fmt.Sprintf("--x:%.3f;--y:%.3f;--z:%.3f", x, y, z)),
				)
			})),
		),
	)
}

// spherePoint returns the i-th of n evenly spread points on the unit sphere.
func spherePoint(i, n int) (x, y, z float64) {
	if n <= 1 {
		return 0, 0, 1
	}
	golden := math.Pi * (3 - math.Sqrt(5))
	y = 1 - 2*float64(i)/float64(n-1)
	r := math.Sqrt(1 - y*y)
	theta := golden * float64(i)
	return math.Cos(theta) * r, y, math.Sin(theta) * r
}

type indexedString struct {
	i int
	s string
}

func indexed(ss []string) []indexedString {
	out := make([]indexedString, len(ss))
	for i, s := range ss {
		out[i] = indexedString{i: i, s: s}
	}
	return out
}

// Iphone15Pro frames a looping, muted demo video in an iPhone 15 Pro outline.
func Iphone15Pro(videoSrc string) g.Node {
	return Div(Class("device device-iphone relative mx-auto h-[410px] w-[200px]"),
		Div(Class("device-frame rounded-[2.5rem] border-[6px] border-gray-900 dark:border-gray-600 bg-black overflow-hidden size-full"),
			Div(Class("device-island absolute left-1/2 top-2 -translate-x-1/2 h-5 w-16 rounded-full bg-black z-10")),
			demoVideo(videoSrc),
		),
	)
}

// Android frames a demo video in a generic Android phone outline.
func Android(videoSrc string) g.Node {
	return Div(Class("device device-android relative mx-auto h-[410px] w-[200px]"),
		Div(Class("device-frame rounded-[1.5rem] border-[6px] border-gray-800 dark:border-gray-600 bg-black overflow-hidden size-full"),
			Div(Class("device-camera absolute left-1/2 top-2 -translate-x-1/2 size-3 rounded-full bg-gray-900 z-10")),
			demoVideo(videoSrc),
		),
	)
}

func demoVideo(src string) g.Node {
	return Video(
		Class("size-full object-cover"),
		Src(src),
		g.Attr("autoplay"), g.Attr("muted"), g.Attr("loop"), g.Attr("playsinline"),
		g.Attr("preload", "metadata"),
	)
}

// OrbitingCircles places icons evenly on a circle of the given radius in
// pixels. The stylesheet animates the rotation.
func OrbitingCircles(icons []string, radius int, reverse bool) g.Node {
	n := len(icons)
	class := "orbit absolute inset-0 flex items-center justify-center"
	if reverse {
		class += " orbit-reverse"
	}
	return Div(
		Class(class),
		Style(fmt.Sprintf("--radius:%dpx", radius)),
		g.Attr("aria-hidden", "true"),
		Div(Class("orbit-path rounded-full border border-gray-300 dark:border-gray-700"),
			Style(fmt.Sprintf("width:%dpx;height:%dpx", 2*radius, 2*radius))),
		g.Group(g.Map(indexed(icons), func(ic indexedString) g.Node {
			angle := 360 * float64(ic.i) / float64(n)
			return Span(Class("orbit-item text-2xl"), Style(fmt.Sprintf("--angle:%.1fdeg", angle)), g.Text(ic.s))
		})),
	)
}

// Carousel scrolls its items sideways forever. The track is rendered twice so
// the CSS loop has no visible seam.
func Carousel(items []g.Node) g.Node {
	track := func(hidden bool) g.Node {
		return Div(Class("carousel-track flex shrink-0 gap-6 pr-6"),
			g.If(hidden, g.Attr("aria-hidden", "true")),
			g.Group(items),
		)
	}
	return Div(Class("carousel group flex overflow-hidden"),
		track(false),
		track(true),
	)
}
