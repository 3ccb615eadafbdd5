package tween_test

import (
	"fmt"

	"github.com/go-drift/sand/pkg/tween"
)

func ExampleEvaluate() {
	for _, c := range []tween.Curve{tween.BounceOut, tween.BackIn, tween.ElasticOut} {
		fmt.Printf("%s %.4f\n", c, tween.Evaluate(c, 0.5))
	}
	// Output:
	// bounceout 0.7656
	// backin -0.0877
	// elasticout 1.0156
}

func ExampleParseCurve() {
	c, ok := tween.ParseCurve("Quad-In-Out")
	fmt.Println(c, ok, tween.Curve(99))
	// Output:
	// quadinout true Curve(99)
}

// This example eases a width from 100 to 200 pixels.
func ExampleTween() {
	width := tween.TweenFloat64(100, 200)
	width.Curve = tween.Linear
	fmt.Printf("%.1f %.1f\n", width.Evaluate(0), width.Evaluate(1))
	// Output:
	// 100.0 200.0
}
