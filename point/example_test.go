package point_test

import (
	"fmt"
	"image"

	"github.com/arnebn/delaunay2d/options"
	"github.com/arnebn/delaunay2d/point"
)

func ExampleNew() {
	p := point.New(10.5, 20.25)
	fmt.Printf("Point: %s\n", p)

	// Output:
	// Point: (10.5,20.25)
}

func ExampleNewFromImagePoint() {
	imgPoint := image.Point{X: 10, Y: 20}
	p := point.NewFromImagePoint(imgPoint)

	fmt.Printf("Image Point: %s\n", imgPoint)
	fmt.Printf("Point: %s\n", p)

	// Output:
	// Image Point: (10,20)
	// Point: (10,20)
}

func ExamplePoint_Coordinates() {
	p := point.New(5, -3)

	x, y := p.Coordinates()
	fmt.Printf("Point coordinates: (%g, %g)\n", x, y)

	// Output:
	// Point coordinates: (5, -3)
}

func ExamplePoint_CrossProduct() {
	a := point.New(1, 0)
	b := point.New(0, 1)

	fmt.Printf("%s x %s = %g\n", a, b, a.CrossProduct(b))

	// Output:
	// (1,0) x (0,1) = 1
}

func ExamplePoint_DistanceSquaredToPoint() {
	p := point.New(3, 4)
	q := point.New(6, 8)

	fmt.Printf("The squared distance between %s and %s is %g\n", p, q, p.DistanceSquaredToPoint(q))

	// Output:
	// The squared distance between (3,4) and (6,8) is 25
}

func ExamplePoint_DistanceToPoint() {
	p1 := point.New(3, 4)
	p2 := point.New(0, 0)

	fmt.Printf("The Euclidean distance between %s and %s is %.2f\n", p1, p2, p1.DistanceToPoint(p2))

	// Output:
	// The Euclidean distance between (3,4) and (0,0) is 5.00
}

func ExamplePoint_DotProduct() {
	p1 := point.New(3, 4)
	p2 := point.New(1, 2)

	fmt.Printf("The dot product of vector %s and vector %s is %.2f\n", p1, p2, p1.DotProduct(p2))

	// Output:
	// The dot product of vector (3,4) and vector (1,2) is 11.00
}

func ExamplePoint_Eq() {
	p := point.New(3, 4)
	q := point.New(3, 4)

	fmt.Printf("Are %s and %s equal: %t\n", p, q, p.Eq(q))

	// Output:
	// Are (3,4) and (3,4) equal: true
}

func ExamplePoint_Eq_epsilon() {
	p := point.New(3, 4)
	q := point.New(3.00000000001, 4.00000000001)
	epsilon := 1e-8

	isEqual := p.Eq(q, options.WithEpsilon(epsilon))
	fmt.Printf("Are %s and %s equal: %t (with epsilon: %0.0e)\n", p, q, isEqual, epsilon)

	// Output:
	// Are (3,4) and (3.00000000001,4.00000000001) equal: true (with epsilon: 1e-08)
}

func ExamplePoint_Negate() {
	p := point.New(3, -4)
	fmt.Println("Original Point:", p)
	fmt.Println("Negated Point:", p.Negate())

	// Output:
	// Original Point: (3,-4)
	// Negated Point: (-3,4)
}

func ExamplePoint_Perp() {
	p := point.New(1, 0)
	fmt.Printf("%s rotated a quarter turn counterclockwise is %s\n", p, p.Perp())

	// Output:
	// (1,0) rotated a quarter turn counterclockwise is (0,1)
}

func ExamplePoint_Scale() {
	p := point.New(3, 4)
	fmt.Printf("%s scaled by 2 is %s\n", p, p.Scale(2))

	// Output:
	// (3,4) scaled by 2 is (6,8)
}

func ExamplePoint_String() {
	p := point.New(1, 2)
	fmt.Println(p)

	// Output:
	// (1,2)
}

func ExamplePoint_Add() {
	p := point.New(1, 2)
	delta := point.New(-2, -4)

	fmt.Printf("Point %s plus %s is %s\n", p, delta, p.Add(delta))

	// Output:
	// Point (1,2) plus (-2,-4) is (-1,-2)
}

func ExamplePoint_X() {
	p := point.New(1, 2)
	fmt.Printf("The X coordinate of point %s is %g\n", p, p.X())

	// Output:
	// The X coordinate of point (1,2) is 1
}

func ExamplePoint_Y() {
	p := point.New(1, 2)
	fmt.Printf("The Y coordinate of point %s is %g\n", p, p.Y())

	// Output:
	// The Y coordinate of point (1,2) is 2
}
