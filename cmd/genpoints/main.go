// Command genpoints generates a random planar point set and writes it to stdout as JSON, playing
// the "random or file-based point generator" collaborator role spec'd out for the triangulation
// core (the core itself never generates its own input points).
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/arnebn/delaunay2d/point"
)

func main() {
	cmd := &cli.Command{
		Name:      "genpoints",
		Usage:     "Generates a random planar point set and outputs it to stdout as JSON",
		UsageText: "genpoints --number <value> --maxx <value> --minx <value> --maxy <value> --miny <value> --seed <value>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "number",
				Usage:    "The number of points to create",
				Value:    10,
				Aliases:  []string{"n"},
				OnlyOnce: true,
				Validator: func(u int64) error {
					if u <= 0 {
						return fmt.Errorf("number must be greater than zero")
					}
					return nil
				},
			},
			&cli.FloatFlag{
				Name:     "maxx",
				Usage:    "The maximum X value of the plane",
				OnlyOnce: true,
				Value:    10,
			},
			&cli.FloatFlag{
				Name:     "minx",
				Usage:    "The minimum X value of the plane",
				OnlyOnce: true,
				Value:    0,
			},
			&cli.FloatFlag{
				Name:     "maxy",
				Usage:    "The maximum Y value of the plane",
				OnlyOnce: true,
				Value:    10,
			},
			&cli.FloatFlag{
				Name:     "miny",
				Usage:    "The minimum Y value of the plane",
				OnlyOnce: true,
				Value:    0,
			},
			&cli.IntFlag{
				Name:     "seed",
				Usage:    "Seed for the random number generator; 0 selects a time-based seed",
				OnlyOnce: true,
				Value:    0,
			},
		},
		HideVersion: true,
		Action:      app,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func app(_ context.Context, cmd *cli.Command) error {
	minx := cmd.Float("minx")
	maxx := cmd.Float("maxx")
	miny := cmd.Float("miny")
	maxy := cmd.Float("maxy")
	n := cmd.Int("number")
	seed := cmd.Int("seed")

	if minx >= maxx {
		return fmt.Errorf("maxx must be greater than minx")
	}
	if miny >= maxy {
		return fmt.Errorf("maxy must be greater than miny")
	}

	var rng *rand.Rand
	if seed == 0 {
		rng = rand.New(rand.NewSource(rand.Int63()))
	} else {
		rng = rand.New(rand.NewSource(seed))
	}

	output := make([]point.Point, n)
	seen := make(map[point.Point]bool, n)
	for i := int64(0); i < n; i++ {
		for {
			p := point.New(
				minx+rng.Float64()*(maxx-minx),
				miny+rng.Float64()*(maxy-miny),
			)
			if !seen[p] {
				seen[p] = true
				output[i] = p
				break
			}
		}
	}

	b, err := json.Marshal(output)
	if err != nil {
		return err
	}
	fmt.Print(string(b))
	return nil
}
