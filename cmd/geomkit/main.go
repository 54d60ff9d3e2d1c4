// Command geomkit exercises the intersect and quadtree packages from the
// command line: generating random input, running an operation, and
// printing the result as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/planarkit/core/intersect"
	"github.com/planarkit/core/point"
	"github.com/planarkit/core/quadtree"
	"github.com/planarkit/core/rectangle"
	"github.com/planarkit/core/segment"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:        "geomkit",
		Usage:       "Generates random planar geometry and runs intersection or quadtree operations against it, emitting JSON",
		HideVersion: true,
		Commands: []*cli.Command{
			intersectCommand(),
			quadtreeCommand(),
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func intersectCommand() *cli.Command {
	return &cli.Command{
		Name:      "intersect",
		Usage:     "Generates random line segments and reports every intersection found",
		UsageText: "geomkit intersect --number <value> --maxx <value> --maxy <value> --algorithm <sweep|bruteforce>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "number",
				Aliases: []string{"n"},
				Usage:   "The number of segments to generate",
				Value:   10,
				Validator: func(n int64) error {
					if n <= 0 {
						return fmt.Errorf("number must be greater than zero")
					}
					return nil
				},
			},
			&cli.FloatFlag{Name: "maxx", Usage: "Maximum X value of the plane", Value: 100},
			&cli.FloatFlag{Name: "maxy", Usage: "Maximum Y value of the plane", Value: 100},
			&cli.FloatFlag{Name: "epsilon", Usage: "Tolerance used by the bruteforce algorithm when comparing coordinates, 0 for exact; sweep always compares exactly", Value: 0},
			&cli.StringFlag{
				Name:  "algorithm",
				Usage: "Which engine to run: sweep or bruteforce",
				Value: "sweep",
				Validator: func(s string) error {
					if s != "sweep" && s != "bruteforce" {
						return fmt.Errorf("algorithm must be sweep or bruteforce")
					}
					return nil
				},
			},
		},
		Action: runIntersect,
	}
}

func runIntersect(_ context.Context, cmd *cli.Command) error {
	n := cmd.Int("number")
	maxX := cmd.Float("maxx")
	maxY := cmd.Float("maxy")
	epsilon := cmd.Float("epsilon")
	algorithm := cmd.String("algorithm")

	segments := make([]segment.Segment, n)
	for i := range segments {
		for {
			s, err := segment.New(
				rand.Float64()*maxX, rand.Float64()*maxY,
				rand.Float64()*maxX, rand.Float64()*maxY,
			)
			if err == nil {
				segments[i] = s
				break
			}
		}
	}

	var matches []intersect.M
	var err error
	if algorithm == "bruteforce" {
		matches, err = intersect.FindBruteForceEpsilon(segments, epsilon)
	} else {
		matches, err = intersect.FindSweep(segments)
	}
	if err != nil {
		return err
	}

	out, err := json.Marshal(struct {
		Segments      []segment.Segment `json:"segments"`
		Intersections []intersect.M     `json:"intersections"`
	}{segments, matches})
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func quadtreeCommand() *cli.Command {
	return &cli.Command{
		Name:      "quadtree",
		Usage:     "Generates random points, indexes them in a quadtree, and runs a range query",
		UsageText: "geomkit quadtree --number <value> --maxx <value> --maxy <value> --capacity <value> --query-x <value> --query-y <value> --query-size <value>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "number",
				Aliases: []string{"n"},
				Usage:   "The number of points to generate",
				Value:   100,
				Validator: func(n int64) error {
					if n <= 0 {
						return fmt.Errorf("number must be greater than zero")
					}
					return nil
				},
			},
			&cli.FloatFlag{Name: "maxx", Usage: "Maximum X value of the plane", Value: 1000},
			&cli.FloatFlag{Name: "maxy", Usage: "Maximum Y value of the plane", Value: 1000},
			&cli.IntFlag{Name: "capacity", Usage: "Leaf capacity before a node splits", Value: int64(quadtree.DefaultCapacity)},
			&cli.FloatFlag{Name: "query-x", Usage: "Minimum X of the query rectangle", Value: 0},
			&cli.FloatFlag{Name: "query-y", Usage: "Minimum Y of the query rectangle", Value: 0},
			&cli.FloatFlag{Name: "query-size", Usage: "Width and height of the query rectangle", Value: 100},
		},
		Action: runQuadtree,
	}
}

func runQuadtree(_ context.Context, cmd *cli.Command) error {
	n := cmd.Int("number")
	maxX := cmd.Float("maxx")
	maxY := cmd.Float("maxy")
	capacity := int(cmd.Int("capacity"))
	queryX := cmd.Float("query-x")
	queryY := cmd.Float("query-y")
	querySize := cmd.Float("query-size")

	qt, err := quadtree.New(rectangle.New(0, 0, maxX, maxY), capacity)
	if err != nil {
		return err
	}

	points := make([]point.Point, 0, n)
	for i := int64(0); i < n; i++ {
		p := point.New(rand.Float64()*maxX, rand.Float64()*maxY)
		if ok, _ := qt.ContainsKey(p); ok {
			continue
		}
		if _, _, err := qt.Put(p, nil); err != nil {
			return err
		}
		points = append(points, p)
	}

	rect := rectangle.New(queryX, queryY, queryX+querySize, queryY+querySize)
	found := qt.FindRange(rect)
	keys := make([]point.Point, len(found))
	for i, e := range found {
		keys[i] = e.Key
	}

	out, err := json.Marshal(struct {
		Inserted int           `json:"inserted"`
		Query    string        `json:"query"`
		Matches  []point.Point `json:"matches"`
	}{len(points), rect.String(), keys})
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
