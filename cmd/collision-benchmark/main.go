// Command collision-benchmark measures MoveInto throughput over random scenes
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/elle-trudgett/luna/collision"
	"github.com/elle-trudgett/luna/logging"
	"github.com/elle-trudgett/luna/physics"
	"github.com/elle-trudgett/luna/vmath"
	"github.com/elle-trudgett/luna/world"
)

const (
	arenaSize   = 200.0
	maxStep     = 8.0
	maxObstacle = 6.0
	queryMargin = 1.0
)

func main() {
	var (
		jobCount  = flag.Int("n", 100000, "number of moves to resolve")
		workers   = flag.Int("workers", runtime.GOMAXPROCS(0), "concurrent workers")
		obstacles = flag.Int("obstacles", 400, "obstacles in the arena")
		seed      = flag.Int64("seed", 1, "random seed")
		logLevel  = flag.String("log", "warn", "log level")
	)
	flag.Parse()

	logger, err := logging.New(*logLevel, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "collision-benchmark: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	fmt.Println("luna MoveInto Benchmark")
	fmt.Println("=======================")
	fmt.Println()

	rng := rand.New(rand.NewSource(*seed))
	set, err := buildArena(rng, *obstacles)
	if err != nil {
		fmt.Fprintf(os.Stderr, "collision-benchmark: %v\n", err)
		os.Exit(1)
	}
	jobs := buildJobs(rng, set, *jobCount)

	mover := physics.NewMover(collision.DefaultResolver, logger)

	fmt.Printf("Arena: %d obstacles, fingerprint %016x\n", set.Len(), set.Fingerprint())
	fmt.Printf("Jobs:  %d moves, %d workers\n", len(jobs), *workers)
	fmt.Println()

	pairs := 0
	for _, j := range jobs {
		pairs += len(j.Obstacles)
	}

	// Sequential baseline
	baseline := make([]physics.StepResult, len(jobs))
	start := time.Now()
	for i, j := range jobs {
		baseline[i] = mover.Resolve(j.Moving, j.Displacement, j.Obstacles)
	}
	sequential := time.Since(start)

	start = time.Now()
	results, err := mover.ResolveBatch(context.Background(), jobs, *workers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "collision-benchmark: %v\n", err)
		os.Exit(1)
	}
	parallel := time.Since(start)

	var collided, failed, mismatched int
	for i, r := range results {
		if r.Collision != baseline[i].Collision || r.Displacement != baseline[i].Displacement {
			mismatched++
		}
		if r.Collision {
			collided++
		}
		if r.Err != nil {
			failed++
		}
	}

	fmt.Printf("Resolved %d moves (%d obstacle pairs):\n", len(jobs), pairs)
	fmt.Printf("  Sequential: %v (%.0f ns/pair)\n", sequential, float64(sequential.Nanoseconds())/float64(max(pairs, 1)))
	fmt.Printf("  Batch:      %v (%.1fx)\n", parallel, float64(sequential)/float64(max(parallel, 1)))
	fmt.Printf("  Collisions: %d, failed safe: %d\n", collided, failed)
	if mismatched > 0 {
		fmt.Fprintf(os.Stderr, "collision-benchmark: %d batch results differ from the sequential run\n", mismatched)
		os.Exit(1)
	}
}

func randomPolygon(rng *rand.Rand, center vmath.Vec2, radius float64) collision.Polygon {
	n := 3 + rng.Intn(6)
	points := make([]vmath.Vec2, n)
	for i := range points {
		points[i] = vmath.V2Add(center, vmath.Vec2{
			X: (rng.Float64()*2 - 1) * radius,
			Y: (rng.Float64()*2 - 1) * radius,
		})
	}
	return collision.Polygon(vmath.ConvexHull(points))
}

func buildArena(rng *rand.Rand, count int) (*world.StaticSet, error) {
	kinds := []world.RegionKind{world.RegionGround, world.RegionWall, world.RegionPlatform, world.RegionCeiling}
	set := world.NewStaticSet()
	for set.Len() < count {
		center := vmath.Vec2{X: rng.Float64() * arenaSize, Y: rng.Float64() * arenaSize}
		var shape collision.Shape
		if rng.Intn(5) == 0 {
			end := vmath.V2Add(center, vmath.Vec2{X: rng.Float64() * maxObstacle, Y: rng.Float64() * maxObstacle})
			shape = collision.SegmentShape(center, end)
		} else {
			shape = collision.PolygonShape(randomPolygon(rng, center, 0.5+rng.Float64()*maxObstacle))
		}
		if shape.Validate() != nil {
			// Hull of nearly collinear samples; draw again
			continue
		}
		o, err := world.NewObstacle(kinds[rng.Intn(len(kinds))], shape)
		if err != nil {
			return nil, err
		}
		set.Add(o)
	}
	return set, nil
}

func buildJobs(rng *rand.Rand, set *world.StaticSet, count int) []physics.Job {
	jobs := make([]physics.Job, 0, count)
	for len(jobs) < count {
		x := rng.Float64() * arenaSize
		y := rng.Float64() * arenaSize
		moving := collision.Rect(x, y, x+1, y+2)
		if moving.Validate() != nil {
			continue
		}
		d := vmath.Vec2{X: (rng.Float64()*2 - 1) * maxStep, Y: (rng.Float64()*2 - 1) * maxStep}
		bounds := collision.BoundsOf(moving).Union(collision.BoundsOf(moving.Translate(d))).Expand(queryMargin)
		jobs = append(jobs, physics.Job{
			Moving:       moving,
			Displacement: d,
			Obstacles:    set.Query(bounds),
		})
	}
	return jobs
}
