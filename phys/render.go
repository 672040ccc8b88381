// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"log"
	"math"
	"reflect"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"tracer/r3"
)

type ray struct {
	radiance  Spectrum
	origin    r3.Point
	direction r3.Vec
	depth     int
	pixelX    int
	pixelY    int
	time      float64
	rand      *Rand
}

func (r ray) at(t Distance) r3.Point {
	p := r.origin.Add(r.direction.Muls(float64(t)))
	return p
}

// RenderStats collects runtime metrics for the rendering process.
type RenderStats struct {
	RaysExceededDepth uint64        // Total count of rays that exceeded max ray depth.
	RaysLeftScene     uint64        // Total count of rays that left the scene.
	TotalRays         uint64        // Total count of all rays generated.
	RenderTime        time.Duration // How long it took to render the scene.
	Dx                int           // Width of the rendered image.
	Dy                int           // Height of the rendered image.
}

func (stats RenderStats) String() string {
	return fmt.Sprintf("RenderStats{RaysExceededDepth=%d, RaysLeftScene=%d, TotalRays=%d, RenderTime=%s}",
		stats.RaysExceededDepth, stats.RaysLeftScene, stats.TotalRays, stats.RenderTime)
}

func (s RenderStats) PPrint() string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		panic(err)
	}
	str := string(data)
	timePerPx := s.RenderTime / time.Duration(s.Dx*s.Dy)
	var maxDepthPercent float64
	var outScenePercent float64
	if s.TotalRays != 0 {
		maxDepthPercent = 100 * float64(s.RaysExceededDepth) / float64(s.TotalRays)
		outScenePercent = 100 * float64(s.RaysLeftScene) / float64(s.TotalRays)
	}
	str += "\n" + fmt.Sprintf("RenderTime: %s (%s per pixel)\n", s.RenderTime, timePerPx)
	str += fmt.Sprintf("TotalRays: %d\n", s.TotalRays)
	str += fmt.Sprintf("RaysExceedingDepth: %d (%.1f%%)\n", s.RaysExceededDepth, maxDepthPercent)
	str += fmt.Sprintf("RaysLeftScene: %d (%.1f%%)\n", s.RaysLeftScene, outScenePercent)
	str += fmt.Sprintf("Rendered %dx%d\n", s.Dx, s.Dy)
	return str
}

type RenderOptions struct {
	Seed         int64 // Random base seed.
	RaysPerPixel int   // Number of rays to generate for each pixel.
	MaxRayDepth  int   // Maximum number of collisions before terminating ray.
	Dx           int   // Width of the rendered image in pixels.
	Dy           int   // Height of the rendered image in pixels.
}

func (r RenderOptions) Validate() error {
	if r.Seed < 0 {
		return fmt.Errorf("bad Seed must be non-negative but got %d", r.Seed)
	}
	if r.RaysPerPixel <= 0 {
		return fmt.Errorf("bad RaysPerPixel must be positive but got %d", r.RaysPerPixel)
	}
	if r.MaxRayDepth <= 0 {
		return fmt.Errorf("bad MaxRayDepth must be positive but got %d", r.MaxRayDepth)
	}
	if r.Dx <= 0 {
		return fmt.Errorf("bad Dx must be positive but got %d", r.Dx)
	}
	if r.Dy <= 0 {
		return fmt.Errorf("bad Dy must be positive but got %d", r.Dy)
	}
	return nil
}

// RenderArtifact represents the output of a rendering process (a render artifact).
type RenderArtifact struct {
	Image *image.RGBA
	Stats RenderStats
}

type tile struct {
	x0, x1, y0, y1 int
}

func (t tile) String() string {
	return fmt.Sprintf("Tile{xStart=%d, xEnd=%d, yStart=%d, yEnd=%d}", t.x0, t.x1, t.y0, t.y1)
}

// min reports the smaller of a and b.
// It works for any ordered type: integers, floats, strings.
func min[T cmp.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// max reports the larger of a and b.
func max[T cmp.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// clamp reports a if a is in [min, max], min if a < min, and max if a > max.
func clamp[T cmp.Ordered](a, minVal, maxVal T) T {
	if a < minVal {
		return minVal
	}
	if a > maxVal {
		return maxVal
	}
	return a
}

// shadowEps offsets shadow-ray origins and trims their tmax so a surface
// never shadows itself from its own collision point.
const shadowEps = 1e-4

// offsetOrigin nudges p along the geometric normal, on the side w points
// into, to avoid self-intersection when a fresh ray leaves a surface.
func offsetOrigin(p r3.Point, ng, w r3.Vec) r3.Point {
	d := ng
	if ng.Dot(w) < 0 {
		d = ng.Muls(-1)
	}
	return p.Add(d.Muls(shadowEps))
}

// intersectScene finds the nearest collision of r against every node in the
// scene, returning the hit node alongside its collision.
func intersectScene(scene *Scene, r ray) (bool, collision, *Node) {
	var nearest collision
	var nearestNode *Node
	minDist := Distance(math.MaxFloat64)
	hit := false
	for i := range scene.Node {
		node := &scene.Node[i]
		h, c := node.Shape.Collide(r, eps, minDist)
		if h && c.t < minDist {
			minDist = c.t
			nearest = c
			nearestNode = node
			hit = true
		}
	}
	return hit, nearest, nearestNode
}

// occluded reports whether any node blocks the segment from origin toward
// wi, up to distance dist, used by the shadow ray in next-event estimation.
func occluded(scene *Scene, origin r3.Point, wi r3.Vec, dist Distance) bool {
	tmax := dist - shadowEps
	if tmax <= shadowEps {
		return false
	}
	shadow := ray{origin: origin, direction: wi}
	for i := range scene.Node {
		if h, _ := scene.Node[i].Shape.Collide(shadow, shadowEps, tmax); h {
			return true
		}
	}
	return false
}

// lightForShape returns the scene light backed by the same shape as node, if
// any, so a path that hits an emissive node implicitly can still weigh its
// contribution by the corresponding light's sampling pdf in the power
// heuristic.
func lightForShape(scene *Scene, node *Node) Light {
	for _, l := range scene.Light {
		if al, ok := l.(AreaLight); ok && reflect.DeepEqual(al.Shape, node.Shape) {
			return l
		}
	}
	return nil
}

// estimateDirect computes the light-sampling half of multiple importance
// sampling for one light: it samples a direction toward light, evaluates the
// BSDF there, and weighs the result against the BSDF's own pdf of having
// sampled that same direction (Veach's power heuristic). The complementary
// BSDF-sampling half is handled implicitly back in radiance, when a
// BSDF-sampled ray happens to hit an emissive surface.
func estimateDirect(scene *Scene, col collision, wo r3.Vec, bsdf *BSDF, light Light, rnd *Rand, stream *sampleStream) Spectrum {
	u := stream.Next2D()
	wi, dist, Le, lightPdf, ok := light.SampleLi(col.at, u)
	if !ok || lightPdf == 0 || Le.IsBlack() {
		return Spectrum{}
	}
	f := bsdf.F(wo, wi, BSDFAll).Muls(math.Abs(wi.Dot(col.ng)))
	if f.IsBlack() {
		return Spectrum{}
	}
	origin := offsetOrigin(col.at, col.ng, wi)
	if occluded(scene, origin, wi, dist) {
		return Spectrum{}
	}
	if light.IsDelta() {
		return f.Mul(Le).Divs(lightPdf)
	}
	bsdfPdf := bsdf.Pdf(wo, wi, BSDFAll)
	weight := powerHeuristic(1, lightPdf, 1, bsdfPdf)
	return f.Mul(Le).Muls(weight / lightPdf)
}

// sampleOneLight picks one light from the scene uniformly at random and
// estimates its direct contribution, scaled to remain an unbiased estimator
// of the sum over all lights.
func sampleOneLight(scene *Scene, col collision, wo r3.Vec, bsdf *BSDF, rnd *Rand, stream *sampleStream) Spectrum {
	n := len(scene.Light)
	if n == 0 {
		return Spectrum{}
	}
	light := scene.Light[rnd.Intn(n)]
	return estimateDirect(scene, col, wo, bsdf, light, rnd, stream).Muls(float64(n))
}

// radiance traces a single camera (or continuation) ray through the scene,
// accumulating outgoing radiance via next-event estimation at every
// non-specular bounce, combined with the implicit BSDF-sampled path via
// Veach's power heuristic, and Russian-roulette path termination rather than
// a hard ray-depth cutoff alone.
func radiance(ctx context.Context, scene *Scene, r ray, rnd *Rand, stream *sampleStream, stats *RenderStats) Spectrum {
	var L Spectrum
	beta := Spectrum{X: 1, Y: 1, Z: 1}
	specularBounce := true
	prevPdf := 1.0

	for bounce := 0; ; bounce++ {
		atomic.AddUint64(&stats.TotalRays, 1)
		if ctx.Err() != nil {
			return L
		}
		if r.origin.IsNaN() || r.origin.IsInf() || r.direction.IsNaN() || r.direction.IsInf() {
			log.Printf("invalid ray: %+v", r)
			return L
		}

		hit, col, node := intersectScene(scene, r)
		if !hit {
			atomic.AddUint64(&stats.RaysLeftScene, 1)
			return L
		}
		wo := r.direction.Muls(-1)

		if emitted := node.Material.Emission(col, wo); !emitted.IsBlack() {
			if specularBounce {
				L = L.Add(beta.Mul(emitted))
			} else if light := lightForShape(scene, node); light != nil {
				lightPdf := light.PdfLi(r.origin, r.direction)
				weight := powerHeuristic(1, prevPdf, 1, lightPdf)
				L = L.Add(beta.Mul(emitted).Muls(weight))
			} else {
				L = L.Add(beta.Mul(emitted))
			}
		}

		bsdf := node.Material.ComputeScatteringFunctions(col)
		if bsdf == nil {
			return L
		}
		if bounce >= scene.RenderOptions.MaxRayDepth {
			atomic.AddUint64(&stats.RaysExceededDepth, 1)
			return L
		}

		if bsdf.HasNonSpecular() && len(scene.Light) > 0 {
			Ld := sampleOneLight(scene, col, wo, bsdf, rnd, stream)
			L = L.Add(beta.Mul(Ld))
		}

		u := stream.Next2D()
		wi, f, pdf, sampledType, ok := bsdf.SampleF(wo, u, stream.Next1D(), BSDFAll)
		if !ok || pdf == 0 || f.IsBlack() {
			return L
		}
		beta = beta.Mul(f).Muls(math.Abs(wi.Dot(col.ng)) / pdf)
		specularBounce = sampledType&BSDFSpecular != 0
		prevPdf = pdf

		r = ray{
			origin:    offsetOrigin(col.at, col.ng, wi),
			direction: wi,
			depth:     r.depth + 1,
			time:      r.time,
			rand:      r.rand,
		}

		// Russian roulette: once a path has accumulated enough bounces that
		// its remaining contribution is likely small, terminate it with
		// probability q, compensating survivors by 1/(1-q) to stay unbiased.
		if bounce > 3 {
			q := math.Max(0.05, 1-beta.Luminance())
			if rnd.Float64() < q {
				return L
			}
			beta = beta.Divs(1 - q)
		}
	}
}

// renderTile renders every pixel in t, splatting each sample into target
// through a low-discrepancy sample pattern rather than independently
// averaging per-pixel box samples.
func renderTile(ctx context.Context, scene *Scene, camera Camera, t tile, target *RenderTarget, sampler LowDiscrepancySampler, spp int, rnd *Rand, stats *RenderStats) {
	dx := scene.RenderOptions.Dx
	dy := scene.RenderOptions.Dy
	for y := t.y0; y < t.y1; y++ {
		if ctx.Err() != nil {
			return
		}
		for x := t.x0; x < t.x1; x++ {
			scrambleX := rnd.Uint32()
			scrambleY := rnd.Uint32()
			for s := 0; s < spp; s++ {
				if ctx.Err() != nil {
					return
				}
				jitter := sampler.Sample(uint32(s), scrambleX, scrambleY)
				px := float64(x) + jitter.X
				py := float64(y) + jitter.Y
				cast := camera.Cast(px/float64(dx), py/float64(dy), rnd)
				cast.pixelX = x
				cast.pixelY = y
				stream := newSampleStream(sampler, uint32(s), scrambleX, scrambleY)
				L := radiance(ctx, scene, cast, rnd, stream, stats)
				target.AddSample(px, py, L)
			}
		}
	}
}

// renderScene drives the worker pool that renders the full image: tiles are
// handed out from a Morton-ordered BlockQueue, and workers run under an
// errgroup so the first hard worker error (as opposed to an exceeded ray
// depth, which is merely recorded in stats) cancels every sibling.
func renderScene(ctx context.Context, scene *Scene, camera Camera, cfg EngineConfig) (RenderArtifact, error) {
	t0 := time.Now()
	dx := scene.RenderOptions.Dx
	dy := scene.RenderOptions.Dy
	stats := RenderStats{Dx: dx, Dy: dy}

	target := NewRenderTarget(dx, dy, cfg.reconFilter())
	spp := scene.RenderOptions.RaysPerPixel
	if cfg.SamplesPerPixel > 0 {
		spp = cfg.SamplesPerPixel
	}
	sampler := LowDiscrepancySampler{SamplesPerPixel: spp}
	roundedSPP := sampler.RoundedSPP()

	tileSize := cfg.TileSize
	if tileSize <= 0 {
		tileSize = 16
	}
	queue := NewBlockQueue(dx, dy, tileSize)

	numWorkers := cfg.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	workerStats := make([]RenderStats, numWorkers)

	seed := scene.RenderOptions.Seed
	if cfg.Seed != 0 {
		seed = cfg.Seed
	}

	g, ctxGroup := errgroup.WithContext(ctx)
	for w := 0; w < numWorkers; w++ {
		w := w
		g.Go(func() error {
			rnd := NewRand(seed + int64(w) + 1)
			for {
				if err := ctxGroup.Err(); err != nil {
					return err
				}
				t, ok := queue.Next()
				if !ok {
					return nil
				}
				renderTile(ctxGroup, scene, camera, t, target, sampler, roundedSPP, rnd, &workerStats[w])
			}
		})
	}
	if err := g.Wait(); err != nil {
		return RenderArtifact{}, err
	}

	for _, ws := range workerStats {
		stats.TotalRays += ws.TotalRays
		stats.RaysExceededDepth += ws.RaysExceededDepth
		stats.RaysLeftScene += ws.RaysLeftScene
	}
	stats.RenderTime = time.Since(t0)
	return RenderArtifact{Image: target.Develop(), Stats: stats}, nil
}

// Render renders scene with default engine tuning. Use RenderWithConfig to
// override tile size, worker count, sample count, filter, or seed without
// modifying the scene.
func Render(ctx context.Context, scene *Scene) (output RenderArtifact, err error) {
	return RenderWithConfig(ctx, scene, DefaultEngineConfig())
}

// RenderWithConfig renders scene using cfg for engine-level tuning.
func RenderWithConfig(ctx context.Context, scene *Scene, cfg EngineConfig) (output RenderArtifact, err error) {
	if err := cfg.Validate(); err != nil {
		return RenderArtifact{}, errors.Wrap(err, "invalid EngineConfig")
	}
	err = scene.Validate()
	if err != nil {
		return RenderArtifact{}, errors.Wrap(err, "invalid scene")
	}
	// Select the first camera in the scene.
	// We already know there is at least one camera in the scene.
	camera := scene.Camera[0]
	output, err = renderScene(ctx, scene, camera, cfg)
	if err != nil {
		return RenderArtifact{}, errors.Wrap(err, "failed to render scene")
	}
	return output, nil
}
