// This defines a basic executable for drawing an elevation map along with the
// greedy paths walked across it.
package main

import (
	"flag"
	"fmt"
	"github.com/yalue/elevation"
	"github.com/yalue/image_utils"
	"image"
	"image/color"
	"image/png"
	"os"
)

const arrowLength = 16

// The color used for the best path when walking every row.
var bestPathColor = color.RGBA{100, 120, 255, 255}

// Returns the right-pointing arrow marking the start row, with a white
// interior.
func getOutlinedArrow(arrowColor color.Color) image.Image {
	outerArrow := image_utils.ResizeImage(image_utils.RightArrow(arrowColor),
		arrowLength, arrowLength)
	innerArrow := image_utils.ResizeImage(image_utils.RightArrow(color.White),
		arrowLength/2, arrowLength/2)
	toReturn := image_utils.NewCompositeImage()
	toReturn.AddImage(outerArrow, image.Pt(0, 0))
	toReturn.AddImage(innerArrow, image.Pt(arrowLength/4, arrowLength/4))
	return image_utils.ToRGBA(toReturn)
}

// Scales the map so each cell is scale pixels across, and, if startRow is
// not negative, adds an arrow to the left of the start row. Rasterizes
// everything to an image.RGBA.
func drawDecorations(m *elevation.ElevationImage, scale,
	startRow int) (*image.RGBA, error) {
	bounds := m.Bounds()
	var mapPic image.Image = m
	if scale > 1 {
		mapPic = image_utils.ResizeImage(m, bounds.Dx()*scale,
			bounds.Dy()*scale)
	}
	decorated := image_utils.NewCompositeImage()
	if startRow < 0 {
		e := decorated.AddImage(mapPic, image.Pt(0, 0))
		if e != nil {
			return nil, fmt.Errorf("Error setting base map image: %w", e)
		}
		return image_utils.ToRGBA(decorated), nil
	}
	e := decorated.AddImage(mapPic, image.Pt(arrowLength+1, 0))
	if e != nil {
		return nil, fmt.Errorf("Error setting base map image: %w", e)
	}
	greenColor := color.RGBA{40, 180, 70, 255}
	arrowY := startRow*scale + scale/2 - arrowLength/2
	if arrowY < 0 {
		arrowY = 0
	}
	e = decorated.AddImage(getOutlinedArrow(greenColor), image.Pt(0, arrowY))
	if e != nil {
		return nil, fmt.Errorf("Error adding start arrow: %w", e)
	}
	return image_utils.ToRGBA(decorated), nil
}

func parseBoundaryPolicy(s string) (elevation.BoundaryPolicy, error) {
	switch s {
	case "clamp":
		return elevation.ClampToGrid, nil
	case "reject":
		return elevation.RejectAtEdge, nil
	}
	return 0, fmt.Errorf("Invalid boundary policy %q, must be \"clamp\" or "+
		"\"reject\"", s)
}

// Highlights every row's walk, then the best walk in a second color. Returns
// the best path.
func highlightAllRows(g *elevation.Grid, m *elevation.ElevationImage,
	seed int64, boundary elevation.BoundaryPolicy) (elevation.Path, error) {
	results := elevation.WalkAllRows(g, func(row int) elevation.TieBreaker {
		if seed <= 0 {
			return elevation.NewRandomTieBreaker(-1)
		}
		return elevation.NewRandomTieBreaker(seed + int64(row))
	}, boundary)
	failed := 0
	for i := range results {
		if results[i].Err != nil {
			failed++
			continue
		}
		e := m.HighlightPath(results[i].Path, elevation.DefaultPathColor)
		if e != nil {
			return nil, e
		}
	}
	if failed > 0 {
		fmt.Printf("%d of %d walks failed.\n", failed, len(results))
	}
	best, e := elevation.BestWalk(results)
	if e != nil {
		return nil, e
	}
	fmt.Printf("Best walk starts at row %d, total elevation change %d.\n",
		best.StartRow, best.ElevationChange)
	e = m.HighlightPath(best.Path, bestPathColor)
	if e != nil {
		return nil, e
	}
	return best.Path, nil
}

// Highlights the walk from a single row. Returns the path.
func highlightOneRow(g *elevation.Grid, m *elevation.ElevationImage,
	startRow int, seed int64,
	boundary elevation.BoundaryPolicy) (elevation.Path, error) {
	w, e := elevation.NewWalker(g, elevation.NewRandomTieBreaker(seed),
		boundary)
	if e != nil {
		return nil, e
	}
	path, e := w.Walk(startRow, 0)
	if e != nil {
		return nil, e
	}
	change, e := path.ElevationChange(g)
	if e != nil {
		return nil, e
	}
	fmt.Printf("Walk from row %d has total elevation change %d.\n", startRow,
		change)
	e = m.HighlightPath(path, elevation.DefaultPathColor)
	if e != nil {
		return nil, e
	}
	return path, nil
}

func run() int {
	var startRow, scale, borderWidth int
	var randomSeed int64
	var inputFilename, outFilename, profileFilename, boundaryName string
	flag.StringVar(&inputFilename, "input_file", "elevation_small.txt",
		"The text file containing one row of elevations per line.")
	flag.IntVar(&startRow, "start_row", -1,
		"The row from which to walk. If negative, walks from every row and "+
			"highlights the best path.")
	flag.StringVar(&boundaryName, "boundary", "clamp",
		"What to do at the first and last rows: \"clamp\" or \"reject\".")
	flag.Int64Var(&randomSeed, "random_seed", -1,
		"If positive, specifies the random seed to use for breaking ties.")
	flag.IntVar(&scale, "scale", 1,
		"The width and height of each grid cell, in pixels.")
	flag.IntVar(&borderWidth, "border", 0,
		"The width of a white border around the image, in pixels.")
	flag.StringVar(&outFilename, "output_file", "",
		"The name of the .png file to which the map will be saved.")
	flag.StringVar(&profileFilename, "profile_file", "",
		"An optional .png file to which an elevation plot of the path will "+
			"be saved.")
	flag.Parse()
	if (scale < 1) || (borderWidth < 0) || (outFilename == "") {
		fmt.Println("Invalid or missing argument.")
		fmt.Println("Run with -help for more information.")
		return 1
	}
	boundary, e := parseBoundaryPolicy(boundaryName)
	if e != nil {
		fmt.Printf("%s\n", e)
		return 1
	}
	g, e := elevation.LoadGridFile(inputFilename)
	if e != nil {
		fmt.Printf("Failed reading elevations: %s\n", e)
		return 1
	}
	m := elevation.NewElevationImage(g)
	fmt.Printf("Loaded %s OK.\n", m.GetInfo())
	var path elevation.Path
	if startRow < 0 {
		path, e = highlightAllRows(g, m, randomSeed, boundary)
	} else {
		path, e = highlightOneRow(g, m, startRow, randomSeed, boundary)
	}
	if e != nil {
		fmt.Printf("Error walking the map: %s\n", e)
		return 1
	}
	finalPic, e := drawDecorations(m, scale, startRow)
	if e != nil {
		fmt.Printf("Error adding map decorations: %s\n", e)
		return 1
	}
	f, e := os.Create(outFilename)
	if e != nil {
		fmt.Printf("Error creating output file %s: %s\n", outFilename, e)
		return 1
	}
	defer f.Close()
	e = png.Encode(f, elevation.AddImageBorder(finalPic, color.White,
		borderWidth))
	if e != nil {
		fmt.Printf("Error writing image to %s: %s\n", outFilename, e)
		return 1
	}
	fmt.Printf("Image %s written OK.\n", outFilename)
	if profileFilename != "" {
		e = elevation.SavePathProfile(g, path, profileFilename)
		if e != nil {
			fmt.Printf("%s\n", e)
			return 1
		}
		fmt.Printf("Profile %s written OK.\n", profileFilename)
	}
	return 0
}

func main() {
	os.Exit(run())
}
