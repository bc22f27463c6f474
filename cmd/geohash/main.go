// Command geohash encodes coordinates, decodes geohashes and computes
// grid-adjacent cells from the command line.
//
// Usage:
//
//	geohash encode 37.7749 -- -122.4194
//	geohash -p 5 encode 37.7749 -- -122.4194
//	geohash decode 9q8yy
//	geohash -d north neighbor 9q8yy
//	geohash -f yaml neighbors 9q8yy
//
// Results are written to stdout as JSON by default, or YAML with -f yaml.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/spatialref/geohash"
)

type options struct {
	Precision int    `short:"p" long:"precision" default:"12" description:"Geohash length in symbols (encode)"`
	Direction string `short:"d" long:"direction" default:"north" description:"Compass direction (neighbor)" choice:"north" choice:"northeast" choice:"east" choice:"southeast" choice:"south" choice:"southwest" choice:"west" choice:"northwest" choice:"n" choice:"ne" choice:"e" choice:"se" choice:"s" choice:"sw" choice:"w" choice:"nw"`
	Format    string `short:"f" long:"format" default:"json" description:"Output format" choice:"json" choice:"yaml"`

	Args struct {
		Operation string   `positional-arg-name:"operation" required:"true" description:"encode | decode | neighbor | neighbors"`
		Values    []string `positional-arg-name:"value" description:"encode: latitude longitude; others: geohash"`
	} `positional-args:"true"`
}

var directionsByName = map[string]geohash.Direction{
	"n": geohash.North, "north": geohash.North,
	"ne": geohash.NorthEast, "northeast": geohash.NorthEast,
	"e": geohash.East, "east": geohash.East,
	"se": geohash.SouthEast, "southeast": geohash.SouthEast,
	"s": geohash.South, "south": geohash.South,
	"sw": geohash.SouthWest, "southwest": geohash.SouthWest,
	"w": geohash.West, "west": geohash.West,
	"nw": geohash.NorthWest, "northwest": geohash.NorthWest,
}

type encodeResult struct {
	Geohash string `json:"geohash" yaml:"geohash"`
}

type decodeResult struct {
	Latitude       float64 `json:"latitude" yaml:"latitude"`
	Longitude      float64 `json:"longitude" yaml:"longitude"`
	LatitudeError  float64 `json:"latitude_error" yaml:"latitude_error"`
	LongitudeError float64 `json:"longitude_error" yaml:"longitude_error"`
}

type neighborResult struct {
	Direction string `json:"direction" yaml:"direction"`
	Geohash   string `json:"geohash" yaml:"geohash"`
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	result, err := run(opts)
	if err != nil {
		log.Fatal().Err(err).Str("operation", opts.Args.Operation).Msg("operation failed")
	}

	if err := emit(os.Stdout, result, opts.Format); err != nil {
		log.Fatal().Err(err).Msg("writing output failed")
	}
}

func run(opts options) (any, error) {
	switch opts.Args.Operation {
	case "encode":
		if len(opts.Args.Values) != 2 {
			return nil, fmt.Errorf("encode needs exactly two values: latitude longitude")
		}
		lat, err := strconv.ParseFloat(opts.Args.Values[0], 64)
		if err != nil {
			return nil, fmt.Errorf("parsing latitude: %w", err)
		}
		lng, err := strconv.ParseFloat(opts.Args.Values[1], 64)
		if err != nil {
			return nil, fmt.Errorf("parsing longitude: %w", err)
		}
		hash, err := geohash.EncodeWithPrecision(geohash.Point{Latitude: lat, Longitude: lng}, opts.Precision)
		if err != nil {
			return nil, err
		}
		return encodeResult{Geohash: hash}, nil

	case "decode":
		hash, err := singleHash(opts)
		if err != nil {
			return nil, err
		}
		box, err := geohash.DecodeBoundingBox(hash)
		if err != nil {
			return nil, err
		}
		center := box.Center()
		return decodeResult{
			Latitude:       center.Latitude,
			Longitude:      center.Longitude,
			LatitudeError:  box.LatitudeError(),
			LongitudeError: box.LongitudeError(),
		}, nil

	case "neighbor":
		hash, err := singleHash(opts)
		if err != nil {
			return nil, err
		}
		d := directionsByName[opts.Direction]
		adjacent, err := geohash.Neighbor(hash, d)
		if err != nil {
			return nil, err
		}
		return neighborResult{Direction: d.String(), Geohash: adjacent}, nil

	case "neighbors":
		hash, err := singleHash(opts)
		if err != nil {
			return nil, err
		}
		all, err := geohash.Neighbors(hash)
		if err != nil {
			return nil, err
		}
		results := make([]neighborResult, len(all))
		for i, adjacent := range all {
			results[i] = neighborResult{
				Direction: geohash.Direction(i).String(),
				Geohash:   adjacent,
			}
		}
		return results, nil

	default:
		return nil, fmt.Errorf("unknown operation %q (want encode, decode, neighbor or neighbors)", opts.Args.Operation)
	}
}

func singleHash(opts options) (string, error) {
	if len(opts.Args.Values) != 1 {
		return "", fmt.Errorf("%s needs exactly one value: a geohash", opts.Args.Operation)
	}
	return opts.Args.Values[0], nil
}

func emit(out *os.File, result any, format string) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		return enc.Encode(result)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
