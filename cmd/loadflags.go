package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gosteel/internal/load"
)

// Flag grammar for loads:
//
//	--point "P@x"       e.g. --point "-30@3"      (kN at m from left support)
//	--udl   "w@a:b"     e.g. --udl "-15@0:6"      (kN/m between a and b)
//
// The combine command prefixes each load with its case name:
//
//	--point "Q:-20@2.5"   --udl "G:-10@0:5"
//
// and takes assignments for cases and factors:
//
//	--case "G=1.35"    (case name = partial factor gamma)
//	--factor "G=1.0"   (case name = combination coefficient psi)

// parsePoint parses "P@x" into a point load.
func parsePoint(s string) (load.PointLoad, error) {
	mag, pos, err := splitAt(s)
	if err != nil {
		return load.PointLoad{}, fmt.Errorf("point load %q: %w", s, err)
	}
	position, err := strconv.ParseFloat(pos, 64)
	if err != nil {
		return load.PointLoad{}, fmt.Errorf("point load %q: bad position: %w", s, err)
	}
	return load.PointLoad{Magnitude: mag, Position: position}, nil
}

// parseUDL parses "w@a:b" into a distributed load.
func parseUDL(s string) (load.UDL, error) {
	intensity, interval, err := splitAt(s)
	if err != nil {
		return load.UDL{}, fmt.Errorf("UDL %q: %w", s, err)
	}

	bounds := strings.SplitN(interval, ":", 2)
	if len(bounds) != 2 {
		return load.UDL{}, fmt.Errorf("UDL %q: interval must be \"start:end\"", s)
	}
	start, err := strconv.ParseFloat(bounds[0], 64)
	if err != nil {
		return load.UDL{}, fmt.Errorf("UDL %q: bad start: %w", s, err)
	}
	end, err := strconv.ParseFloat(bounds[1], 64)
	if err != nil {
		return load.UDL{}, fmt.Errorf("UDL %q: bad end: %w", s, err)
	}

	return load.UDL{Intensity: intensity, Start: start, End: end}, nil
}

// splitCasePrefix splits "NAME:rest" into the case name and the load spec.
func splitCasePrefix(s string) (name, rest string, err error) {
	i := strings.Index(s, ":")
	if i <= 0 {
		return "", "", fmt.Errorf("load %q: expected \"CASE:load\"", s)
	}
	return s[:i], s[i+1:], nil
}

// parseAssignment parses "NAME=value" (case gammas and combination factors).
func parseAssignment(s string) (name string, value float64, err error) {
	parts := strings.SplitN(s, "=", 2)
	if len(parts) != 2 || parts[0] == "" {
		return "", 0, fmt.Errorf("assignment %q: expected \"NAME=value\"", s)
	}
	value, err = strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return "", 0, fmt.Errorf("assignment %q: bad value: %w", s, err)
	}
	return parts[0], value, nil
}

// splitAt splits "value@tail" and parses the leading value.
func splitAt(s string) (value float64, tail string, err error) {
	parts := strings.SplitN(s, "@", 2)
	if len(parts) != 2 {
		return 0, "", fmt.Errorf("expected \"value@position\"")
	}
	value, err = strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, "", fmt.Errorf("bad magnitude: %w", err)
	}
	return value, parts[1], nil
}

// buildCase assembles a load case from plain (unprefixed) load flags.
func buildCase(name string, span float64, points, udls []string) (load.Case, error) {
	lc := load.NewCase(name, span)
	for _, s := range points {
		pl, err := parsePoint(s)
		if err != nil {
			return load.Case{}, err
		}
		lc.PointLoads = append(lc.PointLoads, pl)
	}
	for _, s := range udls {
		u, err := parseUDL(s)
		if err != nil {
			return load.Case{}, err
		}
		lc.UDLs = append(lc.UDLs, u)
	}
	return lc, nil
}
