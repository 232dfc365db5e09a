package main

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mcpnr/mcpnr/legalize"
	"github.com/mcpnr/mcpnr/netlist"
	"github.com/mcpnr/mcpnr/placement"
)

// jsonCell is the on-disk stand-in for one netlist cell, mirroring
// netlist.ModuleCell in a shape encoding/json can decode directly.
type jsonCell struct {
	Name       string             `json:"name"`
	Type       string             `json:"type"`
	Locked     bool               `json:"locked"`
	X          float64            `json:"x"`
	Y          float64            `json:"y"`
	Z          float64            `json:"z"`
	SX         float64            `json:"sx"`
	SY         float64            `json:"sy"`
	SZ         float64            `json:"sz"`
	Attributes map[string]string  `json:"attributes,omitempty"`
	Parameter  map[string]string  `json:"parameters,omitempty"`
	Connection map[string][]int   `json:"connections,omitempty"`
}

// jsonModule is the on-disk stand-in for a whole parsed design.
type jsonModule struct {
	Cells    []jsonCell `json:"cells"`
	NetNames []string   `json:"net_names,omitempty"`
}

func loadModule(path string) (netlist.Module, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return netlist.Module{}, errors.Wrap(err, "mcpnr: read input")
	}

	var jm jsonModule
	if err := json.Unmarshal(raw, &jm); err != nil {
		return netlist.Module{}, errors.Wrap(netlist.ErrParseFailed, err.Error())
	}

	cells := make([]netlist.ModuleCell, len(jm.Cells))
	for i, c := range jm.Cells {
		cells[i] = netlist.ModuleCell{
			Name: c.Name, Type: c.Type, Locked: c.Locked,
			X: c.X, Y: c.Y, Z: c.Z,
			SX: c.SX, SY: c.SY, SZ: c.SZ,
			Attributes: c.Attributes, Parameter: c.Parameter, Connection: c.Connection,
		}
	}

	return netlist.Module{Cells: cells, NetNames: jm.NetNames}, nil
}

func writePlacedDesign(path string, design netlist.PlacedDesign) error {
	out, err := json.MarshalIndent(design, "", "  ")
	if err != nil {
		return errors.Wrap(err, "mcpnr: marshal output")
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return errors.Wrap(err, "mcpnr: write output")
	}
	return nil
}

// runPlaceAndRoute loads a netlist, runs the full placement schedule,
// legalizes the result to integer positions, and writes the placed design.
// Detail routing and wire splatting consume the legalized grid separately
// once a downstream caller has block-registry context; this entrypoint
// covers the core place-and-legalize path per spec.md's scope.
func runPlaceAndRoute(inputPath, outputPath, techlibDir string) error {
	fi, err := os.Stat(techlibDir)
	if err != nil {
		return errors.Wrapf(err, "mcpnr: techlib directory %q", techlibDir)
	}
	if !fi.IsDir() {
		return errors.Errorf("mcpnr: techlib %q is not a directory", techlibDir)
	}

	module, err := loadModule(inputPath)
	if err != nil {
		return err
	}

	net, err := netlist.FromModule(module)
	if err != nil {
		return errors.Wrap(err, "mcpnr: build hypergraph")
	}

	if disconnected := netlist.FindDisconnectedSignals(net); len(disconnected) > 0 {
		logrus.WithField("signals", disconnected).Warn("mcpnr: disconnected signals detected")
	}

	geo := placement.GeometryConfig{SizeX: 8, SizeY: 8, SizeZ: 96, TargetFill: 0.6, VelocityGain: 1.0}
	orch := placement.Orchestrator{Schedule: placement.DefaultSchedule(), Geometry: geo}
	if err := orch.Run(net); err != nil {
		return errors.Wrap(err, "mcpnr: placement")
	}

	if err := legalizeInPlace(net, geo); err != nil {
		return errors.Wrap(err, "mcpnr: legalize")
	}

	design := net.BuildOutput(version, "mcpnr-go")
	if err := writePlacedDesign(outputPath, design); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{"cells": net.Cells.Len(), "output": outputPath}).Info("mcpnr: placement complete")
	return nil
}

// legalizeInPlace converts every cell's continuous position to the
// legalizer's snapped integer grid position and writes it back; locked
// cells are passed with their stated position and keep it.
func legalizeInPlace(net *netlist.NetlistHypergraph, geo placement.GeometryConfig) error {
	numTiers := int(geo.SizeY)
	sizeZBlocks := int(geo.SizeZ)

	cells := make([]legalize.Cell, net.Cells.Len())
	for i := 0; i < net.Cells.Len(); i++ {
		cells[i] = legalize.Cell{
			ID:    i,
			X:     net.Cells.X[i],
			TierY: int(net.Cells.Y[i]) / placement.BlocksPerTier,
			Z:     net.Cells.Z[i],
			SX:    net.Cells.SX[i],
		}
		if net.IsLocked(i) {
			cells[i].Locked = true
			cells[i].LockedX = int(net.Cells.X[i])
			cells[i].LockedY = int(net.Cells.Y[i])
			cells[i].LockedZ = int(net.Cells.Z[i])
		}
	}

	bx, _, _ := geo.BlockExtents()
	placed, err := legalize.Legalize(cells, bx, numTiers, sizeZBlocks, float64(legalize.TierWidth))
	if err != nil {
		return err
	}

	for i, p := range placed {
		net.Cells.X[i] = float64(p.X)
		net.Cells.Y[i] = float64(p.Y)
		net.Cells.Z[i] = float64(p.Z)
	}

	return nil
}
