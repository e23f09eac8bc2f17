// Copyright 2019 cruzbit developers
// Use of this source code is governed by a MIT-style license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/xfuel/xfuel"
)

func TestFormatProgress(t *testing.T) {
	cases := map[float64]string{
		0:      "0.00%",
		0.5:    "50.00%",
		0.1234: "12.34%",
		1:      "100.00%",
		1.7:    "100.00%",
		-0.2:   "0.00%",
	}
	for progress, expect := range cases {
		if s := formatProgress(progress); s != expect {
			t.Fatalf("Expected %s for %f, got %s", expect, progress, s)
		}
	}
}

func TestToolCommands(t *testing.T) {
	dir, err := ioutil.TempDir("", "xfuel-tool")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	index, err := NewBlockIndexDisk(filepath.Join(dir, "index.db"), false)
	if err != nil {
		t.Fatal(err)
	}
	tl := &tool{
		registry:           NewCheckpointRegistry(MAINNET),
		index:              index,
		closeIndex:         index.Close,
		checkpointsEnabled: true,
		now:                1394545186,
	}
	defer tl.close()

	hardened := tl.registry.GetLatestHardenedCheckpoint().String()

	// nothing indexed yet
	if err := tl.run([]string{"progress"}); err != nil {
		t.Fatal(err)
	}
	if err := tl.run([]string{"check", "1057900", hardened}); err != nil {
		t.Fatal(err)
	}
	if err := tl.run([]string{"check", "1057800", hardened}); err == nil {
		t.Fatal("Expected checkpoint mismatch")
	}
	if err := tl.run([]string{"check", "1057801", hardened}); err != nil {
		t.Fatal(err)
	}
	if err := tl.run([]string{"check", "1057900"}); err == nil {
		t.Fatal("Expected usage error")
	}

	positions := []*ChainPosition{
		{Hash: tl.registry.GetLatestHardenedCheckpoint(), Height: 1057900, ChainTx: 2000000, Time: 1394545186},
	}
	path := filepath.Join(dir, "positions.lz4")
	if err := SaveChainPositions(path, positions); err != nil {
		t.Fatal(err)
	}
	for _, args := range [][]string{
		{"watch", path}, {"import", path}, {"list"}, {"estimate"}, {"hardened"}, {"last"}, {"progress"}, {"progress", hardened}, {"sync"},
	} {
		if err := tl.run(args); err != nil {
			t.Fatalf("%s: %s", args[0], err)
		}
	}

	// replaying through the progress monitor reports the last position sent
	if progress, height := tl.replay(positions); height != 1057900 || progress <= 0 {
		t.Fatalf("Expected progress at height 1057900, got %f at %d", progress, height)
	}
	if progress, height := tl.replay(nil); progress != 0 || height != 0 {
		t.Fatalf("Expected no progress for an empty replay, got %f at %d", progress, height)
	}
	if err := tl.run([]string{"watch"}); err == nil {
		t.Fatal("Expected usage error")
	}

	pos, err := tl.registry.GetLastCheckpoint(index, true)
	if err != nil {
		t.Fatal(err)
	}
	if pos == nil || pos.Height != 1057900 {
		t.Fatal("Imported checkpoint not found")
	}

	// a hash missing from the index is an error, not zero progress
	missing := "0x" + strings.Repeat("ab", 32)
	if err := tl.run([]string{"progress", missing}); err == nil {
		t.Fatal("Expected error for a block missing from the index")
	}

	if err := tl.run([]string{"bogus"}); err == nil {
		t.Fatal("Expected error for an unknown command")
	}

	noIndex := &tool{registry: NewCheckpointRegistry(TESTNET)}
	if err := noIndex.run([]string{"last"}); err == nil {
		t.Fatal("Expected error without a block index")
	}
	if err := noIndex.run([]string{"check", "5", hardened}); err != nil {
		t.Fatal(err)
	}
	if err := noIndex.run([]string{"check", "5", "0x05"}); err == nil {
		t.Fatal("Expected error for a short hash")
	}
}
