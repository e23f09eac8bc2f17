// Copyright 2019 cruzbit developers
// Use of this source code is governed by a MIT-style license that can be found in the LICENSE file.

package xfuel

import "testing"

func TestIsInitialBlockDownload(t *testing.T) {
	r := newTestRegistry(MAINNET)
	now := int64(1500000000)
	index := BlockIndexMemory{}

	// nothing indexed yet
	ibd, height, err := IsInitialBlockDownload(r, index, true, now)
	if err != nil {
		t.Fatal(err)
	}
	if !ibd || height != 0 {
		t.Fatalf("Expected initial download at height 0, found %v at %d", ibd, height)
	}

	// below the last checkpoint with a fresh tip
	index.Add(&ChainPosition{Hash: testHash(50), Height: 50, Time: now})
	ibd, height, err = IsInitialBlockDownload(r, index, true, now)
	if err != nil {
		t.Fatal(err)
	}
	if !ibd || height != 50 {
		t.Fatalf("Expected initial download at height 50, found %v at %d", ibd, height)
	}

	// checkpoints disabled only the tip age counts
	if ibd, _, _ := IsInitialBlockDownload(r, index, false, now); ibd {
		t.Fatal("Expected synced with checkpoints disabled")
	}

	// past the last checkpoint but the tip is stale
	index.Add(&ChainPosition{Hash: testHash(101), Height: 101, Time: now - MAX_TIP_AGE - 1})
	ibd, height, err = IsInitialBlockDownload(r, index, true, now)
	if err != nil {
		t.Fatal(err)
	}
	if !ibd || height != 101 {
		t.Fatalf("Expected initial download at height 101, found %v at %d", ibd, height)
	}

	// fresh tip past the last checkpoint
	index.Add(&ChainPosition{Hash: testHash(102), Height: 102, Time: now - 60})
	ibd, height, err = IsInitialBlockDownload(r, index, true, now)
	if err != nil {
		t.Fatal(err)
	}
	if ibd || height != 102 {
		t.Fatalf("Expected synced at height 102, found %v at %d", ibd, height)
	}
}
