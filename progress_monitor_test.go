// Copyright 2019 cruzbit developers
// Use of this source code is governed by a MIT-style license that can be found in the LICENSE file.

package xfuel

import (
	"testing"
	"time"
)

func TestProgressMonitor(t *testing.T) {
	meta := CheckpointMeta{
		LastCheckpointTime:      1000000,
		TxCountAtLastCheckpoint: 1000,
		TxPerDayEstimate:        100,
		SigcheckFactor:          SIGCHECK_VERIFICATION_FACTOR,
	}
	r := NewCheckpointRegistryWithData(MAINNET, NewCheckpointMap(Checkpoint{}), meta)

	positionChan := make(chan *ChainPosition)
	monitor := NewProgressMonitor(r, positionChan)
	monitor.updateInterval = 10 * time.Millisecond
	monitor.SetTimeSource(func() int64 { return meta.LastCheckpointTime })
	monitor.Run()
	defer monitor.Shutdown()

	if progress, height := monitor.Progress(); progress != 0 || height != 0 {
		t.Fatalf("Expected no progress yet, found %f at %d", progress, height)
	}

	positionChan <- &ChainPosition{Height: 10, ChainTx: 250}
	positionChan <- &ChainPosition{Height: 20, ChainTx: 500}

	deadline := time.Now().Add(5 * time.Second)
	for {
		progress, height := monitor.Progress()
		if height == 20 {
			if progress != 0.5 {
				t.Fatalf("Expected 0.5, found %f", progress)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("Timed out waiting for a progress update")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func waitForProgress(t *testing.T, monitor *ProgressMonitor, done func(float64, int64) bool) {
	deadline := time.Now().Add(5 * time.Second)
	for {
		if done(monitor.Progress()) {
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("Timed out waiting for a progress update")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestProgressMonitorUnknownPosition(t *testing.T) {
	meta := CheckpointMeta{
		LastCheckpointTime:      1000000,
		TxCountAtLastCheckpoint: 1000,
		TxPerDayEstimate:        100,
		SigcheckFactor:          SIGCHECK_VERIFICATION_FACTOR,
	}
	r := NewCheckpointRegistryWithData(MAINNET, NewCheckpointMap(Checkpoint{}), meta)

	positionChan := make(chan *ChainPosition)
	monitor := NewProgressMonitor(r, positionChan)
	monitor.updateInterval = 5 * time.Millisecond
	monitor.SetTimeSource(func() int64 { return meta.LastCheckpointTime })
	monitor.Run()

	positionChan <- &ChainPosition{Height: 20, ChainTx: 500}
	waitForProgress(t, monitor, func(progress float64, height int64) bool {
		return height == 20 && progress == 0.5
	})

	// an unknown position reports no progress
	positionChan <- nil
	waitForProgress(t, monitor, func(progress float64, height int64) bool {
		return height == 0 && progress == 0.0
	})

	// closing the channel leaves the monitor running until shutdown
	close(positionChan)
	time.Sleep(50 * time.Millisecond)
	if progress, height := monitor.Progress(); progress != 0 || height != 0 {
		t.Fatalf("Expected no progress after close, found %f at %d", progress, height)
	}
	monitor.Shutdown()
}
