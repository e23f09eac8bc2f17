// Copyright 2019 cruzbit developers
// Use of this source code is governed by a MIT-style license that can be found in the LICENSE file.

package xfuel

import (
	"log"
	"math"
	"sync"
	"time"
)

// ProgressMonitor periodically logs estimated verification progress.
type ProgressMonitor struct {
	registry       *CheckpointRegistry
	positionChan   chan *ChainPosition
	updateInterval time.Duration
	now            func() int64
	progressLock   sync.RWMutex
	progress       float64
	height         int64
	shutdownChan   chan struct{}
	wg             sync.WaitGroup
}

// NewProgressMonitor returns a new ProgressMonitor instance.
// Chain positions are sent to it on the passed channel as blocks are connected.
func NewProgressMonitor(registry *CheckpointRegistry, positionChan chan *ChainPosition) *ProgressMonitor {
	return &ProgressMonitor{
		registry:       registry,
		positionChan:   positionChan,
		updateInterval: PROGRESS_UPDATE_INTERVAL_SECONDS * time.Second,
		now:            func() int64 { return time.Now().Unix() },
		shutdownChan:   make(chan struct{}),
	}
}

// Run executes the progress monitor's main loop in its own goroutine.
func (p *ProgressMonitor) Run() {
	p.wg.Add(1)
	go p.run()
}

func (p *ProgressMonitor) run() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.updateInterval)
	defer ticker.Stop()

	positionChan := p.positionChan
	var latest *ChainPosition
	for {
		select {
		case _, ok := <-p.shutdownChan:
			if !ok {
				log.Println("Progress monitor shutting down...")
				return
			}
		case pos, ok := <-positionChan:
			if !ok {
				// sender is done. keep reporting the last position until shutdown
				positionChan = nil
				continue
			}
			latest = pos
			p.update(latest)
		case <-ticker.C:
			if latest == nil {
				continue
			}
			progress := p.update(latest)
			log.Printf("Verification progress: %.2f%% (height %d)",
				math.Max(0, math.Min(1, progress))*100, latest.Height)
		}
	}
}

// SetTimeSource replaces the wall clock used for estimates. It must be called before Run.
func (p *ProgressMonitor) SetTimeSource(now func() int64) {
	p.now = now
}

func (p *ProgressMonitor) update(pos *ChainPosition) float64 {
	progress := p.registry.GuessVerificationProgress(pos, p.now())
	var height int64
	if pos != nil {
		height = pos.Height
	}
	p.progressLock.Lock()
	defer p.progressLock.Unlock()
	p.progress = progress
	p.height = height
	return progress
}

// Progress returns the most recent progress estimate and the height it was computed at.
func (p *ProgressMonitor) Progress() (float64, int64) {
	p.progressLock.RLock()
	defer p.progressLock.RUnlock()
	return p.progress, p.height
}

// Shutdown stops the progress monitor synchronously.
func (p *ProgressMonitor) Shutdown() {
	close(p.shutdownChan)
	p.wg.Wait()
	log.Println("Progress monitor shutdown")
}
