// Copyright 2019 cruzbit developers
// Use of this source code is governed by a MIT-style license that can be found in the LICENSE file.

package xfuel

import (
	"fmt"
	"sort"
)

// NetworkMode selects which compiled-in checkpoint data is active.
// Values are: MAINNET or TESTNET.
type NetworkMode int

const (
	MAINNET NetworkMode = iota
	TESTNET
)

// String implements the Stringer interface
func (m NetworkMode) String() string {
	switch m {
	case MAINNET:
		return "main"
	case TESTNET:
		return "test"
	}
	return fmt.Sprintf("unknown(%d)", int(m))
}

// Checkpoint is a known height and block hash pair on the main chain.
type Checkpoint struct {
	Height int64
	Hash   BlockHash
}

// CheckpointMap is an immutable set of checkpoints ordered by height.
type CheckpointMap struct {
	entries []Checkpoint
}

// NewCheckpointMap returns a map of the given checkpoints. It panics on an empty list or
// a repeated height since checkpoint tables are compiled-in constants.
func NewCheckpointMap(checkpoints ...Checkpoint) *CheckpointMap {
	if len(checkpoints) == 0 {
		panic("Checkpoint map must not be empty")
	}
	entries := make([]Checkpoint, len(checkpoints))
	copy(entries, checkpoints)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Height < entries[j].Height
	})
	for i := 1; i < len(entries); i++ {
		if entries[i].Height == entries[i-1].Height {
			panic(fmt.Sprintf("Duplicate checkpoint at height %d", entries[i].Height))
		}
	}
	return &CheckpointMap{entries: entries}
}

// Len returns the number of checkpoints.
func (c *CheckpointMap) Len() int {
	return len(c.entries)
}

// Get returns the checkpoint hash at exactly the given height.
func (c *CheckpointMap) Get(height int64) (BlockHash, bool) {
	i := sort.Search(len(c.entries), func(i int) bool {
		return c.entries[i].Height >= height
	})
	if i < len(c.entries) && c.entries[i].Height == height {
		return c.entries[i].Hash, true
	}
	return BlockHash{}, false
}

// Floor returns the highest checkpoint at or below the given height.
func (c *CheckpointMap) Floor(height int64) (Checkpoint, bool) {
	i := sort.Search(len(c.entries), func(i int) bool {
		return c.entries[i].Height > height
	})
	if i == 0 {
		return Checkpoint{}, false
	}
	return c.entries[i-1], true
}

// Highest returns the checkpoint with the greatest height.
func (c *CheckpointMap) Highest() Checkpoint {
	return c.entries[len(c.entries)-1]
}

// Entries returns a copy of the checkpoints in ascending height order.
func (c *CheckpointMap) Entries() []Checkpoint {
	entries := make([]Checkpoint, len(c.entries))
	copy(entries, c.entries)
	return entries
}

// CheckpointMeta summarizes the chain as of the last checkpoint. It's used to estimate
// verification progress.
type CheckpointMeta struct {
	LastCheckpointTime      int64   // timestamp of the last checkpoint block
	TxCountAtLastCheckpoint int64   // transactions between genesis and the last checkpoint
	TxPerDayEstimate        float64 // expected transactions per day after the last checkpoint
	SigcheckFactor          float64
}

// CheckpointRegistry answers checkpoint queries against the data of a single network.
// It is never modified after construction and is safe for concurrent use.
type CheckpointRegistry struct {
	mode        NetworkMode
	checkpoints *CheckpointMap
	meta        CheckpointMeta
}

// NewCheckpointRegistry returns a registry using the compiled-in data for the given network.
func NewCheckpointRegistry(mode NetworkMode) *CheckpointRegistry {
	if mode == TESTNET {
		return NewCheckpointRegistryWithData(mode, testnetCheckpoints, testnetCheckpointMeta)
	}
	return NewCheckpointRegistryWithData(MAINNET, mainnetCheckpoints, mainnetCheckpointMeta)
}

// NewCheckpointRegistryWithData returns a registry using the passed data.
func NewCheckpointRegistryWithData(mode NetworkMode, checkpoints *CheckpointMap,
	meta CheckpointMeta) *CheckpointRegistry {
	return &CheckpointRegistry{
		mode:        mode,
		checkpoints: checkpoints,
		meta:        meta,
	}
}

// Mode returns the network the registry was created for.
func (r *CheckpointRegistry) Mode() NetworkMode {
	return r.mode
}

// ActiveDataset returns the checkpoints and summary data in use.
func (r *CheckpointRegistry) ActiveDataset() (*CheckpointMap, CheckpointMeta) {
	return r.checkpoints, r.meta
}

// enforced returns false when checkpoints have no effect. Testnet has no checkpoints.
func (r *CheckpointRegistry) enforced(checkpointsEnabled bool) bool {
	return r.mode != TESTNET && checkpointsEnabled
}

// CheckBlock returns false if the height is a checkpoint and the hash doesn't match.
// Heights without a checkpoint always pass.
func (r *CheckpointRegistry) CheckBlock(height int64, hash BlockHash, checkpointsEnabled bool) bool {
	if !r.enforced(checkpointsEnabled) {
		return true
	}
	checkpointHash, ok := r.checkpoints.Get(height)
	if !ok {
		return true
	}
	return hash == checkpointHash
}

// GuessVerificationProgress estimates how far along verification is as of the given block.
// Work is 1 per transaction before the last checkpoint and SigcheckFactor per transaction after it.
// The result isn't clamped; clock skew can push it outside of [0, 1].
func (r *CheckpointRegistry) GuessVerificationProgress(current *ChainPosition, now int64) float64 {
	if current == nil {
		return 0.0
	}

	var workBefore, workAfter float64
	meta := r.meta

	if current.ChainTx <= meta.TxCountAtLastCheckpoint {
		cheapBefore := float64(current.ChainTx)
		cheapAfter := float64(meta.TxCountAtLastCheckpoint - current.ChainTx)
		expensiveAfter := float64(now-meta.LastCheckpointTime) / SECONDS_PER_DAY * meta.TxPerDayEstimate
		workBefore = cheapBefore
		workAfter = cheapAfter + expensiveAfter*meta.SigcheckFactor
	} else {
		cheapBefore := float64(meta.TxCountAtLastCheckpoint)
		expensiveBefore := float64(current.ChainTx - meta.TxCountAtLastCheckpoint)
		expensiveAfter := float64(now-current.Time) / SECONDS_PER_DAY * meta.TxPerDayEstimate
		workBefore = cheapBefore + expensiveBefore*meta.SigcheckFactor
		workAfter = expensiveAfter * meta.SigcheckFactor
	}

	if workBefore+workAfter == 0 {
		// nothing done and nothing left
		return 1.0
	}
	return workBefore / (workBefore + workAfter)
}

// GetTotalBlocksEstimate returns the height of the last checkpoint.
// It's a rough lower bound on the chain height used for download progress.
func (r *CheckpointRegistry) GetTotalBlocksEstimate(checkpointsEnabled bool) int64 {
	if !r.enforced(checkpointsEnabled) {
		return 0
	}
	return r.checkpoints.Highest().Height
}

// GetLastCheckpoint returns the position of the highest checkpoint present in the passed index.
// The error is only set when the index lookup itself fails.
func (r *CheckpointRegistry) GetLastCheckpoint(index BlockIndex, checkpointsEnabled bool) (
	*ChainPosition, error) {
	if !r.enforced(checkpointsEnabled) {
		return nil, nil
	}
	for i := len(r.checkpoints.entries) - 1; i >= 0; i-- {
		pos, err := index.GetChainPosition(r.checkpoints.entries[i].Hash)
		if err != nil {
			return nil, err
		}
		if pos != nil {
			return pos, nil
		}
	}
	return nil, nil
}

// GetLatestHardenedCheckpoint returns the hash of the highest checkpoint.
// Unlike the other queries it ignores the network and the enabled flag.
func (r *CheckpointRegistry) GetLatestHardenedCheckpoint() BlockHash {
	return r.checkpoints.Highest().Hash
}

// CheckpointCheck returns an error if the passed height is a checkpoint and the
// passed block hash does not match the given checkpoint hash.
func CheckpointCheck(r *CheckpointRegistry, hash BlockHash, height int64, checkpointsEnabled bool) error {
	if r.CheckBlock(height, hash, checkpointsEnabled) {
		return nil
	}
	checkpointHash, _ := r.checkpoints.Get(height)
	return fmt.Errorf("Block %s at height %d does not match checkpoint hash %s",
		hash, height, checkpointHash)
}
