// Copyright 2019 cruzbit developers
// Use of this source code is governed by a MIT-style license that can be found in the LICENSE file.

package xfuel

// ChainPosition describes a block under consideration. It is owned by the caller
// and only ever read by the checkpoint code.
type ChainPosition struct {
	Hash    BlockHash `json:"hash"`
	Height  int64     `json:"height"`
	ChainTx int64     `json:"chain_tx"` // transactions up to and including this block
	Time    int64     `json:"time"`
}

// BlockIndex is an interface to a lookup of known blocks by hash.
type BlockIndex interface {
	// GetChainPosition returns the position of the referenced block or nil if it isn't indexed.
	GetChainPosition(hash BlockHash) (*ChainPosition, error)
}

// ChainTipIndex is a BlockIndex which also knows its highest block.
type ChainTipIndex interface {
	BlockIndex

	// GetChainTip returns the highest indexed position or nil if the index is empty.
	GetChainTip() (*ChainPosition, error)
}

// BlockIndexMemory is a BlockIndex backed by a plain map.
// Callers must not mutate it concurrently with lookups.
type BlockIndexMemory map[BlockHash]*ChainPosition

// GetChainPosition returns the position of the referenced block or nil if it isn't indexed.
func (b BlockIndexMemory) GetChainPosition(hash BlockHash) (*ChainPosition, error) {
	return b[hash], nil
}

// Add indexes the given positions by hash.
func (b BlockIndexMemory) Add(positions ...*ChainPosition) {
	for _, pos := range positions {
		b[pos.Hash] = pos
	}
}

// GetChainTip returns the highest indexed position or nil if the index is empty.
func (b BlockIndexMemory) GetChainTip() (*ChainPosition, error) {
	var tip *ChainPosition
	for _, pos := range b {
		if tip == nil || pos.Height > tip.Height {
			tip = pos
		}
	}
	return tip, nil
}
