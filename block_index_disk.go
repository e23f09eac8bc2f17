// Copyright 2019 cruzbit developers
// Use of this source code is governed by a MIT-style license that can be found in the LICENSE file.

package xfuel

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// BlockIndexDisk is an on-disk BlockIndex implementation using LevelDB.
// It is safe for concurrent use.
type BlockIndexDisk struct {
	db        *leveldb.DB
	readOnly  bool
	storeLock sync.Mutex
}

// NewBlockIndexDisk returns a new instance of an on-disk block index.
func NewBlockIndexDisk(dbPath string, readOnly bool) (*BlockIndexDisk, error) {
	// create the parent path if it doesn't exist
	if !readOnly {
		dirPath := filepath.Dir(dbPath)
		if info, err := os.Stat(dirPath); os.IsNotExist(err) {
			if err := os.MkdirAll(dirPath, 0700); err != nil {
				return nil, err
			}
		} else if err == nil && !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", dirPath)
		}
	}

	// open the database
	opts := opt.Options{ReadOnly: readOnly}
	db, err := leveldb.OpenFile(dbPath, &opts)
	if err != nil {
		return nil, err
	}
	return &BlockIndexDisk{db: db, readOnly: readOnly}, nil
}

// Store indexes the given position. The chain tip is moved if the position is higher.
func (b *BlockIndexDisk) Store(pos *ChainPosition) error {
	if b.readOnly {
		return fmt.Errorf("Block index is in read-only mode")
	}

	encodedPos, err := encodeChainPosition(pos)
	if err != nil {
		return err
	}

	batch := new(leveldb.Batch)
	batch.Put(positionKey(pos.Hash), encodedPos)

	// the tip comparison and the write must not interleave with another Store
	b.storeLock.Lock()
	defer b.storeLock.Unlock()

	tip, err := b.GetChainTip()
	if err != nil {
		return err
	}
	if tip == nil || pos.Height > tip.Height {
		batch.Put([]byte{tipPrefix}, pos.Hash[:])
	}

	wo := opt.WriteOptions{Sync: true}
	return b.db.Write(batch, &wo)
}

// GetChainPosition returns the position of the referenced block or nil if it isn't indexed.
func (b *BlockIndexDisk) GetChainPosition(hash BlockHash) (*ChainPosition, error) {
	encodedPos, err := b.db.Get(positionKey(hash), nil)
	if err == leveldb.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeChainPosition(encodedPos)
}

// GetChainTip returns the highest stored position or nil if the index is empty.
func (b *BlockIndexDisk) GetChainTip() (*ChainPosition, error) {
	hashBytes, err := b.db.Get([]byte{tipPrefix}, nil)
	if err == leveldb.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var hash BlockHash
	copy(hash[:], hashBytes)
	return b.GetChainPosition(hash)
}

// Close is called to close any underlying storage.
func (b *BlockIndexDisk) Close() error {
	return b.db.Close()
}

// leveldb schema

// p{hash} -> {height}{gob encoded position}
// t       -> {hash}

const positionPrefix = 'p'

const tipPrefix = 't'

func positionKey(hash BlockHash) []byte {
	key := make([]byte, 1+len(hash))
	key[0] = positionPrefix
	copy(key[1:], hash[:])
	return key
}

func encodeChainPosition(pos *ChainPosition) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.BigEndian, pos.Height); err != nil {
		return nil, err
	}
	enc := gob.NewEncoder(buf)
	if err := enc.Encode(pos); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeChainPosition(encodedPos []byte) (*ChainPosition, error) {
	buf := bytes.NewBuffer(encodedPos)
	var height int64
	if err := binary.Read(buf, binary.BigEndian, &height); err != nil {
		return nil, err
	}
	dec := gob.NewDecoder(buf)
	pos := new(ChainPosition)
	if err := dec.Decode(pos); err != nil {
		return nil, err
	}
	if pos.Height != height {
		return nil, fmt.Errorf("Corrupt chain position for block %s", pos.Hash)
	}
	return pos, nil
}
