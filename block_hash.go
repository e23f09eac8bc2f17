// Copyright 2019 cruzbit developers
// Use of this source code is governed by a MIT-style license that can be found in the LICENSE file.

package xfuel

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// BlockHash is a block's unique 256-bit identifier.
// Its textual form is byte-reversed hex, matching the rest of the bitcoin family.
type BlockHash [32]byte

// NewBlockHashFromStr parses a hex block hash of exactly 64 digits. A leading "0x" is allowed.
func NewBlockHashFromStr(s string) (BlockHash, error) {
	hexStr := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(hexStr) != chainhash.MaxHashStringSize {
		return BlockHash{}, fmt.Errorf("Invalid block hash %q: expected %d hex digits, found %d",
			s, chainhash.MaxHashStringSize, len(hexStr))
	}
	h, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		return BlockHash{}, fmt.Errorf("Invalid block hash %q: %s", s, err)
	}
	return BlockHash(*h), nil
}

// mustParseBlockHash is used for compiled-in constants only.
func mustParseBlockHash(s string) BlockHash {
	h, err := NewBlockHashFromStr(s)
	if err != nil {
		panic(err)
	}
	return h
}

// IsZero returns true if every byte of the hash is zero.
func (h BlockHash) IsZero() bool {
	return h == BlockHash{}
}

// String implements the Stringer interface
func (h BlockHash) String() string {
	return chainhash.Hash(h).String()
}

// MarshalJSON marshals BlockHash as a hex string.
func (h BlockHash) MarshalJSON() ([]byte, error) {
	s := "\"" + h.String() + "\""
	return []byte(s), nil
}

// UnmarshalJSON unmarshals a hex string to BlockHash.
func (h *BlockHash) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("Invalid block hash")
	}
	hash, err := NewBlockHashFromStr(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*h = hash
	return nil
}
