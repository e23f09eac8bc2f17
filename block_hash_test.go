// Copyright 2019 cruzbit developers
// Use of this source code is governed by a MIT-style license that can be found in the LICENSE file.

package xfuel

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestBlockHashFromStr(t *testing.T) {
	hash, err := NewBlockHashFromStr(GenesisBlockHash)
	if err != nil {
		t.Fatal(err)
	}

	// stored little-endian like a uint256
	if hash[0] != 0x3b || hash[31] != 0x00 || hash[29] != 0x07 {
		t.Fatalf("Unexpected byte order: %x", hash[:])
	}
	if hash.String() != GenesisBlockHash[2:] {
		t.Fatalf("Expected %s, found %s", GenesisBlockHash[2:], hash)
	}

	// the prefix is optional
	hash2, err := NewBlockHashFromStr(GenesisBlockHash[2:])
	if err != nil {
		t.Fatal(err)
	}
	if hash != hash2 {
		t.Fatal("Hash parsed without prefix doesn't match")
	}

	// short and oversized values are rejected
	for _, invalid := range []string{
		"0x1",
		"0x05",
		"",
		"0x",
		GenesisBlockHash[:65],
		GenesisBlockHash + "00",
		"0x" + strings.Repeat("zz", 32),
	} {
		if _, err := NewBlockHashFromStr(invalid); err == nil {
			t.Fatalf("Expected error parsing %q", invalid)
		}
	}

	// errors quote the input as given
	_, err = NewBlockHashFromStr("0x05")
	if err == nil || !strings.Contains(err.Error(), `"0x05"`) {
		t.Fatalf("Expected error quoting the original input, found %v", err)
	}

	if !(BlockHash{}).IsZero() {
		t.Fatal("Zero hash isn't zero")
	}
}

func TestBlockHashJSON(t *testing.T) {
	pos := ChainPosition{
		Hash:    mustParseBlockHash(GenesisBlockHash),
		Height:  0,
		ChainTx: 1,
		Time:    1394545186,
	}
	posJson, err := json.Marshal(pos)
	if err != nil {
		t.Fatal(err)
	}
	expect := `{"hash":"` + GenesisBlockHash[2:] + `","height":0,"chain_tx":1,"time":1394545186}`
	if string(posJson) != expect {
		t.Fatalf("Expected %s, found %s", expect, posJson)
	}

	var pos2 ChainPosition
	if err := json.Unmarshal(posJson, &pos2); err != nil {
		t.Fatal(err)
	}
	if pos2 != pos {
		t.Fatal("Decoded position doesn't match original")
	}

	var hash BlockHash
	if err := json.Unmarshal([]byte("12"), &hash); err == nil {
		t.Fatal("Expected error for a non-string hash")
	}
}
