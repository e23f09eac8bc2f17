// Copyright 2019 cruzbit developers
// Use of this source code is governed by a MIT-style license that can be found in the LICENSE file.

package xfuel

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/buger/jsonparser"
	"github.com/pierrec/lz4"
)

// ReadChainPositions reads a JSON array of chain positions of the form:
//
//	[{"hash": "...", "height": 1, "time": 1394545186, "chain_tx": 2}, ...]
//
// Unknown fields are ignored so header dumps from other tools can be fed in directly.
func ReadChainPositions(r io.Reader) ([]*ChainPosition, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var positions []*ChainPosition
	var parseErr error
	_, err = jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		if parseErr != nil {
			return
		}
		if err != nil {
			parseErr = err
			return
		}
		if dataType != jsonparser.Object {
			parseErr = fmt.Errorf("Expected object at offset %d", offset)
			return
		}
		pos, err := parseChainPosition(value)
		if err != nil {
			parseErr = fmt.Errorf("Entry %d: %s", len(positions), err)
			return
		}
		positions = append(positions, pos)
	})
	if err != nil {
		return nil, err
	}
	if parseErr != nil {
		return nil, parseErr
	}
	return positions, nil
}

func parseChainPosition(value []byte) (*ChainPosition, error) {
	hashStr, err := jsonparser.GetString(value, "hash")
	if err != nil {
		return nil, fmt.Errorf("hash: %s", err)
	}
	hash, err := NewBlockHashFromStr(hashStr)
	if err != nil {
		return nil, err
	}
	height, err := jsonparser.GetInt(value, "height")
	if err != nil {
		return nil, fmt.Errorf("height: %s", err)
	}
	when, err := jsonparser.GetInt(value, "time")
	if err != nil {
		return nil, fmt.Errorf("time: %s", err)
	}
	chainTx, err := jsonparser.GetInt(value, "chain_tx")
	if err != nil {
		return nil, fmt.Errorf("chain_tx: %s", err)
	}
	return &ChainPosition{
		Hash:    hash,
		Height:  height,
		ChainTx: chainTx,
		Time:    when,
	}, nil
}

// LoadChainPositions reads chain positions from a file.
// Files ending in ".lz4" are expected to be lz4 compressed.
func LoadChainPositions(path string) ([]*ChainPosition, error) {
	fileBytes, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var r io.Reader = bytes.NewReader(fileBytes)
	if filepath.Ext(path) == ".lz4" {
		// uncompress
		out := new(bytes.Buffer)
		zr := lz4.NewReader(r)
		if _, err := io.Copy(out, zr); err != nil {
			return nil, err
		}
		r = out
	}
	return ReadChainPositions(r)
}

// SaveChainPositions writes chain positions to a file in the format read by LoadChainPositions.
func SaveChainPositions(path string, positions []*ChainPosition) error {
	buf := new(bytes.Buffer)
	buf.WriteString("[")
	for i, pos := range positions {
		if i > 0 {
			buf.WriteString(",")
		}
		fmt.Fprintf(buf, "\n  {\"hash\": %q, \"height\": %d, \"time\": %d, \"chain_tx\": %d}",
			pos.Hash.String(), pos.Height, pos.Time, pos.ChainTx)
	}
	buf.WriteString("\n]\n")

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	var w io.Writer = f
	var zw *lz4.Writer
	if filepath.Ext(path) == ".lz4" {
		// compress with lz4
		zw = lz4.NewWriter(f)
		w = zw
	}
	if _, err := io.Copy(w, buf); err != nil {
		f.Close()
		return err
	}
	if zw != nil {
		if err := zw.Close(); err != nil {
			f.Close()
			return err
		}
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
