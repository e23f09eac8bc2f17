// Copyright 2019 cruzbit developers
// Use of this source code is governed by a MIT-style license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/c-bata/go-prompt"
	"github.com/logrusorgru/aurora"
	. "github.com/xfuel/xfuel"
)

// A small tool to query the compiled-in checkpoints and an offline block index
func main() {
	var commands = []string{
		"list", "check", "estimate", "hardened", "last", "progress", "sync", "import", "watch", "shell",
	}

	dataDirPtr := flag.String("datadir", "", "Path to a directory containing the block index")
	testnetPtr := flag.Bool("testnet", false, "Use the test network checkpoints")
	noCheckpointsPtr := flag.Bool("nocheckpoints", false, "Disable checkpoint enforcement")
	cmdPtr := flag.String("command", "list", "Commands: "+strings.Join(commands, ", "))
	heightPtr := flag.Int64("height", 0, "Block height (for use with \"check\")")
	hashPtr := flag.String("hash", "", "Block hash (for use with \"check\" and \"progress\")")
	filePtr := flag.String("file", "", "Path to a .json or .lz4 file of chain positions (for use with \"import\" and \"watch\")")
	nowPtr := flag.Int64("now", 0, "Unix time to estimate progress at (defaults to the current time)")
	flag.Parse()

	mode := MAINNET
	if *testnetPtr {
		mode = TESTNET
	}

	t := &tool{
		registry:           NewCheckpointRegistry(mode),
		checkpointsEnabled: !*noCheckpointsPtr,
		now:                *nowPtr,
	}

	// instantiate the block index if the command needs one
	if commandNeedsIndex(*cmdPtr) {
		if len(*dataDirPtr) == 0 {
			log.Printf("You must specify a -datadir for \"%s\"\n", *cmdPtr)
			os.Exit(-1)
		}
		readOnly := *cmdPtr != "import" && *cmdPtr != "shell"
		index, err := NewBlockIndexDisk(filepath.Join(*dataDirPtr, "index.db"), readOnly)
		if err != nil {
			log.Fatal(err)
		}
		t.index = index
		t.closeIndex = index.Close
	}

	if *cmdPtr == "shell" {
		t.shell()
		t.close()
		return
	}

	args := []string{*cmdPtr}
	switch *cmdPtr {
	case "check":
		args = append(args, strconv.FormatInt(*heightPtr, 10), *hashPtr)
	case "progress":
		if len(*hashPtr) != 0 {
			args = append(args, *hashPtr)
		}
	case "import", "watch":
		args = append(args, *filePtr)
	}

	err := t.run(args)
	t.close()
	if err != nil {
		log.Fatal(err)
	}
}

// positionStore is the block index used by the tool.
type positionStore interface {
	ChainTipIndex
	Store(pos *ChainPosition) error
}

type tool struct {
	registry           *CheckpointRegistry
	index              positionStore
	closeIndex         func() error
	checkpointsEnabled bool
	now                int64 // zero means the wall clock
}

func (t *tool) close() {
	if t.closeIndex == nil {
		return
	}
	if err := t.closeIndex(); err != nil {
		log.Println(err)
	}
}

func commandNeedsIndex(cmd string) bool {
	switch cmd {
	case "last", "progress", "sync", "import", "shell":
		return true
	}
	return false
}

func (t *tool) currentTime() int64 {
	if t.now != 0 {
		return t.now
	}
	return time.Now().Unix()
}

func (t *tool) run(args []string) error {
	if len(args) == 0 {
		return nil
	}
	if commandNeedsIndex(args[0]) && t.index == nil {
		return fmt.Errorf("\"%s\" requires a block index", args[0])
	}

	switch args[0] {
	case "list":
		checkpoints, meta := t.registry.ActiveDataset()
		fmt.Printf("%d checkpoints for the %s network:\n",
			aurora.Bold(checkpoints.Len()), aurora.Bold(t.registry.Mode()))
		for _, checkpoint := range checkpoints.Entries() {
			fmt.Printf("%10d %s\n", checkpoint.Height, checkpoint.Hash)
		}
		fmt.Printf("%s: %s\n", aurora.Bold("Last checkpoint time"),
			time.Unix(meta.LastCheckpointTime, 0).UTC())
		fmt.Printf("%s: %d\n", aurora.Bold("Transactions at last checkpoint"), meta.TxCountAtLastCheckpoint)
		fmt.Printf("%s: %.1f\n", aurora.Bold("Estimated transactions per day"), meta.TxPerDayEstimate)

	case "check":
		if len(args) != 3 {
			return fmt.Errorf("usage: check <height> <hash>")
		}
		height, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return err
		}
		hash, err := NewBlockHashFromStr(args[2])
		if err != nil {
			return err
		}
		if err := CheckpointCheck(t.registry, hash, height, t.checkpointsEnabled); err != nil {
			fmt.Println(aurora.Bold(aurora.Red("Checkpoint mismatch")))
			return err
		}
		fmt.Printf("Block %s at height %d is %s\n", hash, height, aurora.Bold(aurora.Green("OK")))

	case "estimate":
		fmt.Printf("Estimated total blocks: %d\n",
			aurora.Bold(t.registry.GetTotalBlocksEstimate(t.checkpointsEnabled)))

	case "hardened":
		fmt.Printf("Latest hardened checkpoint: %s\n",
			aurora.Bold(t.registry.GetLatestHardenedCheckpoint()))

	case "last":
		pos, err := t.registry.GetLastCheckpoint(t.index, t.checkpointsEnabled)
		if err != nil {
			return err
		}
		if pos == nil {
			fmt.Println("No checkpoint found in the block index")
			return nil
		}
		fmt.Printf("Last checkpoint in the block index: %s at height %d\n",
			aurora.Bold(pos.Hash), pos.Height)

	case "progress":
		var pos *ChainPosition
		var err error
		if len(args) > 1 {
			var hash BlockHash
			if hash, err = NewBlockHashFromStr(args[1]); err != nil {
				return err
			}
			if pos, err = t.index.GetChainPosition(hash); err != nil {
				return err
			}
			if pos == nil {
				return fmt.Errorf("Block %s not found in the block index", hash)
			}
		} else if pos, err = t.index.GetChainTip(); err != nil {
			// an empty index reports no progress
			return err
		}
		progress := t.registry.GuessVerificationProgress(pos, t.currentTime())
		fmt.Printf("Verification progress: %s\n", aurora.Bold(formatProgress(progress)))

	case "sync":
		ibd, height, err := IsInitialBlockDownload(
			t.registry, t.index, t.checkpointsEnabled, t.currentTime())
		if err != nil {
			return err
		}
		if ibd {
			fmt.Printf("Still syncing at height %d\n", aurora.Bold(height))
		} else {
			fmt.Printf("Synced at height %d\n", aurora.Bold(height))
		}

	case "import":
		if len(args) != 2 || len(args[1]) == 0 {
			return fmt.Errorf("usage: import <file>")
		}
		positions, err := LoadChainPositions(args[1])
		if err != nil {
			return err
		}
		for _, pos := range positions {
			if err := t.index.Store(pos); err != nil {
				return err
			}
		}
		fmt.Printf("Imported %d chain positions\n", aurora.Bold(len(positions)))

	case "watch":
		if len(args) != 2 || len(args[1]) == 0 {
			return fmt.Errorf("usage: watch <file>")
		}
		positions, err := LoadChainPositions(args[1])
		if err != nil {
			return err
		}
		progress, height := t.replay(positions)
		fmt.Printf("Verification progress after %d blocks: %s (height %d)\n",
			len(positions), aurora.Bold(formatProgress(progress)), height)

	default:
		return fmt.Errorf("Unknown command: %s", args[0])
	}
	return nil
}

// replay feeds positions to a progress monitor in order and returns its final estimate.
func (t *tool) replay(positions []*ChainPosition) (float64, int64) {
	positionChan := make(chan *ChainPosition)
	monitor := NewProgressMonitor(t.registry, positionChan)
	monitor.SetTimeSource(t.currentTime)
	monitor.Run()
	for _, pos := range positions {
		positionChan <- pos
	}
	close(positionChan)
	monitor.Shutdown()
	return monitor.Progress()
}

func (t *tool) shell() {
	completer := func(d prompt.Document) []prompt.Suggest {
		s := []prompt.Suggest{
			{Text: "list", Description: "List the active checkpoints"},
			{Text: "check", Description: "Check a block against the checkpoints: check <height> <hash>"},
			{Text: "estimate", Description: "Show the estimated total number of blocks"},
			{Text: "hardened", Description: "Show the latest hardened checkpoint"},
			{Text: "last", Description: "Show the highest checkpoint present in the block index"},
			{Text: "progress", Description: "Estimate verification progress: progress [hash]"},
			{Text: "sync", Description: "Show whether the block index looks synced"},
			{Text: "import", Description: "Import chain positions from a file: import <file>"},
			{Text: "watch", Description: "Replay chain positions from a file through the progress monitor: watch <file>"},
			{Text: "quit", Description: "Quit this session"},
		}
		return prompt.FilterHasPrefix(s, d.GetWordBeforeCursor(), true)
	}

	fmt.Println("Please select a command.")
	for {
		args := strings.Fields(prompt.Input("> ", completer))
		if len(args) == 0 {
			continue
		}
		if args[0] == "quit" {
			return
		}
		if args[0] == "shell" {
			continue
		}
		if err := t.run(args); err != nil {
			fmt.Printf("Error: %s\n", err)
		}
	}
}

// formatProgress renders a progress estimate as a clamped percentage.
func formatProgress(progress float64) string {
	if math.IsNaN(progress) {
		progress = 0
	}
	progress = math.Max(0, math.Min(1, progress))
	return strconv.FormatFloat(progress*100, 'f', 2, 64) + "%"
}
