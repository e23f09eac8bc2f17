// Copyright 2019 cruzbit developers
// Use of this source code is governed by a MIT-style license that can be found in the LICENSE file.

package xfuel

// IsInitialBlockDownload returns true if it appears we're still syncing the block chain.
// The height of the current tip is also returned.
func IsInitialBlockDownload(r *CheckpointRegistry, index ChainTipIndex, checkpointsEnabled bool, now int64) (
	bool, int64, error) {
	tip, err := index.GetChainTip()
	if err != nil {
		return false, 0, err
	}
	if tip == nil {
		return true, 0, nil
	}
	if tip.Height < r.GetTotalBlocksEstimate(checkpointsEnabled) {
		return true, tip.Height, nil
	}
	return tip.Time < (now - MAX_TIP_AGE), tip.Height, nil
}
