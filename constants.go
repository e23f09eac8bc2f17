// Copyright 2019 cruzbit developers
// Use of this source code is governed by a MIT-style license that can be found in the LICENSE file.

package xfuel

// the below values are used by progress estimation and come directly from bitcoin.

// how many times slower we expect verifying a transaction after the last checkpoint to be.
// reindexing from a fast disk with a slow CPU can make it up to 20, downloading from a slow
// network with a fast multicore CPU brings it close to 1.
const SIGCHECK_VERIFICATION_FACTOR = 5.0

const SECONDS_PER_DAY = 24 * 60 * 60

// the below values only affect sync status reporting and do not affect chain validity

const MAX_TIP_AGE = 24 * 60 * 60

const PROGRESS_UPDATE_INTERVAL_SECONDS = 60
